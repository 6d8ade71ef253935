package handler

// Route pattern constants for chi router registration.
const (
	// RouteFaqIndex is the back-office FAQ list route.
	RouteFaqIndex = "/faq-index"
	// RouteSuffixCreate is the suffix for create routes.
	RouteSuffixCreate = "/create"
	// RouteSuffixEdit is the suffix for edit routes with a numeric id.
	RouteSuffixEdit = "/edit/{id:[0-9]+}"
	// RouteSuffixEditLocale is the edit suffix with an explicit locale.
	RouteSuffixEditLocale = RouteSuffixEdit + "/{locale:[a-z]{2}_[A-Z]{2}}"
	// RouteCategory is the back-office category sub-route.
	RouteCategory = "/category"

	// RouteParamCategory is the front-office category slug pattern.
	RouteParamCategory = "/{category}"
	// RouteParamQuestion is the front-office question slug pattern.
	RouteParamQuestion = RouteParamCategory + "/{slug}"

	// RouteSitemap is the sitemap route.
	RouteSitemap = "/sitemap.xml"
	// RouteRobots is the robots.txt route.
	RouteRobots = "/robots.txt"
)

// Redirect targets.
const (
	redirectFaqIndex      = RouteFaqIndex
	redirectCategoryIndex = RouteFaqIndex + RouteCategory

	redirectFaqEditID      = RouteFaqIndex + "/edit/%d"
	redirectCategoryEditID = redirectCategoryIndex + "/edit/%d"
)

// Flash message translation keys shared by all back-office saves.
const (
	flashSaved    = "message_persistens_complete"
	flashRejected = "message_persistens_incomplete"
)
