package model

// Event log levels.
const (
	EventLevelInfo    = "info"
	EventLevelWarning = "warning"
	EventLevelError   = "error"
)

// Event log categories.
const (
	EventCategoryFaq      = "faq"
	EventCategoryCategory = "category"
	EventCategoryCache    = "cache"
	EventCategoryConfig   = "config"
	EventCategorySystem   = "system"
)
