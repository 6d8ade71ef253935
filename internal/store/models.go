package store

import "time"

// Faq is a locale-neutral FAQ row. All translatable fields live in
// faq_translations, including the default-locale working copy.
type Faq struct {
	ID         int64
	CategoryID int64
	Position   int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// FaqTranslation is one locale/field/content row of a FAQ.
type FaqTranslation struct {
	ID      int64
	FaqID   int64
	Locale  string
	Field   string
	Content string
}

// FaqCategory is a category row. name_key and slug_key are
// language-neutral translation keys resolved through the message catalog.
type FaqCategory struct {
	ID        int64
	Position  int64
	NameKey   string
	SlugKey   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FaqCategoryTranslation is one locale/field/content row of a category.
type FaqCategoryTranslation struct {
	ID         int64
	CategoryID int64
	Locale     string
	Field      string
	Content    string
}

// Event is one row of the event log.
type Event struct {
	ID        int64
	Level     string
	Category  string
	Message   string
	Metadata  string
	CreatedAt time.Time
}
