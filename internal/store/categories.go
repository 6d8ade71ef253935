package store

import (
	"context"
	"time"
)

const createFaqCategory = `
INSERT INTO faq_category (position, name_key, slug_key, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)
RETURNING id, position, name_key, slug_key, created_at, updated_at
`

// CreateFaqCategoryParams holds the fields for creating a category row.
type CreateFaqCategoryParams struct {
	Position  int64
	NameKey   string
	SlugKey   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateFaqCategory inserts a category row and returns it.
func (q *Queries) CreateFaqCategory(ctx context.Context, arg CreateFaqCategoryParams) (FaqCategory, error) {
	row := q.db.QueryRowContext(ctx, createFaqCategory,
		arg.Position, arg.NameKey, arg.SlugKey, arg.CreatedAt, arg.UpdatedAt)
	var c FaqCategory
	err := row.Scan(&c.ID, &c.Position, &c.NameKey, &c.SlugKey, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

const getFaqCategoryByID = `
SELECT id, position, name_key, slug_key, created_at, updated_at
FROM faq_category
WHERE id = ?
`

// GetFaqCategoryByID fetches a single category row.
func (q *Queries) GetFaqCategoryByID(ctx context.Context, id int64) (FaqCategory, error) {
	row := q.db.QueryRowContext(ctx, getFaqCategoryByID, id)
	var c FaqCategory
	err := row.Scan(&c.ID, &c.Position, &c.NameKey, &c.SlugKey, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

const getFaqCategoryBySlugKey = `
SELECT id, position, name_key, slug_key, created_at, updated_at
FROM faq_category
WHERE slug_key = ?
`

// GetFaqCategoryBySlugKey fetches a category by its slug translation key.
func (q *Queries) GetFaqCategoryBySlugKey(ctx context.Context, slugKey string) (FaqCategory, error) {
	row := q.db.QueryRowContext(ctx, getFaqCategoryBySlugKey, slugKey)
	var c FaqCategory
	err := row.Scan(&c.ID, &c.Position, &c.NameKey, &c.SlugKey, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

const listFaqCategories = `
SELECT id, position, name_key, slug_key, created_at, updated_at
FROM faq_category
ORDER BY position, id
`

// ListFaqCategories returns all category rows ordered by position. Serves
// the back-office list, the front-office landing page, the form select
// options and the sitemap.
func (q *Queries) ListFaqCategories(ctx context.Context) ([]FaqCategory, error) {
	rows, err := q.db.QueryContext(ctx, listFaqCategories)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cats []FaqCategory
	for rows.Next() {
		var c FaqCategory
		if err := rows.Scan(&c.ID, &c.Position, &c.NameKey, &c.SlugKey, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

const updateFaqCategory = `
UPDATE faq_category
SET position = ?, name_key = ?, slug_key = ?, updated_at = ?
WHERE id = ?
RETURNING id, position, name_key, slug_key, created_at, updated_at
`

// UpdateFaqCategoryParams holds the fields for updating a category row.
type UpdateFaqCategoryParams struct {
	ID        int64
	Position  int64
	NameKey   string
	SlugKey   string
	UpdatedAt time.Time
}

// UpdateFaqCategory updates a category row and returns it.
func (q *Queries) UpdateFaqCategory(ctx context.Context, arg UpdateFaqCategoryParams) (FaqCategory, error) {
	row := q.db.QueryRowContext(ctx, updateFaqCategory,
		arg.Position, arg.NameKey, arg.SlugKey, arg.UpdatedAt, arg.ID)
	var c FaqCategory
	err := row.Scan(&c.ID, &c.Position, &c.NameKey, &c.SlugKey, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

const deleteFaqCategory = `
DELETE FROM faq_category WHERE id = ?
`

// DeleteFaqCategory removes a category row. Translations and membership
// edges cascade. Not exposed in the back office.
func (q *Queries) DeleteFaqCategory(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteFaqCategory, id)
	return err
}

const countFaqCategories = `
SELECT COUNT(*) FROM faq_category
`

// CountFaqCategories returns the number of category rows.
func (q *Queries) CountFaqCategories(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countFaqCategories).Scan(&count)
	return count, err
}

const categoryNameKeyExists = `
SELECT EXISTS (SELECT 1 FROM faq_category WHERE name_key = ?)
`

// CategoryNameKeyExists reports whether a category already uses a name key.
func (q *Queries) CategoryNameKeyExists(ctx context.Context, nameKey string) (bool, error) {
	var exists bool
	err := q.db.QueryRowContext(ctx, categoryNameKeyExists, nameKey).Scan(&exists)
	return exists, err
}

const categoryNameKeyExistsExcluding = `
SELECT EXISTS (SELECT 1 FROM faq_category WHERE name_key = ? AND id != ?)
`

// CategoryNameKeyExistsExcludingParams identifies a name key to test,
// ignoring one category.
type CategoryNameKeyExistsExcludingParams struct {
	NameKey   string
	ExcludeID int64
}

// CategoryNameKeyExistsExcluding is CategoryNameKeyExists for edit flows.
func (q *Queries) CategoryNameKeyExistsExcluding(ctx context.Context, arg CategoryNameKeyExistsExcludingParams) (bool, error) {
	var exists bool
	err := q.db.QueryRowContext(ctx, categoryNameKeyExistsExcluding,
		arg.NameKey, arg.ExcludeID).Scan(&exists)
	return exists, err
}

const categorySlugKeyExists = `
SELECT EXISTS (SELECT 1 FROM faq_category WHERE slug_key = ?)
`

// CategorySlugKeyExists reports whether a category already uses a slug key.
func (q *Queries) CategorySlugKeyExists(ctx context.Context, slugKey string) (bool, error) {
	var exists bool
	err := q.db.QueryRowContext(ctx, categorySlugKeyExists, slugKey).Scan(&exists)
	return exists, err
}

const categorySlugKeyExistsExcluding = `
SELECT EXISTS (SELECT 1 FROM faq_category WHERE slug_key = ? AND id != ?)
`

// CategorySlugKeyExistsExcludingParams identifies a slug key to test,
// ignoring one category.
type CategorySlugKeyExistsExcludingParams struct {
	SlugKey   string
	ExcludeID int64
}

// CategorySlugKeyExistsExcluding is CategorySlugKeyExists for edit flows.
func (q *Queries) CategorySlugKeyExistsExcluding(ctx context.Context, arg CategorySlugKeyExistsExcludingParams) (bool, error) {
	var exists bool
	err := q.db.QueryRowContext(ctx, categorySlugKeyExistsExcluding,
		arg.SlugKey, arg.ExcludeID).Scan(&exists)
	return exists, err
}

const upsertFaqCategoryTranslation = `
INSERT INTO faq_category_translations (category_id, locale, field, content)
VALUES (?, ?, ?, ?)
ON CONFLICT (locale, category_id, field) DO UPDATE SET content = excluded.content
`

// UpsertFaqCategoryTranslationParams holds one locale/field/content triple.
type UpsertFaqCategoryTranslationParams struct {
	CategoryID int64
	Locale     string
	Field      string
	Content    string
}

// UpsertFaqCategoryTranslation writes a category translation row, replacing
// any previous content for the same (locale, category, field).
func (q *Queries) UpsertFaqCategoryTranslation(ctx context.Context, arg UpsertFaqCategoryTranslationParams) error {
	_, err := q.db.ExecContext(ctx, upsertFaqCategoryTranslation,
		arg.CategoryID, arg.Locale, arg.Field, arg.Content)
	return err
}

const listFaqCategoryTranslations = `
SELECT id, category_id, locale, field, content
FROM faq_category_translations
WHERE category_id = ?
ORDER BY id
`

// ListFaqCategoryTranslations returns all translation rows of one category.
func (q *Queries) ListFaqCategoryTranslations(ctx context.Context, categoryID int64) ([]FaqCategoryTranslation, error) {
	rows, err := q.db.QueryContext(ctx, listFaqCategoryTranslations, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ts []FaqCategoryTranslation
	for rows.Next() {
		var t FaqCategoryTranslation
		if err := rows.Scan(&t.ID, &t.CategoryID, &t.Locale, &t.Field, &t.Content); err != nil {
			return nil, err
		}
		ts = append(ts, t)
	}
	return ts, rows.Err()
}
