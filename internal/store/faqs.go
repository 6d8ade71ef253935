package store

import (
	"context"
	"time"
)

const createFaq = `
INSERT INTO faq (category_id, position, created_at, updated_at)
VALUES (?, ?, ?, ?)
RETURNING id, category_id, position, created_at, updated_at
`

// CreateFaqParams holds the fields for creating a FAQ row.
type CreateFaqParams struct {
	CategoryID int64
	Position   int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// CreateFaq inserts a FAQ row and returns it.
func (q *Queries) CreateFaq(ctx context.Context, arg CreateFaqParams) (Faq, error) {
	row := q.db.QueryRowContext(ctx, createFaq,
		arg.CategoryID, arg.Position, arg.CreatedAt, arg.UpdatedAt)
	var f Faq
	err := row.Scan(&f.ID, &f.CategoryID, &f.Position, &f.CreatedAt, &f.UpdatedAt)
	return f, err
}

const getFaqByID = `
SELECT id, category_id, position, created_at, updated_at
FROM faq
WHERE id = ?
`

// GetFaqByID fetches a single FAQ row.
func (q *Queries) GetFaqByID(ctx context.Context, id int64) (Faq, error) {
	row := q.db.QueryRowContext(ctx, getFaqByID, id)
	var f Faq
	err := row.Scan(&f.ID, &f.CategoryID, &f.Position, &f.CreatedAt, &f.UpdatedAt)
	return f, err
}

const listFaqs = `
SELECT id, category_id, position, created_at, updated_at
FROM faq
ORDER BY position, id
`

// ListFaqs returns all FAQ rows ordered by position.
func (q *Queries) ListFaqs(ctx context.Context) ([]Faq, error) {
	rows, err := q.db.QueryContext(ctx, listFaqs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var faqs []Faq
	for rows.Next() {
		var f Faq
		if err := rows.Scan(&f.ID, &f.CategoryID, &f.Position, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		faqs = append(faqs, f)
	}
	return faqs, rows.Err()
}

const listFaqsByCategory = `
SELECT f.id, f.category_id, f.position, f.created_at, f.updated_at
FROM faq f
JOIN faq_categories fc ON fc.faq_id = f.id
WHERE fc.category_id = ?
ORDER BY f.position, f.id
`

// ListFaqsByCategory returns the FAQ rows that are members of a category,
// through the symmetric join table.
func (q *Queries) ListFaqsByCategory(ctx context.Context, categoryID int64) ([]Faq, error) {
	rows, err := q.db.QueryContext(ctx, listFaqsByCategory, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var faqs []Faq
	for rows.Next() {
		var f Faq
		if err := rows.Scan(&f.ID, &f.CategoryID, &f.Position, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		faqs = append(faqs, f)
	}
	return faqs, rows.Err()
}

const updateFaq = `
UPDATE faq
SET category_id = ?, position = ?, updated_at = ?
WHERE id = ?
RETURNING id, category_id, position, created_at, updated_at
`

// UpdateFaqParams holds the fields for updating a FAQ row.
type UpdateFaqParams struct {
	ID         int64
	CategoryID int64
	Position   int64
	UpdatedAt  time.Time
}

// UpdateFaq updates a FAQ row and returns it.
func (q *Queries) UpdateFaq(ctx context.Context, arg UpdateFaqParams) (Faq, error) {
	row := q.db.QueryRowContext(ctx, updateFaq,
		arg.CategoryID, arg.Position, arg.UpdatedAt, arg.ID)
	var f Faq
	err := row.Scan(&f.ID, &f.CategoryID, &f.Position, &f.CreatedAt, &f.UpdatedAt)
	return f, err
}

const deleteFaq = `
DELETE FROM faq WHERE id = ?
`

// DeleteFaq removes a FAQ row. Translations and membership edges cascade.
// Not exposed in the back office; used by tests and maintenance tooling.
func (q *Queries) DeleteFaq(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteFaq, id)
	return err
}

const countFaqs = `
SELECT COUNT(*) FROM faq
`

// CountFaqs returns the number of FAQ rows.
func (q *Queries) CountFaqs(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countFaqs).Scan(&count)
	return count, err
}

const upsertFaqTranslation = `
INSERT INTO faq_translations (faq_id, locale, field, content)
VALUES (?, ?, ?, ?)
ON CONFLICT (locale, faq_id, field) DO UPDATE SET content = excluded.content
`

// UpsertFaqTranslationParams holds one locale/field/content triple.
type UpsertFaqTranslationParams struct {
	FaqID   int64
	Locale  string
	Field   string
	Content string
}

// UpsertFaqTranslation writes a translation row, replacing any previous
// content for the same (locale, faq, field).
func (q *Queries) UpsertFaqTranslation(ctx context.Context, arg UpsertFaqTranslationParams) error {
	_, err := q.db.ExecContext(ctx, upsertFaqTranslation,
		arg.FaqID, arg.Locale, arg.Field, arg.Content)
	return err
}

const listFaqTranslations = `
SELECT id, faq_id, locale, field, content
FROM faq_translations
WHERE faq_id = ?
ORDER BY id
`

// ListFaqTranslations returns all translation rows of one FAQ.
func (q *Queries) ListFaqTranslations(ctx context.Context, faqID int64) ([]FaqTranslation, error) {
	rows, err := q.db.QueryContext(ctx, listFaqTranslations, faqID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ts []FaqTranslation
	for rows.Next() {
		var t FaqTranslation
		if err := rows.Scan(&t.ID, &t.FaqID, &t.Locale, &t.Field, &t.Content); err != nil {
			return nil, err
		}
		ts = append(ts, t)
	}
	return ts, rows.Err()
}

const listCategoryFaqTranslations = `
SELECT t.id, t.faq_id, t.locale, t.field, t.content
FROM faq_translations t
JOIN faq_categories fc ON fc.faq_id = t.faq_id
WHERE fc.category_id = ?
ORDER BY t.faq_id, t.id
`

// ListCategoryFaqTranslations returns the translation rows of every FAQ in
// a category in one round trip, for the front-office category page.
func (q *Queries) ListCategoryFaqTranslations(ctx context.Context, categoryID int64) ([]FaqTranslation, error) {
	rows, err := q.db.QueryContext(ctx, listCategoryFaqTranslations, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ts []FaqTranslation
	for rows.Next() {
		var t FaqTranslation
		if err := rows.Scan(&t.ID, &t.FaqID, &t.Locale, &t.Field, &t.Content); err != nil {
			return nil, err
		}
		ts = append(ts, t)
	}
	return ts, rows.Err()
}

const getFaqDefaultTexts = `
SELECT
    COALESCE((SELECT content FROM faq_translations WHERE faq_id = ? AND locale = ? AND field = 'question'), ''),
    COALESCE((SELECT content FROM faq_translations WHERE faq_id = ? AND locale = ? AND field = 'slug'), '')
`

// FaqDefaultTexts is the default-locale question and slug of a FAQ.
type FaqDefaultTexts struct {
	Question string
	Slug     string
}

// GetFaqDefaultTexts fetches a FAQ's question and slug for the given
// locale. Missing rows degrade to empty strings instead of an error.
func (q *Queries) GetFaqDefaultTexts(ctx context.Context, faqID int64, locale string) (FaqDefaultTexts, error) {
	row := q.db.QueryRowContext(ctx, getFaqDefaultTexts, faqID, locale, faqID, locale)
	var t FaqDefaultTexts
	err := row.Scan(&t.Question, &t.Slug)
	return t, err
}

const faqFieldExists = `
SELECT EXISTS (
    SELECT 1 FROM faq_translations
    WHERE locale = ? AND field = ? AND content = ?
)
`

// FaqFieldExistsParams identifies a locale/field/content value to test.
type FaqFieldExistsParams struct {
	Locale  string
	Field   string
	Content string
}

// FaqFieldExists reports whether any FAQ already carries the given content
// for a locale/field pair. Used for question and slug uniqueness checks.
func (q *Queries) FaqFieldExists(ctx context.Context, arg FaqFieldExistsParams) (bool, error) {
	var exists bool
	err := q.db.QueryRowContext(ctx, faqFieldExists,
		arg.Locale, arg.Field, arg.Content).Scan(&exists)
	return exists, err
}

const faqFieldExistsExcluding = `
SELECT EXISTS (
    SELECT 1 FROM faq_translations
    WHERE locale = ? AND field = ? AND content = ? AND faq_id != ?
)
`

// FaqFieldExistsExcludingParams identifies a value to test, ignoring one FAQ.
type FaqFieldExistsExcludingParams struct {
	Locale    string
	Field     string
	Content   string
	ExcludeID int64
}

// FaqFieldExistsExcluding is FaqFieldExists for edit flows: the FAQ being
// edited does not conflict with itself.
func (q *Queries) FaqFieldExistsExcluding(ctx context.Context, arg FaqFieldExistsExcludingParams) (bool, error) {
	var exists bool
	err := q.db.QueryRowContext(ctx, faqFieldExistsExcluding,
		arg.Locale, arg.Field, arg.Content, arg.ExcludeID).Scan(&exists)
	return exists, err
}

const getFaqIDBySlug = `
SELECT faq_id FROM faq_translations
WHERE locale = ? AND field = 'slug' AND content = ?
`

// GetFaqIDBySlugParams identifies a question page lookup.
type GetFaqIDBySlugParams struct {
	Locale string
	Slug   string
}

// GetFaqIDBySlug resolves a request-locale slug to a FAQ id. Slugs never
// fall back across locales: an untranslated slug is sql.ErrNoRows.
func (q *Queries) GetFaqIDBySlug(ctx context.Context, arg GetFaqIDBySlugParams) (int64, error) {
	var id int64
	err := q.db.QueryRowContext(ctx, getFaqIDBySlug, arg.Locale, arg.Slug).Scan(&id)
	return id, err
}

const addFaqCategory = `
INSERT OR IGNORE INTO faq_categories (faq_id, category_id)
VALUES (?, ?)
`

// FaqCategoryPair is one membership edge between a FAQ and a category.
type FaqCategoryPair struct {
	FaqID      int64
	CategoryID int64
}

// AddFaqCategory persists a membership edge. Idempotent: re-adding an
// existing edge is a no-op.
func (q *Queries) AddFaqCategory(ctx context.Context, arg FaqCategoryPair) error {
	_, err := q.db.ExecContext(ctx, addFaqCategory, arg.FaqID, arg.CategoryID)
	return err
}

const removeFaqCategory = `
DELETE FROM faq_categories WHERE faq_id = ? AND category_id = ?
`

// RemoveFaqCategory removes a membership edge. Idempotent: removing a
// missing edge is a no-op.
func (q *Queries) RemoveFaqCategory(ctx context.Context, arg FaqCategoryPair) error {
	_, err := q.db.ExecContext(ctx, removeFaqCategory, arg.FaqID, arg.CategoryID)
	return err
}

const listFaqCategoryIDs = `
SELECT category_id FROM faq_categories WHERE faq_id = ? ORDER BY category_id
`

// ListFaqCategoryIDs returns the ids of the categories a FAQ belongs to.
func (q *Queries) ListFaqCategoryIDs(ctx context.Context, faqID int64) ([]int64, error) {
	rows, err := q.db.QueryContext(ctx, listFaqCategoryIDs, faqID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

const listFaqsForSitemap = `
SELECT c.slug_key, t.content, f.updated_at
FROM faq f
JOIN faq_category c ON c.id = f.category_id
JOIN faq_translations t ON t.faq_id = f.id AND t.locale = ? AND t.field = 'slug'
WHERE t.content != ''
ORDER BY f.position, f.id
`

// FaqSitemapRow is one question page destined for a locale's sitemap.
// CategorySlugKey still needs resolving through the message catalog.
type FaqSitemapRow struct {
	CategorySlugKey string
	Slug            string
	UpdatedAt       time.Time
}

// ListFaqsForSitemap returns the FAQs that have a slug in the given locale,
// with their primary category's slug key.
func (q *Queries) ListFaqsForSitemap(ctx context.Context, locale string) ([]FaqSitemapRow, error) {
	rows, err := q.db.QueryContext(ctx, listFaqsForSitemap, locale)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []FaqSitemapRow
	for rows.Next() {
		var r FaqSitemapRow
		if err := rows.Scan(&r.CategorySlugKey, &r.Slug, &r.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
