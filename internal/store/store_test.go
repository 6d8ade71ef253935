package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"
	"time"
)

// testDB creates a temporary test database.
func testDB(t *testing.T) (*sql.DB, func()) {
	t.Helper()

	f, err := os.CreateTemp("", "faq-test-*.db")
	if err != nil {
		t.Fatalf("creating temp file: %v", err)
	}
	dbPath := f.Name()
	f.Close()

	db, err := NewDB(dbPath)
	if err != nil {
		os.Remove(dbPath)
		t.Fatalf("NewDB: %v", err)
	}

	if err := Migrate(db); err != nil {
		db.Close()
		os.Remove(dbPath)
		t.Fatalf("Migrate: %v", err)
	}

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}

	return db, cleanup
}

func createTestCategory(t *testing.T, q *Queries, nameKey, slugKey string) FaqCategory {
	t.Helper()
	now := time.Now()
	cat, err := q.CreateFaqCategory(context.Background(), CreateFaqCategoryParams{
		Position:  1,
		NameKey:   nameKey,
		SlugKey:   slugKey,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("CreateFaqCategory: %v", err)
	}
	return cat
}

func createTestFaq(t *testing.T, q *Queries, categoryID int64) Faq {
	t.Helper()
	now := time.Now()
	faq, err := q.CreateFaq(context.Background(), CreateFaqParams{
		CategoryID: categoryID,
		Position:   1,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		t.Fatalf("CreateFaq: %v", err)
	}
	return faq
}

func TestCreateAndGetFaq(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	cat := createTestCategory(t, q, "faq.category.shipping.name", "faq.category.shipping.slug")
	faq := createTestFaq(t, q, cat.ID)

	got, err := q.GetFaqByID(ctx, faq.ID)
	if err != nil {
		t.Fatalf("GetFaqByID: %v", err)
	}
	if got.CategoryID != cat.ID {
		t.Errorf("CategoryID = %d, want %d", got.CategoryID, cat.ID)
	}
}

func TestUpsertFaqTranslationReplacesContent(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	cat := createTestCategory(t, q, "n", "s")
	faq := createTestFaq(t, q, cat.ID)

	for _, content := range []string{"alt", "neu"} {
		err := q.UpsertFaqTranslation(ctx, UpsertFaqTranslationParams{
			FaqID:   faq.ID,
			Locale:  "de_DE",
			Field:   "question",
			Content: content,
		})
		if err != nil {
			t.Fatalf("UpsertFaqTranslation: %v", err)
		}
	}

	ts, err := q.ListFaqTranslations(ctx, faq.ID)
	if err != nil {
		t.Fatalf("ListFaqTranslations: %v", err)
	}
	if len(ts) != 1 {
		t.Fatalf("translations = %d, want 1", len(ts))
	}
	if ts[0].Content != "neu" {
		t.Errorf("content = %q, want %q", ts[0].Content, "neu")
	}
}

func TestGetFaqDefaultTextsMissingRowsDegrade(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	cat := createTestCategory(t, q, "n", "s")
	faq := createTestFaq(t, q, cat.ID)

	// No translations at all: both values read as empty strings.
	texts, err := q.GetFaqDefaultTexts(ctx, faq.ID, "de_DE")
	if err != nil {
		t.Fatalf("GetFaqDefaultTexts: %v", err)
	}
	if texts.Question != "" || texts.Slug != "" {
		t.Errorf("texts = %+v, want empty", texts)
	}

	err = q.UpsertFaqTranslation(ctx, UpsertFaqTranslationParams{
		FaqID: faq.ID, Locale: "de_DE", Field: "question", Content: "Frage?",
	})
	if err != nil {
		t.Fatalf("UpsertFaqTranslation: %v", err)
	}

	texts, err = q.GetFaqDefaultTexts(ctx, faq.ID, "de_DE")
	if err != nil {
		t.Fatalf("GetFaqDefaultTexts: %v", err)
	}
	if texts.Question != "Frage?" {
		t.Errorf("question = %q", texts.Question)
	}
	if texts.Slug != "" {
		t.Errorf("slug = %q, want empty", texts.Slug)
	}
}

func TestFaqFieldExists(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	cat := createTestCategory(t, q, "n", "s")
	faq := createTestFaq(t, q, cat.ID)

	err := q.UpsertFaqTranslation(ctx, UpsertFaqTranslationParams{
		FaqID: faq.ID, Locale: "de_DE", Field: "question", Content: "Wie lange dauert der Versand?",
	})
	if err != nil {
		t.Fatalf("UpsertFaqTranslation: %v", err)
	}

	exists, err := q.FaqFieldExists(ctx, FaqFieldExistsParams{
		Locale: "de_DE", Field: "question", Content: "Wie lange dauert der Versand?",
	})
	if err != nil {
		t.Fatalf("FaqFieldExists: %v", err)
	}
	if !exists {
		t.Error("question should exist")
	}

	// The same content in another locale does not conflict.
	exists, err = q.FaqFieldExists(ctx, FaqFieldExistsParams{
		Locale: "en_US", Field: "question", Content: "Wie lange dauert der Versand?",
	})
	if err != nil {
		t.Fatalf("FaqFieldExists: %v", err)
	}
	if exists {
		t.Error("en_US question should not exist")
	}

	// The owning FAQ does not conflict with itself.
	exists, err = q.FaqFieldExistsExcluding(ctx, FaqFieldExistsExcludingParams{
		Locale: "de_DE", Field: "question", Content: "Wie lange dauert der Versand?", ExcludeID: faq.ID,
	})
	if err != nil {
		t.Fatalf("FaqFieldExistsExcluding: %v", err)
	}
	if exists {
		t.Error("excluded FAQ should not count as a conflict")
	}
}

func TestGetFaqIDBySlugNoLocaleFallback(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	cat := createTestCategory(t, q, "n", "s")
	faq := createTestFaq(t, q, cat.ID)

	err := q.UpsertFaqTranslation(ctx, UpsertFaqTranslationParams{
		FaqID: faq.ID, Locale: "de_DE", Field: "slug", Content: "armaturen",
	})
	if err != nil {
		t.Fatalf("UpsertFaqTranslation: %v", err)
	}

	id, err := q.GetFaqIDBySlug(ctx, GetFaqIDBySlugParams{Locale: "de_DE", Slug: "armaturen"})
	if err != nil {
		t.Fatalf("GetFaqIDBySlug: %v", err)
	}
	if id != faq.ID {
		t.Errorf("id = %d, want %d", id, faq.ID)
	}

	_, err = q.GetFaqIDBySlug(ctx, GetFaqIDBySlugParams{Locale: "it_IT", Slug: "armaturen"})
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("err = %v, want sql.ErrNoRows", err)
	}
}

func TestFaqCategoryMembershipIdempotent(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	cat := createTestCategory(t, q, "n", "s")
	faq := createTestFaq(t, q, cat.ID)
	pair := FaqCategoryPair{FaqID: faq.ID, CategoryID: cat.ID}

	// Adding twice leaves a single edge.
	for i := 0; i < 2; i++ {
		if err := q.AddFaqCategory(ctx, pair); err != nil {
			t.Fatalf("AddFaqCategory: %v", err)
		}
	}
	ids, err := q.ListFaqCategoryIDs(ctx, faq.ID)
	if err != nil {
		t.Fatalf("ListFaqCategoryIDs: %v", err)
	}
	if len(ids) != 1 || ids[0] != cat.ID {
		t.Errorf("ids = %v, want [%d]", ids, cat.ID)
	}

	// Removing twice is a no-op the second time.
	for i := 0; i < 2; i++ {
		if err := q.RemoveFaqCategory(ctx, pair); err != nil {
			t.Fatalf("RemoveFaqCategory: %v", err)
		}
	}
	ids, err = q.ListFaqCategoryIDs(ctx, faq.ID)
	if err != nil {
		t.Fatalf("ListFaqCategoryIDs: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("ids = %v, want empty", ids)
	}
}

func TestListFaqsForSitemapSkipsUntranslated(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	cat := createTestCategory(t, q, "faq.category.plumbing.name", "faq.category.plumbing.slug")
	faq := createTestFaq(t, q, cat.ID)

	err := q.UpsertFaqTranslation(ctx, UpsertFaqTranslationParams{
		FaqID: faq.ID, Locale: "de_DE", Field: "slug", Content: "armaturen",
	})
	if err != nil {
		t.Fatalf("UpsertFaqTranslation: %v", err)
	}

	rows, err := q.ListFaqsForSitemap(ctx, "de_DE")
	if err != nil {
		t.Fatalf("ListFaqsForSitemap: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if rows[0].CategorySlugKey != "faq.category.plumbing.slug" {
		t.Errorf("CategorySlugKey = %q", rows[0].CategorySlugKey)
	}
	if rows[0].Slug != "armaturen" {
		t.Errorf("Slug = %q", rows[0].Slug)
	}

	// No it_IT slug: the Italian sitemap has nothing to list.
	rows, err = q.ListFaqsForSitemap(ctx, "it_IT")
	if err != nil {
		t.Fatalf("ListFaqsForSitemap: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("rows = %d, want 0", len(rows))
	}
}

func TestCategoryNameKeyUniqueness(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	cat := createTestCategory(t, q, "faq.category.payment.name", "faq.category.payment.slug")

	exists, err := q.CategoryNameKeyExists(ctx, "faq.category.payment.name")
	if err != nil {
		t.Fatalf("CategoryNameKeyExists: %v", err)
	}
	if !exists {
		t.Error("name key should exist")
	}

	exists, err = q.CategoryNameKeyExistsExcluding(ctx, CategoryNameKeyExistsExcludingParams{
		NameKey:   "faq.category.payment.name",
		ExcludeID: cat.ID,
	})
	if err != nil {
		t.Fatalf("CategoryNameKeyExistsExcluding: %v", err)
	}
	if exists {
		t.Error("excluded category should not count as a conflict")
	}
}

func TestDeleteFaqCascades(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	cat := createTestCategory(t, q, "n", "s")
	faq := createTestFaq(t, q, cat.ID)

	err := q.UpsertFaqTranslation(ctx, UpsertFaqTranslationParams{
		FaqID: faq.ID, Locale: "de_DE", Field: "question", Content: "Frage?",
	})
	if err != nil {
		t.Fatalf("UpsertFaqTranslation: %v", err)
	}
	if err := q.AddFaqCategory(ctx, FaqCategoryPair{FaqID: faq.ID, CategoryID: cat.ID}); err != nil {
		t.Fatalf("AddFaqCategory: %v", err)
	}

	if err := q.DeleteFaq(ctx, faq.ID); err != nil {
		t.Fatalf("DeleteFaq: %v", err)
	}

	ts, err := q.ListFaqTranslations(ctx, faq.ID)
	if err != nil {
		t.Fatalf("ListFaqTranslations: %v", err)
	}
	if len(ts) != 0 {
		t.Errorf("translations = %d, want 0 after cascade", len(ts))
	}
	ids, err := q.ListFaqCategoryIDs(ctx, faq.ID)
	if err != nil {
		t.Fatalf("ListFaqCategoryIDs: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("membership edges = %d, want 0 after cascade", len(ids))
	}
}

func TestEventLogPruning(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	old := time.Now().Add(-48 * time.Hour)
	fresh := time.Now()

	for _, createdAt := range []time.Time{old, fresh} {
		err := q.CreateEvent(ctx, CreateEventParams{
			Level:     "WARN",
			Category:  "faq",
			Message:   "something happened",
			CreatedAt: createdAt,
		})
		if err != nil {
			t.Fatalf("CreateEvent: %v", err)
		}
	}

	removed, err := q.DeleteEventsBefore(ctx, time.Now().Add(-24*time.Hour))
	if err != nil {
		t.Fatalf("DeleteEventsBefore: %v", err)
	}
	if removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}

	events, err := q.ListRecentEvents(ctx, 10)
	if err != nil {
		t.Fatalf("ListRecentEvents: %v", err)
	}
	if len(events) != 1 {
		t.Errorf("events = %d, want 1", len(events))
	}
}
