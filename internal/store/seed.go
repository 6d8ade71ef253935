package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/terramia/faq-go/internal/model"
	"github.com/terramia/faq-go/internal/util"
)

// seedCategory describes one demo category with its per-locale texts.
type seedCategory struct {
	nameKey string
	slugKey string
	titles  map[string]string
	teasers map[string]string
}

// seedFaq describes one demo FAQ. Untranslated locales stay absent so the
// demo content exercises the alternate-URL omission paths.
type seedFaq struct {
	category  string // name_key of the primary category
	questions map[string]string
	answers   map[string]string
}

// Seed creates demo content when the database is empty.
func Seed(ctx context.Context, db *sql.DB) error {
	queries := New(db)

	count, err := queries.CountFaqCategories(ctx)
	if err != nil {
		return fmt.Errorf("counting categories: %w", err)
	}
	if count > 0 {
		slog.Info("categories already exist, skipping seed")
		return nil
	}

	categories := []seedCategory{
		{
			nameKey: "faq.category.shipping.name",
			slugKey: "faq.category.shipping.slug",
			titles: map[string]string{
				model.LocaleGerman:  "Versand & Lieferung",
				model.LocaleEnglish: "Shipping & Delivery",
				model.LocaleItalian: "Spedizione e consegna",
			},
			teasers: map[string]string{
				model.LocaleGerman:  "Alles rund um Versandkosten, Lieferzeiten und Sendungsverfolgung.",
				model.LocaleEnglish: "Everything about shipping costs, delivery times and tracking.",
				model.LocaleItalian: "Tutto su costi di spedizione, tempi di consegna e tracciamento.",
			},
		},
		{
			nameKey: "faq.category.payment.name",
			slugKey: "faq.category.payment.slug",
			titles: map[string]string{
				model.LocaleGerman:  "Zahlung",
				model.LocaleEnglish: "Payment",
				model.LocaleItalian: "Pagamento",
			},
		},
		{
			nameKey: "faq.category.products.name",
			slugKey: "faq.category.products.slug",
			titles: map[string]string{
				model.LocaleGerman:  "Produkte",
				model.LocaleEnglish: "Products",
				model.LocaleItalian: "Prodotti",
			},
		},
	}

	faqs := []seedFaq{
		{
			category: "faq.category.shipping.name",
			questions: map[string]string{
				model.LocaleGerman:  "Wie lange dauert der Versand?",
				model.LocaleEnglish: "How long does shipping take?",
				model.LocaleItalian: "Quanto dura la spedizione?",
			},
			answers: map[string]string{
				model.LocaleGerman:  "Innerhalb Deutschlands in der Regel **2–3 Werktage**.",
				model.LocaleEnglish: "Within Germany usually **2–3 business days**.",
				model.LocaleItalian: "In Germania di solito **2–3 giorni lavorativi**.",
			},
		},
		{
			category: "faq.category.payment.name",
			questions: map[string]string{
				model.LocaleGerman:  "Welche Zahlungsarten werden akzeptiert?",
				model.LocaleEnglish: "Which payment methods are accepted?",
			},
			answers: map[string]string{
				model.LocaleGerman:  "Wir akzeptieren Kreditkarte, PayPal und Überweisung.",
				model.LocaleEnglish: "We accept credit card, PayPal and bank transfer.",
			},
		},
		{
			// German-only entry: no alternate URLs should be advertised.
			category: "faq.category.products.name",
			questions: map[string]string{
				model.LocaleGerman: "Woher stammt das Olivenöl?",
			},
			answers: map[string]string{
				model.LocaleGerman: "Unser Olivenöl stammt von Familienbetrieben in Kampanien.",
			},
		},
	}

	now := time.Now()
	categoryIDs := make(map[string]int64)

	for i, sc := range categories {
		cat, err := queries.CreateFaqCategory(ctx, CreateFaqCategoryParams{
			Position:  int64(i + 1),
			NameKey:   sc.nameKey,
			SlugKey:   sc.slugKey,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("seeding category %s: %w", sc.nameKey, err)
		}
		categoryIDs[sc.nameKey] = cat.ID

		for locale, title := range sc.titles {
			err = queries.UpsertFaqCategoryTranslation(ctx, UpsertFaqCategoryTranslationParams{
				CategoryID: cat.ID,
				Locale:     locale,
				Field:      model.FieldTitle,
				Content:    title,
			})
			if err != nil {
				return fmt.Errorf("seeding category translation: %w", err)
			}
		}
		for locale, teaser := range sc.teasers {
			err = queries.UpsertFaqCategoryTranslation(ctx, UpsertFaqCategoryTranslationParams{
				CategoryID: cat.ID,
				Locale:     locale,
				Field:      model.FieldTeaser,
				Content:    teaser,
			})
			if err != nil {
				return fmt.Errorf("seeding category translation: %w", err)
			}
		}
	}

	for i, sf := range faqs {
		catID := categoryIDs[sf.category]
		faq, err := queries.CreateFaq(ctx, CreateFaqParams{
			CategoryID: catID,
			Position:   int64(i + 1),
			CreatedAt:  now,
			UpdatedAt:  now,
		})
		if err != nil {
			return fmt.Errorf("seeding faq: %w", err)
		}
		if err := queries.AddFaqCategory(ctx, FaqCategoryPair{FaqID: faq.ID, CategoryID: catID}); err != nil {
			return fmt.Errorf("seeding faq membership: %w", err)
		}

		for locale, question := range sf.questions {
			for field, content := range map[string]string{
				model.FieldQuestion: question,
				model.FieldSlug:     util.Slugify(question),
				model.FieldAnswer:   sf.answers[locale],
			} {
				err = queries.UpsertFaqTranslation(ctx, UpsertFaqTranslationParams{
					FaqID:   faq.ID,
					Locale:  locale,
					Field:   field,
					Content: content,
				})
				if err != nil {
					return fmt.Errorf("seeding faq translation: %w", err)
				}
			}
		}
	}

	slog.Info("seeded demo content",
		"categories", len(categories),
		"faqs", len(faqs))
	return nil
}
