// Copyright (c) 2025-2026 Terra Mia
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model holds the FAQ domain types. The FAQ/category membership
// relation is kept symmetric by construction: the add/remove operations on
// either side update both sides exactly once and are idempotent.
package model

import "time"

// Faq is a question/answer entry. The translatable fields hold the values
// for one explicitly requested locale; the locale itself is never stored on
// the entity but passed through repository and resolver calls.
type Faq struct {
	ID       int64
	Position int

	// Category is the primary category; Categories is the full
	// many-to-many membership set, primary included or not as edited.
	Category   *FaqCategory
	Categories []*FaqCategory

	Title       string
	Description string
	Question    string
	Slug        string
	Answer      string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FaqCategory groups FAQ entries. NameKey and SlugKey are language-neutral
// translation keys shared across locales and resolved through the message
// catalog; Title/Description/Headline/Teaser are per-locale values.
type FaqCategory struct {
	ID       int64
	Position int

	NameKey string
	SlugKey string

	Faqs []*Faq

	Title       string
	Description string
	Headline    string
	Teaser      string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasCategory reports whether c is in the FAQ's membership set.
func (f *Faq) HasCategory(c *FaqCategory) bool {
	for _, existing := range f.Categories {
		if existing == c {
			return true
		}
	}
	return false
}

// AddCategory adds c to the FAQ's membership set and the FAQ to c's set.
// Adding an existing member is a no-op.
func (f *Faq) AddCategory(c *FaqCategory) {
	if f.HasCategory(c) {
		return
	}
	f.Categories = append(f.Categories, c)
	c.AddFaq(f)
}

// RemoveCategory removes c from the FAQ's membership set and the FAQ from
// c's set. Removing a non-member is a no-op.
func (f *Faq) RemoveCategory(c *FaqCategory) {
	if !f.HasCategory(c) {
		return
	}
	for i, existing := range f.Categories {
		if existing == c {
			f.Categories = append(f.Categories[:i], f.Categories[i+1:]...)
			break
		}
	}
	c.RemoveFaq(f)
}

// HasFaq reports whether q is in the category's membership set.
func (c *FaqCategory) HasFaq(q *Faq) bool {
	for _, existing := range c.Faqs {
		if existing == q {
			return true
		}
	}
	return false
}

// AddFaq adds q to the category's membership set and the category to q's
// set. Adding an existing member is a no-op.
func (c *FaqCategory) AddFaq(q *Faq) {
	if c.HasFaq(q) {
		return
	}
	c.Faqs = append(c.Faqs, q)
	q.AddCategory(c)
}

// RemoveFaq removes q from the category's membership set and the category
// from q's set. Removing a non-member is a no-op.
func (c *FaqCategory) RemoveFaq(q *Faq) {
	if !c.HasFaq(q) {
		return
	}
	for i, existing := range c.Faqs {
		if existing == q {
			c.Faqs = append(c.Faqs[:i], c.Faqs[i+1:]...)
			break
		}
	}
	q.RemoveCategory(c)
}
