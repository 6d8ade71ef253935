// Copyright (c) 2025-2026 Terra Mia
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/terramia/faq-go/internal/util"
)

// stripPolicy removes all markup from submitted text fields.
var stripPolicy = bluemonday.StrictPolicy()

// Field length bounds.
const (
	QuestionMinLen = 3
	QuestionMaxLen = 70

	TitleMinLen = 3
	TitleMaxLen = 70

	DescriptionMinLen = 130
	DescriptionMaxLen = 160

	HeadlineMinLen = 3
	HeadlineMaxLen = 70
)

// cleanField strips markup and surrounding whitespace from a form value.
func cleanField(r *http.Request, name string) string {
	return strings.TrimSpace(stripPolicy.Sanitize(r.FormValue(name)))
}

// FaqForm holds the submitted values of the FAQ create/edit form. All
// translatable values belong to the form's locale.
type FaqForm struct {
	Question    string
	Title       string
	Description string
	Slug        string
	Answer      string
	Position    int64
	CategoryID  int64
	CategoryIDs []int64 // additional category memberships
}

// parseFaqForm reads and sanitizes the FAQ form. The answer keeps its raw
// Markdown; markup is stripped from the plain-text fields only.
func parseFaqForm(r *http.Request) FaqForm {
	f := FaqForm{
		Question:    cleanField(r, "question"),
		Title:       cleanField(r, "title"),
		Description: cleanField(r, "description"),
		Slug:        cleanField(r, "slug"),
		Answer:      strings.TrimSpace(r.FormValue("answer")),
	}

	f.Position, _ = strconv.ParseInt(r.FormValue("position"), 10, 64)
	f.CategoryID, _ = strconv.ParseInt(r.FormValue("category"), 10, 64)

	for _, raw := range r.Form["categories"] {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 || id == f.CategoryID {
			continue
		}
		f.CategoryIDs = append(f.CategoryIDs, id)
	}

	return f
}

// values returns the form fields for template re-rendering.
func (f FaqForm) values() map[string]string {
	return map[string]string{
		"question":    f.Question,
		"title":       f.Title,
		"description": f.Description,
		"slug":        f.Slug,
		"answer":      f.Answer,
		"position":    strconv.FormatInt(f.Position, 10),
		"category":    strconv.FormatInt(f.CategoryID, 10),
	}
}

// validateLength checks an optional bounded text field. Empty values pass;
// required fields are checked separately.
func validateLength(value string, min, max int) bool {
	if value == "" {
		return true
	}
	n := len([]rune(value))
	return n >= min && n <= max
}

// validate performs the field checks that need no store access. Returns a
// field error map in the renderer's convention.
func (f FaqForm) validate() map[string]string {
	errs := make(map[string]string)

	switch n := len([]rune(f.Question)); {
	case f.Question == "":
		errs["question"] = "Question is required"
	case n < QuestionMinLen || n > QuestionMaxLen:
		errs["question"] = "Question must be between 3 and 70 characters"
	}

	if !validateLength(f.Title, TitleMinLen, TitleMaxLen) {
		errs["title"] = "Title must be between 3 and 70 characters"
	}
	if !validateLength(f.Description, DescriptionMinLen, DescriptionMaxLen) {
		errs["description"] = "Description must be between 130 and 160 characters"
	}
	if f.Slug != "" && !util.IsValidSlug(f.Slug) {
		errs["slug"] = "Invalid slug format (use lowercase letters, numbers, and hyphens)"
	}
	if f.CategoryID <= 0 {
		errs["category"] = "Category is required"
	}

	return errs
}

// CategoryForm holds the submitted values of the category create/edit
// form. NameKey and SlugKey are language-neutral catalog keys; the other
// fields belong to the form's locale.
type CategoryForm struct {
	NameKey     string
	SlugKey     string
	Title       string
	Description string
	Headline    string
	Teaser      string
	Position    int64
}

// parseCategoryForm reads and sanitizes the category form.
func parseCategoryForm(r *http.Request) CategoryForm {
	f := CategoryForm{
		NameKey:     cleanField(r, "name_key"),
		SlugKey:     cleanField(r, "slug_key"),
		Title:       cleanField(r, "title"),
		Description: cleanField(r, "description"),
		Headline:    cleanField(r, "headline"),
		Teaser:      strings.TrimSpace(stripPolicy.Sanitize(r.FormValue("teaser"))),
	}
	f.Position, _ = strconv.ParseInt(r.FormValue("position"), 10, 64)
	return f
}

// values returns the form fields for template re-rendering.
func (f CategoryForm) values() map[string]string {
	return map[string]string{
		"name_key":    f.NameKey,
		"slug_key":    f.SlugKey,
		"title":       f.Title,
		"description": f.Description,
		"headline":    f.Headline,
		"teaser":      f.Teaser,
		"position":    strconv.FormatInt(f.Position, 10),
	}
}

// validate performs the store-independent category field checks.
func (f CategoryForm) validate() map[string]string {
	errs := make(map[string]string)

	if f.NameKey == "" {
		errs["name_key"] = "Name key is required"
	}
	if f.SlugKey == "" {
		errs["slug_key"] = "Slug key is required"
	}
	if !validateLength(f.Title, TitleMinLen, TitleMaxLen) {
		errs["title"] = "Title must be between 3 and 70 characters"
	}
	if !validateLength(f.Description, DescriptionMinLen, DescriptionMaxLen) {
		errs["description"] = "Description must be between 130 and 160 characters"
	}
	if !validateLength(f.Headline, HeadlineMinLen, HeadlineMaxLen) {
		errs["headline"] = "Headline must be between 3 and 70 characters"
	}

	return errs
}
