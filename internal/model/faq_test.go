// Copyright (c) 2025-2026 Terra Mia
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "testing"

func symmetric(f *Faq, c *FaqCategory) bool {
	return f.HasCategory(c) == c.HasFaq(f)
}

func TestAddCategoryIsIdempotent(t *testing.T) {
	f := &Faq{ID: 1}
	c := &FaqCategory{ID: 10}

	f.AddCategory(c)
	f.AddCategory(c)

	if len(f.Categories) != 1 {
		t.Errorf("Categories length = %d, want 1", len(f.Categories))
	}
	if len(c.Faqs) != 1 {
		t.Errorf("Faqs length = %d, want 1", len(c.Faqs))
	}
}

func TestAddFaqIsIdempotent(t *testing.T) {
	f := &Faq{ID: 1}
	c := &FaqCategory{ID: 10}

	c.AddFaq(f)
	c.AddFaq(f)

	if len(c.Faqs) != 1 {
		t.Errorf("Faqs length = %d, want 1", len(c.Faqs))
	}
	if len(f.Categories) != 1 {
		t.Errorf("Categories length = %d, want 1", len(f.Categories))
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	f := &Faq{ID: 1}
	c := &FaqCategory{ID: 10}

	f.AddCategory(c)
	c.RemoveFaq(f)
	c.RemoveFaq(f)

	if len(f.Categories) != 0 {
		t.Errorf("Categories length = %d, want 0", len(f.Categories))
	}
	if len(c.Faqs) != 0 {
		t.Errorf("Faqs length = %d, want 0", len(c.Faqs))
	}
}

func TestRemoveNonMemberIsNoOp(t *testing.T) {
	f := &Faq{ID: 1}
	c := &FaqCategory{ID: 10}

	f.RemoveCategory(c)
	c.RemoveFaq(f)

	if len(f.Categories) != 0 || len(c.Faqs) != 0 {
		t.Error("removing a non-member must not mutate either side")
	}
}

// TestMembershipSymmetry drives both sides through an arbitrary sequence of
// add/remove calls and checks the relation stays symmetric after each step.
func TestMembershipSymmetry(t *testing.T) {
	f1 := &Faq{ID: 1}
	f2 := &Faq{ID: 2}
	c1 := &FaqCategory{ID: 10}
	c2 := &FaqCategory{ID: 20}

	steps := []struct {
		name string
		op   func()
	}{
		{"f1 add c1", func() { f1.AddCategory(c1) }},
		{"c1 add f2", func() { c1.AddFaq(f2) }},
		{"f1 add c2", func() { f1.AddCategory(c2) }},
		{"c2 add f1 again", func() { c2.AddFaq(f1) }},
		{"f1 remove c1", func() { f1.RemoveCategory(c1) }},
		{"c1 remove f1 again", func() { c1.RemoveFaq(f1) }},
		{"c2 remove f1", func() { c2.RemoveFaq(f1) }},
		{"f2 remove c1", func() { f2.RemoveCategory(c1) }},
	}

	for _, step := range steps {
		step.op()
		for _, f := range []*Faq{f1, f2} {
			for _, c := range []*FaqCategory{c1, c2} {
				if !symmetric(f, c) {
					t.Fatalf("after %q: membership of faq %d / category %d is asymmetric", step.name, f.ID, c.ID)
				}
			}
		}
	}

	if len(f1.Categories) != 0 || len(f2.Categories) != 0 || len(c1.Faqs) != 0 || len(c2.Faqs) != 0 {
		t.Error("all memberships should be removed at the end of the sequence")
	}
}

func TestIsSupportedLocale(t *testing.T) {
	for _, l := range SupportedLocales {
		if !IsSupportedLocale(l) {
			t.Errorf("IsSupportedLocale(%q) = false, want true", l)
		}
	}
	for _, l := range []string{"", "fr_FR", "de", "en_GB"} {
		if IsSupportedLocale(l) {
			t.Errorf("IsSupportedLocale(%q) = true, want false", l)
		}
	}
}
