package filters_test

import (
	"net/url"
	"testing"
	"time"

	"shopapi/app/filters"
)

func TestParseProductFilter(t *testing.T) {
	q := url.Values{
		"price_min":   {"100"},
		"price_max":   {"500"},
		"name":        {"kettle"},
		"description": {"steel"},
	}

	f, errs := filters.ParseProductFilter(q)
	if len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	if f.PriceMin == nil || *f.PriceMin != 100 {
		t.Errorf("PriceMin = %v, want 100", f.PriceMin)
	}
	if f.PriceMax == nil || *f.PriceMax != 500 {
		t.Errorf("PriceMax = %v, want 500", f.PriceMax)
	}
	if f.Name != "kettle" || f.Description != "steel" {
		t.Errorf("text filters = %q/%q", f.Name, f.Description)
	}
}

func TestParseProductFilterEmpty(t *testing.T) {
	f, errs := filters.ParseProductFilter(url.Values{})
	if len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if f != (filters.ProductFilter{}) {
		t.Errorf("expected zero filter, got %+v", f)
	}
}

func TestParseProductFilterBadInt(t *testing.T) {
	_, errs := filters.ParseProductFilter(url.Values{"price_min": {"cheap"}})
	if _, ok := errs["price_min"]; !ok {
		t.Errorf("expected price_min error, got %v", errs)
	}
}

func TestParseReviewFilter(t *testing.T) {
	q := url.Values{
		"user":     {"7"},
		"product":  {"3"},
		"creation": {"2026-08-01"},
	}

	f, errs := filters.ParseReviewFilter(q)
	if len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	if f.UserID == nil || *f.UserID != 7 {
		t.Errorf("UserID = %v, want 7", f.UserID)
	}
	if f.ProductID == nil || *f.ProductID != 3 {
		t.Errorf("ProductID = %v, want 3", f.ProductID)
	}
	want := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	if f.Creation == nil || !f.Creation.Equal(want) {
		t.Errorf("Creation = %v, want %v", f.Creation, want)
	}
}

func TestParseReviewFilterBadDate(t *testing.T) {
	_, errs := filters.ParseReviewFilter(url.Values{"creation": {"01/08/2026"}})
	if _, ok := errs["creation"]; !ok {
		t.Errorf("expected creation error, got %v", errs)
	}

	_, errs = filters.ParseReviewFilter(url.Values{"user": {"-1"}})
	if _, ok := errs["user"]; !ok {
		t.Errorf("expected user error, got %v", errs)
	}
}

func TestParseOrderFilter(t *testing.T) {
	q := url.Values{
		"status":         {"NEW"},
		"price_min":      {"50"},
		"created_after":  {"2026-01-01"},
		"created_before": {"2026-12-31"},
		"product":        {"4"},
	}

	f, errs := filters.ParseOrderFilter(q)
	if len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	if f.Status != "NEW" {
		t.Errorf("Status = %q, want NEW", f.Status)
	}
	if f.PriceMin == nil || *f.PriceMin != 50 {
		t.Errorf("PriceMin = %v, want 50", f.PriceMin)
	}
	if f.CreatedAfter == nil || f.CreatedBefore == nil {
		t.Fatal("expected both creation bounds to parse")
	}
	if f.ProductID == nil || *f.ProductID != 4 {
		t.Errorf("ProductID = %v, want 4", f.ProductID)
	}
}

func TestParseOrderFilterCollectsAllErrors(t *testing.T) {
	q := url.Values{
		"price_min":     {"x"},
		"price_max":     {"y"},
		"created_after": {"yesterday"},
	}

	_, errs := filters.ParseOrderFilter(q)
	for _, key := range []string{"price_min", "price_max", "created_after"} {
		if _, ok := errs[key]; !ok {
			t.Errorf("expected error for %s, got %v", key, errs)
		}
	}
}
