package validator

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"fritzoria/internal/model"
)

func str(v string) *string { return &v }

func num(v int) *int { return &v }

func f64(v float64) *float64 { return &v }

func validDraft() model.BookDraft {
	return model.BookDraft{
		Title:  str("Laskar Pelangi"),
		Author: str("Andrea Hirata"),
		Price:  f64(89000),
	}
}

func TestCreateRequiresTitleAuthorPrice(t *testing.T) {
	errs := ValidateBook(model.BookDraft{}, false)

	assert.Len(t, errs, 3)
	assert.Contains(t, errs, "Title is required")
	assert.Contains(t, errs, "Author is required")
	assert.Contains(t, errs, "Price must be a positive number")
}

func TestCreateValidDraftPasses(t *testing.T) {
	errs := ValidateBook(validDraft(), false)
	assert.Empty(t, errs)
}

func TestCreateBlankTitleFails(t *testing.T) {
	draft := model.BookDraft{Title: str(""), Author: str("X"), Price: f64(10)}
	errs := ValidateBook(draft, false)

	found := false
	for _, e := range errs {
		if strings.Contains(e, "Title") {
			found = true
		}
	}
	assert.True(t, found, "expected a title-related error, got %v", errs)
}

func TestUpdateSkipsRequiredChecks(t *testing.T) {
	// An update with no fields at all is fine
	errs := ValidateBook(model.BookDraft{}, true)
	assert.Empty(t, errs)
}

func TestUpdateNegativePriceOnly(t *testing.T) {
	errs := ValidateBook(model.BookDraft{Price: f64(-5)}, true)

	assert.Equal(t, []string{"Price must be a positive number"}, errs)
}

func TestRangeChecks(t *testing.T) {
	maxYear := time.Now().Year() + 1

	tests := []struct {
		name    string
		mutate  func(*model.BookDraft)
		message string
	}{
		{
			name:    "negative original price",
			mutate:  func(d *model.BookDraft) { d.OriginalPrice = f64(-1) },
			message: "Original price must be a positive number",
		},
		{
			name:    "publish year too old",
			mutate:  func(d *model.BookDraft) { d.PublishYear = num(999) },
			message: "Publish year must be between 1000 and",
		},
		{
			name:    "publish year in the future",
			mutate:  func(d *model.BookDraft) { d.PublishYear = num(maxYear + 1) },
			message: "Publish year must be between 1000 and",
		},
		{
			name:    "rating above five",
			mutate:  func(d *model.BookDraft) { d.Rating = f64(5.5) },
			message: "Rating must be between 0 and 5",
		},
		{
			name:    "negative stock",
			mutate:  func(d *model.BookDraft) { d.Stock = num(-1) },
			message: "Stock cannot be negative",
		},
		{
			name:    "zero page count",
			mutate:  func(d *model.BookDraft) { d.PageCount = num(0) },
			message: "Page count must be a positive number",
		},
		{
			name:    "zero weight",
			mutate:  func(d *model.BookDraft) { d.Weight = f64(0) },
			message: "Weight must be a positive number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validDraft()
			tt.mutate(&draft)

			errs := ValidateBook(draft, false)
			assert.Len(t, errs, 1)
			assert.Contains(t, errs[0], tt.message)
		})
	}
}

func TestBoundaryValuesPass(t *testing.T) {
	draft := validDraft()
	draft.PublishYear = num(1000)
	draft.Rating = f64(5)
	draft.Stock = num(0)
	draft.PageCount = num(1)
	draft.Weight = f64(0.1)

	assert.Empty(t, ValidateBook(draft, false))
}

func TestViolationsAccumulate(t *testing.T) {
	draft := model.BookDraft{
		Rating:    f64(-1),
		Stock:     num(-3),
		PageCount: num(-10),
	}

	errs := ValidateBook(draft, true)
	assert.Len(t, errs, 3)
}

func TestOriginalPriceBelowPriceIsNotChecked(t *testing.T) {
	// No cross-field check exists: an original price lower than the price
	// passes validation.
	draft := validDraft()
	draft.OriginalPrice = f64(1)

	assert.Empty(t, ValidateBook(draft, false))
}
