// Package validator checks book drafts before they reach the database.
package validator

import (
	"fmt"
	"strings"
	"time"

	"fritzoria/internal/model"
)

// ValidateBook checks a book draft and returns the full list of violations,
// empty when the draft is valid. On create, title, author and price are
// required; on update only the fields actually present are checked.
func ValidateBook(draft model.BookDraft, isUpdate bool) []string {
	var errs []string

	// Required fields check (only for creation, not update)
	if !isUpdate {
		if draft.Title == nil || strings.TrimSpace(*draft.Title) == "" {
			errs = append(errs, "Title is required")
		}
		if draft.Author == nil || strings.TrimSpace(*draft.Author) == "" {
			errs = append(errs, "Author is required")
		}
		if draft.Price == nil || *draft.Price <= 0 {
			errs = append(errs, "Price must be a positive number")
		}
	}

	// Range checks for any field that is present
	if draft.Title != nil && strings.TrimSpace(*draft.Title) == "" {
		errs = append(errs, "Title cannot be empty")
	}

	if draft.Author != nil && strings.TrimSpace(*draft.Author) == "" {
		errs = append(errs, "Author cannot be empty")
	}

	if isUpdate && draft.Price != nil && *draft.Price <= 0 {
		errs = append(errs, "Price must be a positive number")
	}

	if draft.OriginalPrice != nil && *draft.OriginalPrice <= 0 {
		errs = append(errs, "Original price must be a positive number")
	}

	if draft.PublishYear != nil {
		maxYear := time.Now().Year() + 1
		if *draft.PublishYear < 1000 || *draft.PublishYear > maxYear {
			errs = append(errs, fmt.Sprintf("Publish year must be between 1000 and %d", maxYear))
		}
	}

	if draft.Rating != nil && (*draft.Rating < 0 || *draft.Rating > 5) {
		errs = append(errs, "Rating must be between 0 and 5")
	}

	if draft.Stock != nil && *draft.Stock < 0 {
		errs = append(errs, "Stock cannot be negative")
	}

	if draft.PageCount != nil && *draft.PageCount <= 0 {
		errs = append(errs, "Page count must be a positive number")
	}

	if draft.Weight != nil && *draft.Weight <= 0 {
		errs = append(errs, "Weight must be a positive number")
	}

	return errs
}
