package repository

import (
	"database/sql"
	"strings"
	"time"

	"fritzoria/internal/model"
)

// bookRow is the raw shape of a catalog query result: snake_case columns,
// nullable numerics, and the comma-joined category aggregate from
// string_agg.
type bookRow struct {
	ID            string          `gorm:"column:id"`
	Title         string          `gorm:"column:title"`
	Author        string          `gorm:"column:author"`
	Publisher     sql.NullString  `gorm:"column:publisher"`
	PublishYear   sql.NullInt64   `gorm:"column:publish_year"`
	Price         float64         `gorm:"column:price"`
	OriginalPrice sql.NullFloat64 `gorm:"column:original_price"`
	CoverImage    sql.NullString  `gorm:"column:cover_image"`
	Rating        sql.NullFloat64 `gorm:"column:rating"`
	ReviewCount   sql.NullInt64   `gorm:"column:review_count"`
	Stock         sql.NullInt64   `gorm:"column:stock"`
	IsNew         bool            `gorm:"column:is_new"`
	IsBestseller  bool            `gorm:"column:is_bestseller"`
	Language      sql.NullString  `gorm:"column:language"`
	PageCount     sql.NullInt64   `gorm:"column:page_count"`
	Dimensions    sql.NullString  `gorm:"column:dimensions"`
	ISBN          sql.NullString  `gorm:"column:isbn"`
	Weight        sql.NullFloat64 `gorm:"column:weight"`
	Synopsis      sql.NullString  `gorm:"column:synopsis"`
	Categories    sql.NullString  `gorm:"column:categories"`
	CreatedAt     time.Time       `gorm:"column:created_at"`
	UpdatedAt     time.Time       `gorm:"column:updated_at"`
}

// toBook maps a raw row into the canonical book shape.
func (r *bookRow) toBook() model.Book {
	book := model.Book{
		ID:           r.ID,
		Title:        r.Title,
		Author:       r.Author,
		Publisher:    r.Publisher.String,
		PublishYear:  int(r.PublishYear.Int64),
		Price:        r.Price,
		CoverImage:   r.CoverImage.String,
		Rating:       r.Rating.Float64,
		ReviewCount:  int(r.ReviewCount.Int64),
		Stock:        int(r.Stock.Int64),
		IsNew:        r.IsNew,
		IsBestseller: r.IsBestseller,
		Language:     r.Language.String,
		PageCount:    int(r.PageCount.Int64),
		Dimensions:   r.Dimensions.String,
		ISBN:         r.ISBN.String,
		Synopsis:     r.Synopsis.String,
		Categories:   splitCategories(r.Categories),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}

	if r.OriginalPrice.Valid {
		v := r.OriginalPrice.Float64
		book.OriginalPrice = &v
	}
	if r.Weight.Valid {
		v := r.Weight.Float64
		book.Weight = &v
	}

	return book
}

// splitCategories turns the aggregated category string into a list. An empty
// or NULL aggregate yields an empty list, never [""].
func splitCategories(agg sql.NullString) []string {
	if !agg.Valid || agg.String == "" {
		return []string{}
	}
	return strings.Split(agg.String, ",")
}
