package model

import (
	"time"
)

// Book represents a single title in the catalog. Categories is populated from
// the book_categories join table, not from a column on books.
type Book struct {
	ID            string    `json:"id" gorm:"primaryKey;type:varchar(64)"`
	Title         string    `json:"title" gorm:"type:varchar(255);not null"`
	Author        string    `json:"author" gorm:"type:varchar(255);not null"`
	Publisher     string    `json:"publisher,omitempty" gorm:"type:varchar(255)"`
	PublishYear   int       `json:"publishYear,omitempty" gorm:"column:publish_year"`
	Price         float64   `json:"price" gorm:"not null"`
	OriginalPrice *float64  `json:"originalPrice,omitempty" gorm:"column:original_price"`
	CoverImage    string    `json:"coverImage,omitempty" gorm:"column:cover_image;type:varchar(512)"`
	Rating        float64   `json:"rating" gorm:"default:0"`
	ReviewCount   int       `json:"reviewCount" gorm:"column:review_count;default:0"`
	Stock         int       `json:"stock" gorm:"default:0"`
	IsNew         bool      `json:"isNew" gorm:"column:is_new;default:false"`
	IsBestseller  bool      `json:"isBestseller" gorm:"column:is_bestseller;default:false"`
	Language      string    `json:"language" gorm:"type:varchar(50)"`
	PageCount     int       `json:"pageCount,omitempty" gorm:"column:page_count"`
	Dimensions    string    `json:"dimensions,omitempty" gorm:"type:varchar(100)"`
	ISBN          string    `json:"isbn,omitempty" gorm:"column:isbn;type:varchar(20)"`
	Weight        *float64  `json:"weight,omitempty"`
	Synopsis      string    `json:"synopsis,omitempty" gorm:"type:text"`
	Categories    []string  `json:"categories" gorm:"-"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// BookCategory links a book to a category. Rows are removed by the
// ON DELETE CASCADE constraint when the parent book is deleted.
type BookCategory struct {
	BookID     string `json:"book_id" gorm:"primaryKey;type:varchar(64)"`
	CategoryID string `json:"category_id" gorm:"primaryKey;type:varchar(64)"`
}

// TableName overrides the default pluralization ("book_categories", not
// "book_categorys").
func (BookCategory) TableName() string {
	return "book_categories"
}

// Category is a catalog category. The set is fixed by the storefront taxonomy
// and seeded by the schema, so there is no lifecycle beyond lookup.
type Category struct {
	ID   string `json:"id" gorm:"primaryKey;type:varchar(64)"`
	Name string `json:"name" gorm:"type:varchar(100);not null"`
}

// BookDraft carries client-supplied book fields for create and update
// requests. Every field is a pointer so "not provided" (nil) can be told
// apart from an intentional zero value; only non-nil fields are applied on
// partial updates.
type BookDraft struct {
	ID            *string   `json:"id"`
	Title         *string   `json:"title"`
	Author        *string   `json:"author"`
	Publisher     *string   `json:"publisher"`
	PublishYear   *int      `json:"publishYear"`
	Price         *float64  `json:"price"`
	OriginalPrice *float64  `json:"originalPrice"`
	CoverImage    *string   `json:"coverImage"`
	Rating        *float64  `json:"rating"`
	ReviewCount   *int      `json:"reviewCount"`
	Stock         *int      `json:"stock"`
	IsNew         *bool     `json:"isNew"`
	IsBestseller  *bool     `json:"isBestseller"`
	Language      *string   `json:"language"`
	PageCount     *int      `json:"pageCount"`
	Dimensions    *string   `json:"dimensions"`
	ISBN          *string   `json:"isbn"`
	Weight        *float64  `json:"weight"`
	Synopsis      *string   `json:"synopsis"`
	Categories    *[]string `json:"categories"`
}

// DiscountPercent returns the discount implied by originalPrice, or 0 when no
// original price is set or it does not exceed the current price.
func (b *Book) DiscountPercent() int {
	if b.OriginalPrice == nil || *b.OriginalPrice <= b.Price || *b.OriginalPrice <= 0 {
		return 0
	}
	return int((*b.OriginalPrice - b.Price) / *b.OriginalPrice * 100)
}
