package repository

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fritzoria/internal/model"
)

// ErrNotFound signals that the requested record does not exist.
var ErrNotFound = errors.New("record not found")

// BookPage is one page of catalog results plus the pagination totals for the
// full filtered set.
type BookPage struct {
	Books      []model.Book `json:"books"`
	TotalBooks int64        `json:"totalBooks"`
	TotalPages int          `json:"totalPages"`
}

// BookStore is the catalog data access surface consumed by the handlers.
type BookStore interface {
	List(opts ListOptions) (*BookPage, error)
	Get(id string) (*model.Book, error)
	NewReleases(limit int) ([]model.Book, error)
	Bestsellers(limit int) ([]model.Book, error)
	Promotions(limit int) ([]model.Book, error)
	Related(bookID string, categories []string, limit int) ([]model.Book, error)
	Create(draft model.BookDraft) (*model.Book, error)
	Update(id string, draft model.BookDraft) (*model.Book, error)
	Delete(id string) error
}

// BookRepository implements BookStore on Postgres.
type BookRepository struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) *BookRepository {
	return &BookRepository{db: db}
}

// bookSelect aggregates the category links into one comma-joined column so
// each book comes back as a single row.
const bookSelect = `SELECT b.*, string_agg(DISTINCT bc.category_id, ',') AS categories
FROM books b
LEFT JOIN book_categories bc ON b.id = bc.book_id`

// List returns one page of books matching the filter options together with
// the total count over the full filtered set. The count query consumes the
// same predicate as the page query.
func (r *BookRepository) List(opts ListOptions) (*BookPage, error) {
	opts.normalize()
	pred := buildPredicate(opts)

	var totalBooks int64
	countSQL := "SELECT COUNT(DISTINCT b.id) FROM books b" + pred.joinClause() + pred.whereClause()
	if err := r.db.Raw(countSQL, pred.args...).Scan(&totalBooks).Error; err != nil {
		return nil, err
	}

	pageSQL := bookSelect + pred.joinClause() + pred.whereClause() +
		" GROUP BY b.id" + orderClause(opts.Sort) + " LIMIT ? OFFSET ?"
	args := append(append([]interface{}{}, pred.args...), opts.Limit, opts.offset())

	var rows []bookRow
	if err := r.db.Raw(pageSQL, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	books := make([]model.Book, 0, len(rows))
	for i := range rows {
		books = append(books, rows[i].toBook())
	}

	return &BookPage{
		Books:      books,
		TotalBooks: totalBooks,
		TotalPages: totalPages(totalBooks, opts.Limit),
	}, nil
}

// Get returns a single book with its category list.
func (r *BookRepository) Get(id string) (*model.Book, error) {
	var rows []bookRow
	err := r.db.Raw(bookSelect+" WHERE b.id = ? GROUP BY b.id", id).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	book := rows[0].toBook()
	return &book, nil
}

// NewReleases returns the most recent books flagged as new.
func (r *BookRepository) NewReleases(limit int) ([]model.Book, error) {
	return r.shelf(bookSelect+` WHERE b.is_new = TRUE
GROUP BY b.id
ORDER BY b.publish_year DESC, b.created_at DESC
LIMIT ?`, limit)
}

// Bestsellers returns the top-rated books flagged as bestsellers.
func (r *BookRepository) Bestsellers(limit int) ([]model.Book, error) {
	return r.shelf(bookSelect+` WHERE b.is_bestseller = TRUE
GROUP BY b.id
ORDER BY b.rating DESC, b.review_count DESC
LIMIT ?`, limit)
}

// Promotions returns discounted books ordered by discount fraction.
func (r *BookRepository) Promotions(limit int) ([]model.Book, error) {
	return r.shelf(bookSelect+` WHERE b.original_price IS NOT NULL AND b.original_price > b.price
GROUP BY b.id
ORDER BY (b.original_price - b.price) / b.original_price DESC
LIMIT ?`, limit)
}

func (r *BookRepository) shelf(query string, limit int) ([]model.Book, error) {
	var rows []bookRow
	if err := r.db.Raw(query, limit).Scan(&rows).Error; err != nil {
		return nil, err
	}
	books := make([]model.Book, 0, len(rows))
	for i := range rows {
		books = append(books, rows[i].toBook())
	}
	return books, nil
}

// Related returns books sharing at least one category with the given book,
// excluding the book itself.
func (r *BookRepository) Related(bookID string, categories []string, limit int) ([]model.Book, error) {
	if len(categories) == 0 {
		return []model.Book{}, nil
	}

	query := `SELECT b.*, string_agg(DISTINCT bc.category_id, ',') AS categories
FROM books b
INNER JOIN book_categories bc ON b.id = bc.book_id
WHERE b.id != ? AND bc.category_id IN ?
GROUP BY b.id
ORDER BY b.rating DESC
LIMIT ?`

	var rows []bookRow
	if err := r.db.Raw(query, bookID, categories, limit).Scan(&rows).Error; err != nil {
		return nil, err
	}
	books := make([]model.Book, 0, len(rows))
	for i := range rows {
		books = append(books, rows[i].toBook())
	}
	return books, nil
}

// Create inserts a new book and its category links in one transaction and
// returns the persisted record, so defaults applied on insert are reflected
// in the response.
func (r *BookRepository) Create(draft model.BookDraft) (*model.Book, error) {
	id := newBookID()
	if draft.ID != nil && *draft.ID != "" {
		id = *draft.ID
	}

	book := model.Book{
		ID:            id,
		Title:         strVal(draft.Title),
		Author:        strVal(draft.Author),
		Publisher:     strVal(draft.Publisher),
		PublishYear:   intVal(draft.PublishYear),
		Price:         floatVal(draft.Price),
		OriginalPrice: draft.OriginalPrice,
		CoverImage:    strVal(draft.CoverImage),
		Rating:        floatVal(draft.Rating),
		ReviewCount:   intVal(draft.ReviewCount),
		Stock:         intVal(draft.Stock),
		IsNew:         boolVal(draft.IsNew),
		IsBestseller:  boolVal(draft.IsBestseller),
		Language:      "Indonesia",
		PageCount:     intVal(draft.PageCount),
		Dimensions:    strVal(draft.Dimensions),
		ISBN:          strVal(draft.ISBN),
		Weight:        draft.Weight,
		Synopsis:      strVal(draft.Synopsis),
	}
	if draft.Language != nil && *draft.Language != "" {
		book.Language = *draft.Language
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&book).Error; err != nil {
			return err
		}
		if draft.Categories != nil && len(*draft.Categories) > 0 {
			links := make([]model.BookCategory, 0, len(*draft.Categories))
			for _, categoryID := range *draft.Categories {
				links = append(links, model.BookCategory{BookID: id, CategoryID: categoryID})
			}
			if err := tx.Create(&links).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.Get(id)
}

// Update applies a partial update: only fields present in the draft are
// touched. A present category list (even an empty one) replaces all existing
// links. The row update and the link replacement share one transaction.
func (r *BookRepository) Update(id string, draft model.BookDraft) (*model.Book, error) {
	if _, err := r.Get(id); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if draft.Title != nil {
		updates["title"] = *draft.Title
	}
	if draft.Author != nil {
		updates["author"] = *draft.Author
	}
	if draft.Publisher != nil {
		updates["publisher"] = *draft.Publisher
	}
	if draft.PublishYear != nil {
		updates["publish_year"] = *draft.PublishYear
	}
	if draft.Price != nil {
		updates["price"] = *draft.Price
	}
	if draft.OriginalPrice != nil {
		updates["original_price"] = *draft.OriginalPrice
	}
	if draft.CoverImage != nil {
		updates["cover_image"] = *draft.CoverImage
	}
	if draft.Rating != nil {
		updates["rating"] = *draft.Rating
	}
	if draft.ReviewCount != nil {
		updates["review_count"] = *draft.ReviewCount
	}
	if draft.Stock != nil {
		updates["stock"] = *draft.Stock
	}
	if draft.IsNew != nil {
		updates["is_new"] = *draft.IsNew
	}
	if draft.IsBestseller != nil {
		updates["is_bestseller"] = *draft.IsBestseller
	}
	if draft.Language != nil {
		updates["language"] = *draft.Language
	}
	if draft.PageCount != nil {
		updates["page_count"] = *draft.PageCount
	}
	if draft.Dimensions != nil {
		updates["dimensions"] = *draft.Dimensions
	}
	if draft.ISBN != nil {
		updates["isbn"] = *draft.ISBN
	}
	if draft.Weight != nil {
		updates["weight"] = *draft.Weight
	}
	if draft.Synopsis != nil {
		updates["synopsis"] = *draft.Synopsis
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(&model.Book{}).Where("id = ?", id).Updates(updates).Error; err != nil {
				return err
			}
		}
		if draft.Categories != nil {
			if err := tx.Where("book_id = ?", id).Delete(&model.BookCategory{}).Error; err != nil {
				return err
			}
			if len(*draft.Categories) > 0 {
				links := make([]model.BookCategory, 0, len(*draft.Categories))
				for _, categoryID := range *draft.Categories {
					links = append(links, model.BookCategory{BookID: id, CategoryID: categoryID})
				}
				if err := tx.Create(&links).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.Get(id)
}

// Delete removes a book. Category links go with it through the ON DELETE
// CASCADE constraint on book_categories.
func (r *BookRepository) Delete(id string) error {
	if _, err := r.Get(id); err != nil {
		return err
	}
	return r.db.Delete(&model.Book{}, "id = ?", id).Error
}

func newBookID() string {
	return "book-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:10]
}

func strVal(p *string) string {
	if p != nil {
		return *p
	}
	return ""
}

func intVal(p *int) int {
	if p != nil {
		return *p
	}
	return 0
}

func floatVal(p *float64) float64 {
	if p != nil {
		return *p
	}
	return 0
}

func boolVal(p *bool) bool {
	if p != nil {
		return *p
	}
	return false
}
