package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"fritzoria/internal/model"
	"fritzoria/internal/repository"
	"fritzoria/internal/validator"
	"fritzoria/pkg/logger"
	"fritzoria/prometheus"
)

// BookHandler serves the catalog CRUD endpoints.
type BookHandler struct {
	books repository.BookStore
}

func NewBookHandler(books repository.BookStore) *BookHandler {
	return &BookHandler{books: books}
}

// ListBooks handles retrieving books with filtering, sorting and pagination
func (h *BookHandler) ListBooks(c echo.Context) error {
	log := logger.FromContext(c)

	opts := repository.ListOptions{
		Search:    c.QueryParam("search"),
		Category:  c.QueryParam("category"),
		Author:    c.QueryParam("author"),
		MinPrice:  parseFloatParam(c, "minPrice"),
		MaxPrice:  parseFloatParam(c, "maxPrice"),
		MinRating: parseFloatParam(c, "rating"),
		Sort:      c.QueryParam("sort"),
		Page:      parseIntParam(c, "page"),
		Limit:     parseIntParam(c, "limit"),
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	page, err := h.books.List(opts)
	if err != nil {
		log.Error("Failed to list books", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch books"})
	}

	prometheus.RecordBookOperation("list")
	log.Info("Books retrieved",
		zap.Int("count", len(page.Books)),
		zap.Int64("total", page.TotalBooks))
	return c.JSON(http.StatusOK, page)
}

// GetBook handles retrieving a single book by ID
func (h *BookHandler) GetBook(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	defer prometheus.TrackDBOperation("query")(time.Now())
	book, err := h.books.Get(id)
	if errors.Is(err, repository.ErrNotFound) {
		log.Warn("Book not found", zap.String("book_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Book not found"})
	}
	if err != nil {
		log.Error("Failed to fetch book", zap.String("book_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch book"})
	}

	prometheus.RecordBookView(id)
	return c.JSON(http.StatusOK, book)
}

// CreateBook handles creating a new book with its category links
func (h *BookHandler) CreateBook(c echo.Context) error {
	log := logger.FromContext(c)

	var draft model.BookDraft
	if err := c.Bind(&draft); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	if errs := validator.ValidateBook(draft, false); len(errs) > 0 {
		log.Warn("Book validation failed", zap.Strings("errors", errs))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": errs})
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	book, err := h.books.Create(draft)
	if err != nil {
		log.Error("Failed to create book", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create book"})
	}

	prometheus.RecordBookOperation("create")
	log.Info("Book created",
		zap.String("book_id", book.ID),
		zap.String("title", book.Title))
	return c.JSON(http.StatusCreated, book)
}

// UpdateBook handles a partial update of an existing book
func (h *BookHandler) UpdateBook(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var draft model.BookDraft
	if err := c.Bind(&draft); err != nil {
		log.Error("Invalid request data", zap.String("book_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	if errs := validator.ValidateBook(draft, true); len(errs) > 0 {
		log.Warn("Book validation failed",
			zap.String("book_id", id),
			zap.Strings("errors", errs))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": errs})
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	book, err := h.books.Update(id, draft)
	if errors.Is(err, repository.ErrNotFound) {
		log.Warn("Book not found for update", zap.String("book_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Book not found"})
	}
	if err != nil {
		log.Error("Failed to update book", zap.String("book_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update book"})
	}

	prometheus.RecordBookOperation("update")
	log.Info("Book updated", zap.String("book_id", id))
	return c.JSON(http.StatusOK, book)
}

// DeleteBook handles deleting a book. Category links are removed by the
// database cascade.
func (h *BookHandler) DeleteBook(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	defer prometheus.TrackDBOperation("delete")(time.Now())
	err := h.books.Delete(id)
	if errors.Is(err, repository.ErrNotFound) {
		log.Warn("Book not found for deletion", zap.String("book_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Book not found"})
	}
	if err != nil {
		log.Error("Failed to delete book", zap.String("book_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete book"})
	}

	prometheus.RecordBookOperation("delete")
	log.Info("Book deleted", zap.String("book_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "Book deleted successfully"})
}

// parseFloatParam reads a float query parameter. Malformed values count as
// not provided so they never reach the query builder.
func parseFloatParam(c echo.Context, name string) *float64 {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		logger.FromContext(c).Warn("Invalid numeric parameter",
			zap.String("param", name),
			zap.String("value", raw))
		return nil
	}
	return &value
}

// parseIntParam reads an int query parameter, returning 0 when absent or
// malformed.
func parseIntParam(c echo.Context, name string) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		logger.FromContext(c).Warn("Invalid numeric parameter",
			zap.String("param", name),
			zap.String("value", raw))
		return 0
	}
	return value
}
