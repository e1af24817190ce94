package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"fritzoria/internal/model"
	"fritzoria/internal/repository"
	"fritzoria/pkg/logger"
	"fritzoria/prometheus"
)

// Default number of books on the storefront shelves.
const defaultShelfSize = 5

// NewReleases handles the storefront shelf of recently published books
func (h *BookHandler) NewReleases(c echo.Context) error {
	return h.serveShelf(c, "new_releases", h.books.NewReleases)
}

// Bestsellers handles the storefront shelf of bestselling books
func (h *BookHandler) Bestsellers(c echo.Context) error {
	return h.serveShelf(c, "bestsellers", h.books.Bestsellers)
}

// Promotions handles the storefront shelf of discounted books
func (h *BookHandler) Promotions(c echo.Context) error {
	return h.serveShelf(c, "promotions", h.books.Promotions)
}

func (h *BookHandler) serveShelf(c echo.Context, name string, fetch func(int) ([]model.Book, error)) error {
	log := logger.FromContext(c)

	limit := parseIntParam(c, "limit")
	if limit <= 0 {
		limit = defaultShelfSize
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	books, err := fetch(limit)
	if err != nil {
		log.Error("Failed to fetch shelf", zap.String("shelf", name), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch books"})
	}

	prometheus.RecordBookOperation(name)
	return c.JSON(http.StatusOK, echo.Map{"books": books})
}

// RelatedBooks handles listing books that share a category with the given book
func (h *BookHandler) RelatedBooks(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	limit := parseIntParam(c, "limit")
	if limit <= 0 {
		limit = defaultShelfSize
	}

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

	books, err := h.books.Related(id, book.Categories, limit)
	if err != nil {
		log.Error("Failed to fetch related books", zap.String("book_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch books"})
	}

	return c.JSON(http.StatusOK, echo.Map{"books": books})
}
