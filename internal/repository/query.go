package repository

import (
	"math"
	"strings"
)

// DefaultPageSize is the catalog page size used when the client does not ask
// for one.
const DefaultPageSize = 12

// ListOptions is the filter bag for catalog listing. Numeric filters are
// pointers so "not provided" can be told apart from zero; the handler is
// responsible for coercing query parameters, malformed values never reach
// the builder.
type ListOptions struct {
	Search    string
	Category  string
	Author    string
	MinPrice  *float64
	MaxPrice  *float64
	MinRating *float64
	Sort      string
	Page      int
	Limit     int
}

func (o *ListOptions) normalize() {
	if o.Page < 1 {
		o.Page = 1
	}
	if o.Limit <= 0 {
		o.Limit = DefaultPageSize
	}
}

func (o *ListOptions) offset() int {
	return (o.Page - 1) * o.Limit
}

// predicate is the shared filter for the page query and the count query.
// Both consume the same joins, conditions and arguments, so the two
// statements cannot drift apart.
type predicate struct {
	joins []string
	conds []string
	args  []interface{}
}

func buildPredicate(opts ListOptions) predicate {
	var p predicate

	if opts.Search != "" {
		p.conds = append(p.conds, "(b.title ILIKE ? OR b.author ILIKE ?)")
		pattern := "%" + opts.Search + "%"
		p.args = append(p.args, pattern, pattern)
	}

	if opts.Category != "" {
		// Filtering by category needs its own join through the link table so
		// the aggregate over bc stays complete per book.
		p.joins = append(p.joins, "INNER JOIN book_categories bc2 ON b.id = bc2.book_id INNER JOIN categories c ON bc2.category_id = c.id")
		p.conds = append(p.conds, "c.id = ?")
		p.args = append(p.args, opts.Category)
	}

	if opts.Author != "" {
		p.conds = append(p.conds, "b.author = ?")
		p.args = append(p.args, opts.Author)
	}

	if opts.MinPrice != nil {
		p.conds = append(p.conds, "b.price >= ?")
		p.args = append(p.args, *opts.MinPrice)
	}

	if opts.MaxPrice != nil {
		p.conds = append(p.conds, "b.price <= ?")
		p.args = append(p.args, *opts.MaxPrice)
	}

	if opts.MinRating != nil {
		p.conds = append(p.conds, "b.rating >= ?")
		p.args = append(p.args, *opts.MinRating)
	}

	return p
}

func (p predicate) joinClause() string {
	if len(p.joins) == 0 {
		return ""
	}
	return " " + strings.Join(p.joins, " ")
}

func (p predicate) whereClause() string {
	if len(p.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(p.conds, " AND ")
}

// orderClause maps a sort key to a fixed ordering. Unknown keys fall back to
// the featured ordering.
func orderClause(sort string) string {
	switch sort {
	case "newest":
		return " ORDER BY b.publish_year DESC, b.created_at DESC"
	case "price-asc":
		return " ORDER BY b.price ASC"
	case "price-desc":
		return " ORDER BY b.price DESC"
	case "rating":
		return " ORDER BY b.rating DESC"
	default:
		return " ORDER BY b.is_bestseller DESC, b.rating DESC"
	}
}

func totalPages(totalBooks int64, limit int) int {
	return int(math.Ceil(float64(totalBooks) / float64(limit)))
}
