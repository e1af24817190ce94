package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func f64(v float64) *float64 { return &v }

func TestBuildPredicateEmpty(t *testing.T) {
	p := buildPredicate(ListOptions{})

	assert.Empty(t, p.joinClause())
	assert.Empty(t, p.whereClause())
	assert.Empty(t, p.args)
}

func TestBuildPredicateSearch(t *testing.T) {
	p := buildPredicate(ListOptions{Search: "laskar"})

	assert.Equal(t, " WHERE (b.title ILIKE ? OR b.author ILIKE ?)", p.whereClause())
	assert.Equal(t, []interface{}{"%laskar%", "%laskar%"}, p.args)
}

func TestBuildPredicateCategoryAddsJoin(t *testing.T) {
	p := buildPredicate(ListOptions{Category: "fiction"})

	assert.Contains(t, p.joinClause(), "INNER JOIN book_categories bc2")
	assert.Equal(t, " WHERE c.id = ?", p.whereClause())
	assert.Equal(t, []interface{}{"fiction"}, p.args)
}

func TestBuildPredicateAuthorExactMatch(t *testing.T) {
	p := buildPredicate(ListOptions{Author: "Tere Liye"})

	assert.Equal(t, " WHERE b.author = ?", p.whereClause())
	assert.Equal(t, []interface{}{"Tere Liye"}, p.args)
}

func TestBuildPredicateCombinesWithAnd(t *testing.T) {
	p := buildPredicate(ListOptions{
		Search:    "bumi",
		Author:    "Pramoedya Ananta Toer",
		MinPrice:  f64(50000),
		MaxPrice:  f64(150000),
		MinRating: f64(4),
	})

	where := p.whereClause()
	assert.Equal(t, " WHERE (b.title ILIKE ? OR b.author ILIKE ?) AND b.author = ? AND b.price >= ? AND b.price <= ? AND b.rating >= ?", where)
	assert.Len(t, p.args, 6)
}

func TestBuildPredicatePriceBoundsIndependent(t *testing.T) {
	low := buildPredicate(ListOptions{MinPrice: f64(10)})
	assert.Equal(t, " WHERE b.price >= ?", low.whereClause())

	high := buildPredicate(ListOptions{MaxPrice: f64(90)})
	assert.Equal(t, " WHERE b.price <= ?", high.whereClause())
}

func TestOrderClause(t *testing.T) {
	tests := []struct {
		sort string
		want string
	}{
		{"newest", " ORDER BY b.publish_year DESC, b.created_at DESC"},
		{"price-asc", " ORDER BY b.price ASC"},
		{"price-desc", " ORDER BY b.price DESC"},
		{"rating", " ORDER BY b.rating DESC"},
		{"featured", " ORDER BY b.is_bestseller DESC, b.rating DESC"},
		// Unknown keys fall back to featured
		{"bogus", " ORDER BY b.is_bestseller DESC, b.rating DESC"},
		{"", " ORDER BY b.is_bestseller DESC, b.rating DESC"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, orderClause(tt.sort), "sort %q", tt.sort)
	}
}

func TestNormalizeDefaults(t *testing.T) {
	opts := ListOptions{}
	opts.normalize()

	assert.Equal(t, 1, opts.Page)
	assert.Equal(t, DefaultPageSize, opts.Limit)
	assert.Equal(t, 0, opts.offset())
}

func TestOffsetIsOneIndexed(t *testing.T) {
	opts := ListOptions{Page: 3, Limit: 12}
	opts.normalize()

	assert.Equal(t, 24, opts.offset())
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, totalPages(0, 12))
	assert.Equal(t, 1, totalPages(1, 12))
	assert.Equal(t, 1, totalPages(12, 12))
	assert.Equal(t, 2, totalPages(13, 12))
	assert.Equal(t, 9, totalPages(100, 12))
}
