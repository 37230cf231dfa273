package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListParam(t *testing.T) {
	assert.Equal(t, "", ListParam("watchlist"))
	assert.Equal(t, "", ListParam("wishlist"))
	assert.Equal(t, "", ListParam("curatedList"))
	assert.Equal(t, "Invalid list parameter. Allowed values: watchlist, wishlist, curatedList.", ListParam("favorites"))
	assert.Equal(t, "Invalid list parameter. Allowed values: watchlist, wishlist, curatedList.", ListParam(""))
}

func TestListTypeParam(t *testing.T) {
	assert.Equal(t, "", ListTypeParam(""))
	assert.Equal(t, "", ListTypeParam("watchlist"))
	assert.Equal(t, "Invalid listType parameter. Valid options are: watchlist, wishlist, curatedList.", ListTypeParam("Watchlist"))
}

func TestSortByParam(t *testing.T) {
	assert.Equal(t, "", SortByParam("rating"))
	assert.Equal(t, "", SortByParam("releaseYear"))
	assert.Equal(t, "Invalid sortBy parameter. Allowed values: rating, releaseYear.", SortByParam("title"))
}

func TestOrderParam(t *testing.T) {
	assert.Equal(t, "", OrderParam("ASC"))
	assert.Equal(t, "", OrderParam("DESC"))
	// 大小写严格
	assert.Equal(t, "Invalid order parameter. Allowed values: ASC, DESC.", OrderParam("asc"))
	assert.Equal(t, "Invalid order parameter. Allowed values: ASC, DESC.", OrderParam(""))
}

func TestReviewRating(t *testing.T) {
	assert.Equal(t, "", ReviewRating(0))
	assert.Equal(t, "", ReviewRating(10))
	assert.Equal(t, "", ReviewRating(7.5))
	assert.Equal(t, "Rating must be between 0 and 10 and should be a number.", ReviewRating(-0.1))
	assert.Equal(t, "Rating must be between 0 and 10 and should be a number.", ReviewRating(10.1))
}

func TestReviewText(t *testing.T) {
	assert.Equal(t, "", ReviewText(""))
	long := make([]byte, 501)
	for i := range long {
		long[i] = 'a'
	}
	assert.Equal(t, "Review text must not exceed 500 characters.", ReviewText(string(long)))
}
