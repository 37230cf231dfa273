package model

import (
	"time"
)

// Movie 电影模型（TMDB 信息，首次被引用时惰性入库）
type Movie struct {
	ID          int       `json:"id" db:"id"`
	TmdbID      int       `json:"tmdbId" db:"tmdb_id" gorm:"unique"`
	Title       string    `json:"title" db:"title"`
	Genre       string    `json:"genre" db:"genre"`   // 逗号拼接的类型名
	Actors      string    `json:"actors" db:"actors"` // 逗号拼接的前五位演员
	Director    string    `json:"director" db:"director"`
	ReleaseYear int       `json:"releaseYear" db:"release_year"`
	Rating      *float64  `json:"rating" db:"rating" gorm:"index"` // NULL 表示暂无评分
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// MovieSummary TMDB 搜索结果（未入库）
type MovieSummary struct {
	Title       string  `json:"title"`
	TmdbID      int     `json:"tmdbId"`
	Genre       string  `json:"genre"`
	Actors      string  `json:"actors"`
	ReleaseYear int     `json:"releaseYear"`
	Rating      float64 `json:"rating"`
	Description string  `json:"description"`
}

// WatchlistEntry 待看清单成员
type WatchlistEntry struct {
	ID      int       `json:"id" db:"id"`
	MovieID int       `json:"movieId" db:"movie_id" gorm:"index"`
	AddedAt time.Time `json:"addedAt" db:"added_at"`
}

func (WatchlistEntry) TableName() string { return "watchlists" }

// WishlistEntry 愿望清单成员
type WishlistEntry struct {
	ID      int       `json:"id" db:"id"`
	MovieID int       `json:"movieId" db:"movie_id" gorm:"index"`
	AddedAt time.Time `json:"addedAt" db:"added_at"`
}

func (WishlistEntry) TableName() string { return "wishlists" }

// CuratedList 精选清单
type CuratedList struct {
	ID          int       `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Slug        string    `json:"slug" db:"slug" gorm:"unique"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// CuratedListItem 精选清单成员
type CuratedListItem struct {
	ID            int       `json:"id" db:"id"`
	CuratedListID int       `json:"curatedListId" db:"curated_list_id" gorm:"index"`
	MovieID       int       `json:"movieId" db:"movie_id" gorm:"index"`
	AddedAt       time.Time `json:"addedAt" db:"added_at"`
}

// Review 影评
type Review struct {
	ID         int       `json:"id" db:"id"`
	MovieID    int       `json:"movieId" db:"movie_id" gorm:"index"`
	Rating     float64   `json:"rating" db:"rating"`
	ReviewText string    `json:"reviewText" db:"review_text"`
	AddedAt    time.Time `json:"addedAt" db:"added_at"`
}

// ListKind 清单类型的封闭枚举，未知值在入口处拒绝
type ListKind string

const (
	ListWatchlist ListKind = "watchlist"
	ListWishlist  ListKind = "wishlist"
	ListCurated   ListKind = "curatedList"
)

// ParseListKind 解析清单类型参数
func ParseListKind(s string) (ListKind, bool) {
	switch ListKind(s) {
	case ListWatchlist, ListWishlist, ListCurated:
		return ListKind(s), true
	}
	return "", false
}

// MembershipTable 清单类型对应的成员表名
func (k ListKind) MembershipTable() string {
	switch k {
	case ListWatchlist:
		return "watchlists"
	case ListWishlist:
		return "wishlists"
	case ListCurated:
		return "curated_list_items"
	}
	return ""
}
