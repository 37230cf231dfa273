package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/user/curio/internal/model"
	"github.com/user/curio/internal/repository"
	"github.com/user/curio/internal/utils"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

// TMDBService TMDB 元数据客户端 + 电影惰性入库
type TMDBService struct {
	BaseURL   string
	client    *http.Client
	token     string
	limiter   *rate.Limiter
	movieRepo *repository.MovieRepository

	Genres      *GenreCache
	searchCache *utils.TTLCache[[]model.MovieSummary]
	group       singleflight.Group
}

func NewTMDBService(movieRepo *repository.MovieRepository, token string) *TMDBService {
	s := &TMDBService{
		BaseURL:     "https://api.themoviedb.org/3",
		client:      &http.Client{Timeout: 10 * time.Second},
		token:       token,
		limiter:     rate.NewLimiter(rate.Every(50*time.Millisecond), 10),
		movieRepo:   movieRepo,
		searchCache: utils.NewTTLCache[[]model.MovieSummary](1000, time.Hour),
	}
	s.Genres = NewGenreCache(24*time.Hour, s.fetchGenres)
	return s
}

func (s *TMDBService) get(ctx context.Context, path string, target interface{}) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.BaseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("tmdb request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("tmdb returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("tmdb response decode failed: %w", err)
	}
	return nil
}

type tmdbCastMember struct {
	Name               string `json:"name"`
	KnownForDepartment string `json:"known_for_department"`
}

type tmdbCrewMember struct {
	Name string `json:"name"`
	Job  string `json:"job"`
}

type tmdbSearchResponse struct {
	Results []struct {
		ID          int     `json:"id"`
		Title       string  `json:"title"`
		GenreIDs    []int   `json:"genre_ids"`
		ReleaseDate string  `json:"release_date"`
		VoteAverage float64 `json:"vote_average"`
		Overview    string  `json:"overview"`
	} `json:"results"`
}

type tmdbCreditsResponse struct {
	Cast []tmdbCastMember `json:"cast"`
}

type tmdbDetailResponse struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	ReleaseDate string  `json:"release_date"`
	VoteAverage float64 `json:"vote_average"`
	Genres      []struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"genres"`
	Credits struct {
		Cast []tmdbCastMember `json:"cast"`
		Crew []tmdbCrewMember `json:"crew"`
	} `json:"credits"`
}

type tmdbGenreListResponse struct {
	Genres []struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"genres"`
}

// fetchGenres 拉取完整的类型映射（GenreCache 的读穿回调）
func (s *TMDBService) fetchGenres(ctx context.Context) (map[int]string, error) {
	var result tmdbGenreListResponse
	if err := s.get(ctx, "/genre/movie/list", &result); err != nil {
		return nil, err
	}
	genres := make(map[int]string, len(result.Genres))
	for _, g := range result.Genres {
		genres[g.ID] = g.Name
	}
	return genres, nil
}

// SearchMovies 搜索电影，逐条补充演员表并映射类型名。
// 单条 credits 拉取失败时跳过该条，不影响整体结果。
func (s *TMDBService) SearchMovies(ctx context.Context, query string) ([]model.MovieSummary, error) {
	if cached, found := s.searchCache.Get(query); found {
		return cached, nil
	}

	var result tmdbSearchResponse
	if err := s.get(ctx, "/search/movie?query="+url.QueryEscape(query), &result); err != nil {
		return nil, err
	}

	movies := make([]model.MovieSummary, 0, len(result.Results))
	for _, item := range result.Results {
		var credits tmdbCreditsResponse
		if err := s.get(ctx, fmt.Sprintf("/movie/%d/credits", item.ID), &credits); err != nil {
			log.Printf("[TMDB] 获取演员表失败 (TmdbID: %d): %v", item.ID, err)
			continue
		}

		genre, err := s.Genres.MapIDs(ctx, item.GenreIDs)
		if err != nil {
			return nil, err
		}

		movies = append(movies, model.MovieSummary{
			Title:       item.Title,
			TmdbID:      item.ID,
			Genre:       genre,
			Actors:      topCast(credits.Cast, 5),
			ReleaseYear: yearOf(item.ReleaseDate),
			Rating:      item.VoteAverage,
			Description: item.Overview,
		})
	}

	s.searchCache.Set(query, movies)
	return movies, nil
}

// EnsureMovie 保证 TMDB ID 对应的电影已入库：
// 本地已有直接返回，否则拉取详情+演员表后插入。
// singleflight 避免并发重复抓取；抓取失败不会留下残缺记录。
func (s *TMDBService) EnsureMovie(ctx context.Context, tmdbID int) (*model.Movie, error) {
	val, err, _ := s.group.Do(strconv.Itoa(tmdbID), func() (interface{}, error) {
		return s.ensureMovie(ctx, tmdbID)
	})
	if err != nil {
		return nil, err
	}
	return val.(*model.Movie), nil
}

func (s *TMDBService) ensureMovie(ctx context.Context, tmdbID int) (*model.Movie, error) {
	movie, err := s.movieRepo.FindByTmdbID(tmdbID)
	if err != nil {
		return nil, err
	}
	if movie != nil {
		return movie, nil
	}

	var detail tmdbDetailResponse
	if err := s.get(ctx, fmt.Sprintf("/movie/%d?append_to_response=credits", tmdbID), &detail); err != nil {
		return nil, err
	}
	if detail.ID == 0 || detail.Title == "" {
		return nil, fmt.Errorf("tmdb returned incomplete details for movie %d", tmdbID)
	}

	names := make([]string, 0, len(detail.Genres))
	for _, g := range detail.Genres {
		names = append(names, g.Name)
	}

	movie = &model.Movie{
		TmdbID:      detail.ID,
		Title:       detail.Title,
		Genre:       joinOrUnknown(names),
		Actors:      topCast(detail.Credits.Cast, 5),
		Director:    directorOf(detail.Credits.Crew),
		ReleaseYear: yearOf(detail.ReleaseDate),
		Description: detail.Overview,
	}
	// TMDB 用 0 表示暂无评分，本地记为 NULL
	if detail.VoteAverage > 0 {
		rating := detail.VoteAverage
		movie.Rating = &rating
	}

	if err := s.movieRepo.Create(movie); err != nil {
		return nil, err
	}
	return movie, nil
}

// topCast 取前 n 位演员名，逗号拼接
func topCast(cast []tmdbCastMember, n int) string {
	names := make([]string, 0, n)
	for _, member := range cast {
		if member.KnownForDepartment != "" && member.KnownForDepartment != "Acting" {
			continue
		}
		names = append(names, member.Name)
		if len(names) == n {
			break
		}
	}
	return strings.Join(names, ", ")
}

func directorOf(crew []tmdbCrewMember) string {
	for _, member := range crew {
		if member.Job == "Director" {
			return member.Name
		}
	}
	return ""
}

func yearOf(date string) int {
	if len(date) < 4 {
		return 0
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0
	}
	return year
}

func joinOrUnknown(names []string) string {
	if len(names) == 0 {
		return "Unknown"
	}
	return strings.Join(names, ", ")
}
