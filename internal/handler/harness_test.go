package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/user/curio/internal/config"
	"github.com/user/curio/internal/handler"
	"github.com/user/curio/internal/model"
	"github.com/user/curio/internal/repository"
	"github.com/user/curio/internal/router"
	"github.com/user/curio/internal/utils"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// fakeBlobStore 内存对象存储
type fakeBlobStore struct {
	objects map[string][]byte
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{objects: make(map[string][]byte)}
}

func (s *fakeBlobStore) Put(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	s.objects[objectName] = data
	return nil
}

func (s *fakeBlobStore) Remove(ctx context.Context, objectName string) error {
	delete(s.objects, objectName)
	return nil
}

type testEnv struct {
	engine       *gin.Engine
	handler      *handler.Handler
	repos        *repository.Repositories
	blobs        *fakeBlobStore
	tmdbRequests *atomic.Int64
}

// newTestEnv 完整的 HTTP 测试环境：内存数据库 + 假 TMDB/Unsplash 上游
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	utils.InitCache()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{}, &model.Photo{}, &model.Tag{}, &model.SearchHistory{},
		&model.Movie{}, &model.WatchlistEntry{}, &model.WishlistEntry{},
		&model.CuratedList{}, &model.CuratedListItem{}, &model.Review{},
		&model.Folder{}, &model.File{},
	))

	repos := repository.NewRepositories(db)
	cfg := &config.Config{
		Env:         "development",
		AppSecret:   "test-secret",
		UnsplashKey: "test-key",
		TMDBToken:   "test-token",
	}

	blobs := newFakeBlobStore()
	h := handler.NewHandler(repos, cfg, blobs)

	var tmdbRequests atomic.Int64
	tmdb := newFakeTMDB(&tmdbRequests)
	t.Cleanup(tmdb.Close)
	h.TMDB.BaseURL = tmdb.URL

	unsplash := newFakeUnsplash()
	t.Cleanup(unsplash.Close)
	h.Unsplash.BaseURL = unsplash.URL

	engine := gin.New()
	router.RegisterRoutes(engine, h)

	return &testEnv{
		engine:       engine,
		handler:      h,
		repos:        repos,
		blobs:        blobs,
		tmdbRequests: &tmdbRequests,
	}
}

func newFakeTMDB(requests *atomic.Int64) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/genre/movie/list", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"genres": [{"id": 28, "name": "Action"}]}`)
	})
	mux.HandleFunc("/search/movie", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"results": [
			{"id": 603, "title": "The Matrix", "genre_ids": [28], "release_date": "1999-03-31", "vote_average": 8.2, "overview": "A hacker learns the truth."}
		]}`)
	})
	mux.HandleFunc("/movie/603/credits", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"cast": [{"name": "Keanu Reeves", "known_for_department": "Acting"}]}`)
	})
	mux.HandleFunc("/movie/603", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"id": 603, "title": "The Matrix", "overview": "A hacker learns the truth.",
			"release_date": "1999-03-31", "vote_average": 8.2,
			"genres": [{"id": 28, "name": "Action"}],
			"credits": {
				"cast": [{"name": "Keanu Reeves", "known_for_department": "Acting"}],
				"crew": [{"name": "Lana Wachowski", "job": "Director"}]
			}
		}`)
	})
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.Header().Set("Content-Type", "application/json")
		mux.ServeHTTP(w, r)
	}))
}

func newFakeUnsplash() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("query") == "nothing" {
			fmt.Fprint(w, `{"results": []}`)
			return
		}
		fmt.Fprint(w, `{"results": [
			{"urls": {"small": "https://images.unsplash.com/photo-1"}, "description": "a forest", "alt_description": "green trees"}
		]}`)
	}))
}

// doJSON 发送 JSON 请求
func (e *testEnv) doJSON(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

// decode 解析响应体
func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
