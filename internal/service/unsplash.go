package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/user/curio/internal/model"
	"github.com/user/curio/internal/utils"
	"golang.org/x/time/rate"
)

// UnsplashService Unsplash 图片搜索客户端
type UnsplashService struct {
	BaseURL   string
	client    *http.Client
	accessKey string
	limiter   *rate.Limiter
}

func NewUnsplashService(accessKey string) *UnsplashService {
	return &UnsplashService{
		BaseURL:   "https://api.unsplash.com",
		client:    &http.Client{Timeout: 10 * time.Second},
		accessKey: accessKey,
		// Unsplash 免费额度 50 次/小时，客户端侧再限一道
		limiter: rate.NewLimiter(rate.Every(200*time.Millisecond), 5),
	}
}

type unsplashSearchResponse struct {
	Results []struct {
		URLs struct {
			Small string `json:"small"`
		} `json:"urls"`
		Description    string `json:"description"`
		AltDescription string `json:"alt_description"`
	} `json:"results"`
}

// Search 搜索图片并归一化为本地形态。
// 结果缓存 5 分钟，避免重复消耗上游额度。
func (s *UnsplashService) Search(ctx context.Context, query string) ([]model.UnsplashPhoto, error) {
	cacheKey := "unsplash:" + query
	if utils.Cache != nil {
		if cached, found := utils.CacheGet(cacheKey); found {
			if photos, ok := cached.([]model.UnsplashPhoto); ok {
				return photos, nil
			}
		}
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	reqURL := fmt.Sprintf("%s/search/photos?query=%s", s.BaseURL, url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Client-ID "+s.accessKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unsplash request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unsplash returned status %d", resp.StatusCode)
	}

	var result unsplashSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("unsplash response decode failed: %w", err)
	}

	photos := make([]model.UnsplashPhoto, 0, len(result.Results))
	for _, item := range result.Results {
		photos = append(photos, model.UnsplashPhoto{
			ImageURL:       item.URLs.Small,
			Description:    item.Description,
			AltDescription: item.AltDescription,
		})
	}

	if utils.Cache != nil {
		utils.CacheSet(cacheKey, photos, 5*time.Minute)
	}

	return photos, nil
}
