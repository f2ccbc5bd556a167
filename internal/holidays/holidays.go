package holidays

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	defaultBaseURL = "https://date.nager.at/api/v3/PublicHolidays"
	redisTTL       = 24 * time.Hour
)

type Holiday struct {
	Date string `json:"date"`
	Name string `json:"localName"`
}

// Service fetches and caches the public holiday list for one country.
// Lookups never fail: a dead API or empty payload falls back to the
// static list, a dead Redis degrades to the in-process cache. Stale
// concurrent fetches are resolved last-write-wins.
type Service struct {
	baseURL string
	country string
	http    *http.Client
	rdb     *redis.Client

	mu    sync.Mutex
	cache map[int][]Holiday
}

func NewService(country string, rdb *redis.Client) *Service {
	return &Service{
		baseURL: defaultBaseURL,
		country: country,
		http:    &http.Client{Timeout: 10 * time.Second},
		rdb:     rdb,
		cache:   make(map[int][]Holiday),
	}
}

// ForYear returns the year's holidays from the first source that has
// them: process memory, Redis, the API, or the static fallback.
func (s *Service) ForYear(ctx context.Context, year int) []Holiday {
	s.mu.Lock()
	if hs, ok := s.cache[year]; ok {
		s.mu.Unlock()
		return hs
	}
	s.mu.Unlock()

	if hs := s.fromRedis(ctx, year); hs != nil {
		s.store(year, hs)
		return hs
	}

	hs, err := s.fetch(ctx, year)
	if err != nil || len(hs) == 0 {
		if err != nil {
			log.Printf("holiday fetch failed for %d, using fallback: %v", year, err)
		}
		hs = Fallback(year)
		s.store(year, hs)
		return hs
	}

	s.store(year, hs)
	s.toRedis(ctx, year, hs)
	return hs
}

// Dates flattens a holiday list to its YYYY-MM-DD dates.
func Dates(hs []Holiday) []string {
	out := make([]string, 0, len(hs))
	for _, h := range hs {
		out = append(out, h.Date)
	}
	return out
}

func (s *Service) fetch(ctx context.Context, year int) ([]Holiday, error) {
	url := fmt.Sprintf("%s/%d/%s", s.baseURL, year, s.country)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("holiday API returned %d", resp.StatusCode)
	}

	var hs []Holiday
	if err := json.NewDecoder(resp.Body).Decode(&hs); err != nil {
		return nil, err
	}
	return hs, nil
}

func (s *Service) store(year int, hs []Holiday) {
	s.mu.Lock()
	s.cache[year] = hs
	s.mu.Unlock()
}

func (s *Service) redisKey(year int) string {
	return fmt.Sprintf("holidays:%s:%d", s.country, year)
}

func (s *Service) fromRedis(ctx context.Context, year int) []Holiday {
	if s.rdb == nil {
		return nil
	}
	raw, err := s.rdb.Get(ctx, s.redisKey(year)).Bytes()
	if err != nil {
		return nil
	}
	var hs []Holiday
	if err := json.Unmarshal(raw, &hs); err != nil {
		return nil
	}
	return hs
}

func (s *Service) toRedis(ctx context.Context, year int, hs []Holiday) {
	if s.rdb == nil {
		return
	}
	raw, err := json.Marshal(hs)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, s.redisKey(year), raw, redisTTL).Err(); err != nil {
		log.Printf("failed to cache holidays in redis: %v", err)
	}
}
