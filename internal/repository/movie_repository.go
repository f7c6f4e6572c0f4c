package repository

import (
	"context"
	"encoding/json"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/cinetrack-web/internal/api"
	"github.com/iliyamo/cinetrack-web/internal/config"
	"github.com/iliyamo/cinetrack-web/internal/model"
)

// MovieRepo reads the catalog.  When a Redis client is configured the raw
// GET /movies body is cached for CacheConfig.TTL.
type MovieRepo struct {
	api   *api.Client
	rdb   *redis.Client
	cache config.CacheConfig
}

// NewMovieRepo builds a MovieRepo.  rdb may be nil, which disables caching.
func NewMovieRepo(c *api.Client, rdb *redis.Client, cache config.CacheConfig) *MovieRepo {
	return &MovieRepo{api: c, rdb: rdb, cache: cache}
}

func (r *MovieRepo) cacheKey() string { return r.cache.Prefix + ":movies" }

func (r *MovieRepo) caching() bool { return r.rdb != nil && r.cache.Enabled }

// List returns the full catalog.
func (r *MovieRepo) List(ctx context.Context) ([]model.Movie, error) {
	if r.caching() {
		if bs, err := r.rdb.Get(ctx, r.cacheKey()).Bytes(); err == nil {
			var movies []model.Movie
			if err := json.Unmarshal(bs, &movies); err == nil {
				return movies, nil
			}
		}
	}

	raw, err := r.api.MoviesRaw(ctx)
	if err != nil {
		return nil, translate(err)
	}
	var movies []model.Movie
	if err := json.Unmarshal(raw, &movies); err != nil {
		return nil, err
	}
	if r.caching() {
		if err := r.rdb.SetEx(context.WithoutCancel(ctx), r.cacheKey(), []byte(raw), r.cache.TTL).Err(); err != nil {
			log.Printf("catalog cache: set failed: %v", err)
		}
	}
	return movies, nil
}

// Get finds a movie by id.  The backend has no single-movie route, so the
// catalog is scanned.
func (r *MovieRepo) Get(ctx context.Context, id uint64) (model.Movie, error) {
	movies, err := r.List(ctx)
	if err != nil {
		return model.Movie{}, err
	}
	for _, m := range movies {
		if m.ID == id {
			return m, nil
		}
	}
	return model.Movie{}, ErrNotFound
}
