package status

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	cacheKey = "uniteam:status:catalog"
	cacheTTL = 12 * time.Hour
)

type Service interface {
	List(ctx context.Context) ([]Status, error)
	GetByID(ctx context.Context, id uint) (*Status, error)

	// ResolveValidatedID and ResolvePendingID look the status up by name and
	// fall back to the historical fixed IDs when the catalog row is missing.
	ResolveValidatedID(ctx context.Context) uint
	ResolvePendingID(ctx context.Context) uint

	Seed() error
}

type service struct {
	repo  Repository
	redis *redis.Client
}

func NewService(r Repository, rdb *redis.Client) Service {
	return &service{repo: r, redis: rdb}
}

// List returns the status catalog, served from Redis when warm.
func (s *service) List(ctx context.Context) ([]Status, error) {
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var statuses []Status
			if err := json.Unmarshal([]byte(cached), &statuses); err == nil {
				return statuses, nil
			}
		}
	}

	statuses, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		if data, err := json.Marshal(statuses); err == nil {
			if err := s.redis.Set(ctx, cacheKey, data, cacheTTL).Err(); err != nil {
				log.Printf("⚠️ Failed to cache status catalog: %v", err)
			}
		}
	}

	return statuses, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (*Status, error) {
	statuses, err := s.List(ctx)
	if err == nil {
		for i := range statuses {
			if statuses[i].ID == id {
				return &statuses[i], nil
			}
		}
	}
	st, err := s.repo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("unknown status %d", id)
	}
	return st, nil
}

func (s *service) ResolveValidatedID(ctx context.Context) uint {
	return s.resolveByName(ctx, NameValidated, FallbackValidatedID)
}

func (s *service) ResolvePendingID(ctx context.Context) uint {
	return s.resolveByName(ctx, NamePending, FallbackPendingID)
}

func (s *service) resolveByName(ctx context.Context, name string, fallback uint) uint {
	statuses, err := s.List(ctx)
	if err == nil {
		for _, st := range statuses {
			if st.Name == name {
				return st.ID
			}
		}
	}
	log.Printf("⚠️ Status %q not found in catalog, using fallback ID %d", name, fallback)
	return fallback
}

// Seed writes the four catalog rows at startup.
func (s *service) Seed() error {
	return s.repo.Seed([]Status{
		{ID: 1, Name: NameValidated},
		{ID: 2, Name: NameRejected},
		{ID: 3, Name: NameCancelled},
		{ID: 4, Name: NamePending},
	})
}
