package profile

import (
	"context"
	"errors"
	"time"

	"github.com/orgball2608/insta-feed-ingestor/internal/domain"
)

var ErrNotFound = errors.New("profile not found")

//go:generate go run go.uber.org/mock/mockgen -source=profile.go -destination=mocks/mock.go
type Repository interface {
	// Upsert creates the profile or refreshes its mutable attributes in place.
	// It returns the profile id and whether a new row was created.
	Upsert(ctx context.Context, profile domain.Profile) (int64, bool, error)

	// EnsureExists creates a placeholder profile for username if none exists
	// and otherwise leaves the stored row untouched.
	EnsureExists(ctx context.Context, username string, now time.Time) (int64, bool, error)

	// GetByUsername returns the stored profile for username
	GetByUsername(ctx context.Context, username string) (*domain.Profile, error)
}
