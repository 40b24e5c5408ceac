package post

import (
	"context"

	"github.com/orgball2608/insta-feed-ingestor/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=post.go -destination=mocks/mock.go
type Repository interface {
	// Create inserts a post row and returns its generated id
	Create(ctx context.Context, post domain.Post) (int64, error)

	// CreateMedia inserts the ordered media rows of a post
	CreateMedia(ctx context.Context, postID int64, username string, media []domain.NormalizedMedia) error

	// GetLatestByUsername returns the most recent posts for a specific username, limited by count
	GetLatestByUsername(ctx context.Context, username string, count int) ([]*domain.Post, error)

	// ListMedia returns the media of a post in display order
	ListMedia(ctx context.Context, postID int64) ([]*domain.PostMedia, error)
}
