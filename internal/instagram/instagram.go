package instagram

import (
	"context"

	"github.com/orgball2608/insta-feed-ingestor/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=instagram.go -destination=mocks/mock.go
type Client interface {
	// GetProfileFeed fetches the profile and its first page of timeline media
	GetProfileFeed(ctx context.Context, handle string) (*domain.ProfileFeedResponse, error)

	// GetPostsPage fetches the page of posts that follows cursor
	GetPostsPage(ctx context.Context, handle, cursor string) (*domain.PagedPostsResponse, error)
}
