package normalizer

import (
	"encoding/json"
	"fmt"

	"github.com/orgball2608/insta-feed-ingestor/internal/domain"
	"github.com/orgball2608/insta-feed-ingestor/pkg/errors"
)

// ResolveBatch unifies both upstream response shapes into a single Batch.
// A profile response yields full profile attributes; a paged response only a username.
func ResolveBatch(resp domain.FeedResponse) (domain.Batch, error) {
	switch r := resp.(type) {
	case *domain.ProfileFeedResponse:
		return fromProfile(r)
	case *domain.PagedPostsResponse:
		return fromPage(r)
	default:
		return domain.Batch{}, errors.UpstreamFetch(fmt.Errorf("unsupported response %T", resp), "resolve feed response")
	}
}

func fromProfile(r *domain.ProfileFeedResponse) (domain.Batch, error) {
	if r == nil || r.Data.User == nil {
		return domain.Batch{}, errors.UpstreamFetch(errors.New("response has no user"), "resolve profile feed")
	}
	user := r.Data.User

	username := r.Handle
	if username == "" {
		username = user.Username
	}
	if username == "" {
		return domain.Batch{}, errors.UpstreamFetch(errors.New("response has no username"), "resolve profile feed")
	}

	attrs := &domain.ProfileAttributes{
		FullName:   user.FullName,
		Biography:  user.Biography,
		Raw:        user.Raw,
		IsPrivate:  user.IsPrivate,
		IsVerified: user.IsVerified,
	}
	if user.EdgeFollowedBy != nil {
		attrs.FollowersCount = user.EdgeFollowedBy.Count
	}
	if user.EdgeFollow != nil {
		attrs.FollowingCount = user.EdgeFollow.Count
	}

	batch := domain.Batch{
		Username:   username,
		Profile:    attrs,
		ProfileRaw: user.Raw,
	}
	if user.Timeline != nil {
		batch.Items = user.Timeline.Edges
		batch.Cursor = user.Timeline.PageInfo.EndCursor
	}
	return batch, nil
}

func fromPage(r *domain.PagedPostsResponse) (domain.Batch, error) {
	if r == nil || r.Handle == "" {
		return domain.Batch{}, errors.UpstreamFetch(errors.New("page has no handle"), "resolve posts page")
	}

	items := r.Posts
	if len(items) == 0 {
		items = r.Items
	}
	cursor := r.Cursor
	if cursor == "" {
		cursor = r.NextMaxID
	}

	return domain.Batch{
		Username: r.Handle,
		Items:    items,
		Cursor:   cursor,
	}, nil
}

// Nodes returns the unwrapped post nodes of a batch, skipping items that are not objects.
// It is what the read endpoint echoes back to callers.
func Nodes(items []json.RawMessage) []json.RawMessage {
	out := make([]json.RawMessage, 0, len(items))
	for _, item := range items {
		if node, ok := unwrap(item); ok {
			out = append(out, node)
		}
	}
	return out
}
