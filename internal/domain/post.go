package domain

import (
	"encoding/json"
	"time"
)

// Media kinds for non-carousel posts.
const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

// NormalizedPost is the canonical form of one upstream feed item.
type NormalizedPost struct {
	SourceID   string // upstream identifier, the ledger key
	Type       string
	Shortcode  string
	DisplayURL string
	Timestamp  int64
	Caption    *string
	Location   json.RawMessage
	LikesCount int64
}

// NormalizedMedia is one displayable item of a post, ordered by Order.
type NormalizedMedia struct {
	Type       string
	DisplayURL string
	Order      int
}

// Post is a stored post row.
type Post struct {
	ID         int64
	ProfileID  int64
	Type       string
	Shortcode  string
	DisplayURL string
	Timestamp  int64
	Caption    *string
	Location   json.RawMessage
	LikesCount int64
	Username   string
	CreatedAt  time.Time
}

// NewPost binds a normalized post to its owning profile.
func NewPost(profileID int64, username string, np NormalizedPost) Post {
	return Post{
		ProfileID:  profileID,
		Type:       np.Type,
		Shortcode:  np.Shortcode,
		DisplayURL: np.DisplayURL,
		Timestamp:  np.Timestamp,
		Caption:    np.Caption,
		Location:   np.Location,
		LikesCount: np.LikesCount,
		Username:   username,
	}
}

// PostMedia is a stored post_media row.
type PostMedia struct {
	ID         int64
	PostID     int64
	Type       string
	DisplayURL string
	MediaOrder int
	Username   string
}
