package domain

import "encoding/json"

// FeedNode is an upstream post node as served by the Instagram web GraphQL shape.
type FeedNode struct {
	ID                    string          `json:"id"`
	Typename              string          `json:"__typename"`
	Shortcode             string          `json:"shortcode"`
	DisplayURL            string          `json:"display_url"`
	VideoURL              string          `json:"video_url"`
	IsVideo               bool            `json:"is_video"`
	TakenAtTimestamp      int64           `json:"taken_at_timestamp"`
	Location              json.RawMessage `json:"location"`
	EdgeMediaToCaption    *CaptionEdges   `json:"edge_media_to_caption"`
	EdgeLikedBy           *EdgeCount      `json:"edge_liked_by"`
	EdgeSidecarToChildren *SidecarEdges   `json:"edge_sidecar_to_children"`
}

type CaptionEdges struct {
	Edges []struct {
		Node struct {
			Text string `json:"text"`
		} `json:"node"`
	} `json:"edges"`
}

type EdgeCount struct {
	Count int64 `json:"count"`
}

type SidecarEdges struct {
	Edges []struct {
		Node SidecarChild `json:"node"`
	} `json:"edges"`
}

type SidecarChild struct {
	ID         string `json:"id"`
	Typename   string `json:"__typename"`
	DisplayURL string `json:"display_url"`
	VideoURL   string `json:"video_url"`
	IsVideo    bool   `json:"is_video"`
}

type PageInfo struct {
	HasNextPage bool   `json:"has_next_page"`
	EndCursor   string `json:"end_cursor"`
}

// TimelineMedia holds the embedded, paginated post edge list of a profile.
// Edges are kept raw: each one is a feed item in either node or wrapper form.
type TimelineMedia struct {
	Count    int               `json:"count"`
	PageInfo PageInfo          `json:"page_info"`
	Edges    []json.RawMessage `json:"edges"`
}

// FeedUser is the upstream profile object. Raw keeps the complete payload.
type FeedUser struct {
	Raw            json.RawMessage `json:"-"`
	Username       string          `json:"username"`
	FullName       string          `json:"full_name"`
	Biography      string          `json:"biography"`
	IsPrivate      bool            `json:"is_private"`
	IsVerified     bool            `json:"is_verified"`
	EdgeFollowedBy *EdgeCount      `json:"edge_followed_by"`
	EdgeFollow     *EdgeCount      `json:"edge_follow"`
	Timeline       *TimelineMedia  `json:"edge_owner_to_timeline_media"`
}

func (u *FeedUser) UnmarshalJSON(b []byte) error {
	type alias FeedUser
	var a alias
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	*u = FeedUser(a)
	u.Raw = append(json.RawMessage(nil), b...)
	return nil
}

// FeedResponse is one of ProfileFeedResponse or PagedPostsResponse.
type FeedResponse interface {
	isFeedResponse()
}

// ProfileFeedResponse is a full profile object with its embedded first page of posts.
type ProfileFeedResponse struct {
	Handle string `json:"-"`
	Data   struct {
		User *FeedUser `json:"user"`
	} `json:"data"`
}

// PagedPostsResponse is a bare page of post items plus an opaque cursor.
type PagedPostsResponse struct {
	Handle    string            `json:"-"`
	Posts     []json.RawMessage `json:"posts"`
	Items     []json.RawMessage `json:"items"`
	Cursor    string            `json:"cursor"`
	NextMaxID string            `json:"next_max_id"`
}

func (*ProfileFeedResponse) isFeedResponse() {}
func (*PagedPostsResponse) isFeedResponse()  {}

// Batch is a resolved feed response, ready for ingestion.
// Profile is nil when the source only supplied a username.
type Batch struct {
	Username   string
	Profile    *ProfileAttributes
	ProfileRaw json.RawMessage
	Items      []json.RawMessage
	Cursor     string
}
