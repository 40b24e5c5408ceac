// Package normalizer turns heterogeneous upstream feed items into the canonical
// post and media representation that gets persisted.
package normalizer

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/orgball2608/insta-feed-ingestor/internal/domain"
	"github.com/orgball2608/insta-feed-ingestor/pkg/errors"
)

const typenamePrefix = "Graph"

// TypeFromTypename strips the "Graph" prefix and lower-cases the rest:
// "GraphImage" -> "image", "GraphSidecar" -> "sidecar".
func TypeFromTypename(typename string) string {
	return strings.ToLower(strings.TrimPrefix(typename, typenamePrefix))
}

// ExtractNode accepts a bare post node or a {"node": {...}} wrapper and returns
// the raw node together with its decoded form.
func ExtractNode(item json.RawMessage) (json.RawMessage, domain.FeedNode, error) {
	var node domain.FeedNode

	raw, ok := unwrap(item)
	if !ok {
		return nil, node, errors.MalformedItem(errors.New("feed item is not an object"), "decode feed item")
	}

	if err := json.Unmarshal(raw, &node); err != nil {
		return nil, node, errors.MalformedItem(err, "decode post node")
	}
	if node.ID == "" {
		return nil, node, errors.MalformedItem(errors.New("missing id"), "validate post node")
	}
	if node.DisplayURL == "" {
		return nil, node, errors.MalformedItem(errors.New("missing display_url"), "validate post node "+node.ID)
	}

	return raw, node, nil
}

// unwrap returns the post node of a feed item. An object carrying "node" but no
// "id" of its own is treated as a wrapper.
func unwrap(item json.RawMessage) (json.RawMessage, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(item, &fields); err != nil || fields == nil {
		return nil, false
	}
	if inner, ok := fields["node"]; ok {
		if _, hasID := fields["id"]; !hasID {
			return inner, true
		}
	}
	return item, true
}

// Normalize converts one feed item into a post and its ordered media list.
func Normalize(item json.RawMessage) (domain.NormalizedPost, []domain.NormalizedMedia, error) {
	_, node, err := ExtractNode(item)
	if err != nil {
		return domain.NormalizedPost{}, nil, err
	}

	post, media := FromNode(node)
	return post, media, nil
}

// FromNode normalizes a node already validated by ExtractNode.
func FromNode(node domain.FeedNode) (domain.NormalizedPost, []domain.NormalizedMedia) {
	post := domain.NormalizedPost{
		SourceID:   node.ID,
		Type:       TypeFromTypename(node.Typename),
		Shortcode:  node.Shortcode,
		DisplayURL: node.DisplayURL,
		Timestamp:  node.TakenAtTimestamp,
		Caption:    caption(node),
		Location:   location(node.Location),
	}
	if node.EdgeLikedBy != nil {
		post.LikesCount = node.EdgeLikedBy.Count
	}

	return post, media(node)
}

func caption(node domain.FeedNode) *string {
	if node.EdgeMediaToCaption == nil || len(node.EdgeMediaToCaption.Edges) == 0 {
		return nil
	}
	text := node.EdgeMediaToCaption.Edges[0].Node.Text
	return &text
}

func location(raw json.RawMessage) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, trimmed); err != nil {
		return append(json.RawMessage(nil), trimmed...)
	}
	return buf.Bytes()
}

func media(node domain.FeedNode) []domain.NormalizedMedia {
	if node.IsVideo {
		url := node.VideoURL
		if url == "" {
			url = node.DisplayURL
		}
		return []domain.NormalizedMedia{{Type: domain.MediaTypeVideo, DisplayURL: url, Order: 0}}
	}

	// An empty sidecar falls through to the single image case so every post keeps one media row.
	if node.EdgeSidecarToChildren != nil && len(node.EdgeSidecarToChildren.Edges) > 0 {
		children := node.EdgeSidecarToChildren.Edges
		out := make([]domain.NormalizedMedia, 0, len(children))
		for i, edge := range children {
			child := edge.Node
			url := child.DisplayURL
			if child.IsVideo && child.VideoURL != "" {
				url = child.VideoURL
			}
			out = append(out, domain.NormalizedMedia{
				Type:       TypeFromTypename(child.Typename),
				DisplayURL: url,
				Order:      i,
			})
		}
		return out
	}

	return []domain.NormalizedMedia{{Type: domain.MediaTypeImage, DisplayURL: node.DisplayURL, Order: 0}}
}
