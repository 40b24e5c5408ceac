package post

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orgball2608/insta-feed-ingestor/internal/domain"
	"github.com/orgball2608/insta-feed-ingestor/internal/repositories"
	"github.com/orgball2608/insta-feed-ingestor/pkg/logger"
)

type Pgx struct {
	pg     *pgxpool.Pool
	logger logger.Logger
	now    func() time.Time
}

func NewPgx(pg *pgxpool.Pool, logger logger.Logger) *Pgx {
	return &Pgx{
		pg:     pg,
		logger: logger.WithComponent("PostRepo"),
		now:    time.Now,
	}
}

var _ Repository = (*Pgx)(nil)

// Create adds a new post row
func (p *Pgx) Create(ctx context.Context, post domain.Post) (int64, error) {
	createdAt := post.CreatedAt
	if createdAt.IsZero() {
		createdAt = p.now()
	}

	query, args, err := repositories.SqBuilder.
		Insert("posts").
		Columns(
			"profile_id", "type", "shortcode", "display_url", "timestamp",
			"caption", "location", "likes_count", "username", "created_at",
		).
		Values(
			post.ProfileID, post.Type, post.Shortcode, post.DisplayURL, post.Timestamp,
			post.Caption, repositories.JSONOrNull(post.Location), post.LikesCount, post.Username, createdAt,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, repositories.ErrBadQuery
	}

	var id int64
	if err := repositories.Conn(ctx, p.pg).QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert post: %w", err)
	}

	return id, nil
}

// CreateMedia writes all media of a post in a single statement
func (p *Pgx) CreateMedia(ctx context.Context, postID int64, username string, media []domain.NormalizedMedia) error {
	if len(media) == 0 {
		return nil
	}

	builder := repositories.SqBuilder.
		Insert("post_media").
		Columns("post_id", "type", "display_url", "media_order", "username")
	for _, m := range media {
		builder = builder.Values(postID, m.Type, m.DisplayURL, m.Order, username)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return repositories.ErrBadQuery
	}

	if _, err := repositories.Conn(ctx, p.pg).Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert %d media for post %d: %w", len(media), postID, err)
	}

	return nil
}

// GetLatestByUsername returns the most recent posts for a specific username, limited by count
func (p *Pgx) GetLatestByUsername(ctx context.Context, username string, count int) ([]*domain.Post, error) {
	query, args, err := repositories.SqBuilder.
		Select(
			"id", "profile_id", "type", "shortcode", "display_url", "timestamp",
			"caption", "location", "likes_count", "username", "created_at",
		).
		From("posts").
		Where(sq.Eq{"username": username}).
		OrderBy("timestamp DESC", "id DESC").
		Limit(uint64(count)).
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	rows, err := repositories.Conn(ctx, p.pg).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*domain.Post
	for rows.Next() {
		var (
			post     domain.Post
			location []byte
		)
		if err := rows.Scan(
			&post.ID, &post.ProfileID, &post.Type, &post.Shortcode, &post.DisplayURL, &post.Timestamp,
			&post.Caption, &location, &post.LikesCount, &post.Username, &post.CreatedAt,
		); err != nil {
			return nil, err
		}
		post.Location = location
		posts = append(posts, &post)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}

// ListMedia returns the media of a post ordered by media_order
func (p *Pgx) ListMedia(ctx context.Context, postID int64) ([]*domain.PostMedia, error) {
	query, args, err := repositories.SqBuilder.
		Select("id", "post_id", "type", "display_url", "media_order", "username").
		From("post_media").
		Where(sq.Eq{"post_id": postID}).
		OrderBy("media_order ASC").
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	rows, err := repositories.Conn(ctx, p.pg).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var media []*domain.PostMedia
	for rows.Next() {
		var m domain.PostMedia
		if err := rows.Scan(&m.ID, &m.PostID, &m.Type, &m.DisplayURL, &m.MediaOrder, &m.Username); err != nil {
			return nil, err
		}
		media = append(media, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return media, nil
}
