package profile

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orgball2608/insta-feed-ingestor/internal/domain"
	"github.com/orgball2608/insta-feed-ingestor/internal/repositories"
	"github.com/orgball2608/insta-feed-ingestor/pkg/logger"
)

type Pgx struct {
	pg     *pgxpool.Pool
	logger logger.Logger
}

func NewPgx(pg *pgxpool.Pool, logger logger.Logger) *Pgx {
	return &Pgx{
		pg:     pg,
		logger: logger.WithComponent("ProfileRepo"),
	}
}

var _ Repository = (*Pgx)(nil)

// Upsert inserts or refreshes the profile keyed by username.
// is_car_profile is only written on insert.
func (p *Pgx) Upsert(ctx context.Context, profile domain.Profile) (int64, bool, error) {
	profileType := profile.ProfileType
	if profileType == "" {
		profileType = domain.ProfileTypeInstagram
	}

	query, args, err := repositories.SqBuilder.
		Insert("profiles").
		Columns(
			"username", "full_name", "biography", "profile_data", "profile_type",
			"is_private", "followers_count", "following_count", "is_verified",
			"is_car_profile", "last_updated",
		).
		Values(
			profile.Username, profile.FullName, profile.Biography,
			repositories.JSONOrNull(profile.ProfileData), profileType,
			profile.IsPrivate, profile.FollowersCount, profile.FollowingCount, profile.IsVerified,
			false, profile.LastUpdated,
		).
		Suffix(`ON CONFLICT (username) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			biography = EXCLUDED.biography,
			profile_data = EXCLUDED.profile_data,
			is_private = EXCLUDED.is_private,
			followers_count = EXCLUDED.followers_count,
			following_count = EXCLUDED.following_count,
			is_verified = EXCLUDED.is_verified,
			last_updated = EXCLUDED.last_updated
		RETURNING id, (xmax = 0) AS inserted`).
		ToSql()
	if err != nil {
		return 0, false, repositories.ErrBadQuery
	}

	var (
		id       int64
		inserted bool
	)
	if err := repositories.Conn(ctx, p.pg).QueryRow(ctx, query, args...).Scan(&id, &inserted); err != nil {
		return 0, false, fmt.Errorf("failed to upsert profile %s: %w", profile.Username, err)
	}

	p.logger.Debug("Profile upserted", "username", profile.Username, "id", id, "created", inserted)
	return id, inserted, nil
}

// EnsureExists inserts a placeholder row with zero counters and false flags.
func (p *Pgx) EnsureExists(ctx context.Context, username string, now time.Time) (int64, bool, error) {
	// The self-assignment on conflict keeps the row unchanged but lets RETURNING yield its id.
	query, args, err := repositories.SqBuilder.
		Insert("profiles").
		Columns(
			"username", "full_name", "biography", "profile_type",
			"is_private", "followers_count", "following_count", "is_verified",
			"is_car_profile", "last_updated",
		).
		Values(username, "", "", domain.ProfileTypeInstagram, false, 0, 0, false, false, now).
		Suffix("ON CONFLICT (username) DO UPDATE SET username = EXCLUDED.username RETURNING id, (xmax = 0) AS inserted").
		ToSql()
	if err != nil {
		return 0, false, repositories.ErrBadQuery
	}

	var (
		id       int64
		inserted bool
	)
	if err := repositories.Conn(ctx, p.pg).QueryRow(ctx, query, args...).Scan(&id, &inserted); err != nil {
		return 0, false, fmt.Errorf("failed to ensure profile %s: %w", username, err)
	}

	return id, inserted, nil
}

// GetByUsername returns the stored profile for username
func (p *Pgx) GetByUsername(ctx context.Context, username string) (*domain.Profile, error) {
	query, args, err := repositories.SqBuilder.
		Select(
			"id", "username", "full_name", "biography", "profile_data", "profile_type",
			"is_private", "followers_count", "following_count", "is_verified",
			"is_car_profile", "last_updated",
		).
		From("profiles").
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	var (
		profile domain.Profile
		data    []byte
	)
	err = repositories.Conn(ctx, p.pg).QueryRow(ctx, query, args...).Scan(
		&profile.ID,
		&profile.Username,
		&profile.FullName,
		&profile.Biography,
		&data,
		&profile.ProfileType,
		&profile.IsPrivate,
		&profile.FollowersCount,
		&profile.FollowingCount,
		&profile.IsVerified,
		&profile.IsCarProfile,
		&profile.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get profile %s: %w", username, err)
	}
	profile.ProfileData = data

	return &profile, nil
}
