package ledger

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
		logger: logger.WithComponent("LedgerRepo"),
	}
}

var _ Repository = (*Pgx)(nil)

// HasSeen checks if the upstream id is in processed_nodes
func (p *Pgx) HasSeen(ctx context.Context, id string) (bool, error) {
	query, args, err := repositories.SqBuilder.
		Select("1").
		From("processed_nodes").
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, repositories.ErrBadQuery
	}

	var one int
	err = repositories.Conn(ctx, p.pg).QueryRow(ctx, query, args...).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check ledger for %s: %w", id, err)
	}

	return true, nil
}

// MarkSeen inserts the ledger entry. A conflicting insert affects no rows.
func (p *Pgx) MarkSeen(ctx context.Context, node domain.ProcessedNode) error {
	createdAt := node.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	query, args, err := repositories.SqBuilder.
		Insert("processed_nodes").
		Columns("id", "username", "created_at").
		Values(node.ID, node.Username, createdAt).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()
	if err != nil {
		return repositories.ErrBadQuery
	}

	tag, err := repositories.Conn(ctx, p.pg).Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to mark %s as seen: %w", node.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrAlreadyExists
	}

	return nil
}
