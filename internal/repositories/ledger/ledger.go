package ledger

import (
	"context"
	"errors"

	"github.com/orgball2608/insta-feed-ingestor/internal/domain"
)

var ErrAlreadyExists = errors.New("node already processed")

//go:generate go run go.uber.org/mock/mockgen -source=ledger.go -destination=mocks/mock.go
type Repository interface {
	// HasSeen reports whether the upstream id has already been persisted
	HasSeen(ctx context.Context, id string) (bool, error)

	// MarkSeen claims the upstream id. It returns ErrAlreadyExists when the
	// id was claimed before.
	MarkSeen(ctx context.Context, node domain.ProcessedNode) error
}
