package domain

import "time"

// ProcessedNode is a dedup ledger entry: the upstream post id has been persisted.
type ProcessedNode struct {
	ID        string
	Username  string
	CreatedAt time.Time
}
