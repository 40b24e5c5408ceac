package domain

import "encoding/json"

// IngestResult is the per-call tally of an ingestion.
type IngestResult struct {
	ProfileID      int64
	ProfileCreated bool
	Total          int
	Stored         int
	Seen           int // skipped: ledger already had the id
	Duplicates     int // skipped: a concurrent call claimed the id first
	Malformed      int
	Failed         int
}

// FeedResult is what the read endpoint returns for one fetch.
type FeedResult struct {
	Profile json.RawMessage
	Posts   []json.RawMessage
	Cursor  string
	Ingest  *IngestResult
}
