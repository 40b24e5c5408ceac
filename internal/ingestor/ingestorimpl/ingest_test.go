package ingestorimpl

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"testing"
	"time"

	"github.com/orgball2608/insta-feed-ingestor/internal/domain"
	"github.com/orgball2608/insta-feed-ingestor/internal/repositories/ledger"
	mock_ledger "github.com/orgball2608/insta-feed-ingestor/internal/repositories/ledger/mocks"
	mock_repositories "github.com/orgball2608/insta-feed-ingestor/internal/repositories/mocks"
	mock_post "github.com/orgball2608/insta-feed-ingestor/internal/repositories/post/mocks"
	mock_profile "github.com/orgball2608/insta-feed-ingestor/internal/repositories/profile/mocks"
	"github.com/orgball2608/insta-feed-ingestor/pkg/config"
	"github.com/orgball2608/insta-feed-ingestor/pkg/errors"
	"github.com/orgball2608/insta-feed-ingestor/pkg/logger"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type mocks struct {
	profile *mock_profile.MockRepository
	post    *mock_post.MockRepository
	ledger  *mock_ledger.MockRepository
	tx      *mock_repositories.MockTransactor
}

func newMockedIngestor(t *testing.T) (*IngestorImpl, mocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := mocks{
		profile: mock_profile.NewMockRepository(ctrl),
		post:    mock_post.NewMockRepository(ctrl),
		ledger:  mock_ledger.NewMockRepository(ctrl),
		tx:      mock_repositories.NewMockTransactor(ctrl),
	}
	m.tx.EXPECT().WithinTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()

	i := New(Opts{
		ProfileRepo: m.profile,
		PostRepo:    m.post,
		LedgerRepo:  m.ledger,
		Transactor:  m.tx,
		Logger:      logger.Discard(),
		Config:      &config.Config{},
	})
	i.now = func() time.Time { return fixedNow }
	return i, m
}

func newMemIngestor(store *memStore) *IngestorImpl {
	i := New(Opts{
		ProfileRepo: store,
		PostRepo:    store,
		LedgerRepo:  store,
		Transactor:  store,
		Logger:      logger.Discard(),
		Config:      &config.Config{},
	})
	i.now = func() time.Time { return fixedNow }
	return i
}

func items(raw ...string) []json.RawMessage {
	out := make([]json.RawMessage, 0, len(raw))
	for _, r := range raw {
		out = append(out, json.RawMessage(r))
	}
	return out
}

const (
	itemP1       = `{"id":"p1","is_video":false,"display_url":"u1","taken_at_timestamp":100,"__typename":"GraphImage","shortcode":"sc1"}`
	itemP2       = `{"node":{"id":"p2","is_video":true,"display_url":"t2","video_url":"v2","taken_at_timestamp":200,"__typename":"GraphVideo"}}`
	itemCarousel = `{"id":"c1","__typename":"GraphSidecar","display_url":"cover","taken_at_timestamp":300,
		"edge_sidecar_to_children":{"edges":[
			{"node":{"__typename":"GraphImage","display_url":"A"}},
			{"node":{"__typename":"GraphVideo","display_url":"B-thumb","video_url":"B","is_video":true}},
			{"node":{"__typename":"GraphImage","display_url":"C"}}
		]}}`
)

func TestIngest_SingleImage(t *testing.T) {
	i, m := newMockedIngestor(t)
	ctx := context.Background()

	gomock.InOrder(
		m.profile.EXPECT().EnsureExists(ctx, "alice", fixedNow).Return(int64(7), true, nil),
		m.ledger.EXPECT().HasSeen(ctx, "p1").Return(false, nil),
		m.ledger.EXPECT().MarkSeen(ctx, domain.ProcessedNode{ID: "p1", Username: "alice", CreatedAt: fixedNow}).Return(nil),
		m.post.EXPECT().Create(ctx, domain.Post{
			ProfileID:  7,
			Type:       "image",
			Shortcode:  "sc1",
			DisplayURL: "u1",
			Timestamp:  100,
			Username:   "alice",
			CreatedAt:  fixedNow,
		}).Return(int64(11), nil),
		m.post.EXPECT().CreateMedia(ctx, int64(11), "alice", []domain.NormalizedMedia{
			{Type: "image", DisplayURL: "u1", Order: 0},
		}).Return(nil),
	)

	result, err := i.Ingest(ctx, domain.Batch{Username: "alice", Items: items(itemP1)})
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}

	want := domain.IngestResult{ProfileID: 7, ProfileCreated: true, Total: 1, Stored: 1}
	if *result != want {
		t.Errorf("result = %+v, want %+v", *result, want)
	}
}

func TestIngest_FullProfileUsesUpsert(t *testing.T) {
	i, m := newMockedIngestor(t)
	ctx := context.Background()

	attrs := &domain.ProfileAttributes{FullName: "Alice", FollowersCount: 10, Raw: json.RawMessage(`{"username":"alice"}`)}
	m.profile.EXPECT().Upsert(ctx, attrs.ToProfile("alice", fixedNow)).Return(int64(3), false, nil)

	result, err := i.Ingest(ctx, domain.Batch{Username: "alice", Profile: attrs})
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if result.ProfileID != 3 || result.ProfileCreated || result.Total != 0 {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestIngest_ProfileFailureAborts(t *testing.T) {
	i, m := newMockedIngestor(t)
	ctx := context.Background()

	m.profile.EXPECT().EnsureExists(ctx, "alice", fixedNow).Return(int64(0), false, stderrors.New("connection refused"))

	result, err := i.Ingest(ctx, domain.Batch{Username: "alice", Items: items(itemP1)})
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.IsStorageWrite(err) {
		t.Errorf("expected StorageWriteError, got %v", err)
	}
	if result != nil {
		t.Errorf("expected no result, got %+v", result)
	}
}

func TestIngest_RequiresUsername(t *testing.T) {
	i, _ := newMockedIngestor(t)

	if _, err := i.Ingest(context.Background(), domain.Batch{Items: items(itemP1)}); err == nil {
		t.Fatal("expected error for batch without username")
	}
}

func TestIngest_SkipsSeenAndMalformed(t *testing.T) {
	i, m := newMockedIngestor(t)
	ctx := context.Background()

	m.profile.EXPECT().EnsureExists(ctx, "alice", fixedNow).Return(int64(7), false, nil)
	m.ledger.EXPECT().HasSeen(ctx, "p1").Return(true, nil)

	result, err := i.Ingest(ctx, domain.Batch{
		Username: "alice",
		Items:    items(itemP1, `{"id":"x"}`, `"not an object"`),
	})
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}

	want := domain.IngestResult{ProfileID: 7, Total: 3, Seen: 1, Malformed: 2}
	if *result != want {
		t.Errorf("result = %+v, want %+v", *result, want)
	}
}

func TestIngest_LedgerLookupErrorSkipsItem(t *testing.T) {
	i, m := newMockedIngestor(t)
	ctx := context.Background()

	m.profile.EXPECT().EnsureExists(ctx, "alice", fixedNow).Return(int64(7), false, nil)
	m.ledger.EXPECT().HasSeen(ctx, "p1").Return(false, stderrors.New("timeout"))

	result, err := i.Ingest(ctx, domain.Batch{Username: "alice", Items: items(itemP1)})
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if result.Failed != 1 || result.Stored != 0 {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestIngest_DuplicateRaceIsBenign(t *testing.T) {
	i, m := newMockedIngestor(t)
	ctx := context.Background()

	m.profile.EXPECT().EnsureExists(ctx, "alice", fixedNow).Return(int64(7), false, nil)
	m.ledger.EXPECT().HasSeen(ctx, "p1").Return(false, nil)
	m.ledger.EXPECT().MarkSeen(ctx, gomock.Any()).Return(ledger.ErrAlreadyExists)

	result, err := i.Ingest(ctx, domain.Batch{Username: "alice", Items: items(itemP1)})
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if result.Duplicates != 1 || result.Stored != 0 || result.Failed != 0 {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestIngest_StorageErrorContinuesWithNextItem(t *testing.T) {
	i, m := newMockedIngestor(t)
	ctx := context.Background()

	m.profile.EXPECT().EnsureExists(ctx, "alice", fixedNow).Return(int64(7), false, nil)
	m.ledger.EXPECT().HasSeen(ctx, gomock.Any()).Return(false, nil).Times(2)
	m.ledger.EXPECT().MarkSeen(ctx, gomock.Any()).Return(nil).Times(2)
	gomock.InOrder(
		m.post.EXPECT().Create(ctx, gomock.Any()).Return(int64(0), stderrors.New("disk full")),
		m.post.EXPECT().Create(ctx, gomock.Any()).Return(int64(12), nil),
	)
	m.post.EXPECT().CreateMedia(ctx, int64(12), "alice", []domain.NormalizedMedia{
		{Type: "video", DisplayURL: "v2", Order: 0},
	}).Return(nil)

	result, err := i.Ingest(ctx, domain.Batch{Username: "alice", Items: items(itemP1, itemP2)})
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if result.Failed != 1 || result.Stored != 1 {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestIngest_ReingestIsNoop(t *testing.T) {
	store := newMemStore()
	i := newMemIngestor(store)
	ctx := context.Background()

	batch := domain.Batch{
		Username: "alice",
		Profile:  &domain.ProfileAttributes{FullName: "Alice", FollowersCount: 10},
		Items:    items(itemP1, itemP2, itemCarousel),
	}

	first, err := i.Ingest(ctx, batch)
	if err != nil {
		t.Fatalf("first Ingest: %v", err)
	}
	if !first.ProfileCreated || first.Stored != 3 {
		t.Fatalf("unexpected first result: %+v", first)
	}

	batch.Profile = &domain.ProfileAttributes{FullName: "Alice B", FollowersCount: 25}
	second, err := i.Ingest(ctx, batch)
	if err != nil {
		t.Fatalf("second Ingest: %v", err)
	}
	if second.ProfileCreated || second.ProfileID != first.ProfileID {
		t.Errorf("profile must be reused: first %+v, second %+v", first, second)
	}
	if second.Stored != 0 || second.Seen != 3 {
		t.Errorf("re-ingest must be a no-op: %+v", second)
	}

	if len(store.posts) != 3 || len(store.seen) != 3 || len(store.profiles) != 1 {
		t.Errorf("store grew: posts=%d seen=%d profiles=%d", len(store.posts), len(store.seen), len(store.profiles))
	}

	p, err := store.GetByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if p.FullName != "Alice B" || p.FollowersCount != 25 {
		t.Errorf("profile attributes not refreshed: %+v", p)
	}
}

func TestIngest_CarouselMediaOrder(t *testing.T) {
	store := newMemStore()
	i := newMemIngestor(store)
	ctx := context.Background()

	if _, err := i.Ingest(ctx, domain.Batch{Username: "alice", Items: items(itemCarousel)}); err != nil {
		t.Fatalf("Ingest: %v", err)
	}

	posts, _ := store.GetLatestByUsername(ctx, "alice", 10)
	if len(posts) != 1 || posts[0].Type != "sidecar" {
		t.Fatalf("unexpected posts: %+v", posts)
	}

	media, _ := store.ListMedia(ctx, posts[0].ID)
	want := []domain.PostMedia{
		{Type: "image", DisplayURL: "A", MediaOrder: 0},
		{Type: "video", DisplayURL: "B", MediaOrder: 1},
		{Type: "image", DisplayURL: "C", MediaOrder: 2},
	}
	if len(media) != len(want) {
		t.Fatalf("expected %d media, got %d", len(want), len(media))
	}
	for k, w := range want {
		got := media[k]
		if got.Type != w.Type || got.DisplayURL != w.DisplayURL || got.MediaOrder != w.MediaOrder || got.Username != "alice" {
			t.Errorf("media[%d] = %+v, want %+v", k, *got, w)
		}
	}
}

func TestIngest_FailedPostIsRetriedOnNextRun(t *testing.T) {
	store := newMemStore()
	store.failMedia = 1
	i := newMemIngestor(store)
	ctx := context.Background()

	batch := domain.Batch{Username: "alice", Items: items(itemCarousel)}

	first, err := i.Ingest(ctx, batch)
	if err != nil {
		t.Fatalf("first Ingest: %v", err)
	}
	if first.Failed != 1 {
		t.Fatalf("expected a failed item, got %+v", first)
	}
	if len(store.posts) != 0 || len(store.seen) != 0 {
		t.Fatalf("partial writes must be rolled back: posts=%d seen=%d", len(store.posts), len(store.seen))
	}

	second, err := i.Ingest(ctx, batch)
	if err != nil {
		t.Fatalf("second Ingest: %v", err)
	}
	if second.Stored != 1 {
		t.Fatalf("expected the item to be stored on retry, got %+v", second)
	}
	if n := len(store.media[store.posts[0].ID]); n != 3 {
		t.Errorf("expected 3 media rows, got %d", n)
	}
}
