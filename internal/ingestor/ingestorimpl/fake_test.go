package ingestorimpl

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/orgball2608/insta-feed-ingestor/internal/domain"
	"github.com/orgball2608/insta-feed-ingestor/internal/repositories/ledger"
	"github.com/orgball2608/insta-feed-ingestor/internal/repositories/profile"
)

// memStore is an in-memory stand-in for the three repositories and the
// transactor. WithinTx snapshots the state and restores it when fn fails.
type memStore struct {
	mu sync.Mutex

	profiles map[string]domain.Profile
	posts    []domain.Post
	media    map[int64][]domain.PostMedia
	seen     map[string]domain.ProcessedNode

	nextID int64

	// failMedia makes the next n CreateMedia calls fail.
	failMedia int
}

func newMemStore() *memStore {
	return &memStore{
		profiles: map[string]domain.Profile{},
		media:    map[int64][]domain.PostMedia{},
		seen:     map[string]domain.ProcessedNode{},
	}
}

type memSnapshot struct {
	profiles map[string]domain.Profile
	posts    []domain.Post
	media    map[int64][]domain.PostMedia
	seen     map[string]domain.ProcessedNode
}

func (m *memStore) snapshot() memSnapshot {
	s := memSnapshot{
		profiles: map[string]domain.Profile{},
		posts:    append([]domain.Post(nil), m.posts...),
		media:    map[int64][]domain.PostMedia{},
		seen:     map[string]domain.ProcessedNode{},
	}
	for k, v := range m.profiles {
		s.profiles[k] = v
	}
	for k, v := range m.media {
		s.media[k] = append([]domain.PostMedia(nil), v...)
	}
	for k, v := range m.seen {
		s.seen[k] = v
	}
	return s
}

func (m *memStore) restore(s memSnapshot) {
	m.profiles, m.posts, m.media, m.seen = s.profiles, s.posts, s.media, s.seen
}

func (m *memStore) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	snap := m.snapshot()
	m.mu.Unlock()

	if err := fn(ctx); err != nil {
		m.mu.Lock()
		m.restore(snap)
		m.mu.Unlock()
		return err
	}
	return nil
}

func (m *memStore) Upsert(_ context.Context, p domain.Profile) (int64, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.profiles[p.Username]
	if !ok {
		m.nextID++
		p.ID = m.nextID
		p.IsCarProfile = false
		m.profiles[p.Username] = p
		return p.ID, true, nil
	}

	p.ID = existing.ID
	p.IsCarProfile = existing.IsCarProfile
	m.profiles[p.Username] = p
	return p.ID, false, nil
}

func (m *memStore) EnsureExists(_ context.Context, username string, now time.Time) (int64, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.profiles[username]; ok {
		return existing.ID, false, nil
	}
	m.nextID++
	m.profiles[username] = domain.Profile{
		ID:          m.nextID,
		Username:    username,
		ProfileType: domain.ProfileTypeInstagram,
		LastUpdated: now,
	}
	return m.nextID, true, nil
}

func (m *memStore) GetByUsername(_ context.Context, username string) (*domain.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.profiles[username]
	if !ok {
		return nil, profile.ErrNotFound
	}
	return &p, nil
}

func (m *memStore) Create(_ context.Context, p domain.Post) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	p.ID = m.nextID
	m.posts = append(m.posts, p)
	return p.ID, nil
}

func (m *memStore) CreateMedia(_ context.Context, postID int64, username string, media []domain.NormalizedMedia) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failMedia > 0 {
		m.failMedia--
		return errors.New("media insert failed")
	}
	for _, nm := range media {
		m.nextID++
		m.media[postID] = append(m.media[postID], domain.PostMedia{
			ID:         m.nextID,
			PostID:     postID,
			Type:       nm.Type,
			DisplayURL: nm.DisplayURL,
			MediaOrder: nm.Order,
			Username:   username,
		})
	}
	return nil
}

func (m *memStore) GetLatestByUsername(_ context.Context, username string, count int) ([]*domain.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []*domain.Post
	for i := len(m.posts) - 1; i >= 0 && len(out) < count; i-- {
		if m.posts[i].Username == username {
			p := m.posts[i]
			out = append(out, &p)
		}
	}
	return out, nil
}

func (m *memStore) ListMedia(_ context.Context, postID int64) ([]*domain.PostMedia, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []*domain.PostMedia
	for _, pm := range m.media[postID] {
		pm := pm
		out = append(out, &pm)
	}
	return out, nil
}

func (m *memStore) HasSeen(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.seen[id]
	return ok, nil
}

func (m *memStore) MarkSeen(_ context.Context, node domain.ProcessedNode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.seen[node.ID]; ok {
		return ledger.ErrAlreadyExists
	}
	m.seen[node.ID] = node
	return nil
}
