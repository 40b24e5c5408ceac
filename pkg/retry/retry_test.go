package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/orgball2608/insta-feed-ingestor/pkg/logger"
)

func fastConfig() Config {
	return Config{
		MaxRetries:      3,
		InitialInterval: time.Millisecond,
		MaxInterval:     2 * time.Millisecond,
		Multiplier:      1.5,
	}
}

func TestDo_SucceedsAfterRetries(t *testing.T) {
	calls := 0
	op := func() error {
		calls++
		if calls < 3 {
			return errors.New("not yet")
		}
		return nil
	}

	if err := Do(context.Background(), logger.Discard(), "test", op, fastConfig()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestDo_GivesUp(t *testing.T) {
	calls := 0
	op := func() error {
		calls++
		return errors.New("always")
	}

	if err := Do(context.Background(), logger.Discard(), "test", op, fastConfig()); err == nil {
		t.Fatal("expected error")
	}
	if calls != 4 {
		t.Errorf("calls = %d, want 4", calls)
	}
}

func TestDo_PermanentStopsEarly(t *testing.T) {
	calls := 0
	op := func() error {
		calls++
		return Permanent(errors.New("fatal"))
	}

	if err := Do(context.Background(), logger.Discard(), "test", op, fastConfig()); err == nil {
		t.Fatal("expected error")
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestDoValue_ReturnsResult(t *testing.T) {
	calls := 0
	got, err := DoValue(context.Background(), logger.Discard(), "test", func() (int, error) {
		calls++
		if calls == 1 {
			return 0, errors.New("transient")
		}
		return 42, nil
	}, fastConfig())
	if err != nil || got != 42 {
		t.Fatalf("DoValue = %d, %v", got, err)
	}
}

func TestDo_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Do(ctx, logger.Discard(), "test", func() error { return errors.New("fail") }, fastConfig())
	if err == nil {
		t.Fatal("expected error")
	}
}
