package util_test

import (
	"context"
	"errors"
	"testing"
	"time"

	util "github.com/saulo-duarte/careercoach/internal/utils"
)

func TestFetch(t *testing.T) {
	ctx := context.Background()

	t.Run("Ok", func(t *testing.T) {
		r := util.Fetch(ctx, time.Second, func(ctx context.Context) (int, error) {
			return 42, nil
		})
		if !r.Ok() || r.Value != 42 {
			t.Fatalf("expected ok/42, got %v/%d", r.Status, r.Value)
		}
	})

	t.Run("Failed", func(t *testing.T) {
		r := util.Fetch(ctx, time.Second, func(ctx context.Context) (int, error) {
			return 0, errors.New("connection refused")
		})
		if r.Status != util.FetchFailed {
			t.Fatalf("expected failed, got %v", r.Status)
		}
		if got := r.Or(7); got != 7 {
			t.Errorf("expected default 7, got %d", got)
		}
	})

	t.Run("TimedOut", func(t *testing.T) {
		r := util.Fetch(ctx, 20*time.Millisecond, func(ctx context.Context) (int, error) {
			time.Sleep(500 * time.Millisecond)
			return 1, nil
		})
		if r.Status != util.FetchTimedOut {
			t.Fatalf("expected timed out, got %v", r.Status)
		}
	})

	t.Run("ContextAwareTimeout", func(t *testing.T) {
		r := util.Fetch(ctx, 20*time.Millisecond, func(ctx context.Context) (int, error) {
			<-ctx.Done()
			return 0, ctx.Err()
		})
		if r.Status != util.FetchTimedOut {
			t.Fatalf("expected timed out, got %v", r.Status)
		}
	})

	t.Run("Panic", func(t *testing.T) {
		r := util.Fetch(ctx, time.Second, func(ctx context.Context) ([]string, error) {
			panic("boom")
		})
		if r.Status != util.FetchFailed || r.Err == nil {
			t.Fatalf("expected failed with error, got %v %v", r.Status, r.Err)
		}
	})
}

func TestDateJSON(t *testing.T) {
	d := util.NewDate(time.Date(2024, 1, 15, 22, 30, 0, 0, time.UTC))
	b, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON failed: %v", err)
	}
	if string(b) != `"2024-01-15"` {
		t.Errorf("unexpected JSON %s", b)
	}

	var parsed util.Date
	if err := parsed.UnmarshalJSON(b); err != nil {
		t.Fatalf("UnmarshalJSON failed: %v", err)
	}
	if !util.SameDay(parsed.Time, d.Time) {
		t.Errorf("expected same day, got %v", parsed)
	}
}
