package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/robalobadob/hangman/internal/game"
)

func TestMemory_SaveGetLatest(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	if _, err := st.Latest(ctx); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Latest on empty store: %v, want ErrNotFound", err)
	}
	if err := st.Save(ctx, game.Snapshot{}); err == nil {
		t.Error("Save without session id should fail")
	}

	_ = st.Save(ctx, game.Snapshot{SessionID: "a", Round: 1})
	_ = st.Save(ctx, game.Snapshot{SessionID: "b", Round: 4})
	_ = st.Save(ctx, game.Snapshot{SessionID: "a", Round: 2})

	got, err := st.Get(ctx, "b")
	if err != nil || got.Round != 4 {
		t.Errorf("Get(b) = %+v, %v", got, err)
	}
	latest, err := st.Latest(ctx)
	if err != nil || latest.SessionID != "a" || latest.Round != 2 {
		t.Errorf("Latest = %+v, %v; want a/2", latest, err)
	}
	if _, err := st.Get(ctx, "zzz"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(zzz): %v, want ErrNotFound", err)
	}
}

func TestMemory_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = st.Save(ctx, game.Snapshot{SessionID: "s", Round: n*100 + j})
			}
		}(i)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_, _ = st.Latest(ctx)
			}
		}()
	}
	wg.Wait()
	if _, err := st.Get(ctx, "s"); err != nil {
		t.Errorf("Get after concurrent saves: %v", err)
	}
}
