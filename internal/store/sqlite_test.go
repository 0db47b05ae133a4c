package store

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/Cyclone1070/devtoolbox/internal/toolbox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) (*SQLiteStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "state.db")
	s, err := Open(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s, path
}

func TestGet_MissingKey(t *testing.T) {
	s, _ := openTestStore(t)

	data, err := s.Get(context.Background(), "devtoolbox")

	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestPut_Overwrites(t *testing.T) {
	s, _ := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "devtoolbox", []byte("one")))
	require.NoError(t, s.Put(ctx, "devtoolbox", []byte("two")))
	require.NoError(t, s.Put(ctx, "other", []byte("three")))

	data, err := s.Get(ctx, "devtoolbox")
	require.NoError(t, err)
	assert.Equal(t, []byte("two"), data)
}

func TestState_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	s, path := openTestStore(t)
	want := toolbox.State{Tool: toolbox.ToolSQLFormat, Input: "select 1"}

	require.NoError(t, toolbox.SaveState(ctx, s, "devtoolbox", want))
	require.NoError(t, s.Close())

	reopened, err := Open(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := toolbox.LoadState(ctx, reopened, "devtoolbox")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestMemoryStore_KeepsSchemaAcrossCalls(t *testing.T) {
	ctx := context.Background()
	s, err := Open(ctx, ":memory:")
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Put(ctx, "devtoolbox", []byte("state")))

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			data, err := s.Get(ctx, "devtoolbox")
			if err == nil && string(data) != "state" {
				err = assert.AnError
			}
			errs[i] = err
		}()
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}
}
