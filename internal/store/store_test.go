package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(t.TempDir(), zap.NewNop().Sugar())
}

func TestFileStore(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		s := newTestStore(t)

		type blob struct {
			Name  string `json:"name"`
			Count int    `json:"count"`
		}
		s.Set("sample", blob{Name: "trm", Count: 3})

		var out blob
		age, ok := s.Get("sample", &out)
		require.True(t, ok)
		require.Equal(t, blob{Name: "trm", Count: 3}, out)
		require.Less(t, age, time.Minute)
	})

	t.Run("absent key", func(t *testing.T) {
		s := newTestStore(t)

		var out map[string]string
		_, ok := s.Get("missing", &out)
		require.False(t, ok)
	})

	t.Run("corrupt blob treated as empty", func(t *testing.T) {
		dir := t.TempDir()
		s := NewFileStore(dir, zap.NewNop().Sugar())

		err := os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0o644)
		require.NoError(t, err)

		var out []string
		_, ok := s.Get("bad", &out)
		require.False(t, ok)
	})

	t.Run("delete", func(t *testing.T) {
		s := newTestStore(t)

		s.Set("gone", []int{1, 2, 3})
		s.Delete("gone")

		var out []int
		_, ok := s.Get("gone", &out)
		require.False(t, ok)

		// deleting twice is fine
		s.Delete("gone")
	})

	t.Run("unwritable dir drops writes silently", func(t *testing.T) {
		s := NewFileStore("/dev/null/nope", zap.NewNop().Sugar())

		s.Set("k", "v")

		var out string
		_, ok := s.Get("k", &out)
		require.False(t, ok)
	})
}
