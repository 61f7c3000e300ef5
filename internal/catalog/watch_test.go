package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("categories:\n  - id: rum\n"), 0600))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	revisions := make(chan *Document, 16)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, 20*time.Millisecond, func(doc *Document) {
			revisions <- doc
		})
	}()

	// Give the watcher time to register the directory.
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("categories:\n  - id: rum\n  - id: rum\n"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0600))
	require.NoError(t, os.WriteFile(path, []byte(yamlCatalog), 0600))

	deadline := time.After(5 * time.Second)
	for found := false; !found; {
		select {
		case doc := <-revisions:
			found = len(doc.Categories) == 2
		case <-deadline:
			t.Fatal("no catalog revision delivered")
		}
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}
