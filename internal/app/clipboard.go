package app

import (
	"fmt"

	"github.com/atotto/clipboard"

	"antfarm/internal/terrain"
)

// copySnapshot serializes the store to snapshot JSON on the system clipboard.
func copySnapshot(store *terrain.SparseStore) error {
	data, err := terrain.EncodeSnapshot(store.ExportSnapshot())
	if err != nil {
		return err
	}
	if err := clipboard.WriteAll(string(data)); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}

// pasteSnapshot replaces the store's state with snapshot JSON from the
// system clipboard. A malformed or oversized snapshot leaves the store
// untouched.
func pasteSnapshot(store *terrain.SparseStore) error {
	text, err := clipboard.ReadAll()
	if err != nil {
		return fmt.Errorf("read clipboard: %w", err)
	}
	snap, err := terrain.DecodeSnapshot([]byte(text))
	if err != nil {
		return err
	}
	return store.ImportSnapshot(snap)
}
