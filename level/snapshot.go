package level

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"github.com/quasilyte/gdata/v2"

	"github.com/lixenwraith/sandfall/grid"
	"github.com/lixenwraith/sandfall/parameter"
)

// SnapshotStore persists grid snapshots in the per-user application data directory
type SnapshotStore struct {
	manager *gdata.Manager
}

// OpenSnapshotStore opens gdata storage for an application name
func OpenSnapshotStore(appName string) (*SnapshotStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot storage: %w", err)
	}
	return &SnapshotStore{manager: m}, nil
}

// Save writes a snapshot, replacing any previous one
func (s *SnapshotStore) Save(snap grid.Snapshot) error {
	data, err := EncodeSnapshot(snap)
	if err != nil {
		return err
	}
	if err := s.manager.SaveObjectProp(parameter.SnapshotObject, parameter.SnapshotProp, data); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// Exists reports whether a snapshot was saved
func (s *SnapshotStore) Exists() bool {
	return s.manager.ObjectPropExists(parameter.SnapshotObject, parameter.SnapshotProp)
}

// Load reads the saved snapshot; false when none exists
func (s *SnapshotStore) Load() (grid.Snapshot, bool, error) {
	if !s.Exists() {
		return grid.Snapshot{}, false, nil
	}
	data, err := s.manager.LoadObjectProp(parameter.SnapshotObject, parameter.SnapshotProp)
	if err != nil {
		return grid.Snapshot{}, false, fmt.Errorf("failed to load snapshot: %w", err)
	}
	snap, err := DecodeSnapshot(data)
	if err != nil {
		return grid.Snapshot{}, false, err
	}
	return snap, true, nil
}

// EncodeSnapshot serializes a snapshot with gob
func EncodeSnapshot(snap grid.Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(snap); err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeSnapshot reverses EncodeSnapshot and checks the cell count
func DecodeSnapshot(data []byte) (grid.Snapshot, error) {
	var snap grid.Snapshot
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&snap); err != nil {
		return grid.Snapshot{}, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	n := snap.Width * snap.Height
	if snap.Width <= 0 || snap.Height <= 0 || len(snap.Cells) != n || len(snap.Occupied) != n {
		return grid.Snapshot{}, fmt.Errorf("corrupt snapshot: %dx%d with %d cells", snap.Width, snap.Height, len(snap.Cells))
	}
	return snap, nil
}
