package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/abhisek/pathwise/ent"
	"github.com/abhisek/pathwise/ent/snapshot"
	"github.com/abhisek/pathwise/internal/platform"
)

// KeepSnapshots is how many snapshots SaveSnapshot retains.
const KeepSnapshots = 10

// SaveSnapshot captures platform state at the event log's current
// sequence, then prunes old snapshots. A nil event repo records
// sequence 0.
func SaveSnapshot(ctx context.Context, snaps SnapshotRepo, events EventRepo, state platform.Snapshot) error {
	var seq int64
	if events != nil {
		seq, _ = events.LastSequence(ctx)
	}
	snap := &Snapshot{
		Sequence:  seq,
		Timestamp: time.Now(),
		Data: SnapshotData{
			Version: SnapshotVersion,
			State:   state,
		},
	}
	if err := snaps.Save(ctx, snap); err != nil {
		return err
	}
	return snaps.Prune(ctx, KeepSnapshots)
}

// snapshotRepo implements SnapshotRepo using the ent client.
type snapshotRepo struct {
	client *ent.Client
}

func (r *snapshotRepo) Save(ctx context.Context, snap *Snapshot) error {
	dataMap, err := snapshotDataToMap(snap.Data)
	if err != nil {
		return fmt.Errorf("marshal snapshot data: %w", err)
	}

	_, err = r.client.Snapshot.Create().
		SetSequence(snap.Sequence).
		SetTimestamp(snap.Timestamp).
		SetData(dataMap).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Latest(ctx context.Context) (*Snapshot, error) {
	// Insertion order, not timestamp: two snapshots can share a wall
	// clock second.
	s, err := r.client.Snapshot.Query().
		Order(ent.Desc(snapshot.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}
	return entSnapshotToSnapshot(s)
}

func (r *snapshotRepo) Prune(ctx context.Context, keep int) error {
	// Find the newest snapshot that falls outside the keep window.
	victims, err := r.client.Snapshot.Query().
		Order(ent.Desc(snapshot.FieldID)).
		Offset(keep).
		Limit(1).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	if len(victims) == 0 {
		return nil // fewer than keep snapshots exist
	}

	_, err = r.client.Snapshot.Delete().
		Where(snapshot.IDLTE(victims[0].ID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

// snapshotDataToMap converts SnapshotData to map[string]any for ent JSON storage.
func snapshotDataToMap(data SnapshotData) (map[string]any, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// entSnapshotToSnapshot converts an ent Snapshot to a store Snapshot.
func entSnapshotToSnapshot(s *ent.Snapshot) (*Snapshot, error) {
	b, err := json.Marshal(s.Data)
	if err != nil {
		return nil, fmt.Errorf("marshal ent data: %w", err)
	}
	var data SnapshotData
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot data: %w", err)
	}
	return &Snapshot{
		ID:        s.ID,
		Sequence:  s.Sequence,
		Timestamp: s.Timestamp,
		Data:      data,
	}, nil
}
