package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/lingua/ent"
	"github.com/abhisek/lingua/ent/snapshot"
)

// snapshotRepo implements SnapshotRepo on the ent client. Snapshots are
// ordered by their global sequence number, the same counter the event
// tables draw from, so "latest" means latest relative to the event log
// rather than to wall-clock time.
type snapshotRepo struct {
	client *ent.Client
}

func (r *snapshotRepo) Save(ctx context.Context, snap *Snapshot) error {
	payload, err := snapshotPayload(snap.Data)
	if err != nil {
		return fmt.Errorf("marshal snapshot data: %w", err)
	}

	_, err = r.client.Snapshot.Create().
		SetSequence(snap.Sequence).
		SetTimestamp(snap.Timestamp).
		SetData(payload).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Latest(ctx context.Context) (*Snapshot, error) {
	row, err := r.client.Snapshot.Query().
		Order(ent.Desc(snapshot.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}
	return snapshotFromRow(row)
}

// Prune deletes everything older than the keep most recent snapshots.
func (r *snapshotRepo) Prune(ctx context.Context, keep int) error {
	older, err := r.client.Snapshot.Query().
		Order(ent.Desc(snapshot.FieldSequence)).
		Offset(keep).
		Limit(1).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	if len(older) == 0 {
		return nil
	}

	_, err = r.client.Snapshot.Delete().
		Where(snapshot.SequenceLTE(older[0].Sequence)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

// snapshotPayload round-trips SnapshotData through JSON into the generic
// map ent stores in its JSON column.
func snapshotPayload(data SnapshotData) (map[string]any, error) {
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

func snapshotFromRow(row *ent.Snapshot) (*Snapshot, error) {
	b, err := json.Marshal(row.Data)
	if err != nil {
		return nil, fmt.Errorf("marshal ent data: %w", err)
	}
	var data SnapshotData
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot data: %w", err)
	}
	return &Snapshot{
		ID:        row.ID,
		Sequence:  row.Sequence,
		Timestamp: row.Timestamp,
		Data:      data,
	}, nil
}
