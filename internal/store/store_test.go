package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// saveSnap writes a minimal snapshot at the given sequence and timestamp.
func saveSnap(t *testing.T, repo SnapshotRepo, seq int64, ts time.Time, version int) {
	t.Helper()
	err := repo.Save(context.Background(), &Snapshot{
		Sequence:  seq,
		Timestamp: ts,
		Data:      SnapshotData{Version: version},
	})
	if err != nil {
		t.Fatalf("save snapshot seq %d: %v", seq, err)
	}
}

func TestOpenClose(t *testing.T) {
	if openTestStore(t).Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	db := openTestStore(t).DB()

	// journal_mode reports "memory" for in-memory databases, so only the
	// pragmas that stick there are checked.
	for pragma, want := range map[string]string{
		"foreign_keys": "1",
		"synchronous":  "1", // NORMAL
	} {
		var got string
		if err := db.QueryRow("PRAGMA " + pragma).Scan(&got); err != nil {
			t.Errorf("PRAGMA %s: %v", pragma, err)
			continue
		}
		if got != want {
			t.Errorf("PRAGMA %s = %q, want %q", pragma, got, want)
		}
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest on empty store: %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version: SnapshotVersion,
			Skills:  map[string]float64{"vocabulary": 55, "grammar": 30},
			Bandit: BanditState{
				Arms: map[string]BanditArm{
					"l1": {PullCount: 4, RewardSum: 2.8, AverageReward: 0.7, Theta: []float64{0.1, 0.2}},
				},
				TotalPulls: 4,
			},
			CompletedLessons: []string{"l1"},
			RewardedLessons:  []string{"l1"},
			XP:               120,
			Hearts:           5,
			StreakDays:       3,
			LastActiveDate:   "2026-08-29",
			SessionsToday:    2,
			LastAccuracy:     0.8,
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected a snapshot back")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.Version != SnapshotVersion {
		t.Errorf("data.version = %d, want %d", snap.Data.Version, SnapshotVersion)
	}
	if got := snap.Data.Skills["vocabulary"]; got != 55 {
		t.Errorf("skills[vocabulary] = %v, want 55", got)
	}
	arm, ok := snap.Data.Bandit.Arms["l1"]
	if !ok {
		t.Fatal("missing bandit arm l1")
	}
	if arm.PullCount != 4 || arm.AverageReward != 0.7 {
		t.Errorf("arm = %+v, want pulls 4, avg 0.7", arm)
	}
	if snap.Data.XP != 120 || snap.Data.StreakDays != 3 {
		t.Errorf("xp/streak = %d/%d, want 120/3", snap.Data.XP, snap.Data.StreakDays)
	}
	if snap.Data.LastActiveDate != "2026-08-29" {
		t.Errorf("last active = %q", snap.Data.LastActiveDate)
	}
}

func TestSnapshotLatestFollowsSequence(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// The highest sequence wins even when an older sequence carries a newer
	// wall-clock timestamp: "latest" is relative to the event log.
	base := time.Now().UTC().Truncate(time.Second)
	saveSnap(t, repo, 1, base, 1)
	saveSnap(t, repo, 3, base.Add(time.Minute), 3)
	saveSnap(t, repo, 2, base.Add(time.Hour), 2)

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 3 || snap.Data.Version != 3 {
		t.Errorf("latest = seq %d version %d, want seq 3 version 3", snap.Sequence, snap.Data.Version)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := int64(1); i <= 7; i++ {
		saveSnap(t, repo, i, base.Add(time.Duration(i)*time.Minute), 1)
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotPruneBelowKeepIsNoop(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	saveSnap(t, repo, 1, base, 1)
	saveSnap(t, repo, 2, base.Add(time.Minute), 1)

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}

func TestSequenceCounterMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	for want := int64(1); want <= 5; want++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if seq != want {
			t.Errorf("seq = %d, want %d", seq, want)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	db := openTestStore(t).DB()

	var name string
	err := db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='snapshots'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if name != "snapshots" {
		t.Errorf("table name = %q, want 'snapshots'", name)
	}
}
