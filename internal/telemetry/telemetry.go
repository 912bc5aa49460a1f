// Package telemetry records learning events without ever blocking or
// failing the learning loop. Sinks are best-effort: write errors are
// dropped, a nil store disables recording entirely.
package telemetry

import (
	"context"

	"github.com/abhisek/lingua/internal/store"
)

// Recorder receives learning events as they happen.
type Recorder interface {
	RecordAttempt(ctx context.Context, data store.AttemptEventData)
	RecordSessionStart(ctx context.Context, data store.SessionEventData)
	RecordSessionEnd(ctx context.Context, data store.SessionEventData)
	RecordReward(ctx context.Context, data store.RewardEventData)
}

// storeRecorder persists events through a store.EventRepo.
type storeRecorder struct {
	events store.EventRepo
}

// NewRecorder returns a Recorder backed by the event repo. A nil repo
// yields a no-op recorder.
func NewRecorder(events store.EventRepo) Recorder {
	if events == nil {
		return NopRecorder{}
	}
	return &storeRecorder{events: events}
}

func (r *storeRecorder) RecordAttempt(ctx context.Context, data store.AttemptEventData) {
	_ = r.events.AppendAttemptEvent(ctx, data)
}

func (r *storeRecorder) RecordSessionStart(ctx context.Context, data store.SessionEventData) {
	data.Action = "start"
	_ = r.events.AppendSessionEvent(ctx, data)
}

func (r *storeRecorder) RecordSessionEnd(ctx context.Context, data store.SessionEventData) {
	data.Action = "end"
	_ = r.events.AppendSessionEvent(ctx, data)
}

func (r *storeRecorder) RecordReward(ctx context.Context, data store.RewardEventData) {
	_ = r.events.AppendRewardEvent(ctx, data)
}

// NopRecorder discards every event.
type NopRecorder struct{}

func (NopRecorder) RecordAttempt(context.Context, store.AttemptEventData)      {}
func (NopRecorder) RecordSessionStart(context.Context, store.SessionEventData) {}
func (NopRecorder) RecordSessionEnd(context.Context, store.SessionEventData)   {}
func (NopRecorder) RecordReward(context.Context, store.RewardEventData)        {}
