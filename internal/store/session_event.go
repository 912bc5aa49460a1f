package store

import (
	"context"
	"fmt"

	"github.com/abhisek/lingua/ent"
	"github.com/abhisek/lingua/ent/sessionevent"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetLessonID(data.LessonID).
		SetDomain(data.Domain).
		SetQuestionsServed(data.QuestionsServed).
		SetCorrectAnswers(data.CorrectAnswers).
		SetMasteredConcepts(data.MasteredConcepts).
		SetTotalConcepts(data.TotalConcepts).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentSessions(ctx context.Context, limit int) ([]SessionSummary, error) {
	q := r.client.SessionEvent.Query().
		Where(sessionevent.Action("end")).
		Order(ent.Desc(sessionevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}
	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent sessions: %w", err)
	}

	out := make([]SessionSummary, 0, len(events))
	for _, e := range events {
		out = append(out, SessionSummary{
			SessionID:        e.SessionID,
			LessonID:         e.LessonID,
			Domain:           e.Domain,
			Timestamp:        e.Timestamp,
			QuestionsServed:  e.QuestionsServed,
			CorrectAnswers:   e.CorrectAnswers,
			MasteredConcepts: e.MasteredConcepts,
			TotalConcepts:    e.TotalConcepts,
			DurationSecs:     e.DurationSecs,
		})
	}
	return out, nil
}
