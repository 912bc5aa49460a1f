package store

import (
	"context"
	"fmt"

	"github.com/abhisek/lingua/ent/attemptevent"
)

func (r *eventRepo) AppendAttemptEvent(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetLessonID(data.LessonID).
		SetConceptID(data.ConceptID).
		SetQuestionID(data.QuestionID).
		SetDomain(data.Domain).
		SetDifficulty(data.Difficulty).
		SetPenalty(data.Penalty).
		SetCorrect(data.Correct).
		SetTimeMs(data.TimeMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) DomainAccuracy(ctx context.Context) ([]DomainStats, error) {
	events, err := r.client.AttemptEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}

	byDomain := make(map[string]*DomainStats)
	var order []string
	for _, e := range events {
		st, ok := byDomain[e.Domain]
		if !ok {
			st = &DomainStats{Domain: e.Domain}
			byDomain[e.Domain] = st
			order = append(order, e.Domain)
		}
		st.Attempts++
		if e.Correct {
			st.Correct++
		}
	}

	out := make([]DomainStats, 0, len(order))
	for _, d := range order {
		out = append(out, *byDomain[d])
	}
	return out, nil
}

func (r *eventRepo) LessonAccuracy(ctx context.Context, lessonID string) (float64, error) {
	events, err := r.client.AttemptEvent.Query().
		Where(attemptevent.LessonID(lessonID)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query lesson attempts: %w", err)
	}
	if len(events) == 0 {
		return 0, nil
	}

	correct := 0
	for _, e := range events {
		if e.Correct {
			correct++
		}
	}
	return float64(correct) / float64(len(events)), nil
}
