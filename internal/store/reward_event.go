package store

import (
	"context"
	"fmt"

	"github.com/abhisek/lingua/ent/rewardevent"
)

func (r *eventRepo) AppendRewardEvent(ctx context.Context, data RewardEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.RewardEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetLessonID(data.LessonID).
		SetReward(data.Reward).
		SetAccuracy(data.Accuracy).
		SetCreditRatio(data.CreditRatio).
		SetXpAwarded(data.XPAwarded).
		SetFirstAttempt(data.FirstAttempt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save reward event: %w", err)
	}
	return nil
}

func (r *eventRepo) TotalReward(ctx context.Context, lessonID string) (float64, error) {
	events, err := r.client.RewardEvent.Query().
		Where(rewardevent.LessonID(lessonID)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query rewards: %w", err)
	}

	total := 0.0
	for _, e := range events {
		total += e.Reward
	}
	return total, nil
}
