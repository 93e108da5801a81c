package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendFeedback(ctx context.Context, data FeedbackEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.FeedbackEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetModuleID(data.ModuleID).
		SetPrompt(data.Prompt).
		SetChosen(data.Chosen).
		SetCorrect(data.Correct).
		SetTier(data.Tier).
		SetClass(data.Class).
		SetAdjustment(data.Adjustment).
		SetRushed(data.Rushed).
		SetElapsedMs(data.ElapsedMs)
	if data.SessionID != "" {
		builder = builder.SetSessionID(data.SessionID)
	}
	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save feedback event: %w", err)
	}
	return nil
}

func (r *eventRepo) FeedbackStats(ctx context.Context) (FeedbackBreakdown, error) {
	rows, err := r.client.FeedbackEvent.Query().All(ctx)
	if err != nil {
		return FeedbackBreakdown{}, fmt.Errorf("query feedback events: %w", err)
	}

	stats := FeedbackBreakdown{
		ByClass:      make(map[string]int),
		ByAdjustment: make(map[string]int),
	}
	for _, row := range rows {
		stats.Total++
		if row.Correct {
			stats.Correct++
		}
		if row.Rushed {
			stats.Rushed++
		}
		stats.ByClass[row.Class]++
		stats.ByAdjustment[row.Adjustment]++
	}
	return stats, nil
}
