package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/pathwise/ent"
	"github.com/abhisek/pathwise/ent/interactionevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendInteraction(ctx context.Context, data InteractionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.InteractionEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetModuleID(data.ModuleID).
		SetCompletionPct(data.CompletionPct).
		SetTimeSpentMins(data.TimeSpentMins).
		SetCreated(data.Created).
		SetCompletionAdvanced(data.CompletionAdvanced)

	if data.QuizScore != nil {
		builder = builder.SetQuizScore(*data.QuizScore)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save interaction event: %w", err)
	}
	return nil
}

func (r *eventRepo) LastSequence(ctx context.Context) (int64, error) {
	return r.seq.Current(ctx)
}

func (r *eventRepo) InteractionCount(ctx context.Context, userID string) (int, error) {
	q := r.client.InteractionEvent.Query()
	if userID != "" {
		q = q.Where(interactionevent.UserID(userID))
	}
	n, err := q.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count interaction events: %w", err)
	}
	return n, nil
}

func (r *eventRepo) LatestInteractionTime(ctx context.Context, userID string) (time.Time, error) {
	ev, err := r.client.InteractionEvent.Query().
		Where(interactionevent.UserID(userID)).
		Order(ent.Desc(interactionevent.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("query latest interaction time: %w", err)
	}
	return ev.Timestamp, nil
}

func (r *eventRepo) RecentInteractions(ctx context.Context, opts QueryOpts) ([]InteractionEvent, error) {
	q := r.client.InteractionEvent.Query()
	if opts.After > 0 {
		q = q.Where(interactionevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(interactionevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(interactionevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(interactionevent.TimestampLTE(opts.To))
	}
	q = q.Order(ent.Desc(interactionevent.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query interaction events: %w", err)
	}

	events := make([]InteractionEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, InteractionEvent{
			Sequence:      row.Sequence,
			Timestamp:     row.Timestamp,
			UserID:        row.UserID,
			ModuleID:      row.ModuleID,
			CompletionPct: row.CompletionPct,
			TimeSpentMins: row.TimeSpentMins,
			QuizScore:     row.QuizScore,
		})
	}
	return events, nil
}
