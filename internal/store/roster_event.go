package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendRosterChange(ctx context.Context, data RosterEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.RosterEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetUsername(data.Username).
		SetRole(data.Role).
		SetAction(data.Action).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save roster event: %w", err)
	}
	return nil
}
