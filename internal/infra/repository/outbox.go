package repository

import (
	"context"
	"encoding/json"
	"time"

	"furnicraft/internal/infra"
	"furnicraft/internal/infra/db"
	"furnicraft/internal/usecase/shared"

	"github.com/google/uuid"
)

type OutboxRepository struct {
	db db.DBTX
}

func NewOutboxRepository(db db.DBTX) *OutboxRepository {
	return &OutboxRepository{db: db}
}

func (r *OutboxRepository) Enqueue(ctx context.Context, topic string, payload any, at time.Time) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return infra.WrapRepoErr("failed to encode outbox payload", err)
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO outbox_events (topic, payload, created_at) VALUES ($1, $2, $3)`,
		topic, body, at,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to enqueue outbox event", err)
	}
	return nil
}

func (r *OutboxRepository) ClaimPending(ctx context.Context, limit int) ([]shared.OutboxEvent, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, topic, payload, attempts, created_at
		FROM outbox_events
		WHERE status = 'pending'
		ORDER BY created_at
		LIMIT $1
		FOR UPDATE SKIP LOCKED`, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim outbox events", err)
	}
	defer rows.Close()

	events := make([]shared.OutboxEvent, 0, limit)
	for rows.Next() {
		var e shared.OutboxEvent
		if err := rows.Scan(&e.ID, &e.Topic, &e.Payload, &e.Attempts, &e.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan outbox event", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate outbox events", err)
	}
	return events, nil
}

func (r *OutboxRepository) MarkPublished(ctx context.Context, id uuid.UUID, at time.Time) error {
	_, err := r.db.Exec(ctx,
		`UPDATE outbox_events SET status = 'published', published_at = $2, attempts = attempts + 1 WHERE id = $1`,
		id, at,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to mark outbox event published", err)
	}
	return nil
}

func (r *OutboxRepository) MarkAttemptFailed(ctx context.Context, id uuid.UUID, reason string, maxAttempts int) error {
	_, err := r.db.Exec(ctx, `
		UPDATE outbox_events SET
			attempts = attempts + 1,
			last_error = $2,
			status = CASE WHEN attempts + 1 >= $3 THEN 'failed' ELSE 'pending' END
		WHERE id = $1`,
		id, reason, maxAttempts,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to record outbox failure", err)
	}
	return nil
}
