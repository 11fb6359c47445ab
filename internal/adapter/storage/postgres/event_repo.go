package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"stakeledger/internal/core/domain"
	"stakeledger/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

// EventRepo implements ports.EventRepository. Append runs inside the
// operation's transaction so the event commits or rolls back with the state
// change it describes.
type EventRepo struct {
	pool Pool
}

// NewEventRepo creates a new EventRepo.
func NewEventRepo(pool Pool) *EventRepo {
	return &EventRepo{pool: pool}
}

// Append inserts an event within a transaction.
func (r *EventRepo) Append(ctx context.Context, tx pgx.Tx, event *domain.Event) error {
	fields, err := json.Marshal(event.Fields)
	if err != nil {
		return fmt.Errorf("marshal event fields: %w", err)
	}
	_, err = tx.Exec(ctx, `
		INSERT INTO events (id, kind, account, fields, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		event.ID, string(event.Kind), string(event.Account), fields, event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

// List returns a page of events, newest first, with the total count.
func (r *EventRepo) List(ctx context.Context, params ports.EventListParams) ([]domain.Event, int64, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 || params.PageSize > 200 {
		params.PageSize = 50
	}

	where := ` WHERE ($1::TEXT IS NULL OR kind = $1) AND ($2::TEXT IS NULL OR account = $2)`

	var kind, account *string
	if params.Kind != nil {
		k := string(*params.Kind)
		kind = &k
	}
	if params.Account != nil {
		a := string(*params.Account)
		account = &a
	}

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM events`+where, kind, account).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count events: %w", err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, kind, account, fields, created_at FROM events`+where+`
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`,
		kind, account, params.PageSize, (params.Page-1)*params.PageSize,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	events, err := scanEvents(rows)
	if err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

func scanEvents(rows pgx.Rows) ([]domain.Event, error) {
	var events []domain.Event
	for rows.Next() {
		var (
			ev      domain.Event
			kind    string
			account string
			fields  []byte
		)
		if err := rows.Scan(&ev.ID, &kind, &account, &fields, &ev.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		ev.Kind = domain.EventKind(kind)
		ev.Account = domain.Address(account)
		if len(fields) > 0 {
			if err := json.Unmarshal(fields, &ev.Fields); err != nil {
				return nil, fmt.Errorf("unmarshal event fields: %w", err)
			}
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return events, nil
}
