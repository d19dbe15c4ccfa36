package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sam23121/car-detailing/internal/model"
)

// SlotRepository handles persistence for available slots.
type SlotRepository struct {
	db *pgxpool.Pool
}

// NewSlotRepository constructs a SlotRepository.
func NewSlotRepository(db *pgxpool.Pool) *SlotRepository {
	return &SlotRepository{db: db}
}

const slotColumns = `id, slot_start, slot_end, created_at`

func scanSlot(row pgx.Row) (*model.AvailableSlot, error) {
	var s model.AvailableSlot
	err := row.Scan(&s.ID, &s.SlotStart, &s.SlotEnd, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan slot: %w", err)
	}
	return &s, nil
}

// Create inserts a new slot.
func (r *SlotRepository) Create(ctx context.Context, req model.SlotRequest) (*model.AvailableSlot, error) {
	return scanSlot(r.db.QueryRow(ctx,
		`INSERT INTO available_slots (slot_start, slot_end)
		 VALUES ($1, $2)
		 RETURNING `+slotColumns,
		req.SlotStart, req.SlotEnd,
	))
}

// ListWindow returns slots whose slot_start falls within [from, to], ordered
// by slot_start ascending. When includeTaken is false, slots referenced by a
// non-cancelled booking are excluded; the anti-join is a no-op when no active
// booking holds any slot.
func (r *SlotRepository) ListWindow(ctx context.Context, from, to time.Time, includeTaken bool) ([]model.AvailableSlot, error) {
	query := `SELECT ` + slotColumns + `
		 FROM available_slots s
		 WHERE s.slot_start >= $1 AND s.slot_start <= $2`
	if !includeTaken {
		query += `
		 AND NOT EXISTS (
		     SELECT 1 FROM bookings b
		     WHERE b.available_slot_id = s.id AND b.status <> 'cancelled'
		 )`
	}
	query += `
		 ORDER BY s.slot_start ASC`

	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	defer rows.Close()

	var slots []model.AvailableSlot
	for rows.Next() {
		var s model.AvailableSlot
		if err := rows.Scan(&s.ID, &s.SlotStart, &s.SlotEnd, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		slots = append(slots, s)
	}
	return slots, rows.Err()
}

// Delete removes a slot, returning ErrNotFound if absent.
func (r *SlotRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM available_slots WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete slot: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
