package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sam23121/car-detailing/internal/model"
)

// BookingRepository handles persistence for bookings and their items.
type BookingRepository struct {
	db *pgxpool.Pool
}

// NewBookingRepository constructs a BookingRepository.
func NewBookingRepository(db *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{db: db}
}

const bookingColumns = `id, customer_id, package_id, available_slot_id,
	scheduled_date, status, location, notes, created_at, updated_at`

func scanBooking(row pgx.Row) (*model.Booking, error) {
	var b model.Booking
	err := row.Scan(&b.ID, &b.CustomerID, &b.PackageID, &b.AvailableSlotID,
		&b.ScheduledDate, &b.Status, &b.Location, &b.Notes, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}
	return &b, nil
}

// Create inserts a single-package booking with status "pending". A unique
// violation on the active-booking-per-slot index surfaces as ErrSlotTaken.
func (r *BookingRepository) Create(ctx context.Context, req model.CreateBookingRequest) (*model.Booking, error) {
	b, err := scanBooking(r.db.QueryRow(ctx,
		`INSERT INTO bookings (customer_id, package_id, available_slot_id, scheduled_date, status, location, notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+bookingColumns,
		req.CustomerID, req.PackageID, req.AvailableSlotID, req.ScheduledDate,
		model.StatusPending, req.Location, req.Notes,
	))
	if err != nil {
		if isSlotConflict(err) {
			return nil, ErrSlotTaken
		}
		return nil, err
	}
	return b, nil
}

// CreateMulti inserts a booking plus one item row per package id inside a
// single transaction. package_id on the booking mirrors the first id for
// consumers that only read the legacy single-package field. Duplicate ids in
// the input produce duplicate item rows with quantity 1 each. On any failure
// the whole transaction rolls back; no partial booking is ever visible.
func (r *BookingRepository) CreateMulti(ctx context.Context, req model.CreateBookingMultiRequest) (*model.Booking, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	firstID := req.PackageIDs[0]
	var b *model.Booking
	b, err = scanBooking(tx.QueryRow(ctx,
		`INSERT INTO bookings (customer_id, package_id, available_slot_id, scheduled_date, status, location, notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+bookingColumns,
		req.CustomerID, firstID, req.AvailableSlotID, req.ScheduledDate,
		model.StatusPending, req.Location, req.Notes,
	))
	if err != nil {
		if isSlotConflict(err) {
			err = ErrSlotTaken
		}
		return nil, err
	}

	for _, pid := range req.PackageIDs {
		if _, err = tx.Exec(ctx,
			`INSERT INTO booking_items (booking_id, package_id, quantity) VALUES ($1, $2, 1)`,
			b.ID, pid,
		); err != nil {
			return nil, fmt.Errorf("insert booking item: %w", err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}
	return b, nil
}

// GetByID returns a single booking or ErrNotFound.
func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*model.Booking, error) {
	return scanBooking(r.db.QueryRow(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id))
}

// ListByCustomer returns all bookings for a customer.
func (r *BookingRepository) ListByCustomer(ctx context.Context, customerID int64) ([]model.Booking, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE customer_id = $1`, customerID)
	if err != nil {
		return nil, fmt.Errorf("list customer bookings: %w", err)
	}
	defer rows.Close()
	return collectBookings(rows)
}

func collectBookings(rows pgx.Rows) ([]model.Booking, error) {
	var bookings []model.Booking
	for rows.Next() {
		var b model.Booking
		if err := rows.Scan(&b.ID, &b.CustomerID, &b.PackageID, &b.AvailableSlotID,
			&b.ScheduledDate, &b.Status, &b.Location, &b.Notes, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

const detailedBookingQuery = `
	SELECT b.id, b.customer_id, b.package_id, b.available_slot_id,
	       b.scheduled_date, b.status, b.location, b.notes, b.created_at, b.updated_at,
	       c.id, c.name, c.email, c.phone,
	       p.id, p.name, p.price, p.duration_minutes
	FROM bookings b
	JOIN customers c ON c.id = b.customer_id
	LEFT JOIN packages p ON p.id = b.package_id`

func scanDetailedBooking(row pgx.Row) (*model.BookingWithDetails, error) {
	var d model.BookingWithDetails
	var cust model.BookingCustomerInfo
	var pkgID *int64
	var pkgName *string
	var pkgPrice *float64
	var pkgDuration *int
	err := row.Scan(&d.ID, &d.CustomerID, &d.PackageID, &d.AvailableSlotID,
		&d.ScheduledDate, &d.Status, &d.Location, &d.Notes, &d.CreatedAt, &d.UpdatedAt,
		&cust.ID, &cust.Name, &cust.Email, &cust.Phone,
		&pkgID, &pkgName, &pkgPrice, &pkgDuration)
	if err != nil {
		return nil, err
	}
	d.Customer = &cust
	if pkgID != nil {
		d.Package = &model.BookingPackageInfo{
			ID:              *pkgID,
			Name:            *pkgName,
			Price:           pkgPrice,
			DurationMinutes: pkgDuration,
		}
	}
	d.Items = []model.BookingItemDetail{}
	return &d, nil
}

// GetWithDetails returns one booking with customer, legacy package, and items
// resolved. The notification dispatcher re-fetches through this method so
// relationship data is always populated.
func (r *BookingRepository) GetWithDetails(ctx context.Context, id int64) (*model.BookingWithDetails, error) {
	d, err := scanDetailedBooking(r.db.QueryRow(ctx, detailedBookingQuery+` WHERE b.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking details: %w", err)
	}
	if err := r.attachItems(ctx, []*model.BookingWithDetails{d}); err != nil {
		return nil, err
	}
	return d, nil
}

// ListWithDetails returns bookings with full detail for the admin dashboard,
// ordered by scheduled_date descending, paginated by offset/limit.
func (r *BookingRepository) ListWithDetails(ctx context.Context, offset, limit int) ([]model.BookingWithDetails, error) {
	rows, err := r.db.Query(ctx,
		detailedBookingQuery+`
	ORDER BY b.scheduled_date DESC
	OFFSET $1 LIMIT $2`,
		offset, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list bookings with details: %w", err)
	}
	defer rows.Close()

	var details []*model.BookingWithDetails
	for rows.Next() {
		d, err := scanDetailedBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking details: %w", err)
		}
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachItems(ctx, details); err != nil {
		return nil, err
	}
	out := make([]model.BookingWithDetails, 0, len(details))
	for _, d := range details {
		out = append(out, *d)
	}
	return out, nil
}

// attachItems loads booking items (with package info) for the given bookings
// in one query.
func (r *BookingRepository) attachItems(ctx context.Context, bookings []*model.BookingWithDetails) error {
	if len(bookings) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(bookings))
	byID := make(map[int64]*model.BookingWithDetails, len(bookings))
	for _, b := range bookings {
		ids = append(ids, b.ID)
		byID[b.ID] = b
	}

	rows, err := r.db.Query(ctx,
		`SELECT i.id, i.booking_id, i.package_id, i.quantity,
		        p.id, p.name, p.price, p.duration_minutes
		 FROM booking_items i
		 LEFT JOIN packages p ON p.id = i.package_id
		 WHERE i.booking_id = ANY($1)
		 ORDER BY i.id`,
		ids,
	)
	if err != nil {
		return fmt.Errorf("list booking items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item model.BookingItemDetail
		var bookingID int64
		var pkgID *int64
		var pkgName *string
		var pkgPrice *float64
		var pkgDuration *int
		if err := rows.Scan(&item.ID, &bookingID, &item.PackageID, &item.Quantity,
			&pkgID, &pkgName, &pkgPrice, &pkgDuration); err != nil {
			return fmt.Errorf("scan booking item: %w", err)
		}
		if pkgID != nil {
			item.Package = &model.BookingPackageInfo{
				ID:              *pkgID,
				Name:            *pkgName,
				Price:           pkgPrice,
				DurationMinutes: pkgDuration,
			}
		}
		if b, ok := byID[bookingID]; ok {
			b.Items = append(b.Items, item)
		}
	}
	return rows.Err()
}

// Update replaces every mutable field of a booking and bumps updated_at.
// A slot conflict with another active booking surfaces as ErrSlotTaken.
func (r *BookingRepository) Update(ctx context.Context, id int64, req model.UpdateBookingRequest) (*model.Booking, error) {
	b, err := scanBooking(r.db.QueryRow(ctx,
		`UPDATE bookings
		 SET customer_id = $2, package_id = $3, available_slot_id = $4,
		     scheduled_date = $5, status = $6, location = $7, notes = $8,
		     updated_at = now()
		 WHERE id = $1
		 RETURNING `+bookingColumns,
		id, req.CustomerID, req.PackageID, req.AvailableSlotID,
		req.ScheduledDate, req.Status, req.Location, req.Notes,
	))
	if err != nil {
		if isSlotConflict(err) {
			return nil, ErrSlotTaken
		}
		return nil, err
	}
	return b, nil
}

// Delete hard-deletes a booking; its items go with it via ON DELETE CASCADE.
func (r *BookingRepository) Delete(ctx context.Context, id int64) (*model.Booking, error) {
	return scanBooking(r.db.QueryRow(ctx,
		`DELETE FROM bookings WHERE id = $1 RETURNING `+bookingColumns, id))
}
