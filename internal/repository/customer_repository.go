package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sam23121/car-detailing/internal/model"
)

// CustomerRepository handles persistence for customers.
type CustomerRepository struct {
	db *pgxpool.Pool
}

// NewCustomerRepository constructs a CustomerRepository.
func NewCustomerRepository(db *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{db: db}
}

const customerColumns = `id, name, email, phone, created_at, updated_at`

func scanCustomer(row pgx.Row) (*model.Customer, error) {
	var c model.Customer
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan customer: %w", err)
	}
	return &c, nil
}

// Create inserts a new customer.
func (r *CustomerRepository) Create(ctx context.Context, req model.CustomerRequest) (*model.Customer, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO customers (name, email, phone)
		 VALUES ($1, $2, $3)
		 RETURNING `+customerColumns,
		req.Name, req.Email, req.Phone,
	)
	c, err := scanCustomer(row)
	if err != nil {
		return nil, fmt.Errorf("insert customer: %w", err)
	}
	return c, nil
}

// GetByID returns a single customer or ErrNotFound.
func (r *CustomerRepository) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	return scanCustomer(r.db.QueryRow(ctx,
		`SELECT `+customerColumns+` FROM customers WHERE id = $1`, id))
}

// GetByEmail returns the customer with the given email or ErrNotFound.
// Booking and review flows use this for the upsert-by-email idempotency.
func (r *CustomerRepository) GetByEmail(ctx context.Context, email string) (*model.Customer, error) {
	return scanCustomer(r.db.QueryRow(ctx,
		`SELECT `+customerColumns+` FROM customers WHERE email = $1`, email))
}

// List returns customers paginated by offset/limit.
func (r *CustomerRepository) List(ctx context.Context, offset, limit int) ([]model.Customer, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+customerColumns+` FROM customers ORDER BY id OFFSET $1 LIMIT $2`,
		offset, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var customers []model.Customer
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

// Update replaces a customer's fields and bumps updated_at.
func (r *CustomerRepository) Update(ctx context.Context, id int64, req model.CustomerRequest) (*model.Customer, error) {
	return scanCustomer(r.db.QueryRow(ctx,
		`UPDATE customers SET name = $2, email = $3, phone = $4, updated_at = now()
		 WHERE id = $1
		 RETURNING `+customerColumns,
		id, req.Name, req.Email, req.Phone,
	))
}

// Delete removes a customer, returning ErrNotFound if absent.
func (r *CustomerRepository) Delete(ctx context.Context, id int64) (*model.Customer, error) {
	return scanCustomer(r.db.QueryRow(ctx,
		`DELETE FROM customers WHERE id = $1 RETURNING `+customerColumns, id))
}
