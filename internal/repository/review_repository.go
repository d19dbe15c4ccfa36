package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sam23121/car-detailing/internal/model"
)

// ReviewRepository handles persistence for reviews.
type ReviewRepository struct {
	db *pgxpool.Pool
}

// NewReviewRepository constructs a ReviewRepository.
func NewReviewRepository(db *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{db: db}
}

const reviewColumns = `id, customer_id, rating, comment, service_id, verified, created_at`

func scanReview(row pgx.Row) (*model.Review, error) {
	var rv model.Review
	err := row.Scan(&rv.ID, &rv.CustomerID, &rv.Rating, &rv.Comment, &rv.ServiceID, &rv.Verified, &rv.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan review: %w", err)
	}
	return &rv, nil
}

func collectReviews(rows pgx.Rows) ([]model.Review, error) {
	var reviews []model.Review
	for rows.Next() {
		var rv model.Review
		if err := rows.Scan(&rv.ID, &rv.CustomerID, &rv.Rating, &rv.Comment, &rv.ServiceID, &rv.Verified, &rv.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}

// Create inserts a review. The public create path never sets verified, so it
// defaults to false.
func (r *ReviewRepository) Create(ctx context.Context, req model.CreateReviewRequest) (*model.Review, error) {
	return scanReview(r.db.QueryRow(ctx,
		`INSERT INTO reviews (customer_id, rating, comment, service_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+reviewColumns,
		req.CustomerID, req.Rating, req.Comment, req.ServiceID,
	))
}

// GetByID returns a single review or ErrNotFound.
func (r *ReviewRepository) GetByID(ctx context.Context, id int64) (*model.Review, error) {
	return scanReview(r.db.QueryRow(ctx,
		`SELECT `+reviewColumns+` FROM reviews WHERE id = $1`, id))
}

// List returns reviews paginated by offset/limit.
func (r *ReviewRepository) List(ctx context.Context, offset, limit int) ([]model.Review, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+reviewColumns+` FROM reviews ORDER BY id OFFSET $1 LIMIT $2`,
		offset, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()
	return collectReviews(rows)
}

// ListVerified returns the most recent verified reviews.
func (r *ReviewRepository) ListVerified(ctx context.Context, limit int) ([]model.Review, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+reviewColumns+` FROM reviews
		 WHERE verified ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list verified reviews: %w", err)
	}
	defer rows.Close()
	return collectReviews(rows)
}

// ListByService returns all reviews attached to a service.
func (r *ReviewRepository) ListByService(ctx context.Context, serviceID int64) ([]model.Review, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+reviewColumns+` FROM reviews WHERE service_id = $1`, serviceID)
	if err != nil {
		return nil, fmt.Errorf("list service reviews: %w", err)
	}
	defer rows.Close()
	return collectReviews(rows)
}

// Update replaces a review; this is the only path that can set verified.
func (r *ReviewRepository) Update(ctx context.Context, id int64, req model.UpdateReviewRequest) (*model.Review, error) {
	return scanReview(r.db.QueryRow(ctx,
		`UPDATE reviews
		 SET customer_id = $2, rating = $3, comment = $4, service_id = $5, verified = $6
		 WHERE id = $1
		 RETURNING `+reviewColumns,
		id, req.CustomerID, req.Rating, req.Comment, req.ServiceID, req.Verified,
	))
}

// Delete removes a review, returning ErrNotFound if absent.
func (r *ReviewRepository) Delete(ctx context.Context, id int64) (*model.Review, error) {
	return scanReview(r.db.QueryRow(ctx,
		`DELETE FROM reviews WHERE id = $1 RETURNING `+reviewColumns, id))
}
