package service

import (
	"context"
	"strings"

	"github.com/sam23121/car-detailing/internal/model"
)

// ReviewStore is the persistence surface for reviews.
// *repository.ReviewRepository satisfies it.
type ReviewStore interface {
	Create(ctx context.Context, req model.CreateReviewRequest) (*model.Review, error)
	GetByID(ctx context.Context, id int64) (*model.Review, error)
	List(ctx context.Context, offset, limit int) ([]model.Review, error)
	ListVerified(ctx context.Context, limit int) ([]model.Review, error)
	ListByService(ctx context.Context, serviceID int64) ([]model.Review, error)
	Update(ctx context.Context, id int64, req model.UpdateReviewRequest) (*model.Review, error)
	Delete(ctx context.Context, id int64) (*model.Review, error)
}

// ReviewService manages customer reviews. The public create path can never
// mark a review verified; only the admin update path can.
type ReviewService struct {
	reviews ReviewStore
}

// NewReviewService constructs a ReviewService.
func NewReviewService(reviews ReviewStore) *ReviewService {
	return &ReviewService{reviews: reviews}
}

// Create validates and stores a public review, always unverified.
func (s *ReviewService) Create(ctx context.Context, req model.CreateReviewRequest) (*model.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, invalidf("rating must be between 1 and 5")
	}
	if strings.TrimSpace(req.Comment) == "" {
		return nil, invalidf("comment is required")
	}
	return s.reviews.Create(ctx, req)
}

// Get returns a review by id.
func (s *ReviewService) Get(ctx context.Context, id int64) (*model.Review, error) {
	return s.reviews.GetByID(ctx, id)
}

// List returns reviews paginated by offset/limit.
func (s *ReviewService) List(ctx context.Context, offset, limit int) ([]model.Review, error) {
	return s.reviews.List(ctx, offset, limit)
}

// ListVerified returns the most recent verified reviews.
func (s *ReviewService) ListVerified(ctx context.Context, limit int) ([]model.Review, error) {
	return s.reviews.ListVerified(ctx, limit)
}

// ListByService returns reviews for one service.
func (s *ReviewService) ListByService(ctx context.Context, serviceID int64) ([]model.Review, error) {
	return s.reviews.ListByService(ctx, serviceID)
}

// Update replaces a review; this admin path may set the verified flag.
func (s *ReviewService) Update(ctx context.Context, id int64, req model.UpdateReviewRequest) (*model.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, invalidf("rating must be between 1 and 5")
	}
	if strings.TrimSpace(req.Comment) == "" {
		return nil, invalidf("comment is required")
	}
	return s.reviews.Update(ctx, id, req)
}

// Delete removes a review.
func (s *ReviewService) Delete(ctx context.Context, id int64) (*model.Review, error) {
	return s.reviews.Delete(ctx, id)
}
