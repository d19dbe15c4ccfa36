package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sam23121/car-detailing/internal/model"
	"github.com/sam23121/car-detailing/internal/repository"
)

// BookingStore is the persistence surface the booking orchestrator needs.
// *repository.BookingRepository satisfies it.
type BookingStore interface {
	Create(ctx context.Context, req model.CreateBookingRequest) (*model.Booking, error)
	CreateMulti(ctx context.Context, req model.CreateBookingMultiRequest) (*model.Booking, error)
	GetByID(ctx context.Context, id int64) (*model.Booking, error)
	GetWithDetails(ctx context.Context, id int64) (*model.BookingWithDetails, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]model.Booking, error)
	ListWithDetails(ctx context.Context, offset, limit int) ([]model.BookingWithDetails, error)
	Update(ctx context.Context, id int64, req model.UpdateBookingRequest) (*model.Booking, error)
	Delete(ctx context.Context, id int64) (*model.Booking, error)
}

// CustomerGetter resolves customer ids during booking validation.
type CustomerGetter interface {
	GetByID(ctx context.Context, id int64) (*model.Customer, error)
}

// PackageGetter resolves package ids during booking validation.
type PackageGetter interface {
	GetPackage(ctx context.Context, id int64) (*model.Package, error)
}

// Notifier fans out booking notifications. It never reports failure; sends
// are best-effort by contract.
type Notifier interface {
	Dispatch(ctx context.Context, bookingID int64)
}

// BookingService orchestrates the booking lifecycle: validation, atomic
// creation, and the post-commit notification fan-out.
type BookingService struct {
	bookings  BookingStore
	customers CustomerGetter
	packages  PackageGetter
	notifier  Notifier
}

// NewBookingService constructs a BookingService.
func NewBookingService(bookings BookingStore, customers CustomerGetter, packages PackageGetter, notifier Notifier) *BookingService {
	return &BookingService{bookings: bookings, customers: customers, packages: packages, notifier: notifier}
}

// Create validates and stores a single-package booking, then dispatches
// notifications. The booking is committed before the dispatcher runs, and
// dispatcher failures never surface here.
func (s *BookingService) Create(ctx context.Context, req model.CreateBookingRequest) (*model.Booking, error) {
	if req.ScheduledDate.IsZero() {
		return nil, invalidf("scheduled_date is required")
	}
	if _, err := s.customers.GetByID(ctx, req.CustomerID); err != nil {
		return nil, fmt.Errorf("customer %d: %w", req.CustomerID, err)
	}
	if _, err := s.packages.GetPackage(ctx, req.PackageID); err != nil {
		return nil, fmt.Errorf("package %d: %w", req.PackageID, err)
	}

	booking, err := s.bookings.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	s.notifier.Dispatch(ctx, booking.ID)
	return booking, nil
}

// CreateMulti validates and stores a cart-checkout booking with one item per
// requested package id (duplicates preserved, quantity 1 each), then
// dispatches notifications.
func (s *BookingService) CreateMulti(ctx context.Context, req model.CreateBookingMultiRequest) (*model.Booking, error) {
	if len(req.PackageIDs) == 0 {
		return nil, invalidf("at least one package is required")
	}
	if req.ScheduledDate.IsZero() {
		return nil, invalidf("scheduled_date is required")
	}
	if _, err := s.customers.GetByID(ctx, req.CustomerID); err != nil {
		return nil, fmt.Errorf("customer %d: %w", req.CustomerID, err)
	}
	for _, pid := range req.PackageIDs {
		if _, err := s.packages.GetPackage(ctx, pid); err != nil {
			return nil, fmt.Errorf("package %d: %w", pid, err)
		}
	}

	booking, err := s.bookings.CreateMulti(ctx, req)
	if err != nil {
		return nil, err
	}
	s.notifier.Dispatch(ctx, booking.ID)
	return booking, nil
}

// Get returns a booking by id.
func (s *BookingService) Get(ctx context.Context, id int64) (*model.Booking, error) {
	return s.bookings.GetByID(ctx, id)
}

// ListByCustomer returns all bookings for a customer; empty slice when none.
func (s *BookingService) ListByCustomer(ctx context.Context, customerID int64) ([]model.Booking, error) {
	return s.bookings.ListByCustomer(ctx, customerID)
}

// ListWithDetails returns the admin dashboard listing.
func (s *BookingService) ListWithDetails(ctx context.Context, offset, limit int) ([]model.BookingWithDetails, error) {
	return s.bookings.ListWithDetails(ctx, offset, limit)
}

// Update replaces a booking. The status set is closed; unknown statuses are
// rejected here rather than stored.
func (s *BookingService) Update(ctx context.Context, id int64, req model.UpdateBookingRequest) (*model.Booking, error) {
	if !model.ValidStatus(req.Status) {
		return nil, invalidf("unknown status %q", req.Status)
	}
	if req.ScheduledDate.IsZero() {
		return nil, invalidf("scheduled_date is required")
	}
	booking, err := s.bookings.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return booking, nil
}

// Delete hard-deletes a booking and, via cascade, its items.
func (s *BookingService) Delete(ctx context.Context, id int64) (*model.Booking, error) {
	return s.bookings.Delete(ctx, id)
}
