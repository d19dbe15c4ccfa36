package service

import (
	"context"
	"errors"
	"strings"

	"github.com/sam23121/car-detailing/internal/model"
	"github.com/sam23121/car-detailing/internal/repository"
)

// CustomerStore is the persistence surface for customers.
// *repository.CustomerRepository satisfies it.
type CustomerStore interface {
	Create(ctx context.Context, req model.CustomerRequest) (*model.Customer, error)
	GetByID(ctx context.Context, id int64) (*model.Customer, error)
	GetByEmail(ctx context.Context, email string) (*model.Customer, error)
	List(ctx context.Context, offset, limit int) ([]model.Customer, error)
	Update(ctx context.Context, id int64, req model.CustomerRequest) (*model.Customer, error)
	Delete(ctx context.Context, id int64) (*model.Customer, error)
}

// CustomerService manages customer records.
type CustomerService struct {
	customers CustomerStore
}

// NewCustomerService constructs a CustomerService.
func NewCustomerService(customers CustomerStore) *CustomerService {
	return &CustomerService{customers: customers}
}

// CreateOrGet validates the request and returns the existing customer with
// the same email when there is one, creating a row only on first contact.
// Calling it twice with the same email yields the same customer id.
func (s *CustomerService) CreateOrGet(ctx context.Context, req model.CustomerRequest) (*model.Customer, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Name == "" {
		return nil, invalidf("name is required")
	}
	if !isValidEmail(req.Email) {
		return nil, invalidf("email is not a valid email address")
	}

	existing, err := s.customers.GetByEmail(ctx, req.Email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	return s.customers.Create(ctx, req)
}

// Get returns a customer by id.
func (s *CustomerService) Get(ctx context.Context, id int64) (*model.Customer, error) {
	return s.customers.GetByID(ctx, id)
}

// List returns customers paginated by offset/limit.
func (s *CustomerService) List(ctx context.Context, offset, limit int) ([]model.Customer, error) {
	return s.customers.List(ctx, offset, limit)
}

// Update replaces a customer's fields.
func (s *CustomerService) Update(ctx context.Context, id int64, req model.CustomerRequest) (*model.Customer, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Name == "" {
		return nil, invalidf("name is required")
	}
	if !isValidEmail(req.Email) {
		return nil, invalidf("email is not a valid email address")
	}
	return s.customers.Update(ctx, id, req)
}

// Delete removes a customer.
func (s *CustomerService) Delete(ctx context.Context, id int64) (*model.Customer, error) {
	return s.customers.Delete(ctx, id)
}

// isValidEmail does a basic structural check: one @, non-empty local part,
// dotted domain. Deliverability is the mail provider's problem.
func isValidEmail(email string) bool {
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return false
	}
	return len(parts[0]) > 0 && strings.Contains(parts[1], ".")
}
