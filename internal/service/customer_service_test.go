package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sam23121/car-detailing/internal/model"
	"github.com/sam23121/car-detailing/internal/repository"
)

type fakeCustomerStore struct {
	byEmail map[string]*model.Customer
	created []model.CustomerRequest
	nextID  int64
}

func newFakeCustomerStore() *fakeCustomerStore {
	return &fakeCustomerStore{byEmail: map[string]*model.Customer{}, nextID: 1}
}

func (f *fakeCustomerStore) Create(ctx context.Context, req model.CustomerRequest) (*model.Customer, error) {
	f.created = append(f.created, req)
	c := &model.Customer{ID: f.nextID, Name: req.Name, Email: req.Email, Phone: req.Phone}
	f.nextID++
	f.byEmail[req.Email] = c
	return c, nil
}

func (f *fakeCustomerStore) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	for _, c := range f.byEmail {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeCustomerStore) GetByEmail(ctx context.Context, email string) (*model.Customer, error) {
	if c, ok := f.byEmail[email]; ok {
		return c, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeCustomerStore) List(ctx context.Context, offset, limit int) ([]model.Customer, error) {
	return nil, nil
}

func (f *fakeCustomerStore) Update(ctx context.Context, id int64, req model.CustomerRequest) (*model.Customer, error) {
	return &model.Customer{ID: id, Name: req.Name, Email: req.Email, Phone: req.Phone}, nil
}

func (f *fakeCustomerStore) Delete(ctx context.Context, id int64) (*model.Customer, error) {
	return &model.Customer{ID: id}, nil
}

func TestCreateOrGetIsIdempotentByEmail(t *testing.T) {
	store := newFakeCustomerStore()
	svc := NewCustomerService(store)

	first, err := svc.CreateOrGet(context.Background(), model.CustomerRequest{
		Name: "Jordan Lee", Email: "jordan@example.com",
	})
	require.NoError(t, err)

	second, err := svc.CreateOrGet(context.Background(), model.CustomerRequest{
		Name: "Jordan L.", Email: "jordan@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, store.created, 1)
	// The stored record keeps the original name; repeat contacts do not mutate.
	assert.Equal(t, "Jordan Lee", second.Name)
}

func TestCreateOrGetNormalizesEmail(t *testing.T) {
	store := newFakeCustomerStore()
	svc := NewCustomerService(store)

	first, err := svc.CreateOrGet(context.Background(), model.CustomerRequest{
		Name: "Jordan Lee", Email: "Jordan@Example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "jordan@example.com", first.Email)

	second, err := svc.CreateOrGet(context.Background(), model.CustomerRequest{
		Name: "Jordan Lee", Email: "  JORDAN@EXAMPLE.COM  ",
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestCreateOrGetValidation(t *testing.T) {
	svc := NewCustomerService(newFakeCustomerStore())

	cases := []struct {
		name string
		req  model.CustomerRequest
	}{
		{"empty name", model.CustomerRequest{Name: "   ", Email: "a@b.com"}},
		{"empty email", model.CustomerRequest{Name: "Jordan", Email: ""}},
		{"no at sign", model.CustomerRequest{Name: "Jordan", Email: "jordan.example.com"}},
		{"no domain dot", model.CustomerRequest{Name: "Jordan", Email: "jordan@localhost"}},
		{"empty local part", model.CustomerRequest{Name: "Jordan", Email: "@example.com"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateOrGet(context.Background(), tc.req)
			assert.ErrorIs(t, err, ErrInvalidRequest)
		})
	}
}

func TestUpdateCustomerValidation(t *testing.T) {
	svc := NewCustomerService(newFakeCustomerStore())

	_, err := svc.Update(context.Background(), 1, model.CustomerRequest{Name: "Jordan", Email: "not-an-email"})
	assert.ErrorIs(t, err, ErrInvalidRequest)

	c, err := svc.Update(context.Background(), 1, model.CustomerRequest{Name: "  Jordan  ", Email: "Jordan@Example.com"})
	require.NoError(t, err)
	assert.Equal(t, "Jordan", c.Name)
	assert.Equal(t, "jordan@example.com", c.Email)
}
