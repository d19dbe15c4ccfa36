package service

import (
	"context"
	"strings"

	"github.com/sam23121/car-detailing/internal/model"
)

// CatalogStore is the persistence surface for services and packages.
// *repository.ServiceRepository satisfies it.
type CatalogStore interface {
	CreateService(ctx context.Context, req model.ServiceRequest) (*model.Service, error)
	GetService(ctx context.Context, id int64) (*model.Service, error)
	GetServiceBySlug(ctx context.Context, slug string) (*model.Service, error)
	ListServices(ctx context.Context, offset, limit int) ([]model.Service, error)
	UpdateService(ctx context.Context, id int64, req model.ServiceRequest) (*model.Service, error)
	DeleteService(ctx context.Context, id int64) (*model.Service, error)
	GetPackageWithService(ctx context.Context, id int64) (*model.PackageWithService, error)
	ListServicePackages(ctx context.Context, serviceID int64) ([]model.Package, error)
	CreatePackage(ctx context.Context, req model.PackageRequest) (*model.Package, error)
}

// CatalogService manages the service/package catalog.
type CatalogService struct {
	catalog CatalogStore
}

// NewCatalogService constructs a CatalogService.
func NewCatalogService(catalog CatalogStore) *CatalogService {
	return &CatalogService{catalog: catalog}
}

// CreateService validates and stores a service category.
func (s *CatalogService) CreateService(ctx context.Context, req model.ServiceRequest) (*model.Service, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Slug = strings.TrimSpace(req.Slug)
	if req.Name == "" {
		return nil, invalidf("service name is required")
	}
	if req.Slug == "" {
		return nil, invalidf("service slug is required")
	}
	return s.catalog.CreateService(ctx, req)
}

// GetService returns a service by id.
func (s *CatalogService) GetService(ctx context.Context, id int64) (*model.Service, error) {
	return s.catalog.GetService(ctx, id)
}

// GetServiceBySlug returns a service by its public slug.
func (s *CatalogService) GetServiceBySlug(ctx context.Context, slug string) (*model.Service, error) {
	return s.catalog.GetServiceBySlug(ctx, slug)
}

// ListServices returns services paginated by offset/limit.
func (s *CatalogService) ListServices(ctx context.Context, offset, limit int) ([]model.Service, error) {
	return s.catalog.ListServices(ctx, offset, limit)
}

// UpdateService replaces a service's fields.
func (s *CatalogService) UpdateService(ctx context.Context, id int64, req model.ServiceRequest) (*model.Service, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Slug = strings.TrimSpace(req.Slug)
	if req.Name == "" || req.Slug == "" {
		return nil, invalidf("service name and slug are required")
	}
	return s.catalog.UpdateService(ctx, id, req)
}

// DeleteService removes a service.
func (s *CatalogService) DeleteService(ctx context.Context, id int64) (*model.Service, error) {
	return s.catalog.DeleteService(ctx, id)
}

// GetPackage returns a package with its service's name and slug attached.
func (s *CatalogService) GetPackage(ctx context.Context, id int64) (*model.PackageWithService, error) {
	return s.catalog.GetPackageWithService(ctx, id)
}

// ListServicePackages returns the packages under a service.
func (s *CatalogService) ListServicePackages(ctx context.Context, serviceID int64) ([]model.Package, error) {
	if _, err := s.catalog.GetService(ctx, serviceID); err != nil {
		return nil, err
	}
	return s.catalog.ListServicePackages(ctx, serviceID)
}

// CreatePackage validates and stores a package under a service.
func (s *CatalogService) CreatePackage(ctx context.Context, req model.PackageRequest) (*model.Package, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, invalidf("package name is required")
	}
	if _, err := s.catalog.GetService(ctx, req.ServiceID); err != nil {
		return nil, err
	}
	return s.catalog.CreatePackage(ctx, req)
}
