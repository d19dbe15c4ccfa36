package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sam23121/car-detailing/internal/model"
)

// ServiceRepository handles persistence for services and their packages.
type ServiceRepository struct {
	db *pgxpool.Pool
}

// NewServiceRepository constructs a ServiceRepository.
func NewServiceRepository(db *pgxpool.Pool) *ServiceRepository {
	return &ServiceRepository{db: db}
}

const serviceColumns = `id, name, slug, description, image_url, created_at`

const packageColumns = `id, service_id, name, description, price,
	price_small, price_medium, price_large,
	price_original_small, price_original_medium, price_original_large,
	duration_minutes, turnaround_hours, details, image_url, display_order, created_at`

func scanService(row pgx.Row) (*model.Service, error) {
	var s model.Service
	err := row.Scan(&s.ID, &s.Name, &s.Slug, &s.Description, &s.ImageURL, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan service: %w", err)
	}
	return &s, nil
}

func scanPackageFields(row pgx.Row, p *model.Package, extra ...any) error {
	dest := []any{
		&p.ID, &p.ServiceID, &p.Name, &p.Description, &p.Price,
		&p.PriceSmall, &p.PriceMedium, &p.PriceLarge,
		&p.PriceOriginalSmall, &p.PriceOriginalMedium, &p.PriceOriginalLarge,
		&p.DurationMinutes, &p.TurnaroundHours, &p.Details, &p.ImageURL,
		&p.DisplayOrder, &p.CreatedAt,
	}
	dest = append(dest, extra...)
	return row.Scan(dest...)
}

// CreateService inserts a new service.
func (r *ServiceRepository) CreateService(ctx context.Context, req model.ServiceRequest) (*model.Service, error) {
	return scanService(r.db.QueryRow(ctx,
		`INSERT INTO services (name, slug, description, image_url)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+serviceColumns,
		req.Name, req.Slug, req.Description, req.ImageURL,
	))
}

// GetService returns a single service or ErrNotFound.
func (r *ServiceRepository) GetService(ctx context.Context, id int64) (*model.Service, error) {
	return scanService(r.db.QueryRow(ctx,
		`SELECT `+serviceColumns+` FROM services WHERE id = $1`, id))
}

// GetServiceBySlug returns the service with the given slug or ErrNotFound.
func (r *ServiceRepository) GetServiceBySlug(ctx context.Context, slug string) (*model.Service, error) {
	return scanService(r.db.QueryRow(ctx,
		`SELECT `+serviceColumns+` FROM services WHERE slug = $1`, slug))
}

// ListServices returns services paginated by offset/limit.
func (r *ServiceRepository) ListServices(ctx context.Context, offset, limit int) ([]model.Service, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+serviceColumns+` FROM services ORDER BY id OFFSET $1 LIMIT $2`,
		offset, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()

	var services []model.Service
	for rows.Next() {
		var s model.Service
		if err := rows.Scan(&s.ID, &s.Name, &s.Slug, &s.Description, &s.ImageURL, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		services = append(services, s)
	}
	return services, rows.Err()
}

// UpdateService replaces a service's fields.
func (r *ServiceRepository) UpdateService(ctx context.Context, id int64, req model.ServiceRequest) (*model.Service, error) {
	return scanService(r.db.QueryRow(ctx,
		`UPDATE services SET name = $2, slug = $3, description = $4, image_url = $5
		 WHERE id = $1
		 RETURNING `+serviceColumns,
		id, req.Name, req.Slug, req.Description, req.ImageURL,
	))
}

// DeleteService removes a service, returning ErrNotFound if absent.
func (r *ServiceRepository) DeleteService(ctx context.Context, id int64) (*model.Service, error) {
	return scanService(r.db.QueryRow(ctx,
		`DELETE FROM services WHERE id = $1 RETURNING `+serviceColumns, id))
}

// GetPackage returns a single package or ErrNotFound.
func (r *ServiceRepository) GetPackage(ctx context.Context, id int64) (*model.Package, error) {
	var p model.Package
	err := scanPackageFields(r.db.QueryRow(ctx,
		`SELECT `+packageColumns+` FROM packages WHERE id = $1`, id), &p)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get package: %w", err)
	}
	return &p, nil
}

// GetPackageWithService returns a package joined with its service's name and
// slug, or ErrNotFound.
func (r *ServiceRepository) GetPackageWithService(ctx context.Context, id int64) (*model.PackageWithService, error) {
	var p model.PackageWithService
	err := scanPackageFields(r.db.QueryRow(ctx,
		`SELECT p.id, p.service_id, p.name, p.description, p.price,
		        p.price_small, p.price_medium, p.price_large,
		        p.price_original_small, p.price_original_medium, p.price_original_large,
		        p.duration_minutes, p.turnaround_hours, p.details, p.image_url,
		        p.display_order, p.created_at,
		        s.name, s.slug
		 FROM packages p
		 JOIN services s ON s.id = p.service_id
		 WHERE p.id = $1`, id),
		&p.Package, &p.ServiceName, &p.ServiceSlug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get package with service: %w", err)
	}
	return &p, nil
}

// ListServicePackages returns all packages under a service ordered by
// display_order then id.
func (r *ServiceRepository) ListServicePackages(ctx context.Context, serviceID int64) ([]model.Package, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+packageColumns+` FROM packages
		 WHERE service_id = $1
		 ORDER BY display_order NULLS LAST, id`,
		serviceID,
	)
	if err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}
	defer rows.Close()

	var packages []model.Package
	for rows.Next() {
		var p model.Package
		if err := scanPackageFields(rows, &p); err != nil {
			return nil, fmt.Errorf("scan package: %w", err)
		}
		packages = append(packages, p)
	}
	return packages, rows.Err()
}

// CreatePackage inserts a new package under a service.
func (r *ServiceRepository) CreatePackage(ctx context.Context, req model.PackageRequest) (*model.Package, error) {
	var p model.Package
	err := scanPackageFields(r.db.QueryRow(ctx,
		`INSERT INTO packages (service_id, name, description, price,
		     price_small, price_medium, price_large,
		     price_original_small, price_original_medium, price_original_large,
		     duration_minutes, turnaround_hours, details, image_url, display_order)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		 RETURNING `+packageColumns,
		req.ServiceID, req.Name, req.Description, req.Price,
		req.PriceSmall, req.PriceMedium, req.PriceLarge,
		req.PriceOriginalSmall, req.PriceOriginalMedium, req.PriceOriginalLarge,
		req.DurationMinutes, req.TurnaroundHours, req.Details, req.ImageURL, req.DisplayOrder,
	), &p)
	if err != nil {
		return nil, fmt.Errorf("insert package: %w", err)
	}
	return &p, nil
}
