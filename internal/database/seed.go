package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type seedService struct {
	name        string
	slug        string
	description string
}

type seedPackage struct {
	serviceSlug     string
	name            string
	description     string
	price           float64
	durationMinutes int
}

var seedServices = []seedService{
	{"Ceramic Coating", "ceramic-coating", "Protective ceramic coating for your vehicle's paint."},
	{"In & Out Detailing", "full-detailing", "Complete interior and exterior detailing."},
	{"Interior Detailing", "interior-detailing", "Deep clean and condition your vehicle interior."},
	{"Exterior Detailing", "exterior-detailing", "Wash, polish, and protect exterior surfaces."},
	{"Fleet Detailing", "fleet-detailing", "Detailing services for fleets and multiple vehicles."},
	{"Maintenance Detailing", "maintenance-detailing", "Regular maintenance washes and touch-ups."},
}

var seedPackages = []seedPackage{
	{"ceramic-coating", "Full Ceramic", "Full vehicle ceramic coating.", 499.00, 240},
	{"full-detailing", "Complete In & Out", "Interior and exterior full detail.", 199.00, 180},
	{"interior-detailing", "Interior Detail", "Deep interior clean and protect.", 149.00, 120},
	{"exterior-detailing", "Exterior Detail", "Wash, clay, polish, wax.", 129.00, 90},
	{"fleet-detailing", "Per Vehicle", "Fleet detailing per vehicle.", 99.00, 60},
	{"maintenance-detailing", "Quick Maintenance", "Maintenance wash and interior tidy.", 79.00, 45},
}

// Seed inserts the default services and one package per service so the
// booking form has options. It is idempotent: existing slugs are left alone
// and a service that already has packages is skipped.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	for _, s := range seedServices {
		if _, err := pool.Exec(ctx,
			`INSERT INTO services (name, slug, description)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (slug) DO NOTHING`,
			s.name, s.slug, s.description,
		); err != nil {
			return fmt.Errorf("seed service %s: %w", s.slug, err)
		}
	}

	for _, p := range seedPackages {
		if _, err := pool.Exec(ctx,
			`INSERT INTO packages (service_id, name, description, price, duration_minutes)
			 SELECT s.id, $2, $3, $4, $5
			 FROM services s
			 WHERE s.slug = $1
			   AND NOT EXISTS (SELECT 1 FROM packages WHERE service_id = s.id)`,
			p.serviceSlug, p.name, p.description, p.price, p.durationMinutes,
		); err != nil {
			return fmt.Errorf("seed package %s: %w", p.name, err)
		}
	}
	return nil
}
