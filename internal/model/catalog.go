package model

import "time"

// Service is a detailing category (e.g. ceramic coating). Slug is unique and
// used in public URLs.
type Service struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description"`
	ImageURL    *string   `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// ServiceRequest is the payload for creating or replacing a service.
type ServiceRequest struct {
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
}

// Package is a priced offering under one service. Price fields are
// independently optional; the three size-tier prices are treated as
// all-or-nothing by the display layer.
type Package struct {
	ID                   int64     `json:"id"`
	ServiceID            int64     `json:"service_id"`
	Name                 string    `json:"name"`
	Description          *string   `json:"description"`
	Price                *float64  `json:"price"`
	PriceSmall           *float64  `json:"price_small"`
	PriceMedium          *float64  `json:"price_medium"`
	PriceLarge           *float64  `json:"price_large"`
	PriceOriginalSmall   *float64  `json:"price_original_small"`
	PriceOriginalMedium  *float64  `json:"price_original_medium"`
	PriceOriginalLarge   *float64  `json:"price_original_large"`
	DurationMinutes      *int      `json:"duration_minutes"`
	TurnaroundHours      *int      `json:"turnaround_hours"`
	Details              *string   `json:"details"`
	ImageURL             *string   `json:"image_url"`
	DisplayOrder         *int      `json:"display_order"`
	CreatedAt            time.Time `json:"created_at"`
}

// PackageRequest is the payload for creating or replacing a package.
type PackageRequest struct {
	ServiceID           int64    `json:"service_id"`
	Name                string   `json:"name"`
	Description         *string  `json:"description"`
	Price               *float64 `json:"price"`
	PriceSmall          *float64 `json:"price_small"`
	PriceMedium         *float64 `json:"price_medium"`
	PriceLarge          *float64 `json:"price_large"`
	PriceOriginalSmall  *float64 `json:"price_original_small"`
	PriceOriginalMedium *float64 `json:"price_original_medium"`
	PriceOriginalLarge  *float64 `json:"price_original_large"`
	DurationMinutes     *int     `json:"duration_minutes"`
	TurnaroundHours     *int     `json:"turnaround_hours"`
	Details             *string  `json:"details"`
	ImageURL            *string  `json:"image_url"`
	DisplayOrder        *int     `json:"display_order"`
}

// PackageWithService is a package plus its parent service's name and slug,
// used by the package detail page.
type PackageWithService struct {
	Package
	ServiceName *string `json:"service_name"`
	ServiceSlug *string `json:"service_slug"`
}
