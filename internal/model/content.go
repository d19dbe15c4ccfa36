package model

import "time"

// ContactMessage is a message from the public contact form.
type ContactMessage struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// ContactMessageRequest is the payload for the contact form.
type ContactMessageRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone"`
	Message string  `json:"message"`
}

// BlogPost is a content article. Slug is unique; unpublished posts are hidden
// from the default public listing.
type BlogPost struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Content   string    `json:"content"`
	ImageURL  *string   `json:"image_url"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BlogPostRequest is the payload for creating or replacing a blog post.
type BlogPostRequest struct {
	Title     string  `json:"title"`
	Slug      string  `json:"slug"`
	Content   string  `json:"content"`
	ImageURL  *string `json:"image_url"`
	Published bool    `json:"published"`
}

// BusinessInfo holds the single row of business contact details.
type BusinessInfo struct {
	ID           int64   `json:"id"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email"`
	Address      *string `json:"address"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	ZipCode      *string `json:"zip_code"`
	ServiceAreas *string `json:"service_areas"`
}

// BusinessInfoRequest is the payload for creating or replacing business info.
type BusinessInfoRequest struct {
	Phone        *string `json:"phone"`
	Email        *string `json:"email"`
	Address      *string `json:"address"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	ZipCode      *string `json:"zip_code"`
	ServiceAreas *string `json:"service_areas"`
}

// FAQ is one question/answer pair, ordered by OrderIndex in listings.
type FAQ struct {
	ID         int64     `json:"id"`
	Question   string    `json:"question"`
	Answer     string    `json:"answer"`
	OrderIndex *int      `json:"order_index"`
	CreatedAt  time.Time `json:"created_at"`
}

// FAQRequest is the payload for creating or replacing a FAQ.
type FAQRequest struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	OrderIndex *int   `json:"order_index"`
}

// ErrorResponse is the standard JSON error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}
