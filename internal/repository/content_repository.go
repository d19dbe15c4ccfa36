package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sam23121/car-detailing/internal/model"
)

// ContentRepository handles persistence for the content-only entities:
// contact messages, blog posts, business info, and FAQs.
type ContentRepository struct {
	db *pgxpool.Pool
}

// NewContentRepository constructs a ContentRepository.
func NewContentRepository(db *pgxpool.Pool) *ContentRepository {
	return &ContentRepository{db: db}
}

// ── Contact messages ──

const contactColumns = `id, name, email, phone, message, created_at`

func scanContact(row pgx.Row) (*model.ContactMessage, error) {
	var m model.ContactMessage
	err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Message, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan contact message: %w", err)
	}
	return &m, nil
}

// CreateContactMessage stores a contact form submission.
func (r *ContentRepository) CreateContactMessage(ctx context.Context, req model.ContactMessageRequest) (*model.ContactMessage, error) {
	return scanContact(r.db.QueryRow(ctx,
		`INSERT INTO contact_messages (name, email, phone, message)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+contactColumns,
		req.Name, req.Email, req.Phone, req.Message,
	))
}

// ListContactMessages returns contact messages paginated by offset/limit.
func (r *ContentRepository) ListContactMessages(ctx context.Context, offset, limit int) ([]model.ContactMessage, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+contactColumns+` FROM contact_messages ORDER BY id OFFSET $1 LIMIT $2`,
		offset, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	defer rows.Close()

	var messages []model.ContactMessage
	for rows.Next() {
		var m model.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Message, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan contact message: %w", err)
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// GetContactMessage returns a single contact message or ErrNotFound.
func (r *ContentRepository) GetContactMessage(ctx context.Context, id int64) (*model.ContactMessage, error) {
	return scanContact(r.db.QueryRow(ctx,
		`SELECT `+contactColumns+` FROM contact_messages WHERE id = $1`, id))
}

// DeleteContactMessage removes a contact message, returning ErrNotFound if absent.
func (r *ContentRepository) DeleteContactMessage(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM contact_messages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete contact message: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ── Blog posts ──

const blogColumns = `id, title, slug, content, image_url, published, created_at, updated_at`

func scanBlogPost(row pgx.Row) (*model.BlogPost, error) {
	var p model.BlogPost
	err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Content, &p.ImageURL, &p.Published, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan blog post: %w", err)
	}
	return &p, nil
}

// CreateBlogPost inserts a blog post.
func (r *ContentRepository) CreateBlogPost(ctx context.Context, req model.BlogPostRequest) (*model.BlogPost, error) {
	return scanBlogPost(r.db.QueryRow(ctx,
		`INSERT INTO blog_posts (title, slug, content, image_url, published)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+blogColumns,
		req.Title, req.Slug, req.Content, req.ImageURL, req.Published,
	))
}

// ListBlogPosts returns blog posts; when publishedOnly is true, drafts are
// hidden.
func (r *ContentRepository) ListBlogPosts(ctx context.Context, offset, limit int, publishedOnly bool) ([]model.BlogPost, error) {
	query := `SELECT ` + blogColumns + ` FROM blog_posts`
	if publishedOnly {
		query += ` WHERE published`
	}
	query += ` ORDER BY created_at DESC OFFSET $1 LIMIT $2`

	rows, err := r.db.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list blog posts: %w", err)
	}
	defer rows.Close()

	var posts []model.BlogPost
	for rows.Next() {
		var p model.BlogPost
		if err := rows.Scan(&p.ID, &p.Title, &p.Slug, &p.Content, &p.ImageURL, &p.Published, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan blog post: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// GetBlogPost returns a single blog post or ErrNotFound.
func (r *ContentRepository) GetBlogPost(ctx context.Context, id int64) (*model.BlogPost, error) {
	return scanBlogPost(r.db.QueryRow(ctx,
		`SELECT `+blogColumns+` FROM blog_posts WHERE id = $1`, id))
}

// GetBlogPostBySlug returns the blog post with the given slug or ErrNotFound.
func (r *ContentRepository) GetBlogPostBySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	return scanBlogPost(r.db.QueryRow(ctx,
		`SELECT `+blogColumns+` FROM blog_posts WHERE slug = $1`, slug))
}

// UpdateBlogPost replaces a blog post's fields and bumps updated_at.
func (r *ContentRepository) UpdateBlogPost(ctx context.Context, id int64, req model.BlogPostRequest) (*model.BlogPost, error) {
	return scanBlogPost(r.db.QueryRow(ctx,
		`UPDATE blog_posts
		 SET title = $2, slug = $3, content = $4, image_url = $5, published = $6, updated_at = now()
		 WHERE id = $1
		 RETURNING `+blogColumns,
		id, req.Title, req.Slug, req.Content, req.ImageURL, req.Published,
	))
}

// DeleteBlogPost removes a blog post, returning ErrNotFound if absent.
func (r *ContentRepository) DeleteBlogPost(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete blog post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ── Business info ──

const businessColumns = `id, phone, email, address, city, state, zip_code, service_areas`

func scanBusinessInfo(row pgx.Row) (*model.BusinessInfo, error) {
	var b model.BusinessInfo
	err := row.Scan(&b.ID, &b.Phone, &b.Email, &b.Address, &b.City, &b.State, &b.ZipCode, &b.ServiceAreas)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan business info: %w", err)
	}
	return &b, nil
}

// CreateBusinessInfo inserts the business info row.
func (r *ContentRepository) CreateBusinessInfo(ctx context.Context, req model.BusinessInfoRequest) (*model.BusinessInfo, error) {
	return scanBusinessInfo(r.db.QueryRow(ctx,
		`INSERT INTO business_info (phone, email, address, city, state, zip_code, service_areas)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+businessColumns,
		req.Phone, req.Email, req.Address, req.City, req.State, req.ZipCode, req.ServiceAreas,
	))
}

// GetBusinessInfo returns the first business info row or ErrNotFound.
func (r *ContentRepository) GetBusinessInfo(ctx context.Context) (*model.BusinessInfo, error) {
	return scanBusinessInfo(r.db.QueryRow(ctx,
		`SELECT `+businessColumns+` FROM business_info ORDER BY id LIMIT 1`))
}

// UpdateBusinessInfo replaces a business info row by id.
func (r *ContentRepository) UpdateBusinessInfo(ctx context.Context, id int64, req model.BusinessInfoRequest) (*model.BusinessInfo, error) {
	return scanBusinessInfo(r.db.QueryRow(ctx,
		`UPDATE business_info
		 SET phone = $2, email = $3, address = $4, city = $5, state = $6, zip_code = $7, service_areas = $8
		 WHERE id = $1
		 RETURNING `+businessColumns,
		id, req.Phone, req.Email, req.Address, req.City, req.State, req.ZipCode, req.ServiceAreas,
	))
}

// ── FAQs ──

const faqColumns = `id, question, answer, order_index, created_at`

func scanFAQ(row pgx.Row) (*model.FAQ, error) {
	var f model.FAQ
	err := row.Scan(&f.ID, &f.Question, &f.Answer, &f.OrderIndex, &f.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan faq: %w", err)
	}
	return &f, nil
}

// CreateFAQ inserts a FAQ.
func (r *ContentRepository) CreateFAQ(ctx context.Context, req model.FAQRequest) (*model.FAQ, error) {
	return scanFAQ(r.db.QueryRow(ctx,
		`INSERT INTO faqs (question, answer, order_index)
		 VALUES ($1, $2, $3)
		 RETURNING `+faqColumns,
		req.Question, req.Answer, req.OrderIndex,
	))
}

// ListFAQs returns FAQs ordered by order_index, paginated by offset/limit.
func (r *ContentRepository) ListFAQs(ctx context.Context, offset, limit int) ([]model.FAQ, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+faqColumns+` FROM faqs
		 ORDER BY order_index NULLS LAST, id OFFSET $1 LIMIT $2`,
		offset, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list faqs: %w", err)
	}
	defer rows.Close()

	var faqs []model.FAQ
	for rows.Next() {
		var f model.FAQ
		if err := rows.Scan(&f.ID, &f.Question, &f.Answer, &f.OrderIndex, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan faq: %w", err)
		}
		faqs = append(faqs, f)
	}
	return faqs, rows.Err()
}

// GetFAQ returns a single FAQ or ErrNotFound.
func (r *ContentRepository) GetFAQ(ctx context.Context, id int64) (*model.FAQ, error) {
	return scanFAQ(r.db.QueryRow(ctx,
		`SELECT `+faqColumns+` FROM faqs WHERE id = $1`, id))
}

// UpdateFAQ replaces a FAQ's fields.
func (r *ContentRepository) UpdateFAQ(ctx context.Context, id int64, req model.FAQRequest) (*model.FAQ, error) {
	return scanFAQ(r.db.QueryRow(ctx,
		`UPDATE faqs SET question = $2, answer = $3, order_index = $4
		 WHERE id = $1
		 RETURNING `+faqColumns,
		id, req.Question, req.Answer, req.OrderIndex,
	))
}

// DeleteFAQ removes a FAQ, returning ErrNotFound if absent.
func (r *ContentRepository) DeleteFAQ(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM faqs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete faq: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
