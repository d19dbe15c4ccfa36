package service

import (
	"context"
	"strings"

	"github.com/sam23121/car-detailing/internal/model"
)

// ContentStore is the persistence surface for contact messages, blog posts,
// business info, and FAQs. *repository.ContentRepository satisfies it.
type ContentStore interface {
	CreateContactMessage(ctx context.Context, req model.ContactMessageRequest) (*model.ContactMessage, error)
	ListContactMessages(ctx context.Context, offset, limit int) ([]model.ContactMessage, error)
	GetContactMessage(ctx context.Context, id int64) (*model.ContactMessage, error)
	DeleteContactMessage(ctx context.Context, id int64) error

	CreateBlogPost(ctx context.Context, req model.BlogPostRequest) (*model.BlogPost, error)
	ListBlogPosts(ctx context.Context, offset, limit int, publishedOnly bool) ([]model.BlogPost, error)
	GetBlogPost(ctx context.Context, id int64) (*model.BlogPost, error)
	GetBlogPostBySlug(ctx context.Context, slug string) (*model.BlogPost, error)
	UpdateBlogPost(ctx context.Context, id int64, req model.BlogPostRequest) (*model.BlogPost, error)
	DeleteBlogPost(ctx context.Context, id int64) error

	CreateBusinessInfo(ctx context.Context, req model.BusinessInfoRequest) (*model.BusinessInfo, error)
	GetBusinessInfo(ctx context.Context) (*model.BusinessInfo, error)
	UpdateBusinessInfo(ctx context.Context, id int64, req model.BusinessInfoRequest) (*model.BusinessInfo, error)

	CreateFAQ(ctx context.Context, req model.FAQRequest) (*model.FAQ, error)
	ListFAQs(ctx context.Context, offset, limit int) ([]model.FAQ, error)
	GetFAQ(ctx context.Context, id int64) (*model.FAQ, error)
	UpdateFAQ(ctx context.Context, id int64, req model.FAQRequest) (*model.FAQ, error)
	DeleteFAQ(ctx context.Context, id int64) error
}

// ContentService manages the content-only entities. They are single-table
// CRUD with no cross-entity invariants, so validation stays thin.
type ContentService struct {
	content ContentStore
}

// NewContentService constructs a ContentService.
func NewContentService(content ContentStore) *ContentService {
	return &ContentService{content: content}
}

// CreateContactMessage validates and stores a contact form submission.
func (s *ContentService) CreateContactMessage(ctx context.Context, req model.ContactMessageRequest) (*model.ContactMessage, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, invalidf("name is required")
	}
	if !isValidEmail(strings.TrimSpace(req.Email)) {
		return nil, invalidf("email is not a valid email address")
	}
	if strings.TrimSpace(req.Message) == "" {
		return nil, invalidf("message is required")
	}
	return s.content.CreateContactMessage(ctx, req)
}

// ListContactMessages returns contact messages paginated by offset/limit.
func (s *ContentService) ListContactMessages(ctx context.Context, offset, limit int) ([]model.ContactMessage, error) {
	return s.content.ListContactMessages(ctx, offset, limit)
}

// GetContactMessage returns a contact message by id.
func (s *ContentService) GetContactMessage(ctx context.Context, id int64) (*model.ContactMessage, error) {
	return s.content.GetContactMessage(ctx, id)
}

// DeleteContactMessage removes a contact message.
func (s *ContentService) DeleteContactMessage(ctx context.Context, id int64) error {
	return s.content.DeleteContactMessage(ctx, id)
}

// CreateBlogPost validates and stores a blog post.
func (s *ContentService) CreateBlogPost(ctx context.Context, req model.BlogPostRequest) (*model.BlogPost, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Slug) == "" {
		return nil, invalidf("title and slug are required")
	}
	return s.content.CreateBlogPost(ctx, req)
}

// ListBlogPosts returns blog posts, hiding drafts unless publishedOnly is
// false.
func (s *ContentService) ListBlogPosts(ctx context.Context, offset, limit int, publishedOnly bool) ([]model.BlogPost, error) {
	return s.content.ListBlogPosts(ctx, offset, limit, publishedOnly)
}

// GetBlogPost returns a blog post by id.
func (s *ContentService) GetBlogPost(ctx context.Context, id int64) (*model.BlogPost, error) {
	return s.content.GetBlogPost(ctx, id)
}

// GetBlogPostBySlug returns a blog post by its public slug.
func (s *ContentService) GetBlogPostBySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	return s.content.GetBlogPostBySlug(ctx, slug)
}

// UpdateBlogPost replaces a blog post's fields.
func (s *ContentService) UpdateBlogPost(ctx context.Context, id int64, req model.BlogPostRequest) (*model.BlogPost, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Slug) == "" {
		return nil, invalidf("title and slug are required")
	}
	return s.content.UpdateBlogPost(ctx, id, req)
}

// DeleteBlogPost removes a blog post.
func (s *ContentService) DeleteBlogPost(ctx context.Context, id int64) error {
	return s.content.DeleteBlogPost(ctx, id)
}

// CreateBusinessInfo stores the business info row.
func (s *ContentService) CreateBusinessInfo(ctx context.Context, req model.BusinessInfoRequest) (*model.BusinessInfo, error) {
	return s.content.CreateBusinessInfo(ctx, req)
}

// GetBusinessInfo returns the business info row.
func (s *ContentService) GetBusinessInfo(ctx context.Context) (*model.BusinessInfo, error) {
	return s.content.GetBusinessInfo(ctx)
}

// UpdateBusinessInfo replaces a business info row.
func (s *ContentService) UpdateBusinessInfo(ctx context.Context, id int64, req model.BusinessInfoRequest) (*model.BusinessInfo, error) {
	return s.content.UpdateBusinessInfo(ctx, id, req)
}

// CreateFAQ validates and stores a FAQ.
func (s *ContentService) CreateFAQ(ctx context.Context, req model.FAQRequest) (*model.FAQ, error) {
	if strings.TrimSpace(req.Question) == "" || strings.TrimSpace(req.Answer) == "" {
		return nil, invalidf("question and answer are required")
	}
	return s.content.CreateFAQ(ctx, req)
}

// ListFAQs returns FAQs ordered by display order.
func (s *ContentService) ListFAQs(ctx context.Context, offset, limit int) ([]model.FAQ, error) {
	return s.content.ListFAQs(ctx, offset, limit)
}

// GetFAQ returns a FAQ by id.
func (s *ContentService) GetFAQ(ctx context.Context, id int64) (*model.FAQ, error) {
	return s.content.GetFAQ(ctx, id)
}

// UpdateFAQ replaces a FAQ's fields.
func (s *ContentService) UpdateFAQ(ctx context.Context, id int64, req model.FAQRequest) (*model.FAQ, error) {
	if strings.TrimSpace(req.Question) == "" || strings.TrimSpace(req.Answer) == "" {
		return nil, invalidf("question and answer are required")
	}
	return s.content.UpdateFAQ(ctx, id, req)
}

// DeleteFAQ removes a FAQ.
func (s *ContentService) DeleteFAQ(ctx context.Context, id int64) error {
	return s.content.DeleteFAQ(ctx, id)
}
