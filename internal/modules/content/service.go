package content

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

// Service serves the site's editorial content and receives contact
// inquiries. Inquiry text is stripped of markup before it is stored.
type Service struct {
	repo      Repository
	sanitizer *bluemonday.Policy
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:      repo,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

func (s *Service) Services(ctx context.Context) ([]ServicePage, error) {
	return s.repo.ListServices(ctx)
}

func (s *Service) ServiceBySlug(ctx context.Context, slug string) (*ServicePage, error) {
	return s.repo.GetServiceBySlug(ctx, slug)
}

func (s *Service) Testimonials(ctx context.Context) ([]Testimonial, error) {
	return s.repo.ListTestimonials(ctx)
}

func (s *Service) Gallery(ctx context.Context, category string) ([]GalleryItem, error) {
	return s.repo.ListGallery(ctx, category)
}

// SubmitInquiry stores a contact form submission. Requester IP and
// user agent are kept for abuse follow-up but never exposed over the API.
func (s *Service) SubmitInquiry(ctx context.Context, req SubmitInquiryRequest, ip, userAgent string) (*Inquiry, error) {
	inq := &Inquiry{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(s.sanitizer.Sanitize(req.Name)),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:     strings.TrimSpace(req.Phone),
		Subject:   strings.TrimSpace(s.sanitizer.Sanitize(req.Subject)),
		Message:   strings.TrimSpace(s.sanitizer.Sanitize(req.Message)),
		Status:    InquiryStatusNew,
		IP:        ip,
		UserAgent: userAgent,
	}
	if err := s.repo.CreateInquiry(ctx, inq); err != nil {
		return nil, err
	}
	return inq, nil
}

func (s *Service) Inquiries(ctx context.Context, status string) ([]Inquiry, error) {
	return s.repo.ListInquiries(ctx, status)
}

// MarkInquiryHandled flips an inquiry to handled. Marking an already
// handled inquiry is a no-op, not an error.
func (s *Service) MarkInquiryHandled(ctx context.Context, id string) (*Inquiry, error) {
	inq, err := s.repo.GetInquiryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inq.Status == InquiryStatusHandled {
		return inq, nil
	}
	inq.Status = InquiryStatusHandled
	if err := s.repo.UpdateInquiry(ctx, inq); err != nil {
		return nil, err
	}
	return inq, nil
}
