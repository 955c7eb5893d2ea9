package leads

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"loanhelp/internal/config"
	"loanhelp/internal/domain"
	"loanhelp/internal/pkg/mailer"
	"loanhelp/internal/pkg/metrics"
	"loanhelp/internal/pkg/validator"
)

var nonDigits = regexp.MustCompile(`\D`)

// Service runs the lead submission pipeline: honeypot filter, validation,
// duplicate-window check, persistence, then best-effort notification emails.
// Each submission is a single linear pass; nothing is retried.
type Service struct {
	leads LeadRepository
	mail  mailer.Sender
	cfg   *config.Config
	now   func() time.Time
}

func NewService(leads LeadRepository, mail mailer.Sender, cfg *config.Config) *Service {
	return &Service{
		leads: leads,
		mail:  mail,
		cfg:   cfg,
		now:   time.Now,
	}
}

func (s *Service) Submit(ctx context.Context, req SubmitLeadRequest, meta RequestMeta) (*SubmitResult, error) {
	// A filled decoy field means an automated submitter. Return a
	// success-shaped result with no side effects so detection is invisible.
	if strings.TrimSpace(req.Honeypot) != "" {
		metrics.LeadSubmissions.WithLabelValues("bot_filtered").Inc()
		return &SubmitResult{State: ""}, nil
	}

	lead, verr := validateAndNormalize(req)
	if verr != nil {
		metrics.LeadSubmissions.WithLabelValues("invalid").Inc()
		return nil, verr
	}

	// Duplicate suppression is advisory: a failed check is logged and must
	// never block legitimate capture. Two near-simultaneous submissions from
	// the same email can both pass; that race is accepted.
	windowStart := s.now().UTC().Add(-s.cfg.LeadDupWindow)
	ids, err := s.leads.FindRecentIDsByEmail(ctx, lead.Email, windowStart)
	if err != nil {
		log.Printf("leads: duplicate check failed: %v", err)
	} else if len(ids) > 0 {
		metrics.LeadSubmissions.WithLabelValues("duplicate").Inc()
		return nil, ErrDuplicateSubmission
	}

	lead.IPAddress = meta.IPAddress
	lead.UserAgent = meta.UserAgent

	if err := s.leads.Create(ctx, lead); err != nil {
		metrics.LeadSubmissions.WithLabelValues("store_error").Inc()
		return nil, fmt.Errorf("insert lead: %w", err)
	}
	metrics.LeadSubmissions.WithLabelValues("accepted").Inc()

	// The lead is durably captured; email failures no longer change the
	// outcome. The two sends are independent of each other.
	s.dispatchEmails(ctx, lead)

	return &SubmitResult{State: lead.State}, nil
}

func (s *Service) dispatchEmails(ctx context.Context, lead *domain.Lead) {
	if notif, err := buildNotificationEmail(lead); err != nil {
		log.Printf("leads: compose notification email failed: %v", err)
		metrics.LeadEmails.WithLabelValues("notification", "failed").Inc()
	} else if err := s.mail.Send(ctx, mailer.Message{
		From:    s.cfg.ResendFromEmail,
		To:      s.cfg.LeadInboxEmail,
		Subject: notif.Subject,
		HTML:    notif.HTML,
	}); err != nil {
		log.Printf("leads: send notification email failed: %v", err)
		metrics.LeadEmails.WithLabelValues("notification", "failed").Inc()
	} else {
		metrics.LeadEmails.WithLabelValues("notification", "sent").Inc()
	}

	if reply, err := buildAutoReplyEmail(lead, s.cfg.SiteURL); err != nil {
		log.Printf("leads: compose auto-reply email failed: %v", err)
		metrics.LeadEmails.WithLabelValues("auto_reply", "failed").Inc()
	} else if err := s.mail.Send(ctx, mailer.Message{
		From:    s.cfg.ResendFromEmail,
		To:      lead.Email,
		Subject: reply.Subject,
		HTML:    reply.HTML,
	}); err != nil {
		log.Printf("leads: send auto-reply email failed: %v", err)
		metrics.LeadEmails.WithLabelValues("auto_reply", "failed").Inc()
	} else {
		metrics.LeadEmails.WithLabelValues("auto_reply", "sent").Inc()
	}
}

// NormalizePhone strips everything but digits.
func NormalizePhone(phone string) string {
	return nonDigits.ReplaceAllString(phone, "")
}

func validateAndNormalize(req SubmitLeadRequest) (*domain.Lead, *ValidationError) {
	name := strings.TrimSpace(req.Name)
	if len(name) < 2 {
		return nil, &ValidationError{Field: "name", Message: "Name is required"}
	}

	email := strings.TrimSpace(req.Email)
	if !validator.Email(email) {
		return nil, &ValidationError{Field: "email", Message: "Valid email required"}
	}

	phone := NormalizePhone(req.Phone)
	if len(phone) != 10 {
		return nil, &ValidationError{Field: "phone", Message: "10-digit phone number required"}
	}

	state := strings.TrimSpace(req.State)
	if len(state) < 2 {
		return nil, &ValidationError{Field: "state", Message: "Your state is required"}
	}

	propertyState := strings.TrimSpace(req.PropertyState)
	if len(propertyState) < 2 {
		return nil, &ValidationError{Field: "property_state", Message: "Property state is required"}
	}

	homeType := domain.HomeType(req.HomeType)
	if !homeType.Valid() {
		return nil, &ValidationError{Field: "home_type", Message: "Please select a home type"}
	}

	creditRange := domain.CreditRange(req.CreditRange)
	if !creditRange.Valid() {
		return nil, &ValidationError{Field: "credit_range", Message: "Please select a credit range"}
	}

	timeline := domain.Timeline(req.Timeline)
	if !timeline.Valid() {
		return nil, &ValidationError{Field: "timeline", Message: "Please select a timeline"}
	}

	if strings.TrimSpace(req.SourcePage) == "" {
		return nil, &ValidationError{Field: "source_page", Message: "Source page is required"}
	}

	if !req.Consent {
		return nil, &ValidationError{Field: "consent", Message: "Consent is required to be contacted by our lending partners"}
	}

	return &domain.Lead{
		Name:           name,
		Email:          strings.ToLower(email),
		Phone:          phone,
		State:          state,
		PropertyState:  propertyState,
		HomeType:       homeType,
		CreditRange:    creditRange,
		Timeline:       timeline,
		AdditionalInfo: strings.TrimSpace(req.AdditionalInfo),
		SourcePage:     strings.TrimSpace(req.SourcePage),
	}, nil
}
