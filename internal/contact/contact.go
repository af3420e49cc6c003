// Package contact handles the contact form. Delivery is simulated: the
// default deliverer waits a fixed delay and reports success, matching
// the page's placeholder submission flow.
package contact

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

// Subjects is the enumerated set offered by the form's subject select.
var Subjects = []string{
	"General Inquiry",
	"Submit an Innovation",
	"Partnership",
	"Data Correction",
	"Press",
}

var (
	ErrMissingField   = errors.New("required field missing")
	ErrUnknownSubject = errors.New("unknown subject")
)

type Submission struct {
	Name         string `json:"name" form:"name"`
	Email        string `json:"email" form:"email"`
	Organization string `json:"organization,omitempty" form:"organization"`
	Subject      string `json:"subject" form:"subject"`
	Message      string `json:"message" form:"message"`
}

type Receipt struct {
	ID          uuid.UUID `json:"id"`
	SubmittedAt time.Time `json:"submitted_at"`
	Message     string    `json:"message"`
}

// Deliverer performs the actual submission.
type Deliverer interface {
	Deliver(ctx context.Context, sub Submission) error
}

// SimulatedDeliverer sleeps for the configured delay and succeeds.
type SimulatedDeliverer struct {
	Delay time.Duration
}

func (d SimulatedDeliverer) Deliver(ctx context.Context, sub Submission) error {
	delay := d.Delay
	if delay <= 0 {
		delay = time.Second
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
		return nil
	}
}

type Service struct {
	deliverer Deliverer
	sanitizer *bluemonday.Policy
	log       *zap.Logger
}

func NewService(deliverer Deliverer, log *zap.Logger) *Service {
	if deliverer == nil {
		deliverer = SimulatedDeliverer{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		deliverer: deliverer,
		sanitizer: bluemonday.StrictPolicy(),
		log:       log,
	}
}

// Submit validates, sanitizes and delivers a submission. Validation
// covers required-field presence and subject membership, matching the
// form's browser-level checks.
func (s *Service) Submit(ctx context.Context, sub Submission) (*Receipt, error) {
	sub = s.sanitize(sub)

	if sub.Name == "" || sub.Email == "" || sub.Subject == "" || sub.Message == "" {
		return nil, ErrMissingField
	}
	if !validSubject(sub.Subject) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSubject, sub.Subject)
	}

	if err := s.deliverer.Deliver(ctx, sub); err != nil {
		s.log.Warn("contact delivery failed", zap.Error(err))
		return nil, fmt.Errorf("delivering submission: %w", err)
	}

	receipt := &Receipt{
		ID:          uuid.New(),
		SubmittedAt: time.Now().UTC(),
		Message:     "Thank you for reaching out. We'll get back to you soon.",
	}
	s.log.Info("contact submission accepted",
		zap.String("id", receipt.ID.String()), zap.String("subject", sub.Subject))
	return receipt, nil
}

func (s *Service) sanitize(sub Submission) Submission {
	clean := func(v string) string {
		return strings.TrimSpace(s.sanitizer.Sanitize(v))
	}
	sub.Name = clean(sub.Name)
	sub.Email = clean(sub.Email)
	sub.Organization = clean(sub.Organization)
	sub.Subject = clean(sub.Subject)
	sub.Message = clean(sub.Message)
	return sub
}

func validSubject(subject string) bool {
	for _, s := range Subjects {
		if s == subject {
			return true
		}
	}
	return false
}
