package contact

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

type recordingDeliverer struct {
	got Submission
	err error
}

func (d *recordingDeliverer) Deliver(ctx context.Context, sub Submission) error {
	d.got = sub
	return d.err
}

func valid() Submission {
	return Submission{
		Name:    "Amara Diop",
		Email:   "amara@example.org",
		Subject: "General Inquiry",
		Message: "How is the funding data sourced?",
	}
}

func TestSubmit_Success(t *testing.T) {
	deliverer := &recordingDeliverer{}
	svc := NewService(deliverer, nil)

	receipt, err := svc.Submit(context.Background(), valid())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if receipt.ID.String() == "" || receipt.SubmittedAt.IsZero() {
		t.Fatalf("incomplete receipt: %+v", receipt)
	}
	if deliverer.got.Name != "Amara Diop" {
		t.Fatalf("deliverer saw %+v", deliverer.got)
	}
}

func TestSubmit_RequiredFields(t *testing.T) {
	svc := NewService(&recordingDeliverer{}, nil)

	for _, mutate := range []func(*Submission){
		func(s *Submission) { s.Name = "" },
		func(s *Submission) { s.Email = "" },
		func(s *Submission) { s.Subject = "" },
		func(s *Submission) { s.Message = "   " },
	} {
		sub := valid()
		mutate(&sub)
		if _, err := svc.Submit(context.Background(), sub); !errors.Is(err, ErrMissingField) {
			t.Fatalf("expected ErrMissingField, got %v", err)
		}
	}

	// organization stays optional
	sub := valid()
	sub.Organization = ""
	if _, err := svc.Submit(context.Background(), sub); err != nil {
		t.Fatalf("organization must be optional: %v", err)
	}
}

func TestSubmit_UnknownSubject(t *testing.T) {
	svc := NewService(&recordingDeliverer{}, nil)

	sub := valid()
	sub.Subject = "Complaint"
	if _, err := svc.Submit(context.Background(), sub); !errors.Is(err, ErrUnknownSubject) {
		t.Fatalf("expected ErrUnknownSubject, got %v", err)
	}
}

func TestSubmit_SanitizesMarkup(t *testing.T) {
	deliverer := &recordingDeliverer{}
	svc := NewService(deliverer, nil)

	sub := valid()
	sub.Message = `<script>alert(1)</script>Please <b>call</b> me`
	if _, err := svc.Submit(context.Background(), sub); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(deliverer.got.Message, "<") {
		t.Fatalf("markup survived sanitization: %q", deliverer.got.Message)
	}
	if !strings.Contains(deliverer.got.Message, "call") {
		t.Fatalf("text content lost: %q", deliverer.got.Message)
	}
}

func TestSubmit_DeliveryFailureSurfaces(t *testing.T) {
	svc := NewService(&recordingDeliverer{err: errors.New("smtp down")}, nil)

	if _, err := svc.Submit(context.Background(), valid()); err == nil {
		t.Fatal("expected delivery error to surface")
	}
}

func TestSimulatedDeliverer_RespectsContext(t *testing.T) {
	d := SimulatedDeliverer{Delay: time.Minute}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := d.Deliver(ctx, valid()); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context cancellation, got %v", err)
	}
}

func TestSimulatedDeliverer_FixedDelay(t *testing.T) {
	d := SimulatedDeliverer{Delay: 10 * time.Millisecond}
	start := time.Now()
	if err := d.Deliver(context.Background(), valid()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if time.Since(start) < 10*time.Millisecond {
		t.Fatal("delivery must take at least the configured delay")
	}
}
