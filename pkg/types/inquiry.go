package types

import (
	"context"
	"time"
)

// Inquiry is a customer inquiry submitted through the inquiry form.
type Inquiry struct {
	InquiryID   string    `json:"inquiry_id" yaml:"inquiry_id"`
	Name        string    `json:"name" yaml:"name"`
	Email       string    `json:"email" yaml:"email"`
	Phone       string    `json:"phone" yaml:"phone"`
	Category    string    `json:"category" yaml:"category"`
	Priority    string    `json:"priority" yaml:"priority"`
	Description string    `json:"description" yaml:"description"`
	Attachment  string    `json:"attachment" yaml:"attachment"`
	SubmittedAt time.Time `json:"submitted_at" yaml:"submitted_at"`
}

// InquirySubmitter stores a submitted inquiry and returns its ID.
type InquirySubmitter interface {
	SubmitInquiry(ctx context.Context, inq Inquiry) (string, error)
}
