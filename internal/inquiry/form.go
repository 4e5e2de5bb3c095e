// Package inquiry implements the customer inquiry form and the greeting
// helper.
//
// Form fields are set by name through an explicit setter table; each set
// validates the field it touched, and Validate checks them all before
// submission.
package inquiry

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/mesh-intelligence/contactdesk/pkg/types"
)

// Form field names.
const (
	FieldName        = "name"
	FieldEmail       = "email"
	FieldPhone       = "phone"
	FieldCategory    = "category"
	FieldPriority    = "priority"
	FieldDescription = "description"
	FieldAttachment  = "attachment"
)

// Notification text for submission outcomes.
const (
	TitleSubmitted   = "Success"
	MessageSubmitted = "Inquiry submitted successfully!"
	TitleFailed      = "Error"
	MessageFailed    = "Error submitting inquiry. Please try again."
)

// Form errors.
var (
	ErrUnknownField = errors.New("unknown inquiry field")
	ErrInvalid      = errors.New("inquiry is invalid")
	ErrNameRequired = errors.New("name is required")
	ErrEmailInvalid = errors.New("email must contain @")
	ErrPhoneInvalid = errors.New("phone must be 10 to 15 digits")
	ErrDescRequired = errors.New("description is required")
)

type setter func(f *Form, value string)

var setters = map[string]setter{
	FieldName:        func(f *Form, v string) { f.values.Name = v },
	FieldEmail:       func(f *Form, v string) { f.values.Email = v },
	FieldPhone:       func(f *Form, v string) { f.values.Phone = v },
	FieldCategory:    func(f *Form, v string) { f.values.Category = v },
	FieldPriority:    func(f *Form, v string) { f.values.Priority = v },
	FieldDescription: func(f *Form, v string) { f.values.Description = v },
	FieldAttachment:  func(f *Form, v string) { f.values.Attachment = v },
}

var validators = map[string]func(types.Inquiry) error{
	FieldName: func(i types.Inquiry) error {
		if strings.TrimSpace(i.Name) == "" {
			return ErrNameRequired
		}
		return nil
	},
	FieldEmail: func(i types.Inquiry) error {
		if !strings.Contains(i.Email, "@") {
			return ErrEmailInvalid
		}
		return nil
	},
	FieldPhone: func(i types.Inquiry) error {
		if i.Phone == "" {
			return nil
		}
		if len(i.Phone) < 10 || len(i.Phone) > 15 {
			return ErrPhoneInvalid
		}
		for _, r := range i.Phone {
			if r < '0' || r > '9' {
				return ErrPhoneInvalid
			}
		}
		return nil
	},
	FieldDescription: func(i types.Inquiry) error {
		if strings.TrimSpace(i.Description) == "" {
			return ErrDescRequired
		}
		return nil
	},
}

// Fields lists the form fields in display order.
func Fields() []string {
	return []string{FieldName, FieldEmail, FieldPhone, FieldCategory, FieldPriority, FieldDescription, FieldAttachment}
}

// Form holds the values being entered and the per-field errors found so far.
type Form struct {
	values types.Inquiry
	errs   map[string]error
	now    func() time.Time
}

// NewForm returns an empty form.
func NewForm() *Form {
	return &Form{errs: map[string]error{}, now: time.Now}
}

// Set assigns value to field and validates that field.
func (f *Form) Set(field, value string) error {
	set, ok := setters[field]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	set(f, value)
	if check, ok := validators[field]; ok {
		if err := check(f.values); err != nil {
			f.errs[field] = err
			return err
		}
	}
	delete(f.errs, field)
	return nil
}

// Values returns a copy of the current values.
func (f *Form) Values() types.Inquiry {
	return f.values
}

// Errors returns the per-field errors from the last Set or Validate.
func (f *Form) Errors() map[string]error {
	out := make(map[string]error, len(f.errs))
	for k, v := range f.errs {
		out[k] = v
	}
	return out
}

// Validate checks every field. The returned error wraps ErrInvalid and each
// failing field's error.
func (f *Form) Validate() error {
	clear(f.errs)
	names := make([]string, 0, len(validators))
	for name := range validators {
		names = append(names, name)
	}
	slices.Sort(names)

	errs := []error{}
	for _, name := range names {
		if err := validators[name](f.values); err != nil {
			f.errs[name] = err
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}

// Reset clears values and errors.
func (f *Form) Reset() {
	f.values = types.Inquiry{}
	clear(f.errs)
}

// Submit validates the form and hands it to submitter exactly once. On
// success the form is cleared and a success notification is sent; on a
// submitter failure the values are kept and an error notification is sent.
// Validation failures are returned without notifying.
func (f *Form) Submit(ctx context.Context, submitter types.InquirySubmitter, notifier types.Notifier) (string, error) {
	if err := f.Validate(); err != nil {
		return "", err
	}
	inq := f.values
	inq.SubmittedAt = f.now()

	id, err := submitter.SubmitInquiry(ctx, inq)
	if err != nil {
		notifier.Notify(TitleFailed, MessageFailed, types.SeverityError)
		return "", fmt.Errorf("submit inquiry: %w", err)
	}
	f.Reset()
	notifier.Notify(TitleSubmitted, MessageSubmitted, types.SeveritySuccess)
	return id, nil
}
