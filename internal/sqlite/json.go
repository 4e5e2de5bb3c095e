package sqlite

// JSON record structures that mirror the JSONL file format.

// contactJSON represents a contact in contacts.jsonl.
type contactJSON struct {
	ContactID string `json:"contact_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// inquiryJSON represents an inquiry in inquiries.jsonl.
type inquiryJSON struct {
	InquiryID   string `json:"inquiry_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Category    string `json:"category"`
	Priority    string `json:"priority"`
	Description string `json:"description"`
	Attachment  string `json:"attachment"`
	SubmittedAt string `json:"submitted_at"`
}
