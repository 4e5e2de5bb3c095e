package sqlite

import "github.com/mesh-intelligence/contactdesk/pkg/types"

// Schema DDL for all tables.
const (
	createContacts = `CREATE TABLE contacts (
    contact_id TEXT PRIMARY KEY,
    first_name TEXT NOT NULL DEFAULT '',
    last_name TEXT NOT NULL DEFAULT '',
    email TEXT NOT NULL DEFAULT '',
    phone TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createInquiries = `CREATE TABLE inquiries (
    inquiry_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    phone TEXT NOT NULL DEFAULT '',
    category TEXT NOT NULL DEFAULT '',
    priority TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL,
    attachment TEXT NOT NULL DEFAULT '',
    submitted_at TEXT NOT NULL
);`
)

// Index DDL for common queries.
const (
	idxContactsEmail    = `CREATE INDEX idx_contacts_email ON contacts(email);`
	idxContactsLastName = `CREATE INDEX idx_contacts_last_name ON contacts(last_name);`
	idxInquiriesEmail   = `CREATE INDEX idx_inquiries_email ON inquiries(email);`
)

// schemaDDL lists all CREATE TABLE statements.
var schemaDDL = []string{
	createContacts,
	createInquiries,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxContactsEmail,
	idxContactsLastName,
	idxInquiriesEmail,
}

// contactColumns maps record field names to contacts columns. Fields not
// listed here are rejected by SaveRecords and AddContact.
var contactColumns = map[string]string{
	types.FieldFirstName: "first_name",
	types.FieldLastName:  "last_name",
	types.FieldEmail:     "email",
	types.FieldPhone:     "phone",
}

// contactFieldOrder is the SELECT order of the field columns.
var contactFieldOrder = []string{
	types.FieldFirstName,
	types.FieldLastName,
	types.FieldEmail,
	types.FieldPhone,
}
