// Package contactdesk is the public entry point: the release version and a
// factory that opens the configured contact backend.
package contactdesk

// Version is the release version of contactdesk.
const Version = "0.1.0"
