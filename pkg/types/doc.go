// Package types defines the record, view-state and draft types shared by the
// contactdesk packages, the boundary interfaces implemented by storage and
// notification collaborators, the configuration surface, and the standard
// sentinel errors.
package types
