// Package view derives the visible page of the contact list from the
// canonical collection: filter by search key, sort by a field, then slice
// into fixed-size pages. The pipeline functions are pure; Controller owns the
// single ViewState and recomputes the page after every change.
package view
