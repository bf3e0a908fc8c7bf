// Package applications defines candidatures and their status lifecycle.
//
// A student creates a draft, edits it and submits it. Establishment staff
// then review it until it is accepted or rejected, possibly via the
// waiting list.
package applications
