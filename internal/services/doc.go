// Package services enforces the business rules of the catalog on top of
// the repositories: field validation before every write, duplicate
// detection with domain errors instead of raw constraint violations,
// the media duration ceiling, and playlist name uniqueness.
//
// The presentation layer (CLI, TUI) talks to services only, never to
// repositories directly.
package services
