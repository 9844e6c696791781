// Package repositories provides the persistence layer for the catalog.
//
// MediaRepository maps between the single polymorphic media table and
// the typed variants in the models package; PlaylistRepository manages
// playlist rows and the ordered playlist_items join table. Repositories
// perform structural mapping and SQL only; business rules live in the
// services package above them.
package repositories
