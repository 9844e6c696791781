// Package models defines the domain entities for the jukebox catalog.
//
// The package contains two categories of types:
//
// 1. The media variant family: [Media] is the common interface over the
// two concrete variants, [Song] and [Podcast]. Every variant carries a
// [MediaType] discriminator that is fixed at construction and never
// changes for the lifetime of the value.
//
// 2. [Playlist]: an ordered collection of media references with a
// case-insensitively unique name.
//
// Entities validate themselves via Validate/IsValid; persistence and
// business rules (duplicate detection, limits) live in the repositories
// and services packages. The slice helpers at the bottom of the package
// operate purely on already-fetched in-memory sequences.
package models
