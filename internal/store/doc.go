// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the service layer, so the account and podcast rules stay independent
// of whether records live in Postgres or in process memory.
//
// Repository contract:
//   - Save assigns an ID when the entity has none and updates otherwise.
//   - FindByID returns an entity-specific not-found error wrapping ErrNotFound.
//   - Delete of a missing ID returns the same not-found error as FindByID.
package store
