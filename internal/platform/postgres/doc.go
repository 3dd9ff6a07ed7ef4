// Package postgres provides PostgreSQL implementations of the repository
// interfaces defined in internal/store. It handles query execution, mapping
// between domain entities and rows, and translation of PostgreSQL error codes
// into store sentinel errors.
//
// The schema lives in the migrations subpackage as embedded goose SQL files.
package postgres
