// Package service contains the application use cases: account management and
// the podcast catalog. Services orchestrate domain entities and the
// repositories defined in internal/store.
//
// Every operation reports its outcome as a Result. A Result either carries the
// operation's payload or a Failure, which is a business rejection (a named,
// expected outcome such as "Wrong password") or an infrastructure failure
// wrapping the underlying error. Services never return a bare Go error and
// never call each other.
//
// The service layer depends on domain entities and repository interfaces (from
// store), never on specific infrastructure implementations.
package service
