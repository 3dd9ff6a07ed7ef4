package service

// FailureKind distinguishes expected business outcomes from infrastructure failures.
type FailureKind int

const (
	// FailureBusiness is a named, expected rejection such as "User not found".
	FailureBusiness FailureKind = iota + 1
	// FailureInfra wraps an unexpected error from a collaborator.
	FailureInfra
)

// String returns the kind's name for logs.
func (k FailureKind) String() string {
	switch k {
	case FailureBusiness:
		return "business"
	case FailureInfra:
		return "infrastructure"
	default:
		return "unknown"
	}
}

// Failure describes why an operation did not succeed.
//
// Business failures always carry a Message and a service sentinel as Cause.
// Infrastructure failures carry the underlying error as Cause and either the
// service's fixed generic Message or, when Message is empty, surface the cause.
type Failure struct {
	Kind    FailureKind
	Message string
	Cause   error
}

// Error returns the user-facing message, falling back to the cause.
func (f *Failure) Error() string {
	if f.Message != "" {
		return f.Message
	}
	if f.Cause != nil {
		return f.Cause.Error()
	}
	return f.Kind.String() + " failure"
}

// Unwrap exposes the cause to errors.Is and errors.As.
func (f *Failure) Unwrap() error {
	return f.Cause
}

// IsBusiness reports whether f is an expected business rejection.
func (f *Failure) IsBusiness() bool {
	return f != nil && f.Kind == FailureBusiness
}

// Result is the uniform outcome of every service operation.
// OK is false exactly when Error is set; Value is meaningful only when OK.
type Result[T any] struct {
	OK    bool
	Error *Failure
	Value T
}

// Err returns the failure as an error, or nil on success.
func (r Result[T]) Err() error {
	if r.Error == nil {
		return nil
	}
	return r.Error
}

// Ok wraps a successful payload.
func Ok[T any](value T) Result[T] {
	return Result[T]{OK: true, Value: value}
}

// Done is a successful Result with no payload.
func Done() Result[struct{}] {
	return Result[struct{}]{OK: true}
}

// Reject builds a business failure.
func Reject[T any](reason error, message string) Result[T] {
	return Result[T]{Error: &Failure{Kind: FailureBusiness, Message: message, Cause: reason}}
}

// Fail builds an infrastructure failure with a fixed message.
func Fail[T any](message string, cause error) Result[T] {
	return Result[T]{Error: &Failure{Kind: FailureInfra, Message: message, Cause: cause}}
}

// FailWithCause builds an infrastructure failure whose message is the cause itself.
func FailWithCause[T any](cause error) Result[T] {
	return Result[T]{Error: &Failure{Kind: FailureInfra, Cause: cause}}
}

// Propagate re-types a failed Result so a composed operation can return the
// failure of the step it depends on unchanged. It must only be called when
// r.OK is false.
func Propagate[U, T any](r Result[T]) Result[U] {
	return Result[U]{Error: r.Error}
}
