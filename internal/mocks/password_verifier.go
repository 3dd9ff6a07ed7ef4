package mocks

import (
	"sync"

	"github.com/phrazzld/podcast-api/internal/service/auth"
)

// PasswordCheck is one recorded Compare call.
type PasswordCheck struct {
	Hash      string
	Plaintext string
}

// MockPasswordVerifier accepts every password unless Reject or CompareFn says
// otherwise. Calls are recorded in order.
type MockPasswordVerifier struct {
	// Reject makes Compare return auth.ErrPasswordMismatch.
	Reject bool

	// CompareFn, when set, decides the result and overrides Reject.
	CompareFn func(hash, plaintext string) error

	mu     sync.Mutex
	checks []PasswordCheck
}

var _ auth.PasswordVerifier = (*MockPasswordVerifier)(nil)

func (m *MockPasswordVerifier) Compare(hash, plaintext string) error {
	m.mu.Lock()
	m.checks = append(m.checks, PasswordCheck{Hash: hash, Plaintext: plaintext})
	m.mu.Unlock()

	switch {
	case m.CompareFn != nil:
		return m.CompareFn(hash, plaintext)
	case m.Reject:
		return auth.ErrPasswordMismatch
	default:
		return nil
	}
}

// Checks returns the recorded Compare calls.
func (m *MockPasswordVerifier) Checks() []PasswordCheck {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]PasswordCheck(nil), m.checks...)
}
