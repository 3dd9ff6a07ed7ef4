// Package mocks provides shared test doubles for the store and auth interfaces.
//
// Store and token mocks embed testify's mock.Mock; set expectations with On and
// check them with AssertExpectations. Store methods that take find options
// receive them as a resolved store.FindOptions argument, so expectations can
// match on the projection:
//
//	users := &mocks.TestifyMockUserStore{}
//	users.On("FindByEmail", mock.Anything, "a@b.co", store.FindOptions{IncludePassword: true}).
//	    Return(user, nil)
//
// MockPasswordVerifier is a hand-written double: it accepts by default and
// records each comparison for later inspection.
package mocks
