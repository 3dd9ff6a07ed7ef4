// Package api exposes the account and podcast catalog services over HTTP.
//
// Handlers decode and validate JSON requests, call a service and translate its
// Result into a JSON body of the form {"ok": bool, "error": "...", <payload>}.
// Business failures map to 4xx statuses by their sentinel cause; infrastructure
// failures map to 500.
package api
