// Package httpauth builds Authorization header values for outbound HTTP
// requests.
//
// Currently only the Basic scheme (RFC 7617) is covered. The builder encodes
// credentials but performs no validation and no transport work; setting the
// header on a request is the caller's business.
//
// # Usage
//
//	import "github.com/dmitrymomot/failover/httpauth"
//
//	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
//	req.Header.Set("Authorization", httpauth.Basic("user", "secret"))
//
// For requests built through net/http, (*http.Request).SetBasicAuth is
// equivalent; this builder exists for clients that assemble headers directly.
package httpauth
