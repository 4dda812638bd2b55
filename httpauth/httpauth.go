package httpauth

import "encoding/base64"

// Basic returns the value of an Authorization header for the Basic scheme as
// defined by RFC 7617: "Basic " followed by base64(username + ":" + password).
//
// The scheme cannot represent a username containing a colon; such a value
// decodes ambiguously on the server side. No validation is performed here.
func Basic(username, password string) string {
	credentials := base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
	return "Basic " + credentials
}
