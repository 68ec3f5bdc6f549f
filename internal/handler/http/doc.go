// Package http implements the REST transport of the blog API.
//
// It wires the chi router, the session cookie handling and the middleware
// chain (trace ids, access logging, panic recovery, compression, request
// timeouts and authentication) in front of the service layer. Every error
// response has the form {"message": "..."}.
package http
