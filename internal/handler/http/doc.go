// Package http implements the REST transport of the blog.
//
// It wires chi routes to the service layer, decodes JSON and multipart
// bodies, and maps service errors to status codes with a {"message"} body.
// Authentication, request tracing, access logging and response compression
// run as middleware before requests reach a handler.
package http
