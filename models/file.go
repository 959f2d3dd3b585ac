package models

import "io"

// File is a single uploaded file handed from the transport layer to a service.
// Content is owned by the caller, which closes it once the request is done.
type File struct {
	// Name is the client-side file name as sent in the multipart header.
	Name string

	// Size is the declared size in bytes.
	Size int64

	Content io.Reader
}
