package server

// Server runs the blog HTTP API.
type Server interface {
	// RunServer serves until a stop signal arrives or the listener fails.
	// A clean shutdown returns nil.
	RunServer() error

	Shutdown()
}
