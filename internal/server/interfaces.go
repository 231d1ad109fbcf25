package server

// Server runs the admin configuration API.
//
// By the time a Server exists the configuration has been resolved and the
// routes are registered, so RunServer only has to listen. It blocks until
// the process is asked to stop and then shuts down gracefully.
type Server interface {
	RunServer()

	// Shutdown stops accepting requests and waits for in-flight ones.
	Shutdown()
}
