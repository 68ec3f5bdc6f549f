package server

// Server is the lifecycle contract of the API server.
//
// RunServer blocks until a stop signal arrives and the listener is shut
// down, returning the listener error if it failed instead. Shutdown stops
// accepting connections and waits for in-flight requests.
type Server interface {
	RunServer() error
	Shutdown()
}
