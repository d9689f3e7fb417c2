// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - RayID: generates a unique request id (RayID) for every incoming request,
//     stores it in the context locals and echoes it in the response headers so
//     log lines can be traced back to a request.
//
// Callers are not authenticated; the bot backend is expected to run behind
// the chat gateway.
package middleware
