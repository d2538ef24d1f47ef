// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation through the X-API-Key header.
//   - rayid: a per-request identifier (RayID) stored in the context locals
//     and echoed in the X-Ray-ID response header for tracing.
//
// rayid must be registered first so every later log line can carry the ID.
package middleware
