// Package middleware groups the Fiber middleware used by the HTTP server.
//
//   - rayid: assigns each request a ray id (UUID) stored in Locals and echoed in X-Ray-ID.
//   - auth: rejects requests that do not present the shared API key.
//
// Order matters: rayid is installed first so that auth failures are still traceable.
package middleware
