// Package loader registers the HTTP features and mounts them on the Fiber app.
//
// Each feature (billing, management, complaints, overview, integrity) implements
// Feature; the start command registers them with a Manager and calls LoadAll once
// the middleware chain is in place.
package loader
