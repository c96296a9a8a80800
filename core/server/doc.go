// Package server holds the HTTP server configuration.
//
// While the start command wires and runs the Fiber application, this package
// defines the settings it needs: listen port, API key and the timezone used to
// interpret bare evaluation dates passed to the dashboards.
package server
