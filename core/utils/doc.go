// Package utils holds small parsing helpers shared by the CLI and HTTP handlers:
// loose boolean flags (?fix=true, ?fix=1) and the evaluation instant used by the
// billing views.
package utils
