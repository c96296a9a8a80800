// Package overview serves the Panchayat home dashboard: one call returning the
// billing cards, the paid share, staff on duty and task and complaint counts.
//
// It also carries the supply cards: today's water used against water available,
// the last seven recorded days of usage and the tank cleaning status.
package overview
