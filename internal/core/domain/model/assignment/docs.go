// Package assignment models the labor side of a service order: one
// technician per order at a time, clock-in/out sessions with derived worked
// hours, and the work-performed log the foreman reviews at quality check.
package assignment
