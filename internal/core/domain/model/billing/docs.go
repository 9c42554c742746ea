// Package billing models the bill for a service order: labor and part charge
// lines, clamped discount and warranty deductions, a sequential billing
// number, and the Generated -> For Payment -> Paid settlement path walked in
// lockstep with the order.
package billing
