// Package delivery contains the Delivery aggregate and its lifecycle state
// machine. A delivery is a single feed shipment with a destination, price,
// required feed tonnage, and a delivery date. Its status moves through
// Pending -> Assigned -> InProgress -> Completed, with assignment
// cancellation returning the delivery to Pending.
//
// All state mutations go through the transition methods on Delivery, which
// enforce the lifecycle invariants; a failed transition leaves the aggregate
// untouched.
package delivery
