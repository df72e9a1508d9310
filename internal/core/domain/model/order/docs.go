// Package order models a storefront sale and its fulfilment lifecycle.
//
// The package includes:
//   - Order: the aggregate root carrying customer, address, amounts, line items and tracking info
//   - Status: a closed enumeration with an explicit adjacency table
//   - EvaluateTransition: the pure transition validator used by the orchestrator and UI pre-checks
//   - StatusChange: the atomic update a repository applies for an accepted transition
//
// Lifecycle:
//
//	PENDING ──> PROCESSING ──> PACKED ──> SHIPPED ──> DELIVERED
//	   │             │            │
//	   └─────────────┴────────────┴──> CANCELLED
//
// DELIVERED and CANCELLED are terminal. Tracking info is present exactly
// when the order is SHIPPED or DELIVERED.
package order
