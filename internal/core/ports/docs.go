// Package ports declares the interfaces the application core needs from the
// outside world: order storage, transactions and notification transports.
// Adapters under internal/adapters/out implement them.
package ports
