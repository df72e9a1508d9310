// Package services holds domain logic that reads across value objects and
// aggregates without belonging to any one of them.
package services
