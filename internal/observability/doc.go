// Package observability builds the structured logger used across the
// films API.
package observability
