// Package util provides utility functions for the catalog.
package util

import "github.com/google/uuid"

// NewID returns a random RFC4122 v4 UUID string used for product and variant ids.
func NewID() string {
	return uuid.NewString()
}
