// Package ids generates identifiers for records inserted without one.
package ids

import "github.com/google/uuid"

// New returns a collision-resistant record identifier. It is a random
// (version 4) UUID, which carries 122 bits of randomness; uniqueness within
// a collection is a probabilistic guarantee, not enforced by checking
// existing records.
func New() string {
	return uuid.New().String()
}
