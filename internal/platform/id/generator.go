package id

import (
	"fmt"

	"github.com/google/uuid"
)

// Generator creates opaque IDs for games and scorekeeping sessions.
type Generator interface {
	NewID() (string, error)
}

type UUIDGenerator struct {
	prefix string
}

// NewUUIDGenerator returns a generator of random (v4) UUIDs, optionally prefixed ("game-", "ses-").
func NewUUIDGenerator(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

func (g *UUIDGenerator) NewID() (string, error) {
	value, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}

	return g.prefix + value.String(), nil
}
