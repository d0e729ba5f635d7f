// Package idgen provides ID generation for battles, characters and equipment
package idgen

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=mock/mock.go -package=idgenmock github.com/uzochukwuV/massacombat/internal/pkg/idgen Generator

// Generator generates unique identifiers
type Generator interface {
	Generate() string
}

// UUIDGenerator generates random UUIDs with an optional prefix
type UUIDGenerator struct {
	prefix string
}

// NewUUID creates a new UUID generator; prefix may be empty
func NewUUID(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

// Generate creates a new UUID-based ID such as "battle-0f8e..."
func (g *UUIDGenerator) Generate() string {
	id := uuid.New().String()
	if g.prefix != "" {
		return g.prefix + "-" + id
	}
	return id
}

// SequentialGenerator generates predictable IDs for tests and local simulations
type SequentialGenerator struct {
	prefix  string
	counter uint64
}

// NewSequential creates a new sequential generator
func NewSequential(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

// Generate creates the next ID such as "char-3"
func (g *SequentialGenerator) Generate() string {
	n := atomic.AddUint64(&g.counter, 1)
	if g.prefix != "" {
		return fmt.Sprintf("%s-%d", g.prefix, n)
	}
	return fmt.Sprintf("%d", n)
}
