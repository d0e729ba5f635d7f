// Package entities provides the core data structures shared by the battle engine,
// repositories, and transport layers.
//
// Status effects and learned skills are modelled as typed sets here; their compact
// bitmask form only exists at the storage and wire boundaries.
package entities
