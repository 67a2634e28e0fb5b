// Package bitengine implements the word-level algorithms behind the
// fixed-capacity bit containers.
//
// Every function is generic over the storage word width and operates on
// a caller-owned word slice plus a known bit capacity. The package
// carries no state and performs no bounds checking against the
// capacity beyond what each function documents; the owning container
// is responsible for calling with valid positions.
//
// Bit layout:
//   - word 0 holds bits [0, W), word 1 holds bits [W, 2W), and so on
//   - within a word, bit 0 is the least significant bit
package bitengine
