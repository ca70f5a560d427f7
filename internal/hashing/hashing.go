// Package hashing provides Zobrist keys for board positions and counts
// how often a game has reached each of them.
package hashing

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// zobristSeed fixes the key table so keys are stable across runs.
const zobristSeed = 0x9E3779B97F4A7C15

var (
	// pieceKeys[colour][kind][cell]
	pieceKeys [2][chess.King + 1][chess.BoardSquares]uint64
	blackKey  uint64
)

func init() {
	state := uint64(zobristSeed)
	for colour := range pieceKeys {
		for kind := chess.Pawn; kind <= chess.King; kind++ {
			for cell := 0; cell < chess.BoardSquares; cell++ {
				pieceKeys[colour][kind][cell] = splitmix64(&state)
			}
		}
	}
	blackKey = splitmix64(&state)
}

// splitmix64 advances state and returns the next pseudo-random value.
func splitmix64(state *uint64) uint64 {
	*state += 0x9E3779B97F4A7C15
	z := *state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// GenerateZobristHash returns the key of the position on l with turn to move.
func GenerateZobristHash(l chess.Layout, turn chess.Colour) uint64 {
	var hash uint64
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, p := range l.PiecesOf(colour) {
			hash ^= pieceKeys[colour][p.Kind][p.Pos.Index()]
		}
	}
	if turn == chess.Black {
		hash ^= blackKey
	}
	return hash
}

// WeakHash is a cheap order-independent checksum of the material on l.
// Positions with equal Zobrist keys and different weak hashes are
// collisions.
func WeakHash(l chess.Layout) uint64 {
	var hash uint64
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, p := range l.PiecesOf(colour) {
			hash += uint64(p.Pos.Index()+1) * uint64(int(p.Kind)+7*int(colour)+1)
		}
	}
	return hash
}

// positionSignature identifies a position beyond its Zobrist key.
type positionSignature struct {
	Hash     uint64
	WeakHash uint64
}

// RepetitionCounter tracks how many times each position has been reached.
type RepetitionCounter struct {
	seen map[positionSignature]int
}

// NewRepetitionCounter creates an empty counter.
func NewRepetitionCounter() *RepetitionCounter {
	return &RepetitionCounter{
		seen: make(map[positionSignature]int),
	}
}

// Add records the position on l with turn to move and returns how many
// times it has now been reached, including this time.
func (r *RepetitionCounter) Add(l chess.Layout, turn chess.Colour) int {
	sig := signature(l, turn)
	r.seen[sig]++
	return r.seen[sig]
}

// Count returns how many times the position has been reached.
func (r *RepetitionCounter) Count(l chess.Layout, turn chess.Colour) int {
	return r.seen[signature(l, turn)]
}

// UniqueCount returns the number of distinct positions recorded.
func (r *RepetitionCounter) UniqueCount() int {
	return len(r.seen)
}

// Reset clears the counter.
func (r *RepetitionCounter) Reset() {
	r.seen = make(map[positionSignature]int)
}

func signature(l chess.Layout, turn chess.Colour) positionSignature {
	return positionSignature{
		Hash:     GenerateZobristHash(l, turn),
		WeakHash: WeakHash(l),
	}
}
