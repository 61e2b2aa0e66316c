package ports

import "math/rand"

// Rand is the random source behind pack draws and sound picks. Tests inject
// deterministic implementations.
type Rand interface {
	Intn(n int) int
}

type SystemRand struct{}

func (SystemRand) Intn(n int) int {
	return rand.Intn(n)
}
