package markovpass

import (
	cryptorand "crypto/rand"
	"math/rand/v2"
)

// NewRand returns a ChaCha8-backed uniform generator seeded from the
// operating system's entropy source. The result satisfies
// aliasdist.Rand, so it can be handed straight to Chain.Passphrase.
func NewRand() (*rand.Rand, error) {
	var seed [32]byte
	if _, err := cryptorand.Read(seed[:]); err != nil {
		return nil, err
	}

	return rand.New(rand.NewChaCha8(seed)), nil
}
