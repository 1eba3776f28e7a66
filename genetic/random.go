package genetic

import (
	crand "crypto/rand"
	"encoding/binary"
	"log"
	"math/big"
	"math/rand"
)

// Random is the source of every draw made by the operators.
// *math/rand.Rand satisfies it.
type Random interface {
	// Intn returns a uniform value in [0, n)
	Intn(n int) int
	// Float64 returns a uniform value in [0, 1)
	Float64() float64
}

// NewRandom returns a reproducible source for the given seed
func NewRandom(seed int64) Random {
	return rand.New(rand.NewSource(seed))
}

type cryptoRandom struct{}

// NewCryptoRandom returns a source sampling from crypto/rand
func NewCryptoRandom() Random {
	return cryptoRandom{}
}

// sample uniform from 0 - n
func (cryptoRandom) Intn(n int) int {
	v, err := crand.Int(crand.Reader, big.NewInt(int64(n)))
	if err != nil {
		log.Fatal("unable to sample from the distribution: ", err)
	}

	return int(v.Int64())
}

// sample uniform from 0 - 1 with 53 bits of precision
func (cryptoRandom) Float64() float64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		log.Fatal("unable to sample from the distribution: ", err)
	}

	return float64(binary.BigEndian.Uint64(b[:])>>11) / (1 << 53)
}
