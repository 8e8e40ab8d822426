package emulator

// RNG that implements the algorithm from http://www.jstatsoft.org/v08/i14/paper
type Rng struct {
	State uint32 // RNG state
}

func NewRng() *Rng {
	return &Rng{
		State: 1, // cannot be 0
	}
}

// Returns an RNG with a fixed starting state, for reproducible runs
func NewRngFromSeed(seed uint32) *Rng {
	rng := NewRng()
	rng.Seed(seed)
	return rng
}

// Resets the RNG state to `seed`. A zero seed is replaced with 1
// since the xorshift state must never be 0
func (rng *Rng) Seed(seed uint32) {
	if seed == 0 {
		seed = 1
	}
	rng.State = seed
}

// Returns a next random number from the RNG. Will never be 0
func (rng *Rng) Next() uint32 {
	rng.State ^= rng.State << 3
	rng.State ^= rng.State >> 5
	rng.State ^= rng.State << 25
	return rng.State
}

// Returns a random byte. Unlike Next, all 256 values are possible
func (rng *Rng) NextByte() byte {
	return byte(rng.Next() >> 8)
}
