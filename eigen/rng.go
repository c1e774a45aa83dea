package eigen

import "math/rand"

// defaultRNGSeed is used when Config.Seed is 0, so unseeded runs still repeat.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand. Not goroutine-safe; each
// call to a backend owns its own stream.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}
