// Package sampling - RNG utilities for the sampling strategies.
//
// This file centralizes deterministic random generation for every strategy.
//
// Goals:
//   - Determinism: same seed ⇒ identical samples across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources anywhere.
//   - Safety: no panics or logging; only sentinel errors from params.go.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each Sampler owns its *rand.Rand
//     and must not be shared across goroutines; use DeriveSeed to create
//     independent streams for parallel samplers.
package sampling

import "math/rand"

// defaultRNGSeed is the fixed fallback used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed with a SplitMix64-style finalizer, so derived streams are
// decorrelated from the parent and from each other. Callers running several
// samplers off one configured seed (one per goroutine, or one per family)
// should derive each sampler's seed with a distinct stream identifier.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	// Canonical SplitMix64 multipliers/finalizer; see Vigna 2014.
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// intInRange draws a uniform integer from the closed range [min, max].
// min > max is treated as the single point min.
//
// Complexity: O(1).
func intInRange(rng *rand.Rand, min, max int64) int64 {
	if max <= min {
		return min
	}
	return min + rng.Int63n(max-min+1)
}

// permRange returns a permutation of the closed range [min, max] generated
// deterministically from rng, via Fisher-Yates.
//
// Complexity: O(n) time and space for n = max − min + 1.
func permRange(rng *rand.Rand, min, max int64) []int64 {
	if max < min {
		return nil
	}
	n := int(max - min + 1)
	p := make([]int64, n)
	for i := 0; i < n; i++ {
		p[i] = min + int64(i)
	}
	for i := n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}
	return p
}
