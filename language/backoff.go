package language

import (
	"math"
	"sort"

	"github.com/ieee0824/ngramlm/internal/mathutil"
)

// degenerateMass is the smallest leftover probability mass that still
// yields a backoff weight. Below it the weight is clamped to zero.
const degenerateMass = 1e-12

var logDegenerate = math.Log(degenerateMass)

// Backoffs holds natural-log backoff weights per context. A context with no
// observed continuation has no entry.
type Backoffs struct {
	Unigrams map[string]float64
	Bigrams  map[[2]string]float64
}

// BackoffWeights computes, for every context with at least one observed
// continuation,
//
//	bow(h) = (1 - Σ P(w|h)) / (1 - Σ P_lower(w|h'))
//
// summing over the continuations w seen after h, where h' is h without its
// first word. Weights whose leftover mass is degenerate are clamped to zero
// (stored as mathutil.LogZero). Continuations are summed in lexical order
// so the result does not depend on map iteration.
func BackoffWeights(uni map[string]float64, bi map[[2]string]float64, tri map[[3]string]float64) Backoffs {
	uniSeen := make(map[string]float64)
	uniLower := make(map[string]float64)
	for _, key := range sortedBigrams(bi) {
		accumulate(uniSeen, key[0], bi[key])
		accumulate(uniLower, key[0], lookup(uni, key[1]))
	}

	biSeen := make(map[[2]string]float64)
	biLower := make(map[[2]string]float64)
	for _, key := range sortedTrigrams(tri) {
		ctx := [2]string{key[0], key[1]}
		accumulate(biSeen, ctx, tri[key])
		lower, ok := bi[[2]string{key[1], key[2]}]
		if !ok {
			lower = lookup(uni, key[2])
		}
		accumulate(biLower, ctx, lower)
	}

	bo := Backoffs{
		Unigrams: make(map[string]float64, len(uniSeen)),
		Bigrams:  make(map[[2]string]float64, len(biSeen)),
	}
	for ctx, seen := range uniSeen {
		bo.Unigrams[ctx] = backoffWeight(seen, uniLower[ctx])
	}
	for ctx, seen := range biSeen {
		bo.Bigrams[ctx] = backoffWeight(seen, biLower[ctx])
	}
	return bo
}

// backoffWeight takes the log mass of the observed continuations under the
// context and under the lower-order model.
func backoffWeight(logSeen, logLower float64) float64 {
	num := mathutil.LogComplement(logSeen)
	den := mathutil.LogComplement(logLower)
	if num <= logDegenerate || den <= logDegenerate {
		return mathutil.LogZero
	}
	return num - den
}

func accumulate[K comparable](m map[K]float64, key K, lp float64) {
	if cur, ok := m[key]; ok {
		m[key] = mathutil.LogAdd(cur, lp)
		return
	}
	m[key] = lp
}

func lookup(m map[string]float64, w string) float64 {
	if lp, ok := m[w]; ok {
		return lp
	}
	return mathutil.LogZero
}

func sortedBigrams(m map[[2]string]float64) [][2]string {
	keys := make([][2]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return lessWords(keys[i][:], keys[j][:]) })
	return keys
}

func sortedTrigrams(m map[[3]string]float64) [][3]string {
	keys := make([][3]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return lessWords(keys[i][:], keys[j][:]) })
	return keys
}
