package text

import "math"

// Vector is a sparse bag-of-words frequency map: token to occurrence
// count. A vector built from no tokens is the empty map and has norm 0.
type Vector map[string]int

// Vectorise counts occurrences of each distinct token. No stopword
// removal and no case transform; tokens are already normalised upstream.
func Vectorise(tokens []string) Vector {
	vec := make(Vector, len(tokens))
	for _, tok := range tokens {
		vec[tok]++
	}
	return vec
}

// Norm returns the Euclidean norm of the frequency vector.
func (v Vector) Norm() float64 {
	sum := 0
	for _, count := range v {
		sum += count * count
	}
	return math.Sqrt(float64(sum))
}

// Cosine returns the cosine similarity between two frequency vectors.
// Counts are non-negative, so the result lies in [0, 1]. When either
// vector is empty the result is exactly 0.0; the zero-norm guard keeps
// the function total instead of dividing by zero.
func Cosine(a, b Vector) float64 {
	dot := 0
	for tok, count := range a {
		dot += count * b[tok]
	}

	na, nb := a.Norm(), b.Norm()
	if na == 0 || nb == 0 {
		return 0.0
	}
	return float64(dot) / (na * nb)
}
