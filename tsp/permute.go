package tsp

import (
	"math"

	"gonum.org/v1/gonum/stat/combin"
)

// Permutations lazily enumerates every ordering of the indices 0…n−1 in
// lexicographic order, starting with the identity.
//
// Usage:
//
//	p := tsp.NewPermutations(3)
//	for p.Next() {
//	    fmt.Println(p.Perm()) // [0 1 2], [0 2 1], [1 0 2], …
//	}
//
// The generator holds a single n-element buffer; Reset restarts it from the
// identity without allocating. It is not safe for concurrent use.
type Permutations struct {
	perm    []int
	started bool
	done    bool
}

// NewPermutations returns a generator over n indices. n == 0 yields exactly
// one (empty) ordering. It panics if n is negative.
func NewPermutations(n int) *Permutations {
	if n < 0 {
		panic("tsp: negative permutation size")
	}
	p := &Permutations{perm: make([]int, n)}
	p.Reset()

	return p
}

// Next advances to the following ordering and reports whether one exists.
// The first call yields the identity.
//
// Complexity: amortized O(1), worst case O(n).
func (p *Permutations) Next() bool {
	if p.done {
		return false
	}
	if !p.started {
		p.started = true
		return true
	}

	a := p.perm
	i := len(a) - 2
	for i >= 0 && a[i] >= a[i+1] {
		i--
	}
	if i < 0 {
		p.done = true
		return false
	}
	j := len(a) - 1
	for a[j] <= a[i] {
		j--
	}
	a[i], a[j] = a[j], a[i]
	for l, r := i+1, len(a)-1; l < r; l, r = l+1, r-1 {
		a[l], a[r] = a[r], a[l]
	}

	return true
}

// Perm returns the current ordering. The slice is owned by the generator
// and is overwritten by the next call to Next or Reset.
func (p *Permutations) Perm() []int { return p.perm }

// Reset restarts the enumeration; the next call to Next yields the identity.
func (p *Permutations) Reset() {
	for i := range p.perm {
		p.perm[i] = i
	}
	p.started, p.done = false, false
}

// Len returns the number of indices being permuted.
func (p *Permutations) Len() int { return len(p.perm) }

// maxFactorial is the largest n whose n! fits in an int64.
const maxFactorial = 20

// factorial returns n!, saturating at math.MaxInt past maxFactorial.
func factorial(n int) int {
	if n > maxFactorial {
		return math.MaxInt
	}

	return combin.NumPermutations(n, n)
}

// Count returns n!, the total number of orderings, or math.MaxInt when
// n! does not fit in an int.
func (p *Permutations) Count() int {
	return factorial(len(p.perm))
}

// Candidates returns the number of candidate tours OptimalTour evaluates on
// n cities: (n−1)! with the start fixed, or 0 when n < 2. It saturates at
// math.MaxInt.
func Candidates(n int) int {
	if n < 2 {
		return 0
	}

	return factorial(n - 1)
}
