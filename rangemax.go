// Package rangemax computes the maximum value reached by any cell of a
// conceptual fixed-length array after a batch of inclusive range
// increments, using a difference array so that each update costs O(1)
// and the final answer a single O(n) scan.
package rangemax

import (
	"fmt"

	"github.com/lpicoli/go-rangemax/internal/fenwick"
)

// Update represents one range increment: add Delta to every cell in
// the inclusive, 1-indexed range [Left, Right]. Delta may be negative.
type Update struct {
	Left  int64
	Right int64
	Delta int64
}

// Accumulator ingests range updates against a conceptual array of
// fixed dimension without ever materializing the array itself.
//
// An Accumulator is not safe for concurrent use; independent
// Accumulators share no state and may be used in parallel freely.
type Accumulator struct {
	// diff is 0-based internally: an update [left,right] becomes
	// diff[left-1] += delta, diff[right] -= delta. The extra slot at
	// diff[n] keeps the second write in bounds when right == n.
	diff    []int64
	n       int64
	count   int64
	checked bool

	// Prefix-sum cache for point queries. Built lazily on the first
	// ValueAt call, then maintained incrementally by Add.
	values *fenwick.List
}

// New creates an accumulator over a conceptual array of dimension n,
// with every cell starting at zero.
//
// Dimension must be >= 1, an error is returned otherwise.
func New(n int64, options ...accumulatorOption) (*Accumulator, error) {
	if n < 1 {
		return nil, fmt.Errorf("Dimension must be >= 1. Got %d", n)
	}

	a := &Accumulator{
		diff:    make([]int64, n+1),
		n:       n,
		checked: true,
	}

	for _, option := range options {
		if err := option(a); err != nil {
			return nil, err
		}
	}

	return a, nil
}

// Add applies one range update: every cell in [left, right] gains
// delta. It fails fast on the first update that violates
// 1 <= left <= right <= n (nothing is applied in that case).
//
// Overflow of the cumulative sums is the caller's concern.
func (a *Accumulator) Add(left, right, delta int64) error {
	if a.checked {
		if err := checkRange(left, right, a.n); err != nil {
			return err
		}
	}

	a.diff[left-1] += delta
	a.diff[right] -= delta
	a.count++

	if a.values != nil {
		a.values.Add(int(left-1), delta)
		if right < a.n {
			a.values.Add(int(right), -delta)
		}
	}

	return nil
}

// Max returns the maximum value any cell currently holds, via a single
// prefix-sum scan over the difference array. With no updates applied
// every cell is zero, so Max returns 0.
func (a *Accumulator) Max() int64 {
	sum := a.diff[0]
	max := sum

	for i := int64(1); i < a.n; i++ {
		sum += a.diff[i]
		if sum > max {
			max = sum
		}
	}

	return max
}

// ValueAt returns the current value of cell i (1-indexed). The first
// call builds a fenwick tree over the difference array; subsequent
// calls and interleaved Adds cost O(log n).
func (a *Accumulator) ValueAt(i int64) (int64, error) {
	if i < 1 || i > a.n {
		return 0, fmt.Errorf("Position %d outside of [1,%d]", i, a.n)
	}

	if a.values == nil {
		a.values = fenwick.New(a.diff[:a.n]...)
	}

	return a.values.Sum(int(i)), nil
}

// Merge folds every update other has ingested into a. Both
// accumulators must have the same dimension. other is not modified.
func (a *Accumulator) Merge(other *Accumulator) error {
	if other.n != a.n {
		return fmt.Errorf("Dimension mismatch: %d != %d", a.n, other.n)
	}

	for i, d := range other.diff {
		a.diff[i] += d
	}
	a.count += other.count
	a.values = nil

	return nil
}

// Reset discards every ingested update, reusing the allocation.
func (a *Accumulator) Reset() {
	for i := range a.diff {
		a.diff[i] = 0
	}
	a.count = 0
	a.values = nil
}

// Len returns the dimension of the conceptual array.
func (a Accumulator) Len() int64 {
	return a.n
}

// Count returns how many updates have been ingested.
func (a Accumulator) Count() int64 {
	return a.count
}

func (a Accumulator) String() string {
	return fmt.Sprintf("RangeMax<n=%d, updates=%d>", a.n, a.count)
}

// Max is the one-shot form: it computes the maximum cell value after
// applying every update to a fresh array of dimension n.
//
// Unlike Accumulator.Add, the whole sequence is validated up front:
// when any update is invalid an error is returned and none are
// applied.
func Max(n int64, updates []Update, options ...accumulatorOption) (int64, error) {
	a, err := New(n, options...)
	if err != nil {
		return 0, err
	}

	if a.checked {
		for _, u := range updates {
			if err := checkRange(u.Left, u.Right, n); err != nil {
				return 0, err
			}
		}
	}

	for _, u := range updates {
		a.diff[u.Left-1] += u.Delta
		a.diff[u.Right] -= u.Delta
	}
	a.count = int64(len(updates))

	return a.Max(), nil
}

func checkRange(left, right, n int64) error {
	if left < 1 || right > n || left > right {
		return fmt.Errorf("Invalid range [%d,%d] for dimension %d", left, right, n)
	}
	return nil
}
