package rangemax

type accumulatorOption func(*Accumulator) error

// Unchecked disables per-update bounds validation.
//
// By default every update is checked against 1 <= left <= right <= n
// before it touches the difference array. Callers that already
// guarantee the contract (say, because updates come from a previously
// validated batch) can skip the checks for a small speedup on hot
// paths.
//
// With Unchecked the contract moves to the caller: an out-of-bounds
// update will panic on a slice access or silently corrupt the result.
func Unchecked() accumulatorOption {
	return func(a *Accumulator) error {
		a.checked = false
		return nil
	}
}
