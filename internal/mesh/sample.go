package mesh

// SampleTimesteps selects a bounded subset of indices from a sequence of
// length n, at most cap strided picks plus the final index. The first and
// last indices are always included and the result is strictly increasing.
//
// The stride is n/min(cap, n) rounded down, so the interval before the
// appended final index can be shorter than the others. Existing consumers
// depend on the exact index pattern, so the uneven tail is kept as is.
func SampleTimesteps(n, cap int) ([]int, error) {
	if n <= 0 {
		return nil, ErrNoTimesteps
	}
	if cap < 1 {
		return nil, ErrBadCap
	}

	count := cap
	if n < count {
		count = n
	}
	stride := n / count
	if stride < 1 {
		stride = 1
	}

	selected := make([]int, 0, count+1)
	for i := 0; i < n; i += stride {
		selected = append(selected, i)
	}
	if selected[len(selected)-1] != n-1 {
		selected = append(selected, n-1)
	}
	return selected, nil
}
