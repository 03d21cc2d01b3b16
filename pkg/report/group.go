package report

// GroupTotal is one accumulated bucket of GroupSum.
type GroupTotal struct {
	Key   string  `json:"key"`
	Sum   float64 `json:"sum"`
	Count int     `json:"count"`
}

// GroupSum partitions items by key and sums the present measures per key,
// preserving first-seen key order. Records whose measure is absent still bump
// the bucket's Count but add nothing to Sum. Empty input yields an empty slice.
func GroupSum[T any](items []T, key func(T) string, measure func(T) (float64, bool)) []GroupTotal {
	idx := map[string]int{}
	out := []GroupTotal{}
	for _, it := range items {
		k := key(it)
		i, ok := idx[k]
		if !ok {
			i = len(out)
			idx[k] = i
			out = append(out, GroupTotal{Key: k})
		}
		if v, present := measure(it); present {
			out[i].Sum += v
		}
		out[i].Count++
	}
	return out
}

// SumBy totals the present measures over all items.
func SumBy[T any](items []T, measure func(T) (float64, bool)) float64 {
	var sum float64
	for _, it := range items {
		if v, present := measure(it); present {
			sum += v
		}
	}
	return sum
}

// CountBy counts the items the predicate accepts.
func CountBy[T any](items []T, pred func(T) bool) int {
	n := 0
	for _, it := range items {
		if pred(it) {
			n++
		}
	}
	return n
}
