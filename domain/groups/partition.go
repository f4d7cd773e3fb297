package groups

import "sort"

// Partition maps each distinct attribute value to the indices that hold
// it. The index subsets are disjoint and their union covers the input:
// every position lands in exactly one subset. Map iteration order over
// the distinct values is unspecified.
type Partition map[string][]int

// New partitions the index range [0, len(attr)) by attribute value.
// Indices within each subset keep their original order.
func New(attr []string) Partition {
	p := make(Partition)
	for i, a := range attr {
		p[a] = append(p[a], i)
	}
	return p
}

// Size returns the total number of indices across all subsets.
func (p Partition) Size() int {
	n := 0
	for _, idx := range p {
		n += len(idx)
	}
	return n
}

// SortedValues returns the distinct attribute values in lexical order,
// for callers that need a deterministic traversal.
func (p Partition) SortedValues() []string {
	vals := make([]string, 0, len(p))
	for a := range p {
		vals = append(vals, a)
	}
	sort.Strings(vals)
	return vals
}

// SelectFloats gathers data at the given indices, preserving order.
func SelectFloats(data []float64, idx []int) []float64 {
	out := make([]float64, len(idx))
	for i, j := range idx {
		out[i] = data[j]
	}
	return out
}

// SelectStrings gathers data at the given indices, preserving order.
func SelectStrings(data []string, idx []int) []string {
	out := make([]string, len(idx))
	for i, j := range idx {
		out[i] = data[j]
	}
	return out
}
