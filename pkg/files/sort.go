package files

// SortBySize orders entries ascending by Size.
// Entries of equal size keep their relative order.
func SortBySize(entries []SizeEntry) {
	if len(entries) < 2 {
		return
	}
	scratch := make([]SizeEntry, len(entries))
	mergeSort(entries, scratch)
}

// mergeSort sorts entries using scratch, which must be at least as long.
func mergeSort(entries, scratch []SizeEntry) {
	n := len(entries)
	if n < 2 {
		return
	}
	mid := n / 2
	mergeSort(entries[:mid], scratch[:mid])
	mergeSort(entries[mid:], scratch[mid:n])
	merge(entries, mid, scratch[:n])
}

// merge combines the sorted halves entries[:mid] and entries[mid:].
// The left half wins ties.
func merge(entries []SizeEntry, mid int, scratch []SizeEntry) {
	copy(scratch, entries)
	left, right := scratch[:mid], scratch[mid:]
	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		if left[i].Size <= right[j].Size {
			entries[k] = left[i]
			i++
		} else {
			entries[k] = right[j]
			j++
		}
		k++
	}
	k += copy(entries[k:], left[i:])
	copy(entries[k:], right[j:])
}
