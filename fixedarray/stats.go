package fixedarray

// Stats counts slot-level work done by an Array since construction or the
// last ResetStats. Comparing Shifts across operations shows the O(1) vs O(n)
// split: RemoveEnd and InsertEnd never shift, RemoveAt(0) and InsertAt(0)
// shift every present element.
type Stats struct {
	Reads    int64 // slots read by Get, At and traversal
	Writes   int64 // caller values stored by Set, InsertEnd and InsertAt
	Shifts   int64 // slot-to-slot moves made by RemoveAt and InsertAt
	Rejected int64 // operations refused with an error
}

// Stats returns a snapshot of the counters.
func (a *Array[T]) Stats() Stats { return a.stats }

// ResetStats zeroes the counters.
func (a *Array[T]) ResetStats() { a.stats = Stats{} }
