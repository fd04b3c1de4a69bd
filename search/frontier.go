package search

// frontierItem is one frontier entry. seq records insertion order so that
// equal priorities pop first-in, first-out.
type frontierItem struct {
	ref      NodeRef
	priority int
	seq      uint64
}

// frontier is a min-heap of frontierItem ordered by priority, then seq.
// Duplicates for one coordinate are allowed; the engine skips stale entries on pop.
type frontier []frontierItem

// Len returns the number of items in the heap.
func (f frontier) Len() int { return len(f) }

// Less orders by priority ascending, breaking ties by insertion order.
func (f frontier) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}
	return f[i].seq < f[j].seq
}

// Swap swaps two elements in the heap.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push adds x onto the heap. Called by heap.Push; x must be a frontierItem.
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(frontierItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}
