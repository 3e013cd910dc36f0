package heap

// Cell is a collectible object. Trace must invoke visit for every owned
// reference to another cell, and nothing else.
type Cell interface {
	Trace(visit func(Cell))
}

// Heap tracks allocated cells and the roots they are reachable from.
type Heap struct {
	cells map[Cell]struct{}
	roots map[Cell]int
}

// New creates an empty heap.
func New() *Heap {
	return &Heap{
		cells: make(map[Cell]struct{}),
		roots: make(map[Cell]int),
	}
}

// Allocate registers a constructed cell with the heap and returns it.
func Allocate[C Cell](h *Heap, cell C) C {
	h.cells[Cell(cell)] = struct{}{}
	return cell
}

// Adopt registers a cell constructed elsewhere (e.g. configuration objects
// built by a loader) so the collector can see it.
func (h *Heap) Adopt(cell Cell) {
	h.cells[cell] = struct{}{}
}

// AddRoot pins a cell. Roots are counted; a cell pinned twice must be
// released twice.
func (h *Heap) AddRoot(cell Cell) {
	h.cells[cell] = struct{}{}
	h.roots[cell]++
}

// RemoveRoot releases one pin on a cell.
func (h *Heap) RemoveRoot(cell Cell) {
	if n, ok := h.roots[cell]; ok {
		if n <= 1 {
			delete(h.roots, cell)
		} else {
			h.roots[cell] = n - 1
		}
	}
}

// Live returns the number of registered cells.
func (h *Heap) Live() int {
	return len(h.cells)
}

// mark walks the object graph from the roots through the trace hooks.
func (h *Heap) mark() map[Cell]struct{} {
	marked := make(map[Cell]struct{}, len(h.roots))
	var visit func(Cell)
	visit = func(c Cell) {
		if c == nil {
			return
		}
		if _, seen := marked[c]; seen {
			return
		}
		marked[c] = struct{}{}
		c.Trace(visit)
	}
	for root := range h.roots {
		visit(root)
	}
	return marked
}

// Reachable reports whether the cell is registered and reachable from a root.
func (h *Heap) Reachable(cell Cell) bool {
	if _, ok := h.cells[cell]; !ok {
		return false
	}
	_, ok := h.mark()[cell]
	return ok
}

// Collect sweeps every unreachable cell and returns how many were released.
func (h *Heap) Collect() int {
	marked := h.mark()
	released := 0
	for cell := range h.cells {
		if _, ok := marked[cell]; !ok {
			delete(h.cells, cell)
			released++
		}
	}
	tracer().Debugf("collect: %d cells released, %d live", released, len(h.cells))
	return released
}
