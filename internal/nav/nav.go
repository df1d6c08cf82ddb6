// Package nav tracks the learner's position within the ordered question list
// and the set of positions visited so far.
package nav

// Tracker holds the current 0-based index and the visited set. Movement out
// of range is a guarded no-op returning false, never an error. The visited
// set only grows during a session.
type Tracker struct {
	total   int
	current int
	visited map[int]bool
}

// NewTracker creates a Tracker over total questions. Index 0 starts current
// and visited.
func NewTracker(total int) *Tracker {
	t := &Tracker{
		total:   total,
		visited: make(map[int]bool),
	}
	if total > 0 {
		t.visited[0] = true
	}
	return t
}

// Current returns the current index.
func (t *Tracker) Current() int {
	return t.current
}

// Total returns the question count.
func (t *Tracker) Total() int {
	return t.total
}

// Next advances to the following question. Returns false at the last index.
func (t *Tracker) Next() bool {
	if t.current >= t.total-1 {
		return false
	}
	t.current++
	t.visited[t.current] = true
	return true
}

// Prev moves back one question. Returns false at index 0.
func (t *Tracker) Prev() bool {
	if t.current == 0 {
		return false
	}
	t.current--
	t.visited[t.current] = true
	return true
}

// JumpTo moves directly to index i. Returns false for out-of-range i.
func (t *Tracker) JumpTo(i int) bool {
	if i < 0 || i >= t.total {
		return false
	}
	t.current = i
	t.visited[i] = true
	return true
}

// MarkVisited adds index i to the visited set without moving the cursor.
// Used when rehydrating a session whose attempts already exist. No-op for
// out-of-range i.
func (t *Tracker) MarkVisited(i int) {
	if i < 0 || i >= t.total {
		return
	}
	t.visited[i] = true
}

// Visited reports whether index i has been visited.
func (t *Tracker) Visited(i int) bool {
	return t.visited[i]
}

// VisitedCount returns the number of visited indices.
func (t *Tracker) VisitedCount() int {
	return len(t.visited)
}
