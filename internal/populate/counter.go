package populate

import "sync"

// created tracks how many records this process has generated per model.
// It feeds the summary printed after a populate run; tests reset it
// between cases.
var created = &counter{counts: make(map[string]int)}

type counter struct {
	mu     sync.Mutex
	counts map[string]int
}

func (c *counter) record(model string, n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[model] += n
}

func (c *counter) snapshot() map[string]int {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]int, len(c.counts))
	for model, n := range c.counts {
		out[model] = n
	}
	return out
}

func (c *counter) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts = make(map[string]int)
}

// Counts returns a copy of the per-model creation counts for this process.
func Counts() map[string]int {
	return created.snapshot()
}

// ResetCounts clears the process-wide creation counts.
func ResetCounts() {
	created.reset()
}
