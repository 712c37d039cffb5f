package loader

import "sync"

// IDGenerator hands out process IDs in creation order, starting at 1.
type IDGenerator struct {
	mu     sync.Mutex
	nextID int
}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{nextID: 1}
}

func (g *IDGenerator) Next() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.nextID
	g.nextID++
	return id
}
