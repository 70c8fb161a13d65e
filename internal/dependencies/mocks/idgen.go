package mocks

import (
	"fmt"

	"github.com/scoretab/scoretab/internal/dependencies/idgen"
)

// MockIDGenerator is a mock implementation of Generator for testing
type MockIDGenerator struct {
	// Results is a queue of IDs to return from NewID
	Results []string
	index   int
	counter int
}

// Ensure MockIDGenerator implements Generator
var _ idgen.Generator = (*MockIDGenerator)(nil)

// NewMockIDGenerator creates a new MockIDGenerator
func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

// NewID returns the next queued ID, or a deterministic sequential ID if
// the queue is empty
func (g *MockIDGenerator) NewID(prefix string) string {
	if g.index < len(g.Results) {
		result := g.Results[g.index]
		g.index++
		return result
	}
	g.counter++
	return fmt.Sprintf("%s%d", prefix, g.counter)
}

// Queue adds IDs to the result queue
func (g *MockIDGenerator) Queue(ids ...string) {
	g.Results = append(g.Results, ids...)
}

// Reset clears all queued results
func (g *MockIDGenerator) Reset() {
	g.Results = nil
	g.index = 0
	g.counter = 0
}
