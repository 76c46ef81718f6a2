package status

import (
	"maps"
	"slices"
	"sync"
)

// MetricMap is a keyed set of metric cells of type T
// Registration takes the lock; callers cache the returned pointer and write it lock-free
type MetricMap[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
}

// NewMetricMap creates an initialized MetricMap
func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{items: make(map[string]*T)}
}

// Get returns the cell for key, creating it on first use
func (m *MetricMap[T]) Get(key string) *T {
	m.mu.RLock()
	ptr, ok := m.items[key]
	m.mu.RUnlock()
	if ok {
		return ptr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if ptr, ok := m.items[key]; ok {
		return ptr
	}
	ptr = new(T)
	m.items[key] = ptr
	return ptr
}

// Range visits every cell in sorted key order
func (m *MetricMap[T]) Range(fn func(key string, ptr *T)) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, k := range slices.Sorted(maps.Keys(m.items)) {
		fn(k, m.items[k])
	}
}

// Count returns the number of registered cells
func (m *MetricMap[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
