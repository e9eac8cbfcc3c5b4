package imwidgets

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

type syncMap[K comparable, V any] struct {
	mu sync.RWMutex
	m  map[K]V
}

func (m *syncMap[K, V]) String() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	lines := make([]string, 0, len(m.m))
	for k, v := range m.m {
		lines = append(lines, "\t"+fmt.Sprint(k)+":"+fmt.Sprint(v)+",\n")
	}
	sort.Strings(lines)
	return "{\n" + strings.Join(lines, "") + "}"
}

// MustGet returns zero value for missing keys.
func (m *syncMap[K, V]) MustGet(key K) V {
	v, _ := m.Get(key)
	return v
}

func (m *syncMap[K, V]) Get(key K) (V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.m[key]
	return v, ok
}

func (m *syncMap[K, V]) Set(key K, value V) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.m == nil {
		m.m = map[K]V{}
	}
	m.m[key] = value
}

// Update applies fn to the current value (zero if missing) under the write
// lock and stores the result.
func (m *syncMap[K, V]) Update(key K, fn func(V) V) V {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.m == nil {
		m.m = map[K]V{}
	}
	v := fn(m.m[key])
	m.m[key] = v
	return v
}
