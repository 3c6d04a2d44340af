package dedupe

import "runtime/debug"

type MapBackend struct {
	storage map[string]struct{}
}

func NewMapBackend() *MapBackend {
	return &MapBackend{storage: map[string]struct{}{}}
}

func (m *MapBackend) Seen(elem string) bool {
	if _, ok := m.storage[elem]; ok {
		return true
	}
	m.storage[elem] = struct{}{}
	return false
}

func (m *MapBackend) Cleanup() {
	m.storage = nil
	// release the seen set at once instead of waiting for the scavenger
	debug.FreeOSMemory()
}
