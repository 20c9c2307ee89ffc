// Package host provides an in-process implementation of the editor host
// contract. The real flymd UI is out of scope; this host backs the HTTP
// bridge and the test suites with a plain string buffer.
package host

import (
	"sync"

	"github.com/wha4up/flymd-ai-assistant/internal/extension"
)

// Memory is a thread-safe extension.Host backed by process memory.
type Memory struct {
	mu      sync.Mutex
	buffer  string
	notices []string
	menu    []extension.MenuItem
	modal   *extension.Modal
}

var _ extension.Host = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) AddMenuItem(item extension.MenuItem) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.menu = append(m.menu, item)
}

func (m *Memory) ShowModal(modal extension.Modal) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.modal = &modal
}

func (m *Memory) GetEditorValue() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.buffer
}

func (m *Memory) SetEditorValue(value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.buffer = value
}

func (m *Memory) Notify(message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notices = append(m.notices, message)
}

// MenuItems returns the registered menu entries in registration order.
func (m *Memory) MenuItems() []extension.MenuItem {
	m.mu.Lock()
	defer m.mu.Unlock()
	items := make([]extension.MenuItem, len(m.menu))
	copy(items, m.menu)
	return items
}

// Trigger runs the action of the menu item with the given ID.
func (m *Memory) Trigger(id string) bool {
	m.mu.Lock()
	var action func()
	for _, item := range m.menu {
		if item.ID == id {
			action = item.Action
			break
		}
	}
	m.mu.Unlock()

	if action == nil {
		return false
	}
	action()
	return true
}

// LastModal returns the most recently shown modal, or nil.
func (m *Memory) LastModal() *extension.Modal {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.modal
}

// DrainNotices returns accumulated notices and clears them.
func (m *Memory) DrainNotices() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	notices := m.notices
	m.notices = nil
	return notices
}
