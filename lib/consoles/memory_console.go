package consoles

import (
	"fmt"
	"strings"
	"sync"
)

// MemoryConsole keeps every line in memory. Used by tests and by callers that want to inspect output.
type MemoryConsole struct {
	mutex    sync.Mutex
	prefixes []string
	lines    []Line
}

type Line struct {
	Error bool
	Text  string
}

func NewMemoryConsole() *MemoryConsole {
	return &MemoryConsole{}
}

func (m *MemoryConsole) Printf(format string, a ...any) {
	m.add(false, format, a...)
}

func (m *MemoryConsole) Errorf(format string, a ...any) {
	m.add(true, format, a...)
}

func (m *MemoryConsole) add(isError bool, format string, a ...any) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	text := strings.Join(m.prefixes, "") + fmt.Sprintf(format, a...)
	m.lines = append(m.lines, Line{
		Error: isError,
		Text:  strings.TrimSuffix(text, "\n"),
	})
}

func (m *MemoryConsole) PushPrefix(format string, a ...any) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.prefixes = append(m.prefixes, fmt.Sprintf(format, a...))
}

func (m *MemoryConsole) PopPrefix() {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if len(m.prefixes) > 0 {
		m.prefixes = m.prefixes[:len(m.prefixes)-1]
	}
}

func (m *MemoryConsole) Lines() []Line {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	result := make([]Line, len(m.lines))
	copy(result, m.lines)
	return result
}

func (m *MemoryConsole) Texts() []string {
	var result []string
	for _, l := range m.Lines() {
		result = append(result, l.Text)
	}
	return result
}

func (m *MemoryConsole) Errors() []string {
	var result []string
	for _, l := range m.Lines() {
		if l.Error {
			result = append(result, l.Text)
		}
	}
	return result
}
