package telemetry

import (
	"strings"
	"sync"
)

type Level int

const (
	LevelDebug Level = iota
	LevelCount
	LevelWarning
	LevelBroken
)

// Report is a single call made against MemoryAPI.
type Report struct {
	Level  Level
	Id     string
	Params []any
	Count  int64
}

// MemoryAPI keeps every report in memory, it is meant for tests that need to
// assert that something was (or was not) reported.
type MemoryAPI struct {
	mutex   sync.Mutex
	reports []Report
}

func NewMemoryAPI() *MemoryAPI {
	return &MemoryAPI{}
}

func (m *MemoryAPI) push(r Report) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.reports = append(m.reports, r)
}

func (m *MemoryAPI) ReportBroken(id string, params ...any) {
	m.push(Report{Level: LevelBroken, Id: id, Params: params})
}

func (m *MemoryAPI) ReportWarning(id string, params ...any) {
	m.push(Report{Level: LevelWarning, Id: id, Params: params})
}

func (m *MemoryAPI) ReportDebug(msg string, params ...any) {
	m.push(Report{Level: LevelDebug, Id: msg, Params: params})
}

func (m *MemoryAPI) ReportCount(id string, count int64) {
	m.push(Report{Level: LevelCount, Id: id, Count: count})
}

// Reports returns a copy of all reports at or above the given level.
func (m *MemoryAPI) Reports(min Level) []Report {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	var out []Report
	for _, r := range m.reports {
		if r.Level >= min {
			out = append(out, r)
		}
	}
	return out
}

// Has returns true if a report of exactly `level` has an id containing `id`.
func (m *MemoryAPI) Has(level Level, id string) bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for _, r := range m.reports {
		if r.Level == level && strings.Contains(r.Id, id) {
			return true
		}
	}
	return false
}
