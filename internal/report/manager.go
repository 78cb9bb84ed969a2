package report

import (
	"path/filepath"
	"sync"
)

// ReportFileName is the filename written into each OUTPUT/<dir>.
const ReportFileName = "harriet-vision.report.json"

// Manager hands out one Report per output directory name and keeps its
// JSON file on disk up to date as entries arrive. A single worker pool
// serves every /highlights/ request, so reports cannot be scoped to one
// request's lifetime; they are instead scoped to the directory name and
// persisted after every entry, so the file at OUTPUT/<dir>/<ReportFileName>
// always reflects everything processed for that directory so far.
type Manager struct {
	outputBase string
	profile    string

	mu      sync.Mutex
	reports map[string]*Report
}

// NewManager creates a Manager rooted at outputBase using profileName
// for reports it creates.
func NewManager(outputBase, profileName string) *Manager {
	return &Manager{
		outputBase: outputBase,
		profile:    profileName,
		reports:    make(map[string]*Report),
	}
}

// Record appends entry to the report for dirName and persists it.
func (m *Manager) Record(dirName string, entry Entry) error {
	r := m.reportFor(dirName)
	// Add and write under one lock, so a slower writer cannot leave an
	// older snapshot on disk after a newer one.
	m.mu.Lock()
	defer m.mu.Unlock()
	r.Add(entry)
	return WriteJSON(r, filepath.Join(m.outputBase, dirName, ReportFileName))
}

func (m *Manager) reportFor(dirName string) *Report {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.reports[dirName]
	if !ok {
		r = New(m.profile)
		m.reports[dirName] = r
	}
	return r
}
