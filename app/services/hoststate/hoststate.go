package hoststate

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Global mutex for file operations
var fileMutex sync.RWMutex

type Operations interface {
	Save() error
	Load() error
	EnsureHostID() (string, error)
	GetHostID() string
	MarkStarted(t time.Time) error
	MarkShutdown(t time.Time) error
}

// HostState is the host's identity and lifecycle record, persisted as a
// JSON file in the data directory.
type HostState struct {
	HostID       string     `json:"host_id,omitempty"`
	StartedAt    *time.Time `json:"started_at,omitempty"`
	LastShutdown *time.Time `json:"last_shutdown,omitempty"`
	stateDir     string
}

func New(stateDir string) *HostState {
	return &HostState{
		stateDir: stateDir,
	}
}

func (s *HostState) Save() error {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	if err := os.MkdirAll(s.stateDir, 0700); err != nil {
		return err
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}

	stateFile := filepath.Join(s.stateDir, "host.json")
	// Write to a temp file first, then rename for atomic operation
	tmpFile := stateFile + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		return err
	}

	return os.Rename(tmpFile, stateFile)
}

func (s *HostState) Load() error {
	fileMutex.RLock()
	defer fileMutex.RUnlock()

	data, err := os.ReadFile(filepath.Join(s.stateDir, "host.json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	return json.Unmarshal(data, s)
}

// EnsureHostID returns the persisted host id, generating and saving one
// on first run.
func (s *HostState) EnsureHostID() (string, error) {
	if s.HostID != "" {
		return s.HostID, nil
	}
	s.HostID = uuid.NewString()
	if err := s.Save(); err != nil {
		return "", err
	}
	return s.HostID, nil
}

func (s *HostState) GetHostID() string {
	return s.HostID
}

func (s *HostState) MarkStarted(t time.Time) error {
	s.StartedAt = &t
	return s.Save()
}

func (s *HostState) MarkShutdown(t time.Time) error {
	s.LastShutdown = &t
	return s.Save()
}
