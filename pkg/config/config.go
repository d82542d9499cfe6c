// Package config provides hierarchical configuration management.
// Priority: defaults < user < project < env < flags
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/solvestat/solvestat/internal/model"
)

// Config holds all solvestat configuration.
type Config struct {
	Version int `yaml:"version"`

	// Input is the path of the results file.
	Input string `yaml:"input"`

	// Datasets are the benchmark category labels, in report order.
	Datasets []string `yaml:"datasets"`

	// Solvers is the declared column order of the summary table.
	Solvers []string `yaml:"solvers"`

	// TimeoutSeconds is the wall-clock budget the experiment harness
	// used; timed-out rows record it as their time.
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// Default returns the default configuration. Solver order and dataset
// labels match the oink experiment suite.
func Default() *Config {
	return &Config{
		Version: 1,
		Input:   "results.csv",
		Datasets: []string{
			model.DatasetModelChecking,
			model.DatasetEquivChecking,
			model.DatasetSynt,
		},
		Solvers:        []string{"tl", "rtl", "ortl", "fpi", "fpj", "npp", "zlk"},
		TimeoutSeconds: 300,
	}
}

// Manager handles configuration loading and merging.
type Manager struct {
	mu     sync.RWMutex
	config *Config
	paths  []string
}

// NewManager creates a new configuration manager.
func NewManager() *Manager {
	return &Manager{config: Default()}
}

// Load loads configuration from all sources in priority order.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.config = Default()

	for _, path := range m.getConfigPaths() {
		if err := m.loadFile(path); err != nil {
			if !os.IsNotExist(err) {
				return err
			}
		} else {
			m.paths = append(m.paths, path)
		}
	}

	m.loadEnv()
	return nil
}

// getConfigPaths returns config file paths in priority order.
func (m *Manager) getConfigPaths() []string {
	var paths []string

	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".solvestat", "config.yaml"))
	}
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, ".solvestat.yaml"))
	}
	return paths
}

// loadFile loads a single config file and merges it.
func (m *Manager) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var partial Config
	if err := yaml.Unmarshal(data, &partial); err != nil {
		return err
	}
	m.merge(&partial)
	return nil
}

// merge merges non-zero values from src into config.
func (m *Manager) merge(src *Config) {
	if src.Input != "" {
		m.config.Input = src.Input
	}
	if len(src.Datasets) > 0 {
		m.config.Datasets = src.Datasets
	}
	if len(src.Solvers) > 0 {
		m.config.Solvers = src.Solvers
	}
	if src.TimeoutSeconds != 0 {
		m.config.TimeoutSeconds = src.TimeoutSeconds
	}
}

// loadEnv loads configuration from environment variables.
func (m *Manager) loadEnv() {
	if v := os.Getenv("SOLVESTAT_INPUT"); v != "" {
		m.config.Input = v
	}
	if v := os.Getenv("SOLVESTAT_DATASETS"); v != "" {
		m.config.Datasets = splitList(v)
	}
	if v := os.Getenv("SOLVESTAT_SOLVERS"); v != "" {
		m.config.Solvers = splitList(v)
	}
	if v := os.Getenv("SOLVESTAT_TIMEOUT"); v != "" {
		if timeout, err := strconv.Atoi(v); err == nil {
			m.config.TimeoutSeconds = timeout
		}
	}
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Get returns the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// GetPaths returns the paths that were loaded.
func (m *Manager) GetPaths() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.paths
}

// Global instance
var (
	globalManager *Manager
	globalOnce    sync.Once
)

// Global returns the global configuration manager.
func Global() *Manager {
	globalOnce.Do(func() {
		globalManager = NewManager()
		globalManager.Load()
	})
	return globalManager
}
