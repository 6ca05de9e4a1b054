package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/skylark-sim/swarmkit/pkg/logger"
	"github.com/skylark-sim/swarmkit/pkg/simulation"
	"gopkg.in/yaml.v3"
)

// ScenarioInfo contains information about a discovered scenario
type ScenarioInfo struct {
	Path   string
	Config simulation.ScenarioConfig
}

// DiscoverScenarios finds all scenarios in the cmd directory
func DiscoverScenarios() ([]ScenarioInfo, error) {
	rootDir, err := findProjectRoot()
	if err != nil {
		return nil, err
	}

	cmdDir := filepath.Join(rootDir, "cmd")

	var scenarios []ScenarioInfo
	err = filepath.Walk(cmdDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.Name() == "scenario.yaml" {
			scInfo, err := loadScenarioConfig(path)
			if err != nil {
				// Keep scanning even if one config is broken
				logger.Warnf("failed to load %s: %v", path, err)
				return nil
			}
			scenarios = append(scenarios, *scInfo)
		}

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to scan for scenarios: %w", err)
	}

	return scenarios, nil
}

// loadScenarioConfig loads a scenario configuration from a file
func loadScenarioConfig(path string) (*ScenarioInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario config: %w", err)
	}

	var config simulation.ScenarioConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse scenario config: %w", err)
	}

	return &ScenarioInfo{
		Path:   filepath.Dir(path),
		Config: config,
	}, nil
}

// findProjectRoot walks up from the working directory until it finds go.mod
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find project root (no go.mod found)")
		}
		dir = parent
	}
}
