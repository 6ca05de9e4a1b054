package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/skylark-sim/swarmkit/pkg/logger"
	"github.com/skylark-sim/swarmkit/pkg/simulation"
	"github.com/skylark-sim/swarmkit/pkg/utils"
	"github.com/skylark-sim/swarmkit/pkg/world"

	// Import scenarios to register them
	_ "github.com/skylark-sim/swarmkit/cmd/airshow"
	_ "github.com/skylark-sim/swarmkit/cmd/patrol"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a scenario",
	Long:  `Run a scenario interactively or with specified parameters`,
	RunE:  runScenario,
}

func init() {
	runCmd.Flags().StringP("scenario", "s", "", "scenario name to run")
}

func runScenario(cmd *cobra.Command, _ []string) error {
	name, err := selectScenario(cmd)
	if err != nil {
		return fmt.Errorf("failed to select scenario: %w", err)
	}

	sc, err := simulation.DefaultRegistry.Get(name)
	if err != nil {
		return fmt.Errorf("failed to get scenario: %w", err)
	}

	scInfos, err := utils.DiscoverScenarios()
	if err != nil {
		return fmt.Errorf("failed to discover scenarios: %w", err)
	}

	var scConfig *simulation.ScenarioConfig
	for _, info := range scInfos {
		if info.Config.Name == name {
			scConfig = &info.Config
			break
		}
	}

	if scConfig == nil {
		return fmt.Errorf("scenario configuration not found for %s", name)
	}

	params, err := utils.PromptForParameters(scConfig.Parameters)
	if err != nil {
		return fmt.Errorf("failed to get parameters: %w", err)
	}

	if err := sc.Configure(params); err != nil {
		return fmt.Errorf("failed to configure scenario: %w", err)
	}

	w := world.New(intParam(params, "num_drones", 5), intParam(params, "tick_rate_hz", 240))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Warn("\nReceived interrupt signal, stopping scenario...")
		if err := sc.Stop(); err != nil {
			logger.Errorf("Failed to stop scenario: %v", err)
			return
		}
		cancel()
	}()

	logger.Section(fmt.Sprintf("Starting %s", sc.Name()))
	if err := sc.Run(ctx, w); err != nil {
		return fmt.Errorf("scenario failed: %w", err)
	}

	logger.Success("Scenario completed successfully")
	return nil
}

func selectScenario(cmd *cobra.Command) (string, error) {
	// Check if scenario is specified via flag
	name, _ := cmd.Flags().GetString("scenario")
	if name != "" {
		return name, nil
	}

	// Discover available scenarios
	scInfos, err := utils.DiscoverScenarios()
	if err != nil {
		return "", err
	}

	if len(scInfos) == 0 {
		return "", fmt.Errorf("no scenarios found")
	}

	// Build options for selection
	options := make([]string, len(scInfos))
	descriptions := make(map[string]string)

	for i, info := range scInfos {
		options[i] = info.Config.Name
		descriptions[info.Config.Name] = info.Config.Description
	}

	// Interactive selection
	var selected string
	prompt := &survey.Select{
		Message: "Select scenario:",
		Options: options,
		Description: func(value string, index int) string {
			return descriptions[value]
		},
	}

	if err := survey.AskOne(prompt, &selected); err != nil {
		return "", err
	}

	return selected, nil
}

// intParam reads an integer parameter tolerant of float values from yaml.
func intParam(params map[string]interface{}, key string, def int) int {
	if v, ok := params[key]; ok {
		switch val := v.(type) {
		case int:
			return val
		case float64:
			return int(val)
		}
	}
	return def
}
