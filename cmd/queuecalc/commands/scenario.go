package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/panyam/queuemodels/logging"
	"github.com/panyam/queuemodels/scenario"
)

var scenarioCmd = &cobra.Command{
	Use:   "scenario [file.yaml]",
	Short: "Evaluate every queue declared in a scenario file",
	Long: `Load a YAML scenario and print the metrics of every queue in it.

Example scenario:

  queues:
    - name: checkout
      model: mmc
      arrival: 15
      service: 20
      servers: 2
    - name: support
      model: priority
      arrival: [6, 4, 5]
      service: 20
      servers: 2`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		models, err := loadScenario(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for i, n := range models {
			if i > 0 {
				fmt.Fprintln(out)
			}
			printModel(out, n.Name, n.Model)
		}
		return nil
	},
}

func loadScenario(path string) ([]scenario.Named, error) {
	sc, err := scenario.Load(path)
	if err != nil {
		return nil, err
	}
	models, err := sc.Build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logging.Debug("loaded %d queues from %s", len(models), path)
	return models, nil
}

func init() {
	AddCommand(scenarioCmd)
}
