package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/panyam/queuemodels/export"
	"github.com/panyam/queuemodels/logging"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export [file.yaml]",
	Short: "Write scenario metrics in the Prometheus text format",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		models, err := loadScenario(args[0])
		if err != nil {
			return err
		}

		if exportOutput == "" || exportOutput == "-" {
			return export.WriteText(cmd.OutOrStdout(), models)
		}

		f, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("creating %s: %w", exportOutput, err)
		}
		defer f.Close()
		if err := export.WriteText(f, models); err != nil {
			return err
		}
		logging.Info("wrote metrics for %d queues to %s", len(models), exportOutput)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")
	AddCommand(exportCmd)
}
