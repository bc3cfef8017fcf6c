package commands

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/panyam/queuemodels/queues"
)

var (
	warnThreshold     float64
	criticalThreshold float64
)

var utilizationCmd = &cobra.Command{
	Use:   "utilization [file.yaml]",
	Short: "Show server utilization of every queue in a scenario",
	Long: `Report the utilization of every server pool (and every priority class)
declared in a scenario file, flagging the bottleneck.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		models, err := loadScenario(args[0])
		if err != nil {
			return err
		}

		var infos []queues.UtilizationInfo
		for _, n := range models {
			for _, info := range n.Model.GetUtilizationInfo() {
				info.ComponentPath = n.Name
				if cmd.Flags().Changed("warning") {
					info.WarningThreshold = warnThreshold
				}
				if cmd.Flags().Changed("critical") {
					info.CriticalThreshold = criticalThreshold
				}
				infos = append(infos, info)
			}
		}
		bottleneck := queues.GetBottleneckUtilization(infos)

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, headColor.Sprintf("%-20s %-12s %10s %10s %10s  %s", "QUEUE", "RESOURCE", "UTIL", "CAPACITY", "LOAD", "STATUS"))
		fmt.Fprintln(out, strings.Repeat("─", 76))
		for _, info := range infos {
			status := statusColor(info.Status()).Sprint(info.Status())
			if info.IsBottleneck {
				status += " (bottleneck)"
			}
			fmt.Fprintf(out, "%-20s %-12s %10s %10s %10s  %s\n",
				info.ComponentPath, info.ResourceName,
				formatValue(info.Utilization), formatValue(info.Capacity), formatValue(info.CurrentLoad),
				status)
		}

		if bottleneck != nil {
			fmt.Fprintf(out, "\nBottleneck: %s/%s at %s\n", bottleneck.ComponentPath, bottleneck.ResourceName, formatValue(bottleneck.Utilization))
		} else {
			fmt.Fprintln(out, "\nNo bottleneck: no queue has a positive utilization.")
		}
		return nil
	},
}

func statusColor(status string) *color.Color {
	switch status {
	case "INVALID", "UNSTABLE", "CRITICAL":
		return color.New(color.FgRed)
	case "WARNING":
		return color.New(color.FgYellow)
	case "MODERATE":
		return color.New(color.FgCyan)
	}
	return color.New(color.FgGreen)
}

func init() {
	utilizationCmd.Flags().Float64Var(&warnThreshold, "warning", queues.DefaultWarningThreshold, "Utilization at which a resource is flagged WARNING")
	utilizationCmd.Flags().Float64Var(&criticalThreshold, "critical", queues.DefaultCriticalThreshold, "Utilization at which a resource is flagged CRITICAL")
	AddCommand(utilizationCmd)
}
