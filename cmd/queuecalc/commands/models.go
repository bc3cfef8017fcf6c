package commands

import (
	"github.com/spf13/cobra"

	"github.com/panyam/queuemodels/queues"
)

var (
	lambda     float64
	mu         float64
	servers    float64
	sigma      float64
	classRates []float64
)

func addRateFlags(cmd *cobra.Command) {
	cmd.Flags().Float64VarP(&lambda, "lambda", "l", 0, "Arrival rate (customers per unit time)")
	cmd.Flags().Float64VarP(&mu, "mu", "m", 0, "Service rate per server")
	cmd.MarkFlagRequired("mu")
}

func modelCommand(use, short string, build func() queues.Model) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printModel(cmd.OutOrStdout(), "", build())
		},
	}
}

var mm1Cmd = modelCommand("mm1", "Single server, exponential service (M/M/1)", func() queues.Model {
	return queues.NewMM1Queue(lambda, mu)
})

var md1Cmd = modelCommand("md1", "Single server, deterministic service (M/D/1)", func() queues.Model {
	return queues.NewMD1Queue(lambda, mu)
})

var mg1Cmd = modelCommand("mg1", "Single server, general service (M/G/1)", func() queues.Model {
	return queues.NewMG1Queue(lambda, mu, sigma)
})

var mmcCmd = modelCommand("mmc", "Multiple servers, exponential service (M/M/c)", func() queues.Model {
	return queues.NewMMcQueue(lambda, mu, servers)
})

var priorityCmd = modelCommand("priority", "M/M/c with non-preemptive priority classes", func() queues.Model {
	return queues.NewMMcPriorityQueue(classRates, mu, servers)
})

func init() {
	for _, cmd := range []*cobra.Command{mm1Cmd, md1Cmd, mg1Cmd, mmcCmd} {
		addRateFlags(cmd)
		cmd.MarkFlagRequired("lambda")
	}
	mg1Cmd.Flags().Float64VarP(&sigma, "sigma", "s", 0, "Standard deviation of the service time")
	mmcCmd.Flags().Float64VarP(&servers, "servers", "c", 1, "Number of servers")

	priorityCmd.Flags().Float64VarP(&mu, "mu", "m", 0, "Service rate per server")
	priorityCmd.Flags().Float64VarP(&servers, "servers", "c", 1, "Number of servers")
	priorityCmd.Flags().Float64SliceVarP(&classRates, "classes", "k", nil, "Arrival rate per class, highest priority first (e.g. 6,4,5)")
	priorityCmd.MarkFlagRequired("mu")
	priorityCmd.MarkFlagRequired("classes")

	for _, cmd := range []*cobra.Command{mm1Cmd, md1Cmd, mg1Cmd, mmcCmd, priorityCmd} {
		AddCommand(cmd)
	}
}
