// Command vpcplan-aws plans a segmented three-tier network from one /16 block.
//
// Usage:
//
//	vpcplan-aws plan -c vpcplan.yaml       Generate the plan template
//	vpcplan-aws validate -c vpcplan.yaml   Check input and rendered plan
//	vpcplan-aws graph -c vpcplan.yaml      Draw the plan's dependency graph
//	vpcplan-aws version                    Show version
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "vpcplan-aws",
		Short: "Plan a three-tier VPC from one /16 block",
		Long: `vpcplan-aws deterministically partitions one /16 address block into
tier/zone subnets and derives a dependency-ordered plan of routing and
egress resources over the partition.

The plan is rendered as a CloudFormation template; provisioning it is
the job of an external engine:

    vpcplan-aws plan -c vpcplan.yaml -o plan.yaml --format yaml`,
	}

	rootCmd.AddCommand(
		newPlanCmd(),
		newValidateCmd(),
		newGraphCmd(),
		newWatchCmd(),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("vpcplan-aws %s\n", getVersion())
		},
	}
}
