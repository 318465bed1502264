package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lex00/vpcplan-aws-go/internal/config"
	"github.com/lex00/vpcplan-aws-go/internal/graph"
	"github.com/lex00/vpcplan-aws-go/internal/planner"
)

func newGraphCmd() *cobra.Command {
	var (
		configPath       string
		outputFormat     string
		clusterByService bool
	)

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Generate DOT graph of plan dependencies",
		Long: `Generate a DOT or Mermaid format graph of the plan's dependency order.

The output can be rendered with Graphviz:
    vpcplan-aws graph -c vpcplan.yaml | dot -Tpng -o plan.png

Or used in GitHub markdown (Mermaid format):
    vpcplan-aws graph -c vpcplan.yaml -f mermaid

Examples:
    vpcplan-aws graph -c vpcplan.yaml
    vpcplan-aws graph -c vpcplan.yaml --cluster      # cluster by service
    vpcplan-aws graph -c vpcplan.yaml -f mermaid`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGraph(configPath, outputFormat, clusterByService)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "vpcplan.yaml", "Planner configuration file")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "dot", "Output format: dot or mermaid")
	cmd.Flags().BoolVar(&clusterByService, "cluster", false, "Cluster nodes by AWS service")

	return cmd
}

func runGraph(configPath, format string, cluster bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	result, err := planner.Plan(cfg)
	if err != nil {
		return fmt.Errorf("planning failed: %w", err)
	}

	var graphFormat graph.Format
	switch format {
	case "dot":
		graphFormat = graph.FormatDOT
	case "mermaid":
		graphFormat = graph.FormatMermaid
	default:
		return fmt.Errorf("unknown format: %s (use 'dot' or 'mermaid')", format)
	}

	gen := &graph.Generator{
		Format:           graphFormat,
		ClusterByService: cluster,
	}

	return gen.Generate(result, os.Stdout)
}
