package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	vpcplan "github.com/lex00/vpcplan-aws-go"
	"github.com/lex00/vpcplan-aws-go/internal/config"
	"github.com/lex00/vpcplan-aws-go/internal/planner"
)

func newPlanCmd() *cobra.Command {
	var (
		configPath   string
		outputFormat string
		outputFile   string
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate the network plan template from configuration",
		Long: `Plan partitions the configured /16 block and derives the full
dependency-ordered resource graph.

Examples:
    vpcplan-aws plan -c vpcplan.yaml
    vpcplan-aws plan -c vpcplan.yaml -o plan.json
    vpcplan-aws plan -c vpcplan.yaml --format yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(configPath, outputFormat, outputFile)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "vpcplan.yaml", "Planner configuration file")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "Output format: json or yaml")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")

	return cmd
}

func runPlan(configPath, format, outputFile string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	result, err := planner.Plan(cfg)
	if err != nil {
		planResult := vpcplan.PlanResult{
			Success: false,
			Errors:  []string{err.Error()},
		}
		return outputResult(planResult, format, outputFile)
	}

	planResult := vpcplan.PlanResult{
		Success:   true,
		Template:  *result.Template,
		Resources: result.Order,
	}

	return outputResult(planResult, format, outputFile)
}

func outputResult(result vpcplan.PlanResult, format, outputFile string) error {
	// Planning failures go to stderr; no partial template is written.
	if !result.Success {
		for _, e := range result.Errors {
			fmt.Fprintln(os.Stderr, e)
		}
		return fmt.Errorf("planning failed")
	}

	var data []byte
	var err error

	switch format {
	case "json":
		data, err = planner.ToJSON(&result.Template)
	case "yaml":
		data, err = planner.ToYAML(&result.Template)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if err != nil {
		return err
	}

	if outputFile == "" {
		fmt.Println(string(data))
		return nil
	}

	return os.WriteFile(outputFile, data, 0644)
}
