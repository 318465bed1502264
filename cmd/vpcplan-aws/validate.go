package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	vpcplan "github.com/lex00/vpcplan-aws-go"
	"github.com/lex00/vpcplan-aws-go/internal/config"
	"github.com/lex00/vpcplan-aws-go/internal/validation"
)

// newValidateCmd creates the "validate" subcommand for checking planner input.
func newValidateCmd() *cobra.Command {
	var (
		configPath   string
		outputFormat string
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration and the rendered plan",
		Long: `Validate plans from the configuration and checks the result.

Checks performed:
  - Input validity: config fields present, top-level block prefix is /16
  - Template validity: rendered plan passes cfn-lint

Examples:
    vpcplan-aws validate -c vpcplan.yaml
    vpcplan-aws validate -c vpcplan.yaml --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(configPath, outputFormat)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "vpcplan.yaml", "Planner configuration file")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "Output format: text or json")

	return cmd
}

func runValidate(configPath, format string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	result, err := validation.ValidatePlan(cfg)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	return outputValidateResult(*result, format)
}

func outputValidateResult(result vpcplan.ValidateResult, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		if !result.Success {
			return fmt.Errorf("validation failed")
		}
		return nil

	case "text":
		if result.Success {
			fmt.Printf("Validation passed: %d resources OK\n", result.Resources)
			return nil
		}

		fmt.Println("Validation FAILED:")
		for _, errMsg := range result.Errors {
			fmt.Printf("  error: %s\n", errMsg)
		}
		for _, warnMsg := range result.Warnings {
			fmt.Printf("  warning: %s\n", warnMsg)
		}
		return fmt.Errorf("validation failed")

	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
