// Package validation checks planner input and the rendered plan.
//
// Two layers:
//   - structural input validation (config fields, block prefix) via the
//     planner itself, which fails fast before emitting any node
//   - template validation of the rendered plan via cfn-lint-go as a
//     library dependency for guaranteed version control
package validation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lex00/cfn-lint-go/pkg/lint"
	"gopkg.in/yaml.v3"

	vpcplan "github.com/lex00/vpcplan-aws-go"
	"github.com/lex00/vpcplan-aws-go/internal/config"
	"github.com/lex00/vpcplan-aws-go/internal/planner"
)

// ValidatePlan plans from the given config and lints the rendered
// template. Input failures surface as errors in the result, not as a
// Go error; the error return is reserved for environmental failures
// (temp file I/O).
func ValidatePlan(cfg *config.Config) (*vpcplan.ValidateResult, error) {
	result := &vpcplan.ValidateResult{}

	if err := cfg.Validate(); err != nil {
		result.Errors = append(result.Errors, err.Error())
		return result, nil
	}

	planned, err := planner.Plan(cfg)
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		return result, nil
	}
	result.Resources = len(planned.Template.Resources)

	lintErrors, lintWarnings, err := lintTemplate(planned.Template)
	if err != nil {
		return nil, err
	}
	result.Errors = append(result.Errors, lintErrors...)
	result.Warnings = append(result.Warnings, lintWarnings...)

	result.Success = len(result.Errors) == 0
	return result, nil
}

// lintTemplate renders the template to a temp file and runs cfn-lint-go.
func lintTemplate(template *vpcplan.Template) (errs, warnings []string, err error) {
	data, err := yaml.Marshal(template)
	if err != nil {
		return nil, nil, fmt.Errorf("rendering template: %w", err)
	}

	dir, err := os.MkdirTemp("", "vpcplan-lint")
	if err != nil {
		return nil, nil, fmt.Errorf("creating lint workspace: %w", err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "plan.yaml")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, nil, fmt.Errorf("writing template: %w", err)
	}

	linter := lint.New(lint.Options{})
	matches, err := linter.LintFile(path)
	if err != nil {
		return []string{fmt.Sprintf("linter error: %v", err)}, nil, nil
	}

	for _, match := range matches {
		formatted := formatMatch(match)
		if match.Level == "Error" {
			errs = append(errs, formatted)
		} else {
			warnings = append(warnings, formatted)
		}
	}

	return errs, warnings, nil
}

// formatMatch formats a cfn-lint-go match for display.
func formatMatch(match lint.Match) string {
	pathStr := ""
	if len(match.Location.Path) > 0 {
		parts := make([]string, len(match.Location.Path))
		for i, p := range match.Location.Path {
			parts[i] = fmt.Sprintf("%v", p)
		}
		pathStr = strings.Join(parts, "/")
	}

	if pathStr != "" {
		return fmt.Sprintf("%s: %s (at %s)", match.Rule.ID, match.Message, pathStr)
	}
	return fmt.Sprintf("%s: %s", match.Rule.ID, match.Message)
}
