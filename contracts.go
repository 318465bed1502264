// Package vpcplan_aws provides the plan contract for the three-tier VPC planner.
//
// The planner carves one /16 address block into tier/zone subnets and
// derives a dependency-ordered graph of routing and egress resources
// from the carving:
//
//	alloc, err := allocator.Allocate(block)
//	plan, err := planner.Plan(cfg)
//
// The resulting Template is an immutable value handed to a provisioning
// engine; the planner itself never creates cloud resources.
package vpcplan_aws

// Resource represents a planned cloud resource.
// All resource types (ec2.Subnet, iam.Role, ram.ResourceShare, ...)
// implement this interface.
type Resource interface {
	// ResourceType returns the CloudFormation type (e.g., "AWS::EC2::Subnet")
	ResourceType() string
}

// Template is the assembled plan, shaped as a CloudFormation template
// so the provisioning engine can realize it directly.
type Template struct {
	AWSTemplateFormatVersion string                 `json:"AWSTemplateFormatVersion" yaml:"AWSTemplateFormatVersion"`
	Description              string                 `json:"Description,omitempty" yaml:"Description,omitempty"`
	Resources                map[string]ResourceDef `json:"Resources" yaml:"Resources"`
	Outputs                  map[string]Output      `json:"Outputs,omitempty" yaml:"Outputs,omitempty"`
}

// ResourceDef is a single node in the plan.
type ResourceDef struct {
	Type       string         `json:"Type" yaml:"Type"`
	Properties map[string]any `json:"Properties,omitempty" yaml:"Properties,omitempty"`
	DependsOn  []string       `json:"DependsOn,omitempty" yaml:"DependsOn,omitempty"`
}

// Output is an exported value of the plan (VPC id, subnet ids).
type Output struct {
	Description string `json:"Description,omitempty" yaml:"Description,omitempty"`
	Value       any    `json:"Value" yaml:"Value"`
	Export      *struct {
		Name string `json:"Name" yaml:"Name"`
	} `json:"Export,omitempty" yaml:"Export,omitempty"`
}

// PlanResult is the JSON output from `vpcplan-aws plan`.
type PlanResult struct {
	Success   bool     `json:"success"`
	Template  Template `json:"template,omitempty"`
	Resources []string `json:"resources,omitempty"`
	Errors    []string `json:"errors,omitempty"`
}

// ValidateResult is the JSON output from `vpcplan-aws validate`.
type ValidateResult struct {
	Success   bool     `json:"success"`
	Resources int      `json:"resources"`
	Errors    []string `json:"errors,omitempty"`
	Warnings  []string `json:"warnings,omitempty"`
}
