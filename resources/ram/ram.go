// Package ram contains the Resource Access Manager types the planner emits.
package ram

// ResourceShare represents an AWS::RAM::ResourceShare resource.
type ResourceShare struct {
	Name any `json:"Name,omitempty"`

	// ResourceArns lists the shared resources (subnet ARNs).
	ResourceArns []any `json:"ResourceArns,omitempty"`

	// Principals are the target account identifiers receiving access.
	Principals []any `json:"Principals,omitempty"`

	// AllowExternalPrincipals stays false: only principals inside the
	// owning organization may be named; the provisioning engine
	// enforces membership.
	AllowExternalPrincipals *bool `json:"AllowExternalPrincipals,omitempty"`

	Tags []any `json:"Tags,omitempty"`
}

// ResourceType returns the CloudFormation type.
func (ResourceShare) ResourceType() string { return "AWS::RAM::ResourceShare" }
