// Package iam contains the IAM resource types the planner emits.
package iam

// Role represents an AWS::IAM::Role resource.
type Role struct {
	RoleName any `json:"RoleName,omitempty"`

	// AssumeRolePolicyDocument is the trust policy
	// (intrinsics.PolicyDocument).
	AssumeRolePolicyDocument any `json:"AssumeRolePolicyDocument,omitempty"`

	// ManagedPolicyArns lists attached managed policies.
	ManagedPolicyArns []any `json:"ManagedPolicyArns,omitempty"`

	Tags []any `json:"Tags,omitempty"`
}

// ResourceType returns the CloudFormation type.
func (Role) ResourceType() string { return "AWS::IAM::Role" }

// InstanceProfile represents an AWS::IAM::InstanceProfile resource.
type InstanceProfile struct {
	Roles []any `json:"Roles,omitempty"`
}

// ResourceType returns the CloudFormation type.
func (InstanceProfile) ResourceType() string { return "AWS::IAM::InstanceProfile" }
