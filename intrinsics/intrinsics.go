// Package intrinsics provides CloudFormation intrinsic functions.
//
// This package re-exports the core intrinsic types from
// cloudformation-schema-go and adds IAM policy-specific types.
//
// Core intrinsic functions:
//
//	Ref{LogicalName: "WebRouteTable"} → {"Ref": "WebRouteTable"}
//	Sub{String: "${AWS::StackName}-vpc"} → {"Fn::Sub": "${AWS::StackName}-vpc"}
//	Select{Index: 0, List: GetAZs{}} → {"Fn::Select": [0, {"Fn::GetAZs": ""}]}
//
// The Select/GetAZs pair is how the planner refers to availability
// zones: zones are late-bound platform tokens, so the plan only ever
// names them by position.
package intrinsics

import (
	"github.com/lex00/cloudformation-schema-go/intrinsics"
)

// Re-export core intrinsic types from shared package.
type (
	// Ref represents a CloudFormation Ref intrinsic function.
	Ref = intrinsics.Ref

	// GetAtt represents a CloudFormation Fn::GetAtt intrinsic function.
	GetAtt = intrinsics.GetAtt

	// Sub represents a CloudFormation Fn::Sub intrinsic function.
	Sub = intrinsics.Sub

	// Join represents a CloudFormation Fn::Join intrinsic function.
	Join = intrinsics.Join

	// Select represents a CloudFormation Fn::Select intrinsic function.
	Select = intrinsics.Select

	// GetAZs represents a CloudFormation Fn::GetAZs intrinsic function.
	GetAZs = intrinsics.GetAZs

	// Base64 represents a CloudFormation Fn::Base64 intrinsic function.
	Base64 = intrinsics.Base64

	// Tag represents a CloudFormation resource tag.
	Tag = intrinsics.Tag
)
