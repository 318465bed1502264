// Package ec2 contains the EC2 resource types the planner emits.
//
// Types follow CloudFormation property naming; fields that may carry a
// reference or intrinsic (Ref, Select, Base64, ...) are typed any.
//
// Example:
//
//	var WebSubnetA = ec2.Subnet{
//	    VpcId:            intrinsics.Ref{LogicalName: "VPC"},
//	    CidrBlock:        "10.10.0.0/20",
//	    AvailabilityZone: intrinsics.Select{Index: 0, List: intrinsics.GetAZs{}},
//	}
package ec2
