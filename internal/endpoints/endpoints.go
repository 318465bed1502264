// Package endpoints attaches service-reachability shortcuts to the App
// tier's route table.
package endpoints

import (
	"github.com/lex00/vpcplan-aws-go/internal/allocator"
	"github.com/lex00/vpcplan-aws-go/internal/topology"
	"github.com/lex00/vpcplan-aws-go/intrinsics"
	"github.com/lex00/vpcplan-aws-go/resources/ec2"
)

// Logical names of the endpoint nodes, derived from the tier prefix.
const (
	NameS3       = "AppS3Endpoint"
	NameDynamoDB = "AppDynamoDBEndpoint"
)

// Endpoints holds the two gateway endpoints the planner always emits.
// Structurally these are always attachable once the App route table
// exists, so planning them cannot fail.
type Endpoints struct {
	S3       ec2.VPCEndpoint
	DynamoDB ec2.VPCEndpoint
}

// Plan wires S3 and DynamoDB gateway endpoints into the App route table.
// Logical names carry the tier prefix; the environment lands in tags.
func Plan(topo topology.Topology) Endpoints {
	return Endpoints{
		S3:       gatewayEndpoint(topo.Environment, "s3"),
		DynamoDB: gatewayEndpoint(topo.Environment, "dynamodb"),
	}
}

func gatewayEndpoint(env, service string) ec2.VPCEndpoint {
	return ec2.VPCEndpoint{
		ServiceName:     intrinsics.Sub{String: "com.amazonaws.${AWS::Region}." + service},
		VpcId:           intrinsics.Ref{LogicalName: topology.NameVPC},
		VpcEndpointType: "Gateway",
		RouteTableIds: []any{
			intrinsics.Ref{LogicalName: topology.RouteTableName(allocator.App)},
		},
		Tags: []any{
			intrinsics.Tag{Key: "Name", Value: env + "-app-" + service + "-endpoint"},
			intrinsics.Tag{Key: "Environment", Value: env},
		},
	}
}
