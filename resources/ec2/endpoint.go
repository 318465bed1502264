package ec2

// VPCEndpoint represents an AWS::EC2::VPCEndpoint resource.
// The planner only emits gateway endpoints, which reach a service
// through route-table entries rather than network interfaces.
type VPCEndpoint struct {
	// ServiceName names the target service
	// (e.g., "com.amazonaws.${AWS::Region}.s3").
	ServiceName any `json:"ServiceName,omitempty"`

	VpcId any `json:"VpcId,omitempty"`

	// VpcEndpointType is "Gateway" for route-table endpoints.
	VpcEndpointType string `json:"VpcEndpointType,omitempty"`

	// RouteTableIds lists the route tables the endpoint attaches to.
	RouteTableIds []any `json:"RouteTableIds,omitempty"`

	Tags []any `json:"Tags,omitempty"`
}

// ResourceType returns the CloudFormation type.
func (VPCEndpoint) ResourceType() string { return "AWS::EC2::VPCEndpoint" }
