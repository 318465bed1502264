package ec2

// Subnet represents an AWS::EC2::Subnet resource.
type Subnet struct {
	// VpcId references the owning VPC.
	VpcId any `json:"VpcId,omitempty"`

	// CidrBlock is the IPv4 CIDR block for the subnet.
	CidrBlock string `json:"CidrBlock,omitempty"`

	// AvailabilityZone is a positional zone reference
	// (Select{Index, GetAZs{}}), resolved by the platform at build time.
	AvailabilityZone any `json:"AvailabilityZone,omitempty"`

	// MapPublicIpOnLaunch indicates whether launched instances receive
	// public addresses. Set only for internet-facing subnets.
	MapPublicIpOnLaunch bool `json:"MapPublicIpOnLaunch,omitempty"`

	Tags []any `json:"Tags,omitempty"`
}

// ResourceType returns the CloudFormation type.
func (Subnet) ResourceType() string { return "AWS::EC2::Subnet" }

// RouteTable represents an AWS::EC2::RouteTable resource.
type RouteTable struct {
	VpcId any   `json:"VpcId,omitempty"`
	Tags  []any `json:"Tags,omitempty"`
}

// ResourceType returns the CloudFormation type.
func (RouteTable) ResourceType() string { return "AWS::EC2::RouteTable" }

// Route represents an AWS::EC2::Route resource.
// Exactly one of GatewayId or InstanceId is set per route.
type Route struct {
	// RouteTableId references the owning route table.
	RouteTableId any `json:"RouteTableId,omitempty"`

	// DestinationCidrBlock is the route destination.
	DestinationCidrBlock string `json:"DestinationCidrBlock,omitempty"`

	// GatewayId targets an internet gateway.
	GatewayId any `json:"GatewayId,omitempty"`

	// InstanceId targets a NAT instance.
	InstanceId any `json:"InstanceId,omitempty"`
}

// ResourceType returns the CloudFormation type.
func (Route) ResourceType() string { return "AWS::EC2::Route" }

// SubnetRouteTableAssociation binds a subnet to a route table.
type SubnetRouteTableAssociation struct {
	SubnetId     any `json:"SubnetId,omitempty"`
	RouteTableId any `json:"RouteTableId,omitempty"`
}

// ResourceType returns the CloudFormation type.
func (SubnetRouteTableAssociation) ResourceType() string {
	return "AWS::EC2::SubnetRouteTableAssociation"
}
