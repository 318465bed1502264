package ec2

// VPC represents an AWS::EC2::VPC resource.
type VPC struct {
	// CidrBlock is the IPv4 CIDR block for the VPC.
	CidrBlock string `json:"CidrBlock,omitempty"`

	// EnableDnsSupport enables DNS resolution through the Amazon DNS server.
	EnableDnsSupport bool `json:"EnableDnsSupport,omitempty"`

	// EnableDnsHostnames assigns DNS hostnames to launched instances.
	EnableDnsHostnames bool `json:"EnableDnsHostnames,omitempty"`

	// InstanceTenancy is the allowed tenancy of instances in the VPC.
	InstanceTenancy string `json:"InstanceTenancy,omitempty"`

	// Tags are key-value pairs to categorize the VPC.
	Tags []any `json:"Tags,omitempty"`
}

// ResourceType returns the CloudFormation type.
func (VPC) ResourceType() string { return "AWS::EC2::VPC" }

// InternetGateway represents an AWS::EC2::InternetGateway resource.
type InternetGateway struct {
	Tags []any `json:"Tags,omitempty"`
}

// ResourceType returns the CloudFormation type.
func (InternetGateway) ResourceType() string { return "AWS::EC2::InternetGateway" }

// VPCGatewayAttachment attaches an internet gateway to a VPC.
//
// The attachment is always emitted explicitly: a VPC declared with no
// built-in subnet layout does not reliably get an implicit one.
type VPCGatewayAttachment struct {
	// InternetGatewayId references the gateway to attach.
	InternetGatewayId any `json:"InternetGatewayId,omitempty"`

	// VpcId references the VPC.
	VpcId any `json:"VpcId,omitempty"`
}

// ResourceType returns the CloudFormation type.
func (VPCGatewayAttachment) ResourceType() string { return "AWS::EC2::VPCGatewayAttachment" }
