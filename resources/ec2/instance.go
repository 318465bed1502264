package ec2

// SecurityGroupRule is an ingress or egress rule on a security group.
type SecurityGroupRule struct {
	// IpProtocol is the protocol name or number; "-1" means all.
	IpProtocol string `json:"IpProtocol,omitempty"`

	// CidrIp is the IPv4 range the rule applies to.
	CidrIp string `json:"CidrIp,omitempty"`

	// FromPort and ToPort bound the port range. Omitted for "-1".
	FromPort *int `json:"FromPort,omitempty"`
	ToPort   *int `json:"ToPort,omitempty"`

	Description string `json:"Description,omitempty"`
}

// SecurityGroup represents an AWS::EC2::SecurityGroup resource.
type SecurityGroup struct {
	GroupDescription     string              `json:"GroupDescription,omitempty"`
	VpcId                any                 `json:"VpcId,omitempty"`
	SecurityGroupIngress []SecurityGroupRule `json:"SecurityGroupIngress,omitempty"`
	SecurityGroupEgress  []SecurityGroupRule `json:"SecurityGroupEgress,omitempty"`
	Tags                 []any               `json:"Tags,omitempty"`
}

// ResourceType returns the CloudFormation type.
func (SecurityGroup) ResourceType() string { return "AWS::EC2::SecurityGroup" }

// Instance represents an AWS::EC2::Instance resource.
type Instance struct {
	ImageId      any    `json:"ImageId,omitempty"`
	InstanceType string `json:"InstanceType,omitempty"`

	// SubnetId references the hosting subnet.
	SubnetId any `json:"SubnetId,omitempty"`

	SecurityGroupIds   []any `json:"SecurityGroupIds,omitempty"`
	IamInstanceProfile any   `json:"IamInstanceProfile,omitempty"`

	// SourceDestCheck must be pointed at false on forwarding instances;
	// the platform drops forwarded packets otherwise. A pointer so that
	// an explicit false survives serialization.
	SourceDestCheck *bool `json:"SourceDestCheck,omitempty"`

	// UserData is an opaque bootstrap payload, attached verbatim
	// (wrapped in Base64 by the planner, never interpreted).
	UserData any `json:"UserData,omitempty"`

	Tags []any `json:"Tags,omitempty"`
}

// ResourceType returns the CloudFormation type.
func (Instance) ResourceType() string { return "AWS::EC2::Instance" }
