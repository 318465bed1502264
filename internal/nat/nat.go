// Package nat plans the egress compute placement for the App tier.
//
// A single NAT instance in the first public subnet backs the App tier's
// default route. There is no failover placement; the Data tier gets no
// default route at all.
package nat

import (
	"github.com/lex00/vpcplan-aws-go/internal/allocator"
	"github.com/lex00/vpcplan-aws-go/internal/topology"
	"github.com/lex00/vpcplan-aws-go/intrinsics"
	"github.com/lex00/vpcplan-aws-go/resources/ec2"
	"github.com/lex00/vpcplan-aws-go/resources/iam"
)

// Logical names of NAT nodes.
const (
	NameSecurityGroup   = "NatSecurityGroup"
	NameRole            = "NatRole"
	NameInstanceProfile = "NatInstanceProfile"
	NameInstance        = "NatInstance"
	NameAppDefaultRoute = "AppDefaultRoute"
)

const (
	// defaultImage resolves to the current Amazon Linux AMI at
	// provisioning time.
	defaultImage = "{{resolve:ssm:/aws/service/ami-amazon-linux-latest/al2023-ami-kernel-default-x86_64}}"

	defaultInstanceType = "t3.micro"

	// ssmCorePolicy grants remote session access and nothing broader.
	ssmCorePolicy = "arn:aws:iam::aws:policy/AmazonSSMManagedInstanceCore"
)

// Placement is the planned NAT egress: the instance, its security and
// identity configuration, and the App tier default route it backs.
type Placement struct {
	SecurityGroup ec2.SecurityGroup
	Role          iam.Role
	Profile       iam.InstanceProfile
	Instance      ec2.Instance

	// AppDefaultRoute sends App tier internet traffic through the
	// instance.
	AppDefaultRoute ec2.Route

	// SubnetName is the logical name of the hosting public subnet.
	SubnetName string
}

// Plan places the NAT instance in the first Web tier subnet and wires
// its route. The bootstrap payload is attached verbatim; the planner
// never interprets it.
func Plan(topo topology.Topology, bootstrap string) Placement {
	env := topo.Environment
	off := false

	p := Placement{
		// Deterministic: always the index 0 public subnet.
		SubnetName: topology.SubnetName(allocator.Web, 0),
	}

	p.SecurityGroup = ec2.SecurityGroup{
		GroupDescription: "NAT instance ingress for " + env,
		VpcId:            intrinsics.Ref{LogicalName: topology.NameVPC},
		SecurityGroupIngress: []ec2.SecurityGroupRule{
			{
				IpProtocol: "-1",
				// Trust boundary is the whole planned network, not just
				// the App tier. Broader than the routes require; see
				// DESIGN.md before narrowing.
				CidrIp:      topo.Allocation.TopLevel().String(),
				Description: "all traffic from the planned network",
			},
		},
		Tags: []any{intrinsics.Tag{Key: "Name", Value: env + "-nat-sg"}},
	}

	p.Role = iam.Role{
		RoleName: env + "-nat-role",
		AssumeRolePolicyDocument: intrinsics.PolicyDocument{
			Version: "2012-10-17",
			Statement: []any{
				intrinsics.PolicyStatement{
					Effect:    "Allow",
					Principal: intrinsics.ServicePrincipal{"ec2.amazonaws.com"},
					Action:    []any{"sts:AssumeRole"},
				},
			},
		},
		ManagedPolicyArns: []any{ssmCorePolicy},
	}

	p.Profile = iam.InstanceProfile{
		Roles: []any{intrinsics.Ref{LogicalName: NameRole}},
	}

	p.Instance = ec2.Instance{
		ImageId:            defaultImage,
		InstanceType:       defaultInstanceType,
		SubnetId:           intrinsics.Ref{LogicalName: p.SubnetName},
		SecurityGroupIds:   []any{intrinsics.Ref{LogicalName: NameSecurityGroup}},
		IamInstanceProfile: intrinsics.Ref{LogicalName: NameInstanceProfile},
		// Mandatory for forwarding: the platform drops forwarded
		// packets when the check is on.
		SourceDestCheck: &off,
		UserData:        intrinsics.Base64{Value: bootstrap},
		Tags:            []any{intrinsics.Tag{Key: "Name", Value: env + "-nat"}},
	}

	p.AppDefaultRoute = ec2.Route{
		RouteTableId:         intrinsics.Ref{LogicalName: topology.RouteTableName(allocator.App)},
		DestinationCidrBlock: topology.InternetCidr,
		InstanceId:           intrinsics.Ref{LogicalName: NameInstance},
	}

	return p
}
