// Package topology derives the core routing graph from an allocation.
//
// The builder emits the network container, the internet gateway with an
// explicit attachment, one route table per tier, one subnet per
// tier/zone slot with its association, and the Web tier's default
// route. It never mutates the allocation; downstream planners (nat,
// endpoints, sharing) consume the returned Topology value.
package topology

import (
	"fmt"
	"strings"

	"github.com/lex00/vpcplan-aws-go/internal/allocator"
	"github.com/lex00/vpcplan-aws-go/intrinsics"
	"github.com/lex00/vpcplan-aws-go/resources/ec2"
)

// Logical names of singleton nodes.
const (
	NameVPC               = "VPC"
	NameInternetGateway   = "InternetGateway"
	NameGatewayAttachment = "GatewayAttachment"
	NameWebDefaultRoute   = "WebDefaultRoute"
)

// InternetCidr is the default-route destination.
const InternetCidr = "0.0.0.0/0"

// ZoneSuffix derives a per-zone suffix from the zone's position.
// Zone identifiers themselves are late-bound platform tokens, so names
// must never be built from their literal values.
func ZoneSuffix(zone int) string {
	return string(rune('A' + zone))
}

// RouteTableName returns the logical name of a tier's route table.
func RouteTableName(t allocator.Tier) string {
	return t.String() + "RouteTable"
}

// SubnetName returns the logical name of a tier/zone subnet.
func SubnetName(t allocator.Tier, zone int) string {
	return t.String() + "Subnet" + ZoneSuffix(zone)
}

// AssociationName returns the logical name of a subnet's route table
// association.
func AssociationName(t allocator.Tier, zone int) string {
	return SubnetName(t, zone) + "Association"
}

// Topology is the core resource graph derived from an allocation.
type Topology struct {
	Allocation  allocator.Allocation
	Environment string

	VPC        ec2.VPC
	Gateway    ec2.InternetGateway
	Attachment ec2.VPCGatewayAttachment

	RouteTables  [allocator.TierCount]ec2.RouteTable
	Subnets      [allocator.TierCount][allocator.ZoneCount]ec2.Subnet
	Associations [allocator.TierCount][allocator.ZoneCount]ec2.SubnetRouteTableAssociation

	// WebDefaultRoute sends internet traffic from the Web tier through
	// the gateway. The other tiers get no gateway route here: App's
	// default route belongs to the NAT planner and Data has none.
	WebDefaultRoute ec2.Route
}

// Build constructs the topology for the given allocation.
func Build(alloc allocator.Allocation, env string) Topology {
	topo := Topology{
		Allocation:  alloc,
		Environment: env,
	}

	topo.VPC = ec2.VPC{
		CidrBlock:          alloc.TopLevel().String(),
		EnableDnsSupport:   true,
		EnableDnsHostnames: true,
		InstanceTenancy:    "default",
		Tags:               nameTags(env, "vpc"),
	}

	topo.Gateway = ec2.InternetGateway{
		Tags: nameTags(env, "igw"),
	}

	// Attached explicitly: a VPC declared without a built-in subnet
	// layout does not reliably create the attachment on its own.
	topo.Attachment = ec2.VPCGatewayAttachment{
		InternetGatewayId: intrinsics.Ref{LogicalName: NameInternetGateway},
		VpcId:             intrinsics.Ref{LogicalName: NameVPC},
	}

	for _, tier := range allocator.Tiers {
		topo.RouteTables[tier] = ec2.RouteTable{
			VpcId: intrinsics.Ref{LogicalName: NameVPC},
			Tags:  nameTags(env, strings.ToLower(tier.String())+"-rt"),
		}

		for zone := 0; zone < allocator.ZoneCount; zone++ {
			topo.Subnets[tier][zone] = ec2.Subnet{
				VpcId:               intrinsics.Ref{LogicalName: NameVPC},
				CidrBlock:           alloc.Block(tier, zone).String(),
				AvailabilityZone:    intrinsics.Select{Index: zone, List: intrinsics.GetAZs{}},
				MapPublicIpOnLaunch: tier.Public(),
				Tags: nameTags(env, fmt.Sprintf("%s-%s",
					strings.ToLower(tier.String()), strings.ToLower(ZoneSuffix(zone)))),
			}

			topo.Associations[tier][zone] = ec2.SubnetRouteTableAssociation{
				SubnetId:     intrinsics.Ref{LogicalName: SubnetName(tier, zone)},
				RouteTableId: intrinsics.Ref{LogicalName: RouteTableName(tier)},
			}
		}
	}

	topo.WebDefaultRoute = ec2.Route{
		RouteTableId:         intrinsics.Ref{LogicalName: RouteTableName(allocator.Web)},
		DestinationCidrBlock: InternetCidr,
		GatewayId:            intrinsics.Ref{LogicalName: NameInternetGateway},
	}

	return topo
}

// nameTags builds the standard Name/Environment tag pair.
func nameTags(env, suffix string) []any {
	return []any{
		intrinsics.Tag{Key: "Name", Value: env + "-" + suffix},
		intrinsics.Tag{Key: "Environment", Value: env},
	}
}
