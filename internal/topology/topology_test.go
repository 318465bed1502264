package topology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lex00/vpcplan-aws-go/internal/allocator"
	"github.com/lex00/vpcplan-aws-go/internal/netmath"
	"github.com/lex00/vpcplan-aws-go/intrinsics"
)

func buildTopology(t *testing.T) Topology {
	t.Helper()
	block, err := netmath.ParseBlock("10.10.0.0/16")
	require.NoError(t, err)
	alloc, err := allocator.Allocate(block)
	require.NoError(t, err)
	return Build(alloc, "dev")
}

func TestBuild_VPC(t *testing.T) {
	topo := buildTopology(t)

	assert.Equal(t, "10.10.0.0/16", topo.VPC.CidrBlock)
	assert.True(t, topo.VPC.EnableDnsSupport)
	assert.True(t, topo.VPC.EnableDnsHostnames)
}

func TestBuild_ExplicitGatewayAttachment(t *testing.T) {
	topo := buildTopology(t)

	assert.Equal(t, intrinsics.Ref{LogicalName: NameInternetGateway}, topo.Attachment.InternetGatewayId)
	assert.Equal(t, intrinsics.Ref{LogicalName: NameVPC}, topo.Attachment.VpcId)
}

func TestBuild_SubnetsPerTierAndZone(t *testing.T) {
	topo := buildTopology(t)

	wantCidrs := map[allocator.Tier][2]string{
		allocator.Web:  {"10.10.0.0/20", "10.10.16.0/20"},
		allocator.App:  {"10.10.32.0/20", "10.10.48.0/20"},
		allocator.Data: {"10.10.64.0/20", "10.10.80.0/20"},
	}

	for tier, cidrs := range wantCidrs {
		for zone, cidr := range cidrs {
			subnet := topo.Subnets[tier][zone]
			assert.Equal(t, cidr, subnet.CidrBlock)
			assert.Equal(t, tier.Public(), subnet.MapPublicIpOnLaunch,
				"%s zone %d public flag", tier, zone)

			// Zones are positional, never literal identifiers.
			assert.Equal(t,
				intrinsics.Select{Index: zone, List: intrinsics.GetAZs{}},
				subnet.AvailabilityZone)
		}
	}
}

func TestBuild_AssociationsBindSubnetToTierTable(t *testing.T) {
	topo := buildTopology(t)

	for _, tier := range allocator.Tiers {
		for zone := 0; zone < allocator.ZoneCount; zone++ {
			assoc := topo.Associations[tier][zone]
			assert.Equal(t,
				intrinsics.Ref{LogicalName: SubnetName(tier, zone)},
				assoc.SubnetId)
			assert.Equal(t,
				intrinsics.Ref{LogicalName: RouteTableName(tier)},
				assoc.RouteTableId)
		}
	}
}

func TestBuild_WebOnlyDefaultRoute(t *testing.T) {
	topo := buildTopology(t)

	assert.Equal(t, InternetCidr, topo.WebDefaultRoute.DestinationCidrBlock)
	assert.Equal(t,
		intrinsics.Ref{LogicalName: RouteTableName(allocator.Web)},
		topo.WebDefaultRoute.RouteTableId)
	assert.Equal(t,
		intrinsics.Ref{LogicalName: NameInternetGateway},
		topo.WebDefaultRoute.GatewayId)
	assert.Nil(t, topo.WebDefaultRoute.InstanceId)
}

func TestNaming_PositionalSuffixes(t *testing.T) {
	assert.Equal(t, "WebSubnetA", SubnetName(allocator.Web, 0))
	assert.Equal(t, "DataSubnetB", SubnetName(allocator.Data, 1))
	assert.Equal(t, "AppRouteTable", RouteTableName(allocator.App))
	assert.Equal(t, "AppSubnetBAssociation", AssociationName(allocator.App, 1))
}
