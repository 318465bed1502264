// Package sharing produces the cross-account subnet sharing plan.
package sharing

import (
	"github.com/lex00/vpcplan-aws-go/internal/allocator"
	"github.com/lex00/vpcplan-aws-go/internal/topology"
	"github.com/lex00/vpcplan-aws-go/intrinsics"
	"github.com/lex00/vpcplan-aws-go/resources/ram"
)

// NameResourceShare is the logical name of the share node.
const NameResourceShare = "SubnetShare"

// Plan builds a resource share covering every subnet across all three
// tiers, including the isolated Data tier. The second return value is
// false when no principals are configured: that is a valid
// configuration, not an error, and no share node is emitted.
func Plan(topo topology.Topology, principals []string) (ram.ResourceShare, bool) {
	if len(principals) == 0 {
		return ram.ResourceShare{}, false
	}

	share := ram.ResourceShare{
		Name: topo.Environment + "-subnet-share",
		// Only principals inside the owning organization may be named;
		// the provisioning engine enforces membership.
		AllowExternalPrincipals: boolPtr(false),
		Tags: []any{
			intrinsics.Tag{Key: "Name", Value: topo.Environment + "-subnet-share"},
		},
	}

	for _, tier := range allocator.Tiers {
		for zone := 0; zone < allocator.ZoneCount; zone++ {
			share.ResourceArns = append(share.ResourceArns, subnetArn(tier, zone))
		}
	}

	for _, principal := range principals {
		share.Principals = append(share.Principals, principal)
	}

	return share, true
}

// subnetArn renders a subnet reference as an ARN resolved at
// provisioning time.
func subnetArn(t allocator.Tier, zone int) intrinsics.Sub {
	return intrinsics.Sub{
		String: "arn:aws:ec2:${AWS::Region}:${AWS::AccountId}:subnet/${" +
			topology.SubnetName(t, zone) + "}",
	}
}

func boolPtr(b bool) *bool { return &b }
