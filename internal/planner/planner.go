// Package planner runs the full planning pipeline and assembles the plan.
//
// The pipeline is a single synchronous pass in fixed order: allocate,
// build topology, place NAT, attach endpoints, plan sharing. Each stage
// consumes the previous stage's value; nothing is provisioned and
// nothing is mutated after assembly. Failures are deterministic and
// abort before any node is emitted.
package planner

import (
	"github.com/sirupsen/logrus"

	vpcplan "github.com/lex00/vpcplan-aws-go"
	"github.com/lex00/vpcplan-aws-go/internal/allocator"
	"github.com/lex00/vpcplan-aws-go/internal/config"
	"github.com/lex00/vpcplan-aws-go/internal/endpoints"
	"github.com/lex00/vpcplan-aws-go/internal/nat"
	"github.com/lex00/vpcplan-aws-go/internal/netmath"
	"github.com/lex00/vpcplan-aws-go/internal/sharing"
	"github.com/lex00/vpcplan-aws-go/internal/topology"
	"github.com/lex00/vpcplan-aws-go/intrinsics"
	"github.com/lex00/vpcplan-aws-go/resources/ram"
)

var log = logrus.WithField("module", "planner")

// Result is the finished plan: the template and the node names in
// construction order.
type Result struct {
	Template *vpcplan.Template
	Order    []string
}

// Plan derives the complete resource graph from configuration.
func Plan(cfg *config.Config) (*Result, error) {
	block, err := netmath.ParseBlock(cfg.CidrBlock)
	if err != nil {
		return nil, err
	}

	alloc, err := allocator.Allocate(block)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"block":   block.String(),
		"subnets": len(alloc.Blocks()),
	}).Debug("address space carved")

	topo := topology.Build(alloc, cfg.Environment)
	natp := nat.Plan(topo, cfg.NatBootstrap)
	eps := endpoints.Plan(topo)
	share, shared := sharing.Plan(topo, cfg.SharePrincipals)

	template, order, err := assemble(topo, natp, eps, share, shared)
	if err != nil {
		return nil, err
	}

	log.WithField("resources", len(order)).Debug("plan assembled")
	return &Result{Template: template, Order: order}, nil
}

// assemble registers every node with its prerequisites and emits the
// template. Construction-order correctness lives here: a node only
// names dependencies that were planned before it.
func assemble(
	topo topology.Topology,
	natp nat.Placement,
	eps endpoints.Endpoints,
	share ram.ResourceShare,
	shared bool,
) (*vpcplan.Template, []string, error) {
	a := newAssembler()

	adds := []error{
		a.add(topology.NameVPC, topo.VPC),
		a.add(topology.NameInternetGateway, topo.Gateway),
		a.add(topology.NameGatewayAttachment, topo.Attachment,
			topology.NameVPC, topology.NameInternetGateway),
	}

	var subnetNames []string
	for _, tier := range allocator.Tiers {
		adds = append(adds, a.add(topology.RouteTableName(tier),
			topo.RouteTables[tier], topology.NameVPC))

		for zone := 0; zone < allocator.ZoneCount; zone++ {
			subnetName := topology.SubnetName(tier, zone)
			subnetNames = append(subnetNames, subnetName)

			adds = append(adds,
				a.add(subnetName, topo.Subnets[tier][zone], topology.NameVPC),
				a.add(topology.AssociationName(tier, zone),
					topo.Associations[tier][zone],
					subnetName, topology.RouteTableName(tier)))
		}
	}

	// The gateway route is only valid once the gateway is attached.
	adds = append(adds,
		a.add(topology.NameWebDefaultRoute, topo.WebDefaultRoute,
			topology.RouteTableName(allocator.Web), topology.NameGatewayAttachment),

		a.add(nat.NameSecurityGroup, natp.SecurityGroup, topology.NameVPC),
		a.add(nat.NameRole, natp.Role),
		a.add(nat.NameInstanceProfile, natp.Profile, nat.NameRole),
		a.add(nat.NameInstance, natp.Instance,
			natp.SubnetName, nat.NameSecurityGroup, nat.NameInstanceProfile),
		a.add(nat.NameAppDefaultRoute, natp.AppDefaultRoute,
			topology.RouteTableName(allocator.App), nat.NameInstance),

		a.add(endpoints.NameS3, eps.S3,
			topology.NameVPC, topology.RouteTableName(allocator.App)),
		a.add(endpoints.NameDynamoDB, eps.DynamoDB,
			topology.NameVPC, topology.RouteTableName(allocator.App)),
	)

	if shared {
		adds = append(adds, a.add(sharing.NameResourceShare, share, subnetNames...))
	}

	for _, err := range adds {
		if err != nil {
			return nil, nil, err
		}
	}

	template, order, err := a.build(topo.Environment + " three-tier network plan")
	if err != nil {
		return nil, nil, err
	}

	template.Outputs = buildOutputs(subnetNames)
	return template, order, nil
}

// buildOutputs exports the VPC and subnet ids for downstream stacks.
func buildOutputs(subnetNames []string) map[string]vpcplan.Output {
	outputs := map[string]vpcplan.Output{
		"VpcId": {
			Description: "Id of the planned network container",
			Value:       intrinsics.Ref{LogicalName: topology.NameVPC},
		},
	}
	for _, name := range subnetNames {
		outputs[name+"Id"] = vpcplan.Output{
			Description: "Id of " + name,
			Value:       intrinsics.Ref{LogicalName: name},
		}
	}
	return outputs
}
