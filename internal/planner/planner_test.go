package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lex00/vpcplan-aws-go/internal/allocator"
	"github.com/lex00/vpcplan-aws-go/internal/config"
	"github.com/lex00/vpcplan-aws-go/internal/netmath"
	"github.com/lex00/vpcplan-aws-go/internal/sharing"
)

func baseConfig() *config.Config {
	return &config.Config{
		CidrBlock:    "10.10.0.0/16",
		Environment:  "dev",
		NatBootstrap: "#!/bin/sh\n",
	}
}

func TestPlan_ResourceCount(t *testing.T) {
	result, err := Plan(baseConfig())
	require.NoError(t, err)

	// 3 container/gateway nodes, 3 route tables, 6 subnets,
	// 6 associations, 1 web route, 5 NAT nodes, 2 endpoints.
	assert.Len(t, result.Template.Resources, 26)
	assert.Len(t, result.Order, 26)
	assert.NotContains(t, result.Template.Resources, sharing.NameResourceShare)
}

func TestPlan_SharePlanOnlyWithPrincipals(t *testing.T) {
	cfg := baseConfig()
	cfg.SharePrincipals = []string{"111111111111"}

	result, err := Plan(cfg)
	require.NoError(t, err)

	share, ok := result.Template.Resources[sharing.NameResourceShare]
	require.True(t, ok)
	assert.Equal(t, "AWS::RAM::ResourceShare", share.Type)

	arns, ok := share.Properties["ResourceArns"].([]any)
	require.True(t, ok)
	assert.Len(t, arns, 6)
}

func TestPlan_DefaultRoutePlacement(t *testing.T) {
	result, err := Plan(baseConfig())
	require.NoError(t, err)

	counts := map[string]int{}
	for _, def := range result.Template.Resources {
		if def.Type != "AWS::EC2::Route" {
			continue
		}
		require.Equal(t, "0.0.0.0/0", def.Properties["DestinationCidrBlock"])

		table, ok := def.Properties["RouteTableId"].(map[string]any)
		require.True(t, ok)
		name, ok := table["Ref"].(string)
		require.True(t, ok)
		counts[name]++

		switch name {
		case "WebRouteTable":
			assert.Contains(t, def.Properties, "GatewayId")
			assert.NotContains(t, def.Properties, "InstanceId")
		case "AppRouteTable":
			assert.Contains(t, def.Properties, "InstanceId")
			assert.NotContains(t, def.Properties, "GatewayId")
		default:
			t.Fatalf("unexpected default route on %s", name)
		}
	}

	assert.Equal(t, 1, counts["WebRouteTable"])
	assert.Equal(t, 1, counts["AppRouteTable"])
	assert.Zero(t, counts["DataRouteTable"])
}

func TestPlan_ConstructionOrder(t *testing.T) {
	cfg := baseConfig()
	cfg.SharePrincipals = []string{"111111111111"}

	result, err := Plan(cfg)
	require.NoError(t, err)

	position := make(map[string]int, len(result.Order))
	for i, name := range result.Order {
		position[name] = i
	}

	for name, def := range result.Template.Resources {
		for _, dep := range def.DependsOn {
			assert.Less(t, position[dep], position[name],
				"%s must be planned before %s", dep, name)
		}
	}
}

func TestPlan_InvalidPrefixFailsBeforeAnyNode(t *testing.T) {
	cfg := baseConfig()
	cfg.CidrBlock = "10.10.0.0/24"

	result, err := Plan(cfg)
	assert.Nil(t, result)

	var perr *allocator.InvalidTopLevelPrefixError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 24, perr.Prefix)
}

func TestPlan_MalformedAddressFails(t *testing.T) {
	cfg := baseConfig()
	cfg.CidrBlock = "10.10.0.300/16"

	result, err := Plan(cfg)
	assert.Nil(t, result)

	var merr *netmath.MalformedAddressError
	assert.ErrorAs(t, err, &merr)
}

func TestPlan_Deterministic(t *testing.T) {
	first, err := Plan(baseConfig())
	require.NoError(t, err)
	second, err := Plan(baseConfig())
	require.NoError(t, err)

	assert.Equal(t, first.Order, second.Order)
	assert.Equal(t, first.Template, second.Template)
}

func TestPlan_NatInstanceProperties(t *testing.T) {
	result, err := Plan(baseConfig())
	require.NoError(t, err)

	instance := result.Template.Resources["NatInstance"]
	assert.Equal(t, "AWS::EC2::Instance", instance.Type)
	assert.Equal(t, false, instance.Properties["SourceDestCheck"])

	subnet, ok := instance.Properties["SubnetId"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "WebSubnetA", subnet["Ref"])

	userData, ok := instance.Properties["UserData"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "#!/bin/sh\n", userData["Fn::Base64"])
}

func TestAssembler_RejectsCycles(t *testing.T) {
	a := newAssembler()
	require.NoError(t, a.add("A", fakeResource{}, "B"))
	require.NoError(t, a.add("B", fakeResource{}, "A"))

	_, _, err := a.build("test")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "circular dependency")
}

func TestAssembler_RejectsUnknownDependency(t *testing.T) {
	a := newAssembler()
	require.NoError(t, a.add("A", fakeResource{}, "Missing"))

	_, _, err := a.build("test")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown node")
}

func TestAssembler_RejectsDuplicateNames(t *testing.T) {
	a := newAssembler()
	require.NoError(t, a.add("A", fakeResource{}))
	assert.Error(t, a.add("A", fakeResource{}))
}

type fakeResource struct{}

func (fakeResource) ResourceType() string { return "AWS::Test::Resource" }
