package graph

import (
	"strings"
	"testing"

	vpcplan "github.com/lex00/vpcplan-aws-go"
	"github.com/lex00/vpcplan-aws-go/internal/planner"
)

func testResult() *planner.Result {
	return &planner.Result{
		Order: []string{"VPC", "WebRouteTable", "WebSubnetA"},
		Template: &vpcplan.Template{
			Resources: map[string]vpcplan.ResourceDef{
				"VPC":           {Type: "AWS::EC2::VPC"},
				"WebRouteTable": {Type: "AWS::EC2::RouteTable", DependsOn: []string{"VPC"}},
				"WebSubnetA":    {Type: "AWS::EC2::Subnet", DependsOn: []string{"VPC"}},
			},
		},
	}
}

func TestGenerator_Generate_SimpleGraph(t *testing.T) {
	gen := &Generator{}
	var sb strings.Builder
	if err := gen.Generate(testResult(), &sb); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := sb.String()

	if !strings.Contains(output, "digraph") {
		t.Error("expected digraph declaration")
	}
	if !strings.Contains(output, "VPC") {
		t.Error("expected VPC node")
	}
	if !strings.Contains(output, "AWS::EC2::Subnet") {
		t.Error("expected subnet type label")
	}
}

func TestGenerator_Generate_Mermaid(t *testing.T) {
	gen := &Generator{Format: FormatMermaid}
	output, err := gen.GenerateString(testResult())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(output, "graph") {
		t.Error("expected mermaid graph declaration")
	}
}

func TestGenerator_Generate_Clustered(t *testing.T) {
	gen := &Generator{ClusterByService: true}
	output, err := gen.GenerateString(testResult())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(output, "cluster_EC2") {
		t.Error("expected EC2 cluster")
	}
}

func TestExtractService(t *testing.T) {
	if got := extractService("AWS::RAM::ResourceShare"); got != "RAM" {
		t.Errorf("extractService = %q, want RAM", got)
	}
	if got := extractService("weird"); got != "Other" {
		t.Errorf("extractService = %q, want Other", got)
	}
}
