// Package graph generates DOT and Mermaid format dependency graphs from
// an assembled plan.
package graph

import (
	"io"
	"strings"

	"github.com/emicklei/dot"

	"github.com/lex00/vpcplan-aws-go/internal/planner"
)

// Format specifies the output format for the graph.
type Format string

const (
	// FormatDOT outputs Graphviz DOT format.
	FormatDOT Format = "dot"
	// FormatMermaid outputs Mermaid format for GitHub/markdown rendering.
	FormatMermaid Format = "mermaid"
)

// Generator creates dependency graphs from a plan.
type Generator struct {
	// Format specifies the output format (dot or mermaid). Defaults to dot.
	Format Format

	// ClusterByService groups nodes by AWS service.
	ClusterByService bool
}

// Generate draws the plan's dependency graph and writes it to w.
func (g *Generator) Generate(result *planner.Result, w io.Writer) error {
	graph := g.buildGraph(result)

	format := g.Format
	if format == "" {
		format = FormatDOT
	}

	var output string
	if format == FormatMermaid {
		output = dot.MermaidGraph(graph, dot.MermaidTopToBottom)
	} else {
		output = graph.String()
	}

	_, err := w.Write([]byte(output))
	return err
}

// GenerateString is a convenience method that returns the graph as a string.
func (g *Generator) GenerateString(result *planner.Result) (string, error) {
	var sb strings.Builder
	if err := g.Generate(result, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// buildGraph creates the dot.Graph structure from the plan.
func (g *Generator) buildGraph(result *planner.Result) *dot.Graph {
	graph := dot.NewGraph(dot.Directed)
	graph.Attr("rankdir", "TB")

	graph.NodeInitializer(func(n dot.Node) {
		n.Attr("shape", "box")
		n.Attr("fontname", "Arial")
	})

	graph.EdgeInitializer(func(e dot.Edge) {
		e.Attr("fontname", "Arial")
		e.Attr("fontsize", "10")
	})

	if g.ClusterByService {
		g.addClusteredNodes(graph, result)
	} else {
		g.addNodes(graph, result)
	}

	for _, name := range result.Order {
		def := result.Template.Resources[name]
		for _, dep := range def.DependsOn {
			graph.Edge(graph.Node(name), graph.Node(dep))
		}
	}

	return graph
}

// addNodes adds plan nodes without clustering, in construction order.
func (g *Generator) addNodes(graph *dot.Graph, result *planner.Result) {
	for _, name := range result.Order {
		n := graph.Node(name)
		n.Label(name + "\\n[" + result.Template.Resources[name].Type + "]")
	}
}

// addClusteredNodes adds plan nodes grouped by AWS service.
func (g *Generator) addClusteredNodes(graph *dot.Graph, result *planner.Result) {
	serviceNodes := make(map[string][]string)
	for _, name := range result.Order {
		service := extractService(result.Template.Resources[name].Type)
		serviceNodes[service] = append(serviceNodes[service], name)
	}

	for service, names := range serviceNodes {
		if len(names) > 1 {
			cluster := graph.Subgraph("cluster_"+service, dot.ClusterOption{})
			cluster.Attr("label", service)
			cluster.Attr("style", "rounded")
			cluster.Attr("bgcolor", "lightyellow")

			for _, name := range names {
				n := cluster.Node(name)
				n.Label(name + "\\n[" + result.Template.Resources[name].Type + "]")
			}
		} else {
			for _, name := range names {
				n := graph.Node(name)
				n.Label(name + "\\n[" + result.Template.Resources[name].Type + "]")
			}
		}
	}
}

// extractService extracts the AWS service from a CloudFormation type.
// e.g., "AWS::EC2::Subnet" -> "EC2"
func extractService(cfType string) string {
	parts := strings.Split(cfType, "::")
	if len(parts) == 3 {
		return parts[1]
	}
	return "Other"
}
