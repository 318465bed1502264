package planner

import (
	"errors"
	"fmt"
	"sort"

	vpcplan "github.com/lex00/vpcplan-aws-go"
	"github.com/lex00/vpcplan-aws-go/internal/serialize"
)

// node is a named plan entry with its explicit prerequisites.
type node struct {
	resource vpcplan.Resource
	deps     []string
}

// assembler collects named nodes and emits them as a template in
// dependency order.
type assembler struct {
	nodes map[string]node
}

func newAssembler() *assembler {
	return &assembler{nodes: make(map[string]node)}
}

// add registers a node. Names are fixed by the planning components, so
// a duplicate is a planner bug, not an input error.
func (a *assembler) add(name string, r vpcplan.Resource, deps ...string) error {
	if _, exists := a.nodes[name]; exists {
		return fmt.Errorf("duplicate node %s", name)
	}
	a.nodes[name] = node{resource: r, deps: deps}
	return nil
}

// build serializes all nodes into a template. Fails without partial
// output when a dependency is unknown or circular.
func (a *assembler) build(description string) (*vpcplan.Template, []string, error) {
	for name, n := range a.nodes {
		for _, dep := range n.deps {
			if _, exists := a.nodes[dep]; !exists {
				return nil, nil, fmt.Errorf("node %s depends on unknown node %s", name, dep)
			}
		}
	}

	order, err := a.topologicalSort()
	if err != nil {
		return nil, nil, err
	}

	template := &vpcplan.Template{
		AWSTemplateFormatVersion: "2010-09-09",
		Description:              description,
		Resources:                make(map[string]vpcplan.ResourceDef),
	}

	for _, name := range order {
		n := a.nodes[name]

		props, err := serialize.Resource(n.resource)
		if err != nil {
			return nil, nil, fmt.Errorf("serializing %s: %w", name, err)
		}

		template.Resources[name] = vpcplan.ResourceDef{
			Type:       n.resource.ResourceType(),
			Properties: props,
			DependsOn:  n.deps,
		}
	}

	return template, order, nil
}

// topologicalSort returns node names in dependency order.
func (a *assembler) topologicalSort() ([]string, error) {
	graph := make(map[string][]string)
	inDegree := make(map[string]int)

	for name := range a.nodes {
		graph[name] = nil
		inDegree[name] = 0
	}

	for name, n := range a.nodes {
		for _, dep := range n.deps {
			graph[dep] = append(graph[dep], name)
			inDegree[name]++
		}
	}

	// Kahn's algorithm
	var queue []string
	for name, degree := range inDegree {
		if degree == 0 {
			queue = append(queue, name)
		}
	}
	sort.Strings(queue) // Deterministic order

	var result []string
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		result = append(result, n)

		for _, neighbor := range graph[n] {
			inDegree[neighbor]--
			if inDegree[neighbor] == 0 {
				queue = append(queue, neighbor)
				sort.Strings(queue) // Keep sorted for determinism
			}
		}
	}

	if len(result) != len(a.nodes) {
		return nil, a.detectCycle()
	}

	return result, nil
}

// detectCycle finds and reports a cycle in the dependency graph.
func (a *assembler) detectCycle() error {
	visited := make(map[string]bool)
	path := make(map[string]bool)

	var cycle []string
	var findCycle func(name string) bool
	findCycle = func(name string) bool {
		visited[name] = true
		path[name] = true

		for _, dep := range a.nodes[name].deps {
			if !visited[dep] {
				if findCycle(dep) {
					cycle = append([]string{name}, cycle...)
					return true
				}
			} else if path[dep] {
				cycle = append([]string{dep, name}, cycle...)
				return true
			}
		}

		path[name] = false
		return false
	}

	for name := range a.nodes {
		if !visited[name] {
			if findCycle(name) {
				break
			}
		}
	}

	if len(cycle) > 0 {
		msg := "circular dependency detected: "
		for i, name := range cycle {
			if i > 0 {
				msg += " → "
			}
			msg += name
		}
		return errors.New(msg)
	}

	return errors.New("circular dependency detected")
}
