// Package depgraph turns the package managers' native dependency graph
// output into SPDX DEPENDS_ON relationships.
package depgraph

import (
	"encoding/json"

	"github.com/sbomweld/sbomweld/common"
)

// Edge is one directed dependency between two package names.
type Edge struct {
	Parent string
	Child  string
}

// maxDepth bounds the npm tree walk. Real trees stay far below this; the
// guard only matters for pathological or hand-crafted input.
const maxDepth = 256

type pipenvNode struct {
	Package struct {
		Key              string `json:"key"`
		PackageName      string `json:"package_name"`
		InstalledVersion string `json:"installed_version"`
	} `json:"package"`
	Dependencies []struct {
		Key              string `json:"key"`
		PackageName      string `json:"package_name"`
		InstalledVersion string `json:"installed_version"`
		RequiredVersion  string `json:"required_version"`
	} `json:"dependencies"`
}

// ParsePipenvGraph reads `pipenv graph --json` output: a flat list of nodes,
// each with its direct dependencies.
func ParsePipenvGraph(blob []byte) ([]Edge, error) {
	nodes := []pipenvNode{}
	if err := json.Unmarshal(blob, &nodes); err != nil {
		return nil, err
	}
	seen := make(map[Edge]bool)
	edges := make([]Edge, 0, len(nodes))
	for _, node := range nodes {
		parent := node.Package.Key
		if len(parent) == 0 {
			continue
		}
		for _, dependency := range node.Dependencies {
			if len(dependency.Key) == 0 {
				continue
			}
			edge := Edge{Parent: parent, Child: dependency.Key}
			if seen[edge] {
				continue
			}
			seen[edge] = true
			edges = append(edges, edge)
		}
	}
	return edges, nil
}

type npmNode struct {
	Version      string             `json:"version"`
	Dependencies map[string]npmNode `json:"dependencies"`
}

type npmTree struct {
	Name         string             `json:"name"`
	Version      string             `json:"version"`
	Dependencies map[string]npmNode `json:"dependencies"`
}

type npmVisit struct {
	name  string
	node  npmNode
	depth int
}

// ParseNpmTree reads `npm ls --all --json` output and walks the whole nested
// tree iteratively. The same child reached under different parents yields
// one edge per distinct parent; an already-seen edge is not descended into
// again, which bounds the walk on shared or cyclic sub-dependencies.
func ParseNpmTree(blob []byte) ([]Edge, error) {
	tree := npmTree{}
	if err := json.Unmarshal(blob, &tree); err != nil {
		return nil, err
	}
	seen := make(map[Edge]bool)
	edges := []Edge{}
	stack := []npmVisit{{name: tree.Name, node: npmNode{Dependencies: tree.Dependencies}, depth: 0}}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if current.depth >= maxDepth {
			common.Debug("Dependency tree deeper than %d below %q, pruning walk.", maxDepth, current.name)
			continue
		}
		for childName, childNode := range current.node.Dependencies {
			edge := Edge{Parent: current.name, Child: childName}
			if seen[edge] {
				continue
			}
			seen[edge] = true
			edges = append(edges, edge)
			stack = append(stack, npmVisit{name: childName, node: childNode, depth: current.depth + 1})
		}
	}
	return edges, nil
}
