// Package network builds the term association graph from accepted
// association records, grouping nodes by connection degree.
package network

import (
	"github.com/syyyclover/ocean-terminology/pkg/terminology/associate"
	"github.com/syyyclover/ocean-terminology/pkg/terminology/relation"
)

// Node group constants by connection degree.
const (
	GroupCore      = 1 // degree >= 3
	GroupConnected = 2 // degree 1..2
	GroupIsolated  = 3 // degree 0
)

// Node is one requested term in the graph.
type Node struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Group int    `json:"group"`
}

// Link is one accepted association between two terms.
type Link struct {
	Source     string  `json:"source"`
	Target     string  `json:"target"`
	Type       string  `json:"type"`
	Confidence float64 `json:"confidence"`
}

// Network is the full association graph. Communities partitions node IDs
// by degree band; every node appears in exactly one band.
type Network struct {
	Nodes       []Node      `json:"nodes"`
	Links       []Link      `json:"links"`
	Communities Communities `json:"communities"`
}

// Communities lists node IDs per degree band, in node order.
type Communities struct {
	Core      []string `json:"core_nodes"`
	Connected []string `json:"connected_nodes"`
	Isolated  []string `json:"isolated_nodes"`
}

// Build constructs the graph for the requested terms from accepted
// association records. Terms keep their request order as node order; links
// keep record order.
func Build(terms []string, records []associate.Record) Network {
	net := Network{
		Nodes: make([]Node, 0, len(terms)),
		Links: make([]Link, 0, len(records)),
	}

	degree := make(map[string]int, len(terms))
	for _, term := range terms {
		if _, dup := degree[term]; dup {
			continue
		}
		degree[term] = 0
		net.Nodes = append(net.Nodes, Node{ID: term, Name: term})
	}

	for _, rec := range records {
		net.Links = append(net.Links, Link{
			Source:     rec.TermA,
			Target:     rec.TermB,
			Type:       linkType(rec.Relation),
			Confidence: rec.Confidence,
		})
		degree[rec.TermA]++
		degree[rec.TermB]++
	}

	for i := range net.Nodes {
		node := &net.Nodes[i]
		switch d := degree[node.ID]; {
		case d >= 3:
			node.Group = GroupCore
			net.Communities.Core = append(net.Communities.Core, node.ID)
		case d >= 1:
			node.Group = GroupConnected
			net.Communities.Connected = append(net.Communities.Connected, node.ID)
		default:
			node.Group = GroupIsolated
			net.Communities.Isolated = append(net.Communities.Isolated, node.ID)
		}
	}
	return net
}

func linkType(r relation.Relation) string {
	switch r {
	case relation.Hierarchical:
		return "hierarchical"
	case relation.Causal:
		return "causal"
	default:
		return "other"
	}
}
