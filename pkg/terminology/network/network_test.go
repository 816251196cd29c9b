package network

import (
	"testing"

	"github.com/syyyclover/ocean-terminology/pkg/terminology/associate"
	"github.com/syyyclover/ocean-terminology/pkg/terminology/relation"
)

func TestBuildNodesKeepRequestOrder(t *testing.T) {
	net := Build([]string{"风暴潮", "海啸", "海冰"}, nil)
	if len(net.Nodes) != 3 {
		t.Fatalf("got %d nodes, want 3", len(net.Nodes))
	}
	want := []string{"风暴潮", "海啸", "海冰"}
	for i, w := range want {
		if net.Nodes[i].ID != w || net.Nodes[i].Name != w {
			t.Errorf("node %d = %+v, want id/name %q", i, net.Nodes[i], w)
		}
	}
}

func TestBuildDeduplicatesTerms(t *testing.T) {
	net := Build([]string{"风暴潮", "风暴潮"}, nil)
	if len(net.Nodes) != 1 {
		t.Fatalf("got %d nodes, want 1 after dedupe", len(net.Nodes))
	}
}

func TestBuildLinkTypes(t *testing.T) {
	records := []associate.Record{
		{Key: "R01", TermA: "海洋灾害", TermB: "风暴潮", Relation: relation.Hierarchical, Confidence: 0.8},
		{Key: "R02", TermA: "风暴潮", TermB: "海岸侵蚀", Relation: relation.Causal, Confidence: 0.7},
	}
	net := Build([]string{"海洋灾害", "风暴潮", "海岸侵蚀"}, records)

	if len(net.Links) != 2 {
		t.Fatalf("got %d links, want 2", len(net.Links))
	}
	if net.Links[0].Type != "hierarchical" {
		t.Errorf("link 0 type = %q, want hierarchical", net.Links[0].Type)
	}
	if net.Links[1].Type != "causal" {
		t.Errorf("link 1 type = %q, want causal", net.Links[1].Type)
	}
	if net.Links[0].Source != "海洋灾害" || net.Links[0].Target != "风暴潮" {
		t.Errorf("link 0 endpoints = %s->%s", net.Links[0].Source, net.Links[0].Target)
	}
}

func TestBuildDegreeGrouping(t *testing.T) {
	// 风暴潮 has degree 3 (core), its three neighbors degree 1 (connected),
	// 海冰 degree 0 (isolated).
	terms := []string{"风暴潮", "海洋灾害", "海岸侵蚀", "预警系统", "海冰"}
	records := []associate.Record{
		{Key: "R01", TermA: "海洋灾害", TermB: "风暴潮", Relation: relation.Hierarchical, Confidence: 0.8},
		{Key: "R02", TermA: "风暴潮", TermB: "海岸侵蚀", Relation: relation.Causal, Confidence: 0.7},
		{Key: "R03", TermA: "风暴潮", TermB: "预警系统", Relation: relation.Causal, Confidence: 0.7},
	}
	net := Build(terms, records)

	groups := make(map[string]int)
	for _, n := range net.Nodes {
		groups[n.ID] = n.Group
	}
	if groups["风暴潮"] != GroupCore {
		t.Errorf("风暴潮 group = %d, want core", groups["风暴潮"])
	}
	for _, id := range []string{"海洋灾害", "海岸侵蚀", "预警系统"} {
		if groups[id] != GroupConnected {
			t.Errorf("%s group = %d, want connected", id, groups[id])
		}
	}
	if groups["海冰"] != GroupIsolated {
		t.Errorf("海冰 group = %d, want isolated", groups["海冰"])
	}

	if len(net.Communities.Core) != 1 || net.Communities.Core[0] != "风暴潮" {
		t.Errorf("core community = %v", net.Communities.Core)
	}
	if len(net.Communities.Connected) != 3 {
		t.Errorf("connected community = %v", net.Communities.Connected)
	}
	if len(net.Communities.Isolated) != 1 || net.Communities.Isolated[0] != "海冰" {
		t.Errorf("isolated community = %v", net.Communities.Isolated)
	}
}

func TestBuildEmpty(t *testing.T) {
	net := Build(nil, nil)
	if len(net.Nodes) != 0 || len(net.Links) != 0 {
		t.Errorf("empty build produced nodes/links: %+v", net)
	}
}
