package conflict

import "github.com/sundial-labs/sundial-engine/pkg/models"

// GraphNode is one product in the interaction graph.
type GraphNode struct {
	ProductID   string                 `json:"productId"`
	ProductName string                 `json:"productName"`
	Brand       string                 `json:"brand"`
	Category    models.ProductCategory `json:"category"`
}

// GraphEdge is one detected interaction between two products. Weight grows
// with severity so renderers can scale edge emphasis without re-deriving it.
type GraphEdge struct {
	From     string              `json:"from"`
	To       string              `json:"to"`
	Severity models.Severity     `json:"severity"`
	Type     models.ConflictType `json:"type"`
	Weight   int                 `json:"weight"`
	Synergy  bool                `json:"synergy"`
	Label    string              `json:"label"`
}

// Graph is the product interaction graph for one stack.
type Graph struct {
	Nodes []GraphNode `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
}

const synergyEdgeWeight = 2

// BuildGraph assembles the interaction graph from detected conflicts and
// synergies. Every product becomes a node even when it has no edges.
func BuildGraph(products []models.Product, conflicts []models.Conflict, synergies []models.DetectedSynergy) *Graph {
	g := &Graph{
		Nodes: make([]GraphNode, 0, len(products)),
		Edges: []GraphEdge{},
	}
	for _, p := range products {
		g.Nodes = append(g.Nodes, GraphNode{ProductID: p.ID, ProductName: p.Name, Brand: p.Brand, Category: p.Category})
	}

	for _, c := range conflicts {
		g.Edges = append(g.Edges, GraphEdge{
			From:     c.ProductAID,
			To:       c.ProductBID,
			Severity: c.Severity,
			Type:     c.Type,
			Weight:   c.Severity.Weight(),
			Label:    c.NutrientA + " / " + c.NutrientB,
		})
	}

	for _, s := range synergies {
		// Synergies may span more than two products; emit one edge per pair.
		for i := 0; i < len(s.ProductIDs); i++ {
			for j := i + 1; j < len(s.ProductIDs); j++ {
				g.Edges = append(g.Edges, GraphEdge{
					From:    s.ProductIDs[i],
					To:      s.ProductIDs[j],
					Weight:  synergyEdgeWeight,
					Synergy: true,
					Label:   s.Benefit,
				})
			}
		}
	}
	return g
}

// IsCombinationSafe reports whether the selection carries no conflict at or
// above the given severity. Severity order: LOW < MEDIUM < HIGH < CRITICAL.
func IsCombinationSafe(conflicts []models.Conflict, threshold models.Severity) bool {
	for _, c := range conflicts {
		if c.Severity.Weight() >= threshold.Weight() {
			return false
		}
	}
	return true
}
