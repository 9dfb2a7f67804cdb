package catalog

import (
	"sort"
	"strings"

	"github.com/sundial-labs/sundial-engine/pkg/models"
)

// FindProduct resolves a free-text name (from user input or LLM extraction)
// to a catalog product. Matching is scored: exact id or name, then name/brand
// substring, then token overlap against name, brand and the names and aliases
// of the product's nutrients. Returns nil when nothing scores.
func (c *Catalog) FindProduct(query string) *models.Product {
	q := normalize(query)
	if q == "" {
		return nil
	}

	type scored struct {
		id    string
		score int
	}
	var candidates []scored

	for _, id := range c.order {
		p := c.products[id]
		s := c.scoreProduct(&p, q)
		if s > 0 {
			candidates = append(candidates, scored{id: id, score: s})
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	p := c.products[candidates[0].id]
	return &p
}

func (c *Catalog) scoreProduct(p *models.Product, q string) int {
	name := normalize(p.Name)
	brand := normalize(p.Brand)

	if q == normalize(p.ID) || q == name {
		return 100
	}
	score := 0
	if strings.Contains(name, q) || strings.Contains(q, name) {
		score += 40
	}
	if brand != "" && strings.Contains(q, brand) {
		score += 20
	}

	qTokens := tokens(q)
	score += 10 * overlap(qTokens, tokens(name))

	for _, ing := range p.Ingredients {
		n, ok := c.nutrients[ing.NutrientID]
		if !ok {
			continue
		}
		if matchesNutrient(q, qTokens, n) {
			score += 15
		}
	}
	return score
}

// FindNutrient resolves a free-text name to a nutrient by id, name, common
// name or alias.
func (c *Catalog) FindNutrient(query string) *models.Nutrient {
	q := normalize(query)
	if q == "" {
		return nil
	}
	qTokens := tokens(q)
	for _, n := range c.nutrients {
		if q == normalize(n.ID) || q == normalize(n.Name) || q == normalize(n.CommonName) {
			n := n
			return &n
		}
	}
	var best *models.Nutrient
	for id := range c.nutrients {
		n := c.nutrients[id]
		if matchesNutrient(q, qTokens, n) {
			if best == nil || len(n.ID) < len(best.ID) {
				best = &n
			}
		}
	}
	return best
}

func matchesNutrient(q string, qTokens map[string]bool, n models.Nutrient) bool {
	names := append([]string{n.Name, n.CommonName}, n.Aliases...)
	for _, alias := range names {
		a := normalize(alias)
		if a == "" {
			continue
		}
		if a == q || strings.Contains(q, a) {
			return true
		}
		if overlap(qTokens, tokens(a)) == len(tokens(a)) && len(tokens(a)) > 0 {
			return true
		}
	}
	return false
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func tokens(s string) map[string]bool {
	out := make(map[string]bool)
	for _, t := range strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '-' || r == '_' || r == '/' || r == '(' || r == ')' || r == ','
	}) {
		if len(t) > 1 {
			out[t] = true
		}
	}
	return out
}

func overlap(a, b map[string]bool) int {
	n := 0
	for t := range a {
		if b[t] {
			n++
		}
	}
	return n
}
