// Package catalog holds the immutable reference data the engine computes
// over: the nutrient table, the product table, the conflict rule table, and
// the synergy table. A Catalog is built once, validated, and then only read,
// so it is safe to share across concurrent requests.
package catalog

import (
	"context"
	"fmt"

	"github.com/sundial-labs/sundial-engine/pkg/apperrors"
	"github.com/sundial-labs/sundial-engine/pkg/models"
)

// Source loads catalog data from somewhere: the built-in static tables or a
// relational store. The detection and scheduling code is written once over
// Catalog and never knows which source produced it.
type Source interface {
	Load(ctx context.Context) (*Catalog, error)
}

// Catalog is the validated, immutable reference dataset.
type Catalog struct {
	nutrients map[string]models.Nutrient
	products  map[string]models.Product
	order     []string // product iteration order, catalog definition order
	rules     []models.ConflictRule
	synergies []models.Synergy
}

// New validates the given reference data and builds a Catalog. Every product
// ingredient and every rule nutrient must resolve against the nutrient table;
// dangling references are a construction error, not a runtime concern.
func New(nutrients []models.Nutrient, products []models.Product, rules []models.ConflictRule, synergies []models.Synergy) (*Catalog, error) {
	c := &Catalog{
		nutrients: make(map[string]models.Nutrient, len(nutrients)),
		products:  make(map[string]models.Product, len(products)),
	}

	for _, n := range nutrients {
		if n.ID == "" {
			return nil, fmt.Errorf("nutrient %q has no id", n.Name)
		}
		if _, dup := c.nutrients[n.ID]; dup {
			return nil, fmt.Errorf("duplicate nutrient id %s", n.ID)
		}
		c.nutrients[n.ID] = n
	}

	for _, p := range products {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.products[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %s", p.ID)
		}
		for _, ing := range p.Ingredients {
			if _, ok := c.nutrients[ing.NutrientID]; !ok {
				return nil, fmt.Errorf("product %s references unknown nutrient %s", p.ID, ing.NutrientID)
			}
		}
		c.products[p.ID] = p
		c.order = append(c.order, p.ID)
	}

	for i := range rules {
		r := rules[i]
		if err := r.Validate(); err != nil {
			return nil, err
		}
		for _, id := range []string{r.NutrientA, r.NutrientB} {
			if _, ok := c.nutrients[id]; !ok {
				return nil, fmt.Errorf("rule %s/%s references unknown nutrient %s", r.NutrientA, r.NutrientB, id)
			}
		}
		if r.Condition != nil {
			if r.Condition.NutrientID != r.NutrientA && r.Condition.NutrientID != r.NutrientB {
				return nil, fmt.Errorf("rule %s/%s condition references nutrient %s outside the pair",
					r.NutrientA, r.NutrientB, r.Condition.NutrientID)
			}
		}
	}
	c.rules = append(c.rules, rules...)

	for _, s := range synergies {
		if len(s.Nutrients) < 2 {
			return nil, fmt.Errorf("synergy %s needs at least two nutrients", s.ID)
		}
		for _, id := range s.Nutrients {
			if _, ok := c.nutrients[id]; !ok {
				return nil, fmt.Errorf("synergy %s references unknown nutrient %s", s.ID, id)
			}
		}
	}
	c.synergies = append(c.synergies, synergies...)

	return c, nil
}

// Nutrient looks up a nutrient by id.
func (c *Catalog) Nutrient(id string) (models.Nutrient, bool) {
	n, ok := c.nutrients[id]
	return n, ok
}

// Product looks up a product by id.
func (c *Catalog) Product(id string) (models.Product, bool) {
	p, ok := c.products[id]
	return p, ok
}

// Products returns all catalog products in definition order.
func (c *Catalog) Products() []models.Product {
	out := make([]models.Product, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.products[id])
	}
	return out
}

// Nutrients returns all nutrients. Order is unspecified.
func (c *Catalog) Nutrients() []models.Nutrient {
	out := make([]models.Nutrient, 0, len(c.nutrients))
	for _, n := range c.nutrients {
		out = append(out, n)
	}
	return out
}

// Rules returns the conflict rule table.
func (c *Catalog) Rules() []models.ConflictRule {
	return c.rules
}

// Synergies returns the synergy table.
func (c *Catalog) Synergies() []models.Synergy {
	return c.synergies
}

// ResolveProducts maps product ids to products, failing on the first unknown
// id so that "no conflicts" is never silently conflated with "bad input".
func (c *Catalog) ResolveProducts(ids []string) ([]models.Product, error) {
	out := make([]models.Product, 0, len(ids))
	for _, id := range ids {
		p, ok := c.products[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrUnknownProduct, id)
		}
		out = append(out, p)
	}
	return out, nil
}

// StaticSource serves the built-in reference tables.
type StaticSource struct{}

// Load builds the default catalog from the compiled-in tables.
func (StaticSource) Load(ctx context.Context) (*Catalog, error) {
	return Default()
}
