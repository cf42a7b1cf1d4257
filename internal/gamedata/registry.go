package gamedata

import (
	"errors"

	"github.com/samdwyer/dungeonsofdoom/internal/random"
)

// ItemRegistry holds loaded item definitions and provides spawning utilities.
type ItemRegistry struct {
	items   []ItemDef
	weights []int
}

// NewItemRegistry creates a registry from loaded item definitions.
func NewItemRegistry(items []ItemDef) *ItemRegistry {
	weights := make([]int, len(items))
	for i, d := range items {
		weights[i] = d.SpawnWeight
	}
	return &ItemRegistry{
		items:   items,
		weights: weights,
	}
}

// LoadItemRegistry loads and creates a registry from the embedded items.json.
func LoadItemRegistry() (*ItemRegistry, error) {
	items, err := LoadItems()
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errors.New("no items loaded from items.json")
	}
	return NewItemRegistry(items), nil
}

// MustLoadItemRegistry loads a registry, panicking on error.
func MustLoadItemRegistry() *ItemRegistry {
	registry, err := LoadItemRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// SpawnRandom selects a random item definition using weighted probability.
// Items with a spawnWeight of 0 (the staircase) are never selected.
func (r *ItemRegistry) SpawnRandom(rng random.Source) *ItemDef {
	i := random.WeightedIndex(rng, r.weights)
	if i < 0 {
		return nil
	}
	return &r.items[i]
}

// RandomName picks one of the definition's specific names, falling back to
// the generic name when the list is empty.
func (r *ItemRegistry) RandomName(def *ItemDef, rng random.Source) string {
	if len(def.Names) == 0 {
		return def.Name
	}
	return def.Names[rng.Intn(len(def.Names))]
}

// GetByID returns the item definition with the given ID, or nil if not found.
func (r *ItemRegistry) GetByID(id string) *ItemDef {
	for i := range r.items {
		if r.items[i].ID == id {
			return &r.items[i]
		}
	}
	return nil
}

// Count returns the number of item kinds in the registry.
func (r *ItemRegistry) Count() int {
	return len(r.items)
}
