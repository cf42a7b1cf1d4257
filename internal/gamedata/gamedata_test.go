package gamedata

import (
	"math/rand"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadItems(t *testing.T) {
	items, err := LoadItems()
	require.NoError(t, err)

	expected := map[string]int{
		"scroll":    15,
		"ring":      15,
		"potion":    15,
		"weapon":    15,
		"armor":     15,
		"stick":     15,
		"gold":      10,
		"staircase": 0,
	}
	require.Len(t, items, len(expected))

	total := 0
	for _, d := range items {
		weight, ok := expected[d.ID]
		require.True(t, ok, "unexpected item kind %q", d.ID)
		assert.Equal(t, weight, d.SpawnWeight, "spawn weight of %s", d.ID)
		total += d.SpawnWeight
	}
	assert.Equal(t, 100, total, "weights are percentages")
}

func TestItemRegistrySpawnRandom(t *testing.T) {
	registry := MustLoadItemRegistry()

	rng := rand.New(rand.NewSource(7))
	counts := map[string]int{}
	for i := 0; i < 5000; i++ {
		def := registry.SpawnRandom(rng)
		require.NotNil(t, def)
		counts[def.ID]++
	}

	assert.Zero(t, counts["staircase"], "staircase never spawns randomly")
	for _, id := range []string{"scroll", "ring", "potion", "weapon", "armor", "stick", "gold"} {
		assert.Positive(t, counts[id], "%s should spawn", id)
	}
	// gold (10%) is rarer than each 15% kind on a sample this large
	assert.Less(t, counts["gold"], counts["scroll"])
}

func TestItemRegistryDeterministic(t *testing.T) {
	registry := MustLoadItemRegistry()

	rng1 := rand.New(rand.NewSource(12345))
	rng2 := rand.New(rand.NewSource(12345))

	for i := 0; i < 20; i++ {
		assert.Equal(t, registry.SpawnRandom(rng1).ID, registry.SpawnRandom(rng2).ID)
	}
}

func TestItemRegistryLookup(t *testing.T) {
	registry := MustLoadItemRegistry()

	assert.Equal(t, 8, registry.Count())

	weapon := registry.GetByID("weapon")
	require.NotNil(t, weapon)
	assert.Equal(t, ')', weapon.GlyphRune())
	assert.Contains(t, weapon.Names, "mace")

	assert.Nil(t, registry.GetByID("amulet"))

	rng := rand.New(rand.NewSource(1))
	assert.Contains(t, weapon.Names, registry.RandomName(weapon, rng))
	assert.Equal(t, "gold", registry.RandomName(registry.GetByID("gold"), rng))
}

func TestEmptyRegistry(t *testing.T) {
	registry := NewItemRegistry(nil)
	assert.Nil(t, registry.SpawnRandom(rand.New(rand.NewSource(1))))
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00ff00", true},
		{"#000000", true},
		{"invalid", false},
		{"#FFF", false},
		{"#GGGGGG", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid {
			assert.NoError(t, err, "ParseHexColor(%q)", tt.input)
		} else {
			assert.Error(t, err, "ParseHexColor(%q)", tt.input)
		}
	}

	color, err := ParseHexColor("#FF0000")
	require.NoError(t, err)
	assert.Equal(t, tcell.NewRGBColor(255, 0, 0), color)
}

func TestItemDefMethods(t *testing.T) {
	def := ItemDef{ID: "test", Glyph: "T", Color: "#FF0000"}
	assert.Equal(t, 'T', def.GlyphRune())
	assert.Equal(t, tcell.NewRGBColor(255, 0, 0), def.TCellColor())

	bad := ItemDef{Color: "nope"}
	assert.Equal(t, '?', bad.GlyphRune())
	assert.Equal(t, tcell.ColorWhite, bad.TCellColor())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load[ItemsFile]("monsters.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "monsters.json")
}

func TestLoadRejectsWrongShape(t *testing.T) {
	_, err := Load[[]ItemDef]("items.json")
	assert.Error(t, err, "items.json holds an object, not a list")
}
