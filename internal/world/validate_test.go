package world_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/dungeonsofdoom/internal/entity"
	"github.com/samdwyer/dungeonsofdoom/internal/world"
)

func TestValidateGeneratedLevels(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		d, p := generate(t, seed)
		assert.NoError(t, d.ValidateFresh(p), "seed %d", seed)
	}
}

func TestValidateDetectsSecondStaircase(t *testing.T) {
	d, p := generate(t, 3)
	for _, loc := range d.Locations() {
		if loc.Type == world.Floor && loc.Item == nil && loc.Character == nil {
			loc.Item = entity.NewStaircase("extra")
			break
		}
	}

	assert.ErrorIs(t, d.Validate(p), world.ErrInvalidLevel)
}

func TestValidateDetectsUnreachableCell(t *testing.T) {
	d, p := generate(t, 4)
	d.At(0, 0).Type = world.Hallway

	err := d.Validate(p)
	require.ErrorIs(t, err, world.ErrInvalidLevel)
	assert.Contains(t, err.Error(), "(0,0) unreachable")
}

func TestValidateDetectsMisplacedPlayer(t *testing.T) {
	d, p := generate(t, 5)
	d.At(p.X, p.Y).Character = nil

	assert.ErrorIs(t, d.Validate(p), world.ErrInvalidLevel)
}

func TestValidatePlayerOnStaircase(t *testing.T) {
	d, p := generate(t, 9)
	var stairs *world.Location
	for _, loc := range d.Locations() {
		if loc.Item != nil && loc.Item.IsStaircase() {
			stairs = loc
		}
	}
	require.NotNil(t, stairs)

	d.At(p.X, p.Y).Character = nil
	stairs.Character = p
	p.MoveTo(stairs.X, stairs.Y)

	assert.NoError(t, d.Validate(p))
	err := d.ValidateFresh(p)
	assert.ErrorIs(t, err, world.ErrInvalidLevel)
	assert.Contains(t, err.Error(), "staircase under the player")
}
