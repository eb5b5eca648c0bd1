package assets

import (
	"testing"

	"github.com/automoto/brawlcore/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedCollisionMatrix(t *testing.T) {
	m, err := CollisionMatrix()
	require.NoError(t, err)
	assert.True(t, m.Allows(config.HitboxHit, config.HitboxHurt))
	assert.False(t, m.Allows(config.HitboxHurt, config.HitboxHurt))
}

func TestEmbeddedFrameLibrary(t *testing.T) {
	lib, err := FrameLibrary()
	require.NoError(t, err)

	punch := lib["brawler"].Clips["punch"]
	require.Len(t, punch.Frames, 3)

	// The active frame carries the attack box.
	active := lib.FrameDescriptors("brawler", "punch", 0.5)
	require.Len(t, active, 2)
	assert.Equal(t, config.HitboxHit, active[1].Type)
	assert.Equal(t, config.DamagePhysical, active[1].DamageType)
	assert.True(t, active[1].OncePerTarget)
}
