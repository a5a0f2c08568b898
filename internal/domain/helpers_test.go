package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// scriptedRand replays values (mod n) and then keeps returning 0.
type scriptedRand struct {
	values []int
	next   int
}

func (r *scriptedRand) Intn(n int) int {
	if r.next >= len(r.values) {
		return 0
	}
	v := r.values[r.next] % n
	r.next++
	return v
}

func newTestSession(t *testing.T, config *GameConfig, rng Rand) *GameSession {
	t.Helper()
	if config == nil {
		config = DefaultGameConfig()
	}
	if rng == nil {
		rng = &scriptedRand{}
	}
	gs, err := NewGameSession(config, rng)
	require.NoError(t, err)
	return gs
}
