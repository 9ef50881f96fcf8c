package handle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	value int
}

// tracked counts destructions through the io.Closer hook.
type tracked struct {
	closed *int
}

func (c *tracked) Close() error {
	*c.closed++
	return nil
}

func TestNew(t *testing.T) {
	h := New[payload]()
	require.NotNil(t, h.Get())
	assert.True(t, h.Ok())
	assert.Equal(t, 0, h.Get().value)
}

func TestAdopt(t *testing.T) {
	p := &payload{value: 42}
	h := Adopt(p)

	assert.Same(t, p, h.Get())
	assert.True(t, h.Ok())
	assert.Equal(t, 42, h.Deref().value)
}

func TestAdoptNil(t *testing.T) {
	h := Adopt[payload](nil)

	assert.Nil(t, h.Get())
	assert.False(t, h.Ok())
}

func TestDerefEmptyPanics(t *testing.T) {
	h := Adopt[payload](nil)

	assert.Panics(t, func() {
		_ = h.Deref()
	})
}

func TestSwap(t *testing.T) {
	a := New[payload]()
	b := New[payload]()
	pa := a.Get()
	pb := b.Get()

	a.Swap(b)

	assert.Same(t, pb, a.Get())
	assert.Same(t, pa, b.Get())

	// Package-level form swaps back.
	Swap(a, b)
	assert.Same(t, pa, a.Get())
	assert.Same(t, pb, b.Get())
}

func TestSwapWithEmpty(t *testing.T) {
	full := New[payload]()
	empty := Adopt[payload](nil)
	p := full.Get()

	full.Swap(empty)

	assert.False(t, full.Ok())
	assert.Same(t, p, empty.Get())
}

func TestCloseReleasesOnce(t *testing.T) {
	destroyed := 0
	h := Adopt(&tracked{closed: &destroyed})

	require.NoError(t, h.Close())
	assert.Equal(t, 1, destroyed)
	assert.False(t, h.Ok())
	assert.Nil(t, h.Get())

	// Second close must not run the destructor again.
	require.NoError(t, h.Close())
	assert.Equal(t, 1, destroyed)
}

func TestCloseWithoutCloser(t *testing.T) {
	h := New[payload]()

	require.NoError(t, h.Close())
	assert.False(t, h.Ok())
}

func TestCloseEmpty(t *testing.T) {
	h := Adopt[payload](nil)

	require.NoError(t, h.Close())
	assert.False(t, h.Ok())
}

func TestConstructSwapClose(t *testing.T) {
	// The replacement idiom: build the new state first, swap it in,
	// then dispose of the old state.
	destroyed := 0
	current := Adopt(&tracked{closed: &destroyed})

	fresh := Adopt(&tracked{closed: &destroyed})
	current.Swap(fresh)
	require.NoError(t, fresh.Close())

	assert.Equal(t, 1, destroyed)
	assert.True(t, current.Ok())

	require.NoError(t, current.Close())
	assert.Equal(t, 2, destroyed)
}
