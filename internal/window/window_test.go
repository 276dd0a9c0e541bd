package window

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestLifecycle(t *testing.T) {
	var loads, unloads int
	w := New("test", Handlers{
		Load:   func() { loads++ },
		Unload: func() { unloads++ },
	})

	assert.NotEqual(t, uuid.Nil, w.ID())
	assert.Equal(t, "test", w.Name())

	w.Load()
	w.Load()
	assert.True(t, w.Loaded())
	assert.Equal(t, 1, loads)

	w.Unload()
	w.Unload()
	assert.False(t, w.Loaded())
	assert.Equal(t, 1, unloads)

	w.Load()
	assert.Equal(t, 2, loads)
}

func TestDestroyUnloadsOnce(t *testing.T) {
	var unloads int
	w := New("test", Handlers{Unload: func() { unloads++ }})
	w.Load()

	w.Destroy()
	w.Destroy()
	assert.True(t, w.Destroyed())
	assert.Equal(t, 1, unloads)

	w.Load()
	assert.False(t, w.Loaded(), "destroyed windows stay unloaded")
}

func TestNilHandlers(t *testing.T) {
	w := New("bare", Handlers{})
	w.Load()
	w.Unload()
	w.Destroy()
	assert.True(t, w.Destroyed())
}

func TestDistinctIDs(t *testing.T) {
	assert.NotEqual(t, New("a", Handlers{}).ID(), New("b", Handlers{}).ID())
}
