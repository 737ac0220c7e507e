package spec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLazySlotInitializesOnce(t *testing.T) {
	var slot LazySlot[*int]
	calls := 0
	factory := func() *int {
		calls++
		v := calls
		return &v
	}

	_, ok := slot.Get()
	assert.False(t, ok)

	first := slot.GetOrInit(factory)
	second := slot.GetOrInit(factory)
	assert.Same(t, first, second)
	assert.Equal(t, 1, calls)

	got, ok := slot.Get()
	assert.True(t, ok)
	assert.Same(t, first, got)
}

func TestLazySlotReentryPanics(t *testing.T) {
	var slot LazySlot[string]
	assert.PanicsWithValue(t, "spec: reentrant LazySlot initialization", func() {
		slot.GetOrInit(func() string {
			return slot.GetOrInit(func() string { return "inner" })
		})
	})

	_, ok := slot.Get()
	assert.False(t, ok)
	assert.Equal(t, "ok", slot.GetOrInit(func() string { return "ok" }))
}
