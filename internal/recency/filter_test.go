package recency

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPush_SameIdentifierTwice(t *testing.T) {
	f := New(DefaultSize)
	f.Push("alice")
	f.Push("alice")

	assert.Equal(t, 1, f.Len())
	assert.Equal(t, []string{"alice"}, f.Items())
}

func TestPush_RepushMovesToFront(t *testing.T) {
	f := New(3)
	f.Push("a")
	f.Push("b")
	f.Push("c")
	f.Push("a")

	assert.Equal(t, []string{"a", "c", "b"}, f.Items())
}

func TestPush_EvictsOldest(t *testing.T) {
	const k = 5
	f := New(k)
	for i := 0; i < 8; i++ {
		f.Push(fmt.Sprintf("p%d", i))
	}

	assert.Equal(t, k, f.Len())
	for i := 0; i < 3; i++ {
		assert.False(t, f.Contains(fmt.Sprintf("p%d", i)), "p%d should be evicted", i)
	}
	for i := 3; i < 8; i++ {
		assert.True(t, f.Contains(fmt.Sprintf("p%d", i)), "p%d should be held", i)
	}
}

func TestPush_RepushProtectsFromEviction(t *testing.T) {
	f := New(2)
	f.Push("a")
	f.Push("b")
	f.Push("a") // a is most recent again
	f.Push("c") // evicts b, not a

	assert.True(t, f.Contains("a"))
	assert.False(t, f.Contains("b"))
	assert.True(t, f.Contains("c"))
}

func TestZeroSize(t *testing.T) {
	tests := []struct {
		name string
		f    *Filter
	}{
		{"size zero", New(0)},
		{"negative size", New(-3)},
		{"zero value", &Filter{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.f.Push("a")
			assert.False(t, tt.f.Contains("a"))
			assert.Equal(t, 0, tt.f.Len())
		})
	}
}

func TestItems_ReturnsCopy(t *testing.T) {
	f := New(2)
	f.Push("a")
	items := f.Items()
	items[0] = "mutated"

	assert.True(t, f.Contains("a"))
}
