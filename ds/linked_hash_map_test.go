package ds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinkedHashMap_Keys(t *testing.T) {
	lhm := NewLinkedHashMap[string, int]()

	assert.True(t, len(lhm.Keys()) == 0)

	lhm.Put("b", 2)
	lhm.Put("a", 1)
	lhm.Put("b", 3)

	assert.Equal(t, []string{"b", "a"}, lhm.Keys())
	assert.Equal(t, 2, lhm.Len())
	value, ok := lhm.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 3, value)
}

func TestLinkedHashMap_Put(t *testing.T) {
	lhm := NewLinkedHashMap[string, any]()
	lhm.Put("abc", 1)
	lhm.Put("abc", 1)

	assert.Equal(t, lhm.hashMap, map[string]any{"abc": 1})
}

func TestLinkedHashMap_Upsert(t *testing.T) {
	lhm := NewLinkedHashMap[string, []int]()
	appendValue := func(n int) func([]int) []int {
		return func(values []int) []int {
			return append(values, n)
		}
	}
	lhm.Upsert("x", appendValue(1))
	lhm.Upsert("y", appendValue(2))
	lhm.Upsert("x", appendValue(3))

	x, _ := lhm.Get("x")
	assert.Equal(t, []int{1, 3}, x)
	assert.Equal(t, []string{"x", "y"}, lhm.Keys())

	_, ok := lhm.Get("z")
	assert.False(t, ok)
}

func TestLinkedHashMap_Each(t *testing.T) {
	lhm := NewLinkedHashMap[int, string]()
	lhm.Put(3, "three")
	lhm.Put(1, "one")
	lhm.Put(2, "two")

	visited := make([]string, 0)
	lhm.Each(func(key int, value string) bool {
		visited = append(visited, value)
		return key != 1
	})
	assert.Equal(t, []string{"three", "one"}, visited)
}
