package ds

import (
	"container/list"
)

// LinkedHashMap is a map that remembers key insertion order.
type LinkedHashMap[K comparable, V any] struct {
	hashMap  map[K]V
	ordering *list.List
}

func NewLinkedHashMap[K comparable, V any]() *LinkedHashMap[K, V] {
	return &LinkedHashMap[K, V]{
		hashMap:  map[K]V{},
		ordering: list.New(),
	}
}

func (r *LinkedHashMap[K, V]) Len() int {
	return r.ordering.Len()
}

func (r *LinkedHashMap[K, V]) Keys() []K {
	keys := make([]K, 0, r.ordering.Len())
	for runner := r.ordering.Front(); runner != nil; runner = runner.Next() {
		key := runner.Value.(K)
		keys = append(keys, key)
	}
	return keys
}

// Put keeps the original position of an existing key.
func (r *LinkedHashMap[K, V]) Put(key K, value V) {
	_, existed := r.hashMap[key]
	if !existed {
		r.ordering.PushBack(key)
	}
	r.hashMap[key] = value
}

func (r *LinkedHashMap[K, V]) Get(key K) (V, bool) {
	value, ok := r.hashMap[key]
	return value, ok
}

// Upsert stores updater's result for key, passing the zero value when the
// key is new.
func (r *LinkedHashMap[K, V]) Upsert(key K, updater func(value V) V) V {
	value := r.hashMap[key]
	value = updater(value)
	r.Put(key, value)
	return value
}

// Each visits entries in insertion order until visit returns false.
func (r *LinkedHashMap[K, V]) Each(visit func(key K, value V) bool) {
	for runner := r.ordering.Front(); runner != nil; runner = runner.Next() {
		key := runner.Value.(K)
		if !visit(key, r.hashMap[key]) {
			return
		}
	}
}
