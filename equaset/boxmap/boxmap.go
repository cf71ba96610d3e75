package boxmap

// region OrderedMap ///////////////////////////////////////////////////////////////////////////////////////////////////

// OrderedMap provides an insertion-ordered map whose key equality and hashing are supplied as functions instead of
// relying on the key type's native comparability. Keys that hash to the same 64 bit value share a collision bucket
// that is scanned with the injected equality.
type OrderedMap[K any, V any] struct {
	hash    func(K) uint64
	equal   func(K, K) bool
	head    *Element[K, V]
	tail    *Element[K, V]
	buckets map[uint64][]*Element[K, V]
	size    int
}

// New returns a new OrderedMap that uses the given hash and equality functions for its keys.
func New[K any, V any](hash func(K) uint64, equal func(K, K) bool) *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		hash:    hash,
		equal:   equal,
		buckets: make(map[uint64][]*Element[K, V]),
	}
}

// Head returns the first map entry.
func (o *OrderedMap[K, V]) Head() (key K, value V, exists bool) {
	if exists = o.head != nil; !exists {
		return
	}
	key = o.head.key
	value = o.head.value

	return
}

// Tail returns the last map entry.
func (o *OrderedMap[K, V]) Tail() (key K, value V, exists bool) {
	if exists = o.tail != nil; !exists {
		return
	}
	key = o.tail.key
	value = o.tail.value

	return
}

// Has returns if an entry with an equal key exists.
func (o *OrderedMap[K, V]) Has(key K) (has bool) {
	element, _ := o.find(key)

	return element != nil
}

// Get returns the value mapped to the given key if an equal key exists.
func (o *OrderedMap[K, V]) Get(key K) (value V, exists bool) {
	element, _ := o.find(key)
	if element == nil {
		return value, false
	}

	return element.value, true
}

// Set adds a key-value pair to the map. If an equal key is already present, both the stored key and its value are
// replaced while the entry keeps its position in the insertion order, so the key supplied last becomes the retained
// representative of its equivalence class.
func (o *OrderedMap[K, V]) Set(key K, newValue V) (previousValue V, previousValueExisted bool) {
	element, bucket := o.find(key)
	if element != nil {
		previousValue = element.value
		element.key = key
		element.value = newValue

		return previousValue, true
	}

	newElement := &Element[K, V]{key: key, value: newValue}
	if o.head == nil {
		o.head = newElement
	} else {
		o.tail.next = newElement
		newElement.prev = o.tail
	}
	o.tail = newElement
	o.size++

	o.buckets[bucket] = append(o.buckets[bucket], newElement)

	return previousValue, false
}

// Delete deletes the entry with an equal key from the map. It returns false if no such key is found.
func (o *OrderedMap[K, V]) Delete(key K) bool {
	element, bucket := o.find(key)
	if element == nil {
		return false
	}

	remaining := o.buckets[bucket][:0]
	for _, candidate := range o.buckets[bucket] {
		if candidate != element {
			remaining = append(remaining, candidate)
		}
	}
	if len(remaining) == 0 {
		delete(o.buckets, bucket)
	} else {
		o.buckets[bucket] = remaining
	}

	if element.prev != nil {
		element.prev.next = element.next
	} else {
		o.head = element.next
	}
	if element.next != nil {
		element.next.prev = element.prev
	} else {
		o.tail = element.prev
	}
	o.size--

	return true
}

// ForEach iterates through the map in insertion order and calls the consumer function for every element. The
// iteration can be aborted by returning false in the consumer.
func (o *OrderedMap[K, V]) ForEach(consumer func(key K, value V) bool) bool {
	if o == nil {
		return true
	}

	for currentEntry := o.head; currentEntry != nil; currentEntry = currentEntry.next {
		if !consumer(currentEntry.key, currentEntry.value) {
			return false
		}
	}

	return true
}

// ForEachReverse iterates through the map in reverse insertion order and calls the consumer function for every
// element. The iteration can be aborted by returning false in the consumer.
func (o *OrderedMap[K, V]) ForEachReverse(consumer func(key K, value V) bool) bool {
	if o == nil {
		return true
	}

	for currentEntry := o.tail; currentEntry != nil; currentEntry = currentEntry.prev {
		if !consumer(currentEntry.key, currentEntry.value) {
			return false
		}
	}

	return true
}

// Size returns the size of the map.
func (o *OrderedMap[K, V]) Size() int {
	if o == nil {
		return 0
	}

	return o.size
}

// IsEmpty returns a boolean value indicating whether the map is empty.
func (o *OrderedMap[K, V]) IsEmpty() bool {
	return o.Size() == 0
}

// Clone returns a copy of the map that shares the hash and equality functions.
func (o *OrderedMap[K, V]) Clone() (cloned *OrderedMap[K, V]) {
	cloned = New[K, V](o.hash, o.equal)
	o.ForEach(func(key K, value V) bool {
		cloned.Set(key, value)

		return true
	})

	return cloned
}

// Clear removes all elements from the map.
func (o *OrderedMap[K, V]) Clear() {
	o.head = nil
	o.tail = nil
	o.size = 0
	o.buckets = make(map[uint64][]*Element[K, V])
}

// find returns the element holding an equal key together with the bucket the key hashes into.
func (o *OrderedMap[K, V]) find(key K) (element *Element[K, V], bucket uint64) {
	bucket = o.hash(key)
	for _, candidate := range o.buckets[bucket] {
		if o.equal(candidate.key, key) {
			return candidate, bucket
		}
	}

	return nil, bucket
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Element //////////////////////////////////////////////////////////////////////////////////////////////////////

// Element is an entry of the OrderedMap that is linked to its insertion-order neighbors.
type Element[K any, V any] struct {
	key   K
	value V
	prev  *Element[K, V]
	next  *Element[K, V]
}

// Key returns the key of the element.
func (e *Element[K, V]) Key() K {
	return e.key
}

// Value returns the value of the element.
func (e *Element[K, V]) Value() V {
	return e.value
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
