package hashmap

import "hash/fnv"

// numBuckets is fixed for the life of a map. There is no rehashing,
// chains simply grow with the map.
const numBuckets = 11

type entry[K comparable, V any] struct {
	key   K
	value V
}

func (m *Map[K, V]) bucketOf(key K) int {
	return int(m.hash(key) % numBuckets)
}

// locate returns the bucket index of key and its chain position, or
// pos -1 when the key is absent.
func (m *Map[K, V]) locate(key K) (int, int) {
	b := m.bucketOf(key)
	for i, e := range m.buckets[b] {
		if e.key == key {
			return b, i
		}
	}
	return b, -1
}

func stringHash(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}
