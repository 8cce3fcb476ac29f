package separatechaining

import (
	"fmt"
	"github.com/gostonefire/hashtables/crt"
	"github.com/gostonefire/hashtables/hashfunc"
	"github.com/gostonefire/hashtables/internal/growth"
	"github.com/gostonefire/hashtables/internal/hash"
	"github.com/gostonefire/hashtables/internal/model"
	"github.com/gostonefire/hashtables/internal/storage"
	"github.com/gostonefire/hashtables/internal/utils"
)

// noNode - Marks the end of a chain, an unused bucket and an empty free list
const noNode = -1

// node - One element of a singly linked chain, next is an index into the node arena
type node[V any] struct {
	entry model.Entry[V]
	next  int
}

// LinkedBuckets - Represents an implementation of the Separate Chaining Collision Resolution Technique where every
// bucket is a singly linked list. Nodes live in one arena slice and link to each other by index, removed nodes
// are kept on a free list and reused by later inserts.
// The number of buckets doubles whenever an insert would take the load factor above the threshold.
type LinkedBuckets[V any] struct {
	heads         []int
	nodes         []node[V]
	free          int
	capacity      int
	count         int
	hashAlgorithm hashfunc.HashAlgorithm
	policy        growth.Policy
}

// NewLinkedBuckets - Returns a pointer to a new instance of the linked chaining implementation.
//   - crtConf is a model.CRTConf struct, a zero LoadFactorThreshold selects DefaultLoadFactorThreshold
//
// It returns:
//   - linkedBuckets which is a pointer to the created instance
//   - err which is of type crt.InvalidArgument if the configuration is not acceptable
func NewLinkedBuckets[V any](crtConf model.CRTConf) (linkedBuckets *LinkedBuckets[V], err error) {
	policy, err := chainingPolicy(crtConf)
	if err != nil {
		return
	}

	linkedBuckets = &LinkedBuckets[V]{
		heads:         newHeads(crtConf.Capacity),
		free:          noNode,
		capacity:      crtConf.Capacity,
		hashAlgorithm: crtConf.HashAlgorithm,
		policy:        policy,
	}

	return
}

// Add - Appends a new node to the end of the chain, growing the table first if the insert would cross the
// load factor threshold.
// It returns an error of type crt.DuplicateKey if the key already exists.
func (L *LinkedBuckets[V]) Add(key []byte, value V) (err error) {
	if err = storage.CheckKey("Add", key); err != nil {
		return
	}

	index, current, _, err := L.find(key)
	if err != nil {
		return
	}
	if current != noNode {
		err = crt.NewDuplicateKey(key)
		return
	}

	if newCapacity := L.policy.NextCapacity(L.count, L.capacity); newCapacity != L.capacity {
		if err = L.rehash(newCapacity); err != nil {
			return
		}
		if index, err = hash.BucketIndex(L.hashAlgorithm, key, L.capacity); err != nil {
			return
		}
	}

	n := L.allocNode(model.Entry[V]{Key: model.CopyKey(key), Value: value})
	L.appendToChain(index, n)
	L.count++

	return
}

// Get - Returns the value stored for key, or an error of type crt.KeyNotFound
func (L *LinkedBuckets[V]) Get(key []byte) (value V, err error) {
	if err = storage.CheckKey("Get", key); err != nil {
		return
	}

	_, current, _, err := L.find(key)
	if err != nil {
		return
	}
	if current == noNode {
		err = crt.NewKeyNotFound(key)
		return
	}

	value = L.nodes[current].entry.Value

	return
}

// Remove - Unlinks the node for key from its chain and puts it on the free list.
// It returns an error of type crt.KeyNotFound if the key doesn't exist.
func (L *LinkedBuckets[V]) Remove(key []byte) (err error) {
	if err = storage.CheckKey("Remove", key); err != nil {
		return
	}

	index, current, previous, err := L.find(key)
	if err != nil {
		return
	}
	if current == noNode {
		err = crt.NewKeyNotFound(key)
		return
	}

	if previous == noNode {
		L.heads[index] = L.nodes[current].next
	} else {
		L.nodes[previous].next = L.nodes[current].next
	}

	L.nodes[current] = node[V]{next: L.free}
	L.free = current
	L.count--

	return
}

// ContainsKey - Returns true if an entry with key exists
func (L *LinkedBuckets[V]) ContainsKey(key []byte) (found bool, err error) {
	if err = storage.CheckKey("ContainsKey", key); err != nil {
		return
	}

	_, current, _, err := L.find(key)
	found = current != noNode

	return
}

// Len - Returns the number of entries
func (L *LinkedBuckets[V]) Len() int {
	return L.count
}

// GetStorageParameters - Returns a struct with storage parameters from LinkedBuckets
func (L *LinkedBuckets[V]) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		CollisionResolutionTechnique: crt.LinkedChaining,
		Capacity:                     L.capacity,
		Count:                        L.count,
		LoadFactorThreshold:          L.policy.Threshold,
		GrowthMultiplier:             L.policy.Multiplier,
	}

	return
}

// GetBucketStats - Returns the number of nodes in every chain
func (L *LinkedBuckets[V]) GetBucketStats() (stats []model.BucketStat) {
	stats = make([]model.BucketStat, L.capacity)
	for i, head := range L.heads {
		for n := head; n != noNode; n = L.nodes[n].next {
			stats[i].Entries++
		}
	}

	return
}

// find - Walks the chain for key and returns the bucket index, the matching node and its predecessor.
// current is noNode if not found, previous is noNode if current is the head of the chain.
func (L *LinkedBuckets[V]) find(key []byte) (index, current, previous int, err error) {
	current, previous = noNode, noNode
	index, err = hash.BucketIndex(L.hashAlgorithm, key, L.capacity)
	if err != nil {
		err = fmt.Errorf("error while computing bucket index: %w", err)
		return
	}

	for n := L.heads[index]; n != noNode; n = L.nodes[n].next {
		if utils.IsEqual(key, L.nodes[n].entry.Key) {
			current = n
			return
		}
		previous = n
	}

	return
}

// allocNode - Stores entry in a node taken from the free list, or in a new node at the end of the arena
func (L *LinkedBuckets[V]) allocNode(entry model.Entry[V]) (n int) {
	if L.free != noNode {
		n = L.free
		L.free = L.nodes[n].next
		L.nodes[n] = node[V]{entry: entry, next: noNode}
		return
	}

	n = len(L.nodes)
	L.nodes = append(L.nodes, node[V]{entry: entry, next: noNode})

	return
}

// appendToChain - Links node n to the end of the chain in bucket index
func (L *LinkedBuckets[V]) appendToChain(index, n int) {
	if L.heads[index] == noNode {
		L.heads[index] = n
		return
	}

	tail := L.heads[index]
	for L.nodes[tail].next != noNode {
		tail = L.nodes[tail].next
	}
	L.nodes[tail].next = n
}

// rehash - Builds a new compacted arena with newCapacity chains, walking the old chains in bucket order.
// The new arena replaces the old one only when every entry has been moved.
func (L *LinkedBuckets[V]) rehash(newCapacity int) (err error) {
	heads := newHeads(newCapacity)
	tails := newHeads(newCapacity)
	newNodes := make([]node[V], 0, L.count)

	var index int
	for _, head := range L.heads {
		for n := head; n != noNode; n = L.nodes[n].next {
			entry := L.nodes[n].entry
			index, err = hash.BucketIndex(L.hashAlgorithm, entry.Key, newCapacity)
			if err != nil {
				err = fmt.Errorf("error while rehashing to %d buckets: %w", newCapacity, err)
				return
			}

			newNodes = append(newNodes, node[V]{entry: entry, next: noNode})
			added := len(newNodes) - 1
			if tails[index] == noNode {
				heads[index] = added
			} else {
				newNodes[tails[index]].next = added
			}
			tails[index] = added
		}
	}

	L.heads = heads
	L.nodes = newNodes
	L.free = noNode
	L.capacity = newCapacity

	return
}

// newHeads - Returns n chain heads all set to noNode
func newHeads(n int) (heads []int) {
	heads = make([]int, n)
	for i := range heads {
		heads[i] = noNode
	}

	return
}
