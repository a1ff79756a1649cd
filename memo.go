package xcover

import (
	"bytes"
	"hash/fnv"
)

// memoEntry pairs a raw state signature with the ZDD node id it resolved
// to, kept alongside the hash bucket so a 64-bit hash collision never
// silently merges two distinct subproblems.
type memoEntry struct {
	sig   []byte
	value uint64
}

// memoCache deduplicates isomorphic residual subproblems encountered by
// Algorithm Z (spec §4.D), collapsing them into a single shared ZDD
// subtree. A state's signature packs the active-item set plus, for every
// active secondary item, which color (if any) has been committed to it — two
// residual subproblems with the same signature are guaranteed to admit
// exactly the same completions.
type memoCache struct {
	buf        []byte
	nPrimary   int32
	nItems     int32
	nColors    int32
	nSecondary int32
	table      map[uint64][]memoEntry
}

func newMemoCache(nItems, nPrimary, nSecondary, nColors int32) *memoCache {
	bits := int(nItems) + int(nColors+1)*int(nSecondary)
	bytelen := 1 + bits/8
	m := &memoCache{
		buf:        make([]byte, bytelen),
		nPrimary:   nPrimary,
		nItems:     nItems,
		nColors:    nColors,
		nSecondary: nSecondary,
		table:      make(map[uint64][]memoEntry),
	}
	m.insert(m.signature(nil, nil), 1)
	return m
}

func (m *memoCache) setBit(bit int32) {
	m.buf[bit/8] |= 1 << uint(bit%8)
}

// signature packs the active-item set and committed secondary colorings
// into a byte string. The caller owns the returned slice.
func (m *memoCache) signature(activeItems, itemColorings []int32) []byte {
	for i := range m.buf {
		m.buf[i] = 0
	}
	for _, item := range activeItems {
		m.setBit(item)
		if item >= m.nPrimary {
			y := item - m.nPrimary
			m.setBit(m.nItems + (m.nColors+1)*y + itemColorings[y])
		}
	}
	sig := make([]byte, len(m.buf))
	copy(sig, m.buf)
	return sig
}

func (m *memoCache) hashKey(sig []byte) uint64 {
	h := fnv.New64a()
	h.Write(sig)
	return h.Sum64()
}

func (m *memoCache) lookup(sig []byte) (uint64, bool) {
	for _, e := range m.table[m.hashKey(sig)] {
		if bytes.Equal(e.sig, sig) {
			return e.value, true
		}
	}
	return 0, false
}

func (m *memoCache) insert(sig []byte, value uint64) {
	key := m.hashKey(sig)
	m.table[key] = append(m.table[key], memoEntry{sig: sig, value: value})
}
