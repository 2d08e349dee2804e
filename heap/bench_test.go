// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap_test

import (
	stdheap "container/heap"
	"math/rand"
	"testing"

	"cloudeng.io/container/heap"
	"golang.org/x/exp/constraints"
)

func uniformRand(seed int64, n int) []int {
	rnd := rand.New(rand.NewSource(seed)) // #nosec: G404
	r := make([]int, n)
	for i := range r {
		r[i] = rnd.Intn(10000)
	}
	return r
}

func zipfRand(seed int64, n int) []uint64 {
	rnd := rand.New(rand.NewSource(seed))                // #nosec: G404
	gen := rand.NewZipf(rnd, 3.0, 1.1, 8*1024*1024*1024) // 8Gib
	r := make([]uint64, n)
	for i := range r {
		r[i] = gen.Uint64()
	}
	return r
}

type stdSlice[V constraints.Ordered] []V

func (h *stdSlice[V]) Less(i, j int) bool {
	return (*h)[i] < (*h)[j]
}

func (h *stdSlice[V]) Swap(i, j int) {
	(*h)[i], (*h)[j] = (*h)[j], (*h)[i]
}

func (h *stdSlice[V]) Len() int {
	return len(*h)
}

func (h *stdSlice[V]) Pop() (v any) {
	old := *h
	n := len(old)
	v = old[n-1]
	*h = old[:n-1]
	return
}

func (h *stdSlice[V]) Push(v any) {
	*h = append(*h, v.(V))
}

const benchmarkInputSize = 10000

func benchmarkStdHeap[V constraints.Ordered](b *testing.B, h *stdSlice[V], keys []V) {
	for i := 0; i < b.N; i++ {
		for j := range keys {
			stdheap.Push(h, keys[j])
		}
		for h.Len() > 0 {
			_ = stdheap.Pop(h).(V)
		}
	}
}

func BenchmarkStdHeapDup_10000(b *testing.B) {
	b.ReportAllocs()
	keys := make([]int, benchmarkInputSize)
	h := make(stdSlice[int], 0, len(keys))
	b.ResetTimer()
	benchmarkStdHeap(b, &h, keys)
}

func BenchmarkStdHeapRand_10000(b *testing.B) {
	b.ReportAllocs()
	keys := uniformRand(0, benchmarkInputSize)
	h := make(stdSlice[int], 0, len(keys))
	b.ResetTimer()
	benchmarkStdHeap(b, &h, keys)
}

func BenchmarkStdHeapZipf_10000(b *testing.B) {
	b.ReportAllocs()
	keys := zipfRand(0, benchmarkInputSize)
	h := make(stdSlice[uint64], 0, len(keys))
	b.ResetTimer()
	benchmarkStdHeap(b, &h, keys)
}

func benchmarkAddressable[V any](b *testing.B, h *heap.Addressable[V], keys []V) {
	for i := 0; i < b.N; i++ {
		for j := range keys {
			h.Push(keys[j])
		}
		for !h.IsEmpty() {
			if _, err := h.Pop(); err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkAddressableDup_10000(b *testing.B) {
	b.ReportAllocs()
	keys := make([]int, benchmarkInputSize)
	h := heap.New(heap.Ascending[int](), heap.WithSliceCap[int](len(keys)))
	b.ResetTimer()
	benchmarkAddressable(b, h, keys)
}

func BenchmarkAddressableRand_10000(b *testing.B) {
	b.ReportAllocs()
	keys := uniformRand(0, benchmarkInputSize)
	h := heap.New(heap.Ascending[int](), heap.WithSliceCap[int](len(keys)))
	b.ResetTimer()
	benchmarkAddressable(b, h, keys)
}

// BenchmarkAddressableRandFast_10000 quantifies the cost of the NaN
// special case in the default ordering relative to AscendingFast.
func BenchmarkAddressableRandFast_10000(b *testing.B) {
	b.ReportAllocs()
	keys := uniformRand(0, benchmarkInputSize)
	h := heap.New(heap.AscendingFast[int](), heap.WithSliceCap[int](len(keys)))
	b.ResetTimer()
	benchmarkAddressable(b, h, keys)
}

func BenchmarkAddressableZipf_10000(b *testing.B) {
	b.ReportAllocs()
	keys := zipfRand(0, benchmarkInputSize)
	h := heap.New(heap.Ascending[uint64](), heap.WithSliceCap[uint64](len(keys)))
	b.ResetTimer()
	benchmarkAddressable(b, h, keys)
}

func BenchmarkUpdateHandle_10000(b *testing.B) {
	b.ReportAllocs()
	keys := uniformRand(0, benchmarkInputSize)
	h := heap.New(heap.Ascending[int](), heap.WithSliceCap[int](len(keys)))
	handles := make([]heap.Handle, len(keys))
	for i, k := range keys {
		handles[i] = h.Push(k)
	}
	rnd := rand.New(rand.NewSource(1)) // #nosec: G404
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		hd := handles[rnd.Intn(len(handles))]
		if err := h.UpdateHandle(hd, rnd.Intn(10000)); err != nil {
			b.Fatal(err)
		}
	}
}
