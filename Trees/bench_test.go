package Trees

import (
	"testing"
)

var (
	bAddN = 1 << 16
	bPopN = bAddN / 2
)

var __r int

func create(b *testing.B) *MaxTree[int] {
	b.Helper()
	tree := New[int]()
	for range bAddN {
		tree.Insert(rg.Int())
	}
	return tree
}

func BenchmarkMaxTree_Insert(b *testing.B) {
	var t *MaxTree[int]
	for range b.N {
		t = New[int]()
		for _, j := range rg.Perm(bAddN) {
			t.Insert(j)
		}
	}
	b.Log(t.Height())
}

func BenchmarkMaxTree_InsertIncreasing(b *testing.B) {
	for range b.N {
		t := New[int]()
		for j := range bAddN {
			t.Insert(j)
		}
	}
}

func BenchmarkMaxTree_Pop(b *testing.B) {
	for range b.N {
		b.StopTimer()
		tree := create(b)
		b.StartTimer()
		for range bPopN {
			__r, _ = tree.Pop()
		}
	}
}

func BenchmarkMaxTree_Peek(b *testing.B) {
	tree := create(b)
	b.ResetTimer()
	for range b.N {
		__r, _ = tree.Peek()
	}
}

func BenchmarkCMaxTree_Insert(b *testing.B) {
	lt := func(a, b int) bool { return a < b }
	for range b.N {
		t := NewC(lt)
		for _, j := range rg.Perm(bAddN) {
			t.Insert(j)
		}
	}
}
