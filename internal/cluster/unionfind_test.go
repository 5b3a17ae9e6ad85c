package cluster

import (
	"reflect"
	"testing"
)

func TestUnionFind_Singletons(t *testing.T) {
	u := newUnionFind(5)

	if classes := u.classes(); len(classes) != 0 {
		t.Errorf("expected no classes before any union, got %v", classes)
	}
}

func TestUnionFind_TransitiveChain(t *testing.T) {
	u := newUnionFind(4)
	u.union(0, 1)
	u.union(1, 2)

	if u.find(0) != u.find(2) {
		t.Error("expected 0 and 2 connected through 1")
	}
	if u.find(0) == u.find(3) {
		t.Error("expected 3 to stay separate")
	}

	want := [][]int{{0, 1, 2}}
	if classes := u.classes(); !reflect.DeepEqual(classes, want) {
		t.Errorf("expected classes %v, got %v", want, classes)
	}
}

func TestUnionFind_RedundantUnion(t *testing.T) {
	u := newUnionFind(3)
	u.union(0, 1)
	u.union(1, 0)
	u.union(0, 1)

	want := [][]int{{0, 1}}
	if classes := u.classes(); !reflect.DeepEqual(classes, want) {
		t.Errorf("expected classes %v, got %v", want, classes)
	}
}

func TestUnionFind_ClassOrdering(t *testing.T) {
	u := newUnionFind(7)
	// Build {4,5} first, then {0,2,6}; output must still order by first
	// member with members ascending.
	u.union(5, 4)
	u.union(6, 2)
	u.union(2, 0)

	want := [][]int{{0, 2, 6}, {4, 5}}
	if classes := u.classes(); !reflect.DeepEqual(classes, want) {
		t.Errorf("expected classes %v, got %v", want, classes)
	}
}
