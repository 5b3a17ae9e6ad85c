package cluster

import (
	"reflect"
	"testing"
)

func TestComposeEvents_SimpleIntersection(t *testing.T) {
	timeClasses := [][]int{{0, 1, 2}}
	locationClasses := [][]int{{1, 2, 3}}

	events := composeEvents(timeClasses, locationClasses)

	want := [][]int{{1, 2}}
	if !reflect.DeepEqual(events, want) {
		t.Errorf("expected events %v, got %v", want, events)
	}
}

func TestComposeEvents_SingletonIntersectionDropped(t *testing.T) {
	timeClasses := [][]int{{0, 1}}
	locationClasses := [][]int{{1, 2}}

	if events := composeEvents(timeClasses, locationClasses); len(events) != 0 {
		t.Errorf("expected no events for single-member intersection, got %v", events)
	}
}

func TestComposeEvents_DeduplicatesByMemberSet(t *testing.T) {
	// Two different T'xL' pairs that produce the same intersection.
	timeClasses := [][]int{{0, 1, 2}, {0, 1, 5}}
	locationClasses := [][]int{{0, 1, 7}}

	events := composeEvents(timeClasses, locationClasses)

	want := [][]int{{0, 1}}
	if !reflect.DeepEqual(events, want) {
		t.Errorf("expected deduplicated events %v, got %v", want, events)
	}
}

func TestComposeEvents_Ordering(t *testing.T) {
	timeClasses := [][]int{{2, 3, 4}, {0, 1, 6}}
	locationClasses := [][]int{{0, 1, 2, 3}, {4, 6, 7}}

	events := composeEvents(timeClasses, locationClasses)

	want := [][]int{{0, 1}, {2, 3}}
	if !reflect.DeepEqual(events, want) {
		t.Errorf("expected ordered events %v, got %v", want, events)
	}
}

func TestComposeEvents_Empty(t *testing.T) {
	if events := composeEvents(nil, [][]int{{0, 1}}); len(events) != 0 {
		t.Errorf("expected no events without T' classes, got %v", events)
	}
}

func TestIntersectSorted(t *testing.T) {
	cases := []struct {
		a, b, want []int
	}{
		{[]int{0, 1, 2}, []int{1, 2, 3}, []int{1, 2}},
		{[]int{0, 2, 4}, []int{1, 3, 5}, nil},
		{[]int{}, []int{1}, nil},
		{[]int{1, 2, 3}, []int{1, 2, 3}, []int{1, 2, 3}},
	}

	for _, tc := range cases {
		if got := intersectSorted(tc.a, tc.b); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("intersectSorted(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}
