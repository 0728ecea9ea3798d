package flatset

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestInsertSuppressesDuplicates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flatset")
	defer teardown()

	s := New[int]()
	if !s.IsEmpty() {
		t.Fatalf("expected new set to be empty")
	}
	for _, x := range []int{5, 3, 8, 3} {
		s.Insert(x)
	}
	if diff := cmp.Diff([]int{3, 5, 8}, s.Values()); diff != "" {
		t.Fatalf("unexpected members (-want +got):\n%s", diff)
	}
	if s.Len() != 3 {
		t.Errorf("expected size 3, is %d", s.Len())
	}
}

func TestContains(t *testing.T) {
	s := New(5, 3, 8)
	if !s.Contains(5) {
		t.Errorf("expected set to contain 5")
	}
	if s.Contains(9) {
		t.Errorf("expected set not to contain 9")
	}
	if s.Contains(0) || New[int]().Contains(0) {
		t.Errorf("expected absent values to be reported missing")
	}
}

func TestErase(t *testing.T) {
	s := New(3, 5, 8)
	i, ok := s.Erase(5)
	if !ok {
		t.Fatalf("expected Erase(5) to succeed")
	}
	if x, err := s.At(i); err != nil || x != 8 {
		t.Fatalf("expected erase position to hold successor 8, got %d, %v", x, err)
	}
	if diff := cmp.Diff([]int{3, 8}, s.Values()); diff != "" {
		t.Fatalf("unexpected members (-want +got):\n%s", diff)
	}
	if _, ok := s.Erase(5); ok {
		t.Errorf("expected second erase to fail")
	}
}

func TestMerge(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flatset")
	defer teardown()

	a, b := New(1, 3, 5), New(2, 3, 4)
	a.Merge(b)
	if diff := cmp.Diff([]int{1, 2, 3, 4, 5}, a.Values()); diff != "" {
		t.Fatalf("unexpected union (-want +got):\n%s", diff)
	}
	if a.Len() != 5 {
		t.Errorf("expected size 5, is %d", a.Len())
	}
	if _, ok := a.Find(10); ok {
		t.Errorf("expected Find(10) to report absence")
	}
	c := a.Clone()
	a.Merge(a)
	if !a.Equal(c) {
		t.Errorf("self-merge changed the set to %v", a.Values())
	}
	a.Merge(nil)
	if a.Len() != 5 {
		t.Errorf("merge with nil changed the set")
	}
}

func TestFindAndAt(t *testing.T) {
	s := New("pear", "apple", "fig")
	i, ok := s.Find("fig")
	if !ok || i != 1 {
		t.Fatalf("expected Find(fig) = (1, true), got (%d, %v)", i, ok)
	}
	if s.BinarySearch("banana") != 1 {
		t.Errorf("expected insertion point 1 for banana")
	}
	if _, err := s.At(3); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected ErrIndexOutOfBounds, got %v", err)
	}
	var none *Set[string]
	if _, err := none.At(0); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected ErrIndexOutOfBounds for nil set, got %v", err)
	}
}

func TestGrowthKeepsMembers(t *testing.T) {
	var s Set[int]
	for _, x := range []int{20, 10, 30} {
		s.Insert(x)
	}
	if diff := cmp.Diff([]int{10, 20, 30}, s.Values()); diff != "" {
		t.Fatalf("members lost during growth (-want +got):\n%s", diff)
	}
	if err := s.Check(); err != nil {
		t.Fatal(err)
	}
}

func TestEqualAndClone(t *testing.T) {
	a, b := New(1, 2, 3), New(3, 2, 1)
	if !a.Equal(b) {
		t.Errorf("expected sets to be equal")
	}
	c := a.Clone()
	c.Insert(4)
	if a.Equal(c) || a.Len() != 3 {
		t.Errorf("clone must not share storage with the original")
	}
	var x, y *Set[int]
	if !x.Equal(y) || !x.Equal(New[int]()) {
		t.Errorf("expected nil and empty sets to be equal")
	}
}

func TestIterateAndDump(t *testing.T) {
	s := New(2, 1, 3)
	var desc []int
	for _, x := range s.Backward() {
		desc = append(desc, x)
	}
	if diff := cmp.Diff([]int{3, 2, 1}, desc); diff != "" {
		t.Errorf("unexpected descending order (-want +got):\n%s", diff)
	}
	var buf bytes.Buffer
	if err := s.Dump(&buf); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "1 2 3 \n" {
		t.Errorf("unexpected dump %q", buf.String())
	}
}

func TestNilSetReadsAsEmpty(t *testing.T) {
	var s *Set[int]
	if s.Contains(1) || s.Len() != 0 || !s.IsEmpty() {
		t.Errorf("expected nil set to be empty")
	}
	if _, ok := s.Find(1); ok {
		t.Errorf("expected Find on nil set to fail")
	}
	if _, ok := s.Erase(1); ok {
		t.Errorf("expected Erase on nil set to fail")
	}
	if s.BinarySearch(5) != 0 || len(s.Values()) != 0 {
		t.Errorf("expected nil set to have no members")
	}
	for range s.All() {
		t.Fatalf("expected no iteration over nil set")
	}
	for range s.Backward() {
		t.Fatalf("expected no iteration over nil set")
	}
	var buf bytes.Buffer
	if err := s.Dump(&buf); err != nil || buf.String() != "\n" {
		t.Errorf("unexpected dump of nil set %q, %v", buf.String(), err)
	}
	if err := s.Check(); err != nil {
		t.Errorf("expected nil set to be valid, got %v", err)
	}
	if !s.Equal(New[int]()) || s.Equal(New(1)) {
		t.Errorf("expected nil set to equal only empty sets")
	}
	if c := s.Clone(); c == nil || !c.IsEmpty() {
		t.Errorf("expected clone of nil set to be an empty set")
	}
}

func TestContainsNaN(t *testing.T) {
	s := New(2.5, math.NaN(), 1.5)
	if !s.Contains(math.NaN()) || s.Len() != 3 {
		t.Fatalf("expected NaN to be a member, got %v", s.Values())
	}
	if err := s.Check(); err != nil {
		t.Fatal(err)
	}
}
