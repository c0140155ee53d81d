package concise

import "testing"

func toSlice(s *ConciseSet) []int {
	var out []int
	s.Iterate(func(x int) bool {
		out = append(out, x)
		return true
	})
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestAddBasic(t *testing.T) {
	s := New()
	rows := []int{5, 0, 100, 5, 31, 62}
	want := []bool{true, true, true, false, true, true}
	for i, x := range rows {
		got, err := s.Add(x)
		if err != nil {
			t.Fatalf("case %d: Add(%d) error %v", i, x, err)
		}
		if got != want[i] {
			t.Errorf("case %d: Add(%d) = %v, want %v", i, x, got, want[i])
		}
	}
	expected := []int{0, 5, 31, 62, 100}
	if got := toSlice(s); !equalInts(got, expected) {
		t.Errorf("final contents = %v, want %v", got, expected)
	}
	if s.Len() != len(expected) {
		t.Errorf("Len() = %d, want %d", s.Len(), len(expected))
	}
}

func TestAddOutOfRange(t *testing.T) {
	s := New()
	if _, err := s.Add(-1); err == nil {
		t.Errorf("Add(-1) expected error")
	}
	if _, err := s.Add(maxAllowed + 1); err == nil {
		t.Errorf("Add(maxAllowed+1) expected error")
	}
}

func TestRemoveBasic(t *testing.T) {
	s, err := FromCollection([]int{0, 5, 31, 62, 100})
	if err != nil {
		t.Fatal(err)
	}
	if ok := s.Remove(5); !ok {
		t.Errorf("Remove(5) = false, want true")
	}
	if ok := s.Remove(5); ok {
		t.Errorf("Remove(5) second time = true, want false")
	}
	if s.Contains(5) {
		t.Errorf("Contains(5) = true after Remove")
	}
	expected := []int{0, 31, 62, 100}
	if got := toSlice(s); !equalInts(got, expected) {
		t.Errorf("contents after remove = %v, want %v", got, expected)
	}
}

func TestFlip(t *testing.T) {
	s := New()
	if err := s.Flip(10); err != nil {
		t.Fatal(err)
	}
	if !s.Contains(10) {
		t.Errorf("Flip(10) on empty set should add it")
	}
	if err := s.Flip(10); err != nil {
		t.Fatal(err)
	}
	if s.Contains(10) {
		t.Errorf("Flip(10) twice should remove it")
	}
}

func TestClear(t *testing.T) {
	s, _ := FromCollection([]int{1, 2, 3})
	s.Clear()
	if !s.IsEmpty() {
		t.Errorf("Clear did not empty the set")
	}
}

func TestAddAllRemoveAllRetainAll(t *testing.T) {
	a, _ := FromCollection([]int{1, 2, 3, 4})
	b, _ := FromCollection([]int{3, 4, 5, 6})

	sum := a.Clone()
	sum.AddAll(b)
	if got := toSlice(sum); !equalInts(got, []int{1, 2, 3, 4, 5, 6}) {
		t.Errorf("AddAll = %v", got)
	}

	diff := a.Clone()
	diff.RemoveAll(b)
	if got := toSlice(diff); !equalInts(got, []int{1, 2}) {
		t.Errorf("RemoveAll = %v", got)
	}

	retain := a.Clone()
	retain.RetainAll(b)
	if got := toSlice(retain); !equalInts(got, []int{3, 4}) {
		t.Errorf("RetainAll = %v", got)
	}
}

func TestObserverNotifiedAcrossSlowPath(t *testing.T) {
	s := New()
	var events []string
	s.SetObserver(observerFunc(func(name string) {
		events = append(events, name)
	}))
	if _, err := s.Add(0); err != nil {
		t.Fatal(err)
	}
	// Add(100) turns {0} into a zero run followed by a literal; Add(40)
	// then lands inside that zero run, which forces the slow path that
	// rebuilds s through replaceWith.
	if _, err := s.Add(100); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Add(40); err != nil {
		t.Fatal(err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d: %v", len(events), events)
	}
	// replaceWith must not have detached the observer.
	if _, err := s.Add(500); err != nil {
		t.Fatal(err)
	}
	if len(events) != 4 {
		t.Errorf("observer detached after slow-path mutation: got %d events, want 4", len(events))
	}
}

type observerFunc func(string)

func (f observerFunc) OnEvent(name string) { f(name) }
