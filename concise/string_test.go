package concise

import (
	"testing"

	"github.com/renstrom/dedent"
)

func TestConciseSetString(t *testing.T) {
	s := mustCollection(t, []int{1, 2, 3})
	expected := dedent.Dedent(`
		ConciseSet{len=3, words=1, max=3}`)[1:]
	actual := s.String()
	if actual != expected {
		t.Errorf("String() mismatch:\n%s", diff(expected, actual))
	}
}
