package concise

import (
	"regexp"

	"github.com/sergi/go-diff/diffmatchpatch"
)

var diffNewlines = regexp.MustCompile(`(?m)^`)

// diff renders a readable inline diff between expected and actual, used
// by test failures comparing multi-line or sequence-shaped output.
func diff(expected, actual string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(expected, actual, false)
	pretty := dmp.DiffPrettyText(diffs)
	return diffNewlines.ReplaceAllLiteralString(pretty, "\t")
}
