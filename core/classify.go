package core

import (
	"strings"

	"github.com/huangsam/trustscore/schema"
)

// ClassifyUpdate labels the transition from older to newer as minor, patch or
// irregular. Classification never fails: malformed versions resolve to
// irregular instead of raising.
//
// A version is well-formed when it has exactly 3 dot-separated components.
// Two textually identical versions classify as patch: a republished release is
// a zero-change transition and patch is the weakest semantic bucket.
func ClassifyUpdate(older, newer string) schema.UpdateType {
	o := strings.Split(older, ".")
	n := strings.Split(newer, ".")

	if len(o) != len(n) || len(o) != 3 {
		return schema.IrregularUpdate
	}

	if o[1] != n[1] {
		return schema.MinorUpdate
	}

	return schema.PatchUpdate
}
