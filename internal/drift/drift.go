// Package drift implements the recursive structural diff between two
// configuration documents.
package drift

import (
	"github.com/k0ns0l/configdrift/internal/document"
)

// ChangeType classifies a single detected difference
type ChangeType string

const (
	// ChangeTypeMissing marks a key present in the baseline but absent in the target
	ChangeTypeMissing ChangeType = "missing"
	// ChangeTypeNew marks a key absent in the baseline but present in the target
	ChangeTypeNew ChangeType = "new"
	// ChangeTypeModified marks a key present in both with differing values
	ChangeTypeModified ChangeType = "modified"
)

// Record is one detected difference. The absent side is nil: Target for
// missing keys, Baseline for new keys. Records are never mutated after the
// comparison returns.
type Record struct {
	Path     document.Path
	Type     ChangeType
	Baseline *document.Value
	Target   *document.Value
}

// Report is the ordered result of one comparison. Order is deterministic:
// depth-first over the baseline's key encounter order, with target-only keys
// of each object appended after the shared and missing ones. A given path
// appears at most once.
type Report []Record

// HasDrift reports whether any difference was detected
func (r Report) HasDrift() bool { return len(r) > 0 }

// Summary counts records per change type
type Summary struct {
	Total    int `json:"total"`
	Missing  int `json:"missing"`
	New      int `json:"new"`
	Modified int `json:"modified"`
}

// Summarize returns per-type counts for the report
func (r Report) Summarize() Summary {
	s := Summary{Total: len(r)}
	for _, rec := range r {
		switch rec.Type {
		case ChangeTypeMissing:
			s.Missing++
		case ChangeTypeNew:
			s.New++
		case ChangeTypeModified:
			s.Modified++
		}
	}
	return s
}

// Compare walks baseline and target and returns the ordered drift report.
// It is a pure function of its inputs: identical inputs always produce an
// identical report, record for record.
//
// Only object pairs recurse. Any other combination is compared for JSON
// semantic equality as a whole; a kind mismatch (object vs scalar, array vs
// object) is reported as a single modified record at the divergence point
// with no descent into either subtree.
func Compare(baseline, target document.Value) Report {
	return compareAt(nil, baseline, target, nil)
}

func compareAt(path document.Path, baseline, target document.Value, out Report) Report {
	if baseline.IsObject() && target.IsObject() {
		return compareObjects(path, baseline, target, out)
	}

	if !document.Equal(baseline, target) {
		b, t := baseline, target
		out = append(out, Record{
			Path:     path,
			Type:     ChangeTypeModified,
			Baseline: &b,
			Target:   &t,
		})
	}

	return out
}

func compareObjects(path document.Path, baseline, target document.Value, out Report) Report {
	// Baseline encounter order first: missing keys are recorded where they
	// occur, shared keys recurse in place.
	for _, m := range baseline.Members() {
		childPath := path.Child(m.Key)
		if tv, ok := target.Lookup(m.Key); ok {
			out = compareAt(childPath, m.Value, tv, out)
			continue
		}
		bv := m.Value
		out = append(out, Record{
			Path:     childPath,
			Type:     ChangeTypeMissing,
			Baseline: &bv,
		})
	}

	// Then target-only keys, in target encounter order.
	for _, m := range target.Members() {
		if _, ok := baseline.Lookup(m.Key); ok {
			continue
		}
		tv := m.Value
		out = append(out, Record{
			Path:   path.Child(m.Key),
			Type:   ChangeTypeNew,
			Target: &tv,
		})
	}

	return out
}
