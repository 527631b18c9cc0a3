package datastructure

import (
	"math"
	"testing"

	"github.com/lakbayph/lakbay/pkg"
)

func TestNewPathSentinel(t *testing.T) {
	p := NewPath("MNL")

	if p.Len() != 1 {
		t.Fatalf("Len = %d, want 1", p.Len())
	}
	first := p.Last()
	if first.Location != "MNL" || first.Highway != pkg.STARTING_POINT_LABEL {
		t.Errorf("start waypoint = %+v", first)
	}
	if first.Cost != 0 || first.Distance != 0 || first.Toll != 0 {
		t.Error("start waypoint totals must be zero")
	}
}

// Divergent branches sharing a prefix must not see each other's appends.
func TestAppendDoesNotAlias(t *testing.T) {
	prefix := NewPath("A").Append(Waypoint{Location: "B", Cost: 10, Highway: "X"})

	left := prefix.Append(Waypoint{Location: "C", Cost: 20, Highway: "Y"})
	right := prefix.Append(Waypoint{Location: "D", Cost: 30, Highway: "Z"})

	if got := left.Last().Location; got != "C" {
		t.Errorf("left branch corrupted: last = %q", got)
	}
	if got := right.Last().Location; got != "D" {
		t.Errorf("right branch corrupted: last = %q", got)
	}
	if prefix.Len() != 2 {
		t.Errorf("prefix mutated: Len = %d", prefix.Len())
	}
}

func TestSegmentsDeriveDeltas(t *testing.T) {
	p := NewPath("A").
		Append(Waypoint{Location: "B", Cost: 122, Distance: 80, Toll: 180, Highway: "NLEX"}).
		Append(Waypoint{Location: "C", Cost: 192, Distance: 135, Toll: 275, Highway: "SCTEX"})

	segments := p.Segments()
	if len(segments) != 2 {
		t.Fatalf("want 2 segments, got %d", len(segments))
	}

	second := segments[1]
	if second.From != "B" || second.To != "C" || second.Highway != "SCTEX" {
		t.Errorf("segment = %+v", second)
	}
	if math.Abs(second.Cost-70) > 1e-9 || math.Abs(second.Distance-55) > 1e-9 || math.Abs(second.Toll-95) > 1e-9 {
		t.Errorf("segment deltas = %f/%f/%f", second.Cost, second.Distance, second.Toll)
	}
}

func TestSegmentsEmptyForStartOnly(t *testing.T) {
	if segs := NewPath("A").Segments(); segs != nil {
		t.Errorf("want nil segments, got %v", segs)
	}
}
