package spawn

import (
	"reflect"
	"testing"

	"github.com/lixenwraith/nightwatch/parameter"
	"github.com/lixenwraith/nightwatch/vmath"
)

const distTolerance = 1e-9

// TestResolveTransformsScenario verifies the 1200x800 N/E, two-per-edge layout
func TestResolveTransformsScenario(t *testing.T) {
	bounds := BoundsOf(1200, 800)
	edges := []EdgeSpec{{Edge: "N"}, {Edge: "E"}}

	got := ResolveTransforms(edges, FixedCount(2), bounds, 40, parameter.SpawnDefaultMinDistance, 777)
	if len(got) != 4 {
		t.Fatalf("Expected 4 transforms, got %d", len(got))
	}

	var north, east int
	for _, tr := range got {
		switch tr.Edge {
		case EdgeNorth:
			north++
			if tr.Pos.Y != -40 {
				t.Errorf("North point y = %f, want -40", tr.Pos.Y)
			}
			if tr.Forward != vmath.V(0, 1) {
				t.Errorf("North forward = %v", tr.Forward)
			}
		case EdgeEast:
			east++
			if tr.Pos.X != 1240 {
				t.Errorf("East point x = %f, want 1240", tr.Pos.X)
			}
			if tr.Forward != vmath.V(-1, 0) {
				t.Errorf("East forward = %v", tr.Forward)
			}
		default:
			t.Errorf("Unexpected edge %q", tr.Edge)
		}
	}
	if north != 2 || east != 2 {
		t.Errorf("Expected 2 north and 2 east, got %d and %d", north, east)
	}
	assertMinDistance(t, got, parameter.SpawnDefaultMinDistance)
}

// TestResolveTransformsSingleEdgeSpacing verifies N points fit with pairwise distance D
func TestResolveTransformsSingleEdgeSpacing(t *testing.T) {
	bounds := BoundsOf(1000, 600)
	for seed := uint32(1); seed <= 20; seed++ {
		got := ResolveTransforms([]EdgeSpec{{Edge: "south"}}, FixedCount(4), bounds, 25, 80, seed)
		if len(got) != 4 {
			t.Fatalf("Seed %d: expected 4 points, got %d", seed, len(got))
		}
		for _, tr := range got {
			if tr.Pos.Y != 625 {
				t.Fatalf("Seed %d: south point y = %f, want 625", seed, tr.Pos.Y)
			}
			if tr.Pos.X < 0.05*1000 || tr.Pos.X > 0.95*1000 {
				t.Fatalf("Seed %d: point off clamped range: %f", seed, tr.Pos.X)
			}
		}
		assertMinDistance(t, got, 80)
	}
}

func TestResolveTransformsDedupAndUnknown(t *testing.T) {
	edges := []EdgeSpec{{Edge: "n"}, {Edge: "North"}, {Edge: "bogus"}, {Edge: "W", Weight: 3}}
	got := ResolveTransforms(edges, FixedCount(1), BoundsOf(500, 500), 10, 0, 5)
	if len(got) != 2 {
		t.Fatalf("Expected 2 transforms after dedupe, got %d", len(got))
	}
	if got[0].Edge != EdgeNorth || got[1].Edge != EdgeWest {
		t.Errorf("Unexpected edge order: %v, %v", got[0].Edge, got[1].Edge)
	}
	if got[0].Weight != 1 || got[1].Weight != 3 {
		t.Errorf("Unexpected weights: %f, %f", got[0].Weight, got[1].Weight)
	}
	if got[1].Pos.X != -10 {
		t.Errorf("West point x = %f, want -10", got[1].Pos.X)
	}
}

func TestResolveTransformsRangeDeterministic(t *testing.T) {
	edges := []EdgeSpec{{Edge: "N"}, {Edge: "S"}}
	a := ResolveTransforms(edges, RangeCount(1, 4), BoundsOf(800, 800), 40, 60, 99)
	b := ResolveTransforms(edges, RangeCount(1, 4), BoundsOf(800, 800), 40, 60, 99)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("Same seed produced different transforms")
	}
	perEdge := map[Edge]int{}
	for _, tr := range a {
		perEdge[tr.Edge]++
	}
	for e, n := range perEdge {
		if n < 1 || n > 4 {
			t.Errorf("Edge %s count %d outside [1,4]", e, n)
		}
	}
}

// TestResolveTransformsFallback verifies crowding still yields the requested count
func TestResolveTransformsFallback(t *testing.T) {
	got := ResolveTransforms([]EdgeSpec{{Edge: "E"}}, FixedCount(5), BoundsOf(100, 100), 0, 500, 3)
	if len(got) != 5 {
		t.Fatalf("Expected 5 transforms, got %d", len(got))
	}
	for _, tr := range got {
		if tr.Pos.X != 100 {
			t.Errorf("East point x = %f, want 100", tr.Pos.X)
		}
	}
}

func TestResolveTransformsEmpty(t *testing.T) {
	if got := ResolveTransforms(nil, FixedCount(3), BoundsOf(100, 100), 0, 0, 1); got != nil {
		t.Errorf("Expected nil for no edges, got %v", got)
	}
}

func TestInferEdge(t *testing.T) {
	b := BoundsOf(1200, 800)
	tests := []struct {
		p    vmath.Vec2
		want Edge
	}{
		{vmath.V(600, 10), EdgeNorth},
		{vmath.V(1190, 400), EdgeEast},
		{vmath.V(600, 790), EdgeSouth},
		{vmath.V(5, 400), EdgeWest},
		{vmath.V(0, 0), EdgeNorth},     // N/W tie
		{vmath.V(1200, 800), EdgeEast}, // E/S tie
		{vmath.V(1300, -50), EdgeNorth},
	}
	for _, tt := range tests {
		if got := InferEdge(tt.p, b); got != tt.want {
			t.Errorf("InferEdge(%v) = %s, want %s", tt.p, got, tt.want)
		}
	}
}

func assertMinDistance(t *testing.T, trs []Transform, minDist float64) {
	t.Helper()
	for i := range trs {
		for j := i + 1; j < len(trs); j++ {
			if d := trs[i].Pos.Dist(trs[j].Pos); d < minDist-distTolerance {
				t.Errorf("Points %d and %d only %f apart (min %f)", i, j, d, minDist)
			}
		}
	}
}
