package core

import (
	"math/rand"
	"sort"
	"testing"
)

type testPoint struct {
	id  int
	pos Vec3
}

func (p testPoint) Axis(axis int) float64 { return p.pos.Axis(axis) }

func randomPoints(random *rand.Rand, n int, scale float64) []testPoint {
	points := make([]testPoint, n)
	for i := range points {
		points[i] = testPoint{
			id:  i,
			pos: NewVec3(random.Float64()*scale, random.Float64()*scale, random.Float64()*scale),
		}
	}
	return points
}

func bruteForceNearby(points []testPoint, query Vec3, radiusSquared float64) []int {
	var ids []int
	for _, p := range points {
		if p.pos.Subtract(query).LengthSquared() <= radiusSquared {
			ids = append(ids, p.id)
		}
	}
	sort.Ints(ids)
	return ids
}

func idsOf(points []testPoint) []int {
	ids := make([]int, len(points))
	for i, p := range points {
		ids[i] = p.id
	}
	sort.Ints(ids)
	return ids
}

func TestKDTree_EmptyTree(t *testing.T) {
	tree := NewKDTree[testPoint](nil, 3)

	matches, maxDist := tree.LocateNearby(NewVec3(0, 0, 0), 100)
	if len(matches) != 0 {
		t.Errorf("Expected no matches from empty tree, got %d", len(matches))
	}
	if maxDist != NoMatchDistance {
		t.Errorf("Expected max distance to stay %v, got %v", NoMatchDistance, maxDist)
	}
	if tree.Len() != 0 {
		t.Errorf("Expected empty tree length 0, got %d", tree.Len())
	}
}

func TestKDTree_SinglePoint(t *testing.T) {
	tree := NewKDTree([]testPoint{{id: 7, pos: NewVec3(1, 1, 1)}}, 3)

	matches, maxDist := tree.LocateNearby(NewVec3(1, 1, 2), 1.0)
	if len(matches) != 1 || matches[0].id != 7 {
		t.Fatalf("Expected the single point to match, got %v", matches)
	}
	if maxDist != 1.0 {
		t.Errorf("Expected max squared distance 1.0, got %v", maxDist)
	}

	matches, _ = tree.LocateNearby(NewVec3(1, 1, 2.5), 1.0)
	if len(matches) != 0 {
		t.Errorf("Expected no match outside the radius, got %v", matches)
	}
}

func TestKDTree_MatchesBruteForce(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	for trial := 0; trial < 20; trial++ {
		n := 1 + random.Intn(500)
		points := randomPoints(random, n, 10)
		tree := NewKDTree(points, 3)

		for q := 0; q < 25; q++ {
			query := NewVec3(random.Float64()*12-1, random.Float64()*12-1, random.Float64()*12-1)
			radius := random.Float64() * 3
			radiusSquared := radius * radius

			matches, maxDist := tree.LocateNearby(query, radiusSquared)
			got := idsOf(matches)
			want := bruteForceNearby(points, query, radiusSquared)

			if len(got) != len(want) {
				t.Fatalf("trial %d query %d: expected %d matches, got %d", trial, q, len(want), len(got))
			}
			for i := range got {
				if got[i] != want[i] {
					t.Fatalf("trial %d query %d: match sets differ at %d: %d vs %d", trial, q, i, got[i], want[i])
				}
			}

			expectedMax := NoMatchDistance
			for _, m := range matches {
				if d := m.pos.Subtract(query).LengthSquared(); d > expectedMax {
					expectedMax = d
				}
			}
			if maxDist != expectedMax {
				t.Errorf("trial %d query %d: expected max distance %v, got %v", trial, q, expectedMax, maxDist)
			}
		}
	}
}

func TestKDTree_NeighbourAcrossSplitPlane(t *testing.T) {
	// The root splits on X at the median (x=0). The query sits just left of the
	// plane while its only neighbour sits just right of it.
	points := []testPoint{
		{id: 0, pos: NewVec3(-5, 0, 0)},
		{id: 1, pos: NewVec3(-4, 3, 0)},
		{id: 2, pos: NewVec3(0, 9, 9)},
		{id: 3, pos: NewVec3(1e-6, 0.01, 0)},
		{id: 4, pos: NewVec3(5, -3, 0)},
	}
	tree := NewKDTree(points, 3)

	matches, maxDist := tree.LocateNearby(NewVec3(-1e-6, 0, 0), 0.01*0.01+1e-9)
	if len(matches) != 1 || matches[0].id != 3 {
		t.Fatalf("Expected point 3 across the split plane, got %v", matches)
	}
	if maxDist <= 0 {
		t.Errorf("Expected positive max distance, got %v", maxDist)
	}
}

func TestKDTree_DuplicateCoordinates(t *testing.T) {
	points := make([]testPoint, 64)
	for i := range points {
		points[i] = testPoint{id: i, pos: NewVec3(1, float64(i%2), 0)}
	}
	tree := NewKDTree(points, 3)

	matches, _ := tree.LocateNearby(NewVec3(1, 0, 0), 0)
	if len(matches) != 32 {
		t.Errorf("Expected 32 coincident matches, got %d", len(matches))
	}
}

func TestKDTree_BalancedDepth(t *testing.T) {
	random := rand.New(rand.NewSource(7))
	points := randomPoints(random, 1023, 1)
	tree := NewKDTree(points, 3)

	if tree.Depth() != 10 {
		t.Errorf("Expected depth 10 for 1023 points, got %d", tree.Depth())
	}
}

func TestSelectNth(t *testing.T) {
	random := rand.New(rand.NewSource(3))
	for trial := 0; trial < 50; trial++ {
		points := randomPoints(random, 1+random.Intn(100), 5)
		n := random.Intn(len(points))
		axis := random.Intn(3)

		selectNth(points, n, axis)
		pivot := points[n].Axis(axis)
		for i, p := range points {
			if i < n && p.Axis(axis) > pivot {
				t.Fatalf("element %d before median is larger: %v > %v", i, p.Axis(axis), pivot)
			}
			if i > n && p.Axis(axis) < pivot {
				t.Fatalf("element %d after median is smaller: %v < %v", i, p.Axis(axis), pivot)
			}
		}
	}
}
