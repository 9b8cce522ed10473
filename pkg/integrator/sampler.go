package integrator

import "github.com/df07/go-photon-raytracer/pkg/core"

// SampleFunc traces the sub-pixel position (u, v), both in [0, 1]
type SampleFunc func(u, v float64) core.Vec3

// Sampler decides where inside a pixel rays are traced and how they are combined
type Sampler interface {
	Sample(trace SampleFunc) core.Vec3
}

// CenterSampler traces a single ray through the pixel centre
type CenterSampler struct{}

func (CenterSampler) Sample(trace SampleFunc) core.Vec3 {
	return trace(0.5, 0.5)
}

// GridSampler averages an N x N grid of evenly spaced rays
type GridSampler struct {
	N int
}

func (g GridSampler) Sample(trace SampleFunc) core.Vec3 {
	n := max(1, g.N)
	var total core.Vec3
	for i := 0; i < n; i++ {
		u := (float64(i) + 0.5) / float64(n)
		for j := 0; j < n; j++ {
			v := (float64(j) + 0.5) / float64(n)
			total = total.Add(trace(u, v))
		}
	}
	return total.Multiply(1.0 / float64(n*n))
}

// DefaultAdaptiveDepth is the subdivision limit of AdaptiveSampler
const DefaultAdaptiveDepth = 2

// AdaptiveSampler traces four rays at the quarter points of a region and
// subdivides into quadrants while their colours disagree
type AdaptiveSampler struct {
	MaxDepth int
}

func (a AdaptiveSampler) Sample(trace SampleFunc) core.Vec3 {
	return a.sampleRegion(trace, 0, 1, 0, 1, 0)
}

func (a AdaptiveSampler) sampleRegion(trace SampleFunc, uMin, uMax, vMin, vMax float64, depth int) core.Vec3 {
	quarterU := (uMax - uMin) / 4
	quarterV := (vMax - vMin) / 4

	c0 := trace(uMin+quarterU, vMin+quarterV)
	c1 := trace(uMin+quarterU, vMax-quarterV)
	c2 := trace(uMax-quarterU, vMin+quarterV)
	c3 := trace(uMax-quarterU, vMax-quarterV)
	total := c0.Add(c1).Add(c2).Add(c3)

	uniform := c0.Equals(c1) && c0.Equals(c2) && c0.Equals(c3)
	if uniform || depth >= a.MaxDepth {
		return total.Multiply(0.25)
	}

	// The four corner samples keep half the weight, the quadrants share the rest
	midU, midV := uMin+2*quarterU, vMin+2*quarterV
	total = total.
		Add(a.sampleRegion(trace, uMin, midU, vMin, midV, depth+1)).
		Add(a.sampleRegion(trace, midU, uMax, vMin, midV, depth+1)).
		Add(a.sampleRegion(trace, uMin, midU, midV, vMax, depth+1)).
		Add(a.sampleRegion(trace, midU, uMax, midV, vMax, depth+1))
	return total.Multiply(0.125)
}
