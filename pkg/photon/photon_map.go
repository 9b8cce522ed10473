package photon

import (
	"math/rand"

	"github.com/df07/go-photon-raytracer/pkg/core"
	"github.com/df07/go-photon-raytracer/pkg/lights"
	"github.com/df07/go-photon-raytracer/pkg/material"
)

// MaxDepth is the number of bounces after which a photon is discarded
const MaxDepth = 9

// Tracer finds the surface a photon lands on
type Tracer interface {
	PhotonTrace(ray core.Ray) (*material.HitRecord, bool)
}

// PhotonMap stores caustic photons: light that reached a non-refractive
// surface after passing through at least one refractive one.
// BuildTree is the only mutating phase. Once built, LocatePhotons is safe for
// concurrent use.
type PhotonMap struct {
	tracer    Tracer
	lights    []lights.Light
	numToEmit int
	random    *rand.Rand
	logger    core.Logger

	photons []*core.Photon
	emitted []core.Vec3
	tree    *core.KDTree[*core.Photon]
}

// New creates an empty photon map that will emit numToEmit photons per light
func New(tracer Tracer, sceneLights []lights.Light, numToEmit int, seed int64, logger core.Logger) *PhotonMap {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &PhotonMap{
		tracer:    tracer,
		lights:    sceneLights,
		numToEmit: max(0, numToEmit),
		random:    rand.New(rand.NewSource(seed)),
		logger:    logger,
	}
}

// BuildTree emits photons from every light, traces them through the scene and
// indexes the stored ones. Each light's photons share light.Power*light.Colour
// equally, so the emitted total does not depend on the photon count.
func (pm *PhotonMap) BuildTree() {
	total := int64(pm.numToEmit * len(pm.lights))
	pm.logger.Printf("Mapping %d photons...\n", total)

	progress := core.NewProgressReporter("Mapping photons", total, core.DefaultProgressInterval, pm.logger)
	progress.Start()

	pm.photons = make([]*core.Photon, 0, total)
	pm.emitted = make([]core.Vec3, len(pm.lights))
	for i, light := range pm.lights {
		if pm.numToEmit == 0 {
			continue
		}
		power := light.Colour().Multiply(light.Power() / float64(pm.numToEmit))
		for n := 0; n < pm.numToEmit; n++ {
			dir := core.SampleUniformCubeDirection(pm.random)
			pm.TracePhoton(core.NewRay(light.Position(), dir), power, 0, false)
			pm.emitted[i] = pm.emitted[i].Add(power)
			progress.Add(1)
		}
	}
	progress.Stop()

	pm.tree = core.NewKDTree(pm.photons, 3)
	pm.logger.Printf("Stored %d caustic photons (tree depth %d)\n", pm.tree.Len(), pm.tree.Depth())
}

// TracePhoton follows one photon. It recurses at most MaxDepth times.
func (pm *PhotonMap) TracePhoton(ray core.Ray, power core.Vec3, depth int, hasRefracted bool) {
	if depth >= MaxDepth {
		return
	}

	hit, isHit := pm.tracer.PhotonTrace(ray)
	if !isHit {
		return
	}

	index, _, refractive := hit.Material.Refraction()
	if !refractive {
		if hasRefracted {
			pm.photons = append(pm.photons, &core.Photon{
				Position:          hit.Point,
				Power:             power,
				IncidentDirection: ray.Direction,
			})
		}
		return
	}

	fr := core.Fresnel(ray.Direction, hit.Normal, index)
	reflected := ray.Reflect(hit.Point, fr.Normal, fr.CosI)
	if fr.TotalInternal {
		pm.TracePhoton(reflected, power, depth+1, hasRefracted)
		return
	}

	pm.TracePhoton(reflected, power.Multiply(fr.Reflectance), depth+1, hasRefracted)
	pm.TracePhoton(ray.Refract(hit.Point, fr.Normal, fr), power.Multiply(fr.Transmittance()), depth+1, true)
}

// LocatePhotons returns the photons within sqrt(radiusSquared) of point and
// the largest squared distance among them, or core.NoMatchDistance.
// Calling it before BuildTree is a programming error.
func (pm *PhotonMap) LocatePhotons(point core.Vec3, radiusSquared float64) ([]*core.Photon, float64) {
	if pm.tree == nil {
		panic("photon: LocatePhotons called before BuildTree")
	}
	return pm.tree.LocateNearby(point, radiusSquared)
}

// EmittedPower returns the total power emitted per light by the last BuildTree
func (pm *PhotonMap) EmittedPower() []core.Vec3 {
	return pm.emitted
}

// Len returns the number of stored photons
func (pm *PhotonMap) Len() int {
	return len(pm.photons)
}

// Photons returns the stored photons
func (pm *PhotonMap) Photons() []*core.Photon {
	return pm.photons
}
