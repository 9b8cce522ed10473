package core

// Photon is a deposit of light power left on a surface by photon tracing.
// Photons are immutable once stored.
type Photon struct {
	Position          Vec3 // Where the photon landed
	Power             Vec3 // RGB power carried
	IncidentDirection Vec3 // Unit direction the photon travelled when it landed
}

// Axis returns the position coordinate for axis, making photons k-d tree points
func (p *Photon) Axis(axis int) float64 {
	return p.Position.Axis(axis)
}
