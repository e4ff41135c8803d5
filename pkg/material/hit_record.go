package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Point // Point of intersection
	Normal    core.Vec3  // Surface normal, always facing against the incoming ray
	T         float64    // Parameter t along the ray
	U, V      float64    // Surface texture coordinates
	FrontFace bool       // Whether the ray hit the outward-facing side
	Material  *Material  // Material at the hit point
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
