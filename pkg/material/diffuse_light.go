package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// NewDiffuseLight creates an emissive material with uniform emission
func NewDiffuseLight(emission core.Color) *Material {
	return NewTexturedDiffuseLight(NewSolidColor(emission))
}

// NewTexturedDiffuseLight creates an emissive material whose emission varies with a texture.
// Diffuse lights absorb every incoming ray and only contribute through Emitted.
func NewTexturedDiffuseLight(emit Texture) *Material {
	return &Material{kind: KindDiffuseLight, texture: emit}
}
