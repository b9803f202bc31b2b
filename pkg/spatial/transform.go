package spatial

// Transform2D holds the spatial state of an entity. The zero value is the
// canonical neutral transform that pooled entities are reset to between
// lifecycles, except for Scale which is neutral at 1.
type Transform2D struct {
	Position Vec2    `json:"position" yaml:"position"`
	Rotation float64 `json:"rotation" yaml:"rotation"` // radians
	Scale    Vec2    `json:"scale" yaml:"scale"`
}

// Neutral returns the canonical reset transform: origin position, zero
// rotation, unit scale.
func Neutral() Transform2D {
	return Transform2D{Scale: Vec2{X: 1, Y: 1}}
}

// IsNeutral reports whether t equals the canonical neutral transform.
func (t Transform2D) IsNeutral() bool {
	return t == Neutral()
}
