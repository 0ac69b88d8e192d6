package geom

// Geom3 is a placeholder for solid (3D) geometry. It participates in the
// Shape set so mixed inputs can be classified, but it is never convertible
// to a planar document.
type Geom3 struct {
	// Name labels the solid in diagnostics (e.g. "cube"). May be empty.
	Name string
}
