package primitive

// Corners of the unit cube. f/b = z 0/1, b/t = y 0/1, l/r = x 0/1.
var (
	fbl = [3]float32{0, 0, 0}
	fbr = [3]float32{1, 0, 0}
	ftl = [3]float32{0, 1, 0}
	ftr = [3]float32{1, 1, 0}
	bbl = [3]float32{0, 0, 1}
	bbr = [3]float32{1, 0, 1}
	btl = [3]float32{0, 1, 1}
	btr = [3]float32{1, 1, 1}
)

type face struct {
	normal  [3]float32
	corners [6][3]float32
}

// Counter-clockwise seen from outside each face.
var cubeFaces = [6]face{
	{[3]float32{0, 0, -1}, [6][3]float32{fbl, ftl, ftr, fbl, ftr, fbr}},
	{[3]float32{0, 0, 1}, [6][3]float32{bbl, bbr, btr, bbl, btr, btl}},
	{[3]float32{-1, 0, 0}, [6][3]float32{fbl, bbl, btl, fbl, btl, ftl}},
	{[3]float32{1, 0, 0}, [6][3]float32{fbr, ftr, btr, fbr, btr, bbr}},
	{[3]float32{0, 1, 0}, [6][3]float32{ftl, btl, btr, ftl, btr, ftr}},
	{[3]float32{0, -1, 0}, [6][3]float32{fbl, fbr, bbr, fbl, bbr, bbl}},
}

// NewCube returns the unit cube [0,1]^3 with one flat normal per face.
func NewCube() *Mesh {
	mesh := &Mesh{
		Positions: make([]float32, 0, 36*3),
		Normals:   make([]float32, 0, 36*3),
	}
	for _, f := range cubeFaces {
		for _, c := range f.corners {
			mesh.push(c, f.normal)
		}
	}
	return mesh
}
