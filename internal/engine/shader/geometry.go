package shader

import "github.com/mkram/shaderstudio/internal/engine/driver"

// GeometryParams holds the geometry stage link parameters: input and output
// primitive topology and the maximum number of emitted vertices. Changing
// them never touches a linked program; they take effect at the next
// successful link, which is when the hardware requires them to be fixed.
type GeometryParams struct {
	inputType         driver.Primitive
	outputType        driver.Primitive
	maxOutputVertices int32
}

func defaultGeometryParams() GeometryParams {
	return GeometryParams{
		inputType:         driver.Triangles,
		outputType:        driver.TriangleStrip,
		maxOutputVertices: 4,
	}
}

// SetInputType sets the input primitive topology. Values outside the
// accepted set are silently ignored and the previous value is kept; UI
// layers may hand over stale combo indices.
func (g *GeometryParams) SetInputType(p driver.Primitive) {
	switch p {
	case driver.Points, driver.Lines, driver.LinesAdjacency,
		driver.Triangles, driver.TrianglesAdjacency:
		g.inputType = p
	}
}

// SetOutputType sets the output primitive topology. Values outside the
// accepted set are silently ignored.
func (g *GeometryParams) SetOutputType(p driver.Primitive) {
	switch p {
	case driver.Points, driver.LineStrip, driver.TriangleStrip:
		g.outputType = p
	}
}

// SetMaxOutputVertices stores the emitted vertex limit as-is. The hardware
// maximum is advisory and queried elsewhere; it is not enforced here.
func (g *GeometryParams) SetMaxOutputVertices(n int32) {
	g.maxOutputVertices = n
}

// InputType returns the input primitive topology.
func (g GeometryParams) InputType() driver.Primitive { return g.inputType }

// OutputType returns the output primitive topology.
func (g GeometryParams) OutputType() driver.Primitive { return g.outputType }

// MaxOutputVertices returns the emitted vertex limit.
func (g GeometryParams) MaxOutputVertices() int32 { return g.maxOutputVertices }
