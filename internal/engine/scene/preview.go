package scene

import (
	"image"
	gomath "math"

	"github.com/mkram/shaderstudio/internal/engine/camera"
	"github.com/mkram/shaderstudio/internal/engine/driver"
	"github.com/mkram/shaderstudio/internal/engine/framebuffer"
	"github.com/mkram/shaderstudio/internal/engine/shader"
	"github.com/mkram/shaderstudio/pkg/math"
)

// Matrix uniforms the preview feeds each frame when the program
// declares them. They go through the same registry path as user-edited
// uniforms, so there is a single upload route.
const (
	uniformModelView  = "uModelView"
	uniformProjection = "uProjection"
)

// Preview renders the test mesh with the program under edit into an
// offscreen framebuffer for display in the UI.
type Preview struct {
	fb   *framebuffer.Framebuffer
	mesh *Mesh
	cam  *camera.OrbitCamera

	clearColor [4]float32
	fovDegrees float32
}

// NewPreview creates the preview with its framebuffer and test mesh.
// Must be called with a current GL context.
func NewPreview(width, height int32, clearColor [4]float32, fovDegrees float32) (*Preview, error) {
	fb, err := framebuffer.New(width, height)
	if err != nil {
		return nil, err
	}

	return &Preview{
		fb:         fb,
		mesh:       NewCubeMesh(),
		cam:        camera.NewOrbitCamera(),
		clearColor: clearColor,
		fovDegrees: fovDegrees,
	}, nil
}

// Camera exposes the orbit camera for input handling.
func (p *Preview) Camera() *camera.OrbitCamera { return p.cam }

// ColorTexture returns the texture the preview was rendered into.
func (p *Preview) ColorTexture() uint32 { return p.fb.ColorTexture() }

// Size returns the current render target dimensions.
func (p *Preview) Size() (int32, int32) { return p.fb.Size() }

// Resize adjusts the render target to the panel size.
func (p *Preview) Resize(width, height int32) {
	p.fb.Resize(width, height)
}

// Render draws one frame. When the program is not linked the target is
// cleared only, so a failed build shows an empty preview rather than
// stale output.
func (p *Preview) Render(prog *shader.Program) {
	restore := p.fb.BindWithViewport()
	defer restore()

	p.fb.Clear(p.clearColor[0], p.clearColor[1], p.clearColor[2], p.clearColor[3])

	if !prog.IsLinked() {
		return
	}

	p.feedMatrices(prog)

	attribs, ok := prog.BindState()
	if !ok {
		return
	}

	p.mesh.Draw(attribs)
}

// feedMatrices pushes the camera matrices into the program's uniform
// state by name. Programs that do not declare them simply render
// without camera transforms.
func (p *Preview) feedMatrices(prog *shader.Program) {
	width, height := p.fb.Size()
	aspect := float32(width) / float32(height)

	view := p.cam.ViewMatrix()
	proj := math.Perspective(p.fovDegrees*gomath.Pi/180, aspect, 0.1, 100)

	p.setMat4(prog, uniformModelView, view)
	p.setMat4(prog, uniformProjection, proj)
}

func (p *Preview) setMat4(prog *shader.Program, name string, m math.Mat4) {
	idx := prog.UniformIndex(name)
	if idx < 0 {
		return
	}

	u := prog.Uniform(idx)
	if u.Type() != driver.TypeFloatMat4 {
		return
	}

	for i := 0; i < 16; i++ {
		u.SetFloat(i, m[i])
	}
	prog.SetUniform(idx, u)
}

// Screenshot reads the last rendered frame as an image, flipped to
// top-down row order.
func (p *Preview) Screenshot() *image.RGBA {
	width, height := p.fb.Size()
	pixels := p.fb.ReadPixels()

	img := image.NewRGBA(image.Rect(0, 0, int(width), int(height)))
	rowLen := int(width) * 4
	for y := 0; y < int(height); y++ {
		src := pixels[(int(height)-1-y)*rowLen : (int(height)-y)*rowLen]
		copy(img.Pix[y*img.Stride:y*img.Stride+rowLen], src)
	}
	return img
}

// Destroy releases the framebuffer and mesh.
func (p *Preview) Destroy() {
	p.mesh.Destroy()
	p.fb.Destroy()
}
