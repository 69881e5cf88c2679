package game

import (
	"image"
	"image/color"
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/bouncing-cube/internal/anim"
	"github.com/iburimskiy/bouncing-cube/internal/config"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

var (
	eyePosition   = mgl64.Vec3{0, 0, config.CameraDistance}
	lightPosition = mgl64.Vec3{config.LightX, config.LightY, config.LightZ}
)

// screenVertex is a projected, lit mesh corner in pixel coordinates.
type screenVertex struct {
	x, y  float32
	color anim.Color
}

type screenTriangle struct {
	v     [3]screenVertex
	depth float64 // mean eye-space z, more negative is farther
}

// renderer projects the cube mesh and draws it with ebiten's triangle API.
// Buffers are reused between frames.
type renderer struct {
	tris     []screenTriangle
	vertices []ebiten.Vertex
	indices  []uint16
}

// project transforms, lights and culls the mesh for a w x h target. The
// result is sorted far to near.
func (r *renderer) project(f anim.Frame, w, h int) []screenTriangle {
	view := mgl64.Translate3D(-eyePosition.X(), -eyePosition.Y(), -eyePosition.Z())
	proj := mgl64.Perspective(mgl64.DegToRad(config.FieldOfViewDeg), f.Aspect, config.NearPlane, config.FarPlane)
	viewProj := proj.Mul4(view)

	r.tris = r.tris[:0]
	for i := 0; i+2 < len(cubeMesh); i += 3 {
		var world [3]mgl64.Vec3
		for k := range world {
			world[k] = f.Model.Mul4x1(cubeMesh[i+k].pos.Vec4(1)).Vec3()
		}
		normal := world[1].Sub(world[0]).Cross(world[2].Sub(world[0])).Normalize()
		if normal.Dot(eyePosition.Sub(world[0])) <= 0 {
			continue
		}

		tri := screenTriangle{}
		visible := true
		for k := range world {
			c := viewProj.Mul4x1(world[k].Vec4(1))
			if c.W() <= 0 {
				visible = false
				break
			}
			tri.v[k] = screenVertex{
				x:     float32((c.X()/c.W()*0.5 + 0.5) * float64(w)),
				y:     float32((1 - (c.Y()/c.W()*0.5 + 0.5)) * float64(h)),
				color: shade(cubeMesh[i+k].color, world[k], normal),
			}
			tri.depth += view.Mul4x1(world[k].Vec4(1)).Z() / 3
		}
		if visible {
			r.tris = append(r.tris, tri)
		}
	}

	slices.SortFunc(r.tris, func(a, b screenTriangle) int {
		switch {
		case a.depth < b.depth:
			return -1
		case a.depth > b.depth:
			return 1
		}
		return 0
	})
	return r.tris
}

// shade lights a corner color with the Phong model.
func shade(base anim.Color, pos, normal mgl64.Vec3) anim.Color {
	l := lightPosition.Sub(pos).Normalize()
	diff := math.Max(normal.Dot(l), 0)

	v := eyePosition.Sub(pos).Normalize()
	refl := l.Mul(-1).Sub(normal.Mul(2 * normal.Dot(l.Mul(-1))))
	spec := math.Pow(math.Max(v.Dot(refl), 0), config.Shininess)

	k := config.AmbientStrength + config.DiffuseStrength*diff + config.SpecularStrength*spec
	return anim.Color{
		R: clamp01(base.R * k),
		G: clamp01(base.G * k),
		B: clamp01(base.B * k),
	}
}

// draw clears screen with the frame's background and renders the cube.
func (r *renderer) draw(screen *ebiten.Image, f anim.Frame) {
	screen.Fill(toRGBA(f.Background))

	b := screen.Bounds()
	tris := r.project(f, b.Dx(), b.Dy())

	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
	for _, t := range tris {
		base := uint16(len(r.vertices))
		for _, v := range t.v {
			r.vertices = append(r.vertices, ebiten.Vertex{
				DstX:   v.x,
				DstY:   v.y,
				SrcX:   1,
				SrcY:   1,
				ColorR: float32(v.color.R),
				ColorG: float32(v.color.G),
				ColorB: float32(v.color.B),
				ColorA: 1,
			})
		}
		r.indices = append(r.indices, base, base+1, base+2)
	}
	if len(r.indices) == 0 {
		return
	}
	screen.DrawTriangles(r.vertices, r.indices, whiteSubImage, &ebiten.DrawTrianglesOptions{})
}

func toRGBA(c anim.Color) color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: 255,
	}
}
