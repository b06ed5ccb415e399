package scene

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"github.com/echoflaresat/phong/colors"
	"github.com/echoflaresat/phong/lights"
	"github.com/echoflaresat/phong/material"
	"github.com/echoflaresat/phong/patterns"
	"github.com/echoflaresat/phong/render"
	"github.com/echoflaresat/phong/shapes"
	"github.com/echoflaresat/phong/texture"
	"github.com/echoflaresat/phong/vectors"
	"github.com/echoflaresat/phong/world"
)

// ErrInvalidScene is wrapped by every validation failure.
var ErrInvalidScene = errors.New("invalid scene")

const defaultSunDistance = 100.0

// Scene is a camera and the world it looks at.
type Scene struct {
	Camera *render.Camera
	World  *world.World

	textures *texture.Cache
}

// Close releases textures loaded for the scene. It is safe on scenes
// built without a loader.
func (s *Scene) Close() {
	if s.textures != nil {
		s.textures.Close()
	}
}

// Loader turns JSON configs into scenes. Relative texture paths are
// resolved against Dir; Textures may be shared between loaders.
type Loader struct {
	Dir      string
	Textures *texture.Cache
}

// NewLoader returns a loader with its own texture cache.
func NewLoader(dir string) (*Loader, error) {
	cache, err := texture.NewCache(16)
	if err != nil {
		return nil, err
	}
	return &Loader{Dir: dir, Textures: cache}, nil
}

// Load reads and builds the scene file at path.
func Load(path string) (*Scene, error) {
	l, err := NewLoader(filepath.Dir(path))
	if err != nil {
		return nil, err
	}
	return l.loadOwned(path)
}

// loadOwned builds the file at path with textures only this call holds, so
// they are released when the scene fails to build.
func (l *Loader) loadOwned(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sc, err := l.Parse(f)
	if err != nil {
		l.Textures.Close()
		return nil, err
	}
	return sc, nil
}

// Parse decodes a JSON config from r and builds the scene.
func (l *Loader) Parse(r io.Reader) (*Scene, error) {
	var cfg Config
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScene, err)
	}
	return l.Build(cfg)
}

// Build validates cfg and constructs the scene it describes.
func (l *Loader) Build(cfg Config) (*Scene, error) {
	cam, err := buildCamera(cfg.Camera)
	if err != nil {
		return nil, err
	}

	w := world.New()
	w.Background = toColor(cfg.Background)
	for _, lc := range cfg.Lights {
		w.Lights = append(w.Lights, lights.NewPointLight(toVec(lc.Position), toColor(lc.Intensity)))
	}
	if cfg.Sun != nil {
		w.Lights = append(w.Lights, buildSun(*cfg.Sun))
	}
	if len(w.Lights) == 0 {
		return nil, fmt.Errorf("%w: no lights", ErrInvalidScene)
	}

	for i, sc := range cfg.Shapes {
		s, err := l.buildShape(sc)
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		w.Objects = append(w.Objects, s)
	}

	slog.Debug("scene built", "shapes", len(w.Objects), "lights", len(w.Lights))
	return &Scene{Camera: cam, World: w, textures: l.Textures}, nil
}

func buildCamera(cc CameraCfg) (*render.Camera, error) {
	cam, err := render.NewCamera(cc.Width, cc.Height, cc.FOVDeg*math.Pi/180)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}
	up := vectors.New(0, 1, 0)
	if cc.Up != nil {
		up = toVec(*cc.Up)
	}
	view := vectors.ViewTransform(toVec(cc.From), toVec(cc.To), up)
	if err := cam.SetTransform(view); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}
	return cam, nil
}

func buildSun(sc SunCfg) lights.PointLight {
	distance := sc.Distance
	if distance <= 0 {
		distance = defaultSunDistance
	}
	intensity := colors.White()
	if sc.Intensity != nil {
		intensity = toColor(*sc.Intensity)
	}
	sun := lights.Sun(sc.Time, sc.Lat, sc.Lon, distance, intensity)
	if sun.Position.Y < 0 {
		slog.Warn("sun is below the horizon", "time", sc.Time, "lat", sc.Lat, "lon", sc.Lon)
	}
	return sun
}

func (l *Loader) buildShape(sc ShapeCfg) (shapes.Shape, error) {
	var s shapes.Shape
	switch sc.Type {
	case "sphere":
		s = shapes.NewSphere()
	case "plane":
		s = shapes.NewPlane()
	default:
		return nil, fmt.Errorf("%w: unknown shape type %q", ErrInvalidScene, sc.Type)
	}

	m, err := buildTransform(sc.Transform)
	if err != nil {
		return nil, err
	}
	if err := s.SetTransform(m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}

	if sc.Material != nil {
		mat, err := l.buildMaterial(*sc.Material)
		if err != nil {
			return nil, err
		}
		s.SetMaterial(mat)
	}
	return s, nil
}

func (l *Loader) buildMaterial(mc MaterialCfg) (material.Material, error) {
	m := material.Default()
	if mc.Color != nil {
		m.Color = toColor(*mc.Color)
	}
	if mc.Ambient != nil {
		m.Ambient = *mc.Ambient
	}
	if mc.Diffuse != nil {
		m.Diffuse = *mc.Diffuse
	}
	if mc.Specular != nil {
		m.Specular = *mc.Specular
	}
	if mc.Shininess != nil {
		m.Shininess = *mc.Shininess
	}
	if err := m.Validate(); err != nil {
		return m, fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}
	if mc.Pattern != nil {
		p, err := l.buildPattern(*mc.Pattern)
		if err != nil {
			return m, err
		}
		m.Pattern = p
	}
	return m, nil
}

// transformable is implemented by every pattern type.
type transformable interface {
	patterns.Pattern
	SetTransform(m vectors.Mat4) error
}

func (l *Loader) buildPattern(pc PatternCfg) (patterns.Pattern, error) {
	a, b := toColor(pc.A), toColor(pc.B)
	var p transformable
	switch pc.Type {
	case "stripe":
		p = patterns.NewStripe(a, b)
	case "gradient":
		p = patterns.NewGradient(a, b)
	case "ring":
		p = patterns.NewRing(a, b)
	case "checker":
		p = patterns.NewChecker(a, b)
	case "image":
		if pc.Texture == "" {
			return nil, fmt.Errorf("%w: image pattern without texture", ErrInvalidScene)
		}
		tex, err := l.texture(pc.Texture)
		if err != nil {
			return nil, err
		}
		p = patterns.NewImage(tex)
	default:
		return nil, fmt.Errorf("%w: unknown pattern type %q", ErrInvalidScene, pc.Type)
	}

	m, err := buildTransform(pc.Transform)
	if err != nil {
		return nil, err
	}
	if err := p.SetTransform(m); err != nil {
		return nil, fmt.Errorf("%w: pattern: %w", ErrInvalidScene, err)
	}
	return p, nil
}

func (l *Loader) texture(path string) (texture.Texture, error) {
	if !filepath.IsAbs(path) && l.Dir != "" {
		path = filepath.Join(l.Dir, path)
	}
	if l.Textures == nil {
		return texture.Load(path)
	}
	return l.Textures.Get(path)
}

// buildTransform composes ops so that ops[0] is applied first.
func buildTransform(ops []Op) (vectors.Mat4, error) {
	m := vectors.Identity()
	for _, op := range ops {
		step, err := opMatrix(op)
		if err != nil {
			return vectors.Mat4{}, err
		}
		m = step.Mul(m)
	}
	return m, nil
}

func opMatrix(op Op) (vectors.Mat4, error) {
	want := map[string]int{
		"translate": 3, "scale": 3,
		"rotate_x": 1, "rotate_y": 1, "rotate_z": 1,
		"shear": 6,
	}
	n, ok := want[op.Op]
	if !ok {
		return vectors.Mat4{}, fmt.Errorf("%w: unknown transform %q", ErrInvalidScene, op.Op)
	}
	if len(op.Args) != n {
		return vectors.Mat4{}, fmt.Errorf("%w: %s takes %d args, got %d", ErrInvalidScene, op.Op, n, len(op.Args))
	}

	a := op.Args
	switch op.Op {
	case "translate":
		return vectors.Translation(a[0], a[1], a[2]), nil
	case "scale":
		return vectors.Scaling(a[0], a[1], a[2]), nil
	case "rotate_x":
		return vectors.RotationX(a[0] * math.Pi / 180), nil
	case "rotate_y":
		return vectors.RotationY(a[0] * math.Pi / 180), nil
	case "rotate_z":
		return vectors.RotationZ(a[0] * math.Pi / 180), nil
	default:
		return vectors.Shearing(a[0], a[1], a[2], a[3], a[4], a[5]), nil
	}
}

func toVec(v Vec) vectors.Vec3 {
	return vectors.New(v[0], v[1], v[2])
}

func toColor(v Vec) colors.Color {
	return colors.New(v[0], v[1], v[2])
}
