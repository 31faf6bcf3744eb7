package raycekar

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/raycekar/raycekar/rt/coord"
	"github.com/raycekar/raycekar/rt/core"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

var ErrInvalidScene = errors.New("invalid scene file")

// DefaultFov is the camera field of view, in degrees, used when a camera
// entry has none.
const DefaultFov = 70

// SceneFile is the YAML form of a scene. Objects keep their file order, which
// is their index in the compiled streams.
type SceneFile struct {
	Objects []ObjectSpec `yaml:"objects"`
}

type ObjectSpec struct {
	Type       string        `yaml:"type"`
	Position   []float32     `yaml:"position,omitempty"`
	Rotation   *RotationSpec `yaml:"rotation,omitempty"`
	Fov        float32       `yaml:"fov,omitempty"` // degrees
	Radius     float32       `yaml:"radius,omitempty"`
	Dimensions []float32     `yaml:"dimensions,omitempty"`
	Intensity  float32       `yaml:"intensity,omitempty"`
	Falloff    float32       `yaml:"falloff,omitempty"`
	Color      Color         `yaml:"color,omitempty"`
	Rect       []int32       `yaml:"rect,omitempty"`
}

// RotationSpec is an axis and an angle in degrees. The axis is normalized
// before the quaternion is built.
type RotationSpec struct {
	Axis  []float32 `yaml:"axis"`
	Angle float32   `yaml:"angle"`
}

// Color accepts either an [r, g, b] or [r, g, b, a] list in 0..1, or an SVG
// color name such as "tomato".
type Color struct {
	RGBA mgl32.Vec4
	Set  bool
}

func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		rgba, ok := colornames.Map[strings.ToLower(value.Value)]
		if !ok {
			return fmt.Errorf("%w: unknown color %q", ErrInvalidScene, value.Value)
		}
		c.RGBA = mgl32.Vec4{
			float32(rgba.R) / 255,
			float32(rgba.G) / 255,
			float32(rgba.B) / 255,
			float32(rgba.A) / 255,
		}
	case yaml.SequenceNode:
		var comps []float32
		if err := value.Decode(&comps); err != nil {
			return err
		}
		switch len(comps) {
		case 3:
			c.RGBA = mgl32.Vec4{comps[0], comps[1], comps[2], 1}
		case 4:
			c.RGBA = mgl32.Vec4{comps[0], comps[1], comps[2], comps[3]}
		default:
			return fmt.Errorf("%w: color needs 3 or 4 components, got %d", ErrInvalidScene, len(comps))
		}
	default:
		return fmt.Errorf("%w: color must be a name or a list", ErrInvalidScene)
	}
	c.Set = true
	return nil
}

func LoadScene(r io.Reader) (*core.Scene, error) {
	var file SceneFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	return file.Build()
}

func LoadSceneFile(path string) (*core.Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadScene(f)
}

// Build creates a scene with one object per entry, in order.
func (f SceneFile) Build() (*core.Scene, error) {
	scene := core.NewScene()
	for i, entry := range f.Objects {
		obj, err := entry.Object()
		if err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
		scene.Add(obj)
	}
	return scene, nil
}

func (s ObjectSpec) Object() (core.Object, error) {
	kind, ok := core.ParseKind(s.Type)
	if !ok {
		return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidScene, s.Type)
	}
	if kind == core.KindWidget {
		return s.widget()
	}

	pos, err := vec3(s.Position, mgl32.Vec3{})
	if err != nil {
		return nil, fmt.Errorf("position: %w", err)
	}
	rot, err := s.Rotation.quat()
	if err != nil {
		return nil, fmt.Errorf("rotation: %w", err)
	}

	switch kind {
	case core.KindCamera:
		fov := s.Fov
		if fov == 0 {
			fov = DefaultFov
		}
		if fov < 0 || fov >= 180 {
			return nil, fmt.Errorf("%w: camera fov %g not in (0, 180)", ErrInvalidScene, fov)
		}
		return core.NewCamera(pos, rot, coord.DegToRad(fov)), nil
	case core.KindSphere:
		return core.NewSphere(pos, s.Radius), nil
	case core.KindBox:
		dim, err := vec3(s.Dimensions, mgl32.Vec3{1, 1, 1})
		if err != nil {
			return nil, fmt.Errorf("dimensions: %w", err)
		}
		return core.NewBox(pos, rot, dim), nil
	case core.KindPointLight:
		color := mgl32.Vec3{1, 1, 1}
		if s.Color.Set {
			color = s.Color.RGBA.Vec3()
		}
		return core.NewPointLight(pos, s.Radius, s.Intensity, s.Falloff, color), nil
	}
	return nil, fmt.Errorf("%w: unsupported type %q", ErrInvalidScene, s.Type)
}

func (s ObjectSpec) widget() (core.Object, error) {
	if len(s.Rect) != 4 {
		return nil, fmt.Errorf("%w: widget rect needs [x, y, width, height]", ErrInvalidScene)
	}
	color := mgl32.Vec4{1, 1, 1, 1}
	if s.Color.Set {
		color = s.Color.RGBA
	}
	return core.NewWidget(s.Rect[0], s.Rect[1], s.Rect[2], s.Rect[3], color), nil
}

func vec3(values []float32, def mgl32.Vec3) (mgl32.Vec3, error) {
	if len(values) == 0 {
		return def, nil
	}
	v, err := coord.New(values...)
	if err != nil {
		return mgl32.Vec3{}, err
	}
	return v.Vec3()
}

func (r *RotationSpec) quat() (mgl32.Quat, error) {
	if r == nil {
		return mgl32.QuatIdent(), nil
	}
	axis, err := coord.New(r.Axis...)
	if err != nil {
		return mgl32.Quat{}, err
	}
	axis, err = axis.Normalize()
	if err != nil {
		return mgl32.Quat{}, err
	}
	v, err := axis.Vec3()
	if err != nil {
		return mgl32.Quat{}, err
	}
	return coord.QuatFromAxisAngle(v, coord.DegToRad(r.Angle)), nil
}
