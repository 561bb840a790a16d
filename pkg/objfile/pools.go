package objfile

import (
	"strconv"

	"github.com/Faultbox/objmesh/pkg/math"
)

// pools accumulates the attributes declared so far, in file order.
// OBJ indices into them are 1-based.
type pools struct {
	positions []math.Vec3
	texCoords []math.Vec2
	normals   []math.Vec3
}

func (p *pools) addPosition(args []string) error {
	v, err := parseFloats(args, 3)
	if err != nil {
		return err
	}
	p.positions = append(p.positions, math.Vec3{X: v[0], Y: v[1], Z: v[2]})
	return nil
}

func (p *pools) addTexCoord(args []string) error {
	v, err := parseFloats(args, 2)
	if err != nil {
		return err
	}
	p.texCoords = append(p.texCoords, math.Vec2{X: v[0], Y: v[1]})
	return nil
}

func (p *pools) addNormal(args []string) error {
	v, err := parseFloats(args, 3)
	if err != nil {
		return err
	}
	p.normals = append(p.normals, math.Vec3{X: v[0], Y: v[1], Z: v[2]})
	return nil
}

// resolve looks up a face corner against the current pool lengths.
func (p *pools) resolve(ref FaceVertexRef) (Vertex, error) {
	if err := checkIndex("position", ref.Position, len(p.positions)); err != nil {
		return Vertex{}, err
	}
	if err := checkIndex("texcoord", ref.TexCoord, len(p.texCoords)); err != nil {
		return Vertex{}, err
	}
	if err := checkIndex("normal", ref.Normal, len(p.normals)); err != nil {
		return Vertex{}, err
	}
	return Vertex{
		Position: p.positions[ref.Position-1],
		TexCoord: p.texCoords[ref.TexCoord-1],
		Normal:   p.normals[ref.Normal-1],
	}, nil
}

func checkIndex(kind string, index, length int) error {
	if index < 1 || index > length {
		return referenceErrorf("%s index %d (have %d)", kind, index, length)
	}
	return nil
}

// parseFloats parses the first n tokens as floats. Extra tokens, such as the
// optional w component, are ignored.
func parseFloats(args []string, n int) ([3]float32, error) {
	var out [3]float32
	if len(args) < n {
		return out, formatErrorf("expected %d numbers, got %d", n, len(args))
	}
	for i := 0; i < n; i++ {
		f, err := strconv.ParseFloat(args[i], 32)
		if err != nil {
			return out, formatErrorf("invalid number %q", args[i])
		}
		out[i] = float32(f)
	}
	return out, nil
}
