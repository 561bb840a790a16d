package objfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding"
)

// parser holds the state of a single parse call.
type parser struct {
	pools  pools
	groups *groupTable
	active string
}

// Parse reads OBJ data from r and returns one mesh per material, in the
// order each material was first referenced.
//
// Lines starting with an unrecognized word (comments, o, g, s, mtllib, ...)
// are skipped. The first malformed line or out-of-range face index aborts the
// parse; no partial result is returned.
func Parse(r io.Reader) ([]MaterialMesh, error) {
	p := &parser{
		groups: newGroupTable(),
		active: DefaultMaterial,
	}

	s := newScanner(r)
	for s.next() {
		if err := p.handle(s.command(), s.args()); err != nil {
			return nil, &ParseError{Line: s.line(), Command: s.command(), Err: err}
		}
	}
	if err := s.readErr(); err != nil {
		return nil, err
	}

	return p.groups.result(), nil
}

// ParseBytes parses OBJ data held in memory.
func ParseBytes(data []byte) ([]MaterialMesh, error) {
	return Parse(bytes.NewReader(data))
}

// ParseFile parses an OBJ file from disk.
func ParseFile(path string) ([]MaterialMesh, error) {
	return ParseFileEncoded(path, nil)
}

// ParseFileEncoded parses an OBJ file stored in a legacy character encoding.
// A nil enc reads the file as UTF-8.
func ParseFileEncoded(path string, enc encoding.Encoding) ([]MaterialMesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer f.Close()

	var r io.Reader = f
	if enc != nil {
		r = enc.NewDecoder().Reader(f)
	}
	return Parse(r)
}

func (p *parser) handle(cmd string, args []string) error {
	switch cmd {
	case cmdPosition:
		return p.pools.addPosition(args)
	case cmdTexCoord:
		return p.pools.addTexCoord(args)
	case cmdNormal:
		return p.pools.addNormal(args)
	case cmdMaterial:
		return p.useMaterial(args)
	case cmdFace:
		return p.addFace(args)
	default:
		return nil
	}
}

func (p *parser) useMaterial(args []string) error {
	if len(args) == 0 {
		return formatErrorf("missing material name")
	}
	p.active = args[0]
	p.groups.get(p.active)
	return nil
}

// addFace resolves all three corners before touching the active mesh, so a
// bad face leaves every group as it was.
func (p *parser) addFace(args []string) error {
	if len(args) != 3 {
		return formatErrorf("expected 3 corners, got %d (only triangles are supported)", len(args))
	}

	var corners [3]Vertex
	for i, tok := range args {
		ref, err := parseFaceVertexRef(tok)
		if err != nil {
			return err
		}
		v, err := p.pools.resolve(ref)
		if err != nil {
			return fmt.Errorf("corner %d: %w", i+1, err)
		}
		corners[i] = v
	}

	mesh := p.groups.get(p.active)
	for _, v := range corners {
		mesh.appendVertex(v)
	}
	return nil
}

// parseFaceVertexRef parses a "position/texcoord/normal" corner token.
func parseFaceVertexRef(tok string) (FaceVertexRef, error) {
	parts := strings.Split(tok, "/")
	if len(parts) != 3 {
		return FaceVertexRef{}, formatErrorf("invalid face corner %q (want v/vt/vn)", tok)
	}

	var idx [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if errors.Is(err, strconv.ErrRange) {
			return FaceVertexRef{}, referenceErrorf("index %s in corner %q out of range", part, tok)
		}
		if err != nil {
			return FaceVertexRef{}, formatErrorf("invalid face corner %q (want v/vt/vn)", tok)
		}
		idx[i] = n
	}
	return FaceVertexRef{Position: idx[0], TexCoord: idx[1], Normal: idx[2]}, nil
}
