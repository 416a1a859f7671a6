// Package loader builds renderer models from OBJ files and procedural
// generators.
package loader

import (
	"bufio"
	"fmt"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/SiegeLord/Voidwind/internal/logger"
	"github.com/SiegeLord/Voidwind/internal/renderer"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// faceVertex is one corner of an OBJ face: indices into the position,
// texcoord and normal lists. Missing indices are -1.
type faceVertex struct {
	v, vt, vn int32
}

// LoadModel parses an OBJ file into a model with the interleaved layout the
// geometry pass consumes. Vertex colors default to opaque white; faces with
// more than three corners are fanned into triangles. When recalculateNormals
// is set, face normals are rebuilt from the geometry (some exports carry
// broken normals).
func LoadModel(filename string, recalculateNormals bool) (*renderer.Model, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var positions []mgl32.Vec3
	var texCoords []mgl32.Vec2
	var normals []mgl32.Vec3
	var corners []faceVertex

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		switch parts[0] {
		case "v":
			v, err := parseVec3(parts[1:])
			if err != nil {
				return nil, fmt.Errorf("%s: bad vertex: %w", filename, err)
			}
			positions = append(positions, v)
		case "vt":
			vt, err := parseVec2(parts[1:])
			if err != nil {
				return nil, fmt.Errorf("%s: bad texture coordinate: %w", filename, err)
			}
			texCoords = append(texCoords, vt)
		case "vn":
			vn, err := parseVec3(parts[1:])
			if err != nil {
				return nil, fmt.Errorf("%s: bad normal: %w", filename, err)
			}
			normals = append(normals, vn)
		case "f":
			face, err := parseFace(parts[1:], len(positions), len(texCoords), len(normals))
			if err != nil {
				return nil, fmt.Errorf("%s: bad face: %w", filename, err)
			}
			// Fan triangulation preserves OBJ winding.
			for i := 1; i+1 < len(face); i++ {
				corners = append(corners, face[0], face[i], face[i+1])
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(corners) == 0 {
		return nil, fmt.Errorf("%s: no faces", filename)
	}

	// Each unique v/vt/vn triplet becomes one output vertex.
	interleaved := make([]float32, 0, len(corners)*renderer.VertexStride)
	faces := make([]int32, 0, len(corners))
	seen := make(map[faceVertex]int32, len(corners))

	for _, corner := range corners {
		if idx, ok := seen[corner]; ok {
			faces = append(faces, idx)
			continue
		}
		idx := int32(len(interleaved) / renderer.VertexStride)
		seen[corner] = idx

		pos := positions[corner.v]
		uv := mgl32.Vec2{}
		if corner.vt >= 0 {
			uv = texCoords[corner.vt]
		}
		normal := mgl32.Vec3{}
		if corner.vn >= 0 {
			normal = normals[corner.vn]
		}
		interleaved = append(interleaved,
			pos.X(), pos.Y(), pos.Z(),
			1, 1, 1, 1,
			uv.X(), uv.Y(),
			normal.X(), normal.Y(), normal.Z())
		faces = append(faces, idx)
	}

	if recalculateNormals {
		recalcNormals(interleaved, faces)
	}

	name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	model := renderer.NewModel(name, interleaved, faces)

	logger.Log.Info("Model loaded",
		zap.String("file", filename),
		zap.Int("vertices", len(interleaved)/renderer.VertexStride),
		zap.Int("triangles", len(faces)/3))
	return model, nil
}

// recalcNormals rebuilds per-vertex normals as the normalized sum of adjacent
// face normals, written in place into the interleaved buffer.
func recalcNormals(interleaved []float32, faces []int32) {
	vertexCount := len(interleaved) / renderer.VertexStride
	sums := make([]mgl32.Vec3, vertexCount)

	position := func(i int32) mgl32.Vec3 {
		base := int(i) * renderer.VertexStride
		return mgl32.Vec3{interleaved[base], interleaved[base+1], interleaved[base+2]}
	}

	for f := 0; f+2 < len(faces); f += 3 {
		a, b, c := faces[f], faces[f+1], faces[f+2]
		n := position(b).Sub(position(a)).Cross(position(c).Sub(position(a)))
		sums[a] = sums[a].Add(n)
		sums[b] = sums[b].Add(n)
		sums[c] = sums[c].Add(n)
	}

	for i := 0; i < vertexCount; i++ {
		n := sums[i]
		if n.Len() > 0 {
			n = n.Normalize()
		} else {
			n = mgl32.Vec3{0, 1, 0}
		}
		base := i*renderer.VertexStride + 9
		interleaved[base] = n.X()
		interleaved[base+1] = n.Y()
		interleaved[base+2] = n.Z()
	}
}

func parseVec3(parts []string) (mgl32.Vec3, error) {
	if len(parts) < 3 {
		return mgl32.Vec3{}, fmt.Errorf("expected 3 components, got %d", len(parts))
	}
	var out mgl32.Vec3
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(parts[i], 32)
		if err != nil {
			return mgl32.Vec3{}, err
		}
		out[i] = float32(f)
	}
	return out, nil
}

func parseVec2(parts []string) (mgl32.Vec2, error) {
	if len(parts) < 2 {
		return mgl32.Vec2{}, fmt.Errorf("expected 2 components, got %d", len(parts))
	}
	var out mgl32.Vec2
	for i := 0; i < 2; i++ {
		f, err := strconv.ParseFloat(parts[i], 32)
		if err != nil {
			return mgl32.Vec2{}, err
		}
		out[i] = float32(f)
	}
	return out, nil
}

// parseFace resolves one OBJ face into faceVertex triplets. OBJ indices are
// one-based; negative indices count back from the end of the current list.
func parseFace(parts []string, nv, nvt, nvn int) ([]faceVertex, error) {
	if len(parts) < 3 {
		return nil, fmt.Errorf("face with %d corners", len(parts))
	}
	face := make([]faceVertex, 0, len(parts))
	for _, part := range parts {
		fields := strings.Split(part, "/")
		fv := faceVertex{v: -1, vt: -1, vn: -1}

		v, err := resolveIndex(fields[0], nv)
		if err != nil {
			return nil, err
		}
		fv.v = v

		if len(fields) > 1 && fields[1] != "" {
			if fv.vt, err = resolveIndex(fields[1], nvt); err != nil {
				return nil, err
			}
		}
		if len(fields) > 2 && fields[2] != "" {
			if fv.vn, err = resolveIndex(fields[2], nvn); err != nil {
				return nil, err
			}
		}
		face = append(face, fv)
	}
	return face, nil
}

func resolveIndex(field string, count int) (int32, error) {
	idx, err := strconv.Atoi(field)
	if err != nil {
		return -1, err
	}
	if idx < 0 {
		idx = count + idx
	} else {
		idx--
	}
	if idx < 0 || idx >= count {
		return -1, fmt.Errorf("index %s out of range (%d entries)", field, count)
	}
	return int32(idx), nil
}
