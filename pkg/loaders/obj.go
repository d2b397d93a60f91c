package loaders

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/pathtracer/engine/pkg/core"
)

// OBJMesh is the raw, unindexed-by-triangle data parsed from an OBJ file:
// a vertex buffer, an optional per-vertex UV buffer, and a flat face index
// list ready for geometry.NewTriangleMesh.
type OBJMesh struct {
	Vertices []core.Vec3
	UVs      []core.Vec2 // empty if the file has no "vt" lines
	Faces    []int       // flat, 3 per triangle, 0-indexed into Vertices
}

// LoadOBJ parses a Wavefront OBJ file, supporting "v", "vt", and triangular
// "f" lines only. Face vertex references may carry vt/vn indices
// ("f v/vt/vn") but only the position index is used for geometry; vn is
// ignored since TriangleMesh derives its own normals. A missing vt index in
// a face token means "no UV for this vertex." Faces with other than three
// vertices are rejected, matching spec.md's "triangular faces only."
func LoadOBJ(filename string) (*OBJMesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "open obj file %q", filename)
	}
	defer file.Close()

	mesh := &OBJMesh{}
	var faceUVs []core.Vec2 // per face-vertex UV, parallel to Faces once resolved
	hasUVs := false

	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			v, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, errors.Wrapf(err, "obj %q line %d: parse vertex", filename, lineNum)
			}
			mesh.Vertices = append(mesh.Vertices, core.NewVec3(v[0], v[1], v[2]))

		case "vt":
			v, err := parseFloats(fields[1:], 2)
			if err != nil {
				return nil, errors.Wrapf(err, "obj %q line %d: parse texture coordinate", filename, lineNum)
			}
			mesh.UVs = append(mesh.UVs, core.NewVec2(v[0], v[1]))
			hasUVs = true

		case "vn":
			// Normals are parsed by the format but ignored: TriangleMesh
			// derives flat face normals from vertex winding.
			continue

		case "f":
			verts := fields[1:]
			if len(verts) != 3 {
				return nil, errors.Errorf("obj %q line %d: only triangular faces are supported, got %d vertices", filename, lineNum, len(verts))
			}
			for _, token := range verts {
				vertIdx, uvIdx, err := parseFaceVertex(token)
				if err != nil {
					return nil, errors.Wrapf(err, "obj %q line %d: parse face", filename, lineNum)
				}
				if vertIdx <= 0 || vertIdx > len(mesh.Vertices) {
					return nil, errors.Errorf("obj %q line %d: vertex index %d out of range", filename, lineNum, vertIdx)
				}
				mesh.Faces = append(mesh.Faces, vertIdx-1)

				if uvIdx > 0 && uvIdx <= len(mesh.UVs) {
					faceUVs = append(faceUVs, mesh.UVs[uvIdx-1])
				} else {
					faceUVs = append(faceUVs, core.Vec2{})
				}
			}

		default:
			continue
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "read obj file %q", filename)
	}

	// "f" lines reference UVs per face-vertex, but NewTriangleMesh wants one
	// UV per vertex. A shared vertex referenced with inconsistent UVs across
	// faces is a known limitation of this simplified reader: the first
	// occurrence wins.
	if hasUVs {
		perVertexUV := make([]core.Vec2, len(mesh.Vertices))
		seen := make([]bool, len(mesh.Vertices))
		for i, vertIdx := range mesh.Faces {
			if !seen[vertIdx] {
				perVertexUV[vertIdx] = faceUVs[i]
				seen[vertIdx] = true
			}
		}
		mesh.UVs = perVertexUV
	} else {
		mesh.UVs = nil
	}

	return mesh, nil
}

func parseFloats(fields []string, n int) ([]float64, error) {
	if len(fields) < n {
		return nil, errors.Errorf("expected at least %d values, got %d", n, len(fields))
	}
	values := make([]float64, n)
	for i := 0; i < n; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "parse %q as float", fields[i])
		}
		values[i] = v
	}
	return values, nil
}

// parseFaceVertex parses a single "f" token of the form v, v/vt, v/vt/vn,
// or v//vn. A missing vt index is reported as 0, meaning "absent."
func parseFaceVertex(token string) (vertIdx, uvIdx int, err error) {
	parts := strings.Split(token, "/")
	vertIdx, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, errors.Wrapf(err, "parse vertex index %q", parts[0])
	}
	if len(parts) >= 2 && parts[1] != "" {
		uvIdx, err = strconv.Atoi(parts[1])
		if err != nil {
			return 0, 0, errors.Wrapf(err, "parse uv index %q", parts[1])
		}
	}
	return vertIdx, uvIdx, nil
}
