package graphio

import (
	"io"
	"strings"

	"github.com/katalvlaran/dyngraph/core"
)

// readMatrixMarket reads a coordinate MatrixMarket file. Vertices 1..max(rows, cols)
// are created; entries are 1-based "i j [w]" and become edges i->j.
func readMatrixMarket(r io.Reader, g *core.Graph) error {
	s := newLineScanner(r, "")
	if !s.sc.Scan() {
		if err := s.sc.Err(); err != nil {
			return err
		}
		return s.errorf("missing banner")
	}
	s.line++
	banner := strings.Fields(strings.ToLower(s.sc.Text()))
	if len(banner) < 5 || banner[0] != "%%matrixmarket" || banner[1] != "matrix" || banner[2] != "coordinate" {
		return s.errorf("unsupported banner %q", s.sc.Text())
	}
	field, symmetry := banner[3], banner[4]
	switch field {
	case "real", "integer", "pattern":
	default:
		return s.errorf("unsupported field %q", field)
	}
	symmetric := symmetry == "symmetric" || symmetry == "skew-symmetric" || symmetry == "hermitian"
	pattern := field == "pattern"

	s.comments = "%"
	size, err := s.next()
	if err != nil {
		return err
	}
	if len(size) != 3 {
		return s.errorf("size line needs rows cols entries")
	}
	rows, err1 := parseID(size[0])
	cols, err2 := parseID(size[1])
	nnz, err3 := parseID(size[2])
	if err1 != nil || err2 != nil || err3 != nil || rows < 0 || cols < 0 || nnz < 0 {
		return s.errorf("bad size line %v", size)
	}
	n := rows
	if cols > n {
		n = cols
	}
	for v := int64(1); v <= n; v++ {
		if err := g.AddVertex(v, 0); err != nil {
			return err
		}
	}

	var read int64
	for {
		f, err := s.next()
		if err != nil {
			return err
		}
		if f == nil {
			break
		}
		if len(f) < 2 || !pattern && len(f) < 3 {
			return s.errorf("short entry %v", f)
		}
		i, err1 := parseID(f[0])
		j, err2 := parseID(f[1])
		if err1 != nil || err2 != nil || i < 1 || j < 1 || i > n || j > n {
			return s.errorf("entry %v out of range 1..%d", f[:2], n)
		}
		w := core.DefaultEdgeWeight
		if !pattern {
			if w, err = parseWeight(f[2]); err != nil {
				return s.errorf("bad weight %q", f[2])
			}
		}
		if err := addEdge(g, i, j, w); err != nil {
			return s.errorf("%v", err)
		}
		if symmetric && i != j {
			if err := addEdge(g, j, i, w); err != nil {
				return s.errorf("%v", err)
			}
		}
		read++
	}
	if read != nnz {
		return s.errorf("read %d entries, header declares %d", read, nnz)
	}
	return nil
}
