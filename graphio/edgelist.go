package graphio

import (
	"bufio"
	"io"
	"strconv"

	"github.com/katalvlaran/dyngraph/core"
)

// readEdgeList reads the format WriteEdgeList produces: "<n> <m>" then m
// edge lines. Vertices named by edges are created on demand; n only has to
// be at least the number of distinct vertices seen, and missing vertices
// 0..n-1 are added so isolated vertices survive a round trip.
func readEdgeList(r io.Reader, g *core.Graph) error {
	s := newLineScanner(r, "#%")
	head, err := s.next()
	if err != nil {
		return err
	}
	if len(head) != 2 {
		return s.errorf("header needs <n> <m>")
	}
	n, err1 := parseID(head[0])
	m, err2 := parseID(head[1])
	if err1 != nil || err2 != nil || n < 0 || m < 0 {
		return s.errorf("bad header %v", head)
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
		if len(f) < 2 || len(f) > 3 {
			return s.errorf("edge needs <u> <v> [<w>]")
		}
		u, err1 := parseID(f[0])
		v, err2 := parseID(f[1])
		if err1 != nil || err2 != nil {
			return s.errorf("bad endpoints %v", f[:2])
		}
		w := core.DefaultEdgeWeight
		if len(f) == 3 {
			if w, err = parseWeight(f[2]); err != nil {
				return s.errorf("bad weight %q", f[2])
			}
		}
		if err := addEdge(g, u, v, w); err != nil {
			return s.errorf("%v", err)
		}
		read++
	}
	if read != m {
		return s.errorf("read %d edges, header declares %d", read, m)
	}
	if int64(g.Order()) > n {
		return s.errorf("%d vertices seen, header declares %d", g.Order(), n)
	}
	for v := int64(0); int64(g.Order()) < n; v++ {
		if err := g.AddVertex(v, 0); err != nil {
			return err
		}
	}
	return nil
}

// WriteEdgeList writes "<n> <m>" then every edge as "<u> <v>" (or
// "<u> <v> <w>" when weighted) in ascending (u, v) order.
func WriteEdgeList(w io.Writer, g *core.Graph, weighted bool) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 64)
	buf = strconv.AppendInt(buf, int64(g.Order()), 10)
	buf = append(buf, ' ')
	buf = strconv.AppendInt(buf, int64(g.Size()), 10)
	buf = append(buf, '\n')
	if _, err := bw.Write(buf); err != nil {
		return err
	}
	for _, e := range g.Edges() {
		buf = strconv.AppendInt(buf[:0], e.From, 10)
		buf = append(buf, ' ')
		buf = strconv.AppendInt(buf, e.To, 10)
		if weighted {
			buf = append(buf, ' ')
			buf = strconv.AppendInt(buf, e.Weight, 10)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}
