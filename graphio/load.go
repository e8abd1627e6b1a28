// SPDX-License-Identifier: MIT
// Package: dyngraph/graphio
//
// load.go - format dispatch and shared line scanning.

package graphio

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/dyngraph/core"
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// Load opens path and reads it in the given format. A missing or unreadable
// file fails with ErrInputFileNotFound.
func Load(format Format, path string, opts ...core.GraphOption) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %s: %w: %w", path, ErrInputFileNotFound, err)
	}
	defer f.Close()

	g, err := Read(format, f, opts...)
	if err != nil {
		return nil, fmt.Errorf("Load: %s: %w", path, err)
	}
	return g, nil
}

// Read parses r in the given format.
func Read(format Format, r io.Reader, opts ...core.GraphOption) (*core.Graph, error) {
	g := core.NewGraph(append([]core.GraphOption{core.WithLoops()}, opts...)...)
	var err error
	switch format {
	case FormatMatrixMarket:
		err = readMatrixMarket(r, g)
	case FormatEdgeList:
		err = readEdgeList(r, g)
	case FormatSnapTemporal:
		err = readSnapTemporal(r, g)
	default:
		return nil, fmt.Errorf("Read: %v: %w", format, ErrUnknownInputFormat)
	}
	if err != nil {
		return nil, err
	}
	return g, nil
}

// lineScanner yields whitespace-split, non-comment lines with their line numbers.
type lineScanner struct {
	sc       *bufio.Scanner
	comments string
	line     int
}

func newLineScanner(r io.Reader, comments string) *lineScanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return &lineScanner{sc: sc, comments: comments}
}

// next returns the fields of the next data line, or nil at EOF.
func (s *lineScanner) next() ([]string, error) {
	for s.sc.Scan() {
		s.line++
		text := strings.TrimSpace(s.sc.Text())
		if text == "" || strings.ContainsRune(s.comments, rune(text[0])) {
			continue
		}
		return strings.Fields(text), nil
	}
	return nil, s.sc.Err()
}

func (s *lineScanner) errorf(format string, args ...any) error {
	return fmt.Errorf("line %d: %s: %w", s.line, fmt.Sprintf(format, args...), ErrMalformedInput)
}

func parseID(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

// parseWeight accepts integer or real weights, rounding reals half away from zero.
func parseWeight(s string) (int64, error) {
	if w, err := strconv.ParseInt(s, 10, 64); err == nil {
		return w, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return int64(math.Round(f)), nil
}

// addEdge inserts u->v, collapsing a repeated pair when the graph is simple.
func addEdge(g *core.Graph, u, v, w int64) error {
	if !g.Multigraph() && g.HasEdge(u, v) {
		return nil
	}
	return g.AddEdge(u, v, w)
}
