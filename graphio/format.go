package graphio

import "fmt"

// Format is an input graph file format.
type Format int

const (
	FormatMatrixMarket Format = iota + 1
	FormatEdgeList
	FormatSnapTemporal
)

var formatNames = map[Format]string{
	FormatMatrixMarket: "matrix-market",
	FormatEdgeList:     "edgelist",
	FormatSnapTemporal: "snap-temporal",
}

func (f Format) String() string {
	if s, ok := formatNames[f]; ok {
		return s
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat maps an input format name to a Format.
func ParseFormat(s string) (Format, error) {
	for f, name := range formatNames {
		if name == s {
			return f, nil
		}
	}
	return 0, fmt.Errorf("ParseFormat: %q: %w", s, ErrUnknownInputFormat)
}

// OutputFormat selects where snapshots go.
type OutputFormat int

const (
	// OutputEdgeList writes one edgelist file per snapshot.
	OutputEdgeList OutputFormat = iota
	// OutputBadger stores each snapshot under its name in a badger database.
	OutputBadger
)

func (f OutputFormat) String() string {
	switch f {
	case OutputEdgeList:
		return "edgelist"
	case OutputBadger:
		return "badger"
	default:
		return fmt.Sprintf("OutputFormat(%d)", int(f))
	}
}

// ParseOutputFormat maps an output format name; the empty string is edgelist.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch s {
	case "", "edgelist":
		return OutputEdgeList, nil
	case "badger":
		return OutputBadger, nil
	default:
		return 0, fmt.Errorf("ParseOutputFormat: %q: %w", s, ErrUnknownOutputFormat)
	}
}
