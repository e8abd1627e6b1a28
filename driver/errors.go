package driver

import (
	"errors"

	"github.com/katalvlaran/dyngraph/config"
	"github.com/katalvlaran/dyngraph/graphio"
	"github.com/katalvlaran/dyngraph/transform"
	"github.com/katalvlaran/dyngraph/update"
)

var fatal = []error{
	config.ErrInvalidOption,
	graphio.ErrUnknownInputFormat,
	graphio.ErrUnknownOutputFormat,
	graphio.ErrInputFileNotFound,
	graphio.ErrMalformedInput,
	graphio.ErrOutputFileCreateFailed,
	transform.ErrUnknownInputTransform,
	update.ErrUnknownUpdateNature,
	update.ErrUnknownDistribution,
	update.ErrInvalidSamplerConfig,
}

// IsFatal reports whether err is a configuration-class error that must
// abort the run.
func IsFatal(err error) bool {
	for _, target := range fatal {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
