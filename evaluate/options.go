// SPDX-License-Identifier: MIT

package evaluate

import (
	"runtime"

	"go.uber.org/zap"
)

// DefaultBatchSize bounds the number of requests admitted at once.
const DefaultBatchSize = 256

// Options configures an Evaluator. Zero values select the defaults.
type Options struct {
	Workers   int         // default runtime.NumCPU()
	BatchSize int         // default DefaultBatchSize
	Logger    *zap.Logger // default zap.NewNop()
}

func (o Options) withDefaults() Options {
	if o.Workers <= 0 {
		o.Workers = runtime.NumCPU()
	}
	if o.BatchSize <= 0 {
		o.BatchSize = DefaultBatchSize
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}

	return o
}
