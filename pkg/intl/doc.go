/*
Package intl holds the number-formatting side of the Lumen built-in layer:
the shared NumberFormat configuration object, the pure formatting routine and
the YAML manifest of named locale presets.
*/
package intl

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'lumen.intl'
func tracer() tracing.Trace {
	return tracing.Select("lumen.intl")
}
