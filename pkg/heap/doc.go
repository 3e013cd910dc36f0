/*
Package heap provides allocation and reachability tracing for collectible
runtime objects.

Any type owning a reference to another collectible object implements Cell and
reports that edge from its Trace hook; the collector never inspects cells by
reflection. The heap is owned by a single logical thread of execution, so no
locking happens here.
*/
package heap

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'lumen.heap'
func tracer() tracing.Trace {
	return tracing.Select("lumen.heap")
}
