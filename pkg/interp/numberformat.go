package interp

import (
	"lumen/runtime-go/pkg/heap"
	"lumen/runtime-go/pkg/intl"
	"lumen/runtime-go/pkg/runtime"
)

// NumberFormatFunction is the callable object handed out for a number-format
// configuration. It holds exactly one reference to the shared configuration
// and keeps it alive through the trace hook for as long as the function
// itself is reachable.
type NumberFormatFunction struct {
	format *intl.NumberFormat
}

// NewNumberFormatFunction allocates the callable on the VM's heap. The
// configuration is adopted as well so the collector can see the edge.
func NewNumberFormatFunction(vm *VM, format *intl.NumberFormat) *NumberFormatFunction {
	vm.heap.Adopt(format)
	return heap.Allocate(vm.heap, &NumberFormatFunction{format: format})
}

func (f *NumberFormatFunction) Kind() runtime.Kind { return runtime.KindNativeFunction }

// Format exposes the referenced configuration.
func (f *NumberFormatFunction) Format() *intl.NumberFormat {
	return f.format
}

// NativeFunction implements runtime.FunctionObject. The declared arity is 1;
// callers may still pass any number of arguments.
func (f *NumberFormatFunction) NativeFunction() runtime.NativeFunctionValue {
	return runtime.NativeFunctionValue{Name: "format", Arity: 1, Impl: f.call}
}

func (f *NumberFormatFunction) call(_ *runtime.NativeCallContext, args []runtime.Value) (runtime.Value, error) {
	numeric, err := runtime.ToNumeric(argument(args, 0))
	if err != nil {
		return nil, err
	}
	if _, isBigInt := numeric.(runtime.BigIntValue); isBigInt {
		return nil, runtime.NewNotImplementedError("bigint number formatting")
	}
	n := numeric.(runtime.NumberValue)
	return runtime.StringValue{Val: intl.FormatNumeric(f.format, n.Val)}, nil
}

// Trace implements heap.Cell: the only owned edge is the configuration.
func (f *NumberFormatFunction) Trace(visit func(heap.Cell)) {
	visit(f.format)
}
