package interp

import (
	"math"

	"lumen/runtime-go/pkg/runtime"
)

// newTypedArrayPrototype assembles the shared %TypedArray% prototype:
// accessors are Configurable, methods Writable|Configurable with a declared
// arity of 1.
func newTypedArrayPrototype(vm *VM) *runtime.ObjectValue {
	proto := runtime.NewObject()
	proto.DefineNativeAccessor("length", runtime.AttrConfigurable, vm.typedArrayLengthGetter)
	proto.DefineNativeAccessor("buffer", runtime.AttrConfigurable, vm.typedArrayBufferGetter)
	proto.DefineNativeAccessor("byteLength", runtime.AttrConfigurable, vm.typedArrayByteLengthGetter)
	proto.DefineNativeAccessor("byteOffset", runtime.AttrConfigurable, vm.typedArrayByteOffsetGetter)

	attr := runtime.AttrWritable | runtime.AttrConfigurable
	proto.DefineNativeFunction("at", 1, attr, vm.typedArrayAt)
	proto.DefineNativeFunction("every", 1, attr, vm.typedArrayEvery)
	proto.DefineNativeFunction("find", 1, attr, vm.typedArrayFind)
	proto.DefineNativeFunction("findIndex", 1, attr, vm.typedArrayFindIndex)
	proto.DefineNativeFunction("forEach", 1, attr, vm.typedArrayForEach)
	return proto
}

// typedArrayFrom validates the call-time receiver. Every accessor and
// iteration entry point goes through here first, per call, with no caching.
func typedArrayFrom(this runtime.Value) (*runtime.TypedArrayValue, error) {
	if view, ok := this.(*runtime.TypedArrayValue); ok {
		return view, nil
	}
	return nil, runtime.NewTypeError("%s is not a TypedArray", describeValue(this))
}

// callbackFromArgs validates the callback argument for an iteration method.
func callbackFromArgs(name string, args []runtime.Value) (runtime.Value, error) {
	if len(args) < 1 {
		return nil, runtime.NewTypeError("%s requires at least one argument", name)
	}
	callback := args[0]
	if !runtime.IsCallable(callback) {
		return nil, runtime.NewTypeError("%s is not a function", describeValue(callback))
	}
	return callback, nil
}

type iterationDecision int

const (
	iterationContinue iterationDecision = iota
	iterationBreak
)

// forEachItem is the generic traversal behind every/find/findIndex/forEach.
// The element count is snapshotted before the callback argument is even
// validated; a callback that mutates or detaches the buffer mid-loop cannot
// change how many indices are visited, only make the remaining reads yield
// undefined. Indices are visited in strictly ascending order, once each, and
// a faulting callback stops the loop with no further invocations.
func (vm *VM) forEachItem(this runtime.Value, name string, args []runtime.Value,
	policy func(index int, element, callbackResult runtime.Value) iterationDecision) error {
	view, err := typedArrayFrom(this)
	if err != nil {
		return err
	}
	initialLength := view.ArrayLength()

	callback, err := callbackFromArgs(name, args)
	if err != nil {
		return err
	}
	thisBinding := argument(args, 1)

	for i := 0; i < initialLength; i++ {
		element := view.Get(i)
		callbackResult, err := vm.Call(callback, thisBinding, []runtime.Value{
			element,
			runtime.NumberValue{Val: float64(i)},
			view,
		})
		if err != nil {
			return err
		}
		if policy(i, element, callbackResult) == iterationBreak {
			break
		}
	}
	return nil
}

// resolveRelativeIndex maps a coerced relative index onto [0, length) with a
// checked unsigned accumulator: any overflow means "no element", never a
// fault and never clamping.
func resolveRelativeIndex(relative float64, length int) (int, bool) {
	var index uint64
	if relative >= 0 {
		if relative >= float64(math.MaxUint64) {
			return 0, false
		}
		index = uint64(relative)
	} else {
		magnitude := -relative
		if magnitude >= float64(math.MaxUint64) {
			return 0, false
		}
		m := uint64(magnitude)
		l := uint64(length)
		if m > l {
			// Unsigned subtraction would wrap around.
			return 0, false
		}
		index = l - m
	}
	if index >= uint64(length) {
		return 0, false
	}
	return int(index), true
}

func (vm *VM) typedArrayAt(ctx *runtime.NativeCallContext, args []runtime.Value) (runtime.Value, error) {
	view, err := typedArrayFrom(ctx.This)
	if err != nil {
		return nil, err
	}
	length := view.ArrayLength()
	relative, err := runtime.ToIntegerOrInfinity(argument(args, 0))
	if err != nil {
		return nil, err
	}
	if math.IsInf(relative, 0) {
		return runtime.UndefinedValue{}, nil
	}
	index, ok := resolveRelativeIndex(relative, length)
	if !ok {
		return runtime.UndefinedValue{}, nil
	}
	return view.Get(index), nil
}

func (vm *VM) typedArrayEvery(ctx *runtime.NativeCallContext, args []runtime.Value) (runtime.Value, error) {
	result := true
	err := vm.forEachItem(ctx.This, "every", args, func(_ int, _, callbackResult runtime.Value) iterationDecision {
		if !runtime.ToBoolean(callbackResult) {
			result = false
			return iterationBreak
		}
		return iterationContinue
	})
	if err != nil {
		return nil, err
	}
	return runtime.BoolValue{Val: result}, nil
}

func (vm *VM) typedArrayFind(ctx *runtime.NativeCallContext, args []runtime.Value) (runtime.Value, error) {
	var result runtime.Value = runtime.UndefinedValue{}
	err := vm.forEachItem(ctx.This, "find", args, func(_ int, element, callbackResult runtime.Value) iterationDecision {
		if runtime.ToBoolean(callbackResult) {
			result = element
			return iterationBreak
		}
		return iterationContinue
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (vm *VM) typedArrayFindIndex(ctx *runtime.NativeCallContext, args []runtime.Value) (runtime.Value, error) {
	resultIndex := -1
	err := vm.forEachItem(ctx.This, "findIndex", args, func(index int, _, callbackResult runtime.Value) iterationDecision {
		if runtime.ToBoolean(callbackResult) {
			resultIndex = index
			return iterationBreak
		}
		return iterationContinue
	})
	if err != nil {
		return nil, err
	}
	return runtime.NumberValue{Val: float64(resultIndex)}, nil
}

func (vm *VM) typedArrayForEach(ctx *runtime.NativeCallContext, args []runtime.Value) (runtime.Value, error) {
	err := vm.forEachItem(ctx.This, "forEach", args, func(int, runtime.Value, runtime.Value) iterationDecision {
		return iterationContinue
	})
	if err != nil {
		return nil, err
	}
	return runtime.UndefinedValue{}, nil
}

func (vm *VM) typedArrayLengthGetter(ctx *runtime.NativeCallContext, _ []runtime.Value) (runtime.Value, error) {
	view, err := typedArrayFrom(ctx.This)
	if err != nil {
		return nil, err
	}
	if view.Buffer().IsDetached() {
		return runtime.NumberValue{Val: 0}, nil
	}
	return runtime.NumberValue{Val: float64(view.ArrayLength())}, nil
}

func (vm *VM) typedArrayBufferGetter(ctx *runtime.NativeCallContext, _ []runtime.Value) (runtime.Value, error) {
	view, err := typedArrayFrom(ctx.This)
	if err != nil {
		return nil, err
	}
	// The buffer handle stays observable even after detachment.
	return view.Buffer(), nil
}

func (vm *VM) typedArrayByteLengthGetter(ctx *runtime.NativeCallContext, _ []runtime.Value) (runtime.Value, error) {
	view, err := typedArrayFrom(ctx.This)
	if err != nil {
		return nil, err
	}
	if view.Buffer().IsDetached() {
		return runtime.NumberValue{Val: 0}, nil
	}
	return runtime.NumberValue{Val: float64(view.ByteLength())}, nil
}

func (vm *VM) typedArrayByteOffsetGetter(ctx *runtime.NativeCallContext, _ []runtime.Value) (runtime.Value, error) {
	view, err := typedArrayFrom(ctx.This)
	if err != nil {
		return nil, err
	}
	if view.Buffer().IsDetached() {
		return runtime.NumberValue{Val: 0}, nil
	}
	return runtime.NumberValue{Val: float64(view.ByteOffset())}, nil
}
