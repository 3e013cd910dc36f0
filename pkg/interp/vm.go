package interp

import (
	"lumen/runtime-go/pkg/heap"
	"lumen/runtime-go/pkg/runtime"
)

// VM is the function-call surface of the Lumen built-in layer. It owns the
// realm's heap, the global environment and the %TypedArray% prototype, and
// dispatches callable values with an explicit `this` binding.
//
// A VM serves a single logical thread of execution. Callbacks may re-enter
// it recursively; there is no internal parallelism.
type VM struct {
	heap            *heap.Heap
	global          *runtime.Environment
	typedArrayProto *runtime.ObjectValue
}

// New returns a VM with an empty global environment and an initialised
// typed-array prototype.
func New() *VM {
	vm := &VM{
		heap:   heap.New(),
		global: runtime.NewEnvironment(nil),
	}
	vm.typedArrayProto = newTypedArrayPrototype(vm)
	return vm
}

// Heap returns the VM's heap.
func (vm *VM) Heap() *heap.Heap {
	return vm.heap
}

// GlobalEnvironment returns the VM's global environment.
func (vm *VM) GlobalEnvironment() *runtime.Environment {
	return vm.global
}

// TypedArrayPrototype exposes the shared %TypedArray% prototype object.
func (vm *VM) TypedArrayPrototype() *runtime.ObjectValue {
	return vm.typedArrayProto
}

// Call invokes a callable value with the given `this` binding and arguments.
// Non-callable values fault with a TypeError.
func (vm *VM) Call(callee runtime.Value, this runtime.Value, args []runtime.Value) (runtime.Value, error) {
	ctx := &runtime.NativeCallContext{This: this, VM: vm}
	switch fn := callee.(type) {
	case runtime.NativeFunctionValue:
		return fn.Impl(ctx, args)
	case *runtime.NativeFunctionValue:
		return fn.Impl(ctx, args)
	case runtime.FunctionObject:
		native := fn.NativeFunction()
		return native.Impl(ctx, args)
	default:
		return nil, runtime.NewTypeError("%s is not a function", describeValue(callee))
	}
}

// InvokeMethod resolves a named method on the %TypedArray% prototype and
// calls it with receiver bound as `this`. Receiver validation belongs to the
// method itself, not to the lookup.
func (vm *VM) InvokeMethod(receiver runtime.Value, name string, args ...runtime.Value) (runtime.Value, error) {
	prop, ok := vm.typedArrayProto.Property(name)
	if !ok {
		return nil, runtime.NewTypeError("no method '%s' on the TypedArray prototype", name)
	}
	if prop.Getter != nil {
		return nil, runtime.NewTypeError("'%s' is an accessor, not a method", name)
	}
	return vm.Call(prop.Value, receiver, args)
}

// ReadAccessor resolves a named accessor on the %TypedArray% prototype and
// invokes its getter against the receiver.
func (vm *VM) ReadAccessor(receiver runtime.Value, name string) (runtime.Value, error) {
	prop, ok := vm.typedArrayProto.Property(name)
	if !ok {
		return nil, runtime.NewTypeError("no property '%s' on the TypedArray prototype", name)
	}
	if prop.Getter == nil {
		return prop.Value, nil
	}
	return vm.Call(*prop.Getter, receiver, nil)
}

// argument returns the i-th call argument, or undefined when absent.
func argument(args []runtime.Value, i int) runtime.Value {
	if i < 0 || i >= len(args) {
		return runtime.UndefinedValue{}
	}
	if args[i] == nil {
		return runtime.UndefinedValue{}
	}
	return args[i]
}
