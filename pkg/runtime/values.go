package runtime

import (
	"fmt"
	"math/big"
)

// Kind identifies the runtime value category.
type Kind int

const (
	KindUndefined Kind = iota
	KindNull
	KindBool
	KindNumber
	KindBigInt
	KindString
	KindObject
	KindNativeFunction
	KindArrayBuffer
	KindTypedArray
)

func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindBigInt:
		return "bigint"
	case KindString:
		return "string"
	case KindObject:
		return "object"
	case KindNativeFunction:
		return "native_function"
	case KindArrayBuffer:
		return "array_buffer"
	case KindTypedArray:
		return "typed_array"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all runtime values.
type Value interface {
	Kind() Kind
}

//-----------------------------------------------------------------------------
// Scalars
//-----------------------------------------------------------------------------

// UndefinedValue is the canonical "no value" sentinel. Absent arguments,
// out-of-range reads and reads through a detached buffer all produce it;
// it is never a fault.
type UndefinedValue struct{}

func (UndefinedValue) Kind() Kind { return KindUndefined }

type NullValue struct{}

func (NullValue) Kind() Kind { return KindNull }

type BoolValue struct {
	Val bool
}

func (v BoolValue) Kind() Kind { return KindBool }

type NumberValue struct {
	Val float64
}

func (v NumberValue) Kind() Kind { return KindNumber }

// BigIntValue carries an arbitrary-precision integer. Most of the built-in
// layer passes these through untouched; operations that only work on doubles
// reject them explicitly.
type BigIntValue struct {
	Val *big.Int
}

func (v BigIntValue) Kind() Kind { return KindBigInt }

type StringValue struct {
	Val string
}

func (v StringValue) Kind() Kind { return KindString }

//-----------------------------------------------------------------------------
// Callables
//-----------------------------------------------------------------------------

// Caller is the slice of the VM that native implementations need in order to
// invoke user-supplied callables (iteration callbacks, accessors).
type Caller interface {
	Call(callee Value, this Value, args []Value) (Value, error)
}

// NativeCallContext provides hooks for native functions: the `this` binding
// of the call and a handle back into the VM for nested invocations.
type NativeCallContext struct {
	This Value
	VM   Caller
}

type NativeFunc func(*NativeCallContext, []Value) (Value, error)

// NativeFunctionValue is a function implemented in Go. Arity is the declared
// parameter count, observable on introspection; it is not enforced on calls.
type NativeFunctionValue struct {
	Name  string
	Arity int
	Impl  NativeFunc
}

func (v NativeFunctionValue) Kind() Kind { return KindNativeFunction }

// FunctionObject is a callable object: a value with identity (usually a heap
// cell) that exposes its behaviour as a native function.
type FunctionObject interface {
	Value
	NativeFunction() NativeFunctionValue
}

// IsCallable reports whether a value may be invoked through the VM.
func IsCallable(v Value) bool {
	switch v.(type) {
	case NativeFunctionValue, *NativeFunctionValue:
		return true
	}
	_, ok := v.(FunctionObject)
	return ok
}

//-----------------------------------------------------------------------------
// Utility helpers
//-----------------------------------------------------------------------------

// CloneBigInt copies the provided big.Int pointer, tolerating nil.
func CloneBigInt(src *big.Int) *big.Int {
	if src == nil {
		return nil
	}
	return new(big.Int).Set(src)
}
