package interp

import (
	"fmt"

	"lumen/runtime-go/pkg/runtime"
)

// describeValue renders a value for diagnostics without invoking user code.
func describeValue(val runtime.Value) string {
	switch v := val.(type) {
	case nil:
		return "<nil>"
	case runtime.UndefinedValue:
		return "undefined"
	case runtime.NullValue:
		return "null"
	case runtime.BoolValue:
		if v.Val {
			return "true"
		}
		return "false"
	case runtime.NumberValue:
		return fmt.Sprintf("%g", v.Val)
	case runtime.BigIntValue:
		if v.Val == nil {
			return "0n"
		}
		return v.Val.String() + "n"
	case runtime.StringValue:
		return v.Val
	case runtime.NativeFunctionValue:
		return fmt.Sprintf("<native %s>", v.Name)
	case *runtime.NativeFunctionValue:
		return fmt.Sprintf("<native %s>", v.Name)
	case *runtime.ArrayBufferValue:
		return "<array buffer>"
	case *runtime.TypedArrayValue:
		return fmt.Sprintf("<%s array of %d>", v.ElementKind(), v.ArrayLength())
	case runtime.FunctionObject:
		return fmt.Sprintf("<function %s>", v.NativeFunction().Name)
	default:
		return fmt.Sprintf("[%s]", val.Kind())
	}
}
