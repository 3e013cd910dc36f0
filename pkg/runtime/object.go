package runtime

// PropertyAttributes carry the writable/enumerable/configurable flags a
// defined property is installed with.
type PropertyAttributes uint8

const (
	AttrWritable PropertyAttributes = 1 << iota
	AttrEnumerable
	AttrConfigurable

	AttrNone PropertyAttributes = 0
)

// Has reports whether all flags in mask are set.
func (a PropertyAttributes) Has(mask PropertyAttributes) bool {
	return a&mask == mask
}

// Property is a single slot in an object's property table. When Getter is
// non-nil the property is an accessor and Value is ignored.
type Property struct {
	Value  Value
	Getter *NativeFunctionValue
	Attrs  PropertyAttributes
}

// ObjectValue is a plain object with an ordered property table. The built-in
// layer only needs enough object machinery to assemble prototypes; full
// property semantics (prototype chains, setters, deletion) live elsewhere.
type ObjectValue struct {
	props map[string]Property
	order []string
}

// NewObject creates an empty object.
func NewObject() *ObjectValue {
	return &ObjectValue{props: make(map[string]Property)}
}

func (o *ObjectValue) Kind() Kind { return KindObject }

func (o *ObjectValue) define(name string, prop Property) {
	if _, exists := o.props[name]; !exists {
		o.order = append(o.order, name)
	}
	o.props[name] = prop
}

// DefineNativeFunction installs a named native method with the given declared
// arity and attribute flags.
func (o *ObjectValue) DefineNativeFunction(name string, arity int, attrs PropertyAttributes, impl NativeFunc) {
	o.define(name, Property{
		Value: NativeFunctionValue{Name: name, Arity: arity, Impl: impl},
		Attrs: attrs,
	})
}

// DefineNativeAccessor installs a getter-only accessor property.
func (o *ObjectValue) DefineNativeAccessor(name string, attrs PropertyAttributes, getter NativeFunc) {
	fn := NativeFunctionValue{Name: "get " + name, Arity: 0, Impl: getter}
	o.define(name, Property{Getter: &fn, Attrs: attrs})
}

// Property looks up a slot by name.
func (o *ObjectValue) Property(name string) (Property, bool) {
	prop, ok := o.props[name]
	return prop, ok
}

// Keys returns property names in definition order.
func (o *ObjectValue) Keys() []string {
	keys := make([]string, len(o.order))
	copy(keys, o.order)
	return keys
}
