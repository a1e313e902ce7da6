package tempo

// State maps property names to resolved values for one update.
type State map[string]any

// Applier receives the resolved state of an Object on every update. It is
// the integration point for whatever consumes animated values.
type Applier interface {
	ApplyState(State)
}

// ApplierFunc adapts a plain function to Applier.
type ApplierFunc func(State)

// ApplyState calls f(s).
func (f ApplierFunc) ApplyState(s State) { f(s) }

// Target is anything a Timeline pushes its local time to. Object implements
// it; hosts may attach their own targets as well.
type Target interface {
	Update(localTime float64)
}

// Object groups named properties into one addressable target. On Update it
// resolves every property and hands the result to its Applier.
//
// The Applier type is a type parameter so the per-frame call is resolved at
// compile time for concrete appliers.
type Object[A Applier] struct {
	Name string

	applier A
	props   map[string]Track
	order   []string
	state   State
}

// NewObject creates an empty object that forwards resolved state to applier.
func NewObject[A Applier](name string, applier A) *Object[A] {
	return &Object[A]{
		Name:    name,
		applier: applier,
		props:   make(map[string]Track),
		state:   make(State),
	}
}

// Applier returns the object's applier.
func (o *Object[A]) Applier() A {
	return o.applier
}

// Attach registers tr under name, replacing any property already registered
// under that name. A nil track is ignored.
func (o *Object[A]) Attach(name string, tr Track) {
	if tr == nil {
		return
	}
	if _, exists := o.props[name]; !exists {
		o.order = append(o.order, name)
	}
	o.props[name] = tr
}

// Property returns the property registered under name. ok is false when
// there is none.
func (o *Object[A]) Property(name string) (tr Track, ok bool) {
	tr, ok = o.props[name]
	return tr, ok
}

// RemoveProperty unregisters name. It reports whether a property was removed.
func (o *Object[A]) RemoveProperty(name string) bool {
	if _, ok := o.props[name]; !ok {
		return false
	}
	delete(o.props, name)
	for i, n := range o.order {
		if n == name {
			o.order = append(o.order[:i], o.order[i+1:]...)
			break
		}
	}
	return true
}

// Names returns property names in registration order. The returned slice
// MUST NOT be mutated by the caller.
func (o *Object[A]) Names() []string {
	return o.order
}

// Len returns the number of registered properties.
func (o *Object[A]) Len() int {
	return len(o.props)
}

// Update resolves every property at localTime and passes the result to the
// applier. The State map is reused across updates; appliers that keep it
// past the call must copy it.
func (o *Object[A]) Update(localTime float64) {
	clear(o.state)
	for _, name := range o.order {
		o.state[name] = o.props[name].ResolveAny(localTime)
	}
	o.applier.ApplyState(o.state)
}

// AddProperty registers a new numeric property on o and returns it.
func AddProperty[T Number, A Applier](o *Object[A], name string, def T) *Property[T] {
	p := NewProperty(def)
	o.Attach(name, p)
	return p
}

// AddPropertyFunc registers a new property over an arbitrary value type on o
// and returns it. See NewPropertyFunc.
func AddPropertyFunc[T any, A Applier](o *Object[A], name string, def T, lerp LerpFunc[T]) *Property[T] {
	p := NewPropertyFunc(def, lerp)
	o.Attach(name, p)
	return p
}

// PropertyOf returns the property registered under name when it holds values
// of type T. ok is false when the name is unknown or the type differs.
func PropertyOf[T any, A Applier](o *Object[A], name string) (*Property[T], bool) {
	p, ok := o.props[name].(*Property[T])
	return p, ok
}
