package module

import "reflect"

// PortsOf returns the first port of type T that m offers
// Ports() may be T itself or a struct whose exported fields are checked in order
func PortsOf[T any](m Module) (T, bool) {
	var zero T
	p := m.Ports()
	if p == nil {
		return zero, false
	}
	if t, ok := p.(T); ok {
		return t, true
	}

	v := reflect.ValueOf(p)
	if v.Kind() != reflect.Struct {
		return zero, false
	}
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		if !f.CanInterface() {
			continue
		}
		if t, ok := f.Interface().(T); ok {
			return t, true
		}
	}
	return zero, false
}

// MustPortsOf is PortsOf for wiring code that cannot continue without the port
func MustPortsOf[T any](m Module) T {
	t, ok := PortsOf[T](m)
	if !ok {
		panic("module " + m.Name() + " offers no port of the requested type")
	}
	return t
}
