package repokit

// Binder turns a Queryer into a repo; services hold binders so tests can swap the repo
type Binder[T any] interface {
	Bind(Queryer) T
}

// BindFunc adapts a plain constructor to Binder
type BindFunc[T any] func(Queryer) T

// Bind calls f
func (f BindFunc[T]) Bind(q Queryer) T { return f(q) }

// MustBind binds q, panicking on a nil binder or Queryer
func MustBind[T any](b Binder[T], q Queryer) T {
	switch {
	case b == nil:
		panic("repokit: nil Binder")
	case q == nil:
		panic("repokit: nil Queryer")
	}
	return b.Bind(q)
}
