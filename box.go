package carton

// Box is the type-erased payload holder behind a Value. It records a
// type name for the payload and keeps a shared pointer to the concrete
// allocation, so cloning a Box hands out another handle to the same
// allocation rather than a copy. While a payload is still undecoded
// the Box holds a LazySegment instead of a pointer.
//
// The pointer travels inside an interface value; the interface copy is
// the shared-ownership handle, and the garbage collector keeps the
// allocation alive for as long as any Box references it.
type Box struct {
	name string
	ref  any // always a pointer to the concrete payload
	lazy *LazySegment
}

// boxOf wraps a concrete payload eagerly, deriving its type name.
func boxOf[T any](v T) Box {
	p := new(T)
	*p = v
	return Box{name: typeNameOf(typeFor[T]()), ref: p}
}

// boxLazy wraps a deferred payload; the recorded name is whatever the
// wire reported.
func boxLazy(seg *LazySegment) Box {
	return Box{name: seg.TypeName, lazy: seg}
}

// TypeName returns the recorded type name of the payload.
func (b *Box) TypeName() string { return b.name }

// IsLazy reports whether the payload is still an undecoded segment.
func (b *Box) IsLazy() bool { return b.lazy != nil }

// Clone returns a handle over the same allocation. A lazy Box gets its
// own segment descriptor pointing at the same shared buffer, so clones
// resolve independently.
func (b Box) Clone() Box {
	if b.lazy != nil {
		seg := *b.lazy
		b.lazy = &seg
	}
	return b
}

func (b *Box) setEager(name string, ref any) {
	b.name = name
	b.ref = ref
	b.lazy = nil
}

// unbox performs the checked downcast back to *T. The stored name must
// be compatible with T's; repeated calls on the same Box return the
// identical pointer.
func unbox[T any](b *Box) (*T, error) {
	if b.lazy != nil {
		return nil, internalErr("unbox called on a lazy payload")
	}
	want := typeNameOf(typeFor[T]())
	if !compatibleTypeNames(want, b.name) {
		return nil, typeMismatch(want, b.name)
	}
	p, ok := b.ref.(*T)
	if !ok {
		return nil, typeMismatch(want, b.name)
	}
	return p, nil
}
