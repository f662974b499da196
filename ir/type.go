package ir

import "hash/fnv"

// Type is a point in the method body's type lattice. The kind set is closed:
// PrimType, RefType and NullType are the only implementations, and code
// switching over them does not need a default arm beyond panicking.
//
// Two Type values may be distinct representations of the same type, so
// denotation equality goes through Equals (or an Oracle), never through ==.
type Type interface {
	typeNode()
	Equals(Type) bool
	Hash() uint64
	String() string

	// AllowedInFinalCode reports whether the type is legal in emitted code.
	AllowedInFinalCode() bool
	// DefaultFinalType is the replacement substituted during finalization.
	// It is the type itself whenever AllowedInFinalCode is true.
	DefaultFinalType() Type

	// EmitName renders the type's source-level name under the given
	// front-end profile. Asking for a kind the profile does not know about
	// is a fatal condition, surfaced as ErrUnsupportedProfile.
	EmitName(Profile) (string, error)
}

type PrimKind uint8

const (
	BoolKind PrimKind = iota
	ByteKind
	ShortKind
	IntKind
	LongKind
	FloatKind
	DoubleKind
	CharKind

	// inference placeholders for small integer constants; never legal in
	// final code, widened or defaulted away before emission
	Integer1Kind
	Integer127Kind
	Integer32767Kind

	// unsigned kinds only the CLR front-end produces
	UShortKind
	UIntKind
	ULongKind
)

// Value ranges of the CLR-only unsigned kinds.
const (
	UShortMinValue        = 0
	UShortMaxValue        = 65535
	UIntMaxValue          = 4294967295
	ULongMaxValue  uint64 = 1<<64 - 1
)

func (k PrimKind) String() string {
	switch k {
	case BoolKind:
		return "boolean"
	case ByteKind:
		return "byte"
	case ShortKind:
		return "short"
	case IntKind:
		return "int"
	case LongKind:
		return "long"
	case FloatKind:
		return "float"
	case DoubleKind:
		return "double"
	case CharKind:
		return "char"
	case Integer1Kind:
		return "integer1"
	case Integer127Kind:
		return "integer127"
	case Integer32767Kind:
		return "integer32767"
	case UShortKind:
		return "ushort"
	case UIntKind:
		return "uint"
	case ULongKind:
		return "ulong"
	default:
		panic("invalid PrimKind")
	}
}

// PrimType is a primitive kind, including the inference placeholders.
type PrimType struct {
	Kind PrimKind
}

func (PrimType) typeNode() {}

func (t PrimType) Equals(other Type) bool {
	o, ok := other.(PrimType)
	return ok && o.Kind == t.Kind
}

func (t PrimType) Hash() uint64 {
	return 0x9e3779b97f4a7c15 ^ uint64(t.Kind)
}

func (t PrimType) String() string { return t.Kind.String() }

func (t PrimType) AllowedInFinalCode() bool {
	switch t.Kind {
	case Integer1Kind, Integer127Kind, Integer32767Kind:
		return false
	default:
		return true
	}
}

func (t PrimType) DefaultFinalType() Type {
	switch t.Kind {
	case Integer1Kind:
		return PrimType{Kind: BoolKind}
	case Integer127Kind:
		return PrimType{Kind: ByteKind}
	case Integer32767Kind:
		return PrimType{Kind: ShortKind}
	default:
		return t
	}
}

// RefType is a class or interface type, identified by its fully qualified
// name.
type RefType struct {
	Name string
}

func (RefType) typeNode() {}

func (t RefType) Equals(other Type) bool {
	o, ok := other.(RefType)
	return ok && o.Name == t.Name
}

func (t RefType) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(t.Name))
	return h.Sum64()
}

func (t RefType) String() string { return t.Name }

func (t RefType) AllowedInFinalCode() bool { return true }

func (t RefType) DefaultFinalType() Type { return t }

func (t RefType) EmitName(Profile) (string, error) { return t.Name, nil }

// NullType is the bottom of the reference lattice: the type of the null
// constant and of locals no constraint has touched yet.
type NullType struct{}

func (NullType) typeNode() {}

func (NullType) Equals(other Type) bool {
	_, ok := other.(NullType)
	return ok
}

func (NullType) Hash() uint64 { return 0x7f4a7c15 }

func (NullType) String() string { return "null" }

func (NullType) AllowedInFinalCode() bool { return false }

// DefaultFinalType of null is Object: a local that stayed unconstrained can
// only ever have held null.
func (NullType) DefaultFinalType() Type { return RefType{Name: objectName} }
