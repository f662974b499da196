package ir

import "github.com/pkg/errors"

// Profile identifies the managed-bytecode front-end a method body came from.
// It decides which primitive kinds exist and how they are named in emitted
// code.
type Profile uint8

const (
	ProfileJVM Profile = iota
	ProfileCLR
)

// ErrUnsupportedProfile reports a request to render a type under a profile
// that has no notion of it. There is no partial result and no retry: callers
// must treat this as fatal.
var ErrUnsupportedProfile = errors.New("type has no representation under this profile")

func (p Profile) String() string {
	switch p {
	case ProfileJVM:
		return "jvm"
	case ProfileCLR:
		return "clr"
	default:
		panic("invalid Profile")
	}
}

func ParseProfile(s string) (Profile, error) {
	switch s {
	case "", "jvm":
		return ProfileJVM, nil
	case "clr", "dotnet":
		return ProfileCLR, nil
	default:
		return 0, errors.Errorf("unknown front-end profile %q", s)
	}
}

func (t PrimType) EmitName(p Profile) (string, error) {
	switch p {
	case ProfileJVM:
		switch t.Kind {
		case BoolKind:
			return "boolean", nil
		case ByteKind:
			return "byte", nil
		case ShortKind:
			return "short", nil
		case IntKind:
			return "int", nil
		case LongKind:
			return "long", nil
		case FloatKind:
			return "float", nil
		case DoubleKind:
			return "double", nil
		case CharKind:
			return "char", nil
		}
	case ProfileCLR:
		switch t.Kind {
		case BoolKind:
			return "bool", nil
		case ByteKind:
			return "sbyte", nil
		case ShortKind:
			return "short", nil
		case IntKind:
			return "int", nil
		case LongKind:
			return "long", nil
		case FloatKind:
			return "float", nil
		case DoubleKind:
			return "double", nil
		case CharKind:
			return "char", nil
		case UShortKind:
			return "ushort", nil
		case UIntKind:
			return "uint", nil
		case ULongKind:
			return "ulong", nil
		}
	}
	return "", errors.Wrapf(ErrUnsupportedProfile, "cannot emit %v under profile %v", t, p)
}

func (NullType) EmitName(p Profile) (string, error) {
	// null never survives finalization, but rendering it is still well
	// defined for diagnostics
	return "null", nil
}
