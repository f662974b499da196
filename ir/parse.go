package ir

// ParseType reads a type from its textual name, as used in hierarchy
// fixtures. Any name that is not a known primitive kind or "null" is a
// reference type.
func ParseType(name string) Type {
	switch name {
	case "null":
		return NullType{}
	case "boolean", "bool":
		return PrimType{Kind: BoolKind}
	case "byte":
		return PrimType{Kind: ByteKind}
	case "short":
		return PrimType{Kind: ShortKind}
	case "int":
		return PrimType{Kind: IntKind}
	case "long":
		return PrimType{Kind: LongKind}
	case "float":
		return PrimType{Kind: FloatKind}
	case "double":
		return PrimType{Kind: DoubleKind}
	case "char":
		return PrimType{Kind: CharKind}
	case "integer1":
		return PrimType{Kind: Integer1Kind}
	case "integer127":
		return PrimType{Kind: Integer127Kind}
	case "integer32767":
		return PrimType{Kind: Integer32767Kind}
	case "ushort":
		return PrimType{Kind: UShortKind}
	case "uint":
		return PrimType{Kind: UIntKind}
	case "ulong":
		return PrimType{Kind: ULongKind}
	default:
		return RefType{Name: name}
	}
}
