package ir

const objectName = "java.lang.Object"

// Universe holds the well-known reference types of a front-end profile. The
// three types here form the trivial top set: every array or object value is
// assignable to all of them, so a local typed to any of them in every
// candidate carries no information for minimization.
type Universe struct {
	Object       RefType
	Serializable RefType
	Cloneable    RefType
}

func UniverseFor(p Profile) Universe {
	switch p {
	case ProfileJVM:
		return Universe{
			Object:       RefType{Name: objectName},
			Serializable: RefType{Name: "java.io.Serializable"},
			Cloneable:    RefType{Name: "java.lang.Cloneable"},
		}
	case ProfileCLR:
		return Universe{
			Object:       RefType{Name: "System.Object"},
			Serializable: RefType{Name: "System.Runtime.Serialization.ISerializable"},
			Cloneable:    RefType{Name: "System.ICloneable"},
		}
	default:
		panic("invalid Profile")
	}
}

// Tops is the trivial top-type set of this universe.
func (u Universe) Tops() []Type {
	return []Type{u.Object, u.Serializable, u.Cloneable}
}
