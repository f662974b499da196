package typing

// FinalizeTypes rewrites tg in place so every local holds a type legal in
// emitted code, substituting the catalog's default for placeholders. Runs
// single-threaded on the surviving typing the caller picked, strictly after
// minimization. Never fails: every type not allowed in final code has a
// defined default, an invariant the type catalog owns.
func FinalizeTypes(tg *Typing) {
	for l, ty := range tg.All() {
		if !ty.AllowedInFinalCode() {
			tg.Set(l, ty.DefaultFinalType())
		}
	}
}
