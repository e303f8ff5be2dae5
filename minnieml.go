package minnieml

// Owned is implemented by every runtime value type whose backing storage must
// be reclaimed by an explicit Release call. The compiler schedules exactly
// one Release per owned value; the runtime trusts that schedule and performs
// no ownership checks at runtime.
//
// Duplicate is deliberately not part of this interface: it returns the
// concrete type, so each value type declares its own.
type Owned interface {
	Release()
}

// ReleaseAll releases every value in order. It exists for generated epilogue
// code that must release several values owned by the same scope.
func ReleaseAll(values ...Owned) {
	for _, v := range values {
		if v != nil {
			v.Release()
		}
	}
}
