package ir

import "fmt"

// Local is a variable slot within one method body. Locals are only ever
// compared and hashed, never inspected: the pair (Name, Num) is unique within
// the enclosing body.
type Local struct {
	Name string
	Num  int
}

func (l Local) String() string {
	if l.Name != "" {
		return l.Name
	}
	return fmt.Sprintf("$%d", l.Num)
}
