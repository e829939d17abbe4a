package transpile

import "fmt"

// UnsupportedDialectError reports a dialect name with no registered
// descriptor.
type UnsupportedDialectError struct {
	Name string
}

func (e *UnsupportedDialectError) Error() string {
	return fmt.Sprintf("unsupported dialect %q", e.Name)
}
