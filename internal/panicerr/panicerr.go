// Package panicerr converts panics into returned errors at an interpreter
// boundary, keeping the panic stack available for %+v formatting.
package panicerr

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// Recover runs f, turning any panic out of it into a returned error.
func Recover(name string, f func() error) (err error) {
	defer func() {
		if e := recover(); e != nil {
			err = Panic{Name: name, Value: e, Stack: debug.Stack()}
		}
	}()
	return f()
}

// Panic is a recovered panic value.
type Panic struct {
	Name  string
	Value interface{}
	Stack []byte
}

func (p Panic) Error() string { return fmt.Sprint(p) }

func (p Panic) Format(f fmt.State, c rune) {
	if p.Name == "" {
		fmt.Fprintf(f, "paniced: %v", p.Value)
	} else {
		fmt.Fprintf(f, "%v paniced: %v", p.Name, p.Value)
	}
	if c == 'v' && f.Flag('+') {
		fmt.Fprintf(f, "\nPanic stack: %s", p.Stack)
	}
}

func (p Panic) Unwrap() error {
	err, _ := p.Value.(error)
	return err
}

// IsPanic reports whether err came out of Recover.
func IsPanic(err error) bool {
	var p Panic
	return errors.As(err, &p)
}
