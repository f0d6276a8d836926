package physics

import (
	"fmt"
	"reflect"
	"strings"
)

// Func is the map form of a solver: parameter name to known value, with
// the unknown left out.
type Func func(args map[string]float64) (float64, error)

var floatPtr = reflect.TypeFor[*float64]()

type field struct {
	index int
	name  string
}

func fieldsOf(t reflect.Type) []field {
	if t.Kind() != reflect.Struct {
		panic(fmt.Sprintf("physics: %s is not a params struct", t))
	}
	var fields []field
	for i := range t.NumField() {
		f := t.Field(i)
		name, ok := f.Tag.Lookup("param")
		if !ok {
			continue
		}
		if f.Type != floatPtr {
			panic(fmt.Sprintf("physics: %s.%s must be *float64", t.Name(), f.Name))
		}
		fields = append(fields, field{index: i, name: name})
	}
	return fields
}

// Params lists the parameter names of a params struct in declaration
// order, read from the `param` struct tags.
func Params[P any]() []string {
	fields := fieldsOf(reflect.TypeFor[P]())
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.name
	}
	return names
}

// Bind fills a params struct from args and returns it together with the
// name of the single parameter left unset.
func Bind[P any](args map[string]float64) (P, string, error) {
	var p P
	v := reflect.ValueOf(&p).Elem()
	fields := fieldsOf(v.Type())

	known := make(map[string]bool, len(fields))
	var unset []string
	for _, f := range fields {
		known[f.name] = true
		x, ok := args[f.name]
		if !ok {
			unset = append(unset, f.name)
			continue
		}
		v.Field(f.index).Set(reflect.ValueOf(&x))
	}

	for name := range args {
		if !known[name] {
			return p, "", &Error{Kind: ErrUnknownParam, Msg: fmt.Sprintf("unknown parameter %q", name)}
		}
	}
	if len(unset) != 1 {
		msg := "exactly one value must be left blank"
		if len(unset) > 1 {
			msg += fmt.Sprintf(" (blank: %s)", strings.Join(unset, ", "))
		}
		return p, "", &Error{Kind: ErrUnknownCount, Msg: msg}
	}
	for _, f := range fields {
		if err := Finite(v.Field(f.index).Interface().(*float64), f.name); err != nil {
			return p, "", err
		}
	}
	return p, unset[0], nil
}

// Wrap turns a typed solver into its map form.
func Wrap[P any](fn func(P) (float64, error)) Func {
	return func(args map[string]float64) (float64, error) {
		p, _, err := Bind[P](args)
		if err != nil {
			return 0, err
		}
		return fn(p)
	}
}
