package stepreport

import (
	"errors"
	"fmt"
	"reflect"
	"runtime"
	"unsafe"
)

// Field names of the runner's internal step layout. These are private
// implementation details of the runner and shift between its versions;
// resolution failure must degrade to "no method metadata", never abort
// the run.
const (
	definitionMatchFieldName = "definitionMatch"
	stepDefinitionFieldName  = "stepDefinition"
	methodFieldName          = "method"
)

// Sentinel errors for programmatic error handling.
var (
	ErrFieldNotFound = errors.New("field not found")
	ErrFieldAccess   = errors.New("field not accessible")
)

// RetrieveMethod resolves the func a test step was bound to by walking
// the runner's internal field chain definitionMatch -> stepDefinition ->
// method. Unexported fields are forced readable, the introspection
// equivalent of setAccessible. The returned value has kind Func.
//
// Errors wrap [ErrFieldNotFound] when a field in the chain is absent and
// [ErrFieldAccess] when a value along the chain cannot be read; callers
// should treat both as "method metadata unavailable".
func RetrieveMethod(step any) (reflect.Value, error) {
	if step == nil {
		return reflect.Value{}, fmt.Errorf("%w: nil step", ErrFieldAccess)
	}
	v := reflect.ValueOf(step)
	var err error
	for _, name := range []string{definitionMatchFieldName, stepDefinitionFieldName, methodFieldName} {
		v, err = fieldValue(v, name)
		if err != nil {
			return reflect.Value{}, err
		}
	}
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}, fmt.Errorf("%w: %s is nil", ErrFieldAccess, methodFieldName)
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Func {
		return reflect.Value{}, fmt.Errorf("%w: %s is %s, not a func", ErrFieldAccess, methodFieldName, v.Kind())
	}
	return v, nil
}

// DefinitionMatchField searches a step's struct type for the field named
// definitionMatch: the type's own fields first, then its embedded types
// depth-first, mirroring an ancestor-chain lookup. Reports false when no
// type in the chain declares it.
func DefinitionMatchField(step any) (reflect.StructField, bool) {
	t := reflect.TypeOf(step)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return reflect.StructField{}, false
	}
	return findFieldInChain(t, definitionMatchFieldName)
}

// FuncName returns the reportable name of a resolved step func, e.g.
// "github.com/acme/checkout.iHaveItemsInCart". Empty for values that are
// not funcs.
func FuncName(fn reflect.Value) string {
	if fn.Kind() != reflect.Func {
		return ""
	}
	rf := runtime.FuncForPC(fn.Pointer())
	if rf == nil {
		return ""
	}
	return rf.Name()
}

func findFieldInChain(t reflect.Type, name string) (reflect.StructField, bool) {
	for i := 0; i < t.NumField(); i++ {
		if f := t.Field(i); f.Name == name {
			return f, true
		}
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.Anonymous {
			continue
		}
		et := f.Type
		for et.Kind() == reflect.Pointer {
			et = et.Elem()
		}
		if et.Kind() != reflect.Struct {
			continue
		}
		if found, ok := findFieldInChain(et, name); ok {
			return found, ok
		}
	}
	return reflect.StructField{}, false
}

// fieldValue reads the named field from v, unwrapping pointers and
// interfaces first. The result carries no read-only flag, so the walk can
// continue through unexported fields.
func fieldValue(v reflect.Value, name string) (reflect.Value, error) {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}, fmt.Errorf("%w: nil value while resolving %q", ErrFieldAccess, name)
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("%w: %q on non-struct %s", ErrFieldNotFound, name, v.Type())
	}
	if !v.CanAddr() {
		// Copy into an addressable value so unexported fields can be
		// re-read through their address below.
		tmp := reflect.New(v.Type()).Elem()
		tmp.Set(v)
		v = tmp
	}
	f := v.FieldByName(name)
	if !f.IsValid() {
		return reflect.Value{}, fmt.Errorf("%w: %s.%s", ErrFieldNotFound, v.Type(), name)
	}
	if !f.CanInterface() {
		f = reflect.NewAt(f.Type(), unsafe.Pointer(f.UnsafeAddr())).Elem()
	}
	return f, nil
}
