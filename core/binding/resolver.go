package binding

import (
	"reflect"
	"strconv"
)

// ObjectResolver is the default Resolver. It binds structs and pointers to
// structs field by field:
//
//   - fields the converter handles are read through the naming chain
//   - struct fields are bound from the "name." prefix
//   - slices of structs are filled greedily from "name[0].", "name[1]." ...
//   - slices of scalars come from a list value, a comma-separated string or
//     "name[0]", "name[1]" ...
//   - embedded structs without a key are flattened into the parent
type ObjectResolver struct {
	separator string
}

// NewObjectResolver creates a resolver using "." between prefix and key.
func NewObjectResolver() *ObjectResolver {
	return &ObjectResolver{separator: "."}
}

// Bind implements Resolver.
func (r *ObjectResolver) Bind(c *Context, t reflect.Type) Result {
	base := t
	if base.Kind() == reflect.Pointer {
		base = base.Elem()
	}
	if base.Kind() != reflect.Struct {
		c.LogProblem(NewUnsupportedModelError(t), nil, nil)
		return Result{Problems: c.Problems()}
	}

	target := reflect.New(base)
	_ = c.ForObject(target.Interface(), func() error {
		r.populate(c, target.Elem())
		return nil
	})

	value := target
	if t.Kind() != reflect.Pointer {
		value = target.Elem()
	}
	return Result{Value: value.Interface(), Problems: c.Problems()}
}

func (r *ObjectResolver) populate(c *Context, v reflect.Value) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name, skip := fieldKey(field)
		if skip {
			continue
		}
		fv := v.Field(i)
		if field.Anonymous && name == field.Name && field.Type.Kind() == reflect.Struct {
			r.populate(c, fv)
			continue
		}
		c.ForProperty(Property{Name: name, Field: field}, func(pc *PropertyContext) error {
			return r.bindField(pc, fv)
		})
	}
}

func (r *ObjectResolver) bindField(pc *PropertyContext, fv reflect.Value) error {
	c := pc.Context()
	ft := fv.Type()
	name := pc.Property().Name

	if c.Converter().CanConvert(ft) {
		if ft.Kind() == reflect.Slice && ft.Elem().Kind() != reflect.Uint8 {
			return r.bindScalarSlice(pc, fv)
		}
		v, ok, err := pc.Value(ft)
		if err != nil {
			return err
		}
		if ok && v != nil {
			fv.Set(reflect.ValueOf(v))
		}
		return nil
	}

	base := ft
	if base.Kind() == reflect.Pointer {
		base = base.Elem()
	}
	switch {
	case base.Kind() == reflect.Struct:
		prefix := r.resolvePrefix(c, name, r.separator) + r.separator
		if v := c.BindPrefixed(prefix, ft); v != nil {
			fv.Set(reflect.ValueOf(v))
		}
		return nil
	case ft.Kind() == reflect.Slice && isStructLike(ft.Elem()):
		r.bindStructSlice(c, r.resolvePrefix(c, name, "["), fv)
		return nil
	}

	if _, ok := pc.RawValue(); ok {
		return NewUnsupportedFieldError(ft)
	}
	return nil
}

func (r *ObjectResolver) bindScalarSlice(pc *PropertyContext, fv reflect.Value) error {
	ft := fv.Type()
	v, ok, err := pc.Value(ft)
	if err != nil {
		return err
	}
	if ok {
		fv.Set(reflect.ValueOf(v))
		return nil
	}

	values := pc.Context().Values()
	out := reflect.MakeSlice(ft, 0, 0)
	for i := 0; ; i++ {
		item, ok, err := values.ValueFor(indexed(pc.Property().Name, i), ft.Elem())
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		out = reflect.Append(out, reflect.ValueOf(item))
	}
	if out.Len() > 0 {
		fv.Set(out)
	}
	return nil
}

// bindStructSlice keeps binding elements until an index has no data.
func (r *ObjectResolver) bindStructSlice(c *Context, name string, fv reflect.Value) {
	ft := fv.Type()
	out := reflect.MakeSlice(ft, 0, 0)
	for i := 0; ; i++ {
		v := c.BindPrefixed(indexed(name, i)+r.separator, ft.Elem())
		if v == nil {
			break
		}
		out = reflect.Append(out, reflect.ValueOf(v))
	}
	if out.Len() > 0 {
		fv.Set(out)
	}
}

// resolvePrefix picks the first naming candidate for name that has data
// under candidate+suffix, falling back to name itself.
func (r *ObjectResolver) resolvePrefix(c *Context, name, suffix string) string {
	for _, candidate := range c.Naming().Candidates(name) {
		if c.Data().HasAnyValuePrefixedWith(candidate + suffix) {
			return candidate
		}
	}
	return name
}

func indexed(name string, i int) string {
	return name + "[" + strconv.Itoa(i) + "]"
}

func isStructLike(t reflect.Type) bool {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct
}
