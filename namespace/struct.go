package namespace

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// TagName is the struct tag consulted first when resolving constant names
// to fields.
const TagName = "constkit"

// fallbackTagName is consulted when no TagName tag is present, so structs
// already tagged for mapstructure decoding work unchanged.
const fallbackTagName = "mapstructure"

// Struct binds a pointer to a struct as a namespace. Constant names resolve
// to settable fields through the TagName tag, then the mapstructure tag,
// then the exact field name; a tag value of "-" excludes the field. Names
// that resolve to no field are ignored on write, so a class may carry more
// constants than the struct has fields.
//
// Has reports whether the resolved field currently holds a non-zero value.
// Applying a class without override therefore fills only the fields the
// caller left unset.
type Struct struct {
	fields map[string]reflect.Value
}

// ForStruct binds target, which must be a non-nil pointer to a struct.
// Embedded structs contribute their fields, with outer fields shadowing
// embedded ones on name collisions.
func ForStruct(target any) (*Struct, error) {
	if target == nil {
		return nil, fmt.Errorf("struct target is nil")
	}
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return nil, fmt.Errorf("struct target must be a non-nil pointer, got %T", target)
	}
	elem := rv.Elem()
	if elem.Kind() != reflect.Struct {
		return nil, fmt.Errorf("struct target must point to a struct, got %T", target)
	}

	s := &Struct{fields: make(map[string]reflect.Value)}
	s.index(elem)
	return s, nil
}

// Has reports whether name resolves to a field holding a non-zero value.
func (s *Struct) Has(name string) bool {
	f, ok := s.fields[name]
	return ok && !f.IsZero()
}

// Set decodes value into the field name resolves to. Unresolved names are a
// no-op. Decoding is weakly typed, so a string "8080" can land in an int
// field and numeric values can land in string fields.
func (s *Struct) Set(name string, value any) error {
	f, ok := s.fields[name]
	if !ok {
		return nil
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           f.Addr().Interface(),
	})
	if err != nil {
		return fmt.Errorf("bind field for %s: %w", name, err)
	}
	if err := dec.Decode(value); err != nil {
		return fmt.Errorf("bind %s: %w", name, err)
	}
	return nil
}

// index records the lookup name of every settable field. Own fields are
// indexed before embedded structs so that shadowing follows field promotion
// rules; the first name recorded wins.
func (s *Struct) index(v reflect.Value) {
	t := v.Type()
	var embedded []reflect.Value

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		fv := v.Field(i)
		if f.Anonymous && fv.Kind() == reflect.Struct {
			embedded = append(embedded, fv)
			continue
		}
		if !f.IsExported() || !fv.CanSet() {
			continue
		}
		name, skip := fieldName(f)
		if skip {
			continue
		}
		if _, taken := s.fields[name]; !taken {
			s.fields[name] = fv
		}
	}

	for _, ev := range embedded {
		s.index(ev)
	}
}

// fieldName resolves the lookup name for a field and whether the field is
// excluded outright.
func fieldName(f reflect.StructField) (string, bool) {
	for _, key := range []string{TagName, fallbackTagName} {
		tag, ok := f.Tag.Lookup(key)
		if !ok {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		if name == "-" {
			return "", true
		}
		if name != "" {
			return name, false
		}
	}
	return f.Name, false
}
