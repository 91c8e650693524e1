package record

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/bandkit/sanitize"
)

// ErrPresetNotFound is returned when a struct tag names an unknown preset.
var ErrPresetNotFound = errors.New("sanitization preset not found")

// Sanitizer applies the engine to struct fields based on struct tags. The
// zero set of options resolves tags against the engine's named presets and
// the field-type names; WithPreset registers additional named option sets.
type Sanitizer struct {
	tagKey  string
	presets map[string]sanitize.Options
}

// Option configures a Sanitizer.
type Option func(*Sanitizer)

// WithTagKey changes the struct tag key. Default is "sanitize".
func WithTagKey(key string) Option {
	return func(s *Sanitizer) { s.tagKey = key }
}

// WithPreset registers a named option set resolvable from struct tags,
// shadowing the engine preset of the same name.
func WithPreset(name string, opts sanitize.Options) Option {
	return func(s *Sanitizer) { s.presets[name] = opts }
}

// NewSanitizer builds a struct sanitizer.
func NewSanitizer(opts ...Option) *Sanitizer {
	s := &Sanitizer{
		tagKey:  "sanitize",
		presets: make(map[string]sanitize.Options),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var defaultSanitizer = NewSanitizer()

// Struct sanitizes v with the default Sanitizer.
func Struct(v any) error {
	return defaultSanitizer.Struct(v)
}

// Struct walks a pointed-to struct and rewrites every tagged string field
// in place. The tag value names a registered preset, an engine preset, or a
// bare field type ("email", "slug", ...). A tag of "-" skips the field.
// Untagged non-string fields are recursed into, so tagged fields inside
// nested structs, slices and maps are found.
func (s *Sanitizer) Struct(v any) error {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("record: expected pointer to struct, got %T", v)
	}
	elem := rv.Elem()
	if !elem.IsValid() || elem.IsZero() {
		return nil
	}
	return s.walk(elem)
}

func (s *Sanitizer) walk(rv reflect.Value) error {
	if !rv.IsValid() || rv.IsZero() {
		return nil
	}

	switch rv.Kind() {
	case reflect.Struct:
		rt := rv.Type()
		for i := 0; i < rv.NumField(); i++ {
			field := rv.Field(i)
			if !field.CanSet() {
				continue
			}
			if err := s.walkField(field, rt.Field(i)); err != nil {
				return err
			}
		}
	case reflect.Ptr, reflect.Interface:
		if !rv.IsNil() {
			return s.walk(rv.Elem())
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if err := s.walk(rv.Index(i)); err != nil {
				return err
			}
		}
	case reflect.Map:
		for _, key := range rv.MapKeys() {
			val := rv.MapIndex(key)
			if !val.CanInterface() {
				continue
			}
			// Map values are not addressable; sanitize a copy and store it back.
			elem := reflect.New(val.Type()).Elem()
			elem.Set(val)
			if err := s.walk(elem); err != nil {
				return err
			}
			rv.SetMapIndex(key, elem)
		}
	}
	return nil
}

func (s *Sanitizer) walkField(field reflect.Value, sf reflect.StructField) error {
	tag := sf.Tag.Get(s.tagKey)
	if tag == "-" {
		return nil
	}

	if tag != "" && field.Kind() == reflect.String {
		opts, err := s.options(tag)
		if err != nil {
			return fmt.Errorf("record: field %s: %w", sf.Name, err)
		}
		field.SetString(sanitize.Sanitize(field.String(), opts).Value)
		return nil
	}

	if field.Kind() != reflect.String {
		return s.walk(field)
	}
	return nil
}

func (s *Sanitizer) options(name string) (sanitize.Options, error) {
	if opts, ok := s.presets[name]; ok {
		return opts, nil
	}
	if opts, ok := sanitize.Preset(name); ok {
		return opts, nil
	}
	if ft := sanitize.FieldType(name); ft.Valid() {
		return sanitize.Options{FieldType: ft}, nil
	}
	return sanitize.Options{}, fmt.Errorf("preset %q: %w", name, ErrPresetNotFound)
}
