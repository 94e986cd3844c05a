package protocol

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Named lets a Go type report the protocol name used in decode errors.
type Named interface {
	WireName() string
}

// DecodeOption configures a single Decode call.
type DecodeOption func(*decoder)

// Strict makes tokens outside an open vocabulary a decode error instead of a
// tolerated value.
func Strict() DecodeOption {
	return func(d *decoder) { d.strict = true }
}

// OnUnrecognized registers fn to be called for every tolerated token outside an
// open vocabulary. It is only called when the whole decode succeeds.
func OnUnrecognized(fn func(UnrecognizedKind)) DecodeOption {
	return func(d *decoder) { d.onUnrecognized = fn }
}

var (
	enumType       = reflect.TypeOf((*Enum)(nil)).Elem()
	namedType      = reflect.TypeOf((*Named)(nil)).Elem()
	rawMessageType = reflect.TypeOf(json.RawMessage(nil))
)

type decoder struct {
	strict         bool
	onUnrecognized func(UnrecognizedKind)
	unrecognized   []UnrecognizedKind
}

// Decode reads the JSON document in data into v, which must be a non-nil
// pointer. The wire schema of a struct is its json tags: fields tagged
// omitempty are optional, every other field is required. Input fields that are
// not declared are ignored. On error v is left unchanged.
func Decode(data []byte, v any, opts ...DecodeOption) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("protocol: Decode requires a non-nil pointer, got %T", v)
	}
	target := rv.Elem()
	if !json.Valid(data) {
		var scratch any
		err := json.Unmarshal(data, &scratch)
		if err == nil {
			err = fmt.Errorf("empty input")
		}
		return &SyntaxError{Type: wireName(target.Type()), Err: err}
	}

	d := &decoder{}
	for _, opt := range opts {
		opt(d)
	}

	out := reflect.New(target.Type()).Elem()
	if err := d.value(json.RawMessage(data), out, wireName(target.Type()), ""); err != nil {
		return err
	}
	target.Set(out)

	if d.onUnrecognized != nil {
		for _, u := range d.unrecognized {
			d.onUnrecognized(u)
		}
	}
	return nil
}

func (d *decoder) value(raw json.RawMessage, out reflect.Value, owner, path string) error {
	t := out.Type()
	if t == rawMessageType {
		out.SetBytes(append(json.RawMessage(nil), raw...))
		return nil
	}

	actual := shapeOf(raw)
	if t.Implements(enumType) && t.Kind() == reflect.String {
		if actual != "string" {
			return mismatch(owner, path, "string", actual)
		}
		return d.enum(raw, out, path)
	}

	switch t.Kind() {
	case reflect.String:
		if actual != "string" {
			return mismatch(owner, path, "string", actual)
		}
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return mismatch(owner, path, "string", actual)
		}
		out.SetString(s)

	case reflect.Bool:
		if actual != "boolean" {
			return mismatch(owner, path, "boolean", actual)
		}
		out.SetBool(bytes.Equal(bytes.TrimSpace(raw), []byte("true")))

	case reflect.Int, reflect.Int32, reflect.Int64:
		if actual != "integer" {
			return mismatch(owner, path, "integer", actual)
		}
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return mismatch(owner, path, "integer", actual)
		}
		i, err := n.Int64()
		if err != nil || out.OverflowInt(i) {
			return mismatch(owner, path, "integer", "number")
		}
		out.SetInt(i)

	case reflect.Slice:
		if actual != "array" {
			return mismatch(owner, path, "array", actual)
		}
		var elems []json.RawMessage
		if err := json.Unmarshal(raw, &elems); err != nil {
			return mismatch(owner, path, "array", actual)
		}
		s := reflect.MakeSlice(t, len(elems), len(elems))
		for i, elem := range elems {
			if err := d.value(elem, s.Index(i), owner, fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
		out.Set(s)

	case reflect.Pointer:
		if actual == "null" {
			return nil
		}
		p := reflect.New(t.Elem())
		if err := d.value(raw, p.Elem(), owner, path); err != nil {
			return err
		}
		out.Set(p)

	case reflect.Struct:
		if actual != "object" {
			return mismatch(owner, path, "object", actual)
		}
		return d.object(raw, out, path)

	default:
		return fmt.Errorf("protocol: cannot decode %s field %q into %s", owner, path, t)
	}
	return nil
}

func (d *decoder) enum(raw json.RawMessage, out reflect.Value, path string) error {
	var token string
	if err := json.Unmarshal(raw, &token); err != nil {
		return err
	}
	vocab := out.Interface().(Enum).Vocabulary()
	recognized, err := vocab.Check(token)
	if err != nil {
		return &UnknownEnumValueError{Vocabulary: vocab.Name, Token: token, Path: path}
	}
	if !recognized {
		u := UnrecognizedKind{Vocabulary: vocab.Name, Token: token, Path: path}
		if d.strict {
			return &UnrecognizedKindError{UnrecognizedKind: u}
		}
		d.unrecognized = append(d.unrecognized, u)
	}
	out.SetString(token)
	return nil
}

func (d *decoder) object(raw json.RawMessage, out reflect.Value, path string) error {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(raw, &members); err != nil {
		return err
	}
	owner := wireName(out.Type())
	for _, f := range fieldsOf(out.Type()) {
		fieldPath := joinPath(path, f.name)
		fieldRaw, present := members[f.name]
		if !present || shapeOf(fieldRaw) == "null" {
			if !f.required {
				continue
			}
			if present {
				return mismatch(owner, fieldPath, expectedShape(f.typ), "null")
			}
			return &MissingFieldError{Type: owner, Field: fieldPath}
		}
		if err := d.value(fieldRaw, out.Field(f.index), owner, fieldPath); err != nil {
			return err
		}
	}
	return nil
}

type field struct {
	name     string
	index    int
	typ      reflect.Type
	required bool
}

// schemas caches the wire fields of every struct type seen by Decode and Encode.
var schemas = newSchemaCache(256)

func newSchemaCache(size int) *lru.Cache[reflect.Type, []field] {
	c, err := lru.New[reflect.Type, []field](size)
	if err != nil {
		panic(err)
	}
	return c
}

// fieldsOf lists the wire fields of a struct type in declaration order.
func fieldsOf(t reflect.Type) []field {
	if fields, ok := schemas.Get(t); ok {
		return fields
	}
	fields := buildFields(t)
	schemas.Add(t, fields)
	return fields
}

func buildFields(t reflect.Type) []field {
	fields := make([]field, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		tag := sf.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")
		if name == "" {
			name = sf.Name
		}
		fields = append(fields, field{
			name:     name,
			index:    i,
			typ:      sf.Type,
			required: !strings.Contains(opts, "omitempty"),
		})
	}
	return fields
}

func shapeOf(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "null"
	}
	switch raw[0] {
	case '"':
		return "string"
	case '{':
		return "object"
	case '[':
		return "array"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	}
	if bytes.ContainsAny(raw, ".eE") {
		return "number"
	}
	return "integer"
}

func expectedShape(t reflect.Type) string {
	if t == rawMessageType {
		return "value"
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int32, reflect.Int64:
		return "integer"
	case reflect.Slice:
		return "array"
	case reflect.Pointer:
		return expectedShape(t.Elem())
	}
	return "object"
}

func wireName(t reflect.Type) string {
	if t.Kind() == reflect.Pointer {
		return wireName(t.Elem())
	}
	if t.Implements(namedType) {
		return reflect.Zero(t).Interface().(Named).WireName()
	}
	return t.Name()
}

func mismatch(owner, path, expected, actual string) error {
	return &TypeMismatchError{Type: owner, Field: path, Expected: expected, Actual: actual}
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
