package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"reflect"
	"strconv"
	"unicode"

	"github.com/tdewolff/tsparse/js"
)

var (
	positionType = reflect.TypeOf(js.Position{})
	nodeBaseType = reflect.TypeOf(js.NodeBase{})
	commentsType = reflect.TypeOf([]*js.Comment{})
	stringerType = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
)

// JSONEncoder writes the AST as JSON. Every node is an object with a "type" member holding the node type followed by
// its exported fields in declaration order with lower camel case keys. Nil children and empty lists are omitted.
type JSONEncoder struct {
	w io.Writer

	Indent    string // no indentation when empty
	Positions bool   // emit start and end of every node and other positions
	Comments  bool   // emit comments, both the program's list and those attached to nodes
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{
		w:         w,
		Indent:    "  ",
		Positions: true,
		Comments:  true,
	}
}

func (e *JSONEncoder) Encode(program *js.Program) error {
	text, err := e.MarshalText(program)
	if err != nil {
		return err
	}
	_, err = e.w.Write(append(text, '\n'))
	return err
}

func (e *JSONEncoder) MarshalText(node js.Node) ([]byte, error) {
	v := e.value(reflect.ValueOf(node))
	if e.Indent == "" {
		return json.Marshal(v)
	}
	return json.MarshalIndent(v, "", e.Indent)
}

////////////////////////////////////////////////////////////////

type member struct {
	key   string
	value interface{}
}

// object is a JSON object that keeps its member order.
type object []member

func (o object) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteByte('{')
	for i, m := range o {
		if i != 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(m.key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(m.value)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (o *object) add(key string, value interface{}) {
	*o = append(*o, member{key, value})
}

////////////////////////////////////////////////////////////////

func (e *JSONEncoder) value(v reflect.Value) interface{} {
	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return nil
		}
		return e.value(v.Elem())
	case reflect.Ptr:
		if v.IsNil() {
			return nil
		}
		switch x := v.Interface().(type) {
		case js.Node:
			return e.node(x)
		case *js.Comment:
			return e.comment(x)
		}
		return e.value(v.Elem())
	case reflect.Slice:
		list := make([]interface{}, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			list = append(list, e.value(v.Index(i)))
		}
		return list
	case reflect.Struct:
		if v.Type() == positionType {
			return position(v.Interface().(js.Position))
		}
		obj := object{}
		e.fields(&obj, v)
		return obj
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return strconv.FormatFloat(f, 'g', -1, 64)
		}
		return f
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if v.Type().Implements(stringerType) {
			return v.Interface().(fmt.Stringer).String()
		}
		return v.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if v.Type().Implements(stringerType) {
			return v.Interface().(fmt.Stringer).String()
		}
		return v.Uint()
	case reflect.String:
		return v.String()
	case reflect.Bool:
		return v.Bool()
	}
	return nil
}

func (e *JSONEncoder) node(n js.Node) object {
	obj := object{}
	obj.add("type", n.Type().String())
	e.fields(&obj, reflect.ValueOf(n).Elem())
	return obj
}

func (e *JSONEncoder) fields(obj *object, v reflect.Value) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		if !e.Positions && f.Type == positionType || !e.Comments && f.Type == commentsType {
			continue
		}

		fv := v.Field(i)
		if f.Anonymous {
			if f.Type == nodeBaseType {
				e.base(obj, fv.Interface().(js.NodeBase))
				continue
			} else if fv.Kind() == reflect.Struct {
				e.fields(obj, fv)
				continue
			} else if fv.Kind() == reflect.Ptr && !fv.IsNil() && fv.Elem().Kind() == reflect.Struct {
				e.fields(obj, fv.Elem())
				continue
			}
		}

		if (fv.Kind() == reflect.Ptr || fv.Kind() == reflect.Interface || fv.Kind() == reflect.Slice) && (fv.IsNil() || fv.Kind() == reflect.Slice && fv.Len() == 0) {
			continue
		}
		obj.add(lowerCamel(f.Name), e.value(fv))
	}
}

func (e *JSONEncoder) base(obj *object, base js.NodeBase) {
	if e.Positions {
		obj.add("start", position(base.Start))
		obj.add("end", position(base.End))
	}
	if base.Parenthesized {
		obj.add("parenthesized", true)
	}
	if e.Comments {
		for _, comments := range []struct {
			key  string
			list []*js.Comment
		}{{"leadingComments", base.Leading}, {"trailingComments", base.Trailing}, {"innerComments", base.Inner}} {
			if 0 < len(comments.list) {
				list := make([]interface{}, 0, len(comments.list))
				for _, c := range comments.list {
					list = append(list, e.comment(c))
				}
				obj.add(comments.key, list)
			}
		}
	}
}

func (e *JSONEncoder) comment(c *js.Comment) object {
	obj := object{}
	if c.Type == js.LineComment {
		obj.add("type", "CommentLine")
	} else {
		obj.add("type", "CommentBlock")
	}
	obj.add("value", c.Value)
	if e.Positions {
		obj.add("start", position(c.Start))
		obj.add("end", position(c.End))
	}
	return obj
}

func position(pos js.Position) object {
	return object{{"index", pos.Index}, {"line", pos.Line}, {"column", pos.Column}}
}

// lowerCamel lowercases the leading upper case run of a field name, keeping the last upper case letter of a run that
// starts a new word: ID becomes id and JSXName becomes jsxName.
func lowerCamel(name string) string {
	rs := []rune(name)
	for i := 0; i < len(rs) && unicode.IsUpper(rs[i]); i++ {
		if 0 < i && i+1 < len(rs) && unicode.IsLower(rs[i+1]) {
			break
		}
		rs[i] = unicode.ToLower(rs[i])
	}
	return string(rs)
}
