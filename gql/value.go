package gql

import (
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/datastore"
)

// ErrUnsupportedType indicates a bind value whose dynamic type is outside
// the closed set of GQL-bindable types.
// Use errors.Is() to check for it.
var ErrUnsupportedType = errors.New("unsupported gql binding type")

// Kind identifies which member of the closed type set a Value holds.
type Kind int

// The closed set of bindable value kinds. Array kinds are distinct from
// their scalar counterparts, mirroring GQL's list bindings.
const (
	KindInvalid Kind = iota
	KindString
	KindStringList
	KindInt
	KindIntList
	KindDouble
	KindDoubleList
	KindBool
	KindBoolList
	KindTimestamp
	KindTimestampList
	KindBlob
	KindBlobList
	KindKey
	KindKeyList
	KindCursor
)

var kindNames = map[Kind]string{
	KindInvalid:       "invalid",
	KindString:        "string",
	KindStringList:    "string list",
	KindInt:           "integer",
	KindIntList:       "integer list",
	KindDouble:        "double",
	KindDoubleList:    "double list",
	KindBool:          "boolean",
	KindBoolList:      "boolean list",
	KindTimestamp:     "timestamp",
	KindTimestampList: "timestamp list",
	KindBlob:          "blob",
	KindBlobList:      "blob list",
	KindKey:           "key",
	KindKeyList:       "key list",
	KindCursor:        "cursor",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Cursor is an opaque result-position token, bindable as a query parameter
// for pagination. Its string form is web-safe base64, matching the format
// Datastore returns in query result batches.
type Cursor []byte

// String returns the web-safe base64 form of the cursor.
func (c Cursor) String() string {
	return base64.URLEncoding.EncodeToString(c)
}

// DecodeCursor reconstructs a Cursor from its String form.
func DecodeCursor(s string) (Cursor, error) {
	b, err := base64.URLEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decode cursor: %w", err)
	}
	return Cursor(b), nil
}

// Value is an immutable tagged variant holding one member of the closed
// bindable type set. The zero Value has KindInvalid.
type Value struct {
	kind Kind
	raw  any
}

// ValueOf captures v as a bindable Value. The match is on exact dynamic
// type: no interface satisfaction, no assignability, no numeric coercion.
// Values of any other type fail with ErrUnsupportedType naming the type.
func ValueOf(v any) (Value, error) {
	switch v.(type) {
	case string:
		return Value{kind: KindString, raw: v}, nil
	case []string:
		return Value{kind: KindStringList, raw: v}, nil
	case int64:
		return Value{kind: KindInt, raw: v}, nil
	case []int64:
		return Value{kind: KindIntList, raw: v}, nil
	case float64:
		return Value{kind: KindDouble, raw: v}, nil
	case []float64:
		return Value{kind: KindDoubleList, raw: v}, nil
	case bool:
		return Value{kind: KindBool, raw: v}, nil
	case []bool:
		return Value{kind: KindBoolList, raw: v}, nil
	case time.Time:
		return Value{kind: KindTimestamp, raw: v}, nil
	case []time.Time:
		return Value{kind: KindTimestampList, raw: v}, nil
	case []byte:
		return Value{kind: KindBlob, raw: v}, nil
	case [][]byte:
		return Value{kind: KindBlobList, raw: v}, nil
	case *datastore.Key:
		return Value{kind: KindKey, raw: v}, nil
	case []*datastore.Key:
		return Value{kind: KindKeyList, raw: v}, nil
	case Cursor:
		return Value{kind: KindCursor, raw: v}, nil
	default:
		return Value{}, fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}
}

// Kind reports which member of the closed set the value holds.
func (v Value) Kind() Kind {
	return v.kind
}

// Interface returns the captured Go value. The dynamic type corresponds to
// the value's Kind.
func (v Value) Interface() any {
	return v.raw
}
