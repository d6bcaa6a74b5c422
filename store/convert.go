package store

import (
	"fmt"
	"time"

	"cloud.google.com/go/datastore"
	pb "cloud.google.com/go/datastore/apiv1/datastorepb"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/forgo/gqlbind/gql"
)

// bindingParameter converts a bound value into the wire-level GQL query
// parameter. Cursors use the dedicated cursor arm; every other kind is a
// regular value binding.
func bindingParameter(projectID string, v gql.Value) (*pb.GqlQueryParameter, error) {
	if v.Kind() == gql.KindCursor {
		c := v.Interface().(gql.Cursor)
		return &pb.GqlQueryParameter{
			ParameterType: &pb.GqlQueryParameter_Cursor{Cursor: []byte(c)},
		}, nil
	}
	val, err := toProtoValue(projectID, v)
	if err != nil {
		return nil, err
	}
	return &pb.GqlQueryParameter{
		ParameterType: &pb.GqlQueryParameter_Value{Value: val},
	}, nil
}

func toProtoValue(projectID string, v gql.Value) (*pb.Value, error) {
	switch v.Kind() {
	case gql.KindString:
		return stringValue(v.Interface().(string)), nil
	case gql.KindStringList:
		vs := v.Interface().([]string)
		values := make([]*pb.Value, len(vs))
		for i, s := range vs {
			values[i] = stringValue(s)
		}
		return arrayValue(values), nil
	case gql.KindInt:
		return intValue(v.Interface().(int64)), nil
	case gql.KindIntList:
		vs := v.Interface().([]int64)
		values := make([]*pb.Value, len(vs))
		for i, n := range vs {
			values[i] = intValue(n)
		}
		return arrayValue(values), nil
	case gql.KindDouble:
		return doubleValue(v.Interface().(float64)), nil
	case gql.KindDoubleList:
		vs := v.Interface().([]float64)
		values := make([]*pb.Value, len(vs))
		for i, f := range vs {
			values[i] = doubleValue(f)
		}
		return arrayValue(values), nil
	case gql.KindBool:
		return boolValue(v.Interface().(bool)), nil
	case gql.KindBoolList:
		vs := v.Interface().([]bool)
		values := make([]*pb.Value, len(vs))
		for i, b := range vs {
			values[i] = boolValue(b)
		}
		return arrayValue(values), nil
	case gql.KindTimestamp:
		return timestampValue(v.Interface().(time.Time)), nil
	case gql.KindTimestampList:
		vs := v.Interface().([]time.Time)
		values := make([]*pb.Value, len(vs))
		for i, t := range vs {
			values[i] = timestampValue(t)
		}
		return arrayValue(values), nil
	case gql.KindBlob:
		return blobValue(v.Interface().([]byte)), nil
	case gql.KindBlobList:
		vs := v.Interface().([][]byte)
		values := make([]*pb.Value, len(vs))
		for i, b := range vs {
			values[i] = blobValue(b)
		}
		return arrayValue(values), nil
	case gql.KindKey:
		return keyValue(projectID, v.Interface().(*datastore.Key)), nil
	case gql.KindKeyList:
		vs := v.Interface().([]*datastore.Key)
		values := make([]*pb.Value, len(vs))
		for i, k := range vs {
			values[i] = keyValue(projectID, k)
		}
		return arrayValue(values), nil
	default:
		return nil, fmt.Errorf("%w: no wire conversion for kind %v", gql.ErrUnsupportedType, v.Kind())
	}
}

func stringValue(s string) *pb.Value {
	return &pb.Value{ValueType: &pb.Value_StringValue{StringValue: s}}
}

func intValue(n int64) *pb.Value {
	return &pb.Value{ValueType: &pb.Value_IntegerValue{IntegerValue: n}}
}

func doubleValue(f float64) *pb.Value {
	return &pb.Value{ValueType: &pb.Value_DoubleValue{DoubleValue: f}}
}

func boolValue(b bool) *pb.Value {
	return &pb.Value{ValueType: &pb.Value_BooleanValue{BooleanValue: b}}
}

func timestampValue(t time.Time) *pb.Value {
	return &pb.Value{ValueType: &pb.Value_TimestampValue{TimestampValue: timestamppb.New(t)}}
}

func blobValue(b []byte) *pb.Value {
	return &pb.Value{ValueType: &pb.Value_BlobValue{BlobValue: b}}
}

func keyValue(projectID string, k *datastore.Key) *pb.Value {
	return &pb.Value{ValueType: &pb.Value_KeyValue{KeyValue: keyToProto(projectID, k)}}
}

func arrayValue(values []*pb.Value) *pb.Value {
	return &pb.Value{ValueType: &pb.Value_ArrayValue{ArrayValue: &pb.ArrayValue{Values: values}}}
}

// keyToProto converts a datastore key into its wire form, ancestors first.
func keyToProto(projectID string, k *datastore.Key) *pb.Key {
	if k == nil {
		return nil
	}
	var path []*pb.Key_PathElement
	for cur := k; cur != nil; cur = cur.Parent {
		pe := &pb.Key_PathElement{Kind: cur.Kind}
		if cur.Name != "" {
			pe.IdType = &pb.Key_PathElement_Name{Name: cur.Name}
		} else if cur.ID != 0 {
			pe.IdType = &pb.Key_PathElement_Id{Id: cur.ID}
		}
		path = append([]*pb.Key_PathElement{pe}, path...)
	}
	return &pb.Key{
		PartitionId: &pb.PartitionId{
			ProjectId:   projectID,
			NamespaceId: k.Namespace,
		},
		Path: path,
	}
}

// protoToKey rebuilds a datastore key from its wire form.
func protoToKey(p *pb.Key) *datastore.Key {
	if p == nil {
		return nil
	}
	namespace := ""
	if p.PartitionId != nil {
		namespace = p.PartitionId.NamespaceId
	}
	var key *datastore.Key
	for _, pe := range p.Path {
		key = &datastore.Key{Kind: pe.Kind, Parent: key, Namespace: namespace}
		switch id := pe.IdType.(type) {
		case *pb.Key_PathElement_Id:
			key.ID = id.Id
		case *pb.Key_PathElement_Name:
			key.Name = id.Name
		}
	}
	return key
}

// protoToEntity decodes a wire entity into the store-native Entity.
func protoToEntity(e *pb.Entity) Entity {
	if e == nil {
		return Entity{}
	}
	props := make(map[string]any, len(e.Properties))
	for name, v := range e.Properties {
		props[name] = protoToPropertyValue(v)
	}
	return Entity{Key: protoToKey(e.Key), Properties: props}
}

func protoToPropertyValue(v *pb.Value) any {
	if v == nil {
		return nil
	}
	switch vt := v.ValueType.(type) {
	case *pb.Value_NullValue:
		return nil
	case *pb.Value_StringValue:
		return vt.StringValue
	case *pb.Value_IntegerValue:
		return vt.IntegerValue
	case *pb.Value_DoubleValue:
		return vt.DoubleValue
	case *pb.Value_BooleanValue:
		return vt.BooleanValue
	case *pb.Value_TimestampValue:
		return vt.TimestampValue.AsTime()
	case *pb.Value_BlobValue:
		return vt.BlobValue
	case *pb.Value_KeyValue:
		return protoToKey(vt.KeyValue)
	case *pb.Value_GeoPointValue:
		return datastore.GeoPoint{
			Lat: vt.GeoPointValue.Latitude,
			Lng: vt.GeoPointValue.Longitude,
		}
	case *pb.Value_EntityValue:
		return protoToEntity(vt.EntityValue)
	case *pb.Value_ArrayValue:
		items := make([]any, len(vt.ArrayValue.Values))
		for i, item := range vt.ArrayValue.Values {
			items[i] = protoToPropertyValue(item)
		}
		return items
	default:
		return nil
	}
}
