package carton

import (
	"reflect"
	"testing"
)

func sampleServiceMetadata() ServiceMetadata {
	min := int32(1)
	input := ObjectField("input", map[string]FieldSchema{
		"name": func() FieldSchema {
			fs := StringField("name")
			fs.MinLength = &min
			return fs
		}(),
		"score": DoubleField("score"),
	}, []string{"name"})
	output := StringField("result")
	return ServiceMetadata{
		NetworkID:   "net-1",
		ServicePath: "auth",
		Name:        "Auth Service",
		Version:     "1.2.0",
		Description: "authentication and profiles",
		Actions: []ActionMetadata{{
			Name:        "login",
			Description: "validate credentials",
			Input:       &input,
			Output:      &output,
		}},
		Events: []EventMetadata{{
			Path:        "auth/session_started",
			Description: "a session was opened",
			Data:        nil,
		}},
		RegistrationTimeMs: 1700000000000,
		LastStartTimeMs:    1700000001000,
	}
}

func TestFieldSchemaConstructors(t *testing.T) {
	fs := Int64Field("count")
	if fs.Name != "count" || fs.DataType != SchemaInt64 {
		t.Errorf("Int64Field = %+v", fs)
	}
	obj := ObjectField("o", map[string]FieldSchema{"b": BooleanField("b")}, []string{"b"})
	if obj.DataType != SchemaObject || len(obj.Properties) != 1 || obj.Required[0] != "b" {
		t.Errorf("ObjectField = %+v", obj)
	}
	if Int32Field("n").DataType != SchemaInt32 {
		t.Error("Int32Field type")
	}
	if StringField("s").DataType != SchemaString {
		t.Error("StringField type")
	}
	if DoubleField("d").DataType != SchemaDouble {
		t.Error("DoubleField type")
	}
}

func TestServiceMetadataRoundTrip(t *testing.T) {
	r := DefaultRegistry()
	if err := RegisterSchemas(r); err != nil {
		t.Fatal(err)
	}
	in := sampleServiceMetadata()
	v := mustDeserialize(t, r, mustSerialize(t, r, NewStruct(in)))
	if !v.IsLazy() {
		t.Fatal("deserialized metadata is not lazy")
	}
	out, err := AsStructRef[ServiceMetadata](v)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(*out, in) {
		t.Errorf("round trip = %+v, want %+v", *out, in)
	}
}

func TestNestedFieldSchemaRoundTrip(t *testing.T) {
	r := DefaultRegistry()
	if err := RegisterSchemas(r); err != nil {
		t.Fatal(err)
	}
	items := StringField("item")
	in := NewFieldSchema("tags", SchemaArray)
	in.Items = &items
	v := mustDeserialize(t, r, mustSerialize(t, r, NewStruct(in)))
	out, err := AsStructRef[FieldSchema](v)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(*out, in) {
		t.Errorf("round trip = %+v, want %+v", *out, in)
	}
}
