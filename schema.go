package carton

// SchemaDataType names the abstract field types a service schema can
// declare. The set is transport-level, not Go-level: a consumer reads
// these names without sharing any Go types with the producer.
type SchemaDataType string

const (
	SchemaString    SchemaDataType = "string"
	SchemaInt32     SchemaDataType = "int32"
	SchemaInt64     SchemaDataType = "int64"
	SchemaFloat     SchemaDataType = "float"
	SchemaDouble    SchemaDataType = "double"
	SchemaBoolean   SchemaDataType = "boolean"
	SchemaTimestamp SchemaDataType = "timestamp"
	SchemaBinary    SchemaDataType = "binary"
	SchemaObject    SchemaDataType = "object"
	SchemaArray     SchemaDataType = "array"
	SchemaReference SchemaDataType = "reference"
	SchemaUnion     SchemaDataType = "union"
	SchemaAny       SchemaDataType = "any"
)

// FieldSchema describes one field of an object schema, including the
// validation constraints that apply to its declared type. Constraint
// fields that do not apply to the type are left zero.
type FieldSchema struct {
	Name        string
	DataType    SchemaDataType
	Description string
	Nullable    bool

	// Object constraints.
	Properties map[string]FieldSchema
	Required   []string

	// Array constraints.
	Items *FieldSchema

	// String constraints. Length bounds are nil when unconstrained.
	Pattern   string
	OneOf     []string
	MinLength *int32
	MaxLength *int32

	// Numeric constraints, nil when unconstrained.
	Minimum *float64
	Maximum *float64

	// Default and example values as JSON text, empty when unset.
	Default string
	Example string
}

// NewFieldSchema returns a schema for name with the given type.
func NewFieldSchema(name string, dt SchemaDataType) FieldSchema {
	return FieldSchema{Name: name, DataType: dt}
}

// StringField is shorthand for a string-typed field.
func StringField(name string) FieldSchema { return NewFieldSchema(name, SchemaString) }

// Int32Field is shorthand for an int32-typed field.
func Int32Field(name string) FieldSchema { return NewFieldSchema(name, SchemaInt32) }

// Int64Field is shorthand for an int64-typed field.
func Int64Field(name string) FieldSchema { return NewFieldSchema(name, SchemaInt64) }

// DoubleField is shorthand for a double-typed field.
func DoubleField(name string) FieldSchema { return NewFieldSchema(name, SchemaDouble) }

// BooleanField is shorthand for a boolean-typed field.
func BooleanField(name string) FieldSchema { return NewFieldSchema(name, SchemaBoolean) }

// ObjectField is shorthand for an object-typed field with the given
// properties and required-property names.
func ObjectField(name string, props map[string]FieldSchema, required []string) FieldSchema {
	fs := NewFieldSchema(name, SchemaObject)
	fs.Properties = props
	fs.Required = required
	return fs
}

// ActionMetadata describes one action a service exposes.
type ActionMetadata struct {
	Name        string
	Description string
	Input       *FieldSchema
	Output      *FieldSchema
}

// EventMetadata describes one event a service publishes.
type EventMetadata struct {
	Path        string
	Description string
	Data        *FieldSchema
}

// ServiceMetadata is the discoverable description of a service: its
// addressing information plus the actions and events it offers.
type ServiceMetadata struct {
	NetworkID          string
	ServicePath        string
	Name               string
	Version            string
	Description        string
	Actions            []ActionMetadata
	Events             []EventMetadata
	RegistrationTimeMs int64
	LastStartTimeMs    int64
}

// RegisterSchemas installs codecs for the schema and metadata types so
// they can travel as Struct-category values.
func RegisterSchemas(r *Registry) error {
	if err := Register[FieldSchema](r); err != nil {
		return err
	}
	if err := Register[ActionMetadata](r); err != nil {
		return err
	}
	if err := Register[EventMetadata](r); err != nil {
		return err
	}
	if err := Register[ServiceMetadata](r); err != nil {
		return err
	}
	if err := Register[[]ActionMetadata](r); err != nil {
		return err
	}
	return Register[[]EventMetadata](r)
}
