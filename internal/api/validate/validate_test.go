package validate

import (
	"reflect"
	"testing"
)

var memberSchema = Schema{
	{Field: "listId", Required: true, Type: TypeString},
	{Field: "userId", Required: true, Type: TypeString},
	{Field: "role", Required: true, Type: TypeString, Enum: []string{"member", "viewer"}},
}

func TestDtoIn(t *testing.T) {
	tests := []struct {
		name   string
		schema Schema
		in     map[string]interface{}
		want   Errors
	}{
		{
			name:   "valid input",
			schema: memberSchema,
			in:     map[string]interface{}{"listId": "l1", "userId": "u2", "role": "viewer"},
			want:   nil,
		},
		{
			name:   "all violations collected",
			schema: memberSchema,
			in:     map[string]interface{}{"role": "owner"},
			want: Errors{
				"listId": "Field is required",
				"userId": "Field is required",
				"role":   "Field must be one of: member, viewer",
			},
		},
		{
			name:   "null counts as missing",
			schema: memberSchema,
			in:     map[string]interface{}{"listId": nil, "userId": "u2", "role": "member"},
			want:   Errors{"listId": "Field is required"},
		},
		{
			name:   "type mismatch",
			schema: Schema{{Field: "name", Required: true, Type: TypeString}, {Field: "quantity", Type: TypeNumber}},
			in:     map[string]interface{}{"name": "milk", "quantity": "two"},
			want:   Errors{"quantity": "Field must be of type number"},
		},
		{
			name:   "enum message wins over type message",
			schema: memberSchema,
			in:     map[string]interface{}{"listId": "l1", "userId": "u2", "role": 5.0},
			want:   Errors{"role": "Field must be one of: member, viewer"},
		},
		{
			name:   "undeclared fields ignored",
			schema: Schema{{Field: "id", Required: true, Type: TypeString}},
			in:     map[string]interface{}{"id": "l1", "bogus": 42.0, "extra": map[string]interface{}{}},
			want:   nil,
		},
		{
			name:   "optional absent field passes",
			schema: Schema{{Field: "ownedOnly", Type: TypeBoolean}},
			in:     map[string]interface{}{},
			want:   nil,
		},
		{
			name:   "optional present field type checked",
			schema: Schema{{Field: "ownedOnly", Type: TypeBoolean}},
			in:     map[string]interface{}{"ownedOnly": "yes"},
			want:   Errors{"ownedOnly": "Field must be of type boolean"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DtoIn(tt.schema, tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("DtoIn: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDtoIn_Deterministic(t *testing.T) {
	in := map[string]interface{}{"role": 5.0, "noise": true}
	first := DtoIn(memberSchema, in)
	second := DtoIn(memberSchema, in)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("validation not deterministic: %v vs %v", first, second)
	}
}
