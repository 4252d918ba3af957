// Package validate interprets declarative per-command schemas against
// decoded dtoIn bodies. Fields not declared in a schema are ignored; the
// validator is allow-list by declared fields, not closed-schema.
package validate

import (
	"fmt"
	"strings"
)

// Field types recognised by the validator. JSON numbers decode to float64,
// so TypeNumber accepts any numeric literal.
const (
	TypeString  = "string"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
)

// Rule describes the constraints on a single dtoIn field.
type Rule struct {
	Field    string
	Required bool
	Type     string
	Enum     []string
}

// Schema is the ordered rule set for one command. Declaration order is the
// evaluation order.
type Schema []Rule

// Errors maps field name to a human-readable violation message.
type Errors map[string]string

// DtoIn validates in against the schema and returns per-field messages, or
// nil when the input is valid. All violations are collected; the call never
// stops at the first bad field. JSON null counts as absent for the required
// check and is exempt from type and enum checks, mirroring how optional
// nullable fields behave across the command surface.
//
// For a field that is present and non-null, the type check and the enum
// check both run independently; when both fail the enum message wins.
func DtoIn(schema Schema, in map[string]interface{}) Errors {
	errs := Errors{}

	for _, rule := range schema {
		value, present := in[rule.Field]

		if !present || value == nil {
			if rule.Required {
				errs[rule.Field] = "Field is required"
			}
			continue
		}

		if rule.Type != "" && !hasType(value, rule.Type) {
			errs[rule.Field] = fmt.Sprintf("Field must be of type %s", rule.Type)
		}
		if len(rule.Enum) > 0 && !inEnum(value, rule.Enum) {
			errs[rule.Field] = fmt.Sprintf("Field must be one of: %s", strings.Join(rule.Enum, ", "))
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func hasType(value interface{}, typ string) bool {
	switch typ {
	case TypeString:
		_, ok := value.(string)
		return ok
	case TypeNumber:
		_, ok := value.(float64)
		return ok
	case TypeBoolean:
		_, ok := value.(bool)
		return ok
	}
	return false
}

func inEnum(value interface{}, enum []string) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	for _, e := range enum {
		if s == e {
			return true
		}
	}
	return false
}
