// Copyright 2023 Lack (xingyys@gmail.com).
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package codec

import (
	"strings"

	"github.com/vine-io/flow-editor/dict"
)

// Properties returns the properties object of a shape.
func Properties(shape Node) Node {
	if shape == nil {
		return nil
	}
	return Object(shape[dict.EditorShapeProperties])
}

// Property returns the raw property value, nil when absent or JSON null.
func Property(key string, shape Node) interface{} {
	props := Properties(shape)
	if props == nil {
		return nil
	}
	return props[key]
}

// GetString returns the text of a property. The flag is false when the
// property is absent, JSON null or the text "null" the editor writes for a
// cleared field.
func GetString(key string, shape Node) (string, bool) {
	v := Property(key, shape)
	if v == nil {
		return "", false
	}
	text := Text(v)
	if strings.EqualFold(strings.TrimSpace(text), "null") {
		return "", false
	}
	return text, true
}

// String returns the text of a property, empty when absent.
func String(key string, shape Node) string {
	s, _ := GetString(key, shape)
	return s
}

// GetBool returns a boolean property. Yes/true and No/false are recognized,
// anything else yields def.
func GetBool(key string, shape Node, def bool) bool {
	return Bool(Property(key, shape), def)
}

// GetList splits a comma separated property into trimmed tokens. An array of
// {"value": ...} objects is read as well.
func GetList(key string, shape Node) []string {
	if _, ok := Decode(Property(key, shape)).([]interface{}); ok {
		return GetValueList(key, shape)
	}
	return SplitList(String(key, shape))
}

// GetValueList reads a property holding an array of {"value": ...} objects.
func GetValueList(key string, shape Node) []string {
	return ValueList(Properties(shape), key)
}

// GetArray returns the object items of an array property.
func GetArray(key string, shape Node) []Node {
	return Objects(Property(key, shape))
}

// SplitList splits a comma separated text into trimmed tokens.
func SplitList(text string) []string {
	if len(strings.TrimSpace(text)) == 0 {
		return nil
	}
	parts := strings.Split(text, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		out = append(out, strings.TrimSpace(part))
	}
	return out
}

// GetObject returns an object property, decoding embedded JSON text.
func GetObject(key string, shape Node) Node {
	return Object(Property(key, shape))
}

// GetItems returns the object items stored under inner of an object property,
// e.g. {"taskListeners": [...]}.
func GetItems(key, inner string, shape Node) []Node {
	obj := GetObject(key, shape)
	if obj == nil {
		return nil
	}
	return Objects(obj[inner])
}

// ValueList reads an array of {"value": ...} objects.
func ValueList(node Node, key string) []string {
	if node == nil {
		return nil
	}
	items := Objects(node[key])
	out := make([]string, 0, len(items))
	for _, item := range items {
		if v := Field(item, "value"); len(v) > 0 {
			out = append(out, v)
		}
	}
	return out
}

// NewValueList builds an array of {"value": ...} objects.
func NewValueList(values []string) []interface{} {
	out := make([]interface{}, 0, len(values))
	for _, v := range values {
		out = append(out, Node{"value": v})
	}
	return out
}

// PutString sets a property when the value is not empty.
func PutString(props Node, key, value string) {
	if len(value) > 0 {
		props[key] = value
	}
}

// PutNonEmpty sets a property unless the value is nil, an empty string, or
// an empty array or object.
func PutNonEmpty(props Node, key string, value interface{}) {
	switch v := value.(type) {
	case nil:
		return
	case string:
		if len(v) == 0 {
			return
		}
	case []interface{}:
		if len(v) == 0 {
			return
		}
	case map[string]interface{}:
		if len(v) == 0 {
			return
		}
	}
	props[key] = value
}

// AddField appends a service task field to fields. A value holding an
// expression is stored as expression, anything else as stringValue.
func AddField(fields []interface{}, name, value string) []interface{} {
	if len(value) == 0 {
		return fields
	}
	field := Node{"name": name}
	if IsExpression(value) {
		field["expression"] = value
	} else {
		field["stringValue"] = value
	}
	return append(fields, field)
}

// PutBool sets a boolean property.
func PutBool(props Node, key string, value bool) {
	props[key] = value
}

// PutTrue sets a boolean property only when it is true.
func PutTrue(props Node, key string, value bool) {
	if value {
		props[key] = true
	}
}

// PutList joins values into a comma separated property.
func PutList(props Node, key string, values []string) {
	if len(values) > 0 {
		props[key] = strings.Join(values, ",")
	}
}

// IsExpression reports whether a field value is an expression.
func IsExpression(value string) bool {
	return (strings.Contains(value, "${") || strings.Contains(value, "#{")) && strings.Contains(value, "}")
}
