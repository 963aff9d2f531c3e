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

// Package codec reads and writes the generic JSON tree of editor documents.
package codec

import (
	"fmt"
	"strconv"
	"strings"

	json "github.com/json-iterator/go"
	log "github.com/vine-io/vine/lib/logger"

	"github.com/vine-io/flow-editor/dict"
)

// Node is a JSON object of an editor document.
type Node = map[string]interface{}

// Parse decodes an editor document.
func Parse(data []byte) (Node, error) {
	var node Node
	if err := json.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("parse editor json: %w", err)
	}
	if node == nil {
		return nil, fmt.Errorf("editor json is not an object")
	}
	return node, nil
}

// Marshal encodes an editor document.
func Marshal(node Node) ([]byte, error) {
	return json.Marshal(node)
}

// MarshalIndent encodes an editor document with indentation.
func MarshalIndent(node Node, indent string) ([]byte, error) {
	return json.MarshalIndent(node, "", indent)
}

// Decode returns value with every JSON text embedded as a string replaced by
// the parsed tree, recursively. Only strings opening an object or an array
// are parsed; a malformed one is logged and returned as it is.
func Decode(value interface{}) interface{} {
	text, ok := value.(string)
	if !ok {
		return value
	}
	if trimmed := strings.TrimSpace(text); len(trimmed) == 0 || (trimmed[0] != '{' && trimmed[0] != '[') {
		return value
	}

	var out interface{}
	if err := json.UnmarshalFromString(text, &out); err != nil {
		log.Errorf("decode embedded json %q: %v", text, err)
		return value
	}
	return Decode(out)
}

// Text renders a scalar value the way it is shown in the editor forms.
// Objects and arrays have no text.
func Text(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case json.Number:
		return v.String()
	default:
		return ""
	}
}

// Float reads a numeric value, accepting numbers encoded as text.
func Float(value interface{}) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		f, _ := v.Float64()
		return f
	case string:
		f, _ := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f
	default:
		return 0
	}
}

// Bool reads a value with the editor boolean sentinels. Anything that is not
// recognized yields def.
func Bool(value interface{}, def bool) bool {
	text := strings.TrimSpace(Text(value))
	switch {
	case strings.EqualFold(text, dict.PropertyValueYes), strings.EqualFold(text, "true"):
		return true
	case strings.EqualFold(text, dict.PropertyValueNo), strings.EqualFold(text, "false"):
		return false
	default:
		return def
	}
}

// Object returns value as an object after decoding embedded JSON text.
func Object(value interface{}) Node {
	if n, ok := Decode(value).(map[string]interface{}); ok {
		return n
	}
	return nil
}

// Objects returns the object items of an array value.
func Objects(value interface{}) []Node {
	items, ok := Decode(value).([]interface{})
	if !ok {
		return nil
	}
	out := make([]Node, 0, len(items))
	for _, item := range items {
		if n, ok := item.(map[string]interface{}); ok {
			out = append(out, n)
		}
	}
	return out
}

// Field reads a scalar field of an object as text.
func Field(node Node, key string) string {
	if node == nil {
		return ""
	}
	return Text(node[key])
}

// FieldBool reads a boolean field of an object.
func FieldBool(node Node, key string, def bool) bool {
	if node == nil {
		return def
	}
	return Bool(node[key], def)
}
