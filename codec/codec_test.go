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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vine-io/flow-editor/dict"
	"github.com/vine-io/flow-editor/geometry"
)

const sampleShape = `{
	"resourceId": "sid-1",
	"stencil": {"id": "UserTask"},
	"bounds": {"lowerRight": {"x": 200, "y": 160}, "upperLeft": {"x": 100, "y": 80}},
	"properties": {
		"overrideid": " task1 ",
		"name": "Review",
		"asynchronousdefinition": "Yes",
		"exclusivedefinition": false,
		"candidateusers": " kermit , gonzo ",
		"tasklisteners": "{\"taskListeners\": [{\"event\": \"create\"}]}",
		"priority": 5
	},
	"outgoing": [{"resourceId": "sid-2"}, {"resourceId": ""}],
	"target": {"resourceId": "sid-3"},
	"dockers": [{"x": 50, "y": "40"}],
	"childShapes": []
}`

func TestParse(t *testing.T) {
	shape, err := Parse([]byte(sampleShape))
	if !assert.NoError(t, err) {
		return
	}

	assert.Equal(t, dict.StencilTaskUser, StencilID(shape))
	assert.Equal(t, "sid-1", ResourceID(shape))
	assert.Equal(t, "task1", ElementID(shape))
	assert.True(t, HasChildShapes(shape))
	assert.Equal(t, []string{"sid-2"}, Outgoing(shape))
	assert.Equal(t, "sid-3", TargetID(shape))
	assert.Equal(t, []geometry.Point{{X: 50, Y: 40}}, Dockers(shape))

	upperLeft, lowerRight := Bounds(shape)
	assert.Equal(t, geometry.Point{X: 100, Y: 80}, upperLeft)
	assert.Equal(t, geometry.Point{X: 200, Y: 160}, lowerRight)

	_, err = Parse([]byte(`[1, 2]`))
	assert.Error(t, err)
	_, err = Parse([]byte(`null`))
	assert.Error(t, err)
}

func TestProperties(t *testing.T) {
	shape, err := Parse([]byte(sampleShape))
	if !assert.NoError(t, err) {
		return
	}

	assert.Equal(t, "Review", String(dict.PropertyName, shape))
	assert.Equal(t, "5", String("priority", shape))
	_, ok := GetString("missing", shape)
	assert.False(t, ok)

	assert.True(t, GetBool(dict.PropertyAsynchronous, shape, false))
	assert.False(t, GetBool(dict.PropertyExclusive, shape, true))
	assert.True(t, GetBool("missing", shape, true))

	assert.Equal(t, []string{"kermit", "gonzo"}, GetList("candidateusers", shape))
	items := GetItems(dict.PropertyTaskListeners, "taskListeners", shape)
	if assert.Len(t, items, 1) {
		assert.Equal(t, "create", Field(items[0], "event"))
	}
}

func TestDecode(t *testing.T) {
	v := Decode(`{"a": "[1, 2]"}`)
	obj, ok := v.(map[string]interface{})
	if !assert.True(t, ok) {
		return
	}
	assert.Equal(t, []interface{}{float64(1), float64(2)}, Decode(obj["a"]))

	assert.Equal(t, "plain text", Decode("plain text"))
	assert.Equal(t, "{broken", Decode("{broken"))
	assert.Equal(t, 3.5, Decode(3.5))
}

func TestScalars(t *testing.T) {
	assert.Equal(t, "", Text(nil))
	assert.Equal(t, "true", Text(true))
	assert.Equal(t, "1.5", Text(1.5))
	assert.Equal(t, "", Text(Node{}))

	assert.Equal(t, 12.0, Float("12"))
	assert.Equal(t, 0.0, Float("x"))

	assert.True(t, Bool("Yes", false))
	assert.False(t, Bool("No", true))
	assert.True(t, Bool("maybe", true))
}

func TestBool(t *testing.T) {
	tests := []struct {
		value interface{}
		def   bool
		want  bool
	}{
		{"Yes", false, true},
		{"yes", false, true},
		{"YES", false, true},
		{"TRUE", false, true},
		{"True", false, true},
		{true, false, true},
		{" No ", true, false},
		{"no", true, false},
		{"FALSE", true, false},
		{false, true, false},
		{"", true, true},
		{"maybe", false, false},
		{nil, true, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Bool(tt.value, tt.def), "%v", tt.value)
	}
}

func TestNullText(t *testing.T) {
	shape := Node{dict.EditorShapeProperties: Node{
		"assignee":       "null",
		"candidateusers": "NULL",
		"name":           "nullable",
	}}

	_, ok := GetString("assignee", shape)
	assert.False(t, ok, "the editor writes null for a cleared field")
	assert.Equal(t, "", String("assignee", shape))
	assert.Nil(t, GetList("candidateusers", shape))

	name, ok := GetString("name", shape)
	assert.True(t, ok)
	assert.Equal(t, "nullable", name)
}

func TestValueLists(t *testing.T) {
	props := Node{}
	props["users"] = NewValueList([]string{"a", "b"})
	shape := Node{dict.EditorShapeProperties: props}

	assert.Equal(t, []string{"a", "b"}, GetList("users", shape))
	assert.Equal(t, []string{"a", "b"}, GetValueList("users", shape))
	assert.Nil(t, SplitList("  "))
}

func TestPutters(t *testing.T) {
	props := Node{}
	PutString(props, "empty", "")
	PutString(props, "name", "n")
	PutTrue(props, "off", false)
	PutTrue(props, "on", true)
	PutList(props, "none", nil)
	PutList(props, "list", []string{"a", "b"})
	PutNonEmpty(props, "array", []interface{}{})
	PutNonEmpty(props, "object", map[string]interface{}{"k": "v"})

	assert.Equal(t, Node{
		"name":   "n",
		"on":     true,
		"list":   "a,b",
		"object": map[string]interface{}{"k": "v"},
	}, props)
}

func TestAddField(t *testing.T) {
	var fields []interface{}
	fields = AddField(fields, "to", "${initiator}")
	fields = AddField(fields, "subject", "hello")
	fields = AddField(fields, "empty", "")

	if !assert.Len(t, fields, 2) {
		return
	}
	assert.Equal(t, Node{"name": "to", "expression": "${initiator}"}, fields[0])
	assert.Equal(t, Node{"name": "subject", "stringValue": "hello"}, fields[1])
}

func TestShapeBuilders(t *testing.T) {
	shape := NewShape("sid-1", dict.StencilTaskUser, 200, 160, 100, 80)
	ShapeProperties(shape)[dict.PropertyName] = "Review"
	AppendChild(shape, NewShape("sid-2", dict.StencilEventStartNone, 30, 30, 0, 0))
	AppendOutgoing(shape, "sid-3")

	data, err := Marshal(shape)
	if !assert.NoError(t, err) {
		return
	}
	parsed, err := Parse(data)
	if !assert.NoError(t, err) {
		return
	}

	assert.Equal(t, "Review", String(dict.PropertyName, parsed))
	assert.Len(t, ChildShapes(parsed), 1)
	assert.Equal(t, []string{"sid-3"}, Outgoing(parsed))
	upperLeft, _ := Bounds(parsed)
	assert.Equal(t, geometry.Point{X: 100, Y: 80}, upperLeft)
}
