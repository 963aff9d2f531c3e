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

package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vine-io/flow-editor/bpmn"
	"github.com/vine-io/flow-editor/codec"
	"github.com/vine-io/flow-editor/dict"
)

func TestParseConditionExpression(t *testing.T) {
	tests := []struct {
		name       string
		expression codec.Node
		want       string
		extensions map[string]string
	}{
		{
			name:       "static",
			expression: codec.Node{"type": "static", "staticValue": "${amount > 10}"},
			want:       "${amount > 10}",
		},
		{
			name: "field",
			expression: codec.Node{
				"type": "variables", "fieldType": "field",
				"fieldId": "amount", "operator": "==", "value": "10",
			},
			want: "${amount == 10}",
			extensions: map[string]string{
				dict.ExtensionConditionFieldID:  "amount",
				dict.ExtensionConditionOperator: "==",
				dict.ExtensionConditionValue:    "10",
			},
		},
		{
			name: "outcome",
			expression: codec.Node{
				"type": "variables", "fieldType": "outcome",
				"outcomeFormId": "f1", "operator": "!=", "outcomeName": "reject",
			},
			want: "${formf1outcome != reject}",
			extensions: map[string]string{
				dict.ExtensionConditionFormID:      "f1",
				dict.ExtensionConditionOutcomeName: "reject",
			},
		},
		{
			name: "incomplete field",
			expression: codec.Node{
				"type": "variables", "fieldType": "field", "fieldId": "amount",
			},
		},
		{
			name:       "no type",
			expression: codec.Node{"staticValue": "${x}"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flow := &bpmn.SequenceFlow{}
			parseConditionExpression(flow, tt.expression)
			assert.Equal(t, tt.want, flow.ConditionExpression)
			for name, value := range tt.extensions {
				assert.Equal(t, value, flow.Extensions.Value(name), name)
			}
			if len(tt.extensions) == 0 {
				assert.Equal(t, 0, flow.Extensions.Len())
			}
		})
	}
}

func TestConditionAsEmbeddedJSON(t *testing.T) {
	shape := codec.NewShape("f", dict.StencilSequenceFlow, 0, 0, 0, 0)
	codec.ShapeProperties(shape)[dict.PropertySequenceflowCondition] =
		`{"expression": {"type": "static", "staticValue": "${ok}"}}`

	ctx := Context{
		model: bpmn.NewModel(),
		index: &shapeIndex{
			shapes:  map[string]codec.Node{},
			sources: map[string]codec.Node{"f": codec.NewShape("a", dict.StencilTaskUser, 0, 0, 0, 0)},
		},
	}
	elem, err := sequenceFlowToDomain(ctx, shape)
	if !assert.NoError(t, err) {
		return
	}
	flow := elem.(*bpmn.SequenceFlow)
	assert.Equal(t, "a", flow.SourceRef)
	assert.Equal(t, "${ok}", flow.ConditionExpression)
}

func TestSideDocker(t *testing.T) {
	target := &bpmn.GraphicInfo{X: 100, Y: 100, Width: 80, Height: 40}

	tests := []struct {
		name string
		last *bpmn.GraphicInfo
		want codec.Node
	}{
		{"top", &bpmn.GraphicInfo{X: 140, Y: 102}, codec.NewPoint(40, 0)},
		{"right", &bpmn.GraphicInfo{X: 178, Y: 120}, codec.NewPoint(80, 20)},
		{"bottom", &bpmn.GraphicInfo{X: 140, Y: 141}, codec.NewPoint(40, 40)},
		{"left", &bpmn.GraphicInfo{X: 100, Y: 120}, codec.NewPoint(0, 20)},
		{"far away", &bpmn.GraphicInfo{X: 0, Y: 0}, codec.NewPoint(0, 20)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sideDocker(tt.last, target))
		})
	}
}

func TestBoundaryDockerRoundsHalfUp(t *testing.T) {
	host := &bpmn.GraphicInfo{X: 100, Y: 100, Width: 100, Height: 80}
	event := &bpmn.GraphicInfo{X: 170.5, Y: 165, Width: 31, Height: 31}

	assert.Equal(t, codec.NewPoint(86, 81), boundaryDocker(event, host))
}

func TestAssociationDocksOnSide(t *testing.T) {
	m := bpmn.NewModel()
	process := bpmn.NewProcess("p")
	m.AddProcess(process)

	task := &bpmn.ManualTask{}
	task.SetID("task")
	process.AddFlowElement(task)
	note := &bpmn.TextAnnotation{Text: "check the budget"}
	note.SetID("note")
	process.AddArtifact(note)
	association := &bpmn.Association{SourceRef: "task", TargetRef: "note"}
	association.SetID("a1")
	process.AddArtifact(association)

	place(m, task, 100, 100, 100, 80)
	place(m, note, 100, 250, 100, 50)
	m.AddFlowGraphicInfoList("a1", []*bpmn.GraphicInfo{{X: 150, Y: 180}, {X: 150, Y: 250}})

	doc, result := New().ToJSON(m)
	assert.False(t, result.Failed(), "%v", result.Diagnostics)

	byID := map[string]codec.Node{}
	for _, shape := range codec.ChildShapes(doc) {
		byID[codec.ResourceID(shape)] = shape
	}
	if assert.Contains(t, byID, "a1") {
		dockers := codec.Dockers(byID["a1"])
		if assert.Len(t, dockers, 2) {
			assert.Equal(t, 50.0, dockers[1].X)
			assert.Equal(t, 0.0, dockers[1].Y)
		}
	}
	assert.Equal(t, []string{"a1"}, codec.Outgoing(byID["task"]))
	assert.Equal(t, "check the budget", codec.String(dict.PropertyText, byID["note"]))
}
