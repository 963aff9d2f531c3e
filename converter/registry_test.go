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
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vine-io/flow-editor/bpmn"
	"github.com/vine-io/flow-editor/dict"
)

func TestStencilOf(t *testing.T) {
	timerStart := bpmn.NewStartEvent()
	timerStart.AddEventDefinition(&bpmn.TimerEventDefinition{TimeCycle: "R3/PT10H"})

	registryStart := bpmn.NewStartEvent()
	registryStart.GetExtensions().Add(&bpmn.ExtensionElement{Name: dict.ExtensionEventType, Text: "order"})

	twoDefinitions := &bpmn.IntermediateCatchEvent{}
	twoDefinitions.AddEventDefinition(&bpmn.TimerEventDefinition{})
	twoDefinitions.AddEventDefinition(&bpmn.MessageEventDefinition{})

	terminate := &bpmn.EndEvent{}
	terminate.AddEventDefinition(&bpmn.TerminateEventDefinition{})

	tests := []struct {
		name string
		elem bpmn.Element
		want string
	}{
		{"none start", bpmn.NewStartEvent(), dict.StencilEventStartNone},
		{"timer start", timerStart, dict.StencilEventStartTimer},
		{"registry start", registryStart, dict.StencilEventStartEventRegistry},
		{"catch with two triggers", twoDefinitions, dict.StencilEventCatchTimer},
		{"terminate end", terminate, dict.StencilEventEndTerminate},
		{"mail task", &bpmn.ServiceTask{Type: "Mail"}, dict.StencilTaskMail},
		{"unknown service type", &bpmn.ServiceTask{Type: "ftp"}, dict.StencilTaskService},
		{"parallel gateway", &bpmn.ParallelGateway{}, dict.StencilGatewayParallel},
		{"event sub process", &bpmn.EventSubProcess{}, dict.StencilEventSubProcess},
		{"sequence flow", &bpmn.SequenceFlow{}, dict.StencilSequenceFlow},
		{"pool", &bpmn.Pool{}, dict.StencilPool},
		{"element without a kind", &bpmn.ModelMeta{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StencilOf(tt.elem))
			assert.Equal(t, tt.want, StencilOf(tt.elem), "the stencil of an element never changes")
		})
	}
}

func TestForStencil(t *testing.T) {
	for stencil := range stencils {
		_, ok := ForStencil(stencil)
		assert.True(t, ok, stencil)
	}
	_, ok := ForStencil("NoSuchStencil")
	assert.False(t, ok)

	_, ok = ForShape(bpmn.DataObjectShape)
	assert.False(t, ok)
	_, ok = ForShape(bpmn.ProcessShape)
	assert.False(t, ok)
}

// TestStencilRoundTrip converts a bare shape of every node stencil and
// checks the element is drawn with the same stencil again.
func TestStencilRoundTrip(t *testing.T) {
	skip := map[string]bool{
		dict.StencilSequenceFlow:    true,
		dict.StencilMessageFlow:     true,
		dict.StencilAssociation:     true,
		dict.StencilDataAssociation: true,
		dict.StencilPool:            true,
		dict.StencilLane:            true,
		// registry stencils need an event type to be told apart
		dict.StencilEventStartEventRegistry:    true,
		dict.StencilEventBoundaryEventRegistry: true,
		dict.StencilEventCatchEventRegistry:    true,
		dict.StencilTaskReceiveEvent:           true,
	}
	want := map[string]string{
		dict.StencilCollapsedSubProcess: dict.StencilSubProcess,
	}

	names := make([]string, 0, len(stencils))
	for stencil := range stencils {
		if !skip[stencil] {
			names = append(names, stencil)
		}
	}
	sort.Strings(names)

	for _, stencil := range names {
		t.Run(stencil, func(t *testing.T) {
			m, result := New().ToDomain(document(node("x", stencil, 0, 0, 100, 80)))
			assert.False(t, result.Failed(), "%v", result.Diagnostics)

			var elem bpmn.Element
			if fe := m.GetFlowElement("x"); fe != nil {
				elem = fe
			} else if artifact := m.GetArtifact("x"); artifact != nil {
				elem = artifact
			}
			if !assert.NotNil(t, elem) {
				return
			}

			expected := stencil
			if v, ok := want[stencil]; ok {
				expected = v
			}
			assert.Equal(t, expected, StencilOf(elem))
		})
	}
}
