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

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/vine-io/flow-editor/bpmn"
	"github.com/vine-io/flow-editor/codec"
	"github.com/vine-io/flow-editor/dict"
)

func TestCachedResolver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	next := NewMockReferenceResolver(ctrl)
	next.EXPECT().KeyForID(FormModel, "f1").Return("leaveForm", true).Times(1)
	next.EXPECT().KeyForID(FormModel, "f2").Return("", false).Times(1)
	next.EXPECT().InfoForKey(DecisionTableModel, "risk").Return(&ModelInfo{ID: "d1", Key: "risk"}, true).Times(1)

	r, err := NewCachedResolver(next, 16)
	if !assert.NoError(t, err) {
		return
	}

	for i := 0; i < 3; i++ {
		key, ok := r.KeyForID(FormModel, "f1")
		assert.True(t, ok)
		assert.Equal(t, "leaveForm", key)

		_, ok = r.KeyForID(FormModel, "f2")
		assert.False(t, ok, "misses are cached as well")

		info, ok := r.InfoForKey(DecisionTableModel, "risk")
		if assert.True(t, ok) {
			assert.Equal(t, "d1", info.ID)
		}
	}
}

func TestCachedResolverPurge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	next := NewMockReferenceResolver(ctrl)
	next.EXPECT().KeyForID(FormModel, "f1").Return("leaveForm", true).Times(2)

	r, err := NewCachedResolver(next, 4)
	if !assert.NoError(t, err) {
		return
	}
	r.KeyForID(FormModel, "f1")
	r.Purge()
	r.KeyForID(FormModel, "f1")

	_, err = NewCachedResolver(nil, 4)
	assert.Error(t, err)
}

func TestFormReference(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver := NewMockReferenceResolver(ctrl)
	resolver.EXPECT().InfoForKey(FormModel, "leaveForm").Return(&ModelInfo{ID: "f1", Name: "Leave", Key: "leaveForm"}, true)
	resolver.EXPECT().KeyForID(FormModel, "f1").Return("leaveForm", true)

	ctx := Context{model: bpmn.NewModel(), resolver: resolver}
	task := &bpmn.UserTask{FormKey: "leaveForm"}
	shape := codec.NewShape("task", dict.StencilTaskUser, 100, 80, 0, 0)
	if !assert.NoError(t, userTaskToJSON(ctx, task, shape)) {
		return
	}

	props := codec.ShapeProperties(shape)
	assert.Nil(t, props[dict.PropertyFormkey])
	assert.Equal(t, codec.Node{"id": "f1", "name": "Leave", "key": "leaveForm"}, props[dict.PropertyFormReference])
	assert.Equal(t, "leaveForm", parseFormKey(ctx, shape))
}

func TestFormReferenceUnknown(t *testing.T) {
	ctx := Context{model: bpmn.NewModel()}

	shape := codec.NewShape("task", dict.StencilTaskUser, 100, 80, 0, 0)
	codec.ShapeProperties(shape)[dict.PropertyFormReference] = codec.Node{"id": "f9", "key": "stored"}
	assert.Equal(t, "stored", parseFormKey(ctx, shape), "the stored key is used when the id is unknown")

	task := &bpmn.UserTask{FormKey: "plain"}
	out := codec.NewShape("task", dict.StencilTaskUser, 100, 80, 0, 0)
	if assert.NoError(t, userTaskToJSON(ctx, task, out)) {
		assert.Equal(t, "plain", codec.ShapeProperties(out)[dict.PropertyFormkey])
	}
}
