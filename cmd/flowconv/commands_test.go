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

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vine-io/flow-editor/codec"
	"github.com/vine-io/flow-editor/converter"
)

func TestNewCommand(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("FLOWCONV_NAMESPACE", "urn:leave")

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"new", "leave"})
	if !assert.NoError(t, root.Execute()) {
		return
	}

	doc, err := codec.Parse(stdout.Bytes())
	if !assert.NoError(t, err) {
		return
	}
	assert.Len(t, codec.ChildShapes(doc), 3, "start, end and the flow between them")

	m, result := converter.New().ToDomain(doc)
	assert.False(t, result.Failed(), "%v", result.Diagnostics)
	assert.Equal(t, "urn:leave", m.TargetNamespace)
	if process := m.MainProcess(); assert.NotNil(t, process) {
		assert.Equal(t, "leave", process.Name)
		assert.Len(t, process.FlowElements(), 3)
	}
	assert.NoError(t, m.Validate())
}
