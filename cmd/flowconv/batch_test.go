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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vine-io/flow-editor/bpmn"
	"github.com/vine-io/flow-editor/codec"
	"github.com/vine-io/flow-editor/converter"
)

func writeDocument(t *testing.T, dir, name string) string {
	t.Helper()

	task := &bpmn.UserTask{}
	task.SetID("review")
	m, err := bpmn.NewBuilder(name).Start().AppendElem(task).End().Out()
	if err != nil {
		t.Fatal(err)
	}
	doc, result := converter.New().ToJSON(m)
	if result.Failed() {
		t.Fatal(result.Diagnostics)
	}
	data, err := codec.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(dir, name+".json")
	if err = os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunBatch(t *testing.T) {
	in := t.TempDir()
	out := filepath.Join(t.TempDir(), "xml")

	writeDocument(t, in, "leave")
	writeDocument(t, in, "expense")
	broken := filepath.Join(in, "broken.json")
	if !assert.NoError(t, os.WriteFile(broken, []byte("{"), 0o644)) {
		return
	}
	if !assert.NoError(t, os.WriteFile(filepath.Join(in, "notes.txt"), []byte("skip"), 0o644)) {
		return
	}

	docs, err := collectDocuments([]string{in})
	if !assert.NoError(t, err) {
		return
	}
	assert.Len(t, docs, 3)

	report, err := runBatch(converter.New(), docs, out, 2)
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, int64(2), report.Converted)
	assert.Equal(t, int64(1), report.Failed)

	data, err := os.ReadFile(filepath.Join(out, "leave.bpmn20.xml"))
	if assert.NoError(t, err) {
		assert.Contains(t, string(data), "userTask")
	}
	assert.FileExists(t, filepath.Join(out, "expense.bpmn20.xml"))
}

func TestRunBatchSameName(t *testing.T) {
	in := t.TempDir()
	for _, dir := range []string{"a", "b"} {
		if !assert.NoError(t, os.MkdirAll(filepath.Join(in, dir), 0o755)) {
			return
		}
		writeDocument(t, filepath.Join(in, dir), "leave")
	}

	docs, err := collectDocuments([]string{in})
	if !assert.NoError(t, err) {
		return
	}
	out := t.TempDir()
	report, err := runBatch(converter.New(), docs, out, 2)
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, int64(2), report.Converted)
	assert.Equal(t, int64(0), report.Failed)
	assert.FileExists(t, filepath.Join(out, "a", "leave.bpmn20.xml"))
	assert.FileExists(t, filepath.Join(out, "b", "leave.bpmn20.xml"))

	// files given one by one only keep their base name
	docs, err = collectDocuments([]string{
		filepath.Join(in, "a", "leave.json"),
		filepath.Join(in, "b", "leave.json"),
	})
	if !assert.NoError(t, err) {
		return
	}
	report, err = runBatch(converter.New(), docs, t.TempDir(), 2)
	if assert.NoError(t, err) {
		assert.Equal(t, int64(1), report.Converted)
		assert.Equal(t, int64(1), report.Failed, "the second document would overwrite the first")
	}
}

func TestXMLName(t *testing.T) {
	assert.Equal(t, "leave.bpmn20.xml", xmlName("leave.json"))
	assert.Equal(t, filepath.Join("hr", "leave.bpmn20.xml"), xmlName(filepath.Join("hr", "leave.json")))
	assert.Equal(t, "leave.bpmn20.xml", xmlName("leave"))
}

func TestToXMLCommand(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := writeDocument(t, t.TempDir(), "leave")

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"to-xml", path})
	if !assert.NoError(t, root.Execute()) {
		return
	}
	assert.Contains(t, stdout.String(), "startEvent")

	root = newRootCmd()
	stdout.Reset()
	root.SetOut(stdout)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"validate", path})
	if assert.NoError(t, root.Execute()) {
		assert.Contains(t, stdout.String(), "ok")
	}
}
