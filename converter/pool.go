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
	"fmt"

	"github.com/vine-io/flow-editor/bpmn"
	"github.com/vine-io/flow-editor/codec"
	"github.com/vine-io/flow-editor/dict"
)

var (
	poolConverter = &poolShape{}
	laneConverter = &laneShape{}
)

// poolShape converts a pool together with the process it renders.
type poolShape struct{}

var _ ElementConverter = (*poolShape)(nil)

func (poolShape) StencilID(elem bpmn.Element) string {
	return dict.StencilPool
}

func (poolShape) ToJSON(ctx Context, elem bpmn.Element) ([]codec.Node, error) {
	pool, ok := elem.(*bpmn.Pool)
	if !ok {
		return nil, fmt.Errorf("%v is not Pool", elem.GetID())
	}
	model := ctx.Model()
	info := model.GetGraphicInfo(pool.Id)
	if info == nil {
		return nil, fmt.Errorf("pool %s has no graphic info", pool.Id)
	}

	shape := codec.NewShape(pool.Id, dict.StencilPool, info.X+info.Width, info.Y+info.Height, info.X, info.Y)
	props := codec.ShapeProperties(shape)
	props[dict.PropertyOverrideID] = pool.Id
	props[dict.PropertyProcessID] = pool.ProcessRef
	if !pool.Executable {
		props[dict.PropertyIsExecutable] = "false"
	}
	codec.PutString(props, dict.PropertyName, pool.Name)

	if process := model.Process(pool.ProcessRef); process != nil {
		child := ctx.WithContainer(process).WithOffset(info.X, info.Y)
		for _, lane := range process.Lanes {
			laneShapes, err := laneConverter.ToJSON(child, lane)
			if err != nil {
				ctx.Diagnostics().Warnf(lane.Id, "lane skipped: %v", err)
				continue
			}
			for _, item := range laneShapes {
				codec.AppendChild(shape, item)
			}
		}
	}

	out := &outgoing{}
	for _, flow := range model.MessageFlows() {
		if flow.SourceRef == pool.Id {
			out.add(flow.Id)
		}
	}
	shape[dict.EditorOutgoing] = out.items()
	return []codec.Node{shape}, nil
}

// ToDomain builds the pool and the empty process it references. Lanes and
// elements are added by the caller.
func (poolShape) ToDomain(ctx Context, shape codec.Node) (bpmn.Element, error) {
	pool := &bpmn.Pool{}
	pool.Id = codec.ElementID(shape)
	if len(pool.Id) == 0 {
		return nil, fmt.Errorf("pool %s has no id", codec.ResourceID(shape))
	}
	pool.Name = codec.String(dict.PropertyName, shape)
	pool.ProcessRef = codec.String(dict.PropertyProcessID, shape)
	if len(pool.ProcessRef) == 0 {
		pool.ProcessRef = "process_" + pool.Id
	}
	pool.Executable = codec.GetBool(dict.PropertyIsExecutable, shape, true)

	model := ctx.Model()
	process := bpmn.NewProcess(pool.ProcessRef)
	process.Name = pool.Name
	process.Executable = pool.Executable
	model.AddProcess(process)
	model.Pools = append(model.Pools, pool)
	return pool, nil
}

// laneShape converts a lane of the process in ctx.
type laneShape struct{}

var _ ElementConverter = (*laneShape)(nil)

func (laneShape) StencilID(elem bpmn.Element) string {
	return dict.StencilLane
}

// ToJSON places the lane relative to its pool. Its children are the process
// elements it references and the sequence flows leaving them.
func (laneShape) ToJSON(ctx Context, elem bpmn.Element) ([]codec.Node, error) {
	lane, ok := elem.(*bpmn.Lane)
	if !ok {
		return nil, fmt.Errorf("%v is not Lane", elem.GetID())
	}
	process, ok := ctx.Container().(*bpmn.Process)
	if !ok {
		return nil, fmt.Errorf("lane %s is outside of a process", lane.Id)
	}
	info := ctx.Model().GetGraphicInfo(lane.Id)
	if info == nil {
		return nil, fmt.Errorf("lane %s has no graphic info", lane.Id)
	}

	offset := ctx.Offset()
	x, y := info.X-offset.X, info.Y-offset.Y
	shape := codec.NewShape(lane.Id, dict.StencilLane, x+info.Width, y+info.Height, x, y)
	props := codec.ShapeProperties(shape)
	props[dict.PropertyOverrideID] = lane.Id
	codec.PutString(props, dict.PropertyName, lane.Name)

	members := make(map[string]struct{}, len(lane.FlowReferences))
	for _, ref := range lane.FlowReferences {
		members[ref] = struct{}{}
	}
	child := ctx.WithLane(lane).WithOffset(info.X, info.Y)
	for _, flowElement := range process.FlowElements() {
		id := flowElement.GetID()
		if flow, ok := flowElement.(*bpmn.SequenceFlow); ok {
			if owner := process.Owner(flow.SourceRef); owner != nil {
				id = flow.SourceRef
				if owner != lane {
					continue
				}
			}
		}
		if _, ok := members[id]; !ok {
			continue
		}
		for _, item := range ctx.walker.elementToJSON(child, flowElement) {
			codec.AppendChild(shape, item)
		}
	}
	shape[dict.EditorOutgoing] = []interface{}{}
	return []codec.Node{shape}, nil
}

// ToDomain adds an empty lane to the process in ctx.
func (laneShape) ToDomain(ctx Context, shape codec.Node) (bpmn.Element, error) {
	process, ok := ctx.Container().(*bpmn.Process)
	if !ok {
		return nil, fmt.Errorf("lane %s is outside of a process", codec.ResourceID(shape))
	}
	lane := &bpmn.Lane{ParentProcess: process}
	lane.Id = codec.ElementID(shape)
	lane.Name = codec.String(dict.PropertyName, shape)
	process.Lanes = append(process.Lanes, lane)
	return lane, nil
}
