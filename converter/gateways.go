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
	"github.com/vine-io/flow-editor/bpmn"
	"github.com/vine-io/flow-editor/codec"
	"github.com/vine-io/flow-editor/dict"
)

var gatewayConverter = &nodeConverter{
	stencil:  gatewayStencil,
	toDomain: gatewayToDomain,
}

func gatewayStencil(elem bpmn.Element) string {
	switch elem.GetShape() {
	case bpmn.ParallelGatewayShape:
		return dict.StencilGatewayParallel
	case bpmn.InclusiveGatewayShape:
		return dict.StencilGatewayInclusive
	case bpmn.EventGatewayShape:
		return dict.StencilGatewayEvent
	default:
		// exclusive, and any gateway kind the editor has no stencil for
		return dict.StencilGatewayExclusive
	}
}

func gatewayToDomain(ctx Context, shape codec.Node) (bpmn.Element, error) {
	switch codec.StencilID(shape) {
	case dict.StencilGatewayParallel:
		return &bpmn.ParallelGateway{}, nil
	case dict.StencilGatewayInclusive:
		return &bpmn.InclusiveGateway{}, nil
	case dict.StencilGatewayEvent:
		return &bpmn.EventGateway{}, nil
	default:
		return &bpmn.ExclusiveGateway{}, nil
	}
}
