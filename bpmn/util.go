package bpmn

import (
	"github.com/beevik/etree"
	"github.com/vine-io/pkg/xname"
)

func setAttr(start *etree.Element, key, value string) {
	if value == "" {
		return
	}
	start.CreateAttr(key, value)
}

func randName() string {
	return xname.Gen(xname.C(7), xname.Lowercase(), xname.Digit())
}

func randShapeName(elem Element) string {
	prefix := ""
	switch elem.GetShape() {
	case ProcessShape:
		prefix = "Process"
	case StartEventShape:
		prefix = "StartEvent"
	case EndEventShape:
		prefix = "EndEvent"
	case BoundaryEventShape, CatchEventShape, ThrowEventShape:
		prefix = "Event"
	case FlowShape:
		prefix = "Flow"
	case ExclusiveGatewayShape, ParallelGatewayShape, InclusiveGatewayShape, EventGatewayShape:
		prefix = "Gateway"
	case LaneShape:
		prefix = "Lane"
	case PoolShape:
		prefix = "Pool"
	default:
		prefix = "Activity"
	}

	return prefix + "_" + randName()
}
