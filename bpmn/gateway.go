package bpmn

// GatewayImpl is embedded by every gateway.
type GatewayImpl struct {
	FlowMeta
	NodeMeta
	GatewayMeta
}

var (
	_ Gateway = (*ExclusiveGateway)(nil)
	_ Gateway = (*ParallelGateway)(nil)
	_ Gateway = (*InclusiveGateway)(nil)
	_ Gateway = (*EventGateway)(nil)
)

type ExclusiveGateway struct {
	GatewayImpl
}

func (g *ExclusiveGateway) GetShape() Shape { return ExclusiveGatewayShape }

type ParallelGateway struct {
	GatewayImpl
}

func (g *ParallelGateway) GetShape() Shape { return ParallelGatewayShape }

type InclusiveGateway struct {
	GatewayImpl
}

func (g *InclusiveGateway) GetShape() Shape { return InclusiveGatewayShape }

type EventGateway struct {
	GatewayImpl
}

func (g *EventGateway) GetShape() Shape { return EventGatewayShape }

// DefaultFlowOf returns the default flow id of an activity or gateway.
func DefaultFlowOf(node FlowNode) string {
	switch n := node.(type) {
	case Activity:
		return n.Activity().DefaultFlow
	case Gateway:
		return n.Gateway().DefaultFlow
	default:
		return ""
	}
}

// SetDefaultFlow marks a flow as the default flow of an activity or gateway.
func SetDefaultFlow(node FlowNode, flowID string) bool {
	switch n := node.(type) {
	case Activity:
		n.Activity().DefaultFlow = flowID
		return true
	case Gateway:
		n.Gateway().DefaultFlow = flowID
		return true
	default:
		return false
	}
}
