package bpmn

import "fmt"

const (
	builderSpacing = 50
	builderCenterY = 120
)

// Builder builds a single process model laid out left to right.
type Builder struct {
	m   *Model
	ptr *Process
	cur FlowNode
	x   float64
	err error
}

func NewBuilder(name string) *Builder {
	m := NewModel()
	ptr := NewProcess("Process_" + randName())
	ptr.Name = name
	m.AddProcess(ptr)
	return &Builder{m: m, ptr: ptr, x: 100}
}

func (b *Builder) Start() *Builder {
	event := NewStartEvent()
	event.SetID(randShapeName(event))
	return b.AppendElem(event)
}

// AppendElem places elem right of the current node and links both with a
// sequence flow.
func (b *Builder) AppendElem(elem Element) *Builder {
	if b.err != nil {
		return b
	}
	node, ok := elem.(FlowNode)
	if !ok {
		b.err = fmt.Errorf("%v is not FlowNode", elem)
		return b
	}
	if node.GetID() == "" {
		node.SetID(randShapeName(node))
	}
	if _, exists := b.ptr.GetFlowElement(node.GetID()); exists {
		b.err = fmt.Errorf("element %s already exists", node.GetID())
		return b
	}

	width, height := DefaultSize(node)
	info := &GraphicInfo{X: b.x, Y: builderCenterY - height/2, Width: width, Height: height}
	b.ptr.AddFlowElement(node)
	b.m.AddGraphicInfo(node.GetID(), info)
	b.x += width + builderSpacing

	if b.cur != nil {
		b.Link(b.cur, node)
	}
	b.cur = node
	return b
}

// Link connects source to target with a new sequence flow.
func (b *Builder) Link(source, target FlowNode) *SequenceFlow {
	flow := &SequenceFlow{SourceRef: source.GetID(), TargetRef: target.GetID()}
	flow.SetID(randShapeName(flow))
	b.ptr.AddFlowElement(flow)
	source.Node().Outgoing = append(source.Node().Outgoing, flow)
	target.Node().Incoming = append(target.Node().Incoming, flow)

	from := b.m.GetGraphicInfo(source.GetID())
	to := b.m.GetGraphicInfo(target.GetID())
	if from != nil && to != nil {
		b.m.AddFlowGraphicInfoList(flow.Id, []*GraphicInfo{
			{X: from.X + from.Width, Y: from.Y + from.Height/2},
			{X: to.X, Y: to.Y + to.Height/2},
		})
	}
	return flow
}

func (b *Builder) End() *Builder {
	event := &EndEvent{}
	event.SetID(randShapeName(event))
	return b.AppendElem(event)
}

func (b *Builder) Out() (*Model, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.m, nil
}

// DefaultSize returns the editor default size of a node.
func DefaultSize(node Element) (float64, float64) {
	switch node.GetShape() {
	case StartEventShape, BoundaryEventShape, CatchEventShape, ThrowEventShape:
		return 30, 30
	case EndEventShape:
		return 28, 28
	case ExclusiveGatewayShape, ParallelGatewayShape, InclusiveGatewayShape, EventGatewayShape:
		return 40, 40
	case SubProcessShape, EventSubProcessShape, AdhocSubProcessShape:
		return 200, 160
	default:
		return 100, 80
	}
}
