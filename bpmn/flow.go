package bpmn

var (
	_ FlowElement = (*SequenceFlow)(nil)
	_ Element     = (*MessageFlow)(nil)
	_ Artifact    = (*Association)(nil)
	_ Artifact    = (*TextAnnotation)(nil)
	_ FlowElement = (*DataStoreReference)(nil)
)

// SequenceFlow connects two flow nodes of the same container.
type SequenceFlow struct {
	FlowMeta
	SourceRef           string
	TargetRef           string
	ConditionExpression string
	SkipExpression      string
}

func (f *SequenceFlow) GetShape() Shape {
	return FlowShape
}

// MessageFlow connects two pools, or nodes inside them.
type MessageFlow struct {
	ModelMeta
	SourceRef  string
	TargetRef  string
	MessageRef string
}

func (f *MessageFlow) GetShape() Shape {
	return MessageFlowShape
}

type AssociationDirection string

const (
	AssociationNone AssociationDirection = "None"
	AssociationOne  AssociationDirection = "One"
	AssociationBoth AssociationDirection = "Both"
)

// Association links an artifact to another element.
type Association struct {
	ModelMeta
	SourceRef string
	TargetRef string
	Direction AssociationDirection
}

func (a *Association) GetShape() Shape {
	return AssociationShape
}

// DataAssociation moves data between an activity and a data store.
type DataAssociation struct {
	Id        string
	SourceRef string
	TargetRef string
}

type TextAnnotation struct {
	ModelMeta
	Text       string
	TextFormat string
}

func (a *TextAnnotation) GetShape() Shape {
	return TextAnnotationShape
}

// DataStoreReference points to a data store declared on the model.
type DataStoreReference struct {
	FlowMeta
	DataStoreRef   string
	ItemSubjectRef string
	DataState      string
}

func (r *DataStoreReference) GetShape() Shape {
	return DataStoreShape
}
