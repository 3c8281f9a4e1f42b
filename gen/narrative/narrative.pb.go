// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.35.2
// 	protoc        (unknown)
// source: narrative.proto

package narrative

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type DomainAction struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Category  string `protobuf:"bytes,1,opt,name=category,proto3" json:"category,omitempty"`
	Action    string `protobuf:"bytes,2,opt,name=action,proto3" json:"action,omitempty"`
	Reasoning string `protobuf:"bytes,3,opt,name=reasoning,proto3" json:"reasoning,omitempty"`
}

func (x *DomainAction) Reset() {
	*x = DomainAction{}
	mi := &file_narrative_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DomainAction) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DomainAction) ProtoMessage() {}

func (x *DomainAction) ProtoReflect() protoreflect.Message {
	mi := &file_narrative_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DomainAction.ProtoReflect.Descriptor instead.
func (*DomainAction) Descriptor() ([]byte, []int) {
	return file_narrative_proto_rawDescGZIP(), []int{0}
}

func (x *DomainAction) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *DomainAction) GetAction() string {
	if x != nil {
		return x.Action
	}
	return ""
}

func (x *DomainAction) GetReasoning() string {
	if x != nil {
		return x.Reasoning
	}
	return ""
}

type NarrateDecisionRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	DecisionId  string          `protobuf:"bytes,1,opt,name=decision_id,json=decisionId,proto3" json:"decision_id,omitempty"`
	Constraints []string        `protobuf:"bytes,2,rep,name=constraints,proto3" json:"constraints,omitempty"`
	Actions     []*DomainAction `protobuf:"bytes,3,rep,name=actions,proto3" json:"actions,omitempty"`
	Confidence  float64         `protobuf:"fixed64,4,opt,name=confidence,proto3" json:"confidence,omitempty"`
	Summary     string          `protobuf:"bytes,5,opt,name=summary,proto3" json:"summary,omitempty"`
}

func (x *NarrateDecisionRequest) Reset() {
	*x = NarrateDecisionRequest{}
	mi := &file_narrative_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *NarrateDecisionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*NarrateDecisionRequest) ProtoMessage() {}

func (x *NarrateDecisionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_narrative_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use NarrateDecisionRequest.ProtoReflect.Descriptor instead.
func (*NarrateDecisionRequest) Descriptor() ([]byte, []int) {
	return file_narrative_proto_rawDescGZIP(), []int{1}
}

func (x *NarrateDecisionRequest) GetDecisionId() string {
	if x != nil {
		return x.DecisionId
	}
	return ""
}

func (x *NarrateDecisionRequest) GetConstraints() []string {
	if x != nil {
		return x.Constraints
	}
	return nil
}

func (x *NarrateDecisionRequest) GetActions() []*DomainAction {
	if x != nil {
		return x.Actions
	}
	return nil
}

func (x *NarrateDecisionRequest) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *NarrateDecisionRequest) GetSummary() string {
	if x != nil {
		return x.Summary
	}
	return ""
}

type NarrateDecisionResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Text string `protobuf:"bytes,1,opt,name=text,proto3" json:"text,omitempty"`
}

func (x *NarrateDecisionResponse) Reset() {
	*x = NarrateDecisionResponse{}
	mi := &file_narrative_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *NarrateDecisionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*NarrateDecisionResponse) ProtoMessage() {}

func (x *NarrateDecisionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_narrative_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use NarrateDecisionResponse.ProtoReflect.Descriptor instead.
func (*NarrateDecisionResponse) Descriptor() ([]byte, []int) {
	return file_narrative_proto_rawDescGZIP(), []int{2}
}

func (x *NarrateDecisionResponse) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

type NarrateForecastRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	RiskScore          int32    `protobuf:"varint,1,opt,name=risk_score,json=riskScore,proto3" json:"risk_score,omitempty"`
	Severity           string   `protobuf:"bytes,2,opt,name=severity,proto3" json:"severity,omitempty"`
	PrimaryFactors     []string `protobuf:"bytes,3,rep,name=primary_factors,json=primaryFactors,proto3" json:"primary_factors,omitempty"`
	InterventionNeeded bool     `protobuf:"varint,4,opt,name=intervention_needed,json=interventionNeeded,proto3" json:"intervention_needed,omitempty"`
	DaysToCrisis       int32    `protobuf:"varint,5,opt,name=days_to_crisis,json=daysToCrisis,proto3" json:"days_to_crisis,omitempty"` // 0 when no crisis projected
}

func (x *NarrateForecastRequest) Reset() {
	*x = NarrateForecastRequest{}
	mi := &file_narrative_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *NarrateForecastRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*NarrateForecastRequest) ProtoMessage() {}

func (x *NarrateForecastRequest) ProtoReflect() protoreflect.Message {
	mi := &file_narrative_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use NarrateForecastRequest.ProtoReflect.Descriptor instead.
func (*NarrateForecastRequest) Descriptor() ([]byte, []int) {
	return file_narrative_proto_rawDescGZIP(), []int{3}
}

func (x *NarrateForecastRequest) GetRiskScore() int32 {
	if x != nil {
		return x.RiskScore
	}
	return 0
}

func (x *NarrateForecastRequest) GetSeverity() string {
	if x != nil {
		return x.Severity
	}
	return ""
}

func (x *NarrateForecastRequest) GetPrimaryFactors() []string {
	if x != nil {
		return x.PrimaryFactors
	}
	return nil
}

func (x *NarrateForecastRequest) GetInterventionNeeded() bool {
	if x != nil {
		return x.InterventionNeeded
	}
	return false
}

func (x *NarrateForecastRequest) GetDaysToCrisis() int32 {
	if x != nil {
		return x.DaysToCrisis
	}
	return 0
}

type NarrateForecastResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Text string `protobuf:"bytes,1,opt,name=text,proto3" json:"text,omitempty"`
}

func (x *NarrateForecastResponse) Reset() {
	*x = NarrateForecastResponse{}
	mi := &file_narrative_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *NarrateForecastResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*NarrateForecastResponse) ProtoMessage() {}

func (x *NarrateForecastResponse) ProtoReflect() protoreflect.Message {
	mi := &file_narrative_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use NarrateForecastResponse.ProtoReflect.Descriptor instead.
func (*NarrateForecastResponse) Descriptor() ([]byte, []int) {
	return file_narrative_proto_rawDescGZIP(), []int{4}
}

func (x *NarrateForecastResponse) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

var File_narrative_proto protoreflect.FileDescriptor

var file_narrative_proto_rawDesc = []byte{
	0x0a, 0x0f, 0x6e, 0x61, 0x72, 0x72, 0x61, 0x74, 0x69, 0x76, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74,
	0x6f, 0x12, 0x09, 0x6e, 0x61, 0x72, 0x72, 0x61, 0x74, 0x69, 0x76, 0x65, 0x22, 0x60, 0x0a, 0x0c,
	0x44, 0x6f, 0x6d, 0x61, 0x69, 0x6e, 0x41, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x12, 0x1a, 0x0a, 0x08,
	0x63, 0x61, 0x74, 0x65, 0x67, 0x6f, 0x72, 0x79, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x08,
	0x63, 0x61, 0x74, 0x65, 0x67, 0x6f, 0x72, 0x79, 0x12, 0x16, 0x0a, 0x06, 0x61, 0x63, 0x74, 0x69,
	0x6f, 0x6e, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x61, 0x63, 0x74, 0x69, 0x6f, 0x6e,
	0x12, 0x1c, 0x0a, 0x09, 0x72, 0x65, 0x61, 0x73, 0x6f, 0x6e, 0x69, 0x6e, 0x67, 0x18, 0x03, 0x20,
	0x01, 0x28, 0x09, 0x52, 0x09, 0x72, 0x65, 0x61, 0x73, 0x6f, 0x6e, 0x69, 0x6e, 0x67, 0x22, 0xc8,
	0x01, 0x0a, 0x16, 0x4e, 0x61, 0x72, 0x72, 0x61, 0x74, 0x65, 0x44, 0x65, 0x63, 0x69, 0x73, 0x69,
	0x6f, 0x6e, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x1f, 0x0a, 0x0b, 0x64, 0x65, 0x63,
	0x69, 0x73, 0x69, 0x6f, 0x6e, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0a,
	0x64, 0x65, 0x63, 0x69, 0x73, 0x69, 0x6f, 0x6e, 0x49, 0x64, 0x12, 0x20, 0x0a, 0x0b, 0x63, 0x6f,
	0x6e, 0x73, 0x74, 0x72, 0x61, 0x69, 0x6e, 0x74, 0x73, 0x18, 0x02, 0x20, 0x03, 0x28, 0x09, 0x52,
	0x0b, 0x63, 0x6f, 0x6e, 0x73, 0x74, 0x72, 0x61, 0x69, 0x6e, 0x74, 0x73, 0x12, 0x31, 0x0a, 0x07,
	0x61, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x73, 0x18, 0x03, 0x20, 0x03, 0x28, 0x0b, 0x32, 0x17, 0x2e,
	0x6e, 0x61, 0x72, 0x72, 0x61, 0x74, 0x69, 0x76, 0x65, 0x2e, 0x44, 0x6f, 0x6d, 0x61, 0x69, 0x6e,
	0x41, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x07, 0x61, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x73, 0x12,
	0x1e, 0x0a, 0x0a, 0x63, 0x6f, 0x6e, 0x66, 0x69, 0x64, 0x65, 0x6e, 0x63, 0x65, 0x18, 0x04, 0x20,
	0x01, 0x28, 0x01, 0x52, 0x0a, 0x63, 0x6f, 0x6e, 0x66, 0x69, 0x64, 0x65, 0x6e, 0x63, 0x65, 0x12,
	0x18, 0x0a, 0x07, 0x73, 0x75, 0x6d, 0x6d, 0x61, 0x72, 0x79, 0x18, 0x05, 0x20, 0x01, 0x28, 0x09,
	0x52, 0x07, 0x73, 0x75, 0x6d, 0x6d, 0x61, 0x72, 0x79, 0x22, 0x2d, 0x0a, 0x17, 0x4e, 0x61, 0x72,
	0x72, 0x61, 0x74, 0x65, 0x44, 0x65, 0x63, 0x69, 0x73, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x73, 0x70,
	0x6f, 0x6e, 0x73, 0x65, 0x12, 0x12, 0x0a, 0x04, 0x74, 0x65, 0x78, 0x74, 0x18, 0x01, 0x20, 0x01,
	0x28, 0x09, 0x52, 0x04, 0x74, 0x65, 0x78, 0x74, 0x22, 0xd3, 0x01, 0x0a, 0x16, 0x4e, 0x61, 0x72,
	0x72, 0x61, 0x74, 0x65, 0x46, 0x6f, 0x72, 0x65, 0x63, 0x61, 0x73, 0x74, 0x52, 0x65, 0x71, 0x75,
	0x65, 0x73, 0x74, 0x12, 0x1d, 0x0a, 0x0a, 0x72, 0x69, 0x73, 0x6b, 0x5f, 0x73, 0x63, 0x6f, 0x72,
	0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x05, 0x52, 0x09, 0x72, 0x69, 0x73, 0x6b, 0x53, 0x63, 0x6f,
	0x72, 0x65, 0x12, 0x1a, 0x0a, 0x08, 0x73, 0x65, 0x76, 0x65, 0x72, 0x69, 0x74, 0x79, 0x18, 0x02,
	0x20, 0x01, 0x28, 0x09, 0x52, 0x08, 0x73, 0x65, 0x76, 0x65, 0x72, 0x69, 0x74, 0x79, 0x12, 0x27,
	0x0a, 0x0f, 0x70, 0x72, 0x69, 0x6d, 0x61, 0x72, 0x79, 0x5f, 0x66, 0x61, 0x63, 0x74, 0x6f, 0x72,
	0x73, 0x18, 0x03, 0x20, 0x03, 0x28, 0x09, 0x52, 0x0e, 0x70, 0x72, 0x69, 0x6d, 0x61, 0x72, 0x79,
	0x46, 0x61, 0x63, 0x74, 0x6f, 0x72, 0x73, 0x12, 0x2f, 0x0a, 0x13, 0x69, 0x6e, 0x74, 0x65, 0x72,
	0x76, 0x65, 0x6e, 0x74, 0x69, 0x6f, 0x6e, 0x5f, 0x6e, 0x65, 0x65, 0x64, 0x65, 0x64, 0x18, 0x04,
	0x20, 0x01, 0x28, 0x08, 0x52, 0x12, 0x69, 0x6e, 0x74, 0x65, 0x72, 0x76, 0x65, 0x6e, 0x74, 0x69,
	0x6f, 0x6e, 0x4e, 0x65, 0x65, 0x64, 0x65, 0x64, 0x12, 0x24, 0x0a, 0x0e, 0x64, 0x61, 0x79, 0x73,
	0x5f, 0x74, 0x6f, 0x5f, 0x63, 0x72, 0x69, 0x73, 0x69, 0x73, 0x18, 0x05, 0x20, 0x01, 0x28, 0x05,
	0x52, 0x0c, 0x64, 0x61, 0x79, 0x73, 0x54, 0x6f, 0x43, 0x72, 0x69, 0x73, 0x69, 0x73, 0x22, 0x2d,
	0x0a, 0x17, 0x4e, 0x61, 0x72, 0x72, 0x61, 0x74, 0x65, 0x46, 0x6f, 0x72, 0x65, 0x63, 0x61, 0x73,
	0x74, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x12, 0x0a, 0x04, 0x74, 0x65, 0x78,
	0x74, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x04, 0x74, 0x65, 0x78, 0x74, 0x32, 0xc6, 0x01,
	0x0a, 0x10, 0x4e, 0x61, 0x72, 0x72, 0x61, 0x74, 0x69, 0x76, 0x65, 0x53, 0x65, 0x72, 0x76, 0x69,
	0x63, 0x65, 0x12, 0x58, 0x0a, 0x0f, 0x4e, 0x61, 0x72, 0x72, 0x61, 0x74, 0x65, 0x44, 0x65, 0x63,
	0x69, 0x73, 0x69, 0x6f, 0x6e, 0x12, 0x21, 0x2e, 0x6e, 0x61, 0x72, 0x72, 0x61, 0x74, 0x69, 0x76,
	0x65, 0x2e, 0x4e, 0x61, 0x72, 0x72, 0x61, 0x74, 0x65, 0x44, 0x65, 0x63, 0x69, 0x73, 0x69, 0x6f,
	0x6e, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x22, 0x2e, 0x6e, 0x61, 0x72, 0x72, 0x61,
	0x74, 0x69, 0x76, 0x65, 0x2e, 0x4e, 0x61, 0x72, 0x72, 0x61, 0x74, 0x65, 0x44, 0x65, 0x63, 0x69,
	0x73, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x58, 0x0a, 0x0f,
	0x4e, 0x61, 0x72, 0x72, 0x61, 0x74, 0x65, 0x46, 0x6f, 0x72, 0x65, 0x63, 0x61, 0x73, 0x74, 0x12,
	0x21, 0x2e, 0x6e, 0x61, 0x72, 0x72, 0x61, 0x74, 0x69, 0x76, 0x65, 0x2e, 0x4e, 0x61, 0x72, 0x72,
	0x61, 0x74, 0x65, 0x46, 0x6f, 0x72, 0x65, 0x63, 0x61, 0x73, 0x74, 0x52, 0x65, 0x71, 0x75, 0x65,
	0x73, 0x74, 0x1a, 0x22, 0x2e, 0x6e, 0x61, 0x72, 0x72, 0x61, 0x74, 0x69, 0x76, 0x65, 0x2e, 0x4e,
	0x61, 0x72, 0x72, 0x61, 0x74, 0x65, 0x46, 0x6f, 0x72, 0x65, 0x63, 0x61, 0x73, 0x74, 0x52, 0x65,
	0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x42, 0x30, 0x5a, 0x2e, 0x67, 0x69, 0x74, 0x68, 0x75, 0x62,
	0x2e, 0x63, 0x6f, 0x6d, 0x2f, 0x6b, 0x69, 0x62, 0x62, 0x79, 0x64, 0x2f, 0x68, 0x74, 0x70, 0x61,
	0x2f, 0x67, 0x6f, 0x2d, 0x65, 0x6e, 0x67, 0x69, 0x6e, 0x65, 0x2f, 0x67, 0x65, 0x6e, 0x2f, 0x6e,
	0x61, 0x72, 0x72, 0x61, 0x74, 0x69, 0x76, 0x65, 0x62, 0x06, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x33,
}

var (
	file_narrative_proto_rawDescOnce sync.Once
	file_narrative_proto_rawDescData = file_narrative_proto_rawDesc
)

func file_narrative_proto_rawDescGZIP() []byte {
	file_narrative_proto_rawDescOnce.Do(func() {
		file_narrative_proto_rawDescData = protoimpl.X.CompressGZIP(file_narrative_proto_rawDescData)
	})
	return file_narrative_proto_rawDescData
}

var file_narrative_proto_msgTypes = make([]protoimpl.MessageInfo, 5)
var file_narrative_proto_goTypes = []any{
	(*DomainAction)(nil),            // 0: narrative.DomainAction
	(*NarrateDecisionRequest)(nil),  // 1: narrative.NarrateDecisionRequest
	(*NarrateDecisionResponse)(nil), // 2: narrative.NarrateDecisionResponse
	(*NarrateForecastRequest)(nil),  // 3: narrative.NarrateForecastRequest
	(*NarrateForecastResponse)(nil), // 4: narrative.NarrateForecastResponse
}
var file_narrative_proto_depIdxs = []int32{
	0, // 0: narrative.NarrateDecisionRequest.actions:type_name -> narrative.DomainAction
	1, // 1: narrative.NarrativeService.NarrateDecision:input_type -> narrative.NarrateDecisionRequest
	3, // 2: narrative.NarrativeService.NarrateForecast:input_type -> narrative.NarrateForecastRequest
	2, // 3: narrative.NarrativeService.NarrateDecision:output_type -> narrative.NarrateDecisionResponse
	4, // 4: narrative.NarrativeService.NarrateForecast:output_type -> narrative.NarrateForecastResponse
	3, // [3:5] is the sub-list for method output_type
	1, // [1:3] is the sub-list for method input_type
	1, // [1:1] is the sub-list for extension type_name
	1, // [1:1] is the sub-list for extension extendee
	0, // [0:1] is the sub-list for field type_name
}

func init() { file_narrative_proto_init() }
func file_narrative_proto_init() {
	if File_narrative_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: file_narrative_proto_rawDesc,
			NumEnums:      0,
			NumMessages:   5,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_narrative_proto_goTypes,
		DependencyIndexes: file_narrative_proto_depIdxs,
		MessageInfos:      file_narrative_proto_msgTypes,
	}.Build()
	File_narrative_proto = out.File
	file_narrative_proto_rawDesc = nil
	file_narrative_proto_goTypes = nil
	file_narrative_proto_depIdxs = nil
}
