// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: bills/v1/bills.proto

package billsv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type UploadDocument struct {
	state    protoimpl.MessageState `protogen:"open.v1"`
	Filename string                 `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
	// one of image/jpeg, image/png, application/pdf
	MimeType string `protobuf:"bytes,2,opt,name=mime_type,json=mimeType,proto3" json:"mime_type,omitempty"`
	// raw file bytes, at most 16 MiB
	Content       []byte `protobuf:"bytes,3,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadDocument) Reset() {
	*x = UploadDocument{}
	mi := &file_bills_v1_bills_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadDocument) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadDocument) ProtoMessage() {}

func (x *UploadDocument) ProtoReflect() protoreflect.Message {
	mi := &file_bills_v1_bills_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadDocument.ProtoReflect.Descriptor instead.
func (*UploadDocument) Descriptor() ([]byte, []int) {
	return file_bills_v1_bills_proto_rawDescGZIP(), []int{0}
}

func (x *UploadDocument) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *UploadDocument) GetMimeType() string {
	if x != nil {
		return x.MimeType
	}
	return ""
}

func (x *UploadDocument) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

type ProcessSubmissionRequest struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	Phone     string                 `protobuf:"bytes,1,opt,name=phone,proto3" json:"phone,omitempty"`
	Documents []*UploadDocument      `protobuf:"bytes,2,rep,name=documents,proto3" json:"documents,omitempty"`
	// optional client-side pre-classification payload (JSON array of
	// {bill_type, confidence}); advisory only, re-derived server-side
	HintsJson     []byte `protobuf:"bytes,3,opt,name=hints_json,json=hintsJson,proto3" json:"hints_json,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessSubmissionRequest) Reset() {
	*x = ProcessSubmissionRequest{}
	mi := &file_bills_v1_bills_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessSubmissionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessSubmissionRequest) ProtoMessage() {}

func (x *ProcessSubmissionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_bills_v1_bills_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessSubmissionRequest.ProtoReflect.Descriptor instead.
func (*ProcessSubmissionRequest) Descriptor() ([]byte, []int) {
	return file_bills_v1_bills_proto_rawDescGZIP(), []int{1}
}

func (x *ProcessSubmissionRequest) GetPhone() string {
	if x != nil {
		return x.Phone
	}
	return ""
}

func (x *ProcessSubmissionRequest) GetDocuments() []*UploadDocument {
	if x != nil {
		return x.Documents
	}
	return nil
}

func (x *ProcessSubmissionRequest) GetHintsJson() []byte {
	if x != nil {
		return x.HintsJson
	}
	return nil
}

type DocumentOutcome struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	DocumentId string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	Filename   string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	// LUCE | GAS | MIX | UNKNOWN
	BillType       string  `protobuf:"bytes,3,opt,name=bill_type,json=billType,proto3" json:"bill_type,omitempty"`
	CostPerUnit    float64 `protobuf:"fixed64,4,opt,name=cost_per_unit,json=costPerUnit,proto3" json:"cost_per_unit,omitempty"`
	HasCost        bool    `protobuf:"varint,5,opt,name=has_cost,json=hasCost,proto3" json:"has_cost,omitempty"`
	MeanConfidence float64 `protobuf:"fixed64,6,opt,name=mean_confidence,json=meanConfidence,proto3" json:"mean_confidence,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *DocumentOutcome) Reset() {
	*x = DocumentOutcome{}
	mi := &file_bills_v1_bills_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DocumentOutcome) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DocumentOutcome) ProtoMessage() {}

func (x *DocumentOutcome) ProtoReflect() protoreflect.Message {
	mi := &file_bills_v1_bills_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DocumentOutcome.ProtoReflect.Descriptor instead.
func (*DocumentOutcome) Descriptor() ([]byte, []int) {
	return file_bills_v1_bills_proto_rawDescGZIP(), []int{2}
}

func (x *DocumentOutcome) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *DocumentOutcome) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *DocumentOutcome) GetBillType() string {
	if x != nil {
		return x.BillType
	}
	return ""
}

func (x *DocumentOutcome) GetCostPerUnit() float64 {
	if x != nil {
		return x.CostPerUnit
	}
	return 0
}

func (x *DocumentOutcome) GetHasCost() bool {
	if x != nil {
		return x.HasCost
	}
	return false
}

func (x *DocumentOutcome) GetMeanConfidence() float64 {
	if x != nil {
		return x.MeanConfidence
	}
	return 0
}

type ProcessSubmissionResponse struct {
	state        protoimpl.MessageState `protogen:"open.v1"`
	SubmissionId string                 `protobuf:"bytes,1,opt,name=submission_id,json=submissionId,proto3" json:"submission_id,omitempty"`
	// one entry per uploaded document, input order preserved
	Documents     []*DocumentOutcome `protobuf:"bytes,2,rep,name=documents,proto3" json:"documents,omitempty"`
	Warnings      []string           `protobuf:"bytes,3,rep,name=warnings,proto3" json:"warnings,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessSubmissionResponse) Reset() {
	*x = ProcessSubmissionResponse{}
	mi := &file_bills_v1_bills_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessSubmissionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessSubmissionResponse) ProtoMessage() {}

func (x *ProcessSubmissionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_bills_v1_bills_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessSubmissionResponse.ProtoReflect.Descriptor instead.
func (*ProcessSubmissionResponse) Descriptor() ([]byte, []int) {
	return file_bills_v1_bills_proto_rawDescGZIP(), []int{3}
}

func (x *ProcessSubmissionResponse) GetSubmissionId() string {
	if x != nil {
		return x.SubmissionId
	}
	return ""
}

func (x *ProcessSubmissionResponse) GetDocuments() []*DocumentOutcome {
	if x != nil {
		return x.Documents
	}
	return nil
}

func (x *ProcessSubmissionResponse) GetWarnings() []string {
	if x != nil {
		return x.Warnings
	}
	return nil
}

type ListBillsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Phone         string                 `protobuf:"bytes,1,opt,name=phone,proto3" json:"phone,omitempty"`
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD, optional
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD, optional
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListBillsRequest) Reset() {
	*x = ListBillsRequest{}
	mi := &file_bills_v1_bills_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListBillsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListBillsRequest) ProtoMessage() {}

func (x *ListBillsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_bills_v1_bills_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListBillsRequest.ProtoReflect.Descriptor instead.
func (*ListBillsRequest) Descriptor() ([]byte, []int) {
	return file_bills_v1_bills_proto_rawDescGZIP(), []int{4}
}

func (x *ListBillsRequest) GetPhone() string {
	if x != nil {
		return x.Phone
	}
	return ""
}

func (x *ListBillsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListBillsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type Bill struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Phone         string                 `protobuf:"bytes,2,opt,name=phone,proto3" json:"phone,omitempty"`
	BillType      string                 `protobuf:"bytes,3,opt,name=bill_type,json=billType,proto3" json:"bill_type,omitempty"`
	CostPerUnit   float64                `protobuf:"fixed64,4,opt,name=cost_per_unit,json=costPerUnit,proto3" json:"cost_per_unit,omitempty"`
	HasCost       bool                   `protobuf:"varint,5,opt,name=has_cost,json=hasCost,proto3" json:"has_cost,omitempty"`
	Confidence    float64                `protobuf:"fixed64,6,opt,name=confidence,proto3" json:"confidence,omitempty"`
	FileName      string                 `protobuf:"bytes,7,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,8,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Bill) Reset() {
	*x = Bill{}
	mi := &file_bills_v1_bills_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Bill) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Bill) ProtoMessage() {}

func (x *Bill) ProtoReflect() protoreflect.Message {
	mi := &file_bills_v1_bills_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Bill.ProtoReflect.Descriptor instead.
func (*Bill) Descriptor() ([]byte, []int) {
	return file_bills_v1_bills_proto_rawDescGZIP(), []int{5}
}

func (x *Bill) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Bill) GetPhone() string {
	if x != nil {
		return x.Phone
	}
	return ""
}

func (x *Bill) GetBillType() string {
	if x != nil {
		return x.BillType
	}
	return ""
}

func (x *Bill) GetCostPerUnit() float64 {
	if x != nil {
		return x.CostPerUnit
	}
	return 0
}

func (x *Bill) GetHasCost() bool {
	if x != nil {
		return x.HasCost
	}
	return false
}

func (x *Bill) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *Bill) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

func (x *Bill) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type ListBillsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Bills         []*Bill                `protobuf:"bytes,1,rep,name=bills,proto3" json:"bills,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListBillsResponse) Reset() {
	*x = ListBillsResponse{}
	mi := &file_bills_v1_bills_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListBillsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListBillsResponse) ProtoMessage() {}

func (x *ListBillsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_bills_v1_bills_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListBillsResponse.ProtoReflect.Descriptor instead.
func (*ListBillsResponse) Descriptor() ([]byte, []int) {
	return file_bills_v1_bills_proto_rawDescGZIP(), []int{6}
}

func (x *ListBillsResponse) GetBills() []*Bill {
	if x != nil {
		return x.Bills
	}
	return nil
}

type ExportBillsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Phone         string                 `protobuf:"bytes,1,opt,name=phone,proto3" json:"phone,omitempty"`
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportBillsRequest) Reset() {
	*x = ExportBillsRequest{}
	mi := &file_bills_v1_bills_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportBillsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportBillsRequest) ProtoMessage() {}

func (x *ExportBillsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_bills_v1_bills_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportBillsRequest.ProtoReflect.Descriptor instead.
func (*ExportBillsRequest) Descriptor() ([]byte, []int) {
	return file_bills_v1_bills_proto_rawDescGZIP(), []int{7}
}

func (x *ExportBillsRequest) GetPhone() string {
	if x != nil {
		return x.Phone
	}
	return ""
}

func (x *ExportBillsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportBillsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportBillsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportBillsResponse) Reset() {
	*x = ExportBillsResponse{}
	mi := &file_bills_v1_bills_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportBillsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportBillsResponse) ProtoMessage() {}

func (x *ExportBillsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_bills_v1_bills_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportBillsResponse.ProtoReflect.Descriptor instead.
func (*ExportBillsResponse) Descriptor() ([]byte, []int) {
	return file_bills_v1_bills_proto_rawDescGZIP(), []int{8}
}

func (x *ExportBillsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_bills_v1_bills_proto protoreflect.FileDescriptor

const file_bills_v1_bills_proto_rawDesc = "" +
	"\n" +
	"\x14bills/v1/bills.proto\x12\bbills.v1\"c\n" +
	"\x0eUploadDocument\x12\x1a\n" +
	"\bfilename\x18\x01 \x01(\tR\bfilename\x12\x1b\n" +
	"\tmime_type\x18\x02 \x01(\tR\bmimeType\x12\x18\n" +
	"\acontent\x18\x03 \x01(\fR\acontent\"\x87\x01\n" +
	"\x18ProcessSubmissionRequest\x12\x14\n" +
	"\x05phone\x18\x01 \x01(\tR\x05phone\x126\n" +
	"\tdocuments\x18\x02 \x03(\v2\x18.bills.v1.UploadDocumentR\tdocuments\x12\x1d\n" +
	"\n" +
	"hints_json\x18\x03 \x01(\fR\thintsJson\"\xd3\x01\n" +
	"\x0fDocumentOutcome\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12\x1b\n" +
	"\tbill_type\x18\x03 \x01(\tR\bbillType\x12\"\n" +
	"\rcost_per_unit\x18\x04 \x01(\x01R\vcostPerUnit\x12\x19\n" +
	"\bhas_cost\x18\x05 \x01(\bR\ahasCost\x12'\n" +
	"\x0fmean_confidence\x18\x06 \x01(\x01R\x0emeanConfidence\"\x95\x01\n" +
	"\x19ProcessSubmissionResponse\x12#\n" +
	"\rsubmission_id\x18\x01 \x01(\tR\fsubmissionId\x127\n" +
	"\tdocuments\x18\x02 \x03(\v2\x19.bills.v1.DocumentOutcomeR\tdocuments\x12\x1a\n" +
	"\bwarnings\x18\x03 \x03(\tR\bwarnings\"^\n" +
	"\x10ListBillsRequest\x12\x14\n" +
	"\x05phone\x18\x01 \x01(\tR\x05phone\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\"\xe4\x01\n" +
	"\x04Bill\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x14\n" +
	"\x05phone\x18\x02 \x01(\tR\x05phone\x12\x1b\n" +
	"\tbill_type\x18\x03 \x01(\tR\bbillType\x12\"\n" +
	"\rcost_per_unit\x18\x04 \x01(\x01R\vcostPerUnit\x12\x19\n" +
	"\bhas_cost\x18\x05 \x01(\bR\ahasCost\x12\x1e\n" +
	"\n" +
	"confidence\x18\x06 \x01(\x01R\n" +
	"confidence\x12\x1b\n" +
	"\tfile_name\x18\a \x01(\tR\bfileName\x12\x1d\n" +
	"\n" +
	"created_at\x18\b \x01(\tR\tcreatedAt\"9\n" +
	"\x11ListBillsResponse\x12$\n" +
	"\x05bills\x18\x01 \x03(\v2\x0e.bills.v1.BillR\x05bills\"`\n" +
	"\x12ExportBillsRequest\x12\x14\n" +
	"\x05phone\x18\x01 \x01(\tR\x05phone\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\")\n" +
	"\x13ExportBillsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xfe\x01\n" +
	"\fBillsService\x12\\\n" +
	"\x11ProcessSubmission\x12\".bills.v1.ProcessSubmissionRequest\x1a#.bills.v1.ProcessSubmissionResponse\x12D\n" +
	"\tListBills\x12\x1a.bills.v1.ListBillsRequest\x1a\x1b.bills.v1.ListBillsResponse\x12J\n" +
	"\vExportBills\x12\x1c.bills.v1.ExportBillsRequest\x1a\x1d.bills.v1.ExportBillsResponseBDZBgithub.com/bollettelab/bollette-tracker/gen/proto/bills/v1;billsv1b\x06proto3"

var (
	file_bills_v1_bills_proto_rawDescOnce sync.Once
	file_bills_v1_bills_proto_rawDescData []byte
)

func file_bills_v1_bills_proto_rawDescGZIP() []byte {
	file_bills_v1_bills_proto_rawDescOnce.Do(func() {
		file_bills_v1_bills_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_bills_v1_bills_proto_rawDesc), len(file_bills_v1_bills_proto_rawDesc)))
	})
	return file_bills_v1_bills_proto_rawDescData
}

var file_bills_v1_bills_proto_msgTypes = make([]protoimpl.MessageInfo, 9)
var file_bills_v1_bills_proto_goTypes = []any{
	(*UploadDocument)(nil),            // 0: bills.v1.UploadDocument
	(*ProcessSubmissionRequest)(nil),  // 1: bills.v1.ProcessSubmissionRequest
	(*DocumentOutcome)(nil),           // 2: bills.v1.DocumentOutcome
	(*ProcessSubmissionResponse)(nil), // 3: bills.v1.ProcessSubmissionResponse
	(*ListBillsRequest)(nil),          // 4: bills.v1.ListBillsRequest
	(*Bill)(nil),                      // 5: bills.v1.Bill
	(*ListBillsResponse)(nil),         // 6: bills.v1.ListBillsResponse
	(*ExportBillsRequest)(nil),        // 7: bills.v1.ExportBillsRequest
	(*ExportBillsResponse)(nil),       // 8: bills.v1.ExportBillsResponse
}
var file_bills_v1_bills_proto_depIdxs = []int32{
	0, // 0: bills.v1.ProcessSubmissionRequest.documents:type_name -> bills.v1.UploadDocument
	2, // 1: bills.v1.ProcessSubmissionResponse.documents:type_name -> bills.v1.DocumentOutcome
	5, // 2: bills.v1.ListBillsResponse.bills:type_name -> bills.v1.Bill
	1, // 3: bills.v1.BillsService.ProcessSubmission:input_type -> bills.v1.ProcessSubmissionRequest
	4, // 4: bills.v1.BillsService.ListBills:input_type -> bills.v1.ListBillsRequest
	7, // 5: bills.v1.BillsService.ExportBills:input_type -> bills.v1.ExportBillsRequest
	3, // 6: bills.v1.BillsService.ProcessSubmission:output_type -> bills.v1.ProcessSubmissionResponse
	6, // 7: bills.v1.BillsService.ListBills:output_type -> bills.v1.ListBillsResponse
	8, // 8: bills.v1.BillsService.ExportBills:output_type -> bills.v1.ExportBillsResponse
	6, // [6:9] is the sub-list for method output_type
	3, // [3:6] is the sub-list for method input_type
	3, // [3:3] is the sub-list for extension type_name
	3, // [3:3] is the sub-list for extension extendee
	0, // [0:3] is the sub-list for field type_name
}

func init() { file_bills_v1_bills_proto_init() }
func file_bills_v1_bills_proto_init() {
	if File_bills_v1_bills_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_bills_v1_bills_proto_rawDesc), len(file_bills_v1_bills_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   9,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_bills_v1_bills_proto_goTypes,
		DependencyIndexes: file_bills_v1_bills_proto_depIdxs,
		MessageInfos:      file_bills_v1_bills_proto_msgTypes,
	}.Build()
	File_bills_v1_bills_proto = out.File
	file_bills_v1_bills_proto_goTypes = nil
	file_bills_v1_bills_proto_depIdxs = nil
}
