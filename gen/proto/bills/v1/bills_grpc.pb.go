// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: bills/v1/bills.proto

package billsv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	BillsService_ProcessSubmission_FullMethodName = "/bills.v1.BillsService/ProcessSubmission"
	BillsService_ListBills_FullMethodName         = "/bills.v1.BillsService/ListBills"
	BillsService_ExportBills_FullMethodName       = "/bills.v1.BillsService/ExportBills"
)

// BillsServiceClient is the client API for BillsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// BillsService is the upload and query surface for processed utility bills.
type BillsServiceClient interface {
	// ProcessSubmission runs the OCR + classification pipeline over one
	// submission (one or more documents for one phone number) and persists one
	// bill row per document.
	ProcessSubmission(ctx context.Context, in *ProcessSubmissionRequest, opts ...grpc.CallOption) (*ProcessSubmissionResponse, error)
	ListBills(ctx context.Context, in *ListBillsRequest, opts ...grpc.CallOption) (*ListBillsResponse, error)
	ExportBills(ctx context.Context, in *ExportBillsRequest, opts ...grpc.CallOption) (*ExportBillsResponse, error)
}

type billsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewBillsServiceClient(cc grpc.ClientConnInterface) BillsServiceClient {
	return &billsServiceClient{cc}
}

func (c *billsServiceClient) ProcessSubmission(ctx context.Context, in *ProcessSubmissionRequest, opts ...grpc.CallOption) (*ProcessSubmissionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ProcessSubmissionResponse)
	err := c.cc.Invoke(ctx, BillsService_ProcessSubmission_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *billsServiceClient) ListBills(ctx context.Context, in *ListBillsRequest, opts ...grpc.CallOption) (*ListBillsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListBillsResponse)
	err := c.cc.Invoke(ctx, BillsService_ListBills_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *billsServiceClient) ExportBills(ctx context.Context, in *ExportBillsRequest, opts ...grpc.CallOption) (*ExportBillsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportBillsResponse)
	err := c.cc.Invoke(ctx, BillsService_ExportBills_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// BillsServiceServer is the server API for BillsService service.
// All implementations must embed UnimplementedBillsServiceServer
// for forward compatibility.
//
// BillsService is the upload and query surface for processed utility bills.
type BillsServiceServer interface {
	// ProcessSubmission runs the OCR + classification pipeline over one
	// submission (one or more documents for one phone number) and persists one
	// bill row per document.
	ProcessSubmission(context.Context, *ProcessSubmissionRequest) (*ProcessSubmissionResponse, error)
	ListBills(context.Context, *ListBillsRequest) (*ListBillsResponse, error)
	ExportBills(context.Context, *ExportBillsRequest) (*ExportBillsResponse, error)
	mustEmbedUnimplementedBillsServiceServer()
}

// UnimplementedBillsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedBillsServiceServer struct{}

func (UnimplementedBillsServiceServer) ProcessSubmission(context.Context, *ProcessSubmissionRequest) (*ProcessSubmissionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ProcessSubmission not implemented")
}
func (UnimplementedBillsServiceServer) ListBills(context.Context, *ListBillsRequest) (*ListBillsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListBills not implemented")
}
func (UnimplementedBillsServiceServer) ExportBills(context.Context, *ExportBillsRequest) (*ExportBillsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportBills not implemented")
}
func (UnimplementedBillsServiceServer) mustEmbedUnimplementedBillsServiceServer() {}
func (UnimplementedBillsServiceServer) testEmbeddedByValue()                      {}

// UnsafeBillsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to BillsServiceServer will
// result in compilation errors.
type UnsafeBillsServiceServer interface {
	mustEmbedUnimplementedBillsServiceServer()
}

func RegisterBillsServiceServer(s grpc.ServiceRegistrar, srv BillsServiceServer) {
	// If the following call pancis, it indicates UnimplementedBillsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&BillsService_ServiceDesc, srv)
}

func _BillsService_ProcessSubmission_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ProcessSubmissionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BillsServiceServer).ProcessSubmission(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BillsService_ProcessSubmission_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BillsServiceServer).ProcessSubmission(ctx, req.(*ProcessSubmissionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BillsService_ListBills_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListBillsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BillsServiceServer).ListBills(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BillsService_ListBills_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BillsServiceServer).ListBills(ctx, req.(*ListBillsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BillsService_ExportBills_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportBillsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BillsServiceServer).ExportBills(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BillsService_ExportBills_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BillsServiceServer).ExportBills(ctx, req.(*ExportBillsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// BillsService_ServiceDesc is the grpc.ServiceDesc for BillsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var BillsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "bills.v1.BillsService",
	HandlerType: (*BillsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ProcessSubmission",
			Handler:    _BillsService_ProcessSubmission_Handler,
		},
		{
			MethodName: "ListBills",
			Handler:    _BillsService_ListBills_Handler,
		},
		{
			MethodName: "ExportBills",
			Handler:    _BillsService_ExportBills_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "bills/v1/bills.proto",
}
