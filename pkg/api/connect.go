package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

const (
	// GroupServiceName is the fully-qualified name of the GroupService.
	GroupServiceName = "quando.v1.GroupService"
	// AvailabilityServiceName is the fully-qualified name of the AvailabilityService.
	AvailabilityServiceName = "quando.v1.AvailabilityService"
)

// Procedure paths, usable to route requests and match interceptors.
const (
	GroupServiceCreateGroupProcedure            = "/quando.v1.GroupService/CreateGroup"
	GroupServiceValidateGroupProcedure          = "/quando.v1.GroupService/ValidateGroup"
	GroupServiceGetGroupProcedure               = "/quando.v1.GroupService/GetGroup"
	AvailabilityServiceGetBoardProcedure        = "/quando.v1.AvailabilityService/GetBoard"
	AvailabilityServiceToggleSelectionProcedure = "/quando.v1.AvailabilityService/ToggleSelection"
)

// GroupServiceHandler is implemented by the group service.
type GroupServiceHandler interface {
	CreateGroup(context.Context, *connect.Request[CreateGroupRequest]) (*connect.Response[CreateGroupResponse], error)
	ValidateGroup(context.Context, *connect.Request[ValidateGroupRequest]) (*connect.Response[ValidateGroupResponse], error)
	GetGroup(context.Context, *connect.Request[GetGroupRequest]) (*connect.Response[GetGroupResponse], error)
}

// AvailabilityServiceHandler is implemented by the availability service.
type AvailabilityServiceHandler interface {
	GetBoard(context.Context, *connect.Request[GetBoardRequest]) (*connect.Response[GetBoardResponse], error)
	ToggleSelection(context.Context, *connect.Request[ToggleSelectionRequest]) (*connect.Response[ToggleSelectionResponse], error)
}

// NewGroupServiceHandler builds an HTTP handler from the service
// implementation. It returns the path on which to mount the handler and the
// handler itself.
func NewGroupServiceHandler(svc GroupServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withCodec(opts)
	createGroup := connect.NewUnaryHandler(GroupServiceCreateGroupProcedure, svc.CreateGroup, opts...)
	validateGroup := connect.NewUnaryHandler(GroupServiceValidateGroupProcedure, svc.ValidateGroup, opts...)
	getGroup := connect.NewUnaryHandler(GroupServiceGetGroupProcedure, svc.GetGroup, opts...)

	return "/" + GroupServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case GroupServiceCreateGroupProcedure:
			createGroup.ServeHTTP(w, r)
		case GroupServiceValidateGroupProcedure:
			validateGroup.ServeHTTP(w, r)
		case GroupServiceGetGroupProcedure:
			getGroup.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// NewAvailabilityServiceHandler builds an HTTP handler from the service
// implementation. It returns the path on which to mount the handler and the
// handler itself.
func NewAvailabilityServiceHandler(svc AvailabilityServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withCodec(opts)
	getBoard := connect.NewUnaryHandler(AvailabilityServiceGetBoardProcedure, svc.GetBoard, opts...)
	toggleSelection := connect.NewUnaryHandler(AvailabilityServiceToggleSelectionProcedure, svc.ToggleSelection, opts...)

	return "/" + AvailabilityServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case AvailabilityServiceGetBoardProcedure:
			getBoard.ServeHTTP(w, r)
		case AvailabilityServiceToggleSelectionProcedure:
			toggleSelection.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

func withCodec(opts []connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{connect.WithCodec(Codec{})}, opts...)
}

// UnimplementedGroupServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedGroupServiceHandler struct{}

func (UnimplementedGroupServiceHandler) CreateGroup(context.Context, *connect.Request[CreateGroupRequest]) (*connect.Response[CreateGroupResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("quando.v1.GroupService.CreateGroup is not implemented"))
}

func (UnimplementedGroupServiceHandler) ValidateGroup(context.Context, *connect.Request[ValidateGroupRequest]) (*connect.Response[ValidateGroupResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("quando.v1.GroupService.ValidateGroup is not implemented"))
}

func (UnimplementedGroupServiceHandler) GetGroup(context.Context, *connect.Request[GetGroupRequest]) (*connect.Response[GetGroupResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("quando.v1.GroupService.GetGroup is not implemented"))
}

// UnimplementedAvailabilityServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedAvailabilityServiceHandler struct{}

func (UnimplementedAvailabilityServiceHandler) GetBoard(context.Context, *connect.Request[GetBoardRequest]) (*connect.Response[GetBoardResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("quando.v1.AvailabilityService.GetBoard is not implemented"))
}

func (UnimplementedAvailabilityServiceHandler) ToggleSelection(context.Context, *connect.Request[ToggleSelectionRequest]) (*connect.Response[ToggleSelectionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("quando.v1.AvailabilityService.ToggleSelection is not implemented"))
}

// GroupServiceClient is a client for the GroupService.
type GroupServiceClient interface {
	CreateGroup(context.Context, *connect.Request[CreateGroupRequest]) (*connect.Response[CreateGroupResponse], error)
	ValidateGroup(context.Context, *connect.Request[ValidateGroupRequest]) (*connect.Response[ValidateGroupResponse], error)
	GetGroup(context.Context, *connect.Request[GetGroupRequest]) (*connect.Response[GetGroupResponse], error)
}

// NewGroupServiceClient constructs a client for the GroupService. The
// baseURL is the scheme and host of the server, e.g. http://localhost:8080.
func NewGroupServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) GroupServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)
	return &groupServiceClient{
		createGroup:   connect.NewClient[CreateGroupRequest, CreateGroupResponse](httpClient, baseURL+GroupServiceCreateGroupProcedure, opts...),
		validateGroup: connect.NewClient[ValidateGroupRequest, ValidateGroupResponse](httpClient, baseURL+GroupServiceValidateGroupProcedure, opts...),
		getGroup:      connect.NewClient[GetGroupRequest, GetGroupResponse](httpClient, baseURL+GroupServiceGetGroupProcedure, opts...),
	}
}

type groupServiceClient struct {
	createGroup   *connect.Client[CreateGroupRequest, CreateGroupResponse]
	validateGroup *connect.Client[ValidateGroupRequest, ValidateGroupResponse]
	getGroup      *connect.Client[GetGroupRequest, GetGroupResponse]
}

func (c *groupServiceClient) CreateGroup(ctx context.Context, req *connect.Request[CreateGroupRequest]) (*connect.Response[CreateGroupResponse], error) {
	return c.createGroup.CallUnary(ctx, req)
}

func (c *groupServiceClient) ValidateGroup(ctx context.Context, req *connect.Request[ValidateGroupRequest]) (*connect.Response[ValidateGroupResponse], error) {
	return c.validateGroup.CallUnary(ctx, req)
}

func (c *groupServiceClient) GetGroup(ctx context.Context, req *connect.Request[GetGroupRequest]) (*connect.Response[GetGroupResponse], error) {
	return c.getGroup.CallUnary(ctx, req)
}

// AvailabilityServiceClient is a client for the AvailabilityService.
type AvailabilityServiceClient interface {
	GetBoard(context.Context, *connect.Request[GetBoardRequest]) (*connect.Response[GetBoardResponse], error)
	ToggleSelection(context.Context, *connect.Request[ToggleSelectionRequest]) (*connect.Response[ToggleSelectionResponse], error)
}

// NewAvailabilityServiceClient constructs a client for the AvailabilityService.
func NewAvailabilityServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) AvailabilityServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)
	return &availabilityServiceClient{
		getBoard:        connect.NewClient[GetBoardRequest, GetBoardResponse](httpClient, baseURL+AvailabilityServiceGetBoardProcedure, opts...),
		toggleSelection: connect.NewClient[ToggleSelectionRequest, ToggleSelectionResponse](httpClient, baseURL+AvailabilityServiceToggleSelectionProcedure, opts...),
	}
}

type availabilityServiceClient struct {
	getBoard        *connect.Client[GetBoardRequest, GetBoardResponse]
	toggleSelection *connect.Client[ToggleSelectionRequest, ToggleSelectionResponse]
}

func (c *availabilityServiceClient) GetBoard(ctx context.Context, req *connect.Request[GetBoardRequest]) (*connect.Response[GetBoardResponse], error) {
	return c.getBoard.CallUnary(ctx, req)
}

func (c *availabilityServiceClient) ToggleSelection(ctx context.Context, req *connect.Request[ToggleSelectionRequest]) (*connect.Response[ToggleSelectionResponse], error) {
	return c.toggleSelection.CallUnary(ctx, req)
}
