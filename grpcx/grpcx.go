/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package grpcx converts outcomes to and from rich gRPC statuses.
//
// A failed outcome becomes a status whose code comes from the mapper and
// whose details carry everything needed to rebuild it on the client:
//
//   - errdetails.ErrorInfo with Domain "dresult", Reason set to the
//     upper-case status name and the correlation id in Metadata;
//   - errdetails.BadRequest with one FieldViolation per validation error;
//   - structpb.ListValue with the plain error messages.
package grpcx

import (
	"context"
	"strings"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"
	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/dresult"
	"dirpx.dev/dresult/adapter"
	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/mapper"
	"dirpx.dev/dresult/reason"
	"dirpx.dev/dresult/status"
)

// Domain identifies ErrorInfo details produced by this package.
const Domain = "dresult"

// Metadata keys of the ErrorInfo detail.
const (
	MetaStatus        = "status"
	MetaCorrelationID = "correlation_id"
	MetaReason        = "reason"
)

// Status converts o into a gRPC status. A nil mapper means
// mapper.Default(). Successful outcomes yield a status with their mapped
// code (OK by default) and no details. A failure never yields OK: a
// custom mapper resolving one to OK is answered with Unknown.
func Status(m apis.Mapper, o apis.Outcome) *gstatus.Status {
	if m == nil {
		m = mapper.Default()
	}
	if o == nil {
		return gstatus.New(codes.OK, "")
	}
	res := m.ResolveOutcome(o)
	s := o.Status()
	if s.IsSuccess() {
		return gstatus.New(res.GRPC, o.SuccessMessage())
	}

	msgs := adapter.Messages(o)
	text := s.String()
	if len(msgs) > 0 {
		text = strings.Join(msgs, "; ")
	}
	code := res.GRPC
	if code == codes.OK {
		code = codes.Unknown
	}
	base := gstatus.New(code, text)

	info := &errdetails.ErrorInfo{
		Reason:   strings.ToUpper(s.String()),
		Domain:   Domain,
		Metadata: map[string]string{MetaStatus: s.String()},
	}
	if id := o.CorrelationID(); id != "" {
		info.Metadata[MetaCorrelationID] = id
	}
	if r := mapper.ReasonOf(o); r != "" {
		info.Metadata[MetaReason] = r.String()
	}
	details := []protoadapt.MessageV1{info}

	if ves := o.ValidationErrors(); len(ves) > 0 {
		br := &errdetails.BadRequest{FieldViolations: make([]*errdetails.BadRequest_FieldViolation, len(ves))}
		for i, ve := range ves {
			br.FieldViolations[i] = &errdetails.BadRequest_FieldViolation{
				Field:       ve.Identifier,
				Description: ve.ErrorMessage,
				Reason:      ve.ErrorCode.String(),
			}
		}
		details = append(details, br)
	}
	if errs := o.Errors(); len(errs) > 0 {
		list := &structpb.ListValue{Values: make([]*structpb.Value, len(errs))}
		for i, e := range errs {
			list.Values[i] = structpb.NewStringValue(e)
		}
		details = append(details, list)
	}

	with, err := base.WithDetails(details...)
	if err != nil {
		return base
	}
	return with
}

// FromStatus rebuilds a void outcome from a gRPC status.
//
// Statuses produced by Status round-trip: status, messages, validation
// errors and correlation id are restored. Validation severities are not
// transported and come back as SeverityError. Other statuses are
// classified by their code, with the status message as the only message.
func FromStatus(st *gstatus.Status) dresult.Void {
	if st == nil || st.Code() == codes.OK {
		return dresult.Success()
	}

	var (
		info   *errdetails.ErrorInfo
		br     *errdetails.BadRequest
		list   *structpb.ListValue
		parsed = fromCode(st.Code())
	)
	for _, d := range st.Details() {
		switch v := d.(type) {
		case *errdetails.ErrorInfo:
			if v.GetDomain() == Domain {
				info = v
			}
		case *errdetails.BadRequest:
			br = v
		case *structpb.ListValue:
			list = v
		}
	}

	var msgs []string
	if info != nil {
		if s, err := status.Parse(info.GetReason()); err == nil && s.IsFailure() {
			parsed = s
		}
		for _, v := range list.GetValues() {
			msgs = append(msgs, v.GetStringValue())
		}
	} else if m := st.Message(); m != "" {
		msgs = []string{m}
	}

	switch parsed {
	case status.Invalid:
		var ves []dresult.ValidationError
		for _, fv := range br.GetFieldViolations() {
			ves = append(ves, dresult.ValidationError{
				Identifier:   fv.GetField(),
				ErrorMessage: fv.GetDescription(),
				ErrorCode:    reasonOrEmpty(fv.GetReason()),
			})
		}
		if len(ves) == 0 {
			ves = []dresult.ValidationError{{ErrorMessage: st.Message()}}
		}
		return dresult.Invalid(ves...)
	case status.Error:
		return dresult.Error(dresult.NewErrorList(info.GetMetadata()[MetaCorrelationID], msgs...))
	}
	return failures[parsed](msgs...)
}

// FromError is FromStatus for an error returned by a gRPC call. It reports
// false when err does not carry a gRPC status.
func FromError(err error) (dresult.Void, bool) {
	if err == nil {
		return dresult.Success(), true
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return dresult.Void{}, false
	}
	return FromStatus(st), true
}

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that turns
// *dresult.Failure handler errors into rich statuses built with Status.
// Other errors are returned as-is.
func UnaryServerInterceptor(m apis.Mapper) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		f, ok := dresult.AsFailure(err)
		if !ok {
			return nil, err
		}
		return nil, Status(m, f.Outcome()).Err()
	}
}

var failures = map[status.Status]func(...string) dresult.Void{
	status.NotFound:      dresult.NotFound,
	status.Forbidden:     dresult.Forbidden,
	status.Unauthorized:  dresult.Unauthorized,
	status.Conflict:      dresult.Conflict,
	status.Unavailable:   dresult.Unavailable,
	status.CriticalError: dresult.CriticalError,
}

// fromCode classifies a gRPC code that arrived without ErrorInfo.
func fromCode(c codes.Code) status.Status {
	switch c {
	case codes.InvalidArgument, codes.OutOfRange:
		return status.Invalid
	case codes.NotFound:
		return status.NotFound
	case codes.PermissionDenied:
		return status.Forbidden
	case codes.Unauthenticated:
		return status.Unauthorized
	case codes.Aborted, codes.AlreadyExists:
		return status.Conflict
	case codes.Unavailable:
		return status.Unavailable
	case codes.Internal, codes.DataLoss:
		return status.CriticalError
	}
	return status.Error
}

// reasonOrEmpty drops field violation reasons that are not valid reasons,
// e.g. ones written by other servers.
func reasonOrEmpty(s string) reason.Reason {
	r, err := reason.Parse(s)
	if err != nil {
		return reason.Empty
	}
	return r
}
