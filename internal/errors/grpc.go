package errors

import (
	"fmt"
	"sort"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrorDomain is reported in errdetails.ErrorInfo.Domain.
const ErrorDomain = "arcanum-api"

// ToGRPCError converts an error to a gRPC status error. An *Error becomes a
// status with an ErrorInfo detail (reason = code, metadata = stringified Meta)
// and, for validation failures, a BadRequest detail listing every field.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := status.FromError(err); ok {
		return err
	}

	var customErr *Error
	if !As(err, &customErr) {
		return status.Error(codes.Internal, err.Error())
	}

	st := status.New(customErr.Code.GRPCCode(), customErr.Message)

	info := &errdetails.ErrorInfo{
		Reason: customErr.Code.String(),
		Domain: ErrorDomain,
	}
	for k, v := range customErr.Meta {
		if k == MetaValidationErrors {
			continue
		}
		if info.Metadata == nil {
			info.Metadata = make(map[string]string)
		}
		info.Metadata[k] = fmt.Sprint(v)
	}

	var (
		withDetails *status.Status
		detailErr   error
	)
	if fields := FieldErrors(customErr); len(fields) > 0 {
		withDetails, detailErr = st.WithDetails(info, badRequest(fields))
	} else {
		withDetails, detailErr = st.WithDetails(info)
	}
	if detailErr != nil {
		return st.Err()
	}
	return withDetails.Err()
}

// FromGRPCError converts a gRPC error back to an *Error, restoring metadata
// and validation field errors from the status details.
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	customErr := &Error{
		Code:    grpcCodeToCode(st.Code()),
		Message: st.Message(),
	}

	for _, detail := range st.Details() {
		switch d := detail.(type) {
		case *errdetails.ErrorInfo:
			if code := Code(d.GetReason()); code.Valid() {
				customErr.Code = code
			}
			for k, v := range d.GetMetadata() {
				customErr.WithMeta(k, v)
			}
		case *errdetails.BadRequest:
			fields := make(map[string][]string)
			for _, violation := range d.GetFieldViolations() {
				fields[violation.GetField()] = append(fields[violation.GetField()], violation.GetDescription())
			}
			customErr.WithMeta(MetaValidationErrors, fields)
		}
	}

	return customErr
}

// GRPCStatus returns the gRPC status for any error
func GRPCStatus(err error) *status.Status {
	if err == nil {
		return status.New(codes.OK, "")
	}
	st, _ := status.FromError(ToGRPCError(err))
	return st
}

func badRequest(fields map[string][]string) *errdetails.BadRequest {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	br := &errdetails.BadRequest{}
	for _, name := range names {
		for _, msg := range fields[name] {
			br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
				Field:       name,
				Description: msg,
			})
		}
	}
	return br
}

// GRPCCode returns the corresponding gRPC code
func (c Code) GRPCCode() codes.Code {
	switch c {
	case CodeOK:
		return codes.OK
	case CodeCanceled:
		return codes.Canceled
	case CodeDeadlineExceeded:
		return codes.DeadlineExceeded
	case CodeInvalidArgument:
		return codes.InvalidArgument
	case CodeNotFound:
		return codes.NotFound
	case CodeAlreadyExists:
		return codes.AlreadyExists
	case CodeUnauthenticated:
		return codes.Unauthenticated
	case CodePermissionDenied:
		return codes.PermissionDenied
	case CodeFailedPrecondition:
		return codes.FailedPrecondition
	case CodeUnimplemented:
		return codes.Unimplemented
	case CodeInternal:
		return codes.Internal
	case CodeUnavailable:
		return codes.Unavailable
	case CodeDataLoss:
		return codes.DataLoss
	default:
		return codes.Unknown
	}
}

func grpcCodeToCode(grpcCode codes.Code) Code {
	switch grpcCode {
	case codes.OK:
		return CodeOK
	case codes.Canceled:
		return CodeCanceled
	case codes.DeadlineExceeded:
		return CodeDeadlineExceeded
	case codes.InvalidArgument, codes.OutOfRange:
		return CodeInvalidArgument
	case codes.NotFound:
		return CodeNotFound
	case codes.AlreadyExists, codes.Aborted:
		return CodeAlreadyExists
	case codes.Unauthenticated:
		return CodeUnauthenticated
	case codes.PermissionDenied:
		return CodePermissionDenied
	case codes.FailedPrecondition:
		return CodeFailedPrecondition
	case codes.Unimplemented:
		return CodeUnimplemented
	case codes.Unavailable, codes.ResourceExhausted:
		return CodeUnavailable
	case codes.DataLoss:
		return CodeDataLoss
	default:
		return CodeInternal
	}
}
