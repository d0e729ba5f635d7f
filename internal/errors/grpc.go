package errors

import (
	"fmt"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrorDomain identifies this service in errdetails.ErrorInfo
const ErrorDomain = "battle.api.v1alpha1"

// ToGRPCError converts an error to a gRPC status error
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	// Check if it's already a gRPC status error
	if _, ok := status.FromError(err); ok {
		return err
	}

	var customErr *Error
	if !As(err, &customErr) {
		return status.Error(codes.Internal, err.Error())
	}

	st := status.New(customErr.Code.GRPCCode(), customErr.Message)
	if customErr.Reason == "" && len(customErr.Meta) == 0 {
		return st.Err()
	}

	info := &errdetails.ErrorInfo{
		Reason:   string(GetReason(err)),
		Domain:   ErrorDomain,
		Metadata: make(map[string]string, len(customErr.Meta)),
	}
	for k, v := range customErr.Meta {
		info.Metadata[k] = fmt.Sprint(v)
	}

	detailed, detailErr := st.WithDetails(info)
	if detailErr != nil {
		return st.Err()
	}
	return detailed.Err()
}

// FromGRPCError converts a gRPC error to our custom error
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
		info, ok := detail.(*errdetails.ErrorInfo)
		if !ok || info.GetDomain() != ErrorDomain {
			continue
		}
		customErr.Reason = Reason(info.GetReason())
		for k, v := range info.GetMetadata() {
			customErr.WithMeta(k, v)
		}
		break
	}

	return customErr
}

// GRPCCode returns the corresponding gRPC code
func (c Code) GRPCCode() codes.Code {
	switch c {
	case CodeOK:
		return codes.OK
	case CodeCanceled:
		return codes.Canceled
	case CodeInvalidArgument:
		return codes.InvalidArgument
	case CodeDeadlineExceeded:
		return codes.DeadlineExceeded
	case CodeNotFound:
		return codes.NotFound
	case CodeAlreadyExists:
		return codes.AlreadyExists
	case CodePermissionDenied:
		return codes.PermissionDenied
	case CodeResourceExhausted:
		return codes.ResourceExhausted
	case CodeFailedPrecondition:
		return codes.FailedPrecondition
	case CodeAborted:
		return codes.Aborted
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

// grpcCodeToCode converts a gRPC code to our error code
func grpcCodeToCode(grpcCode codes.Code) Code {
	switch grpcCode {
	case codes.OK:
		return CodeOK
	case codes.Canceled:
		return CodeCanceled
	case codes.InvalidArgument:
		return CodeInvalidArgument
	case codes.DeadlineExceeded:
		return CodeDeadlineExceeded
	case codes.NotFound:
		return CodeNotFound
	case codes.AlreadyExists:
		return CodeAlreadyExists
	case codes.PermissionDenied:
		return CodePermissionDenied
	case codes.ResourceExhausted:
		return CodeResourceExhausted
	case codes.FailedPrecondition:
		return CodeFailedPrecondition
	case codes.Aborted:
		return CodeAborted
	case codes.Unimplemented:
		return CodeUnimplemented
	case codes.Unavailable:
		return CodeUnavailable
	case codes.DataLoss:
		return CodeDataLoss
	default:
		return CodeInternal
	}
}
