package errors

import (
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// grpcCodeMap maps kinds to gRPC status codes.
var grpcCodeMap = map[Kind]codes.Code{
	KindArgumentNull:     codes.InvalidArgument,
	KindOutOfRange:       codes.OutOfRange,
	KindInvalidOperation: codes.FailedPrecondition,
	KindInvalidCast:      codes.InvalidArgument,
}

// httpStatusMap maps kinds to HTTP status codes.
var httpStatusMap = map[Kind]int{
	KindArgumentNull:     http.StatusBadRequest,
	KindOutOfRange:       http.StatusUnprocessableEntity,
	KindInvalidOperation: http.StatusConflict,
	KindInvalidCast:      http.StatusBadRequest,
}

// GRPCCode returns the gRPC code for err. Errors outside the kernel map to
// codes.Internal.
func GRPCCode(err error) codes.Code {
	if err == nil {
		return codes.OK
	}
	if code, ok := grpcCodeMap[KindOf(err)]; ok {
		return code
	}
	return codes.Internal
}

// ToGRPCStatus converts err to a gRPC status. The message is the error key
// when one is present so clients can localize it.
func ToGRPCStatus(err error) *status.Status {
	if err == nil {
		return status.New(codes.OK, "")
	}
	msg := err.Error()
	if key := KeyOf(err); key != "" {
		msg = key.String()
	}
	return status.New(GRPCCode(err), msg)
}

// HTTPStatus returns the HTTP status for err.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if code, ok := httpStatusMap[KindOf(err)]; ok {
		return code
	}
	return http.StatusInternalServerError
}
