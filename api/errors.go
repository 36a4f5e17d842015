package api

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"code.vegaprotocol.io/stockstream/orders"
	"code.vegaprotocol.io/stockstream/prices"

	"github.com/pkg/errors"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// errorDomain is reported in the ErrorInfo detail of every API error.
const errorDomain = "stockstream"

// ErrorMap contains a mapping between errors and numeric error codes.
var ErrorMap map[error]int32

// API Errors and descriptions.
var (
	// ErrNotMapped is when an error cannot be found in the current error map/lookup table.
	ErrNotMapped = errors.New("error not found in error lookup table")
	// ErrEmptyMissingSymbol signals to the caller that the request expected a
	// stock symbol but the field is missing or empty.
	ErrEmptyMissingSymbol = errors.New("empty or missing stock symbol")
	// ErrStockNotFound signals the symbol is not known by the stock store.
	ErrStockNotFound = errors.New("stock not available")
	// ErrStockStore signals the stock store could not be read.
	ErrStockStore = errors.New("failed to get stock price")
	// ErrStreamCancelled signals the call was cancelled by the client or its deadline.
	ErrStreamCancelled = errors.New("stream cancelled")
	// ErrStreamInternal signals to the users that the grpc stream has an internal problem.
	ErrStreamInternal = errors.New("internal stream failure")
	// ErrServerShutdown signals to the client that the server is shutting down.
	ErrServerShutdown = errors.New("server shutdown")
)

func init() {
	InitErrorMap()
}

// InitErrorMap registers the numeric code of every API error.
func InitErrorMap() {
	em := make(map[error]int32)
	// General
	em[ErrNotMapped] = 10000
	em[ErrEmptyMissingSymbol] = 10001
	em[ErrStreamCancelled] = 10002
	em[ErrStreamInternal] = 10003
	em[ErrServerShutdown] = 10004
	// Stocks
	em[ErrStockNotFound] = 20001
	em[ErrStockStore] = 20002
	ErrorMap = em
}

// apiError builds the status returned by the API: a standard grpc code, one
// of the API errors above, and optionally the internal errors behind it.
func apiError(grpcCode codes.Code, apiErr error, innerErrors ...error) error {
	return apiErrorWithMessage(grpcCode, fmt.Sprintf("%v error", grpcCode), apiErr, innerErrors...)
}

func apiErrorWithMessage(grpcCode codes.Code, msg string, apiErr error, innerErrors ...error) error {
	code, found := ErrorMap[apiErr]
	if !found {
		code = ErrorMap[ErrNotMapped]
	}
	detail := &errdetails.ErrorInfo{
		Reason: apiErr.Error(),
		Domain: errorDomain,
		Metadata: map[string]string{
			"code": strconv.Itoa(int(code)),
		},
	}
	if len(innerErrors) > 0 {
		inner := make([]string, 0, len(innerErrors))
		for _, err := range innerErrors {
			inner = append(inner, err.Error())
		}
		detail.Metadata["inner"] = strings.Join(inner, ", ")
	}

	s := status.New(grpcCode, msg)
	if ds, err := s.WithDetails(detail); err == nil {
		s = ds
	}
	return s.Err()
}

// ErrorCode returns the numeric API code carried by an error returned from
// the API, 0 when there is none.
func ErrorCode(err error) int32 {
	for _, d := range status.Convert(err).Details() {
		info, ok := d.(*errdetails.ErrorInfo)
		if !ok || info.GetDomain() != errorDomain {
			continue
		}
		code, perr := strconv.Atoi(info.GetMetadata()["code"])
		if perr == nil {
			return int32(code)
		}
	}
	return 0
}

// streamError maps the terminal error of a session to a status.
func streamError(err error) error {
	switch {
	case errors.Is(err, prices.ErrEmptySymbol):
		return apiError(codes.InvalidArgument, ErrEmptyMissingSymbol, err)
	case errors.Is(err, context.DeadlineExceeded):
		return apiError(codes.DeadlineExceeded, ErrStreamCancelled, err)
	case errors.Is(err, prices.ErrStreamCancelled),
		errors.Is(err, orders.ErrStreamCancelled),
		errors.Is(err, context.Canceled):
		return apiError(codes.Canceled, ErrStreamCancelled, err)
	default:
		return apiError(codes.Internal, ErrStreamInternal, err)
	}
}
