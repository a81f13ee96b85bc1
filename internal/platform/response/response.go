// Package response builds command responses with embedded status codes.
package response

import (
	"errors"

	"github.com/MichalMitros/basket-service/internal/platform"
	"github.com/rs/zerolog"
	"google.golang.org/grpc/codes"
)

const (
	msgOK       = "OK"
	msgInternal = "internal error"
)

// statusErrors are errors which are returned to the client with their own message.
var statusErrors = []struct {
	err    error
	status codes.Code
}{
	{platform.ErrBasketNotFound, codes.NotFound},
	{platform.ErrItemNotFound, codes.NotFound},
	{platform.ErrProductNotFound, codes.NotFound},
	{platform.ErrRetailerNotFound, codes.NotFound},
	{platform.ErrNoFeed, codes.FailedPrecondition},
	{platform.ErrAlreadyRunning, codes.Aborted},
}

// Response is command result with embedded status.
// Data is null for failures unless the command defines failure payload.
type Response[T any] struct {
	Status  codes.Code `json:"status"`
	Message string     `json:"message"`
	Data    *T         `json:"data"`
}

// OK returns successful response with data.
func OK[T any](data T) Response[T] {
	return Response[T]{
		Status:  codes.OK,
		Message: msgOK,
		Data:    &data,
	}
}

// Failure returns response with status and message matching the error and null data.
func Failure[T any](err error) Response[T] {
	status, msg := StatusOf(err)

	return Response[T]{
		Status:  status,
		Message: msg,
	}
}

// Report returns Failure response and logs the error if it's an internal one.
func Report[T any](logger *zerolog.Logger, err error, userID, msg string) Response[T] {
	resp := Failure[T](err)
	if resp.Status == codes.Internal {
		logger.Error().
			Err(err).
			Str("userId", userID).
			Msg(msg)
	}
	return resp
}

// StatusOf classifies error into status code and message safe to return to the client.
func StatusOf(err error) (codes.Code, string) {
	if err == nil {
		return codes.OK, msgOK
	}

	if errors.Is(err, platform.ErrInvalidArgument) {
		return codes.InvalidArgument, err.Error()
	}

	for _, se := range statusErrors {
		if errors.Is(err, se.err) {
			return se.status, se.err.Error()
		}
	}

	return codes.Internal, msgInternal
}
