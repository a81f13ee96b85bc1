package response_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/MichalMitros/basket-service/internal/platform"
	"github.com/MichalMitros/basket-service/internal/platform/response"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
)

func TestUnitStatusOf(t *testing.T) {
	tests := map[string]struct {
		err        error
		wantStatus codes.Code
		wantMsg    string
	}{
		"no error": {
			wantStatus: codes.OK,
			wantMsg:    "OK",
		},
		"invalid argument": {
			err:        fmt.Errorf("%w: page must be positive", platform.ErrInvalidArgument),
			wantStatus: codes.InvalidArgument,
			wantMsg:    "invalid argument: page must be positive",
		},
		"wrapped basket not found": {
			err:        fmt.Errorf("can't get detailed basket: %w", platform.ErrBasketNotFound),
			wantStatus: codes.NotFound,
			wantMsg:    "basket not found",
		},
		"retailer not found": {
			err:        platform.ErrRetailerNotFound,
			wantStatus: codes.NotFound,
			wantMsg:    "retailer not found",
		},
		"no feed": {
			err:        platform.ErrNoFeed,
			wantStatus: codes.FailedPrecondition,
			wantMsg:    "retailer has no price feed",
		},
		"already running": {
			err:        fmt.Errorf("can't start import: %w", platform.ErrAlreadyRunning),
			wantStatus: codes.Aborted,
			wantMsg:    "price import already running for this retailer",
		},
		"unexpected error": {
			err:        assert.AnError,
			wantStatus: codes.Internal,
			wantMsg:    "internal error",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			status, msg := response.StatusOf(tt.err)

			assert.Equal(t, tt.wantStatus, status, "should return correct status")
			assert.Equal(t, tt.wantMsg, msg, "should return correct message")
		})
	}
}

func TestUnitResponseJSON(t *testing.T) {
	tests := map[string]struct {
		resp response.Response[map[string]int]
		want string
	}{
		"ok": {
			resp: response.OK(map[string]int{"count": 1}),
			want: `{"status":0,"message":"OK","data":{"count":1}}`,
		},
		"failure": {
			resp: response.Failure[map[string]int](platform.ErrBasketNotFound),
			want: `{"status":5,"message":"basket not found","data":null}`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			body, err := json.Marshal(tt.resp)

			require.NoError(t, err, "shouldn't return any error")
			assert.JSONEq(t, tt.want, string(body), "should encode status, message and data")
		})
	}
}

func TestUnitReport(t *testing.T) {
	tests := map[string]struct {
		err     error
		wantLog bool
	}{
		"internal error":    {err: assert.AnError, wantLog: true},
		"not found error":   {err: platform.ErrBasketNotFound},
		"invalid arguments": {err: platform.ErrInvalidArgument},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := zerolog.New(&buf)

			resp := response.Report[int](&logger, tt.err, "user", "can't do it")

			assert.Nil(t, resp.Data, "should return null data")
			assert.Equal(t, tt.wantLog, buf.Len() > 0, "should log only internal errors")
			if tt.wantLog {
				assert.Contains(t, buf.String(), `"userId":"user"`, "should log user id")
			}
		})
	}
}
