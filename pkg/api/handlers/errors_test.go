package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/beacondev/echobridge/pkg/alexa"
	"github.com/beacondev/echobridge/pkg/control"
	"github.com/beacondev/echobridge/pkg/device"
)

func TestWriteError_StatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", device.ErrNotFound, http.StatusNotFound},
		{"missing identifier", device.ErrMissingIdentifier, http.StatusNotFound},
		{"ambiguous", device.ErrAmbiguous, http.StatusConflict},
		{"sender too long", control.ErrSenderTooLong, http.StatusBadRequest},
		{"message too long", control.ErrMessageTooLong, http.StatusBadRequest},
		{"credentials missing", device.ErrCredentialsMissing, http.StatusInternalServerError},
		{"upstream", &alexa.UpstreamError{Op: "GET /x", StatusCode: 503, Body: "down"}, http.StatusBadGateway},
		{"wrapped upstream", errors.Join(errors.New("context"), &alexa.UpstreamError{StatusCode: 500}), http.StatusBadGateway},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			writeError(c, tc.err)

			if w.Code != tc.want {
				t.Errorf("status = %d, want %d", w.Code, tc.want)
			}
		})
	}
}
