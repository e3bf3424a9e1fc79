package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/beacondev/echobridge/pkg/alexa"
	"github.com/beacondev/echobridge/pkg/api/types"
	"github.com/beacondev/echobridge/pkg/control"
	"github.com/beacondev/echobridge/pkg/device"
)

// writeError maps domain errors onto HTTP status codes. Upstream failures
// pass through as 502 with the original status and body snippet so callers
// can see exactly what the upstream said.
func writeError(c *gin.Context, err error) {
	var uerr *alexa.UpstreamError
	switch {
	case errors.Is(err, device.ErrNotFound):
		c.JSON(http.StatusNotFound, types.ErrorResponse{
			Error:   "not_found",
			Message: "No matching device found",
		})
	case errors.Is(err, device.ErrMissingIdentifier):
		c.JSON(http.StatusNotFound, types.ErrorResponse{
			Error:   "missing_identifier",
			Message: "Device record lacks the identifier this operation needs",
		})
	case errors.Is(err, device.ErrAmbiguous):
		c.JSON(http.StatusConflict, types.ErrorResponse{
			Error:   "ambiguous",
			Message: "Multiple devices match; pass an explicit selector",
		})
	case errors.Is(err, control.ErrSenderTooLong), errors.Is(err, control.ErrMessageTooLong):
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
	case errors.Is(err, device.ErrCredentialsMissing):
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error:   "credentials_missing",
			Message: "Upstream session credentials are not configured",
		})
	case errors.As(err, &uerr):
		c.JSON(http.StatusBadGateway, types.ErrorResponse{
			Error:   "upstream_error",
			Message: uerr.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
	}
}
