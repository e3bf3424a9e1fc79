package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/beacondev/echobridge/pkg/alexa"
	"github.com/beacondev/echobridge/pkg/api/types"
	"github.com/beacondev/echobridge/pkg/device"
	"github.com/beacondev/echobridge/pkg/resolve"
)

// DevicesHandler handles discovery read endpoints
type DevicesHandler struct {
	client *alexa.Client
}

// NewDevicesHandler creates a new devices handler
func NewDevicesHandler(client *alexa.Client) *DevicesHandler {
	return &DevicesHandler{client: client}
}

// ListDevices handles GET /devices
// @Summary      List registered devices
// @Description  Returns the flat registered-device list (serial, type, family, name, online)
// @Tags         discovery
// @Produce      json
// @Success      200  {object}  types.ListDevicesResponse
// @Failure      500  {object}  types.ErrorResponse  "Credentials missing"
// @Failure      502  {object}  types.ErrorResponse  "Upstream error"
// @Router       /devices [get]
func (h *DevicesHandler) ListDevices(c *gin.Context) {
	entries, err := h.client.Devices(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.ListDevicesResponse{
		Devices: entries,
		Count:   len(entries),
	})
}

// ListEndpoints handles GET /endpoints
// @Summary      List smart-home endpoints
// @Description  Returns the endpoint graph resolved into per-device identifier sets
// @Tags         discovery
// @Produce      json
// @Success      200  {object}  types.ListEndpointsResponse
// @Failure      500  {object}  types.ErrorResponse  "Credentials missing"
// @Failure      502  {object}  types.ErrorResponse  "Upstream error"
// @Router       /endpoints [get]
func (h *DevicesHandler) ListEndpoints(c *gin.Context) {
	eps, err := h.client.Endpoints(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	devices := make([]device.Device, 0, len(eps))
	for _, ep := range eps {
		devices = append(devices, resolve.FromEndpoint(ep))
	}

	c.JSON(http.StatusOK, types.ListEndpointsResponse{
		Endpoints: devices,
		Count:     len(devices),
	})
}

// ListFavorites handles GET /favorites
// @Summary      List favorites
// @Description  Returns the account's favorites list
// @Tags         discovery
// @Produce      json
// @Success      200  {object}  types.ListFavoritesResponse
// @Failure      500  {object}  types.ErrorResponse  "Credentials missing"
// @Failure      502  {object}  types.ErrorResponse  "Upstream error"
// @Router       /favorites [get]
func (h *DevicesHandler) ListFavorites(c *gin.Context) {
	favorites, err := h.client.Favorites(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.ListFavoritesResponse{
		Favorites: favorites,
		Count:     len(favorites),
	})
}
