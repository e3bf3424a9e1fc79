package alexa

import (
	"context"
	"net/http"

	"github.com/beacondev/echobridge/pkg/device"
)

type dndStatusListResponse struct {
	DoNotDisturbDeviceStatusList []struct {
		DeviceSerialNumber string `json:"deviceSerialNumber"`
		DeviceType         string `json:"deviceType"`
		Enabled            bool   `json:"enabled"`
	} `json:"doNotDisturbDeviceStatusList"`
}

// DNDStatusList reads the do-not-disturb state of every device.
func (c *Client) DNDStatusList(ctx context.Context) ([]device.DNDState, error) {
	var resp dndStatusListResponse
	if err := c.do(ctx, http.MethodGet, "/api/dnd/device-status-list", nil, &resp); err != nil {
		return nil, err
	}

	states := make([]device.DNDState, 0, len(resp.DoNotDisturbDeviceStatusList))
	for _, s := range resp.DoNotDisturbDeviceStatusList {
		states = append(states, device.DNDState{
			SerialType: device.SerialType{Serial: s.DeviceSerialNumber, Type: s.DeviceType},
			Enabled:    s.Enabled,
		})
	}
	return states, nil
}

type dndStatusBody struct {
	DeviceSerialNumber string `json:"deviceSerialNumber"`
	DeviceType         string `json:"deviceType"`
	Enabled            bool   `json:"enabled"`
}

// SetDND writes one device's do-not-disturb state and returns the state the
// upstream echoed back.
func (c *Client) SetDND(ctx context.Context, st device.SerialType, enabled bool) (*device.DNDState, error) {
	var resp dndStatusBody
	err := c.do(ctx, http.MethodPut, "/api/dnd/status", dndStatusBody{
		DeviceSerialNumber: st.Serial,
		DeviceType:         st.Type,
		Enabled:            enabled,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &device.DNDState{
		SerialType: device.SerialType{Serial: resp.DeviceSerialNumber, Type: resp.DeviceType},
		Enabled:    resp.Enabled,
	}, nil
}
