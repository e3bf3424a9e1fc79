package alexa

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/beacondev/echobridge/pkg/device"
)

// stateRequest addresses one device in a batch state query.
type stateRequest struct {
	EntityID   string `json:"entityId"`
	EntityType string `json:"entityType"`
}

type stateQuery struct {
	StateRequests []stateRequest `json:"stateRequests"`
}

// RawDeviceState is one device's slice of a batch state response. Each
// capability state may be a JSON object or a JSON-encoded string needing a
// second decode; the normalizer deals with both.
type RawDeviceState struct {
	Entity struct {
		EntityID   string `json:"entityId"`
		EntityType string `json:"entityType"`
	} `json:"entity"`
	CapabilityStates []json.RawMessage `json:"capabilityStates"`
}

// StateResponse is a batch state response. Per-device errors ride alongside
// successful states; a failed device does not abort the batch.
type StateResponse struct {
	DeviceStates []RawDeviceState  `json:"deviceStates"`
	Errors       []json.RawMessage `json:"errors,omitempty"`
}

// QueryState fetches the capability states for the given entities in one
// batch call. Not cached: state is the one thing discovery caching must not
// make stale.
func (c *Client) QueryState(ctx context.Context, ids []device.EntityID) (*StateResponse, error) {
	reqs := make([]stateRequest, 0, len(ids))
	for _, id := range ids {
		reqs = append(reqs, stateRequest{EntityID: string(id), EntityType: "ENTITY"})
	}

	var resp StateResponse
	if err := c.do(ctx, http.MethodPost, "/api/phoenix/state", stateQuery{StateRequests: reqs}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// controlRequest is one write in a batch control call. Control writes are
// keyed by appliance ID, not entity ID, despite the field name.
type controlRequest struct {
	EntityID   string         `json:"entityId"`
	EntityType string         `json:"entityType"`
	Parameters map[string]any `json:"parameters"`
}

type controlBody struct {
	ControlRequests []controlRequest `json:"controlRequests"`
}

// ControlState issues one state-endpoint write with the given parameter bag.
// The bag's shape depends on the action: brightness carries a 0–1 fractional
// string, color carries a named-color or kelvin parameter, never both.
func (c *Client) ControlState(ctx context.Context, id device.ApplianceID, params map[string]any) error {
	body := controlBody{
		ControlRequests: []controlRequest{{
			EntityID:   string(id),
			EntityType: "APPLIANCE",
			Parameters: params,
		}},
	}
	return c.do(ctx, http.MethodPut, "/api/phoenix/state", body, nil)
}
