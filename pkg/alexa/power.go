package alexa

import (
	"context"
	"net/http"

	"github.com/beacondev/echobridge/pkg/device"
)

const powerMutation = `
mutation UpdatePower($endpointId: String!, $action: PowerAction!) {
  setEndpointFeatures(
    endpointId: $endpointId
    features: [{ name: power, action: $action }]
  ) {
    endpoints { id }
    errors { code message endpointId }
  }
}`

// Power mutation actions.
const (
	powerActionOn  = "turnOn"
	powerActionOff = "turnOff"
)

type powerMutationData struct {
	SetEndpointFeatures struct {
		Endpoints []struct {
			ID string `json:"id"`
		} `json:"endpoints"`
		Errors []struct {
			Code       string `json:"code"`
			Message    string `json:"message"`
			EndpointID string `json:"endpointId"`
		} `json:"errors"`
	} `json:"setEndpointFeatures"`
}

// SetEndpointPower turns one endpoint on or off through the graph mutation.
// This call accepts only the endpoint-namespace identifier.
func (c *Client) SetEndpointPower(ctx context.Context, id device.EndpointID, on bool) error {
	action := powerActionOff
	if on {
		action = powerActionOn
	}

	var data powerMutationData
	err := c.graphql(ctx, "UpdatePower", powerMutation, map[string]any{
		"endpointId": string(id),
		"action":     action,
	}, &data)
	if err != nil {
		return err
	}

	if len(data.SetEndpointFeatures.Errors) > 0 {
		e := data.SetEndpointFeatures.Errors[0]
		return &UpstreamError{
			Op:         "graphql UpdatePower",
			StatusCode: http.StatusOK,
			Body:       e.Code + ": " + e.Message,
		}
	}
	return nil
}
