package alexa

import (
	"context"
	"net/http"
	"strings"

	"github.com/beacondev/echobridge/pkg/device"
)

// Cache keys for the discovery sweeps. One key per call, not per device;
// the whole result blob is the cached unit.
const (
	cacheKeyHousehold = "household"
	cacheKeyDevices   = "devices"
	cacheKeyEndpoints = "endpoints"
	cacheKeyFavorites = "favorites"
)

const endpointsQuery = `
query CustomerSmartHome {
  endpoints(latencyTolerance: LOW) {
    items {
      id
      friendlyName { value { text } }
      displayCategories { primary { value } all { value } }
      legacyIdentifiers {
        chrsIdentifier { entityId }
        dmsIdentifier {
          deviceSerialNumber { value { text } }
          deviceType { value { text } }
        }
      }
      legacyAppliance {
        applianceId
        entityId
        mergedApplianceIds
        connectedVia
        isReachable
        capabilityNames
      }
    }
  }
}`

const favoritesQuery = `
query CustomerFavorites {
  favorites {
    items { id displayName type entityId }
  }
}`

// Household returns the account list, served from cache when fresh.
func (c *Client) Household(ctx context.Context) ([]Account, error) {
	if v, ok := c.cache.Get(cacheKeyHousehold); ok {
		return v.([]Account), nil
	}

	var resp householdResponse
	if err := c.do(ctx, http.MethodGet, "/api/household", nil, &resp); err != nil {
		return nil, err
	}
	c.cache.Set(cacheKeyHousehold, resp.Accounts)
	return resp.Accounts, nil
}

// CustomerID returns the primary customer identifier: the account flagged as
// the signed-in user, or the first account if none is flagged.
func (c *Client) CustomerID(ctx context.Context) (string, error) {
	accounts, err := c.Household(ctx)
	if err != nil {
		return "", err
	}
	if len(accounts) == 0 {
		return "", &UpstreamError{
			Op:         "GET /api/household",
			StatusCode: http.StatusOK,
			Body:       "empty account list",
		}
	}
	for _, a := range accounts {
		if a.SignedInUser {
			return a.ID, nil
		}
	}
	return accounts[0].ID, nil
}

// Devices returns the flat registered-device list, served from cache when
// fresh. This is the source for serial+type identifiers and for family
// heuristics; it knows nothing about appliance or entity IDs.
func (c *Client) Devices(ctx context.Context) ([]device.Entry, error) {
	if v, ok := c.cache.Get(cacheKeyDevices); ok {
		return v.([]device.Entry), nil
	}

	var resp devicesResponse
	if err := c.do(ctx, http.MethodGet, "/api/devices-v2/device?cached=false", nil, &resp); err != nil {
		return nil, err
	}

	entries := make([]device.Entry, 0, len(resp.Devices))
	for _, d := range resp.Devices {
		entries = append(entries, device.Entry{
			Serial:       d.SerialNumber,
			Type:         d.DeviceType,
			Family:       d.DeviceFamily,
			Name:         d.AccountName,
			Online:       d.Online,
			Capabilities: d.Capabilities,
		})
	}
	c.cache.Set(cacheKeyDevices, entries)
	return entries, nil
}

// Endpoints returns the rich endpoint graph, served from cache when fresh.
// This is the authoritative source for identifier-kind translation.
func (c *Client) Endpoints(ctx context.Context) ([]Endpoint, error) {
	if v, ok := c.cache.Get(cacheKeyEndpoints); ok {
		return v.([]Endpoint), nil
	}

	var data endpointsData
	if err := c.graphql(ctx, "CustomerSmartHome", endpointsQuery, nil, &data); err != nil {
		return nil, err
	}
	c.cache.Set(cacheKeyEndpoints, data.Endpoints.Items)
	return data.Endpoints.Items, nil
}

// Favorites returns the favorites list, served from cache when fresh.
func (c *Client) Favorites(ctx context.Context) ([]Favorite, error) {
	if v, ok := c.cache.Get(cacheKeyFavorites); ok {
		return v.([]Favorite), nil
	}

	var data favoritesData
	if err := c.graphql(ctx, "CustomerFavorites", favoritesQuery, nil, &data); err != nil {
		return nil, err
	}
	c.cache.Set(cacheKeyFavorites, data.Favorites.Items)
	return data.Favorites.Items, nil
}

// Echo-class device families. The upstream has no clean boolean for "is an
// Echo", so classification is a substring heuristic on family and type.
var echoFamilies = []string{"ECHO", "ROOK", "KNIGHT"}

// IsEchoFamily reports whether a flat-list entry is an Echo-class device.
func IsEchoFamily(e device.Entry) bool {
	family := strings.ToUpper(e.Family)
	dtype := strings.ToUpper(e.Type)
	for _, f := range echoFamilies {
		if strings.Contains(family, f) || strings.Contains(dtype, f) {
			return true
		}
	}
	return false
}

// IsAudioCapable reports whether a flat-list entry can play audio and accept
// volume commands.
func IsAudioCapable(e device.Entry) bool {
	for _, cap := range e.Capabilities {
		if strings.EqualFold(cap, "VOLUME_SETTING") || strings.EqualFold(cap, "AUDIO_PLAYER") {
			return true
		}
	}
	return IsEchoFamily(e)
}
