package alexa

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/beacondev/echobridge/pkg/device"
)

type allVolumesResponse struct {
	Volumes []struct {
		DSN           string `json:"dsn"`
		DeviceType    string `json:"deviceType"`
		SpeakerVolume int    `json:"speakerVolume"`
		SpeakerMuted  bool   `json:"speakerMuted"`
	} `json:"volumes"`
}

// AllDeviceVolumes reads the current volume of every audio-capable device.
// Not cached: it is the pre-read half of every volume write.
func (c *Client) AllDeviceVolumes(ctx context.Context) ([]device.VolumeState, error) {
	var resp allVolumesResponse
	if err := c.do(ctx, http.MethodGet, "/api/devices/deviceType/dsn/audio/v1/allDeviceVolumes", nil, &resp); err != nil {
		return nil, err
	}

	states := make([]device.VolumeState, 0, len(resp.Volumes))
	for _, v := range resp.Volumes {
		states = append(states, device.VolumeState{
			SerialType: device.SerialType{Serial: v.DSN, Type: v.DeviceType},
			Volume:     v.SpeakerVolume,
			Muted:      v.SpeakerMuted,
		})
	}
	return states, nil
}

type volumeAdjustBody struct {
	DeviceSerialNumber string `json:"deviceSerialNumber"`
	DeviceType         string `json:"deviceType"`
	VolumeAdjustment   int    `json:"volumeAdjustment"`
	SpeakerVolume      int    `json:"speakerVolume"`
}

// AdjustVolume shifts one device's volume by delta. The upstream call is
// delta-only; current is the pre-read volume it wants as a consistency hint.
// There is no absolute-set primitive, callers compute the delta themselves.
func (c *Client) AdjustVolume(ctx context.Context, st device.SerialType, delta, current int) error {
	path := fmt.Sprintf("/api/devices/%s/%s/audio/v1/volume",
		url.PathEscape(st.Type), url.PathEscape(st.Serial))
	return c.do(ctx, http.MethodPut, path, volumeAdjustBody{
		DeviceSerialNumber: st.Serial,
		DeviceType:         st.Type,
		VolumeAdjustment:   delta,
		SpeakerVolume:      current,
	}, nil)
}

type playerResponse struct {
	PlayerInfo struct {
		State    string `json:"state"`
		Provider struct {
			ProviderName string `json:"providerName"`
		} `json:"provider"`
		InfoText struct {
			Title    string `json:"title"`
			SubText1 string `json:"subText1"`
			SubText2 string `json:"subText2"`
		} `json:"infoText"`
		Volume struct {
			Volume int  `json:"volume"`
			Muted  bool `json:"muted"`
		} `json:"volume"`
	} `json:"playerInfo"`
}

// NowPlaying reads the current media session of one device.
func (c *Client) NowPlaying(ctx context.Context, st device.SerialType) (*device.NowPlaying, error) {
	q := url.Values{}
	q.Set("deviceSerialNumber", st.Serial)
	q.Set("deviceType", st.Type)

	var resp playerResponse
	if err := c.do(ctx, http.MethodGet, "/api/np/player?"+q.Encode(), nil, &resp); err != nil {
		return nil, err
	}

	return &device.NowPlaying{
		SerialType: st,
		State:      resp.PlayerInfo.State,
		Title:      resp.PlayerInfo.InfoText.Title,
		Artist:     resp.PlayerInfo.InfoText.SubText1,
		Album:      resp.PlayerInfo.InfoText.SubText2,
		Provider:   resp.PlayerInfo.Provider.ProviderName,
		Volume:     resp.PlayerInfo.Volume.Volume,
		Muted:      resp.PlayerInfo.Volume.Muted,
	}, nil
}
