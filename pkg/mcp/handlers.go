package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/beacondev/echobridge/pkg/device"
	"github.com/beacondev/echobridge/pkg/resolve"
	"github.com/beacondev/echobridge/pkg/schema"
)

func (s *Server) handleGetHealth(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	client := s.dispatcher.Client()

	credStatus := "missing"
	status := "degraded"
	if client.HasCredentials() {
		credStatus = "configured"
		status = "healthy"
	}

	out := GetHealthOutput{
		Status:      status,
		Credentials: credStatus,
		BaseURL:     client.BaseURL(),
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}

	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleListDevices(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	entries, err := s.dispatcher.Client().Devices(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list devices: %s", err)), nil
	}

	out := ListDevicesOutput{
		Devices: entries,
		Count:   len(entries),
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleListEndpoints(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	eps, err := s.dispatcher.Client().Endpoints(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list endpoints: %s", err)), nil
	}

	devices := make([]device.Device, 0, len(eps))
	for _, ep := range eps {
		devices = append(devices, resolve.FromEndpoint(ep))
	}

	out := ListEndpointsOutput{
		Endpoints: devices,
		Count:     len(devices),
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleGetLightState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	reading, err := s.dispatcher.LightState(ctx, optionalString(request, "device"))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get light state: %s", err)), nil
	}

	out := LightStateOutput{Light: *reading}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleTurnOnLight(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.setLightPower(ctx, request, true)
}

func (s *Server) handleTurnOffLight(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.setLightPower(ctx, request, false)
}

func (s *Server) setLightPower(ctx context.Context, request mcp.CallToolRequest, on bool) (*mcp.CallToolResult, error) {
	light, err := s.dispatcher.SetLightPower(ctx, optionalString(request, "device"), on)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to switch light: %s", err)), nil
	}

	action := "turn_off"
	if on {
		action = "turn_on"
	}
	out := LightActionOutput{Device: light.Name, Action: action}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleSetBrightness(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	level, err := requiredNumber(request, "level")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := s.validator.Validate(schema.Brightness, map[string]any{"level": level}); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("validation error: %s", err)), nil
	}

	light, err := s.dispatcher.SetBrightness(ctx, optionalString(request, "device"), int(level))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to set brightness: %s", err)), nil
	}

	out := LightActionOutput{Device: light.Name, Action: "set_brightness"}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleSetColor(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := optionalString(request, "name")
	kelvin := 0
	if k, ok := request.GetArguments()["kelvin"]; ok {
		if kf, ok := k.(float64); ok {
			kelvin = int(kf)
		}
	}

	payload := map[string]any{}
	if name != "" {
		payload["name"] = name
	}
	if kelvin != 0 {
		payload["kelvin"] = float64(kelvin)
	}
	if err := s.validator.Validate(schema.Color, payload); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("validation error: %s", err)), nil
	}

	light, err := s.dispatcher.SetColor(ctx, optionalString(request, "device"), name, kelvin)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to set color: %s", err)), nil
	}

	out := LightActionOutput{Device: light.Name, Action: "set_color"}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleGetVolume(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	state, err := s.dispatcher.GetVolume(ctx, optionalString(request, "serial"), optionalString(request, "type"))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get volume: %s", err)), nil
	}
	return mcp.NewToolResultText(formatJSON(volumeOutput(state))), nil
}

func (s *Server) handleSetVolume(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	level, err := requiredNumber(request, "level")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := s.validator.Validate(schema.Volume, map[string]any{"level": level}); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("validation error: %s", err)), nil
	}

	state, err := s.dispatcher.SetVolume(ctx, optionalString(request, "serial"), optionalString(request, "type"), int(level))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to set volume: %s", err)), nil
	}
	return mcp.NewToolResultText(formatJSON(volumeOutput(state))), nil
}

func (s *Server) handleAdjustVolume(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	delta, err := requiredNumber(request, "delta")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := s.validator.Validate(schema.Volume, map[string]any{"delta": delta}); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("validation error: %s", err)), nil
	}

	state, err := s.dispatcher.AdjustVolume(ctx, optionalString(request, "serial"), optionalString(request, "type"), int(delta))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to adjust volume: %s", err)), nil
	}
	return mcp.NewToolResultText(formatJSON(volumeOutput(state))), nil
}

func (s *Server) handleGetDND(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	state, err := s.dispatcher.GetDND(ctx, optionalString(request, "serial"), optionalString(request, "type"))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get do-not-disturb state: %s", err)), nil
	}

	out := DNDOutput{Serial: state.Serial, Type: state.Type, Enabled: state.Enabled}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleSetDND(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	enabledRaw, ok := request.GetArguments()["enabled"]
	if !ok {
		return mcp.NewToolResultError(`required parameter "enabled" is missing`), nil
	}
	enabled, ok := enabledRaw.(bool)
	if !ok {
		return mcp.NewToolResultError(`parameter "enabled" must be a boolean`), nil
	}

	state, err := s.dispatcher.SetDND(ctx, optionalString(request, "serial"), optionalString(request, "type"), enabled)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to set do-not-disturb state: %s", err)), nil
	}

	out := DNDOutput{Serial: state.Serial, Type: state.Type, Enabled: state.Enabled}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleSendAnnouncement(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	message, err := requiredString(request, "message")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	sender := optionalString(request, "sender")

	payload := map[string]any{"message": message}
	if sender != "" {
		payload["sender"] = sender
	}
	if err := s.validator.Validate(schema.Announcement, payload); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("validation error: %s", err)), nil
	}

	err = s.dispatcher.Announce(ctx, sender, message)
	if errors.Is(err, device.ErrSuppressed) {
		out := AnnouncementOutput{
			Status:  "suppressed",
			Message: "Outside the daytime window and no light is on",
		}
		return mcp.NewToolResultText(formatJSON(out)), nil
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to send announcement: %s", err)), nil
	}

	out := AnnouncementOutput{Status: "sent", Message: "Announcement delivered"}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleGetNowPlaying(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	np, err := s.dispatcher.NowPlaying(ctx, optionalString(request, "serial"), optionalString(request, "type"))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get media status: %s", err)), nil
	}

	out := NowPlayingOutput{
		Serial:   np.Serial,
		Type:     np.Type,
		State:    np.State,
		Title:    np.Title,
		Artist:   np.Artist,
		Album:    np.Album,
		Provider: np.Provider,
		Volume:   np.Volume,
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

// --- helpers ---

func volumeOutput(state *device.VolumeState) VolumeOutput {
	return VolumeOutput{
		Serial: state.Serial,
		Type:   state.Type,
		Volume: state.Volume,
		Muted:  state.Muted,
	}
}

func requiredString(request mcp.CallToolRequest, key string) (string, error) {
	args := request.GetArguments()
	v, ok := args[key]
	if !ok || v == nil {
		return "", fmt.Errorf("required parameter %q is missing", key)
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", fmt.Errorf("parameter %q must be a non-empty string", key)
	}
	return s, nil
}

func optionalString(request mcp.CallToolRequest, key string) string {
	if v, ok := request.GetArguments()[key].(string); ok {
		return v
	}
	return ""
}

func requiredNumber(request mcp.CallToolRequest, key string) (float64, error) {
	args := request.GetArguments()
	v, ok := args[key]
	if !ok || v == nil {
		return 0, fmt.Errorf("required parameter %q is missing", key)
	}
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("parameter %q must be a number", key)
	}
	return f, nil
}

func formatJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"error":"failed to marshal response: %s"}`, err)
	}
	return string(b)
}
