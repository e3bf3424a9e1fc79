package mcp

import "github.com/mark3labs/mcp-go/mcp"

// registerTools registers all MCP tools with the server
func (s *Server) registerTools() {
	// Health check
	s.mcpServer.AddTool(
		mcp.NewTool("get_health",
			mcp.WithDescription("Check whether upstream session credentials are configured and which upstream host is in use"),
		),
		s.handleGetHealth,
	)

	// List devices
	s.mcpServer.AddTool(
		mcp.NewTool("list_devices",
			mcp.WithDescription("List registered devices (serial, type, family, name, online status)"),
		),
		s.handleListDevices,
	)

	// List endpoints
	s.mcpServer.AddTool(
		mcp.NewTool("list_endpoints",
			mcp.WithDescription("List smart-home endpoints with their resolved identifier sets and categories"),
		),
		s.handleListEndpoints,
	)

	// Get light state
	s.mcpServer.AddTool(
		mcp.NewTool("get_light_state",
			mcp.WithDescription("Get the current state of a light: power, brightness, color. With no device given, the only light is auto-detected."),
			mcp.WithString("device",
				mcp.Description("Light name, entity ID or appliance ID (optional)"),
			),
		),
		s.handleGetLightState,
	)

	// Turn on light
	s.mcpServer.AddTool(
		mcp.NewTool("turn_on_light",
			mcp.WithDescription("Turn a light on. With no device given, the only light is auto-detected."),
			mcp.WithString("device",
				mcp.Description("Light name, entity ID or appliance ID (optional)"),
			),
		),
		s.handleTurnOnLight,
	)

	// Turn off light
	s.mcpServer.AddTool(
		mcp.NewTool("turn_off_light",
			mcp.WithDescription("Turn a light off. With no device given, the only light is auto-detected."),
			mcp.WithString("device",
				mcp.Description("Light name, entity ID or appliance ID (optional)"),
			),
		),
		s.handleTurnOffLight,
	)

	// Set brightness
	s.mcpServer.AddTool(
		mcp.NewTool("set_brightness",
			mcp.WithDescription("Set a light's brightness level"),
			mcp.WithNumber("level",
				mcp.Required(),
				mcp.Description("Brightness level 0-100"),
			),
			mcp.WithString("device",
				mcp.Description("Light name, entity ID or appliance ID (optional)"),
			),
		),
		s.handleSetBrightness,
	)

	// Set color
	s.mcpServer.AddTool(
		mcp.NewTool("set_color",
			mcp.WithDescription("Set a light's color by name or color temperature in kelvin. Pass exactly one of name or kelvin."),
			mcp.WithString("name",
				mcp.Description("Color name, e.g. warm_white, red"),
			),
			mcp.WithNumber("kelvin",
				mcp.Description("Color temperature in kelvin (1000-10000)"),
			),
			mcp.WithString("device",
				mcp.Description("Light name, entity ID or appliance ID (optional)"),
			),
		),
		s.handleSetColor,
	)

	// Get volume
	s.mcpServer.AddTool(
		mcp.NewTool("get_volume",
			mcp.WithDescription("Get a speaker's current volume. With no serial given, the first Echo-class device is used."),
			mcp.WithString("serial",
				mcp.Description("Device serial number (optional)"),
			),
			mcp.WithString("type",
				mcp.Description("Device type (optional, paired with serial)"),
			),
		),
		s.handleGetVolume,
	)

	// Set volume
	s.mcpServer.AddTool(
		mcp.NewTool("set_volume",
			mcp.WithDescription("Set a speaker's volume to an absolute level"),
			mcp.WithNumber("level",
				mcp.Required(),
				mcp.Description("Volume level 0-100"),
			),
			mcp.WithString("serial",
				mcp.Description("Device serial number (optional)"),
			),
			mcp.WithString("type",
				mcp.Description("Device type (optional, paired with serial)"),
			),
		),
		s.handleSetVolume,
	)

	// Adjust volume
	s.mcpServer.AddTool(
		mcp.NewTool("adjust_volume",
			mcp.WithDescription("Shift a speaker's volume up or down by a delta"),
			mcp.WithNumber("delta",
				mcp.Required(),
				mcp.Description("Signed volume change, e.g. -10 or 5"),
			),
			mcp.WithString("serial",
				mcp.Description("Device serial number (optional)"),
			),
			mcp.WithString("type",
				mcp.Description("Device type (optional, paired with serial)"),
			),
		),
		s.handleAdjustVolume,
	)

	// Get DND
	s.mcpServer.AddTool(
		mcp.NewTool("get_dnd",
			mcp.WithDescription("Get a device's do-not-disturb state"),
			mcp.WithString("serial",
				mcp.Description("Device serial number (optional)"),
			),
			mcp.WithString("type",
				mcp.Description("Device type (optional, paired with serial)"),
			),
		),
		s.handleGetDND,
	)

	// Set DND
	s.mcpServer.AddTool(
		mcp.NewTool("set_dnd",
			mcp.WithDescription("Enable or disable do-not-disturb on a device"),
			mcp.WithBoolean("enabled",
				mcp.Required(),
				mcp.Description("Desired do-not-disturb state"),
			),
			mcp.WithString("serial",
				mcp.Description("Device serial number (optional)"),
			),
			mcp.WithString("type",
				mcp.Description("Device type (optional, paired with serial)"),
			),
		),
		s.handleSetDND,
	)

	// Send announcement
	s.mcpServer.AddTool(
		mcp.NewTool("send_announcement",
			mcp.WithDescription("Broadcast a spoken announcement to all devices. Outside the daytime window the announcement only goes out if at least one light is on."),
			mcp.WithString("message",
				mcp.Required(),
				mcp.Description("Announcement text, up to 145 characters"),
			),
			mcp.WithString("sender",
				mcp.Description("Sender name shown with the announcement, up to 40 characters (optional)"),
			),
		),
		s.handleSendAnnouncement,
	)

	// Now playing
	s.mcpServer.AddTool(
		mcp.NewTool("get_now_playing",
			mcp.WithDescription("Get the current media session of a device: playback state, track, artist, volume"),
			mcp.WithString("serial",
				mcp.Description("Device serial number (optional)"),
			),
			mcp.WithString("type",
				mcp.Description("Device type (optional, paired with serial)"),
			),
		),
		s.handleGetNowPlaying,
	)
}
