package alexa

// Account is one entry of the household account list.
type Account struct {
	ID           string `json:"id"`
	FullName     string `json:"fullName"`
	Email        string `json:"email,omitempty"`
	SignedInUser bool   `json:"signedInUser"`
}

type householdResponse struct {
	Accounts []Account `json:"accounts"`
}

// rawDevice is one row of the flat device-list endpoint.
type rawDevice struct {
	AccountName  string   `json:"accountName"`
	SerialNumber string   `json:"serialNumber"`
	DeviceType   string   `json:"deviceType"`
	DeviceFamily string   `json:"deviceFamily"`
	Online       bool     `json:"online"`
	Capabilities []string `json:"capabilities"`
}

type devicesResponse struct {
	Devices []rawDevice `json:"devices"`
}

// Endpoint is one node of the rich endpoint graph. It carries every
// identifier encoding for the same physical device simultaneously; which one
// a caller needs depends on the downstream call it is about to make.
type Endpoint struct {
	ID           string `json:"id"` // resource ID, endpoint-namespace form
	FriendlyName struct {
		Value struct {
			Text string `json:"text"`
		} `json:"value"`
	} `json:"friendlyName"`
	DisplayCategories struct {
		Primary struct {
			Value string `json:"value"`
		} `json:"primary"`
		All []struct {
			Value string `json:"value"`
		} `json:"all"`
	} `json:"displayCategories"`
	LegacyIdentifiers struct {
		ChrsIdentifier struct {
			EntityID string `json:"entityId"`
		} `json:"chrsIdentifier"`
		DmsIdentifier struct {
			DeviceSerialNumber struct {
				Value struct {
					Text string `json:"text"`
				} `json:"value"`
			} `json:"deviceSerialNumber"`
			DeviceType struct {
				Value struct {
					Text string `json:"text"`
				} `json:"value"`
			} `json:"deviceType"`
		} `json:"dmsIdentifier"`
	} `json:"legacyIdentifiers"`
	LegacyAppliance struct {
		ApplianceID        string   `json:"applianceId"`
		EntityID           string   `json:"entityId"`
		MergedApplianceIDs []string `json:"mergedApplianceIds"`
		ConnectedVia       string   `json:"connectedVia"`
		Reachable          bool     `json:"isReachable"`
		CapabilityNames    []string `json:"capabilityNames"`
	} `json:"legacyAppliance"`
}

type endpointsData struct {
	Endpoints struct {
		Items []Endpoint `json:"items"`
	} `json:"endpoints"`
}

// Favorite is one entry of the favorites list.
type Favorite struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Type        string `json:"type"`
	EntityID    string `json:"entityId,omitempty"`
}

type favoritesData struct {
	Favorites struct {
		Items []Favorite `json:"items"`
	} `json:"favorites"`
}
