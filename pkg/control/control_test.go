package control

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/beacondev/echobridge/pkg/alexa"
	"github.com/beacondev/echobridge/pkg/cache"
	"github.com/beacondev/echobridge/pkg/device"
	"github.com/beacondev/echobridge/pkg/resolve"
)

// capture records the upstream writes a test provoked.
type capture struct {
	controlBodies  []map[string]any // phoenix PUT bodies
	volumeBodies   []map[string]any // audio volume PUT bodies
	announceBodies []map[string]any
	graphqlVars    []map[string]any // power mutation variables
}

// fixture is a fake upstream with one light and one Echo. lightOn controls
// the power state served for the light; currentVolume the Echo's volume.
func fixture(t *testing.T, lightOn bool, currentVolume int) (*Dispatcher, *capture) {
	t.Helper()
	rec := &capture{}

	power := "OFF"
	if lightOn {
		power = "ON"
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/nexus/v1/graphql", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Query     string         `json:"query"`
			Variables map[string]any `json:"variables"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Variables != nil {
			rec.graphqlVars = append(rec.graphqlVars, req.Variables)
			fmt.Fprint(w, `{"data":{"setEndpointFeatures":{"endpoints":[{"id":"x"}],"errors":[]}}}`)
			return
		}
		fmt.Fprint(w, `{"data":{"endpoints":{"items":[{
			"id":"amzn1.alexa.endpoint.light-1",
			"friendlyName":{"value":{"text":"Desk Light"}},
			"displayCategories":{"primary":{"value":"LIGHT"},"all":[{"value":"LIGHT"}]},
			"legacyIdentifiers":{"chrsIdentifier":{"entityId":"light-1"}},
			"legacyAppliance":{"applianceId":"app-light-1","isReachable":true}
		}]}}}`)
	})
	mux.HandleFunc("/api/phoenix/state", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			var body map[string]any
			_ = json.NewDecoder(r.Body).Decode(&body)
			rec.controlBodies = append(rec.controlBodies, body)
			fmt.Fprint(w, `{}`)
			return
		}
		record := fmt.Sprintf(`{"namespace":"Alexa.PowerController","name":"powerState","value":%q}`, power)
		quoted, _ := json.Marshal(record)
		fmt.Fprintf(w, `{"deviceStates":[{"entity":{"entityId":"light-1"},"capabilityStates":[%s]}]}`, quoted)
	})
	mux.HandleFunc("/api/devices-v2/device", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"devices":[
			{"serialNumber":"ECHO-1","deviceType":"A2","deviceFamily":"ECHO","accountName":"Kitchen Echo","online":true}
		]}`)
	})
	mux.HandleFunc("/api/devices/deviceType/dsn/audio/v1/allDeviceVolumes", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"volumes":[{"dsn":"ECHO-1","deviceType":"A2","speakerVolume":%d,"speakerMuted":false}]}`, currentVolume)
	})
	mux.HandleFunc("/api/devices/A2/ECHO-1/audio/v1/volume", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		rec.volumeBodies = append(rec.volumeBodies, body)
		fmt.Fprint(w, `{}`)
	})
	mux.HandleFunc("/api/household", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"accounts":[{"id":"acct-1","fullName":"Test User","signedInUser":true}]}`)
	})
	mux.HandleFunc("/api/users/acct-1/announcements", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		rec.announceBodies = append(rec.announceBodies, body)
		fmt.Fprint(w, `{}`)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client := alexa.NewClient(srv.URL, alexa.Credentials{Cookie: "session=abc", CSRF: "token"}, cache.New(0))
	resolver := resolve.New(client, resolve.AutoSelectFirst)
	d := New(client, resolver, Config{Sender: "Home"})
	return d, rec
}

// at pins the dispatcher clock to the given UTC hour.
func at(d *Dispatcher, hour int) {
	d.now = func() time.Time {
		return time.Date(2025, 6, 1, hour, 30, 0, 0, time.UTC)
	}
}

func TestSetVolume_ComputesDeltaFromCurrent(t *testing.T) {
	d, rec := fixture(t, false, 55)

	v, err := d.SetVolume(context.Background(), "", "", 40)
	if err != nil {
		t.Fatal(err)
	}
	if v.Volume != 40 {
		t.Errorf("reported volume = %d, want 40", v.Volume)
	}

	if len(rec.volumeBodies) != 1 {
		t.Fatalf("expected 1 volume write, got %d", len(rec.volumeBodies))
	}
	body := rec.volumeBodies[0]
	if body["volumeAdjustment"].(float64) != -15 {
		t.Errorf("volumeAdjustment = %v, want -15", body["volumeAdjustment"])
	}
	if body["speakerVolume"].(float64) != 55 {
		t.Errorf("speakerVolume hint = %v, want 55", body["speakerVolume"])
	}
}

func TestSetVolume_NoWriteWhenAlreadyAtTarget(t *testing.T) {
	d, rec := fixture(t, false, 40)

	if _, err := d.SetVolume(context.Background(), "", "", 40); err != nil {
		t.Fatal(err)
	}
	if len(rec.volumeBodies) != 0 {
		t.Errorf("expected no volume write for zero delta, got %d", len(rec.volumeBodies))
	}
}

func TestAdjustVolume_CarriesCurrentAsHint(t *testing.T) {
	d, rec := fixture(t, false, 30)

	v, err := d.AdjustVolume(context.Background(), "", "", 10)
	if err != nil {
		t.Fatal(err)
	}
	if v.Volume != 40 {
		t.Errorf("reported volume = %d, want 40", v.Volume)
	}
	body := rec.volumeBodies[0]
	if body["volumeAdjustment"].(float64) != 10 || body["speakerVolume"].(float64) != 30 {
		t.Errorf("unexpected adjust body: %v", body)
	}
}

func TestAnnounce_NightSuppressedWhenLightsOff(t *testing.T) {
	d, rec := fixture(t, false, 50)
	at(d, 23)

	err := d.Announce(context.Background(), "", "dinner is ready")
	if !errors.Is(err, device.ErrSuppressed) {
		t.Fatalf("expected ErrSuppressed, got %v", err)
	}
	if len(rec.announceBodies) != 0 {
		t.Error("suppressed announcement must not reach the upstream")
	}
}

func TestAnnounce_NightAllowedWhenLightOn(t *testing.T) {
	d, rec := fixture(t, true, 50)
	at(d, 23)

	if err := d.Announce(context.Background(), "", "dinner is ready"); err != nil {
		t.Fatal(err)
	}
	if len(rec.announceBodies) != 1 {
		t.Fatalf("expected 1 announcement, got %d", len(rec.announceBodies))
	}
	if rec.announceBodies[0]["sender"] != "Home" {
		t.Errorf("sender = %v, want profile default", rec.announceBodies[0]["sender"])
	}
}

func TestAnnounce_DaytimeSkipsLightCheck(t *testing.T) {
	d, rec := fixture(t, false, 50)
	at(d, 12)

	if err := d.Announce(context.Background(), "Kitchen", "lunch"); err != nil {
		t.Fatal(err)
	}
	if len(rec.announceBodies) != 1 {
		t.Fatal("expected announcement during day window")
	}
	if rec.announceBodies[0]["sender"] != "Kitchen" {
		t.Errorf("explicit sender should win, got %v", rec.announceBodies[0]["sender"])
	}
}

func TestAnnounce_LengthLimits(t *testing.T) {
	d, _ := fixture(t, false, 50)
	at(d, 12)

	longSender := make([]byte, MaxSenderLen+1)
	for i := range longSender {
		longSender[i] = 'a'
	}
	if err := d.Announce(context.Background(), string(longSender), "hi"); !errors.Is(err, ErrSenderTooLong) {
		t.Errorf("expected ErrSenderTooLong, got %v", err)
	}

	longMessage := make([]byte, MaxMessageLen+1)
	for i := range longMessage {
		longMessage[i] = 'a'
	}
	if err := d.Announce(context.Background(), "Home", string(longMessage)); !errors.Is(err, ErrMessageTooLong) {
		t.Errorf("expected ErrMessageTooLong, got %v", err)
	}
}

func TestSetBrightness_FractionalString(t *testing.T) {
	d, rec := fixture(t, false, 50)

	if _, err := d.SetBrightness(context.Background(), "", 40); err != nil {
		t.Fatal(err)
	}

	if len(rec.controlBodies) != 1 {
		t.Fatalf("expected 1 control write, got %d", len(rec.controlBodies))
	}
	reqs := rec.controlBodies[0]["controlRequests"].([]any)
	req := reqs[0].(map[string]any)
	if req["entityId"] != "app-light-1" {
		t.Errorf("control write keyed by %v, want appliance ID", req["entityId"])
	}
	params := req["parameters"].(map[string]any)
	if params["brightness"] != "0.40" {
		t.Errorf("brightness = %v, want fractional string \"0.40\"", params["brightness"])
	}
}

func TestSetColor_NameAndKelvinAreExclusive(t *testing.T) {
	d, _ := fixture(t, false, 50)

	if _, err := d.SetColor(context.Background(), "", "warm_white", 2700); err == nil {
		t.Error("expected error when both name and kelvin given")
	}
	if _, err := d.SetColor(context.Background(), "", "", 0); err == nil {
		t.Error("expected error when neither name nor kelvin given")
	}
}

func TestSetColor_KelvinParameter(t *testing.T) {
	d, rec := fixture(t, false, 50)

	if _, err := d.SetColor(context.Background(), "", "", 2700); err != nil {
		t.Fatal(err)
	}
	reqs := rec.controlBodies[0]["controlRequests"].([]any)
	params := reqs[0].(map[string]any)["parameters"].(map[string]any)
	if params["action"] != "setColorTemperature" {
		t.Errorf("action = %v", params["action"])
	}
	if _, hasName := params["colorName"]; hasName {
		t.Error("kelvin write must not carry a color name")
	}
}

func TestSetLightPower_UsesEndpointID(t *testing.T) {
	d, rec := fixture(t, false, 50)

	if _, err := d.SetLightPower(context.Background(), "", true); err != nil {
		t.Fatal(err)
	}
	if len(rec.graphqlVars) != 1 {
		t.Fatalf("expected 1 mutation, got %d", len(rec.graphqlVars))
	}
	vars := rec.graphqlVars[0]
	if vars["endpointId"] != "amzn1.alexa.endpoint.light-1" {
		t.Errorf("endpointId = %v, want prefixed entity id", vars["endpointId"])
	}
	if vars["action"] != "turnOn" {
		t.Errorf("action = %v, want turnOn", vars["action"])
	}
}
