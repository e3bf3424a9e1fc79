package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/beacondev/echobridge/pkg/alexa"
	"github.com/beacondev/echobridge/pkg/cache"
	"github.com/beacondev/echobridge/pkg/control"
	"github.com/beacondev/echobridge/pkg/resolve"
	"github.com/beacondev/echobridge/pkg/schema"
)

func newTestRouter(t *testing.T, upstream http.Handler, creds alexa.Credentials) *Router {
	t.Helper()

	baseURL := ""
	if upstream != nil {
		srv := httptest.NewServer(upstream)
		t.Cleanup(srv.Close)
		baseURL = srv.URL
	}

	client := alexa.NewClient(baseURL, creds, cache.New(cache.DefaultTTL))
	resolver := resolve.New(client, resolve.AutoSelectFirst)
	dispatcher := control.New(client, resolver, control.Config{})

	return NewRouter(dispatcher, schema.NewValidator(), nil)
}

func TestHealth_DegradedWithoutCredentials(t *testing.T) {
	router := newTestRouter(t, nil, alexa.Credentials{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.Engine().ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"credentials":"missing"`) {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestHealth_HealthyWithCredentials(t *testing.T) {
	router := newTestRouter(t, nil, alexa.Credentials{Cookie: "c", CSRF: "x"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	router.Engine().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestHealth_SetsRequestID(t *testing.T) {
	router := newTestRouter(t, nil, alexa.Credentials{Cookie: "c", CSRF: "x"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.Engine().ServeHTTP(w, req)

	if w.Header().Get(RequestIDHeader) == "" {
		t.Error("response missing request ID header")
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "caller-id-1")
	router.Engine().ServeHTTP(w, req)

	if got := w.Header().Get(RequestIDHeader); got != "caller-id-1" {
		t.Errorf("request ID = %q, want caller-supplied value", got)
	}
}

func TestSetPower_MissingBody(t *testing.T) {
	router := newTestRouter(t, nil, alexa.Credentials{Cookie: "c", CSRF: "x"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/lights/power", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.Engine().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestSetBrightness_LevelOutOfRange(t *testing.T) {
	router := newTestRouter(t, nil, alexa.Credentials{Cookie: "c", CSRF: "x"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/lights/brightness", strings.NewReader(`{"level":150}`))
	req.Header.Set("Content-Type", "application/json")
	router.Engine().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "validation_error") {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestSetColor_BothNameAndKelvin(t *testing.T) {
	router := newTestRouter(t, nil, alexa.Credentials{Cookie: "c", CSRF: "x"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/lights/color",
		strings.NewReader(`{"name":"red","kelvin":2700}`))
	req.Header.Set("Content-Type", "application/json")
	router.Engine().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestPutVolume_LevelAndDelta(t *testing.T) {
	router := newTestRouter(t, nil, alexa.Credentials{Cookie: "c", CSRF: "x"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/volume",
		strings.NewReader(`{"level":40,"delta":-10}`))
	req.Header.Set("Content-Type", "application/json")
	router.Engine().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestListDevices_PassesThroughUpstream(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/devices-v2/device", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"devices":[
			{"accountName":"Kitchen","serialNumber":"S1","deviceType":"T1","deviceFamily":"ECHO","online":true}
		]}`))
	})

	router := newTestRouter(t, mux, alexa.Credentials{Cookie: "c", CSRF: "x"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/devices", nil)
	router.Engine().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"serial":"S1"`) {
		t.Errorf("body = %s", w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"count":1`) {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestListDevices_UpstreamFailureIs502(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/devices-v2/device", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("upstream exploded"))
	})

	router := newTestRouter(t, mux, alexa.Credentials{Cookie: "c", CSRF: "x"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/devices", nil)
	router.Engine().ServeHTTP(w, req)

	if w.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", w.Code)
	}
	if !strings.Contains(w.Body.String(), "upstream exploded") {
		t.Errorf("body should carry the upstream body snippet: %s", w.Body.String())
	}
}
