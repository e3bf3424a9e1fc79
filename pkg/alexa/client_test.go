package alexa

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/beacondev/echobridge/pkg/cache"
	"github.com/beacondev/echobridge/pkg/device"
)

var testCreds = Credentials{Cookie: "session-token=abc; ubid=def", CSRF: "12345"}

func TestHeaders_CookieCarriesCSRF(t *testing.T) {
	h := Headers(testCreds, nil)

	want := "session-token=abc; ubid=def; csrf=12345"
	if h["Cookie"] != want {
		t.Errorf("Cookie = %q, want %q", h["Cookie"], want)
	}
	if h["csrf"] != "12345" {
		t.Errorf("csrf header = %q, want %q", h["csrf"], "12345")
	}
	if h["User-Agent"] == "" {
		t.Error("User-Agent header missing")
	}
}

func TestHeaders_ExtraOverrides(t *testing.T) {
	h := Headers(testCreds, map[string]string{"Accept": "application/json"})

	if h["Accept"] != "application/json" {
		t.Errorf("Accept = %q", h["Accept"])
	}
}

func TestDo_MissingCredentials(t *testing.T) {
	c := NewClient("http://unused", Credentials{}, nil)

	_, err := c.Household(context.Background())
	if !errors.Is(err, device.ErrCredentialsMissing) {
		t.Errorf("expected ErrCredentialsMissing, got %v", err)
	}
}

func TestDo_SendsAuthHeaders(t *testing.T) {
	var gotCookie, gotCSRF string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCookie = r.Header.Get("Cookie")
		gotCSRF = r.Header.Get("csrf")
		_, _ = w.Write([]byte(`{"accounts":[]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, testCreds, nil)
	_, _ = c.Household(context.Background())

	if gotCookie != "session-token=abc; ubid=def; csrf=12345" {
		t.Errorf("upstream saw Cookie %q", gotCookie)
	}
	if gotCSRF != "12345" {
		t.Errorf("upstream saw csrf %q", gotCSRF)
	}
}

func TestDo_UpstreamErrorCarriesStatusAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("session expired"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, testCreds, nil)
	_, err := c.Devices(context.Background())

	var uerr *UpstreamError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected *UpstreamError, got %T: %v", err, err)
	}
	if uerr.StatusCode != http.StatusUnauthorized {
		t.Errorf("StatusCode = %d, want 401", uerr.StatusCode)
	}
	if uerr.Body != "session expired" {
		t.Errorf("Body = %q", uerr.Body)
	}
}

func TestGraphQL_ErrorsSurfaceAsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":null,"errors":[{"message":"throttled"}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, testCreds, nil)
	_, err := c.Endpoints(context.Background())

	var uerr *UpstreamError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected *UpstreamError, got %T: %v", err, err)
	}
	if uerr.Body != "throttled" {
		t.Errorf("Body = %q, want %q", uerr.Body, "throttled")
	}
}

func TestDiscovery_ServedFromCacheWithinTTL(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write([]byte(`{"devices":[{"accountName":"Kitchen","serialNumber":"S1","deviceType":"T1","deviceFamily":"ECHO","online":true}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, testCreds, cache.New(5*time.Minute))
	ctx := context.Background()

	first, err := c.Devices(ctx)
	if err != nil {
		t.Fatal(err)
	}
	second, err := c.Devices(ctx)
	if err != nil {
		t.Fatal(err)
	}

	if calls != 1 {
		t.Errorf("expected 1 upstream call, got %d", calls)
	}
	if len(first) != 1 || len(second) != 1 || second[0].Serial != "S1" {
		t.Errorf("unexpected cached result: %+v", second)
	}
}

func TestCustomerID_PrefersSignedInUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"accounts":[
			{"id":"acc-1","fullName":"First","signedInUser":false},
			{"id":"acc-2","fullName":"Second","signedInUser":true}
		]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, testCreds, nil)
	id, err := c.CustomerID(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if id != "acc-2" {
		t.Errorf("CustomerID = %q, want acc-2", id)
	}
}

func TestCustomerID_EmptyAccountList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"accounts":[]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, testCreds, nil)
	_, err := c.CustomerID(context.Background())

	var uerr *UpstreamError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected *UpstreamError, got %v", err)
	}
}

func TestIsEchoFamily(t *testing.T) {
	cases := []struct {
		family string
		dtype  string
		want   bool
	}{
		{"ECHO", "A2M35JJZWCQOMZ", true},
		{"ROOK", "X", true},
		{"KNIGHT", "X", true},
		{"TABLET", "X", false},
		{"", "AB72C64C86AW2-KNIGHT", true},
	}
	for _, tc := range cases {
		e := device.Entry{Family: tc.family, Type: tc.dtype}
		if got := IsEchoFamily(e); got != tc.want {
			t.Errorf("IsEchoFamily(%q,%q) = %v, want %v", tc.family, tc.dtype, got, tc.want)
		}
	}
}

func TestIsAudioCapable_ByCapability(t *testing.T) {
	e := device.Entry{Family: "THIRD_PARTY", Capabilities: []string{"VOLUME_SETTING"}}
	if !IsAudioCapable(e) {
		t.Error("VOLUME_SETTING capability should mark entry audio-capable")
	}

	e = device.Entry{Family: "THIRD_PARTY"}
	if IsAudioCapable(e) {
		t.Error("entry with no audio capability and non-Echo family should not be audio-capable")
	}
}
