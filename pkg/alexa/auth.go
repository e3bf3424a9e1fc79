package alexa

import "os"

// userAgent is the fixed client identification string the upstream expects.
// It mimics the companion app; other values get rejected by some endpoints.
const userAgent = "AppleWebKit PitanguiBridge/2.2.556420.0-[HARDWARE=iPhone14_7][SOFTWARE=16.6]"

// Environment variables carrying the session credentials.
const (
	EnvCookie = "ECHOBRIDGE_COOKIE"
	EnvCSRF   = "ECHOBRIDGE_CSRF"
)

// Credentials are the two opaque session tokens required by every call:
// the full session cookie blob and the anti-forgery token.
type Credentials struct {
	Cookie string
	CSRF   string
}

// Valid reports whether both tokens are present.
func (c Credentials) Valid() bool {
	return c.Cookie != "" && c.CSRF != ""
}

// CredentialsFromEnv reads the session credentials from the environment.
func CredentialsFromEnv() Credentials {
	return Credentials{
		Cookie: os.Getenv(EnvCookie),
		CSRF:   os.Getenv(EnvCSRF),
	}
}

// Headers builds the complete header map for an outbound call: the
// synthesized cookie (session blob plus the csrf flag), the anti-forgery
// header, the client identification string, and any extra headers.
// Pure and deterministic; credential presence is checked by the caller.
func Headers(creds Credentials, extra map[string]string) map[string]string {
	h := map[string]string{
		"Cookie":     creds.Cookie + "; csrf=" + creds.CSRF,
		"csrf":       creds.CSRF,
		"User-Agent": userAgent,
	}
	for k, v := range extra {
		h[k] = v
	}
	return h
}
