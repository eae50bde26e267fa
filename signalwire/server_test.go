package signalwire

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSpace   = "example"
	testProject = "p-123"
	testAPIKey  = "PTkey"
)

// newTestClient starts a fake SignalWire space with the given routes and
// returns a client pointed at it. Every request without a bearer token must
// carry the test credentials.
func newTestClient(t *testing.T, routes func(r chi.Router)) (*Client, *httptest.Server) {
	t.Helper()

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if !strings.HasPrefix(req.Header.Get("Authorization"), "Bearer ") {
				user, pass, ok := req.BasicAuth()
				assert.True(t, ok, "basic auth missing on %s %s", req.Method, req.URL.Path)
				assert.Equal(t, testProject, user)
				assert.Equal(t, testAPIKey, pass)
			}
			assert.NotEmpty(t, req.Header.Get("X-Request-Id"))
			next.ServeHTTP(w, req)
		})
	})
	routes(r)

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	client, err := NewClient(testSpace, testProject, testAPIKey, zerolog.Nop(), WithBaseURL(server.URL))
	require.NoError(t, err)
	return client, server
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func decodeJSONBody(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.NewDecoder(r.Body).Decode(&m))
	return m
}

const smsResponseJSON = `{
	"account_sid": "p-123",
	"api_version": "2010-04-01",
	"sid": "SM123",
	"from": "+15551234567",
	"to": "+15559876543",
	"body": "hi",
	"status": "queued",
	"direction": "outbound-api",
	"num_segments": 1,
	"num_media": 0,
	"price": null,
	"price_unit": "USD",
	"error_code": null,
	"error_message": null,
	"date_created": "Mon, 13 Jan 2025 10:00:00 +0000",
	"date_updated": "Mon, 13 Jan 2025 10:00:00 +0000",
	"date_sent": null,
	"uri": "/api/laml/2010-04-01/Accounts/p-123/Messages/SM123"
}`

const subprojectJSON = `{
	"sid": "AC42",
	"friendly_name": "Team A",
	"status": "active",
	"type": "Full",
	"owner_account_sid": "p-123",
	"date_created": "Mon, 13 Jan 2025 10:00:00 +0000",
	"date_updated": "Mon, 13 Jan 2025 10:00:00 +0000",
	"uri": "/api/laml/2010-04-01/Accounts/AC42"
}`

const ownedNumberJSON = `{
	"id": "pn-1",
	"number": "+15551230000",
	"name": "Support line",
	"call_handler": "relay_context",
	"call_relay_context": "office",
	"message_handler": null,
	"capabilities": ["voice", "sms"],
	"number_type": "toll-free",
	"e911_address_id": null,
	"created_at": "2025-01-13T10:00:00Z",
	"updated_at": "2025-01-13T10:00:00Z",
	"next_billed_at": null
}`

// relayLinksJSON is the minimal pagination block of a relay REST listing.
const relayLinksJSON = `"links": {
	"self": "https://example.signalwire.com/api/relay/rest/phone_numbers",
	"first": "https://example.signalwire.com/api/relay/rest/phone_numbers"
}`
