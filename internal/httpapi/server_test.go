package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/MarkoPoloResearchLab/kolofap/internal/store/gormstore"
	"github.com/MarkoPoloResearchLab/kolofap/pkg/ledger"
	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/tyemirov/tauth/pkg/sessionvalidator"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type apiFixture struct {
	cfg     Config
	service *ledger.Service
	metrics *Metrics
	server  *httptest.Server
}

func newAPIFixture(test *testing.T, cfg Config) *apiFixture {
	test.Helper()
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", filepath.Join(test.TempDir(), "kolofap.db"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		test.Fatalf("sqlite open failed: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		test.Fatalf("sql db handle failed: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := gormstore.AutoMigrate(db); err != nil {
		test.Fatalf("automigrate failed: %v", err)
	}
	service, err := ledger.NewService(gormstore.New(db), func() time.Time { return time.Now().UTC() })
	if err != nil {
		test.Fatalf("ledger service init failed: %v", err)
	}

	if cfg.SessionSigningKey == "" {
		cfg.SessionSigningKey = "secret-key"
	}
	if err := cfg.Validate(); err != nil {
		test.Fatalf("config invalid: %v", err)
	}
	validator, err := NewSessionValidator(cfg)
	if err != nil {
		test.Fatalf("validator init failed: %v", err)
	}
	metrics := NewMetrics()
	router, err := NewRouter(cfg, service, validator, metrics, zap.NewNop())
	if err != nil {
		test.Fatalf("router init failed: %v", err)
	}
	server := httptest.NewServer(router)
	test.Cleanup(func() {
		server.Close()
		_ = sqlDB.Close()
	})
	return &apiFixture{cfg: cfg, service: service, metrics: metrics, server: server}
}

func (fixture *apiFixture) sessionCookie(test *testing.T, userID string) *http.Cookie {
	test.Helper()
	claims := &sessionvalidator.Claims{
		UserID:          userID,
		UserEmail:       userID + "@example.com",
		UserDisplayName: "Player " + userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    fixture.cfg.SessionIssuer,
			IssuedAt:  jwt.NewNumericDate(time.Now().UTC()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(fixture.cfg.SessionSigningKey))
	if err != nil {
		test.Fatalf("token signing failed: %v", err)
	}
	return &http.Cookie{Name: fixture.cfg.SessionCookieName, Value: signed}
}

type apiResponse struct {
	status int
	body   map[string]any
	raw    string
}

func (response apiResponse) errorCode() string {
	envelope, _ := response.body["error"].(map[string]any)
	code, _ := envelope["code"].(string)
	return code
}

func (response apiResponse) errorMessage() string {
	envelope, _ := response.body["error"].(map[string]any)
	message, _ := envelope["message"].(string)
	return message
}

func (fixture *apiFixture) do(test *testing.T, method string, path string, cookie *http.Cookie, payload map[string]any, headers ...string) apiResponse {
	test.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			test.Fatalf("marshal failed: %v", err)
		}
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, fixture.server.URL+path, body)
	if err != nil {
		test.Fatalf("request build failed: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for index := 0; index+1 < len(headers); index += 2 {
		req.Header.Set(headers[index], headers[index+1])
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := fixture.server.Client().Do(req)
	if err != nil {
		test.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		test.Fatalf("read body failed: %v", err)
	}
	response := apiResponse{status: resp.StatusCode, raw: string(raw)}
	_ = json.Unmarshal(raw, &response.body)
	return response
}

func (fixture *apiFixture) mustEnroll(test *testing.T, cookie *http.Cookie, gamertag string) string {
	test.Helper()
	response := fixture.do(test, http.MethodPost, "/api/enroll", cookie, map[string]any{"gamertag": gamertag})
	if response.status != http.StatusCreated {
		test.Fatalf("enroll %s status=%d body=%s", gamertag, response.status, response.raw)
	}
	identity, _ := response.body["identity"].(map[string]any)
	identityID, _ := identity["id"].(string)
	if identityID == "" {
		test.Fatalf("enroll %s returned no id: %s", gamertag, response.raw)
	}
	return identityID
}

func (fixture *apiFixture) mustCredit(test *testing.T, rawID string, amount int64) {
	test.Helper()
	identityID, err := ledger.NewIdentityID(rawID)
	if err != nil {
		test.Fatalf("identity id: %v", err)
	}
	points, err := ledger.NewPoints(amount)
	if err != nil {
		test.Fatalf("points: %v", err)
	}
	if _, err := fixture.service.Credit(context.Background(), identityID, points); err != nil {
		test.Fatalf("credit failed: %v", err)
	}
}

func balanceOf(test *testing.T, response apiResponse) int64 {
	test.Helper()
	balance, ok := response.body["balance"].(float64)
	if !ok {
		test.Fatalf("response carries no balance: %s", response.raw)
	}
	return int64(balance)
}

func TestTransferAndHistory(test *testing.T) {
	fixture := newAPIFixture(test, Config{})
	aliceCookie := fixture.sessionCookie(test, "user-alice")
	bobCookie := fixture.sessionCookie(test, "user-bob")
	aliceID := fixture.mustEnroll(test, aliceCookie, "alice")
	fixture.mustEnroll(test, bobCookie, "bob")
	fixture.mustCredit(test, aliceID, 500)

	transfer := fixture.do(test, http.MethodPost, "/api/transfers", aliceCookie, map[string]any{
		"recipient": "@BOB",
		"amount":    120,
		"message":   "lunch",
		"metadata":  map[string]any{"source": "test"},
	})
	if transfer.status != http.StatusCreated {
		test.Fatalf("transfer status=%d body=%s", transfer.status, transfer.raw)
	}
	if balance := balanceOf(test, transfer); balance != 380 {
		test.Fatalf(errorMismatchMessage, 380, balance)
	}

	me := fixture.do(test, http.MethodGet, "/api/me", bobCookie, nil)
	if me.status != http.StatusOK || balanceOf(test, me) != 120 {
		test.Fatalf("bob profile status=%d body=%s", me.status, me.raw)
	}

	history := fixture.do(test, http.MethodGet, "/api/history?limit=500", bobCookie, nil)
	if history.status != http.StatusOK {
		test.Fatalf("history status=%d body=%s", history.status, history.raw)
	}
	transactions, _ := history.body["transactions"].([]any)
	if len(transactions) != 1 {
		test.Fatalf("expected one transaction, got %s", history.raw)
	}
	entry, _ := transactions[0].(map[string]any)
	counterparty, _ := entry["counterparty"].(map[string]any)
	if entry["direction"] != directionReceived || counterparty["gamertag"] != "alice" || entry["message"] != "lunch" {
		test.Fatalf("unexpected history entry: %v", entry)
	}
	metadata, _ := entry["metadata"].(map[string]any)
	if metadata["source"] != "test" {
		test.Fatalf("metadata lost: %v", entry["metadata"])
	}

	contacts := fixture.do(test, http.MethodGet, "/api/contacts", aliceCookie, nil)
	list, _ := contacts.body["contacts"].([]any)
	if contacts.status != http.StatusOK || len(list) != 1 {
		test.Fatalf("expected bob as alice's contact, got status=%d body=%s", contacts.status, contacts.raw)
	}

	if got := testutil.ToFloat64(fixture.metrics.ledgerOutcomes.WithLabelValues(operationTransfer, outcomeOK)); got != 1 {
		test.Fatalf(errorMismatchMessage, 1, got)
	}
}

func TestRequestLifecycle(test *testing.T) {
	fixture := newAPIFixture(test, Config{})
	aliceCookie := fixture.sessionCookie(test, "user-alice")
	bobCookie := fixture.sessionCookie(test, "user-bob")
	fixture.mustEnroll(test, aliceCookie, "alice")
	bobID := fixture.mustEnroll(test, bobCookie, "bob")
	fixture.mustCredit(test, bobID, 100)

	created := fixture.do(test, http.MethodPost, "/api/requests", aliceCookie, map[string]any{"target": "bob", "amount": 40, "message": "tickets"})
	if created.status != http.StatusCreated {
		test.Fatalf("create request status=%d body=%s", created.status, created.raw)
	}
	request, _ := created.body["request"].(map[string]any)
	requestID, _ := request["id"].(string)
	if request["role"] != string(ledger.RequestRoleOutgoing) || request["status"] != "pending" {
		test.Fatalf("unexpected request payload: %v", request)
	}

	incoming := fixture.do(test, http.MethodGet, "/api/requests?role=incoming&status=pending", bobCookie, nil)
	list, _ := incoming.body["requests"].([]any)
	if incoming.status != http.StatusOK || len(list) != 1 {
		test.Fatalf("expected one incoming request, got status=%d body=%s", incoming.status, incoming.raw)
	}

	forbidden := fixture.do(test, http.MethodPost, "/api/requests/"+requestID+"/accept", aliceCookie, nil)
	if forbidden.status != http.StatusForbidden || forbidden.errorCode() != "not_authorized" {
		test.Fatalf("requester accept status=%d body=%s", forbidden.status, forbidden.raw)
	}

	accepted := fixture.do(test, http.MethodPost, "/api/requests/"+requestID+"/accept", bobCookie, nil)
	if accepted.status != http.StatusOK || balanceOf(test, accepted) != 60 {
		test.Fatalf("accept status=%d body=%s", accepted.status, accepted.raw)
	}
	transaction, _ := accepted.body["transaction"].(map[string]any)
	if transaction["kind"] != "request" || transaction["request_id"] != requestID || transaction["direction"] != directionSent {
		test.Fatalf("unexpected transaction payload: %v", transaction)
	}

	declined := fixture.do(test, http.MethodPost, "/api/requests/"+requestID+"/decline", bobCookie, nil)
	if declined.status != http.StatusConflict || declined.errorCode() != "request_not_pending" {
		test.Fatalf("decline after accept status=%d body=%s", declined.status, declined.raw)
	}
}

func TestErrorResponses(test *testing.T) {
	fixture := newAPIFixture(test, Config{})
	aliceCookie := fixture.sessionCookie(test, "user-alice")
	strangerCookie := fixture.sessionCookie(test, "user-stranger")
	fixture.mustEnroll(test, aliceCookie, "alice")
	fixture.mustEnroll(test, fixture.sessionCookie(test, "user-bob"), "bob")

	testCases := []struct {
		name        string
		method      string
		path        string
		cookie      *http.Cookie
		payload     map[string]any
		headers     []string
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{name: "no session", method: http.MethodGet, path: "/api/me", wantStatus: http.StatusUnauthorized},
		{name: "not enrolled", method: http.MethodGet, path: "/api/me", cookie: strangerCookie, wantStatus: http.StatusNotFound, wantCode: "unknown_identity"},
		{name: "insufficient balance in french", method: http.MethodPost, path: "/api/transfers", cookie: aliceCookie, payload: map[string]any{"recipient": "bob", "amount": 10}, headers: []string{"Accept-Language", "fr-CA,fr;q=0.9"}, wantStatus: http.StatusUnprocessableEntity, wantCode: "insufficient_balance", wantMessage: "Vous n'avez pas assez de points."},
		{name: "self transfer", method: http.MethodPost, path: "/api/transfers", cookie: aliceCookie, payload: map[string]any{"recipient": "Alice", "amount": 10}, wantStatus: http.StatusBadRequest, wantCode: "self_transfer_not_allowed"},
		{name: "unknown recipient", method: http.MethodPost, path: "/api/transfers", cookie: aliceCookie, payload: map[string]any{"recipient": "nobody", "amount": 10}, wantStatus: http.StatusNotFound, wantCode: "recipient_not_found"},
		{name: "unknown recipient with zero amount", method: http.MethodPost, path: "/api/transfers", cookie: aliceCookie, payload: map[string]any{"recipient": "nobody", "amount": 0}, wantStatus: http.StatusNotFound, wantCode: "recipient_not_found"},
		{name: "unknown request target with negative amount", method: http.MethodPost, path: "/api/requests", cookie: aliceCookie, payload: map[string]any{"target": "nobody", "amount": -3}, wantStatus: http.StatusNotFound, wantCode: "recipient_not_found"},
		{name: "zero request amount", method: http.MethodPost, path: "/api/requests", cookie: aliceCookie, payload: map[string]any{"target": "bob", "amount": 0}, wantStatus: http.StatusBadRequest, wantCode: "invalid_amount"},
		{name: "zero amount", method: http.MethodPost, path: "/api/transfers", cookie: aliceCookie, payload: map[string]any{"recipient": "bob", "amount": 0}, wantStatus: http.StatusBadRequest, wantCode: "invalid_amount"},
		{name: "missing recipient", method: http.MethodPost, path: "/api/transfers", cookie: aliceCookie, payload: map[string]any{"amount": 5}, wantStatus: http.StatusBadRequest, wantCode: codeInvalidPayload},
		{name: "taken gamertag", method: http.MethodPost, path: "/api/enroll", cookie: strangerCookie, payload: map[string]any{"gamertag": "BOB"}, wantStatus: http.StatusConflict, wantCode: "duplicate_handle"},
		{name: "bad history cursor", method: http.MethodGet, path: "/api/history?cursor=!!", cookie: aliceCookie, wantStatus: http.StatusBadRequest, wantCode: "invalid_cursor"},
		{name: "bad history limit", method: http.MethodGet, path: "/api/history?limit=-1", cookie: aliceCookie, wantStatus: http.StatusBadRequest, wantCode: codeInvalidPayload},
		{name: "bad role filter", method: http.MethodGet, path: "/api/requests?role=sideways", cookie: aliceCookie, wantStatus: http.StatusBadRequest, wantCode: "invalid_status"},
		{name: "unknown gamertag lookup", method: http.MethodGet, path: "/api/identities/ghost", cookie: aliceCookie, wantStatus: http.StatusNotFound, wantCode: "unknown_gamertag"},
	}
	for _, testCase := range testCases {
		test.Run(testCase.name, func(test *testing.T) {
			response := fixture.do(test, testCase.method, testCase.path, testCase.cookie, testCase.payload, testCase.headers...)
			if response.status != testCase.wantStatus {
				test.Fatalf("status=%d body=%s", response.status, response.raw)
			}
			if testCase.wantCode != "" && response.errorCode() != testCase.wantCode {
				test.Fatalf(errorMismatchMessage, testCase.wantCode, response.errorCode())
			}
			if testCase.wantMessage != "" && response.errorMessage() != testCase.wantMessage {
				test.Fatalf(errorMismatchMessage, testCase.wantMessage, response.errorMessage())
			}
		})
	}

	if got := testutil.ToFloat64(fixture.metrics.ledgerOutcomes.WithLabelValues(operationTransfer, "insufficient_balance")); got != 1 {
		test.Fatalf(errorMismatchMessage, 1, got)
	}
}

func TestRenameAndContacts(test *testing.T) {
	fixture := newAPIFixture(test, Config{})
	aliceCookie := fixture.sessionCookie(test, "user-alice")
	fixture.mustEnroll(test, aliceCookie, "alice")
	fixture.mustEnroll(test, fixture.sessionCookie(test, "user-bob"), "bob")

	renamed := fixture.do(test, http.MethodPatch, "/api/me/gamertag", aliceCookie, map[string]any{"gamertag": "alice.v2"})
	identity, _ := renamed.body["identity"].(map[string]any)
	if renamed.status != http.StatusOK || identity["gamertag"] != "alice.v2" {
		test.Fatalf("rename status=%d body=%s", renamed.status, renamed.raw)
	}

	resolved := fixture.do(test, http.MethodGet, "/api/identities/ALICE.V2", aliceCookie, nil)
	public, _ := resolved.body["identity"].(map[string]any)
	if resolved.status != http.StatusOK || public["gamertag"] != "alice.v2" {
		test.Fatalf("resolve status=%d body=%s", resolved.status, resolved.raw)
	}
	if _, exposed := public["id"]; exposed {
		test.Fatalf("public identity must not expose the internal id: %v", public)
	}

	added := fixture.do(test, http.MethodPost, "/api/contacts", aliceCookie, map[string]any{"gamertag": "bob", "is_favorite": true})
	contact, _ := added.body["contact"].(map[string]any)
	if added.status != http.StatusOK || contact["is_favorite"] != true {
		test.Fatalf("add contact status=%d body=%s", added.status, added.raw)
	}

	rebuilt := fixture.do(test, http.MethodPost, "/api/contacts/rebuild", aliceCookie, nil)
	if rebuilt.status != http.StatusOK {
		test.Fatalf("rebuild status=%d body=%s", rebuilt.status, rebuilt.raw)
	}
}

func TestRateLimitRejectsBursts(test *testing.T) {
	fixture := newAPIFixture(test, Config{RateLimitRPS: 0.01, RateLimitBurst: 2})
	cookie := fixture.sessionCookie(test, "user-eager")

	for attempt := 0; attempt < 2; attempt++ {
		if response := fixture.do(test, http.MethodGet, "/api/me", cookie, nil); response.status == http.StatusTooManyRequests {
			test.Fatalf("attempt %d limited too early", attempt)
		}
	}
	limited := fixture.do(test, http.MethodGet, "/api/me", cookie, nil)
	if limited.status != http.StatusTooManyRequests || limited.errorCode() != codeRateLimited {
		test.Fatalf("expected rate limit, got status=%d body=%s", limited.status, limited.raw)
	}

	other := fixture.do(test, http.MethodGet, "/api/me", fixture.sessionCookie(test, "user-patient"), nil)
	if other.status == http.StatusTooManyRequests {
		test.Fatalf("limits must be tracked per user")
	}
}

func TestHealthAndMetricsEndpoints(test *testing.T) {
	fixture := newAPIFixture(test, Config{})

	health := fixture.do(test, http.MethodGet, "/healthz", nil, nil)
	if health.status != http.StatusOK || health.body["status"] != "ok" {
		test.Fatalf("health status=%d body=%s", health.status, health.raw)
	}
	metrics := fixture.do(test, http.MethodGet, "/metrics", nil, nil)
	if metrics.status != http.StatusOK {
		test.Fatalf("metrics status=%d", metrics.status)
	}
	if !strings.Contains(metrics.raw, `kolofap_http_requests_total{method="GET",route="/healthz",status="200"} 1`) {
		test.Fatalf("metrics output misses the health check:\n%s", metrics.raw)
	}
}
