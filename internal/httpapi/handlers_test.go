package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"agentdesk/internal/auth"
	"agentdesk/internal/directory"
	"agentdesk/internal/disposition"
	"agentdesk/internal/notify"
	"agentdesk/internal/session"
	"agentdesk/internal/telephony"

	"github.com/gin-gonic/gin"
)

func testRouter(t *testing.T) (*gin.Engine, *telephony.MockGateway) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dirRepo := directory.NewMemoryRepo()
	dirRepo.Campaigns["1001"] = []string{"Sales->"}
	dirRepo.Numbers["Sales->"] = []string{"555-9"}
	dispoRepo := disposition.NewMemoryRepo()
	dispoRepo.Rows["Sales->"] = []disposition.Record{{Level1: "Contacted"}}
	gateway := telephony.NewMockGateway()

	mgr, err := session.NewManager(session.Deps{
		Directory:    directory.NewService(dirRepo, nil),
		Dispositions: disposition.NewService(dispoRepo, nil),
		Dialer:       gateway,
		Recorder:     gateway,
		Closer:       gateway,
		Notifier:     notify.NewMemoryNotifier(),
	})
	if err != nil {
		t.Fatalf("manager: %v", err)
	}

	h := Handlers{Sessions: mgr}
	r := gin.New()
	r.Use(func(c *gin.Context) {
		ctx := auth.WithIdentity(c.Request.Context(), "u1", "1001", "agent")
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})
	r.POST("/sessions", h.CreateSession)
	r.GET("/sessions/:session_id", h.GetSession)
	r.POST("/sessions/:session_id/campaign", h.SelectCampaign)
	r.POST("/sessions/:session_id/call", h.PlaceCall)
	r.POST("/sessions/:session_id/disposition", h.SetDisposition)
	r.POST("/sessions/:session_id/finish", h.Finish)
	return r, gateway
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestSessionFlowOverHTTP(t *testing.T) {
	r, gateway := testRouter(t)

	raw := `{"cti":"{\"Guid\":\"g1\",\"Campaign\":\"Sales->\",\"Callerid\":\"17410632\"}"}`
	w := doJSON(t, r, http.MethodPost, "/sessions", raw)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var snap session.Snapshot
	decode(t, w, &snap)
	if snap.State != "ready" {
		t.Fatalf("expected ready, got %s", snap.State)
	}

	base := "/sessions/" + snap.ID
	if w := doJSON(t, r, http.MethodPost, base+"/call", ""); w.Code != http.StatusOK {
		t.Fatalf("call: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if len(gateway.Calls()) != 1 {
		t.Fatalf("expected one dial")
	}

	if w := doJSON(t, r, http.MethodPost, base+"/disposition", `{"level":0,"value":"Contacted"}`); w.Code != http.StatusOK {
		t.Fatalf("disposition: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if w := doJSON(t, r, http.MethodPost, base+"/finish", ""); w.Code != http.StatusOK {
		t.Fatalf("finish: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if len(gateway.Reports()) != 1 || len(gateway.Closed()) != 1 {
		t.Fatalf("expected disposition recorded and form closed")
	}
}

func TestPlaceCallRejectionMapsToConflict(t *testing.T) {
	r, gateway := testRouter(t)

	w := doJSON(t, r, http.MethodPost, "/sessions", `{"cti":"{\"Campaign\":\"Sales->\"}"}`)
	var snap session.Snapshot
	decode(t, w, &snap)

	// No caller phone in the descriptor: place-call is a guarded no-op.
	w = doJSON(t, r, http.MethodPost, "/sessions/"+snap.ID+"/call", "")
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
	if len(gateway.Calls()) != 0 {
		t.Fatalf("dialer must not be invoked")
	}
}

func TestGetSession_UnknownIDIsNotFound(t *testing.T) {
	r, _ := testRouter(t)

	w := doJSON(t, r, http.MethodGet, "/sessions/nope", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode: %v (%s)", err, w.Body.String())
	}
}
