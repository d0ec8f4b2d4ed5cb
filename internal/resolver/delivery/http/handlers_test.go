package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"errorviews/internal/middleware"
	"errorviews/internal/model"
	"errorviews/internal/resolver"
	resolverHTTP "errorviews/internal/resolver/delivery/http"
	"errorviews/internal/resolver/mapping"
	"errorviews/internal/resolver/usecase"
	"errorviews/internal/shop"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

type viewBody struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      struct {
		View  string         `json:"view"`
		Model map[string]any `json:"model"`
	} `json:"data"`
}

type fixture struct {
	engine *gin.Engine
	state  resolver.State
}

// newFixture builds an engine in the global layout: the advice middleware runs
// engine-wide when advice is true, otherwise only status declarations and the table apply.
func newFixture(t *testing.T, advice bool, enabled bool) fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := &mockLogger{}
	state := resolver.NewState(enabled)
	table, err := mapping.Load(mapping.Options{Source: model.SourceCode})
	if err != nil {
		t.Fatalf("mapping.Load: %v", err)
	}
	uc := usecase.New(l, state, table, resolver.DefaultPolicy())
	h := resolverHTTP.New(l, uc, model.ViewError)

	strategy := model.StrategyTable
	if advice {
		strategy = model.StrategyGlobal
	}
	mw := middleware.New(l, model.Profile{Strategy: strategy, Source: model.SourceCode}, state, 600)

	r := gin.New()
	r.Use(h.Recovery(), mw.RequestID(), mw.Diagnostics(), h.ErrorPage())
	if advice {
		r.Use(h.Advice())
	} else {
		r.Use(h.Resolve())
	}
	r.NoRoute(h.NoRoute)
	resolverHTTP.RegisterRoutes(&r.RouterGroup, h, mw.RateLimit())

	raise := func(err error) gin.HandlerFunc {
		return func(c *gin.Context) {
			_ = c.Error(err)
			c.Abort()
		}
	}
	r.GET("/orderNotFound", raise(shop.NewOrderNotFoundError("1")))
	r.GET("/dataIntegrityViolation", raise(shop.NewDataIntegrityViolationError("dup")))
	r.GET("/databaseError1", raise(shop.NewSQLError()))
	r.GET("/invalidCreditCard", raise(shop.NewInvalidCreditCardError("4111111111111111")))
	r.GET("/customException", raise(shop.NewCustomError("Something failed")))
	r.GET("/unhandledException", raise(shop.NewUnhandledError("Something unexpected")))
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	return fixture{engine: r, state: state}
}

func (f fixture) get(t *testing.T, path string) (*httptest.ResponseRecorder, viewBody) {
	t.Helper()
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	var body viewBody
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil && w.Code != http.StatusSeeOther {
		t.Fatalf("%s: invalid body %q: %v", path, w.Body.String(), err)
	}
	return w, body
}

func TestStatusBound(t *testing.T) {
	f := newFixture(t, true, true)

	w, body := f.get(t, "/dataIntegrityViolation")
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
	if body.Message != "Data integrity violation" {
		t.Errorf("unexpected reason %q", body.Message)
	}
	if body.Data.View != "" {
		t.Errorf("status-bound errors render no view, got %q", body.Data.View)
	}

	w, body = f.get(t, "/orderNotFound")
	if w.Code != http.StatusNotFound || body.Message != "No such Order" {
		t.Errorf("expected 404 No such Order, got %d %q", w.Code, body.Message)
	}
}

func TestAdviceViews(t *testing.T) {
	f := newFixture(t, true, false)

	w, body := f.get(t, "/databaseError1")
	if w.Code != http.StatusInternalServerError || body.Data.View != model.ViewDatabaseError {
		t.Fatalf("expected 500 databaseError, got %d %q", w.Code, body.Data.View)
	}
	if _, ok := body.Data.Model[model.AttrException]; ok {
		t.Error("database views must not expose the exception")
	}
	if body.Data.Model[model.AttrProfile] != "GLOBAL" {
		t.Errorf("expected profile GLOBAL, got %v", body.Data.Model[model.AttrProfile])
	}
	if body.Data.Model[model.AttrSwitchState] != model.SwitchOff {
		t.Errorf("expected switch off, got %v", body.Data.Model[model.AttrSwitchState])
	}

	_, body = f.get(t, "/customException")
	if body.Data.View != model.ViewSupport {
		t.Fatalf("expected support view, got %q", body.Data.View)
	}
	if body.Data.Model[model.AttrURL] != "/customException" {
		t.Errorf("expected url /customException, got %v", body.Data.Model[model.AttrURL])
	}
	exc, ok := body.Data.Model[model.AttrException].(map[string]any)
	if !ok || exc["kind"] != string(model.KindCustom) {
		t.Errorf("expected exception of kind %s, got %v", model.KindCustom, body.Data.Model[model.AttrException])
	}
	if _, ok := body.Data.Model[model.AttrTimestamp].(string); !ok {
		t.Errorf("expected a timestamp, got %v", body.Data.Model[model.AttrTimestamp])
	}
}

func TestTableOnly(t *testing.T) {
	f := newFixture(t, false, false)

	w, body := f.get(t, "/databaseError1")
	if w.Code != http.StatusInternalServerError || body.Data.View != model.ViewError {
		t.Errorf("without handlers SQLException falls back to the default view, got %d %q", w.Code, body.Data.View)
	}

	_, body = f.get(t, "/invalidCreditCard")
	if body.Data.View != model.ViewError {
		t.Errorf("switched off: expected default view, got %q", body.Data.View)
	}

	f.state.SetEnabled(true)
	w, body = f.get(t, "/invalidCreditCard")
	if w.Code != http.StatusInternalServerError || body.Data.View != model.ViewCreditCardError {
		t.Fatalf("switched on: expected 500 creditCardError, got %d %q", w.Code, body.Data.View)
	}
	if _, ok := body.Data.Model[model.AttrException]; !ok {
		t.Error("table views expose the exception")
	}
	if body.Data.Model[model.AttrSwitchState] != model.SwitchOn {
		t.Errorf("expected switch on, got %v", body.Data.Model[model.AttrSwitchState])
	}
}

func TestDefaultErrorView(t *testing.T) {
	f := newFixture(t, true, true)

	for _, path := range []string{"/unhandledException", "/panic"} {
		w, body := f.get(t, path)
		if w.Code != http.StatusInternalServerError || body.Data.View != model.ViewError {
			t.Errorf("%s: expected 500 error view, got %d %q", path, w.Code, body.Data.View)
		}
		if body.Data.Model[model.AttrProfile] != "GLOBAL" {
			t.Errorf("%s: expected the profile attribute, got %v", path, body.Data.Model[model.AttrProfile])
		}
		if _, ok := body.Data.Model[model.AttrTimestamp]; !ok {
			t.Errorf("%s: expected a timestamp", path)
		}
		if _, ok := body.Data.Model[model.AttrException]; ok {
			t.Errorf("%s: default view must not expose the exception", path)
		}
	}

	w, body := f.get(t, "/nowhere")
	if w.Code != http.StatusNotFound || body.Data.View != model.ViewError {
		t.Errorf("unknown route: expected 404 error view, got %d %q", w.Code, body.Data.View)
	}
}

func TestToggle(t *testing.T) {
	f := newFixture(t, false, false)

	tcs := []struct {
		action   string
		enabled  bool
		location string
	}{
		{"on", true, "/unannotated"},
		{"off", false, "/no-handler"},
		{"ON", true, "/unannotated"},
		{"bogus", false, "/no-handler"},
		{"On", true, "/unannotated"},
		{"on", true, "/unannotated"},
	}

	for _, tc := range tcs {
		w, _ := f.get(t, "/simpleMappingExceptionResolver/"+tc.action)
		if w.Code != http.StatusSeeOther {
			t.Errorf("%s: expected 303, got %d", tc.action, w.Code)
		}
		if got := w.Header().Get("Location"); got != tc.location {
			t.Errorf("%s: expected Location %s, got %s", tc.action, tc.location, got)
		}
		if f.state.Enabled() != tc.enabled {
			t.Errorf("%s: expected enabled=%v", tc.action, tc.enabled)
		}
	}
}

func TestToggleAnyMethod(t *testing.T) {
	f := newFixture(t, false, false)

	for _, method := range []string{http.MethodPost, http.MethodPut} {
		f.state.SetEnabled(false)
		w := httptest.NewRecorder()
		f.engine.ServeHTTP(w, httptest.NewRequest(method, "/simpleMappingExceptionResolver/on", nil))

		if w.Code != http.StatusSeeOther {
			t.Errorf("%s: expected 303, got %d", method, w.Code)
		}
		if !f.state.Enabled() {
			t.Errorf("%s: expected the switch on", method)
		}
	}
}

func TestMappings(t *testing.T) {
	f := newFixture(t, false, true)

	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/resolver/mappings", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Data struct {
			Profile     string `json:"profile"`
			Timestamp   string `json:"timestamp"`
			SwitchState string `json:"switch_state"`
			Mappings    []struct {
				Kind string `json:"kind"`
				View string `json:"view"`
			} `json:"mappings"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Data.SwitchState != model.SwitchOn {
		t.Errorf("expected on, got %q", body.Data.SwitchState)
	}
	if body.Data.Profile != "TABLE" {
		t.Errorf("expected profile TABLE, got %q", body.Data.Profile)
	}
	if body.Data.Timestamp == "" {
		t.Error("expected a timestamp")
	}
	if len(body.Data.Mappings) != 2 || body.Data.Mappings[0].Kind != string(model.KindDatabase) {
		t.Errorf("unexpected mappings %+v", body.Data.Mappings)
	}
}
