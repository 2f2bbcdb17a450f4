package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Simplici0/bakersmath/internal/dough"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	logger, err := newLogger("error", io.Discard)
	require.NoError(t, err)

	srv := &server{
		logger:      logger,
		templateDir: "../../web/templates",
		currency:    "$",
	}
	return srv.routes()
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestHandleHome_DefaultRecipe(t *testing.T) {
	rr := do(t, newTestServer(t), http.MethodGet, "/", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")

	body := rr.Body.String()
	for _, want := range []string{"1120g", "Flour (Main)", "665g", "432g", "$2.25", `name="hydration_pct" value="65"`} {
		assert.Contains(t, body, want)
	}
	assert.NotContains(t, body, "Preferment</td>")
}

func TestHandleHome_PrefermentBreakdown(t *testing.T) {
	rr := do(t, newTestServer(t), http.MethodGet, "/?preferment_pct=20&preferment_hydration_pct=100", "")

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "Preferment</td>")
	assert.Contains(t, body, "266g")
	assert.Contains(t, body, "80.0%")
	assert.Contains(t, body, "sub-row")
}

func TestHandleHome_ZeroQuantityShowsErrorInsteadOfTable(t *testing.T) {
	rr := do(t, newTestServer(t), http.MethodGet, "/?quantity=0", "")

	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "Cannot calculate: quantity must not be zero.")
	assert.NotContains(t, body, "recipe-body")
}

func TestHandleHome_UnparseableValue(t *testing.T) {
	rr := do(t, newTestServer(t), http.MethodGet, "/?salt_pct=lots", "")

	require.Equal(t, http.StatusBadRequest, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "salt_pct must be numeric")
	assert.Contains(t, body, `name="salt_pct" value="lots"`)
	assert.NotContains(t, body, "recipe-body")
}

func TestHandleRecipeText(t *testing.T) {
	rr := do(t, newTestServer(t), http.MethodGet, "/recipe.txt?quantity=2&unit_weight=500", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/plain")
	assert.Contains(t, rr.Body.String(), "Total dough: 1000g")
	assert.Contains(t, rr.Body.String(), "Water temperature: 2°")
}

func TestHandleRecipeText_RejectsNegativePercentage(t *testing.T) {
	rr := do(t, newTestServer(t), http.MethodGet, "/recipe.txt?oil_pct=-2", "")

	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Contains(t, rr.Body.String(), "Check oil_pct")
}

func TestHandleAPICompute_UsesDefaultsForAbsentFields(t *testing.T) {
	rr := do(t, newTestServer(t), http.MethodPost, "/api/compute", `{"preferment_pct": 20}`)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var result dough.Result
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))

	flour := 1120 / 1.685
	assert.InDelta(t, 1120, result.TotalBatchWeight, 1e-9)
	require.NotNil(t, result.Preferment)
	assert.InDelta(t, flour*0.2, result.Preferment.Flour, 1e-9)
	assert.InDelta(t, flour*0.8, result.Ingredients.Flour, 1e-9)
	assert.InDelta(t, 2, result.RequiredWaterTemp, 1e-9)
}

func TestHandleAPICompute_DivisionByZero(t *testing.T) {
	rr := do(t, newTestServer(t), http.MethodPost, "/api/compute", `{"quantity": 0}`)

	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	var resp apiError
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "division_by_zero", resp.Kind)
	assert.Equal(t, "quantity", resp.Field)
}

func TestHandleAPICompute_InvalidParameter(t *testing.T) {
	rr := do(t, newTestServer(t), http.MethodPost, "/api/compute", `{"preferment_pct": 150}`)

	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	var resp apiError
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "invalid_parameter", resp.Kind)
	assert.Equal(t, "preferment_pct", resp.Field)
}

func TestHandleAPICompute_MalformedBody(t *testing.T) {
	h := newTestServer(t)

	for _, body := range []string{`{"quantity":`, `{"flour_weight": 3}`, `{"quantity": "four"}`} {
		rr := do(t, h, http.MethodPost, "/api/compute", body)
		assert.Equal(t, http.StatusBadRequest, rr.Code, body)
	}
}

func TestHandleHealth(t *testing.T) {
	rr := do(t, newTestServer(t), http.MethodGet, "/healthz", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok\n", rr.Body.String())
}

func TestNewLogger_RejectsUnknownLevel(t *testing.T) {
	_, err := newLogger("chatty", io.Discard)
	require.Error(t, err)
}

func TestHandleAPICompute_OverflowIsRejected(t *testing.T) {
	rr := do(t, newTestServer(t), http.MethodPost, "/api/compute", `{"quantity": 1e200, "unit_weight": 1e200, "preferment_pct": 20}`)

	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	var resp apiError
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "invalid_parameter", resp.Kind)
	assert.Equal(t, "total_batch_weight", resp.Field)
}
