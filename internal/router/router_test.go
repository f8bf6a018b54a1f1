package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dairy-records/internal/router"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const supervisor = "sup-1"

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	h, err := router.NewRouter(router.Options{
		Clock:          clockwork.NewFakeClockAt(time.Date(2025, 6, 4, 9, 0, 0, 0, time.UTC)),
		CurrencySymbol: "₹",
	})
	require.NoError(t, err)
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts
}

func doReq(t *testing.T, baseURL, method, path, userID string, body any) (int, []byte, http.Header) {
	t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, r)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set("X-Debug-User-ID", userID)
	}

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	b, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res.StatusCode, b, res.Header
}

func decode(t *testing.T, b []byte) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(b, &out), string(b))
	return out
}

func TestHTTP_PublicEndpointsAndAuth(t *testing.T) {
	ts := newServer(t)

	st, body, _ := doReq(t, ts.URL, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, st)
	assert.Equal(t, "ok", string(body))

	st, _, _ = doReq(t, ts.URL, http.MethodGet, "/animals", "", nil)
	assert.Equal(t, http.StatusUnauthorized, st)

	st, _, _ = doReq(t, ts.URL, http.MethodGet, "/ui/animals", "", nil)
	assert.Equal(t, http.StatusUnauthorized, st)

	st, _, _ = doReq(t, ts.URL, http.MethodGet, "/animals", supervisor, nil)
	assert.Equal(t, http.StatusOK, st)

	st, body, _ = doReq(t, ts.URL, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, st)
	assert.Contains(t, string(body), "dairy_records_http_requests_total")
	assert.Contains(t, string(body), `status_code="401"`)
}

func TestHTTP_EndToEnd_AnimalsAndYields(t *testing.T) {
	ts := newServer(t)

	// 1) Alta de animal con id generado
	st, body, _ := doReq(t, ts.URL, http.MethodPost, "/animals", supervisor, map[string]any{
		"name": "Lakshmi", "sex": "female", "category": "cow", "breed": "Gir", "birth_date": "2023-01-20",
	})
	require.Equal(t, http.StatusCreated, st, string(body))
	animal := decode(t, body)
	assert.Equal(t, "ANM001", animal["id"])
	assert.Equal(t, "2025-06-04", animal["acquired_on"])
	assert.Equal(t, supervisor, animal["created_by"])
	assert.EqualValues(t, 28, animal["age_months"])

	st, body, _ = doReq(t, ts.URL, http.MethodGet, "/animals/next-id", supervisor, nil)
	require.Equal(t, http.StatusOK, st)
	assert.Equal(t, "ANM002", decode(t, body)["id"])

	// 2) id duplicado
	st, _, _ = doReq(t, ts.URL, http.MethodPost, "/animals", supervisor, map[string]any{
		"id": "anm001", "name": "Other", "sex": "female", "category": "heifer",
	})
	assert.Equal(t, http.StatusConflict, st)

	// 3) Producción semanal: la fecha se normaliza al lunes
	week := map[string]any{
		"animal_id":  "anm001",
		"week_start": "2025-06-04",
		"daily":      []float64{10, 10.5, 11, 9.75, 10, 10, 12},
	}
	st, body, _ = doReq(t, ts.URL, http.MethodPost, "/yields", supervisor, week)
	require.Equal(t, http.StatusCreated, st, string(body))
	y := decode(t, body)
	assert.Equal(t, "ANM001", y["animal_id"])
	assert.Equal(t, "2025-06-02", y["week_start"])
	assert.Equal(t, "73.25", y["total_yield"])
	assert.Equal(t, "10.46", y["average_daily"])

	st, _, _ = doReq(t, ts.URL, http.MethodPost, "/yields", supervisor, week)
	assert.Equal(t, http.StatusConflict, st)

	week["animal_id"] = "ANM404"
	st, body, _ = doReq(t, ts.URL, http.MethodPost, "/yields", supervisor, week)
	assert.Equal(t, http.StatusBadRequest, st)
	assert.Contains(t, string(body), "ANM404")

	// 4) Toggle + filtro active
	st, body, _ = doReq(t, ts.URL, http.MethodPost, "/animals/ANM001/toggle", supervisor, nil)
	require.Equal(t, http.StatusOK, st)
	assert.Equal(t, false, decode(t, body)["active"])

	st, body, _ = doReq(t, ts.URL, http.MethodGet, "/animals?active=true", supervisor, nil)
	require.Equal(t, http.StatusOK, st)
	assert.JSONEq(t, "[]", string(body))

	// 5) Delete
	st, _, _ = doReq(t, ts.URL, http.MethodDelete, "/animals/ANM001", supervisor, nil)
	assert.Equal(t, http.StatusNoContent, st)
	st, _, _ = doReq(t, ts.URL, http.MethodGet, "/animals/ANM001", supervisor, nil)
	assert.Equal(t, http.StatusNotFound, st)
}

func TestHTTP_EndToEnd_ApprovalsDashboardAndExport(t *testing.T) {
	ts := newServer(t)

	st, body, _ := doReq(t, ts.URL, http.MethodPost, "/approvals", supervisor, map[string]any{
		"item": "Cattle feed", "vendor": "Amul", "quantity": "20", "unit": "bag", "unit_price": "1250.50",
	})
	require.Equal(t, http.StatusCreated, st, string(body))
	ap := decode(t, body)
	assert.Equal(t, "25010", ap["total_cost"])
	assert.Equal(t, "pending", ap["status"])
	id := ap["id"].(string)

	st, body, _ = doReq(t, ts.URL, http.MethodPost, "/approvals", supervisor, map[string]any{
		"item": "Mineral mix", "quantity": "1", "unit_price": "800",
	})
	require.Equal(t, http.StatusCreated, st, string(body))

	st, body, _ = doReq(t, ts.URL, http.MethodPost, "/animals", supervisor, map[string]any{
		"name": "Gauri", "sex": "female", "category": "heifer",
	})
	require.Equal(t, http.StatusCreated, st, string(body))

	st, body, _ = doReq(t, ts.URL, http.MethodPost, "/vaccinations", supervisor, map[string]any{
		"animal_id": "ANM001", "vaccine": "FMD", "scheduled_on": "2025-06-01",
	})
	require.Equal(t, http.StatusCreated, st, string(body))
	assert.Equal(t, "overdue", decode(t, body)["status"])

	// decisión
	st, body, _ = doReq(t, ts.URL, http.MethodPost, "/approvals/"+id+"/decision", "owner-1", map[string]any{
		"decision": "approved",
	})
	require.Equal(t, http.StatusOK, st, string(body))
	assert.Equal(t, "owner-1", decode(t, body)["decided_by"])

	st, _, _ = doReq(t, ts.URL, http.MethodPost, "/approvals/"+id+"/decision", "owner-1", map[string]any{
		"decision": "rejected",
	})
	assert.Equal(t, http.StatusConflict, st)

	st, body, _ = doReq(t, ts.URL, http.MethodGet, "/approvals?status=pending", supervisor, nil)
	require.Equal(t, http.StatusOK, st)
	var pending []map[string]any
	require.NoError(t, json.Unmarshal(body, &pending))
	require.Len(t, pending, 1)
	assert.Equal(t, "Mineral mix", pending[0]["item"])

	st, _, _ = doReq(t, ts.URL, http.MethodGet, "/approvals?status=maybe", supervisor, nil)
	assert.Equal(t, http.StatusBadRequest, st)

	// tablero
	st, body, _ = doReq(t, ts.URL, http.MethodGet, "/dashboard", supervisor, nil)
	require.Equal(t, http.StatusOK, st, string(body))
	assert.JSONEq(t, `{
		"active_animals": 1,
		"active_employees": 0,
		"pending_approvals": 1,
		"failed_inspections": 0,
		"overdue_vaccinations": 1,
		"open_repairs": 0,
		"as_of": "2025-06-04"
	}`, string(body))

	// export csv
	st, body, hdr := doReq(t, ts.URL, http.MethodGet, "/approvals/export?format=csv&q=feed", supervisor, nil)
	require.Equal(t, http.StatusOK, st)
	assert.Equal(t, "text/csv; charset=utf-8", hdr.Get("Content-Type"))
	assert.Equal(t, `attachment; filename="approvals-20250604.csv"`, hdr.Get("Content-Disposition"))
	lines := strings.Split(strings.TrimSpace(string(body)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "Cattle feed")
	assert.Contains(t, lines[1], "25010.00")

	st, _, _ = doReq(t, ts.URL, http.MethodGet, "/approvals/export?format=pdf", supervisor, nil)
	assert.Equal(t, http.StatusBadRequest, st)

	// página
	st, body, hdr = doReq(t, ts.URL, http.MethodGet, "/ui/approvals", supervisor, nil)
	require.Equal(t, http.StatusOK, st)
	assert.Contains(t, hdr.Get("Content-Type"), "text/html")
	assert.Contains(t, string(body), "₹25,010.00")

	st, body, _ = doReq(t, ts.URL, http.MethodGet, "/ui", supervisor, nil)
	require.Equal(t, http.StatusOK, st)
	assert.Contains(t, string(body), "Pending approvals: 1")
}
