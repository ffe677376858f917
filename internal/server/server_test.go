package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/curvegen-go/pkg/curvegen"
	"github.com/ukaji3/curvegen-go/pkg/curvegen/output"
	"github.com/xuri/excelize/v2"
)

const flatDoc = `{
  "axis": {"yMin": 0, "yMax": 100},
  "startDate": "2024-04-01",
  "curves": [
    {"id": "a", "name": "Sales", "points": [{"x": 0, "y": 0.5}, {"x": 1, "y": 0.5}], "visible": true, "roughness": 0},
    {"id": "b", "name": "Empty", "points": [], "visible": false, "roughness": 0}
  ]
}`

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s := New(Config{
		Options: curvegen.DefaultOptions(),
		Logger:  log.New(io.Discard),
	})
	s.now = func() time.Time {
		return time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	}
	return s
}

func post(t *testing.T, s *Server, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.App().Test(req)
	require.NoError(t, err)
	return resp
}

func decodeError(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body["error"]
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	for _, path := range []string{"/health/live", "/health/ready"} {
		resp, err := s.App().Test(httptest.NewRequest(http.MethodGet, path, nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}
}

func TestRows(t *testing.T) {
	s := newTestServer(t)
	resp := post(t, s, "/rows", flatDoc)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rows []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rows))
	require.Len(t, rows, 183)
	assert.Equal(t, "2024-04-01", rows[0]["Date"])
	assert.Equal(t, 50.0, rows[0]["Sales"])
	assert.NotContains(t, rows[0], "Empty")
	assert.Equal(t, "2024-09-30", rows[182]["Date"])
}

func TestRowsBadBody(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"not json", "curves"},
		{"unknown field", `{"curves": [], "colour": "red"}`},
		{"roughness out of range", `{"curves": [{"id": "a", "name": "A", "points": [{"x": 0, "y": 0}], "roughness": 101}]}`},
		{"bad start date", `{"startDate": "04/01/2024", "curves": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := post(t, s, "/rows", tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.NotEmpty(t, decodeError(t, resp))
		})
	}
}

func TestNoCurves(t *testing.T) {
	s := newTestServer(t)
	body := `{"curves": [{"id": "a", "name": "A", "points": []}]}`

	for _, path := range []string{"/rows", "/export"} {
		resp := post(t, s, path, body)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode, path)
		assert.Equal(t, "No curves to export", decodeError(t, resp), path)
	}
}

func TestExport(t *testing.T) {
	s := newTestServer(t)
	resp := post(t, s, "/export", flatDoc)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, xlsxContentType, resp.Header.Get("Content-Type"))
	assert.Equal(t,
		`attachment; filename="curve_data_20240506_070809.xlsx"`,
		resp.Header.Get("Content-Disposition"))

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := output.ReadRows(f, curvegen.DefaultSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 183)
	v, ok := rows[100].Get("Sales")
	require.True(t, ok)
	assert.Equal(t, 50.0, v)
}

func TestFailMapsUnknownErrors(t *testing.T) {
	s := newTestServer(t)
	s.app.Get("/boom", func(c fiber.Ctx) error {
		return s.fail(c, curvegen.NewExportError("Data", "save", io.ErrShortWrite))
	})

	resp, err := s.App().Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "export failed", decodeError(t, resp))
}
