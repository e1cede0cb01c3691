package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/midbel/plotgraph"
	"github.com/midbel/plotgraph/dash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `month,sales
jan,10
feb,30
mar,20
`

func setup(t *testing.T) *Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	b, err := dash.New(dash.Default(), logger)
	require.NoError(t, err)
	return New(b, dash.Default().Server, logger)
}

func do(t *testing.T, s *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" && !strings.HasPrefix(target, "/dataset") {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestServerDataset(t *testing.T) {
	s := setup(t)

	rec := do(t, s, http.MethodPut, "/dataset?format=csv", sample)
	require.Equal(t, http.StatusOK, rec.Code)

	var st State
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &st))
	assert.Equal(t, "month", st.X)
	assert.Equal(t, "sales", st.Y)
	assert.Equal(t, "scatter", st.Active)
	assert.Equal(t, []string{"month", "sales"}, st.Columns)

	rec = do(t, s, http.MethodPut, "/kind", `{"kind": "bar"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, s, http.MethodGet, "/table", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var rows []plotgraph.TableRow
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 3)
	assert.Equal(t, "feb", rows[0].X)
	assert.Equal(t, "30", rows[0].Y)
	assert.Nil(t, rows[0].Percent)
}

func TestServerKind(t *testing.T) {
	s := setup(t)

	rec := do(t, s, http.MethodPut, "/kinds", `{"kinds": ["pie"]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, s, http.MethodPut, "/kind", `{"kind": "line"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, s, http.MethodPut, "/kind", `{"kind": "histogram"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, s, http.MethodGet, "/state", "")
	var st State
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &st))
	assert.Equal(t, "pie", st.Active)
	assert.Equal(t, []string{"pie"}, st.Kinds)
}

func TestServerChart(t *testing.T) {
	s := setup(t)
	do(t, s, http.MethodPut, "/dataset?format=csv", sample)
	do(t, s, http.MethodPut, "/kind", `{"kind": "pie"}`)

	rec := do(t, s, http.MethodGet, "/chart.svg?t=10s", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, mimeSVG, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "<svg")
	assert.Contains(t, rec.Body.String(), "50%")

	again := do(t, s, http.MethodGet, "/chart.svg?t=10s", "")
	assert.Equal(t, rec.Body.String(), again.Body.String())

	rec = do(t, s, http.MethodGet, "/chart.svg?t=soon", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServerPointer(t *testing.T) {
	s := setup(t)
	do(t, s, http.MethodPut, "/dataset?format=csv", "x,y\n1,1\n2,2\n")

	var target plotgraph.Shape
	s.read(func(b *dash.Board) {
		target = b.Pass().Geometry.Shapes[0]
	})
	body, _ := json.Marshal(map[string]float64{
		"x": target.Center.X,
		"y": target.Center.Y,
	})
	rec := do(t, s, http.MethodPost, "/pointer", string(body))
	require.Equal(t, http.StatusOK, rec.Code)

	var tip plotgraph.Tooltip
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tip))
	assert.True(t, tip.Visible)
	assert.Equal(t, "x: 1, y: 1", tip.Content)

	version := s.version
	rec = do(t, s, http.MethodDelete, "/pointer", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tip))
	assert.False(t, tip.Visible)
	assert.Equal(t, version+1, s.version)
}
