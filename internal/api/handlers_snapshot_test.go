// handlers_snapshot_test.go - Tests for snapshot upload and activation
package api

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/board-explorer/backend/internal/catalog"
	"github.com/board-explorer/backend/internal/testutil"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func snapshotBytes(t *testing.T) []byte {
	t.Helper()
	data, err := msgpack.Marshal(map[string]interface{}{
		"routes": []map[string]interface{}{
			{"uuid": "r1", "climb_name": "Uploaded Route", "difficulty": 9},
		},
		"holds_map": map[string]interface{}{
			"r1": []interface{}{[]interface{}{101, 12}},
		},
		"layout_map": map[interface{}]interface{}{
			101: map[string]interface{}{"x": 10.0, "y": 20.0},
		},
	})
	require.NoError(t, err)
	return data
}

func postJSON(h echo.HandlerFunc, target string, payload interface{}) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return rec, h(e.NewContext(req, rec))
}

func TestHandleUploadSnapshot_Validation(t *testing.T) {
	tests := []struct {
		name    string
		request uploadSnapshotRequest
		errCode string
	}{
		{
			name:    "empty name",
			request: uploadSnapshotRequest{Data: base64.StdEncoding.EncodeToString([]byte("x"))},
			errCode: "VALIDATION_ERROR",
		},
		{
			name:    "empty data",
			request: uploadSnapshotRequest{Name: "data.msgpack"},
			errCode: "VALIDATION_ERROR",
		},
		{
			name: "unsupported extension",
			request: uploadSnapshotRequest{
				Name: "data.pkl",
				Data: base64.StdEncoding.EncodeToString([]byte("x")),
			},
			errCode: "BAD_REQUEST",
		},
		{
			name: "invalid base64",
			request: uploadSnapshotRequest{
				Name: "data.msgpack",
				Data: "not-valid!!!",
			},
			errCode: "BAD_REQUEST",
		},
		{
			name: "garbage snapshot content",
			request: uploadSnapshotRequest{
				Name: "data.msgpack",
				Data: base64.StdEncoding.EncodeToString([]byte("not msgpack")),
			},
			errCode: "BAD_REQUEST",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, false)

			_, err := postJSON(h.HandleUploadSnapshot, "/api/snapshot/upload", tt.request)
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.errCode, apiErr.Code)
		})
	}
}

func TestHandleUploadSnapshot_ActivatesImmediately(t *testing.T) {
	h := newTestHandler(t, false)

	rec, err := postJSON(h.HandleUploadSnapshot, "/api/snapshot/upload", uploadSnapshotRequest{
		Name: "board.msgpack",
		Data: base64.StdEncoding.EncodeToString(snapshotBytes(t)),
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"active"`)

	cat, ok := h.catalog.Current()
	require.True(t, ok)
	assert.Equal(t, 1, cat.Len())

	// The uploaded route renders.
	svgRec, err := doRequest(h.HandleRenderBoardSVG, "/api/board/r1/svg", "uuid", "r1")
	require.NoError(t, err)
	assert.Contains(t, svgRec.Body.String(), "<circle")
}

func TestHandleActivateSnapshot(t *testing.T) {
	store := testutil.NewMockStorage()
	catStore := catalog.NewStore()
	h := NewHandler(store, catStore, nil)

	info, err := store.SaveBytes("board.msgpack", snapshotBytes(t))
	require.NoError(t, err)

	rec, err := postJSON(h.HandleActivateSnapshot, "/api/snapshot/active", activateSnapshotRequest{ID: info.ID})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"routes":1`)

	_, ok := catStore.Current()
	assert.True(t, ok)
}

func TestHandleActivateSnapshot_Errors(t *testing.T) {
	h := newTestHandler(t, false)

	_, err := postJSON(h.HandleActivateSnapshot, "/api/snapshot/active", activateSnapshotRequest{})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "VALIDATION_ERROR", apiErr.Code)

	_, err = postJSON(h.HandleActivateSnapshot, "/api/snapshot/active", activateSnapshotRequest{ID: "ghost"})
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
}

func TestHandleGetSnapshotInfo(t *testing.T) {
	h := newTestHandler(t, false)

	rec, err := doRequest(h.HandleGetSnapshotInfo, "/api/snapshot")
	require.NoError(t, err)
	assert.Contains(t, rec.Body.String(), `"loaded":false`)

	h = newTestHandler(t, true)
	rec, err = doRequest(h.HandleGetSnapshotInfo, "/api/snapshot")
	require.NoError(t, err)
	assert.Contains(t, rec.Body.String(), `"loaded":true`)
	assert.Contains(t, rec.Body.String(), `"routes":3`)
	assert.Contains(t, rec.Body.String(), `"source":"test.msgpack"`)
}

func TestHandleRecentSnapshotsAndDelete(t *testing.T) {
	store := testutil.NewMockStorage()
	h := NewHandler(store, catalog.NewStore(), nil)

	info, err := store.SaveBytes("board.msgpack", snapshotBytes(t))
	require.NoError(t, err)

	rec, err := doRequest(h.HandleRecentSnapshots, "/api/snapshot/files/recent")
	require.NoError(t, err)
	assert.Contains(t, rec.Body.String(), info.ID)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/snapshot/files/"+info.ID, nil)
	delRec := httptest.NewRecorder()
	c := e.NewContext(req, delRec)
	c.SetParamNames("id")
	c.SetParamValues(info.ID)
	require.NoError(t, h.HandleDeleteSnapshot(c))
	assert.Equal(t, http.StatusNoContent, delRec.Code)

	_, err = store.Get(info.ID)
	assert.Error(t, err)
}
