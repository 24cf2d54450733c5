package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/KimBaekRu/mes-system-server/internal/models"
)

func TestEquipmentLifecycle(t *testing.T) {
	e := echo.New()
	h, _ := newTestHandler(t)

	// Create: defaults applied, 201
	req := jsonRequest(http.MethodPost, "/api/equipments", `{"name":"Press1","iconUrl":"x.png","x":10,"y":20}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if !assert.NoError(t, h.HandleCreateEquipment(c)) {
		return
	}
	assert.Equal(t, http.StatusCreated, rec.Code)

	var created models.Equipment
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "Press1", created.Name)
	assert.Equal(t, "idle", created.Status)
	assert.Empty(t, created.History)
	assert.NotZero(t, created.ID)

	// The created entity appears in the next list call
	req = httptest.NewRequest(http.MethodGet, "/api/equipments", nil)
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	if assert.NoError(t, h.HandleListEquipments(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)
		var list []models.Equipment
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
		assert.Len(t, list, 1)
		assert.Equal(t, created.ID, list[0].ID)
	}

	// Update: merge status, history gains one entry
	idParam := strconv.FormatInt(created.ID, 10)
	req = jsonRequest(http.MethodPut, "/api/equipments/"+idParam, `{"status":"running","user":"alice"}`)
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(idParam)
	if assert.NoError(t, h.HandleUpdateEquipment(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)
		var updated models.Equipment
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
		assert.Equal(t, "running", updated.Status)
		assert.Equal(t, "Press1", updated.Name)
		if assert.Len(t, updated.History, 1) {
			assert.Equal(t, "alice", updated.History[0].User)
			assert.Equal(t, "running", updated.History[0].Value)
		}
	}

	// Delete: 204, and idempotent
	for i := 0; i < 2; i++ {
		req = httptest.NewRequest(http.MethodDelete, "/api/equipments/"+idParam, nil)
		rec = httptest.NewRecorder()
		c = e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues(idParam)
		if assert.NoError(t, h.HandleDeleteEquipment(c)) {
			assert.Equal(t, http.StatusNoContent, rec.Code)
		}
	}
}

func TestUpdateEquipmentNotFound(t *testing.T) {
	e := echo.New()
	h, equipment := newTestHandler(t)
	equipment.Create("Press1", "x.png", 10, 20)

	req := jsonRequest(http.MethodPut, "/api/equipments/999", `{"status":"running"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("999")

	if assert.NoError(t, h.HandleUpdateEquipment(c)) {
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Zero(t, rec.Body.Len())
	}
	assert.Len(t, equipment.List(), 1)
}

func TestUpdateEquipmentNonNumericID(t *testing.T) {
	e := echo.New()
	h, _ := newTestHandler(t)

	req := jsonRequest(http.MethodPut, "/api/equipments/abc", `{"status":"running"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	if assert.NoError(t, h.HandleUpdateEquipment(c)) {
		assert.Equal(t, http.StatusNotFound, rec.Code)
	}
}

func TestListEquipmentsMsgpack(t *testing.T) {
	e := echo.New()
	h, equipment := newTestHandler(t)
	equipment.Create("Press1", "x.png", 10, 20)

	req := httptest.NewRequest(http.MethodGet, "/api/equipments/msgpack", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if assert.NoError(t, h.HandleListEquipmentsMsgpack(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/msgpack", rec.Header().Get(echo.HeaderContentType))

		var list []models.Equipment
		assert.NoError(t, msgpack.Unmarshal(rec.Body.Bytes(), &list))
		assert.Len(t, list, 1)
		assert.Equal(t, "Press1", list[0].Name)
	}
}

func TestProcessStageHandlers(t *testing.T) {
	e := echo.New()
	h, _ := newTestHandler(t)

	req := jsonRequest(http.MethodPost, "/api/processTitles", `{"title":"Etching","x":1,"y":2}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if !assert.NoError(t, h.HandleCreateProcessStage(c)) {
		return
	}
	assert.Equal(t, http.StatusCreated, rec.Code)

	var created models.ProcessStage
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	idParam := strconv.FormatInt(created.ID, 10)
	req = jsonRequest(http.MethodPut, "/api/processTitles/"+idParam, `{"yield":"98%","user":"bob"}`)
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(idParam)
	if assert.NoError(t, h.HandleUpdateProcessStage(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)
		var updated models.ProcessStage
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
		assert.Equal(t, "98%", updated.Yield)
		if assert.Len(t, updated.History, 1) {
			assert.Equal(t, "bob", updated.History[0].User)
			assert.Equal(t, "98%", updated.History[0].Value)
		}
	}
}

func TestLineHandlers(t *testing.T) {
	e := echo.New()
	h, _ := newTestHandler(t)

	req := jsonRequest(http.MethodPost, "/api/lineNames", `{"name":"Line A","x":1,"y":2}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if !assert.NoError(t, h.HandleCreateLine(c)) {
		return
	}
	assert.Equal(t, http.StatusCreated, rec.Code)

	var created models.Line
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotContains(t, rec.Body.String(), "history")

	idParam := strconv.FormatInt(created.ID, 10)
	req = jsonRequest(http.MethodPut, "/api/lineNames/"+idParam, `{"name":"Line B"}`)
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(idParam)
	if assert.NoError(t, h.HandleUpdateLine(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"name":"Line B"`)
	}
}
