package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"VenuePOS/internal/model"
)

func TestRoom_CRUD(t *testing.T) {
	router, _, m := newTestRouter(t)

	t.Run("list", func(t *testing.T) {
		m.rooms.On("List", mock.Anything).Return([]model.Room{
			{ID: 1, Name: "Hall A", Floor: 1, Capacity: 20},
			{ID: 2, Name: "Hall B", Floor: 2, Capacity: 8},
		}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/rooms", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var rooms []model.Room
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&rooms))
		assert.Len(t, rooms, 2)
	})

	t.Run("get by id", func(t *testing.T) {
		m.rooms.On("GetByID", mock.Anything, int64(2)).
			Return(&model.Room{ID: 2, Name: "Hall B", Floor: 2, Capacity: 8}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/rooms/2", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var got model.Room
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
		assert.Equal(t, int64(2), got.ID)
		assert.Equal(t, "Hall B", got.Name)
	})

	t.Run("get unknown id is 404", func(t *testing.T) {
		m.rooms.On("GetByID", mock.Anything, int64(77)).
			Return((*model.Room)(nil), gorm.ErrRecordNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/rooms/77", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("create returns id", func(t *testing.T) {
		m.rooms.On("Create", mock.Anything, mock.AnythingOfType("*model.Room")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*model.Room).ID = 7
			}).Return(nil).Once()

		body := bytes.NewBufferString(`{"name":"Hall C","floor":3,"capacity":12}`)
		req := httptest.NewRequest(http.MethodPost, "/rooms", body)
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		var got model.Room
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
		assert.Equal(t, int64(7), got.ID)
		assert.Equal(t, "Hall C", got.Name)
	})

	t.Run("update unknown id is 404", func(t *testing.T) {
		m.rooms.On("GetByID", mock.Anything, int64(99)).
			Return((*model.Room)(nil), gorm.ErrRecordNotFound).Once()

		body := bytes.NewBufferString(`{"name":"Nope"}`)
		req := httptest.NewRequest(http.MethodPut, "/rooms/99", body)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("delete", func(t *testing.T) {
		m.rooms.On("Delete", mock.Anything, int64(1)).Return(nil).Once()

		req := httptest.NewRequest(http.MethodDelete, "/rooms/1", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("delete unknown id is 404", func(t *testing.T) {
		m.rooms.On("Delete", mock.Anything, int64(99)).Return(gorm.ErrRecordNotFound).Once()

		req := httptest.NewRequest(http.MethodDelete, "/rooms/99", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestPrinter_CreateAndList(t *testing.T) {
	router, _, m := newTestRouter(t)

	m.printers.On("Create", mock.Anything, mock.AnythingOfType("*model.Printer")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*model.Printer).ID = 3
		}).Return(nil).Once()

	body := bytes.NewBufferString(`{"name":"Kitchen","location":"back","ip_address":"10.0.0.5"}`)
	req := httptest.NewRequest(http.MethodPost, "/printers", body)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	var got model.Printer
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	assert.Equal(t, int64(3), got.ID)
	assert.Equal(t, "10.0.0.5", got.IPAddr)

	m.printers.On("List", mock.Anything).Return([]model.Printer{got}, nil).Once()
	req = httptest.NewRequest(http.MethodGet, "/printers", nil)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestPrinter_GetByID(t *testing.T) {
	router, _, m := newTestRouter(t)

	m.printers.On("GetByID", mock.Anything, int64(3)).
		Return(&model.Printer{ID: 3, Name: "Kitchen", IPAddr: "10.0.0.5"}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/printers/3", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var got model.Printer
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	assert.Equal(t, "Kitchen", got.Name)
	m.printers.AssertExpectations(t)
}
