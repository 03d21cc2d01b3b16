package controllerImp

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/rindang-net/digifarm/entities"
	"github.com/rindang-net/digifarm/pkg/land/service"
)

type fakeLandSvc struct {
	lands []entities.Land
}

func (f *fakeLandSvc) Create(in service.LandInput) (*entities.Land, error) {
	return nil, service.ErrInvalid
}

func (f *fakeLandSvc) Update(id string, in service.LandInput) (*entities.Land, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeLandSvc) List() ([]entities.Land, error) { return f.lands, nil }

func (f *fakeLandSvc) ListActive() ([]entities.Land, error) {
	var out []entities.Land
	for _, l := range f.lands {
		if l.Status == "active" {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeLandSvc) Get(string) (*entities.Land, error) { return nil, gorm.ErrRecordNotFound }

func (f *fakeLandSvc) Delete(string) error { return nil }

func (f *fakeLandSvc) AttachPhoto(string, string) (*entities.Land, error) {
	return nil, gorm.ErrRecordNotFound
}

type nullStore struct{}

func (nullStore) Save(name string, src io.Reader) (string, error) { return "/static/photos/x", nil }

func get(h echo.HandlerFunc, target string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	_ = h(e.NewContext(req, rec))
	return rec
}

func TestListLandsByCommodity(t *testing.T) {
	svc := &fakeLandSvc{lands: []entities.Land{
		{ID: "l1", Name: "North Field", Commodities: []string{"Tomatoes", "Garlic"}, Status: "active"},
		{ID: "l2", Name: "South Paddock", Commodities: []string{"Shallots"}, Status: "active"},
		{ID: "l3", Name: "East Plot", Commodities: []string{"Tomatoes"}, Status: "vacant"},
	}}
	h := New(svc, nullStore{})

	rec := get(h.List, "/lands?commodity=Tomatoes")
	require.Equal(t, http.StatusOK, rec.Code)

	var got []entities.Land
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "l1", got[0].ID)
	assert.Equal(t, "l3", got[1].ID)

	// Filters stack: active status plus commodity.
	rec = get(h.List, "/lands?status=active&commodity=Tomatoes")
	require.Equal(t, http.StatusOK, rec.Code)
	got = nil
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "l1", got[0].ID)
}

func TestListLandsNoMatchIsEmptyArray(t *testing.T) {
	h := New(&fakeLandSvc{lands: []entities.Land{
		{ID: "l1", Commodities: []string{"Garlic"}, Status: "active"},
	}}, nullStore{})

	rec := get(h.List, "/lands?commodity=Shallots")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}
