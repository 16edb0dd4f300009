package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"dentax/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDoctorService struct {
	doctors []models.Doctor
}

func (f *fakeDoctorService) Add(d *models.Doctor) (string, error) {
	f.doctors = append(f.doctors, *d)
	return "64b000000000000000000004", nil
}

func (f *fakeDoctorService) List() ([]models.Doctor, error) { return f.doctors, nil }

func (f *fakeDoctorService) Remove(id string) error { return nil }

func newDoctorRouter(svc *fakeDoctorService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewDoctorHandler(svc)
	r := gin.New()
	r.GET("/doctors", h.ListDoctors)
	return r
}

func TestListDoctors(t *testing.T) {
	r := newDoctorRouter(&fakeDoctorService{doctors: []models.Doctor{
		{Name: "Dr. Molar", Specialty: "Oral Surgery"},
	}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/doctors", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Dr. Molar")
}

func TestListDoctorsEmptyIsJSONArray(t *testing.T) {
	r := newDoctorRouter(&fakeDoctorService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/doctors", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}
