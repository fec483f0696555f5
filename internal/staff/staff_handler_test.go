package staff_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"go-payops/internal/shared/apperror"
	"go-payops/internal/shared/response"
	"go-payops/internal/staff"
	stafferrors "go-payops/internal/staff/errors"
)

type fakeStaffService struct {
	createFn   func(ctx context.Context, req staff.CreateStaffRequest) (staff.StaffResponse, error)
	getAllFn   func(ctx context.Context) ([]staff.StaffResponse, error)
	getByIDFn  func(ctx context.Context, id string) (staff.StaffResponse, error)
}

func (f *fakeStaffService) Create(ctx context.Context, req staff.CreateStaffRequest) (staff.StaffResponse, error) {
	if f.createFn != nil {
		return f.createFn(ctx, req)
	}
	return staff.StaffResponse{}, nil
}

func (f *fakeStaffService) GetAll(ctx context.Context) ([]staff.StaffResponse, error) {
	if f.getAllFn != nil {
		return f.getAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeStaffService) GetByID(ctx context.Context, id string) (staff.StaffResponse, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return staff.StaffResponse{}, nil
}

func setupStaffRouter(svc staff.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	r := gin.New()
	staff.RegisterRoutes(r.Group("/api/v1"), staff.NewHandler(svc))
	return r
}

func TestStaffHandler_Create(t *testing.T) {
	staffID := uuid.NewString()
	svc := &fakeStaffService{
		createFn: func(ctx context.Context, req staff.CreateStaffRequest) (staff.StaffResponse, error) {
			assert.Equal(t, "Maria Santos", req.FullName)
			return staff.StaffResponse{
				ID:        staffID,
				FullName:  req.FullName,
				DailyRate: 500,
				IsActive:  true,
			}, nil
		},
	}
	router := setupStaffRouter(svc)

	body := `{"full_name":"Maria Santos","daily_rate":500}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/staff", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var envelope response.ApiEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.True(t, envelope.Ok)
	assert.Nil(t, envelope.Error)

	data, ok := envelope.Data.(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, staffID, data["id"])
	assert.Equal(t, 500.0, data["daily_rate"])
}

func TestStaffHandler_Create_BindingFailure(t *testing.T) {
	router := setupStaffRouter(&fakeStaffService{})

	// daily_rate missing.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/staff", strings.NewReader(`{"full_name":"Maria"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var envelope response.ApiEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.False(t, envelope.Ok)
	assert.NotNil(t, envelope.Error)
}

func TestStaffHandler_GetById_NotFound(t *testing.T) {
	svc := &fakeStaffService{
		getByIDFn: func(ctx context.Context, id string) (staff.StaffResponse, error) {
			return staff.StaffResponse{}, stafferrors.ErrStaffNotFound
		},
	}
	router := setupStaffRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/staff/"+uuid.NewString(), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var envelope response.ApiEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.False(t, envelope.Ok)

	errBody, ok := envelope.Error.(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, apperror.CodeNotFound, errBody["code"])
}
