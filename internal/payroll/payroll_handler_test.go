package payroll_test

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

	"go-payops/internal/payroll"
	payrollerrors "go-payops/internal/payroll/errors"
	"go-payops/internal/shared/apperror"
	"go-payops/internal/shared/response"
)

type fakePayrollService struct {
	createFn          func(ctx context.Context, req payroll.CreatePayrollRequest) (payroll.PayrollResponse, error)
	getAllFn          func(ctx context.Context) ([]payroll.PayrollResponse, error)
	getByIDFn         func(ctx context.Context, id string) (payroll.PayrollResponse, error)
	getByStaffFn      func(ctx context.Context, staffID string) ([]payroll.PayrollResponse, error)
	generatePayslipFn func(ctx context.Context, id string) ([]byte, error)
}

func (f *fakePayrollService) Create(ctx context.Context, req payroll.CreatePayrollRequest) (payroll.PayrollResponse, error) {
	if f.createFn != nil {
		return f.createFn(ctx, req)
	}
	return payroll.PayrollResponse{}, nil
}

func (f *fakePayrollService) GetAll(ctx context.Context) ([]payroll.PayrollResponse, error) {
	if f.getAllFn != nil {
		return f.getAllFn(ctx)
	}
	return nil, nil
}

func (f *fakePayrollService) GetByID(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return payroll.PayrollResponse{}, nil
}

func (f *fakePayrollService) GetByStaff(ctx context.Context, staffID string) ([]payroll.PayrollResponse, error) {
	if f.getByStaffFn != nil {
		return f.getByStaffFn(ctx, staffID)
	}
	return nil, nil
}

func (f *fakePayrollService) GeneratePayslip(ctx context.Context, id string) ([]byte, error) {
	if f.generatePayslipFn != nil {
		return f.generatePayslipFn(ctx, id)
	}
	return nil, nil
}

func noopIdempotency() gin.HandlerFunc {
	return func(c *gin.Context) { c.Next() }
}

func setupPayrollRouter(svc payroll.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	r := gin.New()
	payroll.RegisterRoutes(r.Group("/api/v1"), payroll.NewHandler(svc), noopIdempotency())
	return r
}

func TestPayrollHandler_GetById(t *testing.T) {
	recordID := uuid.NewString()
	svc := &fakePayrollService{
		getByIDFn: func(ctx context.Context, id string) (payroll.PayrollResponse, error) {
			assert.Equal(t, recordID, id)
			return payroll.PayrollResponse{
				ID:       recordID,
				Period:   "2024-06",
				GrossPay: 1150,
				NetPay:   1130,
			}, nil
		},
	}
	router := setupPayrollRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/payrolls/"+recordID, nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var envelope response.ApiEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.True(t, envelope.Ok)
	assert.Nil(t, envelope.Error)

	data, ok := envelope.Data.(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, "2024-06", data["period"])
	assert.Equal(t, 1130.0, data["net_pay"])
}

func TestPayrollHandler_Create_Conflict(t *testing.T) {
	svc := &fakePayrollService{
		createFn: func(ctx context.Context, req payroll.CreatePayrollRequest) (payroll.PayrollResponse, error) {
			return payroll.PayrollResponse{}, payrollerrors.ErrDuplicatePeriod
		},
	}
	router := setupPayrollRouter(svc)

	body := `{"staff_id":"` + uuid.NewString() + `","period":"2024-06"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payrolls", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	var envelope response.ApiEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.False(t, envelope.Ok)

	errBody, ok := envelope.Error.(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, apperror.CodeConflict, errBody["code"])
}

func TestPayrollHandler_DownloadPayslip(t *testing.T) {
	recordID := uuid.NewString()
	svc := &fakePayrollService{
		generatePayslipFn: func(ctx context.Context, id string) ([]byte, error) {
			return []byte("%PDF-1.4 stub"), nil
		},
	}
	router := setupPayrollRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/payrolls/"+recordID+"/payslip/download", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "payslip.pdf")
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF"))
}
