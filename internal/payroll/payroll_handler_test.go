package payroll_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"go-payroll-my/internal/payroll"
	payrollerrors "go-payroll-my/internal/payroll/errors"
	"go-payroll-my/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	// Samakan dengan urutan startup produksi: Init() harus terpasang sebelum
	// validator Gin meng-cache metadata struct pada validasi pertama.
	apperror.Init()
	os.Exit(m.Run())
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func mustDecodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakePayrollService struct {
	runForEmployeeFn func(ctx context.Context, companyID, actorID string, req payroll.RunPayrollRequest) (payroll.RunPayrollResponse, error)
	runBatchFn       func(ctx context.Context, companyID, actorID string, req payroll.RunBatchRequest) (payroll.RunBatchResponse, error)
	getRunsFn        func(ctx context.Context, companyID string, year, month int) ([]payroll.RunPayrollResponse, error)
	getRunFn         func(ctx context.Context, companyID, id string) (payroll.RunPayrollResponse, error)
	getYTDFn         func(ctx context.Context, companyID, employeeID string, year int) (payroll.YTDResponse, error)
	getEPFPartFn     func(ctx context.Context, companyID, employeeID string, asOf time.Time) (payroll.EPFPartResponse, error)
}

func (f *fakePayrollService) RunForEmployee(ctx context.Context, companyID, actorID string, req payroll.RunPayrollRequest) (payroll.RunPayrollResponse, error) {
	return f.runForEmployeeFn(ctx, companyID, actorID, req)
}

func (f *fakePayrollService) RunBatch(ctx context.Context, companyID, actorID string, req payroll.RunBatchRequest) (payroll.RunBatchResponse, error) {
	return f.runBatchFn(ctx, companyID, actorID, req)
}

func (f *fakePayrollService) GetRuns(ctx context.Context, companyID string, year, month int) ([]payroll.RunPayrollResponse, error) {
	return f.getRunsFn(ctx, companyID, year, month)
}

func (f *fakePayrollService) GetRun(ctx context.Context, companyID, id string) (payroll.RunPayrollResponse, error) {
	return f.getRunFn(ctx, companyID, id)
}

func (f *fakePayrollService) GetYTD(ctx context.Context, companyID, employeeID string, year int) (payroll.YTDResponse, error) {
	return f.getYTDFn(ctx, companyID, employeeID, year)
}

func (f *fakePayrollService) GetEPFPart(ctx context.Context, companyID, employeeID string, asOf time.Time) (payroll.EPFPartResponse, error) {
	return f.getEPFPartFn(ctx, companyID, employeeID, asOf)
}

func TestPayrollHandler_Run_CachesIdempotentResponse(t *testing.T) {
	companyID := uuid.New().String()
	actorID := uuid.New().String()
	employeeID := uuid.New().String()

	runResp := payroll.RunPayrollResponse{
		ID:         uuid.New().String(),
		RunNumber:  "PR-202501-00001",
		CompanyID:  companyID,
		EmployeeID: employeeID,
		Year:       2025,
		Month:      1,
		Status:     payroll.StatusProcessed,
	}

	svc := &fakePayrollService{
		runForEmployeeFn: func(ctx context.Context, cid, aid string, req payroll.RunPayrollRequest) (payroll.RunPayrollResponse, error) {
			assert.Equal(t, companyID, cid)
			assert.Equal(t, actorID, aid)
			assert.Equal(t, employeeID, req.EmployeeID)
			return runResp, nil
		},
	}

	rdb, redisMock := redismock.NewClientMock()
	cacheKey := "idemp:/api/v1/payroll/runs:" + actorID + ":abc"
	lockKey := cacheKey + ":lock"

	payload, err := json.Marshal(runResp)
	assert.NoError(t, err)
	redisMock.ExpectSet(cacheKey, payload, 24*time.Hour).SetVal("OK")
	redisMock.ExpectDel(lockKey).SetVal(1)

	h := payroll.NewHandlerWithRedis(svc, rdb)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"employee_id":"` + employeeID + `","year":2025,"month":1}`
	c.Request = httptest.NewRequest(http.MethodPost, "/payroll/runs", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("company_id", companyID)
	c.Set("actor_id", actorID)
	c.Set("idempotency_cache_key", cacheKey)
	c.Set("idempotency_lock_key", lockKey)

	h.Run(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestPayrollHandler_Run_InvalidBody(t *testing.T) {
	apperror.Init()
	h := payroll.NewHandler(&fakePayrollService{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"employee_id":"bukan-uuid","year":2025,"month":1}`
	c.Request = httptest.NewRequest(http.MethodPost, "/payroll/runs", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("company_id", uuid.New().String())

	h.Run(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
	assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	assert.Equal(t, "Employee Id is invalid", env.Error.Message)
}

func TestPayrollHandler_Run_Conflict(t *testing.T) {
	svc := &fakePayrollService{
		runForEmployeeFn: func(ctx context.Context, cid, aid string, req payroll.RunPayrollRequest) (payroll.RunPayrollResponse, error) {
			return payroll.RunPayrollResponse{}, payrollerrors.ErrRunAlreadyExists
		},
	}

	h := payroll.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"employee_id":"` + uuid.New().String() + `","year":2025,"month":1}`
	c.Request = httptest.NewRequest(http.MethodPost, "/payroll/runs", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("company_id", uuid.New().String())

	h.Run(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
	assert.Equal(t, "CONFLICT", env.Error.Code)
}

func TestPayrollHandler_GetYTD(t *testing.T) {
	companyID := uuid.New().String()
	employeeID := uuid.New().String()

	svc := &fakePayrollService{
		getYTDFn: func(ctx context.Context, cid, eid string, year int) (payroll.YTDResponse, error) {
			assert.Equal(t, companyID, cid)
			assert.Equal(t, employeeID, eid)
			assert.Equal(t, 2025, year)
			return payroll.YTDResponse{EmployeeID: eid, Year: year, Gross: "8000.00", PCB: "25.30"}, nil
		},
	}

	h := payroll.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/payroll/ytd/"+employeeID+"?year=2025", nil)
	c.Params = []gin.Param{{Key: "employeeID", Value: employeeID}}
	c.Set("company_id", companyID)

	h.GetYTD(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)

	var ytd payroll.YTDResponse
	assert.NoError(t, json.Unmarshal(env.Data, &ytd))
	assert.Equal(t, "8000.00", ytd.Gross)
}

func TestPayrollHandler_GetEPFPart(t *testing.T) {
	companyID := uuid.New().String()
	employeeID := uuid.New().String()

	svc := &fakePayrollService{
		getEPFPartFn: func(ctx context.Context, cid, eid string, asOf time.Time) (payroll.EPFPartResponse, error) {
			assert.Equal(t, time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC), asOf)
			return payroll.EPFPartResponse{EmployeeID: eid, Part: "", Reason: "intern"}, nil
		},
	}

	h := payroll.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/statutory/epf/parts/"+employeeID+"?period=06/2025", nil)
	c.Params = []gin.Param{{Key: "employeeID", Value: employeeID}}
	c.Set("company_id", companyID)

	h.GetEPFPart(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)

	var resp payroll.EPFPartResponse
	assert.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, "intern", resp.Reason)
}
