package application_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-leave/internal/application"
	applicationerrors "go-leave/internal/application/errors"
	"go-leave/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeApplicationService struct {
	submitFn func(ctx context.Context, reqs []application.CreateApplicationRequest) ([]application.ApplicationResponse, error)
	searchFn func(ctx context.Context, q application.SearchApplicationsQuery) (application.SearchApplicationsResult, error)
}

func (f *fakeApplicationService) Submit(ctx context.Context, reqs []application.CreateApplicationRequest) ([]application.ApplicationResponse, error) {
	if f.submitFn != nil {
		return f.submitFn(ctx, reqs)
	}
	return nil, nil
}

func (f *fakeApplicationService) Search(ctx context.Context, q application.SearchApplicationsQuery) (application.SearchApplicationsResult, error) {
	if f.searchFn != nil {
		return f.searchFn(ctx, q)
	}
	return application.SearchApplicationsResult{}, nil
}

func setupApplicationRouter(svc application.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	application.RegisterRoutes(router.Group(""), application.NewHandler(svc))
	return router
}

func TestApplicationHandler_Submit(t *testing.T) {
	t.Run("returns 400 for an empty body without calling the service", func(t *testing.T) {
		svc := &fakeApplicationService{
			submitFn: func(ctx context.Context, reqs []application.CreateApplicationRequest) ([]application.ApplicationResponse, error) {
				t.Fatal("service must not be called for an empty body")
				return nil, nil
			},
		}
		router := setupApplicationRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/applications", strings.NewReader(""))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"message": "Request body cannot be empty."}`, w.Body.String())
	})

	t.Run("returns 400 for a null body", func(t *testing.T) {
		router := setupApplicationRouter(&fakeApplicationService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/applications", strings.NewReader("null"))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"message": "Request body cannot be empty."}`, w.Body.String())
	})

	t.Run("wraps a single object into a one-element batch", func(t *testing.T) {
		var got []application.CreateApplicationRequest
		svc := &fakeApplicationService{
			submitFn: func(ctx context.Context, reqs []application.CreateApplicationRequest) ([]application.ApplicationResponse, error) {
				got = reqs
				return []application.ApplicationResponse{
					{ID: 1, LeaveStartDate: "2024-11-01T00:00:00Z", LeaveEndDate: "2024-11-10T00:00:00Z", EmployeeID: 2},
				}, nil
			},
		}
		router := setupApplicationRouter(svc)

		body := `{"leave_start_date": "2024-11-01", "leave_end_date": "2024-11-10", "employeeId": 2}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/applications", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Len(t, got, 1)
		assert.Equal(t, 2, got[0].EmployeeID)
		assert.JSONEq(t, `[
			{"id": 1, "leave_start_date": "2024-11-01T00:00:00Z", "leave_end_date": "2024-11-10T00:00:00Z", "employeeId": 2}
		]`, w.Body.String())
	})

	t.Run("passes an array through in order", func(t *testing.T) {
		var got []application.CreateApplicationRequest
		svc := &fakeApplicationService{
			submitFn: func(ctx context.Context, reqs []application.CreateApplicationRequest) ([]application.ApplicationResponse, error) {
				got = reqs
				return []application.ApplicationResponse{}, nil
			},
		}
		router := setupApplicationRouter(svc)

		body := `[
			{"leave_start_date": "2024-11-01", "leave_end_date": "2024-11-02", "employeeId": 1},
			{"leave_start_date": "2024-12-01", "leave_end_date": "2024-12-02", "employeeId": 2}
		]`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/applications", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Len(t, got, 2)
		assert.Equal(t, 1, got[0].EmployeeID)
		assert.Equal(t, 2, got[1].EmployeeID)
	})

	t.Run("returns 400 for malformed JSON", func(t *testing.T) {
		router := setupApplicationRouter(&fakeApplicationService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/applications", strings.NewReader(`{"leave_start_date":`))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"message": "Invalid request body."}`, w.Body.String())
	})

	t.Run("echoes the offending item on missing fields", func(t *testing.T) {
		offending := application.CreateApplicationRequest{LeaveStartDate: "2024-11-01", EmployeeID: 2}
		svc := &fakeApplicationService{
			submitFn: func(ctx context.Context, reqs []application.CreateApplicationRequest) ([]application.ApplicationResponse, error) {
				return nil, applicationerrors.ErrMissingRequiredFields.WithDetails(offending)
			},
		}
		router := setupApplicationRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/applications", strings.NewReader(`{"leave_start_date": "2024-11-01", "employeeId": 2}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{
			"message": "Missing required fields: leave_start_date, leave_end_date, and employeeId.",
			"data": {"leave_start_date": "2024-11-01", "employeeId": 2}
		}`, w.Body.String())
	})

	t.Run("surfaces an unknown employee as 400", func(t *testing.T) {
		svc := &fakeApplicationService{
			submitFn: func(ctx context.Context, reqs []application.CreateApplicationRequest) ([]application.ApplicationResponse, error) {
				return nil, applicationerrors.EmployeeDoesNotExist(999)
			},
		}
		router := setupApplicationRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/applications", strings.NewReader(`{"leave_start_date": "2024-11-01", "leave_end_date": "2024-11-02", "employeeId": 999}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"message": "Employee ID 999 does not exist."}`, w.Body.String())
	})
}

func TestApplicationHandler_Search(t *testing.T) {
	t.Run("binds query parameters and returns data with pagination", func(t *testing.T) {
		var got application.SearchApplicationsQuery
		svc := &fakeApplicationService{
			searchFn: func(ctx context.Context, q application.SearchApplicationsQuery) (application.SearchApplicationsResult, error) {
				got = q
				return application.SearchApplicationsResult{
					Data: []application.ApplicationResponse{
						{ID: 6, LeaveStartDate: "2024-11-01T00:00:00Z", LeaveEndDate: "2024-11-10T00:00:00Z", EmployeeID: 2},
					},
					Pagination: response.NewPagination(7, 2, 5, 1),
				}, nil
			},
		}
		router := setupApplicationRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/applications/search?employeeId=2&firstName=Jane&page=2&limit=5", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotNil(t, got.EmployeeID)
		assert.Equal(t, 2, *got.EmployeeID)
		assert.Equal(t, "Jane", got.FirstName)
		assert.Equal(t, 2, got.Page)
		assert.Equal(t, 5, got.Limit)
		assert.JSONEq(t, `{
			"data": [
				{"id": 6, "leave_start_date": "2024-11-01T00:00:00Z", "leave_end_date": "2024-11-10T00:00:00Z", "employeeId": 2}
			],
			"pagination": {"total": 7, "page": 2, "pageSize": 1, "totalPages": 2}
		}`, w.Body.String())
	})

	t.Run("defaults page and limit when absent", func(t *testing.T) {
		var got application.SearchApplicationsQuery
		svc := &fakeApplicationService{
			searchFn: func(ctx context.Context, q application.SearchApplicationsQuery) (application.SearchApplicationsResult, error) {
				got = q
				return application.SearchApplicationsResult{
					Data:       []application.ApplicationResponse{},
					Pagination: response.NewPagination(0, 1, 10, 0),
				}, nil
			},
		}
		router := setupApplicationRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/applications/search", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Nil(t, got.EmployeeID)
		assert.Equal(t, 1, got.Page)
		assert.Equal(t, 10, got.Limit)
	})

	t.Run("rejects a non-numeric employeeId", func(t *testing.T) {
		svc := &fakeApplicationService{
			searchFn: func(ctx context.Context, q application.SearchApplicationsQuery) (application.SearchApplicationsResult, error) {
				t.Fatal("service must not be called when binding fails")
				return application.SearchApplicationsResult{}, nil
			},
		}
		router := setupApplicationRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/applications/search?employeeId=abc", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
