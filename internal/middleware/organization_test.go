package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/agroflow/agroflow-api/internal/db"
	"github.com/agroflow/agroflow-api/internal/mocks"
)

func TestOrganizationScopeMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	organizationID := uuid.New()

	tests := []struct {
		name       string
		header     string
		setupMocks func(m *mocks.MockQuerier)
		wantStatus int
		wantPlan   string
	}{
		{
			name:   "resolves organization and plan",
			header: organizationID.String(),
			setupMocks: func(m *mocks.MockQuerier) {
				m.EXPECT().
					GetOrganization(gomock.Any(), organizationID).
					Return(db.Organization{ID: organizationID, Name: "Demo Farm", Plan: "basic", Currency: "EUR"}, nil)
			},
			wantStatus: http.StatusOK,
			wantPlan:   "basic",
		},
		{
			name:       "missing header",
			header:     "",
			setupMocks: func(m *mocks.MockQuerier) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed id",
			header:     "not-a-uuid",
			setupMocks: func(m *mocks.MockQuerier) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "unknown organization",
			header: organizationID.String(),
			setupMocks: func(m *mocks.MockQuerier) {
				m.EXPECT().
					GetOrganization(gomock.Any(), organizationID).
					Return(db.Organization{}, pgx.ErrNoRows)
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQuerier := mocks.NewMockQuerier(ctrl)
			tt.setupMocks(mockQuerier)

			router := gin.New()
			router.Use(OrganizationScopeMiddleware(mockQuerier))
			router.GET("/test", func(c *gin.Context) {
				assert.Equal(t, organizationID, GetOrganizationID(c))
				assert.Equal(t, tt.wantPlan, GetOrganizationPlan(c))
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.header != "" {
				req.Header.Set(OrganizationIDHeader, tt.header)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestRequirePlan(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		plan       string
		minimum    string
		wantStatus int
	}{
		{name: "plan meets minimum", plan: "basic", minimum: "basic", wantStatus: http.StatusOK},
		{name: "higher plan passes", plan: "pro", minimum: "basic", wantStatus: http.StatusOK},
		{name: "free plan gated", plan: "free", minimum: "basic", wantStatus: http.StatusPaymentRequired},
		{name: "unknown plan treated as free", plan: "", minimum: "basic", wantStatus: http.StatusPaymentRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(func(c *gin.Context) {
				c.Set(organizationPlanKey, tt.plan)
			}, RequirePlan(tt.minimum))
			router.GET("/test", func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
