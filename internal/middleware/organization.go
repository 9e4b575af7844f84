package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/agroflow/agroflow-api/internal/db"
)

const (
	OrganizationIDHeader = "X-Organization-ID"
	organizationIDKey    = "organizationID"
	organizationPlanKey  = "organizationPlan"
)

// OrganizationScopeMiddleware resolves the caller's organization from the
// X-Organization-ID header and makes its id and plan available to handlers.
// Every business route runs behind it; a request without a valid organization
// never reaches a service.
func OrganizationScopeMiddleware(queries db.Querier) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(OrganizationIDHeader)
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "missing " + OrganizationIDHeader + " header"})
			return
		}

		id, err := uuid.Parse(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid organization id"})
			return
		}

		org, err := queries.GetOrganization(c.Request.Context(), id)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unknown organization"})
			return
		}

		c.Set(organizationIDKey, org.ID)
		c.Set(organizationPlanKey, org.Plan)
		c.Next()
	}
}

// GetOrganizationID returns the organization resolved for this request.
func GetOrganizationID(c *gin.Context) uuid.UUID {
	if v, exists := c.Get(organizationIDKey); exists {
		if id, ok := v.(uuid.UUID); ok {
			return id
		}
	}
	return uuid.Nil
}

// GetOrganizationPlan returns the subscription plan resolved for this request.
func GetOrganizationPlan(c *gin.Context) string {
	if v, exists := c.Get(organizationPlanKey); exists {
		if plan, ok := v.(string); ok {
			return plan
		}
	}
	return ""
}
