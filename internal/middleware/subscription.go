package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Subscription plans, lowest first.
var planRank = map[string]int{
	"free":  0,
	"basic": 1,
	"pro":   2,
}

// RequirePlan gates a route group behind a minimum subscription plan. It must
// run after OrganizationScopeMiddleware.
func RequirePlan(minimum string) gin.HandlerFunc {
	required, ok := planRank[minimum]
	if !ok {
		panic("unknown plan: " + minimum)
	}
	return func(c *gin.Context) {
		plan := GetOrganizationPlan(c)
		if planRank[plan] < required {
			c.AbortWithStatusJSON(http.StatusPaymentRequired, gin.H{
				"error": "this feature requires the " + minimum + " plan or higher",
			})
			return
		}
		c.Next()
	}
}
