package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TenantHeader is the request header carrying the caller's tenant identity.
const TenantHeader = "X-Tenant-Id"

const tenantIDKey = "tenant_id"

// TenantScope resolves the request's tenant context from the tenant header.
// An absent or malformed header resolves to the unscoped (administrative)
// view rather than an error; tenant existence is checked later by whichever
// operation needs it. The resolver never aborts the request.
func TenantScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		if header := c.GetHeader(TenantHeader); header != "" {
			if tenantID, err := uuid.Parse(header); err == nil {
				c.Set(tenantIDKey, tenantID)
			}
		}
		c.Next()
	}
}

// TenantIDFrom returns the resolved tenant scope for the request: a concrete
// tenant id, or nil for the unscoped view. Handlers thread this value
// explicitly into service calls.
func TenantIDFrom(c *gin.Context) *uuid.UUID {
	value, ok := c.Get(tenantIDKey)
	if !ok {
		return nil
	}
	tenantID, ok := value.(uuid.UUID)
	if !ok {
		return nil
	}
	return &tenantID
}
