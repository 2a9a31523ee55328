package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dbicalho1/TempleCals/pkg/response"
)

// MustGetUserID extracts the authenticated user id from the context. Returns
// false (after writing a 401) when the auth middleware did not inject one;
// callers should return immediately in that case.
func MustGetUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, "not authenticated")
		return 0, false
	}
	id, ok := v.(uint)
	if !ok || id == 0 {
		response.Unauthorized(c, "not authenticated")
		return 0, false
	}
	return id, true
}

// MustGetTokenInfo extracts the token's ID and expiry from the context.
func MustGetTokenInfo(c *gin.Context) (jti string, expiresAt time.Time, ok bool) {
	v, exists := c.Get("token_jti")
	if !exists {
		response.Unauthorized(c, "not authenticated")
		return "", time.Time{}, false
	}
	jti, sOK := v.(string)

	e, exists := c.Get("token_exp")
	if !exists || !sOK {
		response.Unauthorized(c, "not authenticated")
		return "", time.Time{}, false
	}
	expiresAt, tOK := e.(time.Time)
	if !tOK {
		response.Unauthorized(c, "not authenticated")
		return "", time.Time{}, false
	}
	return jti, expiresAt, true
}

// parseIDParam parses a positive integer path parameter.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		response.BadRequest(c, "invalid "+name+" parameter")
		return 0, false
	}
	return uint(id), true
}
