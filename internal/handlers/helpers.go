package handlers

import (
	"github.com/gin-gonic/gin"
)

// getAccountID reads the account id the auth middleware stored.
func getAccountID(c *gin.Context) (int, bool) {
	v, ok := c.Get("account_id")
	if !ok {
		return 0, false
	}
	id, ok := v.(int)
	return id, ok
}
