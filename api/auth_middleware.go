package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jungle-app/jungle-booking/supabase"
)

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return strings.TrimSpace(c.GetHeader("accesstoken"))
}

// RequireUser rejects requests without a valid access token and stores the
// resolved user under "user".
func RequireUser(client supabase.SupabaseClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		accessToken := bearerToken(c)

		if len(accessToken) == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authentication"})
			c.Abort()
			return
		}

		user, err := client.GetUser(c.Request.Context(), accessToken)

		if err != nil {
			c.Error(err)
			status, msg := errorResponse(err, "invalid authentication")
			if status == http.StatusInternalServerError || status == http.StatusBadGateway {
				status = http.StatusUnauthorized
			}
			c.JSON(status, gin.H{"error": msg})
			c.Abort()
			return
		}

		c.Set("user", *user)
		c.Set("accessToken", accessToken)
	}
}

// OptionalUser resolves the user when a token is present and lets the request
// through as a guest otherwise.
func OptionalUser(client supabase.SupabaseClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		accessToken := bearerToken(c)

		if len(accessToken) == 0 {
			return
		}

		user, err := client.GetUser(c.Request.Context(), accessToken)

		if err != nil {
			c.Error(err)
			return
		}

		c.Set("user", *user)
		c.Set("accessToken", accessToken)
	}
}

func currentUser(c *gin.Context) (supabase.User, bool) {
	value, ok := c.Get("user")
	if !ok {
		return supabase.User{}, false
	}
	user, ok := value.(supabase.User)
	return user, ok
}
