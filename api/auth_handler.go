package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jungle-app/jungle-booking/supabase"
)

type AuthHandler struct {
	client supabase.SupabaseClient
}

func NewAuthHandler(client supabase.SupabaseClient) *AuthHandler {
	return &AuthHandler{client: client}
}

func (h *AuthHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/sign-in", h.SignIn)
	rg.POST("/sign-up", h.SignUp)
	rg.POST("/reset-password", h.ResetPassword)
	rg.POST("/sign-out", RequireUser(h.client), h.SignOut)
	rg.GET("/me", RequireUser(h.client), h.Me)
}

type credentials struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Username string `json:"username"`
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	var body credentials

	if err := c.ShouldBindJSON(&body); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	session, err := h.client.SignIn(c.Request.Context(), body.Email, body.Password)

	if err != nil {
		respondError(c, err, "failed to sign in")
		return
	}

	c.IndentedJSON(http.StatusOK, session)
}

// SignUp answers 201 with the session, which is empty when the backend
// requires email confirmation first.
func (h *AuthHandler) SignUp(c *gin.Context) {
	var body credentials

	if err := c.ShouldBindJSON(&body); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	session, err := h.client.SignUp(c.Request.Context(), body.Email, body.Password, body.Username)

	if err != nil {
		respondError(c, err, "failed to sign up")
		return
	}

	c.IndentedJSON(http.StatusCreated, session)
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var body struct {
		Email string `json:"email" binding:"required,email"`
	}

	if err := c.ShouldBindJSON(&body); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}

	if err := h.client.ResetPassword(c.Request.Context(), body.Email); err != nil {
		respondError(c, err, "failed to send reset email")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "reset email sent"})
}

func (h *AuthHandler) SignOut(c *gin.Context) {
	if err := h.client.SignOut(c.Request.Context(), c.GetString("accessToken")); err != nil {
		respondError(c, err, "failed to sign out")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) Me(c *gin.Context) {
	user, _ := currentUser(c)

	c.IndentedJSON(http.StatusOK, user)
}
