package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jungle-app/jungle-booking/profile"
)

const maxAvatarBytes = 5 << 20

// ProfileHandler expects RequireUser on its group.
type ProfileHandler struct {
	service ProfileService
}

func NewProfileHandler(service ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

func (h *ProfileHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.Get)
	rg.PUT("", h.Update)
	rg.PUT("/avatar", h.UploadAvatar)
}

func (h *ProfileHandler) Get(c *gin.Context) {
	user, _ := currentUser(c)

	c.IndentedJSON(http.StatusOK, h.service.Get(c.Request.Context(), user))
}

func (h *ProfileHandler) Update(c *gin.Context) {
	user, _ := currentUser(c)

	var update profile.Update

	if err := c.ShouldBindJSON(&update); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	updated, err := h.service.UpdateAccount(c.Request.Context(), user, c.GetString("accessToken"), update)

	if err != nil {
		respondError(c, err, "failed to update account")
		return
	}

	c.IndentedJSON(http.StatusOK, updated)
}

// UploadAvatar takes the image from the multipart field "avatar".
func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	user, _ := currentUser(c)

	header, err := c.FormFile("avatar")

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing avatar file"})
		return
	}

	if header.Size > maxAvatarBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "avatar is too large"})
		return
	}

	file, err := header.Open()

	if err != nil {
		respondError(c, err, "failed to read avatar")
		return
	}

	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxAvatarBytes))

	if err != nil {
		respondError(c, err, "failed to read avatar")
		return
	}

	avatarURL, err := h.service.UploadAvatar(c.Request.Context(), user, c.GetString("accessToken"), data, header.Header.Get("Content-Type"))

	if err != nil {
		respondError(c, err, "failed to upload avatar")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"avatarUrl": avatarURL})
}
