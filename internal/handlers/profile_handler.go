package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "perawise/internal/errors"
	"perawise/internal/services"
)

// ProfileHandler handles the derived personality profile endpoints.
type ProfileHandler struct {
	profileService services.ProfileServicer
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService services.ProfileServicer) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// GetProfile returns the user's personality profile if one exists
// @Summary     Get personality profile
// @Description Fetch the generated financial personality profile
// @Tags        profile
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "exists flag plus profile"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	profile, err := h.profileService.GetProfile(userID)
	if err != nil {
		// A missing profile is a normal state, not an error response.
		if errors.Is(err, apperrors.ErrProfileNotFound) {
			c.JSON(http.StatusOK, gin.H{"exists": false})
			return
		}
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"exists": true, "profile": profile})
}

// Export returns all onboarding data held for the user
// @Summary     Export profile data
// @Tags        profile
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.ProfileExport "Responses, profile, export time"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profile/export [get]
func (h *ProfileHandler) Export(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	export, err := h.profileService.Export(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, export)
}

// Delete erases the user's onboarding data
// @Summary     Delete profile data
// @Description Hard-delete responses and profile, reset onboarding flags
// @Tags        profile
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} MessageResponse "Data deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profile [delete]
func (h *ProfileHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.profileService.DeleteData(userID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Profile data deleted successfully"})
}
