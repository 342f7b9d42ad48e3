package v1

import (
	"net/http"

	"skillsingh-backend/internal/delivery/http/middleware"
	"skillsingh-backend/internal/delivery/http/response"
	"skillsingh-backend/internal/domain"
	"skillsingh-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
}

// NewProfileHandler registers profile routes. The PUT doubles as the
// signup bootstrap: the first save creates the profile and fixes the role.
func NewProfileHandler(r *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &ProfileHandler{profileUC: profileUC}

	profile := r.Group("/profile")
	{
		profile.GET("/me", handler.GetMe)
		profile.PUT("/me", handler.SaveMe)
	}
}

type SaveProfileRequest struct {
	Role       string   `json:"role" binding:"omitempty,oneof=recruiter employee"`
	FullName   string   `json:"full_name" binding:"required"`
	Email      string   `json:"email" binding:"required,email"`
	Phone      string   `json:"phone"`
	Company    string   `json:"company"`
	Title      string   `json:"title"`
	Bio        string   `json:"bio"`
	Skills     []string `json:"skills"`
	Experience string   `json:"experience"`
	Education  string   `json:"education"`
	ResumeURL  string   `json:"resume_url" binding:"omitempty,url"`
}

// GetMe godoc
// @Summary      Get my profile
// @Description  Get the profile of the current user
// @Tags         profile
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.Profile}
// @Failure      404  {object}  response.Response
// @Router       /profile/me [get]
// @Security     BearerAuth
func (h *ProfileHandler) GetMe(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	profile, err := h.profileUC.GetProfile(c.Request.Context(), actor)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile", profile)
}

// SaveMe godoc
// @Summary      Save my profile
// @Description  Create the profile on first save (role required then, immutable afterwards) or update it
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        body  body      SaveProfileRequest  true  "Profile JSON"
// @Success      200   {object}  response.Response{data=domain.Profile}
// @Failure      400   {object}  response.Response
// @Router       /profile/me [put]
// @Security     BearerAuth
func (h *ProfileHandler) SaveMe(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	var req SaveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	toPtr := func(s string) *string {
		if s == "" {
			return nil
		}
		return &s
	}

	profile := &domain.Profile{
		Role:       req.Role,
		FullName:   req.FullName,
		Email:      req.Email,
		Phone:      toPtr(req.Phone),
		Company:    toPtr(req.Company),
		Title:      toPtr(req.Title),
		Bio:        toPtr(req.Bio),
		Skills:     req.Skills,
		Experience: toPtr(req.Experience),
		Education:  toPtr(req.Education),
		ResumeURL:  toPtr(req.ResumeURL),
	}

	saved, err := h.profileUC.SaveProfile(c.Request.Context(), actor, profile)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile saved", saved)
}
