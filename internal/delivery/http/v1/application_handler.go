package v1

import (
	"net/http"

	"skillsingh-backend/internal/delivery/http/middleware"
	"skillsingh-backend/internal/delivery/http/response"
	"skillsingh-backend/internal/domain"
	"skillsingh-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

// NewApplicationHandler registers application routes.
func NewApplicationHandler(r *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	jobs := r.Group("/jobs")
	{
		jobs.POST("/:id/apply", handler.Apply)
	}

	employees := r.Group("/employees")
	{
		employees.GET("/applications", handler.ListForApplicant)
	}

	recruiters := r.Group("/recruiters")
	{
		recruiters.GET("/applications", handler.ListForRecruiter)
	}

	applications := r.Group("/applications")
	{
		applications.GET("/:id", handler.GetDetail)
		applications.PATCH("/:id", handler.Transition)
	}
}

type ApplyRequest struct {
	CoverLetter string `json:"cover_letter"`
}

// Apply godoc
// @Summary      Apply to a job
// @Description  Submit an application against an active job (Employee only, one per job)
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id    path      string        true   "Job ID"
// @Param        body  body      ApplyRequest  false  "Application data"
// @Success      201   {object}  response.Response{data=domain.Application}
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /jobs/{id}/apply [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Apply(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	app, err := h.applicationUC.Apply(c.Request.Context(), actor, c.Param("id"), req.CoverLetter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted", app)
}

// ListForApplicant godoc
// @Summary      Get my applications
// @Description  Get all applications submitted by the current employee, newest first
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Application}
// @Failure      403  {object}  response.Response
// @Router       /employees/applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListForApplicant(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	apps, err := h.applicationUC.ListForApplicant(c.Request.Context(), actor)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", apps)
}

// ListForRecruiter godoc
// @Summary      List received applications
// @Description  Get all applications against the recruiter's jobs, newest first
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Application}
// @Failure      403  {object}  response.Response
// @Router       /recruiters/applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListForRecruiter(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	apps, err := h.applicationUC.ListForRecruiter(c.Request.Context(), actor)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", apps)
}

// GetDetail godoc
// @Summary      Get application detail
// @Description  Get one application. Visible to its applicant and the owning recruiter.
// @Tags         applications
// @Produce      json
// @Param        id  path      string  true  "Application ID"
// @Success      200 {object}  response.Response{data=domain.Application}
// @Failure      403 {object}  response.Response
// @Failure      404 {object}  response.Response
// @Router       /applications/{id} [get]
// @Security     BearerAuth
func (h *ApplicationHandler) GetDetail(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	app, err := h.applicationUC.GetApplicationDetail(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application detail", app)
}

type TransitionRequest struct {
	Status string `json:"status" binding:"required,oneof=reviewed accepted rejected"`
}

// Transition godoc
// @Summary      Update application status
// @Description  Move an application to reviewed, accepted or rejected (owning recruiter only)
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Application ID"
// @Param        body  body      TransitionRequest  true  "Target status"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /applications/{id} [patch]
// @Security     BearerAuth
func (h *ApplicationHandler) Transition(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	var req TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.applicationUC.TransitionStatus(c.Request.Context(), actor, c.Param("id"), req.Status); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application status updated", nil)
}
