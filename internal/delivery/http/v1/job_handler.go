package v1

import (
	"net/http"

	"skillsingh-backend/internal/delivery/http/middleware"
	"skillsingh-backend/internal/delivery/http/response"
	"skillsingh-backend/internal/domain"
	"skillsingh-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

// NewJobHandler registers job routes. Browsing is public; posting and
// closing require an authenticated recruiter.
func NewJobHandler(public *gin.RouterGroup, protected *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	publicJobs := public.Group("/jobs")
	{
		publicJobs.GET("", handler.ListActive)
		publicJobs.GET("/:id", handler.GetDetails)
	}

	protectedJobs := protected.Group("/jobs")
	{
		protectedJobs.POST("", handler.Create)
		protectedJobs.POST("/:id/close", handler.Close)
	}

	recruiters := protected.Group("/recruiters")
	{
		recruiters.GET("/jobs", handler.ListMine)
	}
}

type CreateJobRequest struct {
	Title        string   `json:"title" binding:"required"`
	Company      string   `json:"company" binding:"required"`
	Location     string   `json:"location" binding:"required"`
	Type         string   `json:"type" binding:"required,oneof=full-time part-time contract internship remote"`
	Description  string   `json:"description" binding:"required"`
	Requirements []string `json:"requirements"`
	SalaryRange  string   `json:"salary_range"`
}

// Create godoc
// @Summary      Post a new job
// @Description  Create a job posting (Recruiter only). The job starts active.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      CreateJobRequest  true  "Job JSON"
// @Success      201  {object}  response.Response{data=domain.Job}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job := &domain.Job{
		Title:        req.Title,
		Company:      req.Company,
		Location:     req.Location,
		Type:         req.Type,
		Description:  req.Description,
		Requirements: req.Requirements,
	}
	if req.SalaryRange != "" {
		job.SalaryRange = &req.SalaryRange
	}

	if err := h.jobUC.CreateJob(c.Request.Context(), actor, job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job created", job)
}

// Close godoc
// @Summary      Close a job
// @Description  Close a job posting (owning recruiter only). Closed jobs cannot be reopened.
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id}/close [post]
// @Security     BearerAuth
func (h *JobHandler) Close(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	if err := h.jobUC.CloseJob(c.Request.Context(), actor, c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job closed", nil)
}

// ListActive godoc
// @Summary      List open jobs
// @Description  Get active job postings, newest first (no auth required)
// @Tags         jobs
// @Produce      json
// @Param        page       query     int  false  "Page number"
// @Param        page_size  query     int  false  "Page size"
// @Success      200        {object}  response.Response
// @Router       /jobs [get]
func (h *JobHandler) ListActive(c *gin.Context) {
	page, pageSize := pageParams(c)

	jobs, total, err := h.jobUC.ListActiveJobs(c.Request.Context(), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job list", gin.H{
		"jobs":      jobs,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// ListMine godoc
// @Summary      List my jobs
// @Description  Get all jobs posted by the logged-in recruiter, any status
// @Tags         recruiters
// @Produce      json
// @Param        page       query     int  false  "Page number"
// @Param        page_size  query     int  false  "Page size"
// @Success      200        {object}  response.Response
// @Failure      403        {object}  response.Response
// @Router       /recruiters/jobs [get]
// @Security     BearerAuth
func (h *JobHandler) ListMine(c *gin.Context) {
	actor := middleware.ActorFromContext(c)
	page, pageSize := pageParams(c)

	jobs, total, err := h.jobUC.ListMyJobs(c.Request.Context(), actor, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "My jobs", gin.H{
		"jobs":      jobs,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// GetDetails godoc
// @Summary      Get job details
// @Description  Get a single job. Closed jobs remain viewable but not appliable.
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response{data=domain.Job}
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetDetails(c *gin.Context) {
	job, err := h.jobUC.GetJobDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job details", job)
}
