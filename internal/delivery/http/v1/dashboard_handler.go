package v1

import (
	"net/http"

	"skillsingh-backend/internal/delivery/http/middleware"
	"skillsingh-backend/internal/delivery/http/response"
	"skillsingh-backend/internal/domain"
	"skillsingh-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardUC domain.DashboardUsecase
}

func NewDashboardHandler(r *gin.RouterGroup, dashboardUC domain.DashboardUsecase) {
	handler := &DashboardHandler{dashboardUC: dashboardUC}
	r.GET("/dashboard", handler.Summary)
}

// Summary godoc
// @Summary      Role-scoped dashboard
// @Description  Summary counters for the current user, recomputed on every request
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /dashboard [get]
// @Security     BearerAuth
func (h *DashboardHandler) Summary(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	switch actor.Role {
	case domain.RoleRecruiter:
		dash, err := h.dashboardUC.RecruiterSummary(c.Request.Context(), actor)
		if err != nil {
			c.Error(err)
			return
		}
		response.Success(c, http.StatusOK, "Recruiter dashboard", dash)
	case domain.RoleEmployee:
		dash, err := h.dashboardUC.EmployeeSummary(c.Request.Context(), actor)
		if err != nil {
			c.Error(err)
			return
		}
		response.Success(c, http.StatusOK, "Employee dashboard", dash)
	default:
		c.Error(apperror.Forbidden("Create a profile to view your dashboard"))
	}
}
