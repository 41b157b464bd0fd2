package v1

import (
	"net/http"
	"strings"

	"hirehub-backend/internal/delivery/http/middleware"
	"hirehub-backend/internal/delivery/http/response"
	"hirehub-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

// NewApplicationHandler registers application routes
func NewApplicationHandler(r *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	// Seeker routes
	r.POST("/jobs/:id/apply", handler.ApplyToJob)
	r.GET("/applications", handler.GetMyApplications)
	r.GET("/applications/:id", handler.GetApplication)

	// Provider routes
	r.GET("/employers/jobs/:id/applicants", handler.ListApplicants)
	r.PATCH("/applications/:id/status", handler.UpdateApplicationStatus)
}

// ApplyToJobRequest is the request payload for applying to a job.
// ResumeURL falls back to the resume on the seeker's profile.
type ApplyToJobRequest struct {
	ResumeURL   string `json:"resume_url" binding:"omitempty,url,max=500"`
	CoverLetter string `json:"cover_letter" binding:"max=5000"`
}

// UpdateStatusRequest is the request payload for reviewing an application
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=reviewed shortlisted rejected hired"`
}

// ApplyToJob godoc
// @Summary      Apply to a job
// @Description  Submit an application (seeker only). The skill match is computed now and stored with the application.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "Job ID"
// @Param        body  body      ApplyToJobRequest  true  "Application data"
// @Success      201   {object}  response.Response{data=domain.Application}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /jobs/{id}/apply [post]
// @Security     BearerAuth
func (h *ApplicationHandler) ApplyToJob(c *gin.Context) {
	jobID, ok := parseIDParam(c, "id", "job ID")
	if !ok {
		return
	}

	var req ApplyToJobRequest
	if !bindJSON(c, &req) {
		return
	}

	app, err := h.applicationUC.ApplyToJob(c.Request.Context(), middleware.ViewerFromContext(c), jobID, domain.ApplyInput{
		ResumeURL:   req.ResumeURL,
		CoverLetter: req.CoverLetter,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted successfully", app)
}

// GetMyApplications godoc
// @Summary      Get my applications
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Application}
// @Failure      403  {object}  response.Response
// @Router       /applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) GetMyApplications(c *gin.Context) {
	apps, err := h.applicationUC.GetMyApplications(c.Request.Context(), middleware.ViewerFromContext(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", apps)
}

// GetApplication godoc
// @Summary      Get an application
// @Description  Visible to the applicant and to the provider who posted the job
// @Tags         applications
// @Produce      json
// @Param        id   path      int  true  "Application ID"
// @Success      200  {object}  response.Response{data=domain.Application}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /applications/{id} [get]
// @Security     BearerAuth
func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "application ID")
	if !ok {
		return
	}

	app, err := h.applicationUC.GetApplication(c.Request.Context(), middleware.ViewerFromContext(c), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application retrieved", app)
}

// ListApplicants godoc
// @Summary      List applicants for a job
// @Description  Provider only. Ordered by stored skill match unless sort=recent.
// @Tags         applications
// @Produce      json
// @Param        id    path      int     true   "Job ID"
// @Param        sort    query     string  false  "skill_match (default), -skill_match or recent"
// @Param        status  query     string  false  "Only applications in this status"
// @Success      200   {object}  response.Response{data=[]domain.Application}
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /employers/jobs/{id}/applicants [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListApplicants(c *gin.Context) {
	jobID, ok := parseIDParam(c, "id", "job ID")
	if !ok {
		return
	}

	q := domain.ApplicantQuery{
		Sort:   domain.ParseApplicantSort(c.Query("sort")),
		Status: strings.ToLower(strings.TrimSpace(c.Query("status"))),
	}
	apps, err := h.applicationUC.ListApplicants(c.Request.Context(), middleware.ViewerFromContext(c), jobID, q)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applicants retrieved", apps)
}

// UpdateApplicationStatus godoc
// @Summary      Update application status
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id    path      int                  true  "Application ID"
// @Param        body  body      UpdateStatusRequest  true  "New status"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /applications/{id}/status [patch]
// @Security     BearerAuth
func (h *ApplicationHandler) UpdateApplicationStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "application ID")
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.applicationUC.UpdateApplicationStatus(c.Request.Context(), middleware.ViewerFromContext(c), id, req.Status); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application status updated", gin.H{"id": id, "status": req.Status})
}
