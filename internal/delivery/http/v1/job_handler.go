package v1

import (
	"net/http"
	"strconv"
	"strings"

	"hirehub-backend/internal/delivery/http/middleware"
	"hirehub-backend/internal/delivery/http/response"
	"hirehub-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

// NewJobHandler registers job routes. public carries optional auth so seekers get match data.
func NewJobHandler(public *gin.RouterGroup, protected *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	publicJobs := public.Group("/jobs")
	{
		publicJobs.GET("", handler.List)
		publicJobs.GET("/:id", handler.GetDetails)
	}

	protectedJobs := protected.Group("/jobs")
	{
		protectedJobs.GET("/:id/match", handler.GetMatch)
		protectedJobs.POST("", handler.Create)
		protectedJobs.PUT("/:id", handler.Update)
		protectedJobs.DELETE("/:id", handler.Deactivate)
	}

	// Employer-specific job routes (only shows the provider's own jobs)
	protected.GET("/employers/jobs", handler.ListByEmployer)
}

// JobRequest is the request payload for posting or editing a job.
// skills_required is the comma-separated list the skill matcher scores against.
type JobRequest struct {
	CompanyID          int64  `json:"company_id" binding:"required,gt=0"`
	Title              string `json:"title" binding:"required,not_blank,max=255"`
	Description        string `json:"description" binding:"required,not_blank,max=20000"`
	Location           string `json:"location" binding:"required,not_blank,max=255"`
	Salary             string `json:"salary" binding:"required,not_blank,max=100"`
	JobType            string `json:"job_type" binding:"required,oneof=FT PT IN CT ft pt in ct"`
	SkillsRequired     string `json:"skills_required" binding:"required,not_blank,max=2000"`
	ExperienceRequired string `json:"experience_required" binding:"max=100"`
}

func (r JobRequest) input() domain.JobInput {
	return domain.JobInput{
		CompanyID:          r.CompanyID,
		Title:              r.Title,
		Description:        r.Description,
		Location:           r.Location,
		Salary:             r.Salary,
		JobType:            r.JobType,
		SkillsRequired:     r.SkillsRequired,
		ExperienceRequired: r.ExperienceRequired,
	}
}

// ListJobs godoc
// @Summary      List jobs
// @Description  Active, verified jobs. Seekers also get skill_match, matching_skills and match_level per job.
// @Tags         jobs
// @Produce      json
// @Param        page       query     int     false  "Page number"
// @Param        page_size  query     int     false  "Page size (max 50)"
// @Param        q          query     string  false  "Keyword over title, description, skills and company"
// @Param        job_type   query     string  false  "FT, PT, IN or CT"
// @Param        sort       query     string  false  "match (seekers only)"
// @Success      200        {object}  response.Response{data=response.Page}
// @Failure      400        {object}  response.Response
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(domain.DefaultPageSize)))

	params := domain.JobListParams{
		Page:        page,
		PageSize:    pageSize,
		Query:       strings.TrimSpace(c.Query("q")),
		JobType:     strings.ToUpper(strings.TrimSpace(c.Query("job_type"))),
		SortByMatch: c.Query("sort") == "match",
	}.Normalize()

	jobs, total, err := h.jobUC.ListJobs(c.Request.Context(), middleware.ViewerFromContext(c), params)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Jobs retrieved", response.Page{
		Items:    jobs,
		Total:    total,
		Page:     params.Page,
		PageSize: params.PageSize,
	})
}

// GetJobDetails godoc
// @Summary      Get job details
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response{data=domain.JobWithMatch}
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetDetails(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "job ID")
	if !ok {
		return
	}

	job, err := h.jobUC.GetJobDetails(c.Request.Context(), middleware.ViewerFromContext(c), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job details retrieved", job)
}

// GetJobMatch godoc
// @Summary      Get my skill match for a job
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response{data=domain.MatchResult}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id}/match [get]
// @Security     BearerAuth
func (h *JobHandler) GetMatch(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "job ID")
	if !ok {
		return
	}

	match, err := h.jobUC.GetJobMatch(c.Request.Context(), middleware.ViewerFromContext(c), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skill match computed", match)
}

// CreateJob godoc
// @Summary      Post a job
// @Description  Provider only. The job is listed once an admin verifies it.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      JobRequest  true  "Job posting"
// @Success      201  {object}  response.Response{data=domain.Job}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	var req JobRequest
	if !bindJSON(c, &req) {
		return
	}

	job, err := h.jobUC.CreateJob(c.Request.Context(), middleware.ViewerFromContext(c), req.input())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job posted. It will be visible after admin verification.", job)
}

// UpdateJob godoc
// @Summary      Edit a job
// @Description  Owner or admin. Editing withdraws verification until an admin reviews the job again.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id   path      int         true  "Job ID"
// @Param        job  body      JobRequest  true  "Job posting"
// @Success      200  {object}  response.Response{data=domain.Job}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [put]
// @Security     BearerAuth
func (h *JobHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "job ID")
	if !ok {
		return
	}
	var req JobRequest
	if !bindJSON(c, &req) {
		return
	}

	job, err := h.jobUC.UpdateJob(c.Request.Context(), middleware.ViewerFromContext(c), id, req.input())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job updated. It will need re-verification.", job)
}

// DeactivateJob godoc
// @Summary      Deactivate a job
// @Description  Owner or admin. The job leaves the board; its applications stay reviewable.
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [delete]
// @Security     BearerAuth
func (h *JobHandler) Deactivate(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "job ID")
	if !ok {
		return
	}

	if err := h.jobUC.DeactivateJob(c.Request.Context(), middleware.ViewerFromContext(c), id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job deactivated", nil)
}

// ListEmployerJobs godoc
// @Summary      List my posted jobs
// @Description  Every job the provider posted, including unverified and deactivated ones.
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.JobWithCompany}
// @Failure      403  {object}  response.Response
// @Router       /employers/jobs [get]
// @Security     BearerAuth
func (h *JobHandler) ListByEmployer(c *gin.Context) {
	jobs, err := h.jobUC.ListMyJobs(c.Request.Context(), middleware.ViewerFromContext(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Employer job list", jobs)
}
