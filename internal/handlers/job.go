package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nugrahsdhka/job-portal-api/internal/domain"
	"github.com/nugrahsdhka/job-portal-api/internal/service"
)

type JobHandler struct {
	jobs *service.JobSvc
	apps *service.ApplicationSvc
}

func NewJobHandler(jobs *service.JobSvc, apps *service.ApplicationSvc) *JobHandler {
	return &JobHandler{jobs: jobs, apps: apps}
}

func userID(c *gin.Context) string {
	v, _ := c.Get("sub")
	id, _ := v.(string)
	return id
}

// POST /api/jobs
func (h *JobHandler) Create(c *gin.Context) {
	var in struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description" binding:"required"`
		CompanyName string `json:"companyName" binding:"required"`
		Location    string `json:"location" binding:"required"`
		Salary      int64  `json:"salary" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id := userID(c)
	if id == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unknown user"})
		return
	}
	job, err := h.jobs.Create(c.Request.Context(), domain.Job{
		Title:       in.Title,
		Description: in.Description,
		CompanyName: in.CompanyName,
		Location:    in.Location,
		Salary:      in.Salary,
	}, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "job posting created",
		"data":    job,
	})
}

// GET /api/jobs
func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.jobs.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// POST /api/jobs/:id/apply
func (h *JobHandler) Apply(c *gin.Context) {
	id := userID(c)
	if id == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unknown user"})
		return
	}
	a, err := h.apps.Apply(c.Request.Context(), c.Param("id"), id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "application submitted",
		"data":    a,
	})
}

// GET /api/jobs/:id/applicants
func (h *JobHandler) Applicants(c *gin.Context) {
	id := userID(c)
	if id == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unknown user"})
		return
	}
	applicants, err := h.apps.ApplicantsForJob(c.Request.Context(), c.Param("id"), id)
	if err != nil {
		if errors.Is(err, service.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":          "applicants fetched",
		"total_applicants": len(applicants),
		"data":             applicants,
	})
}
