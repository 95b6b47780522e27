package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"innovati-portal/internal/derive"
	"innovati-portal/internal/model"
)

func (h *AdminHandler) Projects(c *gin.Context) {
	sess, _ := SessionFrom(c)

	projects, err := h.api.AdminProjects(c.Request.Context(), sess.Token)
	if err != nil {
		h.fail(c, err)
		return
	}

	filtered := derive.FilterProjects(projects, c.Query("q"))
	c.JSON(http.StatusOK, gin.H{
		"items":  filtered,
		"kpis":   derive.ProjectSummary(filtered, time.Now()),
		"kanban": derive.KanbanColumns(filtered),
	})
}

func (h *AdminHandler) ProjectDetail(c *gin.Context) {
	sess, _ := SessionFrom(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	detail, err := h.api.AdminProjectDetail(c.Request.Context(), sess.Token, id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *AdminHandler) CreateProject(c *gin.Context) {
	sess, _ := SessionFrom(c)

	var req model.Project
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if strings.TrimSpace(req.Name) == "" || req.ClientID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and client_id are required"})
		return
	}
	if req.Progress < 0 || req.Progress > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "progress must be between 0 and 100"})
		return
	}

	created, err := h.api.AdminCreateProject(c.Request.Context(), sess.Token, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"project": created})
}

func (h *AdminHandler) UpdateProject(c *gin.Context) {
	sess, _ := SessionFrom(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req model.Project
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.Progress < 0 || req.Progress > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "progress must be between 0 and 100"})
		return
	}

	updated, err := h.api.AdminUpdateProject(c.Request.Context(), sess.Token, id, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"project": updated})
}

func (h *AdminHandler) DeleteProject(c *gin.Context) {
	sess, _ := SessionFrom(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.api.AdminDeleteProject(c.Request.Context(), sess.Token, id); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// Milestones

func (h *AdminHandler) CreateMilestone(c *gin.Context) {
	sess, _ := SessionFrom(c)
	projectID, ok := pathID(c)
	if !ok {
		return
	}

	var req model.Milestone
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	created, err := h.api.AdminCreateMilestone(c.Request.Context(), sess.Token, projectID, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"milestone": created})
}

func (h *AdminHandler) UpdateMilestone(c *gin.Context) {
	sess, _ := SessionFrom(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req model.Milestone
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	updated, err := h.api.AdminUpdateMilestone(c.Request.Context(), sess.Token, id, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"milestone": updated})
}

func (h *AdminHandler) DeleteMilestone(c *gin.Context) {
	sess, _ := SessionFrom(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.api.AdminDeleteMilestone(c.Request.Context(), sess.Token, id); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// Tasks

func (h *AdminHandler) CreateTask(c *gin.Context) {
	sess, _ := SessionFrom(c)
	projectID, ok := pathID(c)
	if !ok {
		return
	}

	var req model.Task
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	created, err := h.api.AdminCreateTask(c.Request.Context(), sess.Token, projectID, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"task": created})
}

func (h *AdminHandler) UpdateTask(c *gin.Context) {
	sess, _ := SessionFrom(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req model.Task
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	updated, err := h.api.AdminUpdateTask(c.Request.Context(), sess.Token, id, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"task": updated})
}

func (h *AdminHandler) DeleteTask(c *gin.Context) {
	sess, _ := SessionFrom(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.api.AdminDeleteTask(c.Request.Context(), sess.Token, id); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
