package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shreyanshTechz/attendance-backend/domain"
	"github.com/shreyanshTechz/attendance-backend/internal/http/middleware"
)

// TaskHandlers handles field-task HTTP requests
type TaskHandlers struct {
	taskSvc domain.TaskService
	photos  domain.PhotoStore
}

// NewTaskHandlers creates new task handlers
func NewTaskHandlers(taskSvc domain.TaskService, photos domain.PhotoStore) *TaskHandlers {
	return &TaskHandlers{taskSvc: taskSvc, photos: photos}
}

// CreateTaskRequest represents task creation request
type CreateTaskRequest struct {
	CustomerName    string   `json:"customer_name" binding:"required"`
	CustomerContact string   `json:"customer_contact" binding:"required"`
	CustomerAddress string   `json:"customer_address" binding:"required"`
	Description     string   `json:"description"`
	Latitude        *float64 `json:"latitude" binding:"required"`
	Longitude       *float64 `json:"longitude" binding:"required"`
	AssignedTo      uint     `json:"assigned_to" binding:"required"`
}

// PatchTaskRequest represents optional field edits outside the state machine
type PatchTaskRequest struct {
	CustomerName    *string `json:"customer_name"`
	CustomerContact *string `json:"customer_contact"`
	CustomerAddress *string `json:"customer_address"`
	Description     *string `json:"description"`
	AssignedTo      *uint   `json:"assigned_to"`
}

// TransitionRequest represents an explicit status transition
type TransitionRequest struct {
	Status  string `json:"status" binding:"required"`
	Comment string `json:"comment"`
}

// VerifyRequest represents an admin verify/reject decision
type VerifyRequest struct {
	Action  string `json:"action" binding:"required,oneof=verify reject"`
	Comment string `json:"comment"`
}

// AddPhotosRequest represents photo URI attachment
type AddPhotosRequest struct {
	Photos       []string `json:"photos" binding:"required"`
	AutoComplete *bool    `json:"auto_complete"`
}

func taskJSON(t *domain.Task) gin.H {
	return gin.H{
		"id":               t.ID,
		"customer_name":    t.CustomerName,
		"customer_contact": t.CustomerContact,
		"customer_address": t.CustomerAddress,
		"description":      t.Description,
		"service_location": gin.H{
			"latitude":  t.ServiceLocation.Latitude,
			"longitude": t.ServiceLocation.Longitude,
			"address":   t.ServiceLocation.Address,
		},
		"assigned_to":          t.AssignedTo,
		"assigned_by":          t.AssignedBy,
		"status":               t.Status,
		"photos":               t.Photos,
		"reached_location":     t.ReachedLocation,
		"completed_at":         t.CompletedAt,
		"verified_at":          t.VerifiedAt,
		"verified_by":          t.VerifiedBy,
		"verification_comment": t.VerificationComment,
		"rejected_comment":     t.RejectedComment,
		"history":              t.History,
		"created_at":           t.CreatedAt,
		"updated_at":           t.UpdatedAt,
	}
}

func taskID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID"})
		return 0, false
	}
	return uint(id), true
}

func (h *TaskHandlers) handleTaskError(c *gin.Context, err error) {
	switch err {
	case domain.ErrTaskNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
	case domain.ErrInvalidTransition:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status transition"})
	case domain.ErrInvalidAction:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Action must be verify or reject"})
	case domain.ErrNoPhotos:
		c.JSON(http.StatusBadRequest, gin.H{"error": "No photos supplied"})
	case domain.ErrNotAtLocation:
		c.JSON(http.StatusBadRequest, gin.H{"error": "You are not at the assigned location"})
	case domain.ErrInvalidCoordinate:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coordinates"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Task operation failed"})
	}
}

// Create handles task creation
func (h *TaskHandlers) Create(c *gin.Context) {
	actorID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.taskSvc.Create(c.Request.Context(), domain.TaskDraft{
		CustomerName:    req.CustomerName,
		CustomerContact: req.CustomerContact,
		CustomerAddress: req.CustomerAddress,
		Description:     req.Description,
		Location:        domain.Coordinate{Latitude: *req.Latitude, Longitude: *req.Longitude},
		AssignedTo:      req.AssignedTo,
		AssignedBy:      actorID,
	})
	if err != nil {
		h.handleTaskError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": taskJSON(task)})
}

// Get returns a single task
func (h *TaskHandlers) Get(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}
	task, err := h.taskSvc.Get(c.Request.Context(), id)
	if err != nil {
		h.handleTaskError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": taskJSON(task)})
}

// List returns all tasks, optionally filtered to the caller's assignments
// with ?mine=true.
func (h *TaskHandlers) List(c *gin.Context) {
	tasks, err := h.taskSvc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load tasks"})
		return
	}

	if c.Query("mine") == "true" {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}
		filtered := tasks[:0]
		for _, t := range tasks {
			if t.AssignedTo == userID {
				filtered = append(filtered, t)
			}
		}
		tasks = filtered
	}

	out := make([]gin.H, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, taskJSON(t))
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}

// Patch applies field edits outside the state machine
func (h *TaskHandlers) Patch(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	var req PatchTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.taskSvc.Patch(c.Request.Context(), id, domain.TaskPatch{
		CustomerName:    req.CustomerName,
		CustomerContact: req.CustomerContact,
		CustomerAddress: req.CustomerAddress,
		Description:     req.Description,
		AssignedTo:      req.AssignedTo,
	})
	if err != nil {
		h.handleTaskError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": taskJSON(task)})
}

// Delete removes a task
func (h *TaskHandlers) Delete(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}
	if err := h.taskSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleTaskError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"message": "Task deleted"}})
}

// Transition moves a task to an explicit target status
func (h *TaskHandlers) Transition(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}
	actorID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	target := domain.TaskStatus(req.Status)
	if !domain.KnownTaskStatus(target) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown task status"})
		return
	}

	task, err := h.taskSvc.Transition(c.Request.Context(), id, target, actorID, req.Comment)
	if err != nil {
		h.handleTaskError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": taskJSON(task)})
}

// AddPhotos attaches already-uploaded photo URIs to a task
func (h *TaskHandlers) AddPhotos(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}
	actorID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req AddPhotosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	autoComplete := true
	if req.AutoComplete != nil {
		autoComplete = *req.AutoComplete
	}

	task, err := h.taskSvc.AddPhotos(c.Request.Context(), id, req.Photos, autoComplete, actorID)
	if err != nil {
		h.handleTaskError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": taskJSON(task)})
}

// UploadPhotos accepts multipart photo files, stores them, and attaches
// the resulting URIs to the task.
func (h *TaskHandlers) UploadPhotos(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}
	actorID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form"})
		return
	}
	files := form.File["photos"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No photos supplied"})
		return
	}

	uris := make([]string, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unreadable upload"})
			return
		}
		uri, err := h.photos.Save(c.Request.Context(), f, fh.Filename)
		f.Close()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store photo"})
			return
		}
		uris = append(uris, uri)
	}

	autoComplete := c.DefaultPostForm("auto_complete", "true") != "false"

	task, err := h.taskSvc.AddPhotos(c.Request.Context(), id, uris, autoComplete, actorID)
	if err != nil {
		h.handleTaskError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": taskJSON(task)})
}

// Verify applies an admin verify/reject decision
func (h *TaskHandlers) Verify(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}
	actorID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.taskSvc.Verify(c.Request.Context(), id, req.Action, actorID, req.Comment)
	if err != nil {
		h.handleTaskError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": taskJSON(task)})
}

// MarkReached records a geo-verified arrival at the service location
func (h *TaskHandlers) MarkReached(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	var req LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.taskSvc.MarkReached(c.Request.Context(), id, req.coordinate())
	if err != nil {
		h.handleTaskError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"message":          "Location verified",
		"reached_location": task.ReachedLocation,
	}})
}

// Summary returns task counts grouped by status
func (h *TaskHandlers) Summary(c *gin.Context) {
	total, counts, err := h.taskSvc.Summary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build summary"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"total":     total,
		"by_status": counts,
	}})
}
