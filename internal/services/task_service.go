package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shreyanshTechz/attendance-backend/domain"
	"github.com/shreyanshTechz/attendance-backend/internal/geo"
)

// autoCompletePhotoCount is the number of photos that marks the work
// evidence as sufficient for auto-completion.
const autoCompletePhotoCount = 5

// Verification actions accepted by Verify.
const (
	ActionVerify = "verify"
	ActionReject = "reject"
)

// TaskServiceImpl implements domain.TaskService
type TaskServiceImpl struct {
	taskRepo       domain.TaskRepository
	arrivalRadiusM float64
	now            func() time.Time
}

// NewTaskService creates a new task service. arrivalRadiusM bounds the
// haversine check of MarkReached.
func NewTaskService(taskRepo domain.TaskRepository, arrivalRadiusM float64) *TaskServiceImpl {
	return &TaskServiceImpl{
		taskRepo:       taskRepo,
		arrivalRadiusM: arrivalRadiusM,
		now:            time.Now,
	}
}

// Create implements domain.TaskService. New tasks start Assigned and the
// assignment is the first history entry.
func (s *TaskServiceImpl) Create(ctx context.Context, draft domain.TaskDraft) (*domain.Task, error) {
	if !draft.Location.Valid() {
		return nil, domain.ErrInvalidCoordinate
	}

	now := s.now()
	task := &domain.Task{
		CustomerName:    draft.CustomerName,
		CustomerContact: draft.CustomerContact,
		CustomerAddress: draft.CustomerAddress,
		Description:     draft.Description,
		ServiceLocation: domain.ServiceLocation{
			Coordinate: draft.Location,
			Address:    draft.CustomerAddress,
		},
		AssignedTo: draft.AssignedTo,
		AssignedBy: draft.AssignedBy,
		Status:     domain.TaskAssigned,
		History: []domain.TaskHistoryEntry{{
			Status:    domain.TaskAssigned,
			Timestamp: now,
			ActorID:   draft.AssignedBy,
		}},
	}
	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

// Get implements domain.TaskService
func (s *TaskServiceImpl) Get(ctx context.Context, id uint) (*domain.Task, error) {
	return s.taskRepo.FindByID(ctx, id)
}

// List implements domain.TaskService
func (s *TaskServiceImpl) List(ctx context.Context) ([]*domain.Task, error) {
	return s.taskRepo.List(ctx)
}

// Patch implements domain.TaskService. Only descriptive fields can be edited
// here; status always goes through Transition.
func (s *TaskServiceImpl) Patch(ctx context.Context, id uint, patch domain.TaskPatch) (*domain.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.CustomerName != nil {
		task.CustomerName = *patch.CustomerName
	}
	if patch.CustomerContact != nil {
		task.CustomerContact = *patch.CustomerContact
	}
	if patch.CustomerAddress != nil {
		task.CustomerAddress = *patch.CustomerAddress
		task.ServiceLocation.Address = *patch.CustomerAddress
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.AssignedTo != nil {
		task.AssignedTo = *patch.AssignedTo
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return task, nil
}

// Delete implements domain.TaskService. Deletion is a hard removal.
func (s *TaskServiceImpl) Delete(ctx context.Context, id uint) error {
	if _, err := s.taskRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.taskRepo.Delete(ctx, id)
}

// Transition implements domain.TaskService
func (s *TaskServiceImpl) Transition(ctx context.Context, id uint, target domain.TaskStatus, actorID uint, comment string) (*domain.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.applyTransition(task, target, actorID, comment); err != nil {
		return nil, err
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to persist task transition: %w", err)
	}
	return task, nil
}

// applyTransition is the only mutation path for task status. It validates
// the move against the transition table, appends the audit entry, and
// applies the per-state side effects.
func (s *TaskServiceImpl) applyTransition(task *domain.Task, target domain.TaskStatus, actorID uint, comment string) error {
	if !domain.KnownTaskStatus(target) || !domain.CanTransition(task.Status, target) {
		return domain.ErrInvalidTransition
	}

	now := s.now()
	task.Status = target
	task.History = append(task.History, domain.TaskHistoryEntry{
		Status:    target,
		Timestamp: now,
		ActorID:   actorID,
		Comment:   comment,
	})

	switch target {
	case domain.TaskCompleted:
		task.CompletedAt = &now
	case domain.TaskVerified:
		task.VerifiedAt = &now
		task.VerifiedBy = actorID
		task.VerificationComment = comment
	case domain.TaskRejected:
		task.RejectedComment = comment
	}
	return nil
}

// AddPhotos implements domain.TaskService. Photos append in order; once the
// evidence threshold is met and autoComplete is requested, the task completes
// through the normal transition path with a single history entry.
func (s *TaskServiceImpl) AddPhotos(ctx context.Context, id uint, uris []string, autoComplete bool, actorID uint) (*domain.Task, error) {
	if len(uris) == 0 {
		return nil, domain.ErrNoPhotos
	}

	task, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	task.Photos = append(task.Photos, uris...)

	if autoComplete && len(task.Photos) >= autoCompletePhotoCount &&
		domain.CanTransition(task.Status, domain.TaskCompleted) {
		if err := s.applyTransition(task, domain.TaskCompleted, actorID, ""); err != nil {
			return nil, err
		}
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to persist task photos: %w", err)
	}
	return task, nil
}

// Verify implements domain.TaskService
func (s *TaskServiceImpl) Verify(ctx context.Context, id uint, action string, actorID uint, comment string) (*domain.Task, error) {
	var target domain.TaskStatus
	switch action {
	case ActionVerify:
		target = domain.TaskVerified
	case ActionReject:
		target = domain.TaskRejected
	default:
		return nil, domain.ErrInvalidAction
	}
	return s.Transition(ctx, id, target, actorID, comment)
}

// MarkReached implements domain.TaskService. Arrival is geo-verified against
// the service location; it records the arrival but is not a status change.
func (s *TaskServiceImpl) MarkReached(ctx context.Context, id uint, loc domain.Coordinate) (*domain.Task, error) {
	if !loc.Valid() {
		return nil, domain.ErrInvalidCoordinate
	}

	task, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if geo.DistanceM(loc, task.ServiceLocation.Coordinate) > s.arrivalRadiusM {
		return nil, domain.ErrNotAtLocation
	}

	task.ReachedLocation = &domain.ReachedLocation{
		Coordinate: loc,
		Timestamp:  s.now(),
	}
	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to persist task arrival: %w", err)
	}
	return task, nil
}

// Summary implements domain.TaskService
func (s *TaskServiceImpl) Summary(ctx context.Context) (int64, []domain.StatusCount, error) {
	return s.taskRepo.CountByStatus(ctx)
}
