package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/shreyanshTechz/attendance-backend/domain"
)

// TaskRepositoryImpl implements domain.TaskRepository using GORM
type TaskRepositoryImpl struct {
	db *gorm.DB
}

// DBTask represents the database model for Task. History, photos, and the
// reached-location point are stored as JSON columns.
type DBTask struct {
	ID                  uint   `gorm:"primaryKey"`
	CustomerName        string `gorm:"size:255"`
	CustomerContact     string `gorm:"size:64"`
	CustomerAddress     string
	Description         string
	ServiceLatitude     float64
	ServiceLongitude    float64
	ServiceAddress      string
	AssignedTo          uint       `gorm:"index"`
	AssignedBy          uint       `gorm:"index"`
	Status              string     `gorm:"index;size:32"`
	Photos              []string   `gorm:"serializer:json"`
	ReachedLocation     *domain.ReachedLocation  `gorm:"serializer:json"`
	CompletedAt         *time.Time
	VerifiedAt          *time.Time
	VerifiedBy          uint
	VerificationComment string
	RejectedComment     string
	History             []domain.TaskHistoryEntry `gorm:"serializer:json"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName returns the table name for GORM
func (DBTask) TableName() string {
	return "tasks"
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *gorm.DB) domain.TaskRepository {
	return &TaskRepositoryImpl{db: db}
}

// Create implements domain.TaskRepository
func (r *TaskRepositoryImpl) Create(ctx context.Context, task *domain.Task) error {
	dbTask := taskToDB(task)
	if err := r.db.WithContext(ctx).Create(dbTask).Error; err != nil {
		return err
	}
	task.ID = dbTask.ID
	task.CreatedAt = dbTask.CreatedAt
	task.UpdatedAt = dbTask.UpdatedAt
	return nil
}

// FindByID implements domain.TaskRepository
func (r *TaskRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Task, error) {
	var dbTask DBTask
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbTask).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}
	return taskToDomain(&dbTask), nil
}

// Update implements domain.TaskRepository. The whole document is written in
// a single statement, keeping each task mutation atomic.
func (r *TaskRepositoryImpl) Update(ctx context.Context, task *domain.Task) error {
	return r.db.WithContext(ctx).Save(taskToDB(task)).Error
}

// Delete implements domain.TaskRepository. Hard removal, no tombstone.
func (r *TaskRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&DBTask{}, id).Error
}

// List implements domain.TaskRepository
func (r *TaskRepositoryImpl) List(ctx context.Context) ([]*domain.Task, error) {
	var dbTasks []DBTask
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&dbTasks).Error; err != nil {
		return nil, err
	}
	tasks := make([]*domain.Task, len(dbTasks))
	for i := range dbTasks {
		tasks[i] = taskToDomain(&dbTasks[i])
	}
	return tasks, nil
}

// CountByStatus implements domain.TaskRepository
func (r *TaskRepositoryImpl) CountByStatus(ctx context.Context) (int64, []domain.StatusCount, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&DBTask{}).Count(&total).Error; err != nil {
		return 0, nil, err
	}

	var rows []struct {
		Status string
		Count  int64
	}
	err := r.db.WithContext(ctx).Model(&DBTask{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return 0, nil, err
	}

	counts := make([]domain.StatusCount, len(rows))
	for i, row := range rows {
		counts[i] = domain.StatusCount{Status: domain.TaskStatus(row.Status), Count: row.Count}
	}
	return total, counts, nil
}

func taskToDB(task *domain.Task) *DBTask {
	return &DBTask{
		ID:                  task.ID,
		CustomerName:        task.CustomerName,
		CustomerContact:     task.CustomerContact,
		CustomerAddress:     task.CustomerAddress,
		Description:         task.Description,
		ServiceLatitude:     task.ServiceLocation.Latitude,
		ServiceLongitude:    task.ServiceLocation.Longitude,
		ServiceAddress:      task.ServiceLocation.Address,
		AssignedTo:          task.AssignedTo,
		AssignedBy:          task.AssignedBy,
		Status:              string(task.Status),
		Photos:              task.Photos,
		ReachedLocation:     task.ReachedLocation,
		CompletedAt:         task.CompletedAt,
		VerifiedAt:          task.VerifiedAt,
		VerifiedBy:          task.VerifiedBy,
		VerificationComment: task.VerificationComment,
		RejectedComment:     task.RejectedComment,
		History:             task.History,
		CreatedAt:           task.CreatedAt,
	}
}

func taskToDomain(dbTask *DBTask) *domain.Task {
	return &domain.Task{
		ID:              dbTask.ID,
		CustomerName:    dbTask.CustomerName,
		CustomerContact: dbTask.CustomerContact,
		CustomerAddress: dbTask.CustomerAddress,
		Description:     dbTask.Description,
		ServiceLocation: domain.ServiceLocation{
			Coordinate: domain.Coordinate{
				Latitude:  dbTask.ServiceLatitude,
				Longitude: dbTask.ServiceLongitude,
			},
			Address: dbTask.ServiceAddress,
		},
		AssignedTo:          dbTask.AssignedTo,
		AssignedBy:          dbTask.AssignedBy,
		Status:              domain.TaskStatus(dbTask.Status),
		Photos:              dbTask.Photos,
		ReachedLocation:     dbTask.ReachedLocation,
		CompletedAt:         dbTask.CompletedAt,
		VerifiedAt:          dbTask.VerifiedAt,
		VerifiedBy:          dbTask.VerifiedBy,
		VerificationComment: dbTask.VerificationComment,
		RejectedComment:     dbTask.RejectedComment,
		History:             dbTask.History,
		CreatedAt:           dbTask.CreatedAt,
		UpdatedAt:           dbTask.UpdatedAt,
	}
}
