package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/shreyanshTechz/attendance-backend/domain"
)

// AttendanceRepositoryImpl implements domain.AttendanceRepository using GORM
type AttendanceRepositoryImpl struct {
	db *gorm.DB
}

// DBAttendance represents the database model for AttendanceRecord
type DBAttendance struct {
	ID              uint `gorm:"primaryKey"`
	UserID          uint `gorm:"index"`
	User            *DBUser
	Latitude        float64
	Longitude       float64
	IPAddress       string `gorm:"size:64"`
	Status          string `gorm:"size:16"`
	LoginTime       *time.Time `gorm:"index"`
	LogoutTime      *time.Time
	DurationMinutes int
	CreatedAt       time.Time
}

// TableName returns the table name for GORM
func (DBAttendance) TableName() string {
	return "attendance_records"
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *gorm.DB) domain.AttendanceRepository {
	return &AttendanceRepositoryImpl{db: db}
}

// Create implements domain.AttendanceRepository
func (r *AttendanceRepositoryImpl) Create(ctx context.Context, rec *domain.AttendanceRecord) error {
	dbRec := attendanceToDB(rec)
	if err := r.db.WithContext(ctx).Create(dbRec).Error; err != nil {
		return err
	}
	rec.ID = dbRec.ID
	rec.CreatedAt = dbRec.CreatedAt
	return nil
}

// FindLoginForDay implements domain.AttendanceRepository
func (r *AttendanceRepositoryImpl) FindLoginForDay(ctx context.Context, userID uint, dayStart, dayEnd time.Time) (*domain.AttendanceRecord, error) {
	var dbRec DBAttendance
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND login_time >= ? AND login_time < ?", userID, dayStart, dayEnd).
		Order("login_time desc").
		First(&dbRec).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrRecordNotFound
		}
		return nil, err
	}
	return attendanceToDomain(&dbRec), nil
}

// Update implements domain.AttendanceRepository. The whole row is written in
// one statement, so each update is atomic at the storage layer.
func (r *AttendanceRepositoryImpl) Update(ctx context.Context, rec *domain.AttendanceRecord) error {
	return r.db.WithContext(ctx).Save(attendanceToDB(rec)).Error
}

// ListAll implements domain.AttendanceRepository
func (r *AttendanceRepositoryImpl) ListAll(ctx context.Context) ([]*domain.AttendanceRecord, error) {
	var dbRecs []DBAttendance
	if err := r.db.WithContext(ctx).Preload("User").Order("created_at desc").Find(&dbRecs).Error; err != nil {
		return nil, err
	}
	return attendanceToDomainSlice(dbRecs), nil
}

// ListByUser implements domain.AttendanceRepository
func (r *AttendanceRepositoryImpl) ListByUser(ctx context.Context, userID uint) ([]*domain.AttendanceRecord, error) {
	var dbRecs []DBAttendance
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at desc").Find(&dbRecs).Error; err != nil {
		return nil, err
	}
	return attendanceToDomainSlice(dbRecs), nil
}

// ListLoginRange implements domain.AttendanceRepository
func (r *AttendanceRepositoryImpl) ListLoginRange(ctx context.Context, from, to time.Time) ([]*domain.AttendanceRecord, error) {
	var dbRecs []DBAttendance
	err := r.db.WithContext(ctx).
		Where("login_time >= ? AND login_time < ?", from, to).
		Order("login_time asc").
		Find(&dbRecs).Error
	if err != nil {
		return nil, err
	}
	return attendanceToDomainSlice(dbRecs), nil
}

func attendanceToDB(rec *domain.AttendanceRecord) *DBAttendance {
	return &DBAttendance{
		ID:              rec.ID,
		UserID:          rec.UserID,
		Latitude:        rec.Location.Latitude,
		Longitude:       rec.Location.Longitude,
		IPAddress:       rec.IPAddress,
		Status:          rec.Status,
		LoginTime:       rec.LoginTime,
		LogoutTime:      rec.LogoutTime,
		DurationMinutes: rec.DurationMinutes,
		CreatedAt:       rec.CreatedAt,
	}
}

func attendanceToDomain(dbRec *DBAttendance) *domain.AttendanceRecord {
	rec := &domain.AttendanceRecord{
		ID:     dbRec.ID,
		UserID: dbRec.UserID,
		Location: domain.Coordinate{
			Latitude:  dbRec.Latitude,
			Longitude: dbRec.Longitude,
		},
		IPAddress:       dbRec.IPAddress,
		Status:          dbRec.Status,
		LoginTime:       dbRec.LoginTime,
		LogoutTime:      dbRec.LogoutTime,
		DurationMinutes: dbRec.DurationMinutes,
		CreatedAt:       dbRec.CreatedAt,
	}
	if dbRec.User != nil {
		rec.User = userToDomain(dbRec.User)
	}
	return rec
}

func attendanceToDomainSlice(dbRecs []DBAttendance) []*domain.AttendanceRecord {
	recs := make([]*domain.AttendanceRecord, len(dbRecs))
	for i := range dbRecs {
		recs[i] = attendanceToDomain(&dbRecs[i])
	}
	return recs
}
