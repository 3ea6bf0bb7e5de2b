package application

import (
	"context"
	"database/sql"
	"strings"

	"gorm.io/gorm"
)

// SearchFilter is the conjunctive predicate for application search. Name
// fragments must already be lower-cased by the caller.
type SearchFilter struct {
	EmployeeID *int
	FirstName  string
	LastName   string
}

//go:generate mockgen -source=application_repo.go -destination=mock/application_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *Application) error
	EmployeeExists(ctx context.Context, employeeID int) (bool, error)
	Search(ctx context.Context, f SearchFilter, offset, limit int) ([]Application, error)
	Count(ctx context.Context, f SearchFilter) (int64, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

// Create inserts the application on the caller's transaction when one is
// bound, so the row and its outbox event commit or roll back together.
func (r *repository) Create(ctx context.Context, a *Application) error {
	if r.tx != nil {
		query := `
INSERT INTO applications (leave_start_date, leave_end_date, employee_id)
VALUES ($1, $2, $3)
RETURNING id
`
		return r.tx.
			QueryRowContext(ctx, query, a.LeaveStartDate, a.LeaveEndDate, a.EmployeeID).
			Scan(&a.ID)
	}
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) EmployeeExists(ctx context.Context, employeeID int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("id = ?", employeeID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Search(ctx context.Context, f SearchFilter, offset, limit int) ([]Application, error) {
	var apps []Application
	err := r.applyFilter(r.db.WithContext(ctx).Model(&Application{}), f).
		Order("applications.id ASC").
		Offset(offset).
		Limit(limit).
		Find(&apps).Error
	return apps, err
}

func (r *repository) Count(ctx context.Context, f SearchFilter) (int64, error) {
	var count int64
	err := r.applyFilter(r.db.WithContext(ctx).Model(&Application{}), f).
		Count(&count).Error
	return count, err
}

// applyFilter joins the related employee once and stacks only the provided
// clauses, all combined with AND.
func (r *repository) applyFilter(db *gorm.DB, f SearchFilter) *gorm.DB {
	db = db.Joins("Employee")

	if f.EmployeeID != nil {
		db = db.Where("applications.employee_id = ?", *f.EmployeeID)
	}
	if f.FirstName != "" {
		db = db.Where(`LOWER("Employee".first_name) LIKE ?`, likePattern(f.FirstName))
	}
	if f.LastName != "" {
		db = db.Where(`LOWER("Employee".last_name) LIKE ?`, likePattern(f.LastName))
	}

	return db
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern wraps a fragment for a contains match, escaping LIKE
// metacharacters so user input always matches literally.
func likePattern(fragment string) string {
	return "%" + likeEscaper.Replace(fragment) + "%"
}
