package employee

import (
	"context"

	employeeerrors "go-leave/internal/employee/errors"
	"go-leave/internal/shared/contextutil"

	"go.uber.org/zap"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	GetByID(ctx context.Context, id int) (EmployeeResponse, error)
	UpdateName(ctx context.Context, id int, req UpdateEmployeeNameRequest) (EmployeeResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetByID(ctx context.Context, id int) (EmployeeResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return ToResponse(*e), nil
}

func (s *service) UpdateName(ctx context.Context, id int, req UpdateEmployeeNameRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	// Blank checks come before the existence lookup: an invalid body is a
	// 400 even when the target employee does not exist.
	if req.FirstName == "" || req.LastName == "" {
		s.logger.Warn("update employee name blank field",
			zap.String("request_id", rid),
			zap.Int("employee_id", id),
		)
		return EmployeeResponse{}, employeeerrors.ErrNameBlank
	}

	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	e.FirstName = req.FirstName
	e.LastName = req.LastName

	if err := s.repo.Update(ctx, e); err != nil {
		s.logger.Error("update employee name failed",
			zap.String("request_id", rid),
			zap.Int("employee_id", id),
			zap.Error(err),
		)
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return ToResponse(*e), nil
}
