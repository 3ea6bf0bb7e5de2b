package application

import (
	"context"
	"database/sql"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	applicationerrors "go-leave/internal/application/errors"
	"go-leave/internal/events"
	"go-leave/internal/messaging/kafka"
	"go-leave/internal/shared/contextutil"
	"go-leave/internal/shared/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const leaveDateLayout = "2006-01-02"

//go:generate mockgen -source=application_service.go -destination=mock/application_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, reqs []CreateApplicationRequest) ([]ApplicationResponse, error)
	Search(ctx context.Context, q SearchApplicationsQuery) (SearchApplicationsResult, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("application.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("application.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		logger: l,
	}
}

// Submit processes the batch strictly in array order: each item is
// validated, its employee checked, and the record created before the next
// item is looked at. The first failure aborts the batch with no rollback of
// records already committed; there is deliberately no transaction spanning
// the batch.
func (s *service) Submit(ctx context.Context, reqs []CreateApplicationRequest) ([]ApplicationResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	created := make([]ApplicationResponse, 0, len(reqs))

	for _, req := range reqs {
		if req.LeaveStartDate == "" || req.LeaveEndDate == "" || req.EmployeeID == 0 {
			s.logger.Warn("submit application missing fields", zap.String("request_id", rid))
			return nil, applicationerrors.ErrMissingRequiredFields.WithDetails(req)
		}

		exists, err := s.repo.EmployeeExists(ctx, req.EmployeeID)
		if err != nil {
			s.logger.Error("submit application employee lookup failed",
				zap.String("request_id", rid),
				zap.Int("employee_id", req.EmployeeID),
				zap.Error(err),
			)
			return nil, err
		}
		if !exists {
			return nil, applicationerrors.EmployeeDoesNotExist(req.EmployeeID)
		}

		start, err := time.Parse(leaveDateLayout, req.LeaveStartDate)
		if err != nil {
			return nil, applicationerrors.ErrInvalidDateFormat
		}
		end, err := time.Parse(leaveDateLayout, req.LeaveEndDate)
		if err != nil {
			return nil, applicationerrors.ErrInvalidDateFormat
		}

		app := &Application{
			LeaveStartDate: start,
			LeaveEndDate:   end,
			EmployeeID:     req.EmployeeID,
		}

		if err := s.createOne(ctx, app); err != nil {
			return nil, err
		}

		created = append(created, toResponse(*app, false))
	}

	return created, nil
}

// createOne commits one application together with its outbox event on a
// single transaction, so the event is staged if and only if the row exists.
func (s *service) createOne(ctx context.Context, app *Application) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, app); err != nil {
		return mapCreateError(err, app.EmployeeID)
	}

	if s.outbox != nil {
		payload, err := json.Marshal(events.ApplicationSubmittedEvent{
			EventType:      "application.submitted",
			ApplicationID:  app.ID,
			EmployeeID:     app.EmployeeID,
			LeaveStartDate: app.LeaveStartDate.Format(leaveDateLayout),
			LeaveEndDate:   app.LeaveEndDate.Format(leaveDateLayout),
			OccurredAt:     time.Now().UTC(),
		})
		if err != nil {
			return err
		}

		event := kafka.OutboxEvent{
			ID:            uuid.New().String(),
			RequestID:     contextutil.GetRequestID(ctx),
			AggregateType: "application",
			AggregateID:   strconv.Itoa(app.ID),
			EventType:     "application.submitted",
			Topic:         events.ApplicationSubmittedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}
		if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *service) Search(ctx context.Context, q SearchApplicationsQuery) (SearchApplicationsResult, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = 10
	}

	f := SearchFilter{
		EmployeeID: q.EmployeeID,
		FirstName:  strings.ToLower(q.FirstName),
		LastName:   strings.ToLower(q.LastName),
	}

	offset := (page - 1) * limit

	apps, err := s.repo.Search(ctx, f, offset, limit)
	if err != nil {
		s.logger.Error("search applications failed", zap.Error(err))
		return SearchApplicationsResult{}, err
	}

	total, err := s.repo.Count(ctx, f)
	if err != nil {
		s.logger.Error("count applications failed", zap.Error(err))
		return SearchApplicationsResult{}, err
	}

	return SearchApplicationsResult{
		Data:       mapToSearchResponses(apps),
		Pagination: response.NewPagination(total, page, limit, len(apps)),
	}, nil
}
