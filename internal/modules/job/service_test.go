package job

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"shootsuite/internal/domain"
	"shootsuite/internal/notification"
	"shootsuite/internal/repository"
)

type mockJobRepo struct {
	mock.Mock
}

func (m *mockJobRepo) Create(ctx context.Context, j *domain.Job) error {
	args := m.Called(ctx, j)
	return args.Error(0)
}

func (m *mockJobRepo) Update(ctx context.Context, j *domain.Job) error {
	args := m.Called(ctx, j)
	return args.Error(0)
}

func (m *mockJobRepo) GetByID(ctx context.Context, accountID, id string) (*domain.Job, error) {
	args := m.Called(ctx, accountID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *mockJobRepo) List(ctx context.Context, accountID string, f repository.JobFilter) ([]domain.Job, error) {
	args := m.Called(ctx, accountID, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}

func (m *mockJobRepo) ListByDate(ctx context.Context, accountID, date string) ([]domain.Job, error) {
	args := m.Called(ctx, accountID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}

func (m *mockJobRepo) UpdateStatus(ctx context.Context, accountID, id string, status domain.JobStatus) error {
	args := m.Called(ctx, accountID, id, status)
	return args.Error(0)
}

func (m *mockJobRepo) Delete(ctx context.Context, accountID, id string) error {
	args := m.Called(ctx, accountID, id)
	return args.Error(0)
}

type mockAccountReader struct {
	mock.Mock
}

func (m *mockAccountReader) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) JobEvent(accountID string, t notification.EventType, data map[string]any) {
	m.Called(accountID, t, data)
}

func accountReaderFor(id string, typ domain.AccountType) *mockAccountReader {
	accounts := new(mockAccountReader)
	accounts.On("GetByID", mock.Anything, id).Return(&domain.Account{ID: id, Type: typ}, nil)
	return accounts
}

func TestService_Create_Success(t *testing.T) {
	repo := new(mockJobRepo)
	events := new(mockPublisher)
	svc := NewService(repo, accountReaderFor("acc-1", domain.AccountFreelancer), events)

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	events.On("JobEvent", "acc-1", notification.EventJobCreated, mock.Anything).Return()

	created, err := svc.Create(context.Background(), "acc-1", CreateJobRequest{
		ClientID:  "cli-1",
		Date:      "2026-09-12",
		StartTime: "10:00",
		EndTime:   "12:00",
		Price:     500,
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.JobInquiry, created.Status)
	assert.Equal(t, "acc-1", created.AccountID)
	assert.Equal(t, domain.AccountFreelancer, created.AccountType)
	events.AssertExpectations(t)
}

func TestService_Create_StampsCompanyAccountType(t *testing.T) {
	repo := new(mockJobRepo)
	svc := NewService(repo, accountReaderFor("acc-2", domain.AccountCompany), nil)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(j *domain.Job) bool {
		return j.AccountType == domain.AccountCompany
	})).Return(nil)

	created, err := svc.Create(context.Background(), "acc-2", CreateJobRequest{
		ClientID:  "cli-1",
		Date:      "2026-09-12",
		StartTime: "10:00",
		EndTime:   "12:00",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.AccountCompany, created.AccountType)
	repo.AssertExpectations(t)
}

func TestService_Create_InvalidTimeRange(t *testing.T) {
	svc := NewService(new(mockJobRepo), new(mockAccountReader), nil)

	_, err := svc.Create(context.Background(), "acc-1", CreateJobRequest{
		ClientID:  "cli-1",
		Date:      "2026-09-12",
		StartTime: "14:00",
		EndTime:   "12:00",
	})

	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestService_Create_ExclusionViolationMapsToConflict(t *testing.T) {
	repo := new(mockJobRepo)
	svc := NewService(repo, accountReaderFor("acc-1", domain.AccountFreelancer), nil)

	repo.On("Create", mock.Anything, mock.Anything).Return(&pgconn.PgError{
		Code:           "23P01",
		ConstraintName: "excl_job_time_overlap",
	})

	_, err := svc.Create(context.Background(), "acc-1", CreateJobRequest{
		ClientID:  "cli-1",
		Date:      "2026-09-12",
		StartTime: "10:00",
		EndTime:   "12:00",
	})

	assert.ErrorIs(t, err, ErrBookingConflict)
}

func TestService_Create_DuplicateAssigneeMapsToConflict(t *testing.T) {
	repo := new(mockJobRepo)
	svc := NewService(repo, accountReaderFor("acc-1", domain.AccountCompany), nil)

	repo.On("Create", mock.Anything, mock.Anything).Return(&pgconn.PgError{
		Code:           "23505",
		ConstraintName: "idx_job_day_assignee",
	})

	assignee := "member-1"
	_, err := svc.Create(context.Background(), "acc-1", CreateJobRequest{
		ClientID:   "cli-1",
		Date:       "2026-09-12",
		AssigneeID: &assignee,
	})

	assert.ErrorIs(t, err, ErrBookingConflict)
}

func TestService_Create_SQLiteConflictSentinel(t *testing.T) {
	repo := new(mockJobRepo)
	svc := NewService(repo, accountReaderFor("acc-1", domain.AccountFreelancer), nil)

	repo.On("Create", mock.Anything, mock.Anything).Return(repository.ErrConflict)

	_, err := svc.Create(context.Background(), "acc-1", CreateJobRequest{
		ClientID:  "cli-1",
		Date:      "2026-09-12",
		StartTime: "10:00",
		EndTime:   "12:00",
	})

	assert.ErrorIs(t, err, ErrBookingConflict)
}

func TestService_Create_UnrelatedUniqueViolationPassesThrough(t *testing.T) {
	repo := new(mockJobRepo)
	svc := NewService(repo, accountReaderFor("acc-1", domain.AccountFreelancer), nil)

	repo.On("Create", mock.Anything, mock.Anything).Return(&pgconn.PgError{
		Code:           "23505",
		ConstraintName: "idx_invoices_invoice_number",
	})

	_, err := svc.Create(context.Background(), "acc-1", CreateJobRequest{
		ClientID: "cli-1",
		Date:     "2026-09-12",
	})

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrBookingConflict)
}

func TestService_UpdateStatus_TerminalRejected(t *testing.T) {
	repo := new(mockJobRepo)
	svc := NewService(repo, new(mockAccountReader), nil)

	repo.On("GetByID", mock.Anything, "acc-1", "job-1").Return(&domain.Job{
		ID:     "job-1",
		Status: domain.JobCompleted,
	}, nil)

	_, err := svc.UpdateStatus(context.Background(), "acc-1", "job-1", UpdateStatusRequest{
		Status: string(domain.JobEditing),
	})

	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
	repo.AssertNotCalled(t, "UpdateStatus")
}

func TestService_UpdateStatus_UnknownStatus(t *testing.T) {
	svc := NewService(new(mockJobRepo), new(mockAccountReader), nil)

	_, err := svc.UpdateStatus(context.Background(), "acc-1", "job-1", UpdateStatusRequest{
		Status: "Archived",
	})

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestService_UpdateStatus_PublishesEvent(t *testing.T) {
	repo := new(mockJobRepo)
	events := new(mockPublisher)
	svc := NewService(repo, new(mockAccountReader), events)

	repo.On("GetByID", mock.Anything, "acc-1", "job-1").Return(&domain.Job{
		ID:     "job-1",
		Status: domain.JobBooked,
	}, nil)
	repo.On("UpdateStatus", mock.Anything, "acc-1", "job-1", domain.JobShooting).Return(nil)
	events.On("JobEvent", "acc-1", notification.EventJobStatusChanged, mock.Anything).Return()

	updated, err := svc.UpdateStatus(context.Background(), "acc-1", "job-1", UpdateStatusRequest{
		Status: string(domain.JobShooting),
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.JobShooting, updated.Status)
	events.AssertExpectations(t)
}

func TestService_CheckConflict_FreelancerOverlap(t *testing.T) {
	repo := new(mockJobRepo)
	accounts := new(mockAccountReader)
	svc := NewService(repo, accounts, nil)

	accounts.On("GetByID", mock.Anything, "acc-1").Return(&domain.Account{
		ID:   "acc-1",
		Type: domain.AccountFreelancer,
	}, nil)
	repo.On("ListByDate", mock.Anything, "acc-1", "2026-09-12").Return([]domain.Job{
		{ID: "job-1", Date: "2026-09-12", StartTime: "10:00", EndTime: "12:00", Status: domain.JobBooked},
	}, nil)

	res, err := svc.CheckConflict(context.Background(), "acc-1", CheckConflictRequest{
		Date:      "2026-09-12",
		StartTime: "11:00",
		EndTime:   "13:00",
	})

	assert.NoError(t, err)
	assert.True(t, res.HasConflict)
	assert.Len(t, res.Conflicts, 1)
}

func TestService_CheckConflict_BackToBackIsClear(t *testing.T) {
	repo := new(mockJobRepo)
	accounts := new(mockAccountReader)
	svc := NewService(repo, accounts, nil)

	accounts.On("GetByID", mock.Anything, "acc-1").Return(&domain.Account{
		ID:   "acc-1",
		Type: domain.AccountFreelancer,
	}, nil)
	repo.On("ListByDate", mock.Anything, "acc-1", "2026-09-12").Return([]domain.Job{
		{ID: "job-1", Date: "2026-09-12", StartTime: "10:00", EndTime: "11:00", Status: domain.JobBooked},
	}, nil)

	res, err := svc.CheckConflict(context.Background(), "acc-1", CheckConflictRequest{
		Date:      "2026-09-12",
		StartTime: "11:00",
		EndTime:   "12:00",
	})

	assert.NoError(t, err)
	assert.False(t, res.HasConflict)
}

func TestService_Calendar_HighlightsBusyDates(t *testing.T) {
	repo := new(mockJobRepo)
	svc := NewService(repo, new(mockAccountReader), nil)

	repo.On("List", mock.Anything, "acc-1", mock.Anything).Return([]domain.Job{
		{ID: "a", Date: "2026-09-12", Status: domain.JobBooked, Client: &domain.Client{Name: "Anna"}},
		{ID: "b", Date: "2026-09-12", Status: domain.JobInquiry},
		{ID: "c", Date: "2026-09-13", Status: domain.JobBooked},
	}, nil)

	cal, err := svc.Calendar(context.Background(), "acc-1", CalendarQuery{
		From: "2026-09-01",
		To:   "2026-09-30",
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, cal.TotalCount)
	assert.True(t, cal.BusyDates["2026-09-12"])
	assert.False(t, cal.BusyDates["2026-09-13"])
	assert.Equal(t, "Anna", cal.Jobs[0].ClientName)
}

func TestService_Get_NotFound(t *testing.T) {
	repo := new(mockJobRepo)
	svc := NewService(repo, new(mockAccountReader), nil)

	repo.On("GetByID", mock.Anything, "acc-1", "missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Get(context.Background(), "acc-1", "missing")

	assert.ErrorIs(t, err, ErrNotFound)
}
