package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"shootsuite/internal/domain"
)

type mockAccountRepo struct {
	mock.Mock
}

func (m *mockAccountRepo) Create(ctx context.Context, a *domain.Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *mockAccountRepo) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *mockAccountRepo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *mockAccountRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockAccountRepo) ListByApproval(ctx context.Context, status domain.ApprovalStatus) ([]domain.Account, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *mockAccountRepo) UpdateApproval(ctx context.Context, id string, status domain.ApprovalStatus, reason string) error {
	args := m.Called(ctx, id, status, reason)
	return args.Error(0)
}

type mockTokenIssuer struct {
	mock.Mock
}

func (m *mockTokenIssuer) GenerateToken(accountID, role string) (string, error) {
	args := m.Called(accountID, role)
	return args.String(0), args.Error(1)
}

func hashFor(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestService_Signup_Freelancer_ApprovedImmediately(t *testing.T) {
	repo := new(mockAccountRepo)
	jwtSvc := new(mockTokenIssuer)
	svc := NewService(repo, jwtSvc)

	repo.On("EmailExists", mock.Anything, "anna@example.com").Return(false, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	account, err := svc.Signup(context.Background(), SignupRequest{
		Email:    "Anna@Example.com",
		Password: "supersecret",
		Name:     "Anna",
		Type:     domain.AccountFreelancer,
	})

	assert.NoError(t, err)
	assert.Equal(t, "anna@example.com", account.Email)
	assert.Equal(t, domain.ApprovalApproved, account.ApprovalStatus)
	assert.Empty(t, account.PasswordHash)
	repo.AssertExpectations(t)
}

func TestService_Signup_Company_Pending(t *testing.T) {
	repo := new(mockAccountRepo)
	svc := NewService(repo, new(mockTokenIssuer))

	repo.On("EmailExists", mock.Anything, mock.Anything).Return(false, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	account, err := svc.Signup(context.Background(), SignupRequest{
		Email:        "studio@example.com",
		Password:     "supersecret",
		Name:         "Boss",
		BusinessName: "Light Studio",
		Type:         domain.AccountCompany,
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.ApprovalPending, account.ApprovalStatus)
}

func TestService_Signup_EmailTaken(t *testing.T) {
	repo := new(mockAccountRepo)
	svc := NewService(repo, new(mockTokenIssuer))

	repo.On("EmailExists", mock.Anything, mock.Anything).Return(true, nil)

	_, err := svc.Signup(context.Background(), SignupRequest{
		Email:    "taken@example.com",
		Password: "supersecret",
		Name:     "Anna",
		Type:     domain.AccountFreelancer,
	})

	assert.ErrorIs(t, err, ErrEmailTaken)
	repo.AssertNotCalled(t, "Create")
}

func TestService_Login_Success(t *testing.T) {
	repo := new(mockAccountRepo)
	jwtSvc := new(mockTokenIssuer)
	svc := NewService(repo, jwtSvc)

	stored := &domain.Account{
		ID:             "acc-1",
		Email:          "anna@example.com",
		PasswordHash:   hashFor(t, "supersecret"),
		Role:           domain.RoleMember,
		ApprovalStatus: domain.ApprovalApproved,
	}
	repo.On("GetByEmail", mock.Anything, "anna@example.com").Return(stored, nil)
	jwtSvc.On("GenerateToken", "acc-1", "member").Return("signed-token", nil)

	result, err := svc.Login(context.Background(), LoginRequest{
		Email:    "anna@example.com",
		Password: "supersecret",
	})

	assert.NoError(t, err)
	assert.Equal(t, "signed-token", result.Token)
	assert.Empty(t, result.Account.PasswordHash)
}

func TestService_Login_WrongPassword(t *testing.T) {
	repo := new(mockAccountRepo)
	svc := NewService(repo, new(mockTokenIssuer))

	stored := &domain.Account{
		ID:             "acc-1",
		Email:          "anna@example.com",
		PasswordHash:   hashFor(t, "supersecret"),
		ApprovalStatus: domain.ApprovalApproved,
	}
	repo.On("GetByEmail", mock.Anything, mock.Anything).Return(stored, nil)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "anna@example.com",
		Password: "not-the-password",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	repo := new(mockAccountRepo)
	svc := NewService(repo, new(mockTokenIssuer))

	repo.On("GetByEmail", mock.Anything, mock.Anything).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_PendingCompanyBlocked(t *testing.T) {
	repo := new(mockAccountRepo)
	svc := NewService(repo, new(mockTokenIssuer))

	stored := &domain.Account{
		ID:             "acc-2",
		Email:          "studio@example.com",
		PasswordHash:   hashFor(t, "supersecret"),
		Type:           domain.AccountCompany,
		ApprovalStatus: domain.ApprovalPending,
	}
	repo.On("GetByEmail", mock.Anything, mock.Anything).Return(stored, nil)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "studio@example.com",
		Password: "supersecret",
	})

	assert.ErrorIs(t, err, ErrNotApproved)
}

func TestService_ReviewSignup(t *testing.T) {
	repo := new(mockAccountRepo)
	svc := NewService(repo, new(mockTokenIssuer))

	stored := &domain.Account{ID: "acc-3", ApprovalStatus: domain.ApprovalPending}
	repo.On("GetByID", mock.Anything, "acc-3").Return(stored, nil)
	repo.On("UpdateApproval", mock.Anything, "acc-3", domain.ApprovalApproved, "").Return(nil)

	account, err := svc.ReviewSignup(context.Background(), "acc-3", ReviewSignupRequest{Approve: true})

	assert.NoError(t, err)
	assert.Equal(t, domain.ApprovalApproved, account.ApprovalStatus)
	repo.AssertExpectations(t)
}

func TestService_ReviewSignup_Reject(t *testing.T) {
	repo := new(mockAccountRepo)
	svc := NewService(repo, new(mockTokenIssuer))

	stored := &domain.Account{ID: "acc-4", ApprovalStatus: domain.ApprovalPending}
	repo.On("GetByID", mock.Anything, "acc-4").Return(stored, nil)
	repo.On("UpdateApproval", mock.Anything, "acc-4", domain.ApprovalRejected, "incomplete details").Return(nil)

	account, err := svc.ReviewSignup(context.Background(), "acc-4", ReviewSignupRequest{
		Approve: false,
		Reason:  "incomplete details",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.ApprovalRejected, account.ApprovalStatus)
	assert.Equal(t, "incomplete details", account.RejectedReason)
}
