package handlers

import (
	"context"

	"adboard/internal/models"
	"adboard/internal/service"

	"github.com/stretchr/testify/mock"
)

// mockCtx matches any request context.
const mockCtx = mock.Anything

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req service.RegisterRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Authenticate(ctx context.Context, username, password string) (*models.Principal, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Principal), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*service.AccessToken, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AccessToken), args.Error(1)
}

func (m *MockAuthService) ChangePassword(ctx context.Context, principal *models.Principal, currentPassword, newPassword string) error {
	args := m.Called(ctx, principal, currentPassword, newPassword)
	return args.Error(0)
}

func (m *MockAuthService) IssueToken(principal *models.Principal) (*service.AccessToken, error) {
	args := m.Called(principal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AccessToken), args.Error(1)
}

func (m *MockAuthService) ParseToken(tokenString string) (*models.Principal, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Principal), args.Error(1)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetProfile(ctx context.Context, principal *models.Principal) (*models.User, error) {
	args := m.Called(ctx, principal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) UpdateProfile(ctx context.Context, principal *models.Principal, req service.UpdateProfileRequest) (*models.User, error) {
	args := m.Called(ctx, principal, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) UpdateAvatar(ctx context.Context, principal *models.Principal, upload service.Upload) (*models.User, error) {
	args := m.Called(ctx, principal, upload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) GetAvatar(ctx context.Context, userID int64) (*service.ImageData, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ImageData), args.Error(1)
}

type MockAdService struct {
	mock.Mock
}

func (m *MockAdService) ListAll(ctx context.Context) ([]models.Ad, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Ad), args.Error(1)
}

func (m *MockAdService) ListMine(ctx context.Context, principal *models.Principal) ([]models.Ad, error) {
	args := m.Called(ctx, principal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Ad), args.Error(1)
}

func (m *MockAdService) GetDetail(ctx context.Context, adID int64) (*models.AdDetails, error) {
	args := m.Called(ctx, adID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AdDetails), args.Error(1)
}

func (m *MockAdService) Create(ctx context.Context, principal *models.Principal, req service.CreateAdRequest) (*models.Ad, error) {
	args := m.Called(ctx, principal, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ad), args.Error(1)
}

func (m *MockAdService) Update(ctx context.Context, principal *models.Principal, adID int64, req service.UpdateAdRequest) (*models.Ad, error) {
	args := m.Called(ctx, principal, adID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ad), args.Error(1)
}

func (m *MockAdService) UpdateImage(ctx context.Context, principal *models.Principal, adID int64, upload service.Upload) (*models.Ad, error) {
	args := m.Called(ctx, principal, adID, upload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ad), args.Error(1)
}

func (m *MockAdService) Delete(ctx context.Context, principal *models.Principal, adID int64) error {
	args := m.Called(ctx, principal, adID)
	return args.Error(0)
}

func (m *MockAdService) GetImage(ctx context.Context, adID int64) (*service.ImageData, error) {
	args := m.Called(ctx, adID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ImageData), args.Error(1)
}

type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) ListForAd(ctx context.Context, adID int64) ([]models.CommentWithAuthor, error) {
	args := m.Called(ctx, adID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CommentWithAuthor), args.Error(1)
}

func (m *MockCommentService) Create(ctx context.Context, principal *models.Principal, adID int64, text string) (*models.CommentWithAuthor, error) {
	args := m.Called(ctx, principal, adID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CommentWithAuthor), args.Error(1)
}

func (m *MockCommentService) Update(ctx context.Context, principal *models.Principal, adID, commentID int64, text string) (*models.CommentWithAuthor, error) {
	args := m.Called(ctx, principal, adID, commentID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CommentWithAuthor), args.Error(1)
}

func (m *MockCommentService) Delete(ctx context.Context, principal *models.Principal, adID, commentID int64) error {
	args := m.Called(ctx, principal, adID, commentID)
	return args.Error(0)
}

type MockTablesService struct {
	mock.Mock
}

func (m *MockTablesService) CountTables(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
