package services_test

import (
	"context"
	"testing"

	"github.com/lifetrackhq/lifetrack_backend/internal/apperrors"
	"github.com/lifetrackhq/lifetrack_backend/internal/core/domain"
	portssvc "github.com/lifetrackhq/lifetrack_backend/internal/core/ports/services"
	"github.com/lifetrackhq/lifetrack_backend/internal/core/services"
	"github.com/lifetrackhq/lifetrack_backend/internal/dto"
	"github.com/lifetrackhq/lifetrack_backend/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	userRepo     *MockUserRepository
	categoryRepo *MockCategoryRepository
	service      portssvc.UserSvcFacade
	ctx          context.Context
}

func (s *UserServiceTestSuite) SetupTest() {
	s.userRepo = new(MockUserRepository)
	s.categoryRepo = new(MockCategoryRepository)
	s.service = services.NewUserService(s.userRepo, s.categoryRepo)
	s.ctx = context.Background()
}

func (s *UserServiceTestSuite) TestRegisterUserSeedsDefaultCategories() {
	s.userRepo.On("FindUserByEmail", s.ctx, "ada@example.com").Return(nil, apperrors.ErrNotFound).Once()
	s.userRepo.On("SaveUser", s.ctx, mock.AnythingOfType("domain.User")).Return(nil).Once()
	s.categoryRepo.On("SaveCategories", s.ctx, mock.MatchedBy(func(cats []domain.Category) bool {
		if len(cats) != 12 {
			return false
		}
		income, expense := 0, 0
		for _, c := range cats {
			if c.OwnerID == "" || c.CategoryID == "" {
				return false
			}
			switch c.Type {
			case domain.CategoryIncome:
				income++
			case domain.CategoryExpense:
				expense++
			}
		}
		return income == 4 && expense == 8
	})).Return(nil).Once()

	user, err := s.service.RegisterUser(s.ctx, dto.RegisterRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "correct-horse",
	})

	s.Require().NoError(err)
	s.Equal(domain.ProviderLocal, user.AuthProvider)
	s.NotEmpty(user.UserID)
	s.NotEqual("correct-horse", user.PasswordHash)
	s.userRepo.AssertExpectations(s.T())
	s.categoryRepo.AssertExpectations(s.T())
}

func (s *UserServiceTestSuite) TestRegisterUserDuplicateEmailLeavesNoState() {
	existing := &domain.User{UserID: "u-1", Email: "ada@example.com"}
	s.userRepo.On("FindUserByEmail", s.ctx, "ada@example.com").Return(existing, nil).Once()

	_, err := s.service.RegisterUser(s.ctx, dto.RegisterRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "correct-horse",
	})

	s.ErrorIs(err, apperrors.ErrDuplicate)
	s.userRepo.AssertNotCalled(s.T(), "SaveUser")
	s.categoryRepo.AssertNotCalled(s.T(), "SaveCategories")
}

func (s *UserServiceTestSuite) TestRegisterUserConcurrentDuplicateSurfacesFromStore() {
	s.userRepo.On("FindUserByEmail", s.ctx, "ada@example.com").Return(nil, apperrors.ErrNotFound).Once()
	s.userRepo.On("SaveUser", s.ctx, mock.AnythingOfType("domain.User")).Return(apperrors.ErrDuplicate).Once()

	_, err := s.service.RegisterUser(s.ctx, dto.RegisterRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "correct-horse",
	})

	s.ErrorIs(err, apperrors.ErrDuplicate)
	s.categoryRepo.AssertNotCalled(s.T(), "SaveCategories")
}

func (s *UserServiceTestSuite) TestAuthenticate() {
	hash, err := utils.HashPassword("correct-horse")
	s.Require().NoError(err)
	user := &domain.User{UserID: "u-1", Email: "ada@example.com", PasswordHash: hash}
	s.userRepo.On("FindUserByEmail", s.ctx, "ada@example.com").Return(user, nil)

	got, err := s.service.Authenticate(s.ctx, "ada@example.com", "correct-horse")
	s.Require().NoError(err)
	s.Equal("u-1", got.UserID)

	_, err = s.service.Authenticate(s.ctx, "ada@example.com", "wrong-password")
	s.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (s *UserServiceTestSuite) TestAuthenticateUnknownEmailIsUnauthorized() {
	s.userRepo.On("FindUserByEmail", s.ctx, "ghost@example.com").Return(nil, apperrors.ErrNotFound).Once()

	_, err := s.service.Authenticate(s.ctx, "ghost@example.com", "whatever")

	// Unknown email and wrong password are indistinguishable to the caller.
	s.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (s *UserServiceTestSuite) TestFindOrCreateGoogleUserCreatesOnFirstSignIn() {
	info := domain.GoogleUserInfo{Subject: "goog-123", Email: "ada@example.com", Name: "Ada"}
	s.userRepo.On("FindUserByProviderDetails", s.ctx, "GOOGLE", "goog-123").Return(nil, apperrors.ErrNotFound).Once()
	s.userRepo.On("FindUserByEmail", s.ctx, "ada@example.com").Return(nil, apperrors.ErrNotFound).Once()
	s.userRepo.On("SaveUser", s.ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.AuthProvider == domain.ProviderGoogle && u.ProviderUserID == "goog-123" && u.PasswordHash == ""
	})).Return(nil).Once()
	s.categoryRepo.On("SaveCategories", s.ctx, mock.AnythingOfType("[]domain.Category")).Return(nil).Once()

	user, err := s.service.FindOrCreateGoogleUser(s.ctx, info)

	s.Require().NoError(err)
	s.Equal("ada@example.com", user.Email)
	s.userRepo.AssertExpectations(s.T())
	s.categoryRepo.AssertExpectations(s.T())
}

func (s *UserServiceTestSuite) TestFindOrCreateGoogleUserReturnsExisting() {
	existing := &domain.User{UserID: "u-1", AuthProvider: domain.ProviderGoogle, ProviderUserID: "goog-123"}
	s.userRepo.On("FindUserByProviderDetails", s.ctx, "GOOGLE", "goog-123").Return(existing, nil).Once()

	user, err := s.service.FindOrCreateGoogleUser(s.ctx, domain.GoogleUserInfo{Subject: "goog-123", Email: "ada@example.com"})

	s.Require().NoError(err)
	s.Equal("u-1", user.UserID)
	s.userRepo.AssertNotCalled(s.T(), "SaveUser")
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
