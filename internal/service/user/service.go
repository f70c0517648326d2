package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/opspulse/opspulse-backend-go/internal/domain/team"
	"github.com/opspulse/opspulse-backend-go/internal/domain/user"
)

type UserServiceImpl struct {
	userRepo user.Repository
	catalog  *team.Catalog
}

func NewUserService(userRepo user.Repository, catalog *team.Catalog) user.Service {
	return &UserServiceImpl{
		userRepo: userRepo,
		catalog:  catalog,
	}
}

// Register implements user.Service. The goal snapshot is taken from the team
// catalog at this moment; later catalog changes do not touch existing users.
func (s *UserServiceImpl) Register(ctx context.Context, req user.RegisterRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	location := team.ParseLocationType(req.LocationType)

	goals, err := s.catalog.GoalsFor(req.Team, location)
	if err != nil {
		return user.UserResponse{}, err
	}

	if _, err := s.userRepo.GetByEmail(ctx, req.Email); err == nil {
		return user.UserResponse{}, user.ErrEmailExists
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return user.UserResponse{}, fmt.Errorf("check existing email: %w", err)
	}

	u := user.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		Role:         user.Role(req.Role),
		Team:         req.Team,
		LocationType: location,
		Goals:        goals,
		Active:       true,
	}

	created, err := s.userRepo.Create(ctx, u)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("create user: %w", err)
	}

	return user.ToResponse(created), nil
}

// GetUser implements user.Service.
func (s *UserServiceImpl) GetUser(ctx context.Context, id string) (user.UserResponse, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(u), nil
}

// IdentifyByEmail implements user.Service.
func (s *UserServiceImpl) IdentifyByEmail(ctx context.Context, email string) (user.UserResponse, error) {
	u, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return user.UserResponse{}, err
	}

	if err := s.userRepo.TouchLastLogin(ctx, u.ID); err != nil {
		return user.UserResponse{}, fmt.Errorf("touch last login: %w", err)
	}

	return user.ToResponse(u), nil
}

// ListTeamMembers implements user.Service.
func (s *UserServiceImpl) ListTeamMembers(ctx context.Context, teamID string, role user.Role) ([]user.UserResponse, error) {
	members, err := s.userRepo.ListByTeamAndRole(ctx, teamID, role)
	if err != nil {
		return nil, fmt.Errorf("list team members: %w", err)
	}
	return toResponses(members), nil
}

// ListAllUsers implements user.Service.
func (s *UserServiceImpl) ListAllUsers(ctx context.Context) ([]user.UserResponse, error) {
	users, err := s.userRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return toResponses(users), nil
}

func toResponses(users []user.User) []user.UserResponse {
	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.ToResponse(u))
	}
	return responses
}
