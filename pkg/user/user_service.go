package user

import (
	"DineWise-Backend/domain"
	"DineWise-Backend/entities"
	"DineWise-Backend/internal/utils/storage"
	"DineWise-Backend/pkg/jwt"
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const recentLimit = 5

type (
	// DescriptionGenerator produces a short natural-language summary of a
	// user's dietary preferences. Implemented by the chat service; declared
	// here so this package does not depend on it.
	DescriptionGenerator interface {
		GenerateUserDescription(ctx context.Context, prefs *entities.Preferences) (string, error)
	}

	UserService interface {
		RegisterUser(ctx context.Context, req domain.RegisterUserRequest) (domain.UserProfileResponse, error)
		Login(ctx context.Context, req domain.LoginUserRequest) (domain.LoginUserResponse, error)
		Me(ctx context.Context, userID string) (domain.UserProfileResponse, error)
		UpdateUser(ctx context.Context, userID string, req domain.UpdateUserRequest) error
		DeleteUser(ctx context.Context, userID string) error
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		awsS3          storage.AwsS3
		descriptions   DescriptionGenerator
	}
)

func NewUserService(
	userRepository UserRepository,
	jwtService jwt.JWTService,
	awsS3 storage.AwsS3,
	descriptions DescriptionGenerator,
) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		awsS3:          awsS3,
		descriptions:   descriptions,
	}
}

// refreshDescription is best effort: a model outage never blocks signup or
// preference updates.
func (s *userService) refreshDescription(ctx context.Context, user *entities.User) {
	if s.descriptions == nil || user.Preferences == nil {
		return
	}
	description, err := s.descriptions.GenerateUserDescription(ctx, user.Preferences)
	if err != nil {
		log.Warnf("description generation skipped for user %s: %v", user.ID, err)
		return
	}
	user.Description = description
}

func (s *userService) RegisterUser(ctx context.Context, req domain.RegisterUserRequest) (domain.UserProfileResponse, error) {
	if req.Email == "" && req.Phone == "" {
		return domain.UserProfileResponse{}, domain.ErrMissingRequiredField
	}

	exists, err := s.userRepository.CheckUserExists(ctx, req.Email, req.Phone)
	if err != nil {
		return domain.UserProfileResponse{}, err
	}
	if exists {
		return domain.UserProfileResponse{}, domain.ErrUserAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.UserProfileResponse{}, err
	}

	user := &entities.User{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: string(hashed),
		Preferences: &entities.Preferences{
			ID:                  uuid.New(),
			Note:                req.Preference,
			IsLactoseIntolerant: req.IsLactoseIntolerant,
			IsHalal:             req.IsHalal,
			IsVegan:             req.IsVegan,
			IsVegetarian:        req.IsVegetarian,
			IsGlutenAllergic:    req.IsGlutenAllergic,
			IsJain:              req.IsJain,
		},
	}
	user.Preferences.UserID = user.ID

	if req.ProfilePhoto != nil {
		objectKey, err := s.awsS3.UploadFile(
			fmt.Sprintf("photo_%s", user.ID), req.ProfilePhoto, "user", storage.AllowImage...)
		if err != nil {
			return domain.UserProfileResponse{}, err
		}
		user.ProfilePhotoURL = s.awsS3.GetPublicLinkKey(objectKey)
	}

	s.refreshDescription(ctx, user)

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.UserProfileResponse{}, err
	}
	return s.toProfile(ctx, user)
}

func (s *userService) Login(ctx context.Context, req domain.LoginUserRequest) (domain.LoginUserResponse, error) {
	var (
		user *entities.User
		err  error
	)
	switch {
	case req.Email != "":
		user, err = s.userRepository.GetUserByEmail(ctx, req.Email)
	case req.Phone != "":
		user, err = s.userRepository.GetUserByPhone(ctx, req.Phone)
	default:
		return domain.LoginUserResponse{}, domain.ErrMissingRequiredField
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginUserResponse{}, domain.ErrInvalidCredentials
		}
		return domain.LoginUserResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginUserResponse{}, domain.ErrInvalidCredentials
	}

	token := s.jwtService.GenerateToken(user.ID.String(), domain.RoleUser)
	return domain.LoginUserResponse{AccessToken: token}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserProfileResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return domain.UserProfileResponse{}, replaceNotFound(err, domain.ErrUserNotFound)
	}
	return s.toProfile(ctx, user)
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req domain.UpdateUserRequest) error {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return replaceNotFound(err, domain.ErrUserNotFound)
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}

	prefsChanged := false
	if user.Preferences != nil {
		prefs := user.Preferences
		if req.Preference != nil {
			prefs.Note = *req.Preference
			prefsChanged = true
		}
		if req.IsLactoseIntolerant != nil {
			prefs.IsLactoseIntolerant = *req.IsLactoseIntolerant
			prefsChanged = true
		}
		if req.IsHalal != nil {
			prefs.IsHalal = *req.IsHalal
			prefsChanged = true
		}
		if req.IsVegan != nil {
			prefs.IsVegan = *req.IsVegan
			prefsChanged = true
		}
		if req.IsVegetarian != nil {
			prefs.IsVegetarian = *req.IsVegetarian
			prefsChanged = true
		}
		if req.IsGlutenAllergic != nil {
			prefs.IsGlutenAllergic = *req.IsGlutenAllergic
			prefsChanged = true
		}
		if req.IsJain != nil {
			prefs.IsJain = *req.IsJain
			prefsChanged = true
		}
		if prefsChanged {
			if err := s.userRepository.UpdatePreferences(ctx, prefs); err != nil {
				return err
			}
			s.refreshDescription(ctx, user)
		}
	}

	return s.userRepository.UpdateUser(ctx, user)
}

func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	if _, err := s.userRepository.GetUserByID(ctx, userID); err != nil {
		return replaceNotFound(err, domain.ErrUserNotFound)
	}
	return s.userRepository.DeleteUser(ctx, userID)
}

func (s *userService) toProfile(ctx context.Context, user *entities.User) (domain.UserProfileResponse, error) {
	profile := domain.UserProfileResponse{
		ID:              user.ID.String(),
		Name:            user.Name,
		Email:           user.Email,
		Phone:           user.Phone,
		Description:     user.Description,
		ProfilePhotoURL: user.ProfilePhotoURL,
		RecentOrders:    []domain.UserOrderSummary{},
		Conversations:   []domain.UserConversationSummary{},
	}
	if user.Preferences != nil {
		profile.Preferences = domain.PreferencesResponse{
			Preference:          user.Preferences.Note,
			IsLactoseIntolerant: user.Preferences.IsLactoseIntolerant,
			IsHalal:             user.Preferences.IsHalal,
			IsVegan:             user.Preferences.IsVegan,
			IsVegetarian:        user.Preferences.IsVegetarian,
			IsGlutenAllergic:    user.Preferences.IsGlutenAllergic,
			IsJain:              user.Preferences.IsJain,
		}
	}

	orders, err := s.userRepository.GetRecentOrders(ctx, user.ID, recentLimit)
	if err != nil {
		return domain.UserProfileResponse{}, err
	}
	for _, order := range orders {
		summary := domain.UserOrderSummary{
			ID:           order.ID.String(),
			RestaurantID: order.RestaurantID.String(),
			TotalCost:    order.TotalCost,
			Timestamp:    order.CreatedAt,
		}
		if order.Restaurant != nil {
			summary.RestaurantName = order.Restaurant.Name
		}
		profile.RecentOrders = append(profile.RecentOrders, summary)
	}

	conversations, err := s.userRepository.GetRecentConversations(ctx, user.ID, recentLimit)
	if err != nil {
		return domain.UserProfileResponse{}, err
	}
	for _, conversation := range conversations {
		summary := domain.UserConversationSummary{
			ID:           conversation.ID.String(),
			RestaurantID: conversation.RestaurantID.String(),
			Content:      conversation.Content,
			CreatedAt:    conversation.CreatedAt,
		}
		if conversation.Restaurant != nil {
			summary.RestaurantName = conversation.Restaurant.Name
		}
		profile.Conversations = append(profile.Conversations, summary)
	}

	return profile, nil
}

func replaceNotFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}
