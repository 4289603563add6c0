package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/smartinvoice/smartinvoice-api/internal/domain/entity"
	"github.com/smartinvoice/smartinvoice-api/internal/domain/enum"
	"github.com/smartinvoice/smartinvoice-api/internal/domain/repository"
)

// ProfileService manages the per-account usage and plan state
type ProfileService struct {
	profileRepo  repository.ProfileRepository
	freeDocLimit int
}

// NewProfileService creates a new profile service
func NewProfileService(profileRepo repository.ProfileRepository, freeDocLimit int) *ProfileService {
	if freeDocLimit <= 0 {
		freeDocLimit = DefaultFreeDocLimit
	}
	return &ProfileService{
		profileRepo:  profileRepo,
		freeDocLimit: freeDocLimit,
	}
}

// FreeDocLimit returns the configured free-plan document limit
func (s *ProfileService) FreeDocLimit() int {
	return s.freeDocLimit
}

// Get returns the user's profile, creating a default one if none exists
func (s *ProfileService) Get(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if profile == nil {
		profile = entity.DefaultProfile(userID)
		if err := s.profileRepo.Create(ctx, profile); err != nil {
			// Account state still reads as a fresh free plan
			log.Printf("Warning: failed to create default profile for user %s: %v", userID, err)
		}
	}

	return profile, nil
}

// UpdateProfileInput represents the update profile input
type UpdateProfileInput struct {
	UserID   uuid.UUID
	FullName string
}

// UpdateProfile updates the profile's editable fields
func (s *ProfileService) UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*entity.Profile, error) {
	profile, err := s.Get(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.FullName != "" {
		profile.FullName = input.FullName
	}

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

// UsageSnapshot summarizes the account's export allowance for display
type UsageSnapshot struct {
	PlanType           enum.PlanType `json:"plan_type"`
	SubscriptionExpiry *time.Time    `json:"subscription_expiry,omitempty"`
	UsedDocs           int           `json:"used_docs"`
	Limit              int           `json:"limit"`
	Remaining          int           `json:"remaining"`
	Status             string        `json:"status"`
	Decision           string        `json:"decision"`
}

// Usage returns the current export allowance snapshot
func (s *ProfileService) Usage(ctx context.Context, userID uuid.UUID) (*UsageSnapshot, error) {
	profile, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	decision := DecideProfileAccess(profile, s.freeDocLimit, time.Now())

	return &UsageSnapshot{
		PlanType:           profile.PlanType,
		SubscriptionExpiry: profile.SubscriptionExpiry,
		UsedDocs:           profile.FreeDocsUsed,
		Limit:              s.freeDocLimit,
		Remaining:          profile.RemainingDocs(s.freeDocLimit),
		Status:             profile.UsageStatus(s.freeDocLimit),
		Decision:           decision.String(),
	}, nil
}
