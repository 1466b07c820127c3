package services

import (
	"context"
	"strings"

	"github.com/zatekoja/medfinder/backend/internal/domain/entities"
	"github.com/zatekoja/medfinder/backend/internal/domain/repositories"
	apperrors "github.com/zatekoja/medfinder/backend/pkg/errors"
)

const defaultHistoryLimit = 10

// FavoriteService manages a user's saved medications
type FavoriteService struct {
	favoriteRepo repositories.FavoriteRepository
}

// NewFavoriteService creates a new favorite service
func NewFavoriteService(favoriteRepo repositories.FavoriteRepository) *FavoriteService {
	return &FavoriteService{favoriteRepo: favoriteRepo}
}

// Add saves a medication for the user. Saving it twice is a conflict.
func (s *FavoriteService) Add(ctx context.Context, userID, medicationID string) (*entities.Favorite, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	medicationID = strings.TrimSpace(medicationID)
	if medicationID == "" {
		return nil, apperrors.NewValidationError("medicationId is required")
	}

	fav := &entities.Favorite{UserID: userID, MedicationID: medicationID}
	if err := s.favoriteRepo.Add(ctx, fav); err != nil {
		return nil, err
	}
	return fav, nil
}

func (s *FavoriteService) Remove(ctx context.Context, userID, medicationID string) error {
	if err := requireUser(userID); err != nil {
		return err
	}
	if strings.TrimSpace(medicationID) == "" {
		return apperrors.NewValidationError("medicationId is required")
	}
	return s.favoriteRepo.Remove(ctx, userID, medicationID)
}

func (s *FavoriteService) List(ctx context.Context, userID string) ([]*entities.FavoriteMedication, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	return s.favoriteRepo.ListByUser(ctx, userID)
}

// SearchHistoryService reads a user's recent symptom searches
type SearchHistoryService struct {
	historyRepo repositories.SearchHistoryRepository
}

// NewSearchHistoryService creates a new search history service
func NewSearchHistoryService(historyRepo repositories.SearchHistoryRepository) *SearchHistoryService {
	return &SearchHistoryService{historyRepo: historyRepo}
}

// Recent returns the user's latest searches, newest first
func (s *SearchHistoryService) Recent(ctx context.Context, userID string) ([]*entities.SearchHistory, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	return s.historyRepo.ListByUser(ctx, userID, defaultHistoryLimit)
}

func requireUser(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return apperrors.NewUnauthorizedError("Unauthorized")
	}
	return nil
}
