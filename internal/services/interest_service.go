package services

import (
	"context"

	"tripwise/internal/models/response_models"
)

type InterestServiceInterface interface {
	GetAllInterests(ctx context.Context) ([]response_models.InterestResponse, error)
}

// defaultInterests is the catalog offered on the planning form.
var defaultInterests = []response_models.InterestResponse{
	{ID: "food", Name: "Food & Dining", Icon: "utensils"},
	{ID: "adventure", Name: "Adventure", Icon: "hiking"},
	{ID: "culture", Name: "Culture", Icon: "landmark"},
	{ID: "relaxation", Name: "Relaxation", Icon: "umbrella-beach"},
	{ID: "shopping", Name: "Shopping", Icon: "shopping-bag"},
	{ID: "photography", Name: "Photography", Icon: "camera"},
	{ID: "history", Name: "History", Icon: "monument"},
	{ID: "nature", Name: "Nature", Icon: "leaf"},
	{ID: "nightlife", Name: "Nightlife", Icon: "cocktail"},
	{ID: "arts", Name: "Arts", Icon: "palette"},
}

type InterestService struct{}

func NewInterestService() InterestServiceInterface {
	return &InterestService{}
}

func (s *InterestService) GetAllInterests(ctx context.Context) ([]response_models.InterestResponse, error) {
	out := make([]response_models.InterestResponse, len(defaultInterests))
	copy(out, defaultInterests)
	return out, nil
}
