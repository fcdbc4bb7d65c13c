package ratinghandler

import "github.com/xw1nchester/hisba-backend/internal/market/rating"

type CreateRatingRequest struct {
	Value   int     `json:"value" validate:"required,gte=1,lte=5"`
	Weight  float64 `json:"weight" validate:"omitempty,gt=0"`
	Comment string  `json:"comment" validate:"max=1000"`
}

func (cr CreateRatingRequest) ToDomain(storeID int) rating.Rating {
	return rating.Rating{
		StoreID: storeID,
		Value:   cr.Value,
		Weight:  cr.Weight,
		Comment: cr.Comment,
	}
}

type RatingResponse struct {
	Rating rating.Rating `json:"rating"`
}
