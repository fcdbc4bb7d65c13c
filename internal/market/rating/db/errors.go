package ratingdb

import "errors"

var (
	ErrRatingNotFound = errors.New("rating not found")
	ErrStoreNotFound  = errors.New("store not found")
)
