package rating

import "time"

const DefaultWeight = 1.0

type Rating struct {
	ID        int       `json:"id"`
	StoreID   int       `json:"storeId"`
	UserID    int       `json:"userId"`
	Value     int       `json:"value"`
	Weight    float64   `json:"weight"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// Average returns the weighted mean of the ratings, sum(weight*value)/sum(weight).
// It is 0 when there are no ratings or the weights sum to 0.
func Average(ratings []Rating) float64 {
	var sum, weights float64
	for _, r := range ratings {
		sum += r.Weight * float64(r.Value)
		weights += r.Weight
	}

	if weights == 0 {
		return 0
	}

	return sum / weights
}

// Summary is the ratings of a store with their weighted average.
type Summary struct {
	Ratings []Rating `json:"ratings"`
	Average float64  `json:"averageRating"`
}
