package store

import "time"

type Type string

const (
	TypeFarm          Type = "Farm"
	TypeManufacturing Type = "Manufacturing"
)

type Store struct {
	ID            int       `json:"id"`
	UserID        int       `json:"userId"`
	Name          string    `json:"name"`
	Address       string    `json:"address"`
	Phone         string    `json:"phone"`
	StoreType     Type      `json:"storeType"`
	IsApproved    bool      `json:"isApproved"`
	CoverImage    string    `json:"coverImage"`
	AverageRating float64   `json:"averageRating"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Update holds owner editable fields. Nil fields are left unchanged.
type Update struct {
	Name       *string
	Address    *string
	Phone      *string
	StoreType  *Type
	CoverImage *string
}

type Filter struct {
	ApprovedOnly bool
	Search       string
	Limit        int
}
