package review

import "turfbook/internal/domain"

type UpsertRequest struct {
	Rating  int      `json:"rating" binding:"required,min=1,max=5"`
	Title   string   `json:"experience_title" binding:"max=120"`
	Comment string   `json:"comment"`
	Photos  []string `json:"photos" binding:"max=5"`
}

type FieldReviews struct {
	Reviews       []domain.Review `json:"reviews"`
	AverageRating float64         `json:"average_rating"`
	Count         int             `json:"count"`
}
