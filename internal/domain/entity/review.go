package entity

import "time"

// Review is a user review left on a business.
type Review struct {
	ID         string    `json:"id"`
	BusinessID string    `json:"business_id"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Rating     float64   `json:"rating"` // 1..5, clamped during normalization.
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewReviewFromDocument converts a raw review document into a well-formed
// Review with the same defensive defaulting the business normalizer applies.
func NewReviewFromDocument(businessID, id string, data map[string]any) *Review {
	rating := asFloat(data["rating"])
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}

	return &Review{
		ID:         id,
		BusinessID: businessID,
		AuthorID:   asString(data["authorId"]),
		AuthorName: asString(data["authorName"]),
		Rating:     rating,
		Comment:    asString(data["comment"]),
		CreatedAt:  asTimeOr(data["createdAt"], time.Now()),
	}
}
