package review

type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,gte=1,lte=5"`
	Comment string `json:"comment"`
}

// Summary aggregates a listing's reviews for catalog cards.
type Summary struct {
	ListingID     int64   `json:"listing_id"`
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int64   `json:"review_count"`
}
