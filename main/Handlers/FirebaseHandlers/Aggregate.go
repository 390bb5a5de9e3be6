package FirebaseHandlers

type RatingSummary struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// CommunityRating reduces a movie's reviews to their mean rating. The second
// return value is false when there are no reviews; callers must treat that
// as a distinct state from an average of zero.
func CommunityRating(reviews []Review) (RatingSummary, bool) {
	if len(reviews) == 0 {
		return RatingSummary{}, false
	}
	sum := 0
	for _, review := range reviews {
		sum += review.Rating
	}
	return RatingSummary{
		Average: float64(sum) / float64(len(reviews)),
		Count:   len(reviews),
	}, true
}
