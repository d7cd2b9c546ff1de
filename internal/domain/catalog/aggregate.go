package catalog

// ProductAggregate is the composite view of one product with its
// recommendations and reviews. It only lives for the duration of a request.
type ProductAggregate struct {
	ProductID        int                     `json:"productId"`
	Name             string                  `json:"name"`
	Weight           int                     `json:"weight"`
	Recommendations  []RecommendationSummary `json:"recommendations"`
	Reviews          []ReviewSummary         `json:"reviews"`
	ServiceAddresses *ServiceAddresses       `json:"serviceAddresses,omitempty"`
}

// RecommendationSummary is the part of a recommendation embedded in an aggregate
type RecommendationSummary struct {
	RecommendationID int    `json:"recommendationId"`
	Author           string `json:"author"`
	Rate             int    `json:"rate"`
	Content          string `json:"content"`
}

// ReviewSummary is the part of a review embedded in an aggregate
type ReviewSummary struct {
	ReviewID int    `json:"reviewId"`
	Author   string `json:"author"`
	Subject  string `json:"subject"`
	Content  string `json:"content"`
}

// ServiceAddresses records which instance served each part of an aggregate
type ServiceAddresses struct {
	Composite      string `json:"cmp"`
	Product        string `json:"pro"`
	Review         string `json:"rev"`
	Recommendation string `json:"rec"`
}

// NewProductAggregate assembles an aggregate, keeping the order in which
// recommendations and reviews were supplied. Nil sequences become empty ones.
func NewProductAggregate(product *Product, recommendations []Recommendation, reviews []Review, compositeAddress string) *ProductAggregate {
	recSummaries := make([]RecommendationSummary, 0, len(recommendations))
	for _, r := range recommendations {
		recSummaries = append(recSummaries, RecommendationSummary{
			RecommendationID: r.RecommendationID,
			Author:           r.Author,
			Rate:             r.Rating,
			Content:          r.Content,
		})
	}

	reviewSummaries := make([]ReviewSummary, 0, len(reviews))
	for _, r := range reviews {
		reviewSummaries = append(reviewSummaries, ReviewSummary{
			ReviewID: r.ReviewID,
			Author:   r.Author,
			Subject:  r.Subject,
			Content:  r.Content,
		})
	}

	addresses := &ServiceAddresses{
		Composite: compositeAddress,
		Product:   product.ServiceAddress,
	}
	if len(recommendations) > 0 {
		addresses.Recommendation = recommendations[0].ServiceAddress
	}
	if len(reviews) > 0 {
		addresses.Review = reviews[0].ServiceAddress
	}

	return &ProductAggregate{
		ProductID:        product.ProductID,
		Name:             product.Name,
		Weight:           product.Weight,
		Recommendations:  recSummaries,
		Reviews:          reviewSummaries,
		ServiceAddresses: addresses,
	}
}

// Product returns the product part of the aggregate
func (a *ProductAggregate) Product() *Product {
	return &Product{
		ProductID: a.ProductID,
		Name:      a.Name,
		Weight:    a.Weight,
	}
}

// RecommendationList expands the summaries into recommendations of this product
func (a *ProductAggregate) RecommendationList() []Recommendation {
	out := make([]Recommendation, 0, len(a.Recommendations))
	for _, s := range a.Recommendations {
		out = append(out, Recommendation{
			ProductID:        a.ProductID,
			RecommendationID: s.RecommendationID,
			Author:           s.Author,
			Rating:           s.Rate,
			Content:          s.Content,
		})
	}
	return out
}

// ReviewList expands the summaries into reviews of this product
func (a *ProductAggregate) ReviewList() []Review {
	out := make([]Review, 0, len(a.Reviews))
	for _, s := range a.Reviews {
		out = append(out, Review{
			ProductID: a.ProductID,
			ReviewID:  s.ReviewID,
			Author:    s.Author,
			Subject:   s.Subject,
			Content:   s.Content,
		})
	}
	return out
}
