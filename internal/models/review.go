package models

type Review struct {
	ID         string `json:"id"`
	ProductID  int    `json:"product_id"`
	UserID     string `json:"user_id"`
	UserName   string `json:"user_name"`
	UserAvatar string `json:"user_avatar,omitempty"`
	Rating     int    `json:"rating"`
	Title      string `json:"title"`
	Comment    string `json:"comment"`
	Date       string `json:"date"`
	EventType  string `json:"event_type,omitempty"`
	Helpful    int    `json:"helpful"`
	Verified   bool   `json:"verified"`
}

type RatingBucket struct {
	Star       int     `json:"star"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type ReviewSummary struct {
	ProductID     int            `json:"product_id"`
	Reviews       []Review       `json:"reviews"`
	AverageRating float64        `json:"average_rating"`
	Distribution  []RatingBucket `json:"distribution"`
}

type CreateReviewRequest struct {
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Title     string `json:"title" validate:"required,max=120"`
	Comment   string `json:"comment" validate:"required,max=2000"`
	EventType string `json:"event_type" validate:"omitempty,max=50"`
}
