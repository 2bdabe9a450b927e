package review

type CreateReviewRequest struct {
	BookingID int64  `json:"bookingId" binding:"required"`
	Rating    int    `json:"rating" binding:"required,gte=1,lte=5"`
	Comment   string `json:"comment"`
}
