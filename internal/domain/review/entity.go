package review

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	id         uuid.UUID
	productID  uuid.UUID
	userID     uuid.UUID
	rating     Rating
	title      Title
	comment    Comment
	images     []string
	isVerified bool
	isApproved bool
	helpful    int32
	notHelpful int32
	createdAt  time.Time
	updatedAt  time.Time
}

// NewReview starts a review approved and unverified, matching how the
// storefront publishes customer reviews without moderation.
func NewReview(productID, userID uuid.UUID, ratingValue int, titleText, commentText string, images []string, now time.Time) (*Review, error) {
	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}
	title, err := NewTitle(titleText)
	if err != nil {
		return nil, err
	}
	comment, err := NewComment(commentText)
	if err != nil {
		return nil, err
	}
	imgs, err := normalizeImages(images)
	if err != nil {
		return nil, err
	}

	return &Review{
		id:         uuid.New(),
		productID:  productID,
		userID:     userID,
		rating:     rating,
		title:      title,
		comment:    comment,
		images:     imgs,
		isApproved: true,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func (r *Review) ID() uuid.UUID        { return r.id }
func (r *Review) ProductID() uuid.UUID { return r.productID }
func (r *Review) UserID() uuid.UUID    { return r.userID }
func (r *Review) Rating() Rating       { return r.rating }
func (r *Review) Title() Title         { return r.title }
func (r *Review) Comment() Comment     { return r.comment }
func (r *Review) Images() []string     { return r.images }
func (r *Review) IsVerified() bool     { return r.isVerified }
func (r *Review) IsApproved() bool     { return r.isApproved }
func (r *Review) Helpful() int32       { return r.helpful }
func (r *Review) NotHelpful() int32    { return r.notHelpful }
func (r *Review) CreatedAt() time.Time { return r.createdAt }
func (r *Review) UpdatedAt() time.Time { return r.updatedAt }
