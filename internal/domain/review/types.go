package review

import (
	"fmt"

	"furnicraft/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidRating   = errs.Kinded(errs.ErrInvalidArgument, "Rating must be between 1 and 5")
	ErrEmptyTitle      = errs.Kinded(errs.ErrInvalidArgument, "Review title is required")
	ErrTitleTooLong    = errs.Kinded(errs.ErrInvalidArgument, fmt.Sprintf("Review title cannot exceed %d characters", MaxTitleLength))
	ErrEmptyComment    = errs.Kinded(errs.ErrInvalidArgument, "Review comment is required")
	ErrCommentTooLong  = errs.Kinded(errs.ErrInvalidArgument, fmt.Sprintf("Review comment cannot exceed %d characters", MaxCommentLength))
	ErrTooManyImages   = errs.Kinded(errs.ErrInvalidArgument, fmt.Sprintf("A review can carry at most %d images", MaxImages))
	ErrAlreadyReviewed = errs.Kinded(errs.ErrInvalidArgument, "You have already reviewed this product")
	ErrProductNotFound = errs.Kinded(errs.ErrNotFound, "Product not found")
)

// Stats summarises the approved reviews of one product. Counts is indexed by
// star value; index 0 is unused.
type Stats struct {
	Counts [MaxRating + 1]int64
}

func (s *Stats) Add(rating int, n int64) {
	if rating >= MinRating && rating <= MaxRating {
		s.Counts[rating] += n
	}
}

func (s Stats) Total() int64 {
	var total int64
	for r := MinRating; r <= MaxRating; r++ {
		total += s.Counts[r]
	}
	return total
}

// Average is the mean star value rounded to two places, zero without reviews.
func (s Stats) Average() decimal.Decimal {
	total := s.Total()
	if total == 0 {
		return decimal.Zero
	}
	var sum int64
	for r := MinRating; r <= MaxRating; r++ {
		sum += int64(r) * s.Counts[r]
	}
	return decimal.NewFromInt(sum).DivRound(decimal.NewFromInt(total), 2)
}
