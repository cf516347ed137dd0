package review

import (
	"strings"
	"unicode/utf8"
)

const (
	MinRating        = 1
	MaxRating        = 5
	MaxTitleLength   = 100
	MaxCommentLength = 1000
	MaxImages        = 5
)

type Rating struct {
	value int
}

func NewRating(v int) (Rating, error) {
	if v < MinRating || v > MaxRating {
		return Rating{}, ErrInvalidRating
	}
	return Rating{value: v}, nil
}

func (r Rating) Value() int { return r.value }

type Title struct {
	text string
}

func NewTitle(s string) (Title, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Title{}, ErrEmptyTitle
	}
	if utf8.RuneCountInString(t) > MaxTitleLength {
		return Title{}, ErrTitleTooLong
	}
	return Title{text: t}, nil
}

func (t Title) String() string { return t.text }

type Comment struct {
	text string
}

func NewComment(s string) (Comment, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Comment{}, ErrEmptyComment
	}
	if utf8.RuneCountInString(t) > MaxCommentLength {
		return Comment{}, ErrCommentTooLong
	}
	return Comment{text: t}, nil
}

func (c Comment) String() string { return c.text }

// normalizeImages drops blank entries and caps the gallery at MaxImages.
func normalizeImages(images []string) ([]string, error) {
	out := make([]string, 0, len(images))
	for _, img := range images {
		if img = strings.TrimSpace(img); img != "" {
			out = append(out, img)
		}
	}
	if len(out) > MaxImages {
		return nil, ErrTooManyImages
	}
	return out, nil
}
