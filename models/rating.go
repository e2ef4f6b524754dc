package models

import (
	"errors"
	"strconv"
	"strings"
)

// Rating is the closed numeric review grade understood by the server.
type Rating int

const (
	RatingAgain Rating = 1
	RatingHard  Rating = 2
	RatingGood  Rating = 3
	RatingEasy  Rating = 4
)

// ErrInvalidRating is returned by NormalizeRating for any value outside the
// closed enum 1..4 and its symbolic aliases.
var ErrInvalidRating = errors.New("invalid rating value")

// NormalizeRating maps a stored or incoming rating value to the numeric
// enum. Accepted inputs are the numeric codes "1".."4" and the
// case-insensitive labels AGAIN, HARD, GOOD, EASY. Anything else is
// rejected rather than coerced.
func NormalizeRating(v string) (Rating, error) {
	s := strings.ToUpper(strings.TrimSpace(v))
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > 4 {
			return 0, ErrInvalidRating
		}
		return Rating(n), nil
	}

	switch s {
	case "AGAIN":
		return RatingAgain, nil
	case "HARD":
		return RatingHard, nil
	case "GOOD":
		return RatingGood, nil
	case "EASY":
		return RatingEasy, nil
	default:
		return 0, ErrInvalidRating
	}
}
