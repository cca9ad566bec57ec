package tshot

import (
	"caveconv/top/tangle"
)

// Invert derives the same measurement taken from the other end.
func (s Shot) Invert() Shot {
	inverted := s
	inverted.From = s.To
	inverted.To = s.From
	inverted.Azimuth = tangle.Reverse(s.Azimuth)
	inverted.Inclination = -s.Inclination
	return inverted
}

// IsFlipped reports flag bit 0. The flag is kept as data only; it does not
// change azimuth or inclination.
func (s Shot) IsFlipped() bool {
	return s.Flags&FlagFlipped != 0
}

func (s Shot) HasComment() bool {
	return s.Comment != nil
}

// CommentText returns the comment, or "" when absent.
func (s Shot) CommentText() string {
	if s.Comment == nil {
		return ""
	}
	return *s.Comment
}

func (s Shot) HasTrip() bool {
	return s.TripIndex >= 0
}
