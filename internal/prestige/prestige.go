// Package prestige implements the reset-for-permanent-bonus rules. Every
// function is a pure transformation of a state; the garden engine decides
// when to swap the result in.
package prestige

import (
	"math"
	"time"

	"github.com/osse101/GardenIdle_Go/internal/domain"
)

// Threshold is the primary currency balance required to prestige
const Threshold int64 = 1_000_000

// CanPrestige reports whether the current balance reaches the threshold
func CanPrestige(s *domain.State) bool {
	return s != nil && s.Currency >= Threshold
}

// Gain returns the prestige points a prestige would award now.
// Formula: floor(sqrt(currency / threshold)), at least 1 when eligible.
func Gain(s *domain.State) int64 {
	if !CanPrestige(s) {
		return 0
	}
	gain := int64(math.Floor(math.Sqrt(float64(s.Currency) / float64(Threshold))))
	if gain < 1 {
		return 1
	}
	return gain
}

// Perform builds the post-prestige state. The input is never modified; when
// the state is not eligible it returns (nil, 0, false).
func Perform(s *domain.State, now time.Time) (*domain.State, int64, bool) {
	if !CanPrestige(s) {
		return nil, 0, false
	}
	gain := Gain(s)

	next := Carry(s, now)
	next.PrestigePoints += gain
	next.PrestigeCount++
	return next, gain, true
}

// Carry returns a freshly seeded state that keeps only the prestige fields
func Carry(s *domain.State, now time.Time) *domain.State {
	next := domain.NewState(now)
	if s != nil {
		next.PrestigeCount = s.PrestigeCount
		next.PrestigePoints = s.PrestigePoints
	}
	return next
}
