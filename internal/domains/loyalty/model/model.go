package model

import "time"

const (
	EventPointsAwarded = "points_awarded"

	HeaderEvent = "event"
)

// PointsAwarded is published once per confirmed reservation of a signed-in member.
type PointsAwarded struct {
	UserID        string    `json:"user_id"`
	ReservationID string    `json:"reservation_id"`
	MenuMode      string    `json:"menu_mode"`
	BasePoints    int       `json:"base_points"`
	BonusPoints   int       `json:"bonus_points"`
	Points        int       `json:"points"`
	AwardedAt     time.Time `json:"awarded_at"`
}

// Points is the award for one reservation: the base amount, plus the bonus when the
// guest pre-ordered anything.
func Points(base, bonus int, preOrdered bool) (int, int) {
	if !preOrdered {
		return base, 0
	}

	return base + bonus, bonus
}
