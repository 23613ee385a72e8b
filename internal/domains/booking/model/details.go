package model

import (
	"fmt"
	"slices"
	"time"

	"tavola/shared/constant"
	"tavola/shared/validator"
)

type Occasion string

const (
	OccasionNone        Occasion = ""
	OccasionBirthday    Occasion = "birthday"
	OccasionAnniversary Occasion = "anniversary"
	OccasionBusiness    Occasion = "business"
	OccasionDate        Occasion = "date"
	OccasionOther       Occasion = "other"
)

const (
	firstSlotMinutes = 11 * 60
	lastSlotMinutes  = 21*60 + 30
	slotStepMinutes  = 30
)

var timeSlots = buildTimeSlots()

func buildTimeSlots() []string {
	slots := []string{}

	for minutes := firstSlotMinutes; minutes <= lastSlotMinutes; minutes += slotStepMinutes {
		slots = append(slots, fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)) //nolint:mnd
	}

	return slots
}

// TimeSlots returns the bookable half-hour slots within service hours.
func TimeSlots() []string {
	return slices.Clone(timeSlots)
}

func IsTimeSlot(slot string) bool {
	return slices.Contains(timeSlots, slot)
}

type Contact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type Schedule struct {
	Date      string `json:"date"`
	TimeSlot  string `json:"time"`
	PartySize int    `json:"party_size"`
}

// Complete reports whether a table lookup can be made for this schedule.
func (s Schedule) Complete() bool {
	return s.Date != constant.Empty && IsTimeSlot(s.TimeSlot) && s.PartySize > 0
}

// SameSlot reports whether both schedules point to the same date and time.
func (s Schedule) SameSlot(other Schedule) bool {
	return s.Date == other.Date && s.TimeSlot == other.TimeSlot
}

type detailsInput struct {
	Name      string `json:"name"       validate:"required,max=120"`
	Email     string `json:"email"      validate:"required,email"`
	Phone     string `json:"phone"      validate:"required,max=32"`
	Date      string `json:"date"       validate:"required,day"`
	TimeSlot  string `json:"time"       validate:"required,halfhour"`
	PartySize int    `json:"party_size" validate:"required,min=1"`
	Occasion  string `json:"occasion"   validate:"omitempty,oneof=birthday anniversary business date other"`
}

// ValidateDetails returns per-field messages for the details step, or nil when every
// field is acceptable. today is the calendar day in the restaurant's timezone.
func ValidateDetails(contact Contact, schedule Schedule, occasion Occasion, today time.Time, maxPartySize int) map[string]string {
	input := detailsInput{
		Name:      contact.Name,
		Email:     contact.Email,
		Phone:     contact.Phone,
		Date:      schedule.Date,
		TimeSlot:  schedule.TimeSlot,
		PartySize: schedule.PartySize,
		Occasion:  string(occasion),
	}

	fields := validator.ValidateFields(&input)
	if fields == nil {
		fields = map[string]string{}
	}

	if _, invalid := fields["date"]; !invalid && schedule.Date < today.Format(constant.DayFormat) {
		fields["date"] = "date must not be in the past"
	}

	if _, invalid := fields["time"]; !invalid && !IsTimeSlot(schedule.TimeSlot) {
		fields["time"] = fmt.Sprintf("time must be between %s and %s", timeSlots[0], timeSlots[len(timeSlots)-1])
	}

	if _, invalid := fields["party_size"]; !invalid && maxPartySize > 0 && schedule.PartySize > maxPartySize {
		fields["party_size"] = fmt.Sprintf("party_size must be less than or equal to %d", maxPartySize)
	}

	if len(fields) == 0 {
		return nil
	}

	return fields
}
