package booking

import "time"

type Booking struct {
	ID          string          `json:"id"`
	GuestID     string          `json:"guestId"`
	ServiceID   string          `json:"serviceId"`
	SlotStart   time.Time       `json:"slotStart"`
	SlotEnd     time.Time       `json:"slotEnd"`
	PeopleCount int             `json:"peopleCount"`
	AccessToken string          `json:"accessToken"`
	CreatedAt   time.Time       `json:"createdAt"`
	Service     *ServiceSummary `json:"service,omitempty"`
}

// ServiceSummary is the part of a service shown next to a booking.
type ServiceSummary struct {
	Title     string   `json:"title"`
	Location  string   `json:"location"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	ImageURL  *string  `json:"imageUrl"`
}

type Slot struct {
	ID        string    `json:"id"`
	ServiceID string    `json:"serviceId"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Time      string    `json:"time"`
}

// Label is the slot's start as HH:MM in loc.
func (s Slot) Label(loc *time.Location) string {
	return s.Start.In(loc).Format("15:04")
}

type ReserveRequest struct {
	ServiceID string    `json:"serviceId"`
	Hour      string    `json:"hour"`
	Day       time.Time `json:"day"`
	People    string    `json:"people"`
}
