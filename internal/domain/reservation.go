package domain

// Reservation is a table reservation request. It is not persisted; the
// restaurant is notified by email and follows up by phone.
type Reservation struct {
	Name     string
	Phone    string
	Date     string
	Time     string
	Guests   string
	Requests string
}
