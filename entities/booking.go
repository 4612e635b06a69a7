package entities

type BookingField string

const (
	BookingID BookingField = "_id"
)
