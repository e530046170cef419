package models

// Ticket is the stored ticket record. StartingPoint and EndingPoint are
// IATA 3-letter airport codes, DepartureDate is a YYYY-MM-DD string.
type Ticket struct {
	StartingPoint string `bson:"starting_point" json:"starting_point"`
	EndingPoint   string `bson:"ending_point" json:"ending_point"`
	DepartureDate string `bson:"departure_date" json:"departure_date"`
	JetType       string `bson:"jet_type" json:"jet_type"`
	OwnerLoginID  string `bson:"owner_login_id" json:"owner_login_id"`
}
