package validations

// Request structs for the form-encoded endpoints. Gin's binding tags do the
// field-level validation; the booking policy lives in ticket_validator.go.

type RegisterRequest struct {
	LoginID   string `form:"login_id" binding:"required"`
	Email     string `form:"email" binding:"required,email"`
	BirthDate string `form:"birth_date" binding:"required"`
	Sex       string `form:"sex" binding:"required"`
	FullName  string `form:"full_name" binding:"required"`
	Password  string `form:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	LoginID  string `form:"login_id" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// TokenRequest follows the OAuth2 password-grant field names.
type TokenRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type CreateTicketRequest struct {
	StartingPoint string `form:"starting_point" binding:"required,len=3"` // IATA code
	EndingPoint   string `form:"ending_point" binding:"required,len=3"`
	DepartureDate string `form:"departure_date" binding:"required,datetime=2006-01-02"`
	JetType       string `form:"jet_type" binding:"required"`
}

type CancelTicketRequest struct {
	CancelDate string `form:"cancel_date" binding:"required,datetime=2006-01-02"`
}
