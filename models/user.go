package models

// User is the stored user record. The hashed password never leaves the
// server. Mileage is only ever changed through the mileage ledger.
type User struct {
	LoginID        string `bson:"login_id" json:"login_id"`
	Email          string `bson:"email" json:"email"`
	BirthDate      string `bson:"birth_date" json:"birth_date"`
	Sex            string `bson:"sex" json:"sex"`
	FullName       string `bson:"full_name" json:"full_name"`
	HashedPassword string `bson:"hashed_password" json:"-"`
	Mileage        int    `bson:"mileage" json:"mileage"`
}

// Token is the response body of POST /token.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
