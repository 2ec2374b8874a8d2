package models

import "time"

type User struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	DNI       string    `json:"dni"`
	Phone     Phone     `gorm:"embedded;embeddedPrefix:phone_" json:"phone"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
}

// Phone is split into area code and local number, both digit strings.
type Phone struct {
	AreaCode string `json:"area_code"`
	Number   string `json:"number"`
}
