package model

import "time"

type Message struct {
	ID        int64     `json:"id"`
	Fullname  string    `json:"fullname"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Wish      string    `json:"wish"`
	Read      bool      `json:"read"`
	Favorite  bool      `json:"favorite"`
	CreatedAt time.Time `json:"created_at"`
}
