package models

import "time"

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,max=100"`
	Icon string `json:"icon" validate:"required"`
}

type CreateEventRequest struct {
	Name        string    `json:"name" validate:"required,max=200"`
	DateStart   time.Time `json:"dateStart" validate:"required"`
	DateEnd     time.Time `json:"dateEnd" validate:"required,gtefield=DateStart"`
	City        string    `json:"city" validate:"required"`
	Address     string    `json:"address" validate:"required"`
	Postcode    string    `json:"postcode" validate:"required"`
	Country     string    `json:"country" validate:"required"`
	CategoryID  string    `json:"categoryId" validate:"required,uuid"`
	Price       string    `json:"price" validate:"required,price"`
	Description string    `json:"description" validate:"required"`
	UserID      string    `json:"userId" validate:"required,uuid"`
	Capacity    int       `json:"capacity" validate:"required,gt=0"`
	LogoURL     string    `json:"logoUrl" validate:"required,url"`
	Information string    `json:"information"`
}

type FetchEventsRequest struct {
	Name     string `json:"name" validate:"max=200"`
	City     string `json:"city" validate:"max=200"`
	Category string `json:"category" validate:"max=100"`
	Page     int    `json:"page" validate:"gte=1"`
	Limit    int    `json:"limit" validate:"gte=1,lte=100"`
}

type CreateUserRequest struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	Surname   string `json:"surname" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email"`
}

type CheckoutRequest struct {
	EventID string `json:"eventId" validate:"required,uuid"`
	Tickets int    `json:"tickets" validate:"required,gt=0,lte=20"`
}

// AuthResponse is returned on signup.
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

type EventList struct {
	Events []Event `json:"events"`
	Count  int64   `json:"count"`
}
