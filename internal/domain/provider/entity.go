package provider

import "time"

type Provider struct {
	ID           int64
	UserID       int64
	Name         string
	Skills       []string
	Rating       float64
	Location     string
	ServiceFocus string
	CreatedAt    time.Time
}
