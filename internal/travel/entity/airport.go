package entity

type Airport struct {
	Code string
	Name string
	City string
}
