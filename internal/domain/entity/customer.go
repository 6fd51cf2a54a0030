package entity

import "time"

// Customer cliente registrado (las órdenes de venta también aceptan cliente libre).
type Customer struct {
	ID        string
	Name      string
	Phone     string
	Email     string
	Address   string
	CreatedAt time.Time
}
