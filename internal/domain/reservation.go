package domain

import "github.com/shopspring/decimal"

type DeliveryStatus string

const (
	DeliveryStatusPending   DeliveryStatus = "Pending"
	DeliveryStatusDelivered DeliveryStatus = "Delivered"
)

// ContactMissing é exibido quando o item está reservado mas a reserva sumiu
const ContactMissing = "Contact missing"

type Reservation struct {
	ID             string         `json:"id"`
	ItemID         string         `json:"item_id"`
	ItemName       string         `json:"item_name"`
	ReservedBy     string         `json:"reserved_by"`
	Phone          string         `json:"phone,omitempty"`
	Address        string         `json:"address,omitempty"`
	DeliveryDate   *int64         `json:"delivery_date"`
	Notes          string         `json:"notes,omitempty"`
	DeliveryStatus DeliveryStatus `json:"delivery_status"`
	DeliveredAt    *int64         `json:"delivered_at,omitempty"`
	Timestamp      int64          `json:"timestamp"`
}

type ReserveItemRequest struct {
	ReservedBy   string `json:"reserved_by"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	DeliveryDate *int64 `json:"delivery_date"`
	Notes        string `json:"notes"`
}

// ReservedItem junta o item reservado com os dados da sua reserva
type ReservedItem struct {
	ID                   string          `json:"id"`
	Name                 string          `json:"name"`
	Price                decimal.Decimal `json:"price"`
	Category             string          `json:"category"`
	Condition            string          `json:"condition"`
	ReservedBy           string          `json:"reserved_by"`
	ReservationTimestamp int64           `json:"reservation_timestamp"`
	ReservationID        string          `json:"reservation_id,omitempty"`
}
