package model

import (
	"bytes"
	"strconv"
	"time"
)

// ID identifies a user or product record. Ids are derived from the creation
// timestamp in milliseconds, so two records created within the same
// millisecond collide; the dataset is small enough that this has never
// mattered in practice.
//
// The web client sends ids both as JSON numbers and as quoted strings, so
// unmarshalling accepts either form.
type ID int64

func NewID() ID { return ID(time.Now().UnixMilli()) }

func (id ID) String() string { return strconv.FormatInt(int64(id), 10) }

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return err
	}
	*id = ID(n)
	return nil
}

func ParseID(s string) (ID, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	return ID(n), err
}

const orderIDPrefix = "ORD-"

// NewOrderID builds an order id from a fixed prefix and the creation
// timestamp in milliseconds.
func NewOrderID() string {
	return orderIDPrefix + strconv.FormatInt(time.Now().UnixMilli(), 10)
}

const (
	RoleCustomer = "pelanggan"
	RoleAdmin    = "admin"
)

// DefaultCategory is the bucket a product lands in when created without one.
const DefaultCategory = "Umum"

type User struct {
	ID       ID     `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Avatar   string `json:"avatar"`
}

type Product struct {
	ID       ID     `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Stock    int    `json:"stock"`
	SKU      string `json:"sku"`
	Category string `json:"category"`
	ImageURL string `json:"image_url"`
	Sold     int    `json:"sold"`
}

type OrderStatus string

const (
	StatusPending OrderStatus = "Pending"
	StatusProses  OrderStatus = "Proses"
	StatusDikirim OrderStatus = "Dikirim"
	StatusSelesai OrderStatus = "Selesai"
	StatusBatal   OrderStatus = "Batal"
)

// Valid reports whether s is one of the known statuses. Transitions between
// valid statuses are unconstrained: any status may follow any other.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusProses, StatusDikirim, StatusSelesai, StatusBatal:
		return true
	}
	return false
}

// OrderItem is a point-in-time snapshot of a product at order time. Name and
// price are frozen here; deleting or repricing the product later does not
// touch existing orders.
type OrderItem struct {
	ProductID ID     `json:"id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
}

type Order struct {
	ID            string      `json:"id"`
	CustomerName  string      `json:"customer_name"`
	Address       string      `json:"address"`
	Courier       string      `json:"courier"`
	PaymentMethod string      `json:"payment_method"`
	Date          string      `json:"date"`
	Total         float64     `json:"total"`
	Status        OrderStatus `json:"status"`
	Items         []OrderItem `json:"items"`
}

// Document is the whole persisted state: three ordered collections in a
// single JSON file. Products and orders are newest-first because creation
// prepends.
type Document struct {
	Users    []User    `json:"users"`
	Products []Product `json:"products"`
	Orders   []Order   `json:"orders"`
}

func NewDocument() *Document {
	return &Document{
		Users:    []User{},
		Products: []Product{},
		Orders:   []Order{},
	}
}
