package customer

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyName       = errors.New("customer name is required")
	ErrEmptyLastName   = errors.New("customer last name is required")
	ErrInvalidEmail    = errors.New("invalid customer email")
	ErrInvalidDocument = errors.New("document number must be positive")
)

type Customer struct {
	id        int64
	name      string
	lastName  string
	email     string
	address   string
	phone     string
	document  int64
	createdAt time.Time
	updatedAt time.Time
}

func NewCustomer(name, lastName, email, address, phone string, document int64) (*Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	lastName = strings.TrimSpace(lastName)
	if lastName == "" {
		return nil, ErrEmptyLastName
	}
	email = strings.TrimSpace(email)
	if email != "" && !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}
	if document <= 0 {
		return nil, ErrInvalidDocument
	}

	return &Customer{
		name:     name,
		lastName: lastName,
		email:    email,
		address:  strings.TrimSpace(address),
		phone:    strings.TrimSpace(phone),
		document: document,
	}, nil
}

func ReconstructCustomer(id int64, name, lastName, email, address, phone string, document int64, createdAt, updatedAt time.Time) *Customer {
	return &Customer{
		id:        id,
		name:      name,
		lastName:  lastName,
		email:     email,
		address:   address,
		phone:     phone,
		document:  document,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (c *Customer) ID() int64            { return c.id }
func (c *Customer) Name() string         { return c.name }
func (c *Customer) LastName() string     { return c.lastName }
func (c *Customer) Email() string        { return c.email }
func (c *Customer) Address() string      { return c.address }
func (c *Customer) Phone() string        { return c.phone }
func (c *Customer) Document() int64      { return c.document }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }
func (c *Customer) UpdatedAt() time.Time { return c.updatedAt }
