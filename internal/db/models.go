package db

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Organization struct {
	ID        uuid.UUID
	Name      string
	Plan      string
	Currency  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Customer struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	Name           string
	Email          pgtype.Text
	Phone          pgtype.Text
	Address        pgtype.Text
	TaxNumber      pgtype.Text
	Archived       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Supplier struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	Name           string
	Email          pgtype.Text
	Phone          pgtype.Text
	Address        pgtype.Text
	TaxNumber      pgtype.Text
	Archived       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Farm struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	Name           string
	Location       pgtype.Text
	AreaHectares   pgtype.Float8
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Parcel struct {
	ID           uuid.UUID
	FarmID       uuid.UUID
	Name         string
	AreaHectares pgtype.Float8
	CropType     pgtype.Text
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Tax struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	Name           string
	Rate           float64
	TaxType        string
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type DocumentSequence struct {
	OrganizationID uuid.UUID
	DocumentType   string
	Year           int32
	NextNumber     int32
}

type Quote struct {
	ID                 uuid.UUID
	OrganizationID     uuid.UUID
	CustomerID         uuid.UUID
	QuoteNumber        string
	Status             string
	IssueDate          pgtype.Date
	ExpiryDate         pgtype.Date
	Subtotal           float64
	TaxAmount          float64
	Total              float64
	Notes              pgtype.Text
	ConvertedToOrderID pgtype.UUID
	SentAt             pgtype.Timestamptz
	AcceptedAt         pgtype.Timestamptz
	Version            int32
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type QuoteItem struct {
	ID          uuid.UUID
	QuoteID     uuid.UUID
	Description string
	Quantity    float64
	UnitPrice   float64
	TaxID       pgtype.UUID
	LineTotal   float64
	CreatedAt   time.Time
}

type SalesOrder struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	CustomerID     uuid.UUID
	OrderNumber    string
	Status         string
	OrderDate      pgtype.Date
	DeliveryDate   pgtype.Date
	Subtotal       float64
	TaxAmount      float64
	Total          float64
	InvoicedTotal  float64
	Notes          pgtype.Text
	QuoteID        pgtype.UUID
	Version        int32
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type SalesOrderItem struct {
	ID               uuid.UUID
	SalesOrderID     uuid.UUID
	Description      string
	Quantity         float64
	UnitPrice        float64
	TaxID            pgtype.UUID
	LineTotal        float64
	InvoicedQuantity float64
	CreatedAt        time.Time
}

type PurchaseOrder struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	SupplierID     uuid.UUID
	OrderNumber    string
	Status         string
	OrderDate      pgtype.Date
	ExpectedDate   pgtype.Date
	Subtotal       float64
	TaxAmount      float64
	Total          float64
	BilledTotal    float64
	Notes          pgtype.Text
	Version        int32
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type PurchaseOrderItem struct {
	ID              uuid.UUID
	PurchaseOrderID uuid.UUID
	Description     string
	Quantity        float64
	UnitPrice       float64
	TaxID           pgtype.UUID
	LineTotal       float64
	BilledQuantity  float64
	CreatedAt       time.Time
}

// Invoice covers both directions: invoice_type "sales" rows bill a customer,
// "purchase" rows record a supplier bill.
type Invoice struct {
	ID              uuid.UUID
	OrganizationID  uuid.UUID
	InvoiceType     string
	CustomerID      pgtype.UUID
	SupplierID      pgtype.UUID
	InvoiceNumber   string
	Status          string
	IssueDate       pgtype.Date
	DueDate         pgtype.Date
	Subtotal        float64
	TaxAmount       float64
	Total           float64
	AmountPaid      float64
	Notes           pgtype.Text
	SalesOrderID    pgtype.UUID
	PurchaseOrderID pgtype.UUID
	Version         int32
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type InvoiceItem struct {
	ID           uuid.UUID
	InvoiceID    uuid.UUID
	Description  string
	Quantity     float64
	Rate         float64
	TaxID        pgtype.UUID
	LineTotal    float64
	SourceItemID pgtype.UUID
	CreatedAt    time.Time
}

type Payment struct {
	ID              uuid.UUID
	OrganizationID  uuid.UUID
	PaymentType     string
	CustomerID      pgtype.UUID
	SupplierID      pgtype.UUID
	PaymentDate     pgtype.Date
	Amount          float64
	AllocatedAmount float64
	Method          pgtype.Text
	Reference       pgtype.Text
	Status          string
	Version         int32
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type PaymentAllocation struct {
	ID        uuid.UUID
	PaymentID uuid.UUID
	InvoiceID uuid.UUID
	Amount    float64
	CreatedAt time.Time
}
