package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// WebhookEventType names a processor notification.
type WebhookEventType string

const (
	EventInvoiceCreated         WebhookEventType = "InvoiceCreated"
	EventInvoiceReceivedPayment WebhookEventType = "InvoiceReceivedPayment"
	EventInvoiceProcessing      WebhookEventType = "InvoiceProcessing"
	EventInvoicePaymentSettled  WebhookEventType = "InvoicePaymentSettled"
	EventInvoiceSettled         WebhookEventType = "InvoiceSettled"
	EventInvoiceExpired         WebhookEventType = "InvoiceExpired"
	EventInvoiceInvalid         WebhookEventType = "InvoiceInvalid"
)

// InvoiceStatus returns the invoice status implied by the event, if any.
func (t WebhookEventType) InvoiceStatus() (InvoiceStatus, bool) {
	switch t {
	case EventInvoiceCreated:
		return InvoiceStatusNew, true
	case EventInvoiceReceivedPayment, EventInvoiceProcessing, EventInvoicePaymentSettled:
		return InvoiceStatusProcessing, true
	case EventInvoiceSettled:
		return InvoiceStatusSettled, true
	case EventInvoiceExpired:
		return InvoiceStatusExpired, true
	case EventInvoiceInvalid:
		return InvoiceStatusInvalid, true
	}
	return "", false
}

// WebhookEvent is a verified processor notification.
type WebhookEvent struct {
	DeliveryID         string           `json:"deliveryId"`
	WebhookID          string           `json:"webhookId"`
	OriginalDeliveryID string           `json:"originalDeliveryId"`
	IsRedelivery       bool             `json:"isRedelivery"`
	Type               WebhookEventType `json:"type"`
	Timestamp          int64            `json:"timestamp"`
	StoreID            string           `json:"storeId"`
	InvoiceID          string           `json:"invoiceId"`
	Metadata           json.RawMessage  `json:"metadata,omitempty"`
}

// DedupKey identifies the logical delivery. Redeliveries share the
// original delivery id. It is empty when the event carries no delivery id.
func (e *WebhookEvent) DedupKey() string {
	switch {
	case e.OriginalDeliveryID != "":
		return e.StoreID + ":" + e.OriginalDeliveryID
	case e.DeliveryID != "":
		return e.StoreID + ":" + e.DeliveryID
	}
	return ""
}

// WebhookOutcome is what happened to a verified delivery.
type WebhookOutcome string

const (
	WebhookOutcomeProcessed WebhookOutcome = "PROCESSED"
	WebhookOutcomeDuplicate WebhookOutcome = "DUPLICATE"
	WebhookOutcomeIgnored   WebhookOutcome = "IGNORED"
	WebhookOutcomeFailed    WebhookOutcome = "FAILED"
)

// WebhookDeliveryLog records each verified delivery and its outcome.
type WebhookDeliveryLog struct {
	ID         uuid.UUID        `json:"id"`
	DeliveryID string           `json:"delivery_id"`
	StoreID    string           `json:"store_id"`
	InvoiceID  string           `json:"invoice_id"`
	EventType  WebhookEventType `json:"event_type"`
	Redelivery bool             `json:"redelivery"`
	Outcome    WebhookOutcome   `json:"outcome"`
	LastError  *string          `json:"last_error"`
	CreatedAt  time.Time        `json:"created_at"`
}
