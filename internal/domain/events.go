package domain

import "time"

// Event types
const (
	EventTypeTransactionRecorded = "ledger.transaction.recorded"
	EventTypeTransactionUpdated  = "ledger.transaction.updated"
	EventTypeTransactionDeleted  = "ledger.transaction.deleted"
	EventTypeOrderPlaced         = "order.placed"
	EventTypeOrderCancelled      = "order.cancelled"
	EventTypePurchaseReceived    = "purchase.received"
)

// TransactionEvent is published after a ledger transaction mutation commits.
type TransactionEvent struct {
	EventType     string `json:"event_type"`
	LedgerID      string `json:"ledger_id"`
	TransactionID string `json:"transaction_id"`
	Type          string `json:"type,omitempty"`
	Amount        string `json:"amount,omitempty"`
	TotalBalance  string `json:"total_balance"`
	OccurredAt    string `json:"occurred_at"`
}

// OrderEvent is published after an order is placed or cancelled.
type OrderEvent struct {
	EventType   string `json:"event_type"`
	OrderID     string `json:"order_id"`
	CustomerID  string `json:"customer_id"`
	TotalAmount string `json:"total_amount"`
	OccurredAt  string `json:"occurred_at"`
}

// PurchaseEvent is published after a purchase is received.
type PurchaseEvent struct {
	EventType   string `json:"event_type"`
	PurchaseID  string `json:"purchase_id"`
	SupplierID  string `json:"supplier_id"`
	TotalAmount string `json:"total_amount"`
	OccurredAt  string `json:"occurred_at"`
}

// AuditEntry records who mutated a ledger transaction and how.
type AuditEntry struct {
	ID            string
	LedgerID      string
	TransactionID string
	Action        string // transaction.update or transaction.delete
	Actor         string
	CreatedAt     time.Time
}

// Audit actions
const (
	AuditActionTransactionUpdate = "transaction.update"
	AuditActionTransactionDelete = "transaction.delete"
)
