package domain

import "time"

// AuditType tags an audit trail entry with the action that produced it.
type AuditType string

const (
	AuditRegister          AuditType = "REGISTER"
	AuditLogin             AuditType = "LOGIN"
	AuditCreateProduct     AuditType = "CREATE_PRODUCT"
	AuditUpdateProduct     AuditType = "UPDATE_PRODUCT"
	AuditDeleteProduct     AuditType = "DELETE_PRODUCT"
	AuditCreateOrder       AuditType = "CREATE_ORDER"
	AuditUpdateOrderStatus AuditType = "UPDATE_ORDER_STATUS"
)

// AuditEntry is one append-only audit trail record. The core only ever
// writes these; nothing reads them back.
type AuditEntry struct {
	ID          string    `json:"id"`
	Type        AuditType `json:"type"`
	UserID      string    `json:"userId"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}
