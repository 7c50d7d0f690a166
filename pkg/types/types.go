package types

// Role is the access role carried in the verified token's claims.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleClient Role = "client"
)

// TokenClaims is the subset of identity-provider claims the API cares about.
type TokenClaims struct {
	UserID   string `json:"user_id"`
	ClientID string `json:"client_id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`
}

type PaymentRequestStatus string

const (
	PaymentRequestStatusPending  PaymentRequestStatus = "pending"
	PaymentRequestStatusApproved PaymentRequestStatus = "approved"
	PaymentRequestStatusRejected PaymentRequestStatus = "rejected"
)

// Terminal reports whether no further transition is allowed.
func (s PaymentRequestStatus) Terminal() bool {
	return s == PaymentRequestStatusApproved || s == PaymentRequestStatusRejected
}

type PaymentType string

const (
	PaymentTypeMembership PaymentType = "membership"
	PaymentTypePrinting   PaymentType = "printing"
	PaymentTypeCombined   PaymentType = "combined"
)

type ClientStatus string

const (
	ClientStatusActive    ClientStatus = "active"
	ClientStatusInactive  ClientStatus = "inactive"
	ClientStatusSuspended ClientStatus = "suspended"
)

func (s ClientStatus) Valid() bool {
	switch s {
	case ClientStatusActive, ClientStatusInactive, ClientStatusSuspended:
		return true
	}
	return false
}

type PrintRecordStatus string

const (
	PrintRecordStatusPending PrintRecordStatus = "pending"
	PrintRecordStatusPaid    PrintRecordStatus = "paid"
)

type ReportType string

const (
	ReportTypeYerba  ReportType = "yerba"
	ReportTypeBroken ReportType = "broken"
	ReportTypeOther  ReportType = "other"
)

func (t ReportType) Valid() bool {
	switch t {
	case ReportTypeYerba, ReportTypeBroken, ReportTypeOther:
		return true
	}
	return false
}

type ReportStatus string

const (
	ReportStatusPending    ReportStatus = "pending"
	ReportStatusInProgress ReportStatus = "in_progress"
	ReportStatusResolved   ReportStatus = "resolved"
)

func (s ReportStatus) Valid() bool {
	switch s {
	case ReportStatusPending, ReportStatusInProgress, ReportStatusResolved:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type AnnouncementType string

const (
	AnnouncementTypeInfo        AnnouncementType = "info"
	AnnouncementTypeMaintenance AnnouncementType = "maintenance"
	AnnouncementTypeEvent       AnnouncementType = "event"
)

func (t AnnouncementType) Valid() bool {
	switch t {
	case AnnouncementTypeInfo, AnnouncementTypeMaintenance, AnnouncementTypeEvent:
		return true
	}
	return false
}
