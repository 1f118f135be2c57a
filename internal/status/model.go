package status

// Status is a lifecycle state for an event booking.
type Status struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

func (Status) TableName() string {
	return "status"
}

// Catalog names, in French as shown to users.
const (
	NameValidated = "Validé"
	NameRejected  = "Refusé"
	NameCancelled = "Annulé"
	NamePending   = "En cours"
)

// Well-known IDs used when the catalog cannot be reached.
const (
	FallbackValidatedID uint = 1
	FallbackPendingID   uint = 4
)
