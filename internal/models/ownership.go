package models

// Ownership — ребро many-to-many между User и Car.
// Составной ключ (Username, CarID), полезной нагрузки нет.
type Ownership struct {
	Username   string `json:"user"`       // владелец (FK на User логически)
	CarID      string `json:"carId"`      // машина (FK на Car логически)
	Active     bool   `json:"active"`     // false = tombstone (soft delete)
	ModifiedAt int64  `json:"modifiedAt"` // epoch millis последнего изменения
}

// TrackedOwnership is an ownership edge joined with its shadow flags.
type TrackedOwnership struct {
	Ownership
	Flags ShadowFlags
}
