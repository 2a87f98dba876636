package models

// User представляет пользователя рынка. Ключом служит username.
// Password хранится как есть: настоящая аутентификация находится
// вне границ этой системы.
type User struct {
	Username   string `json:"username"`   // уникальный username (primary key)
	Password   string `json:"password"`   // непрозрачная строка, не интерпретируется
	Active     bool   `json:"active"`     // false = tombstone (soft delete)
	ModifiedAt int64  `json:"modifiedAt"` // epoch millis последнего изменения
}

// TrackedUser is an authoritative user row joined with its shadow flags.
// This is the unit the change-set extractor and the sync engine work on.
type TrackedUser struct {
	User
	Flags ShadowFlags
}
