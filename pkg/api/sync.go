// Package api содержит wire-типы протокола синхронизации.
// JSON-имена полей зафиксированы протоколом сервера и не меняются.
package api

// UserRow — авторитетная строка пользователя на проводе.
type UserRow struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CarRow — авторитетная строка машины на проводе.
type CarRow struct {
	UUID  string `json:"uuid"`
	Model string `json:"model"`
	Value string `json:"value"`
}

// OwnershipRow — ребро владения на проводе.
type OwnershipRow struct {
	User  string `json:"user"`
	CarID string `json:"carId"`
}

// EntityRows группирует строки по видам сущностей.
// Имена ключей повторяют имена таблиц на сервере.
type EntityRows struct {
	Users      []UserRow      `json:"Users"`
	Cars       []CarRow       `json:"Cars"`
	UserOwnCar []OwnershipRow `json:"UserOwnCar"`
}

// SyncRequest — тело POST /synchronize: локальный change-set,
// разбитый на новые, изменённые и удалённые строки.
type SyncRequest struct {
	News     EntityRows `json:"news"`
	Modified EntityRows `json:"modified"`
	Deleted  EntityRows `json:"deleted"`
}

// ConflictRow описывает ключ, на котором сервер обнаружил коллизию
// одновременных правок. Клиент записывает такие ключи в conflict-таблицы
// для ручного разрешения: автоматического разрешения нет.
type ConflictRow struct {
	Kind string `json:"kind"`            // "Users", "Cars" или "UserOwnCar"
	Key  string `json:"key"`             // username либо uuid машины
	User string `json:"user,omitempty"`  // для UserOwnCar: владелец
	Car  string `json:"carId,omitempty"` // для UserOwnCar: машина
}

// SyncResponse — ответ сервера: полное авторитетное состояние каждой
// таблицы после мержа (не дельта) плюс список конфликтов.
type SyncResponse struct {
	Updated   EntityRows    `json:"updated"`
	Conflicts []ConflictRow `json:"conflicts"`
}
