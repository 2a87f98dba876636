package models

// Car представляет машину на рынке. Ключ (UUID) генерируется на клиенте
// при создании и больше никогда не меняется.
type Car struct {
	UUID       string `json:"uuid"`       // primary key, клиентский UUID v4
	Model      string `json:"model"`      // модель машины
	Value      int64  `json:"value"`      // цена; на проводе сериализуется строкой
	Active     bool   `json:"active"`     // false = tombstone (soft delete)
	ModifiedAt int64  `json:"modifiedAt"` // epoch millis последнего изменения
}

// TrackedCar is an authoritative car row joined with its shadow flags.
type TrackedCar struct {
	Car
	Flags ShadowFlags
}
