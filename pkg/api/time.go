package api

// TimeResponse — ответ GET /getDateTimeUTC. ServerTime — указатель,
// чтобы отличать отсутствующее поле от нулевого значения: ответ без
// serverTime считается невалидным.
type TimeResponse struct {
	ServerTime *int64 `json:"serverTime"` // epoch millis по часам сервера
}
