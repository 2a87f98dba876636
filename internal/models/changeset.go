package models

// EntitySet группирует строки всех трёх видов сущностей.
// Используется и в change-set (на отправку), и при приёме
// авторитетного состояния от сервера.
type EntitySet struct {
	Users     []User
	Cars      []Car
	Ownership []Ownership
}

// Len returns the total number of rows across all entity kinds.
func (s EntitySet) Len() int {
	return len(s.Users) + len(s.Cars) + len(s.Ownership)
}

// ChangeSet — агрегированный набор локальных изменений с момента
// последней синхронизации: новые, изменённые и удалённые строки,
// каждая группа разбита по видам сущностей.
type ChangeSet struct {
	News     EntitySet
	Modified EntitySet
	Deleted  EntitySet
}

// Len returns the total number of rows in the change-set.
func (cs ChangeSet) Len() int {
	return cs.News.Len() + cs.Modified.Len() + cs.Deleted.Len()
}

// Empty reports whether the change-set carries no rows at all.
func (cs ChangeSet) Empty() bool {
	return cs.Len() == 0
}

// ConflictCounts — число активных строк в каждой из conflict-таблиц.
// Любое ненулевое значение блокирует синхронизацию.
type ConflictCounts struct {
	Users     int
	Cars      int
	Ownership int
}

// Total returns the sum across all conflict tables.
func (c ConflictCounts) Total() int {
	return c.Users + c.Cars + c.Ownership
}
