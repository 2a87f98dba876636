package models

// ShadowFlags — три флага происхождения строки в local-shadow таблице.
// Комбинация флагов однозначно определяет класс строки (см. Class).
type ShadowFlags struct {
	FromServer bool // содержимое совпадает с последним состоянием, полученным с сервера
	Modified   bool // строка изменена локально после последней синхронизации
	Active     bool // false = tombstone, удаление ещё нужно доставить серверу
}

// Class — производный класс строки в shadow-таблице.
// Каждая строка находится ровно в одном классе в любой момент времени.
type Class int

const (
	// ClassNew — создана локально, сервер о ней не знает.
	ClassNew Class = iota
	// ClassModified — существовала до синхронизации, изменена локально.
	ClassModified
	// ClassDeleted — tombstone: удалена локально, удаление ещё не подтверждено.
	ClassDeleted
	// ClassClean — совпадает с последним известным состоянием сервера.
	ClassClean
)

// Class выводит класс строки из флагов.
//
// Порядок проверок задаёт приоритет: деактивированная строка — это всегда
// tombstone, какими бы ни были остальные флаги. Репозитории нормализуют
// tombstone к (0,0,0), но классификатор на это не полагается.
func (f ShadowFlags) Class() Class {
	switch {
	case !f.Active:
		return ClassDeleted
	case f.FromServer:
		return ClassClean
	case f.Modified:
		return ClassModified
	default:
		return ClassNew
	}
}

// String returns a human-readable class name for logs and error messages.
func (c Class) String() string {
	switch c {
	case ClassNew:
		return "new"
	case ClassModified:
		return "modified"
	case ClassDeleted:
		return "deleted"
	case ClassClean:
		return "clean"
	default:
		return "unknown"
	}
}

// Predefined flag combinations written by the repositories and the sync
// engine. Keeping them in one place pins the invariants down.
var (
	// FlagsLocalNew — только что созданная локально строка.
	FlagsLocalNew = ShadowFlags{FromServer: false, Modified: false, Active: true}
	// FlagsLocalModified — локально изменённая, уже синхронизированная строка.
	FlagsLocalModified = ShadowFlags{FromServer: false, Modified: true, Active: true}
	// FlagsTombstone — локально удалённая строка.
	FlagsTombstone = ShadowFlags{FromServer: false, Modified: false, Active: false}
	// FlagsServerClean — строка подтверждена сервером.
	FlagsServerClean = ShadowFlags{FromServer: true, Modified: false, Active: true}
	// FlagsServerMerged — строка перезаписана сервером при reconcile
	// (modified-by-merge, отличается от locally-modified).
	FlagsServerMerged = ShadowFlags{FromServer: true, Modified: true, Active: true}
)
