package sync

import (
	"fmt"
	"strconv"

	"github.com/iudanet/carmarket/internal/models"
	"github.com/iudanet/carmarket/pkg/api"
)

// BuildChangeSet разбивает tracked-строки на новые, изменённые и
// удалённые по классу происхождения. Чистые строки не попадают никуда.
// Функция чистая и идемпотентна: без промежуточных записей повторный
// вызов даёт тот же результат.
func BuildChangeSet(
	users []models.TrackedUser,
	cars []models.TrackedCar,
	edges []models.TrackedOwnership,
) models.ChangeSet {
	var cs models.ChangeSet

	for _, u := range users {
		switch u.Flags.Class() {
		case models.ClassNew:
			cs.News.Users = append(cs.News.Users, u.User)
		case models.ClassModified:
			cs.Modified.Users = append(cs.Modified.Users, u.User)
		case models.ClassDeleted:
			cs.Deleted.Users = append(cs.Deleted.Users, u.User)
		case models.ClassClean:
		}
	}

	for _, c := range cars {
		switch c.Flags.Class() {
		case models.ClassNew:
			cs.News.Cars = append(cs.News.Cars, c.Car)
		case models.ClassModified:
			cs.Modified.Cars = append(cs.Modified.Cars, c.Car)
		case models.ClassDeleted:
			cs.Deleted.Cars = append(cs.Deleted.Cars, c.Car)
		case models.ClassClean:
		}
	}

	for _, e := range edges {
		switch e.Flags.Class() {
		case models.ClassNew:
			cs.News.Ownership = append(cs.News.Ownership, e.Ownership)
		case models.ClassModified:
			cs.Modified.Ownership = append(cs.Modified.Ownership, e.Ownership)
		case models.ClassDeleted:
			cs.Deleted.Ownership = append(cs.Deleted.Ownership, e.Ownership)
		case models.ClassClean:
		}
	}

	return cs
}

// toRequest переводит change-set в wire-формат запроса.
func toRequest(cs models.ChangeSet) api.SyncRequest {
	return api.SyncRequest{
		News:     toRows(cs.News),
		Modified: toRows(cs.Modified),
		Deleted:  toRows(cs.Deleted),
	}
}

func toRows(set models.EntitySet) api.EntityRows {
	rows := api.EntityRows{
		Users:      make([]api.UserRow, 0, len(set.Users)),
		Cars:       make([]api.CarRow, 0, len(set.Cars)),
		UserOwnCar: make([]api.OwnershipRow, 0, len(set.Ownership)),
	}

	for _, u := range set.Users {
		rows.Users = append(rows.Users, api.UserRow{
			Username: u.Username,
			Password: u.Password,
		})
	}
	for _, c := range set.Cars {
		rows.Cars = append(rows.Cars, api.CarRow{
			UUID:  c.UUID,
			Model: c.Model,
			// Сервер передаёт value строкой
			Value: strconv.FormatInt(c.Value, 10),
		})
	}
	for _, o := range set.Ownership {
		rows.UserOwnCar = append(rows.UserOwnCar, api.OwnershipRow{
			User:  o.Username,
			CarID: o.CarID,
		})
	}

	return rows
}

func fromUserRow(row api.UserRow) models.User {
	return models.User{
		Username: row.Username,
		Password: row.Password,
		Active:   true,
	}
}

func fromCarRow(row api.CarRow) (models.Car, error) {
	value, err := strconv.ParseInt(row.Value, 10, 64)
	if err != nil {
		return models.Car{}, fmt.Errorf("invalid car value %q: %w", row.Value, err)
	}
	return models.Car{
		UUID:   row.UUID,
		Model:  row.Model,
		Value:  value,
		Active: true,
	}, nil
}

func fromOwnershipRow(row api.OwnershipRow) models.Ownership {
	return models.Ownership{
		Username: row.User,
		CarID:    row.CarID,
		Active:   true,
	}
}
