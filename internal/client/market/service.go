// Package market реализует прикладные сценарии поверх хранилища:
// регистрация, вход, операции с машинами и сводка состояния.
package market

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/iudanet/carmarket/internal/client/storage"
	"github.com/iudanet/carmarket/internal/models"
	"github.com/iudanet/carmarket/internal/validation"
)

//go:generate moq -out service_mock.go . Service

// Service определяет интерфейс для клиентского market сервиса
type Service interface {
	// Register создаёт локального пользователя.
	Register(ctx context.Context, username, password string) error

	// Login проверяет что пользователь существует локально и возвращает
	// его. Паролей и токенов нет: учётные данные вне зоны ответственности
	// клиента.
	Login(ctx context.Context, username string) (*models.User, error)

	// ChangePassword меняет пароль после сверки старого.
	ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error

	// AddCar добавляет машину пользователю, возвращает её UUID.
	AddCar(ctx context.Context, username, model string, value int64) (string, error)

	// Cars возвращает активные машины пользователя.
	Cars(ctx context.Context, username string) ([]models.Car, error)

	// EditCar обновляет модель и цену машины. Отсутствующая машина —
	// no-op с предупреждением в лог, не ошибка.
	EditCar(ctx context.Context, id, model string, value int64) error

	// DeleteCar удаляет машину вместе с рёбрами владения. Отсутствующая
	// машина — no-op с предупреждением в лог.
	DeleteCar(ctx context.Context, id string) error

	// DeleteUser удаляет пользователя каскадно. Отсутствующий
	// пользователь — no-op с предупреждением в лог.
	DeleteUser(ctx context.Context, username string) error

	// Status возвращает сводку: якорь последней синхронизации и счётчики
	// конфликтов.
	Status(ctx context.Context) (*Status, error)
}

// Status — сводка локального состояния для команды status.
type Status struct {
	LastSync  int64 // epoch millis; осмыслен только при Synced
	Synced    bool  // false = синхронизации ещё не было
	Conflicts models.ConflictCounts
}

type service struct {
	users     storage.UserStore
	cars      storage.CarStore
	ownership storage.OwnershipStore
	syncState storage.SyncStore
	logger    *slog.Logger
}

// NewService creates a new market service
func NewService(
	users storage.UserStore,
	cars storage.CarStore,
	ownership storage.OwnershipStore,
	syncState storage.SyncStore,
	logger *slog.Logger,
) Service {
	return &service{
		users:     users,
		cars:      cars,
		ownership: ownership,
		syncState: syncState,
		logger:    logger,
	}
}

func (s *service) Register(ctx context.Context, username, password string) error {
	if err := validation.ValidateUsername(username); err != nil {
		return fmt.Errorf("invalid username: %w", err)
	}
	if password == "" {
		return fmt.Errorf("password must not be empty")
	}

	if err := s.users.CreateUser(ctx, username, password); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return fmt.Errorf("user %q already exists: %w", username, err)
		}
		return fmt.Errorf("failed to register user: %w", err)
	}

	s.logger.Info("User registered", "username", username)
	return nil
}

func (s *service) Login(ctx context.Context, username string) (*models.User, error) {
	u, err := s.users.GetUser(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("user %q is not registered: %w", username, err)
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	return u, nil
}

func (s *service) ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error {
	if newPassword == "" {
		return fmt.Errorf("new password must not be empty")
	}

	u, err := s.users.GetUser(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("user %q is not registered: %w", username, err)
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if u.Password != oldPassword {
		return fmt.Errorf("old password does not match")
	}

	if err := s.users.UpdateUserPassword(ctx, username, newPassword); err != nil {
		return fmt.Errorf("failed to change password: %w", err)
	}

	s.logger.Info("Password changed", "username", username)
	return nil
}

func (s *service) AddCar(ctx context.Context, username, model string, value int64) (string, error) {
	if err := validation.ValidateCarModel(model); err != nil {
		return "", err
	}
	if value < 0 {
		return "", fmt.Errorf("car value must not be negative")
	}

	id, err := s.cars.AddCar(ctx, username, &models.Car{Model: model, Value: value})
	if err != nil {
		return "", fmt.Errorf("failed to add car: %w", err)
	}

	s.logger.Info("Car added", "uuid", id, "model", model, "owner", username)
	return id, nil
}

func (s *service) Cars(ctx context.Context, username string) ([]models.Car, error) {
	cars, err := s.cars.UserCars(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to list cars: %w", err)
	}
	return cars, nil
}

func (s *service) EditCar(ctx context.Context, id, model string, value int64) error {
	if err := validation.ValidateCarModel(model); err != nil {
		return err
	}

	// Читаем старую версию, чтобы показать что изменилось
	old, err := s.cars.GetCar(ctx, id)
	if err != nil {
		// Отсутствующая строка не считается ошибкой сценария
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn("Car not found, nothing to edit", "uuid", id)
			return nil
		}
		return fmt.Errorf("failed to look up car: %w", err)
	}

	if err := s.cars.UpdateCar(ctx, &models.Car{UUID: id, Model: model, Value: value}); err != nil {
		return fmt.Errorf("failed to edit car: %w", err)
	}

	s.logger.Info("Car updated",
		"uuid", id,
		"old_model", old.Model, "old_value", old.Value,
		"new_model", model, "new_value", value)
	return nil
}

func (s *service) DeleteCar(ctx context.Context, id string) error {
	if err := s.cars.DeleteCar(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn("Car not found, nothing to delete", "uuid", id)
			return nil
		}
		return fmt.Errorf("failed to delete car: %w", err)
	}

	s.logger.Info("Car deleted", "uuid", id)
	return nil
}

func (s *service) DeleteUser(ctx context.Context, username string) error {
	edges, err := s.ownership.OwnershipsOf(ctx, username)
	if err != nil {
		return fmt.Errorf("failed to list ownership: %w", err)
	}

	if err := s.users.DeleteUser(ctx, username); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn("User not found, nothing to delete", "username", username)
			return nil
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.logger.Info("User deleted with all their cars", "username", username, "cars", len(edges))
	return nil
}

func (s *service) Status(ctx context.Context) (*Status, error) {
	st := &Status{}

	ts, err := s.syncState.LastSync(ctx)
	switch {
	case err == nil:
		st.LastSync = ts
		st.Synced = true
	case errors.Is(err, storage.ErrNeverSynced):
		// Синхронизации ещё не было
	default:
		return nil, fmt.Errorf("failed to read sync anchor: %w", err)
	}

	counts, err := s.syncState.ActiveConflicts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count conflicts: %w", err)
	}
	st.Conflicts = counts

	return st, nil
}
