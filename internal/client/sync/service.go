// Package sync implements the client side of the synchronization
// protocol: extracting the local change-set, pushing it to the server
// and reconciling the returned authoritative state back into the
// shadow store.
package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/iudanet/carmarket/internal/models"
	"github.com/iudanet/carmarket/pkg/api"
)

// ErrSyncBlocked возвращается когда активные конфликты запрещают
// синхронизацию. Транспорт при этом не вызывается вовсе.
var ErrSyncBlocked = errors.New("synchronization blocked by unresolved conflicts")

//go:generate moq -out service_mock.go . Service

// Service определяет интерфейс движка синхронизации
type Service interface {
	// Sync выполняет полную синхронизацию с сервером
	Sync(ctx context.Context) (*Result, error)

	// PendingChanges возвращает change-set, ожидающий отправки
	PendingChanges(ctx context.Context) (models.ChangeSet, error)
}

type service struct {
	transport Transport
	store     Store
	logger    *slog.Logger
}

// NewService creates a new sync service
func NewService(transport Transport, store Store, logger *slog.Logger) Service {
	return &service{
		transport: transport,
		store:     store,
		logger:    logger,
	}
}

// Result contains sync operation results
type Result struct {
	Pushed    int // строк отправлено на сервер
	Pulled    int // строк получено от сервера
	Inserted  int // новых строк вставлено при reconcile
	Updated   int // строк перезаписано состоянием сервера
	Confirmed int // строк подтверждено без изменений
	Deleted   int // строк удалено (сервер их больше не знает)
	Conflicts int // конфликтов сообщено сервером
}

// Sync performs full synchronization with the server:
//  1. Refuses to run while active conflict rows exist.
//  2. Fetches the server time (the future sync anchor).
//  3. Builds the local change-set and pushes it.
//  4. Reconciles the returned authoritative state, kind by kind.
//  5. Commits the anchor.
//
// Порядок reconcile фиксирован (Users → Cars → Ownership): следующие
// проходы перечитывают живые строки и видят каскад предыдущего.
func (s *service) Sync(ctx context.Context) (*Result, error) {
	s.logger.Info("Starting synchronization")

	// Stage 1: активные конфликты блокируют синхронизацию
	counts, err := s.store.ActiveConflicts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check conflicts: %w", err)
	}
	if counts.Total() > 0 {
		s.logger.Warn("Synchronization blocked",
			"users", counts.Users,
			"cars", counts.Cars,
			"ownership", counts.Ownership)
		return nil, fmt.Errorf("%w: %d unresolved rows", ErrSyncBlocked, counts.Total())
	}

	// Stage 2: якорь — время сервера, не локальные часы.
	// Сетевые ошибки здесь обрываются до любых локальных записей.
	anchor, err := s.transport.ServerTime(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch server time: %w", err)
	}

	// Stage 3: собираем локальный change-set
	users, cars, edges, err := s.trackedRows(ctx)
	if err != nil {
		return nil, err
	}
	cs := BuildChangeSet(users, cars, edges)

	result := &Result{Pushed: cs.Len()}
	s.logger.Info("Collected local changes",
		"new", cs.News.Len(),
		"modified", cs.Modified.Len(),
		"deleted", cs.Deleted.Len())

	// Stage 4: push, в ответ — полное авторитетное состояние
	resp, err := s.transport.Synchronize(ctx, toRequest(cs))
	if err != nil {
		return nil, fmt.Errorf("sync request failed: %w", err)
	}

	result.Pulled = len(resp.Updated.Users) + len(resp.Updated.Cars) + len(resp.Updated.UserOwnCar)
	result.Conflicts = len(resp.Conflicts)

	s.logger.Info("Received server state",
		"users", len(resp.Updated.Users),
		"cars", len(resp.Updated.Cars),
		"ownership", len(resp.Updated.UserOwnCar),
		"conflicts", len(resp.Conflicts))

	// Stage 5: reconcile, строго Users → Cars → Ownership.
	// Каждый следующий проход классифицирует по живым строкам, а не по
	// снимку из stage 3: каскад от удаления пользователя снимает его
	// машины и рёбра, и строки, которые сервер всё ещё перечисляет,
	// должны быть вставлены заново, а не "подтверждены" вслепую.
	if err := s.reconcileUsers(ctx, resp.Updated.Users, users, anchor, result); err != nil {
		return nil, err
	}
	carsNow, err := s.store.TrackedCars(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tracked cars: %w", err)
	}
	if err := s.reconcileCars(ctx, resp.Updated.Cars, carsNow, anchor, result); err != nil {
		return nil, err
	}
	edgesNow, err := s.store.TrackedOwnership(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tracked ownership: %w", err)
	}
	if err := s.reconcileOwnership(ctx, resp.Updated.UserOwnCar, edgesNow, anchor, result); err != nil {
		return nil, err
	}

	// Конфликты от сервера фиксируются в conflict-таблицах: разрешение
	// ручное, следующая синхронизация будет заблокирована до него.
	if err := s.recordConflicts(ctx, resp.Conflicts); err != nil {
		return nil, err
	}

	// Stage 6: post-check. Автоматического разрешения нет.
	post, err := s.store.ActiveConflicts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to re-check conflicts: %w", err)
	}
	if post.Total() > 0 {
		s.logger.Warn("Conflicts remain after merge, manual resolution required",
			"total", post.Total())
	}

	// Stage 7: якорь коммитится безусловно после reconcile
	if err := s.store.SetLastSync(ctx, anchor); err != nil {
		return nil, fmt.Errorf("failed to commit sync anchor: %w", err)
	}

	s.logger.Info("Synchronization completed",
		"pushed", result.Pushed,
		"pulled", result.Pulled,
		"inserted", result.Inserted,
		"updated", result.Updated,
		"confirmed", result.Confirmed,
		"deleted", result.Deleted,
		"conflicts", result.Conflicts,
		"anchor", anchor)

	return result, nil
}

// PendingChanges возвращает change-set, который ушёл бы на сервер при
// синхронизации прямо сейчас.
func (s *service) PendingChanges(ctx context.Context) (models.ChangeSet, error) {
	users, cars, edges, err := s.trackedRows(ctx)
	if err != nil {
		return models.ChangeSet{}, err
	}
	return BuildChangeSet(users, cars, edges), nil
}

func (s *service) trackedRows(ctx context.Context) ([]models.TrackedUser, []models.TrackedCar, []models.TrackedOwnership, error) {
	users, err := s.store.TrackedUsers(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load tracked users: %w", err)
	}
	cars, err := s.store.TrackedCars(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load tracked cars: %w", err)
	}
	edges, err := s.store.TrackedOwnership(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load tracked ownership: %w", err)
	}
	return users, cars, edges, nil
}

// reconcileUsers применяет трёхстороннюю классификацию к пользователям:
// insert / update / confirm / delete, ключ — username.
func (s *service) reconcileUsers(ctx context.Context, serverRows []api.UserRow, local []models.TrackedUser, anchor int64, result *Result) error {
	seen := make(map[string]bool, len(serverRows))
	localByKey := make(map[string]models.TrackedUser, len(local))
	for _, u := range local {
		localByKey[u.Username] = u
	}

	for _, row := range serverRows {
		seen[row.Username] = true
		u := fromUserRow(row)

		existing, ok := localByKey[row.Username]
		switch {
		case !ok:
			// Сервер знает, мы нет
			if err := s.store.SaveServerUser(ctx, u, anchor, false); err != nil {
				return fmt.Errorf("failed to insert user %q: %w", row.Username, err)
			}
			result.Inserted++
		case existing.Password == u.Password && existing.Active:
			if err := s.store.ConfirmUser(ctx, row.Username); err != nil {
				return fmt.Errorf("failed to confirm user %q: %w", row.Username, err)
			}
			result.Confirmed++
		default:
			// Сервер победил: перезаписываем своим состоянием
			if err := s.store.SaveServerUser(ctx, u, anchor, true); err != nil {
				return fmt.Errorf("failed to update user %q: %w", row.Username, err)
			}
			result.Updated++
		}
	}

	for _, u := range local {
		if !seen[u.Username] {
			if err := s.store.PurgeUser(ctx, u.Username); err != nil {
				return fmt.Errorf("failed to purge user %q: %w", u.Username, err)
			}
			result.Deleted++
		}
	}

	return nil
}

func (s *service) reconcileCars(ctx context.Context, serverRows []api.CarRow, local []models.TrackedCar, anchor int64, result *Result) error {
	seen := make(map[string]bool, len(serverRows))
	localByKey := make(map[string]models.TrackedCar, len(local))
	for _, c := range local {
		localByKey[c.UUID] = c
	}

	for _, row := range serverRows {
		seen[row.UUID] = true
		c, err := fromCarRow(row)
		if err != nil {
			return fmt.Errorf("failed to decode server car %q: %w", row.UUID, err)
		}

		existing, ok := localByKey[row.UUID]
		switch {
		case !ok:
			if err := s.store.SaveServerCar(ctx, c, anchor, false); err != nil {
				return fmt.Errorf("failed to insert car %q: %w", row.UUID, err)
			}
			result.Inserted++
		case existing.Model == c.Model && existing.Value == c.Value && existing.Active:
			if err := s.store.ConfirmCar(ctx, row.UUID); err != nil {
				return fmt.Errorf("failed to confirm car %q: %w", row.UUID, err)
			}
			result.Confirmed++
		default:
			if err := s.store.SaveServerCar(ctx, c, anchor, true); err != nil {
				return fmt.Errorf("failed to update car %q: %w", row.UUID, err)
			}
			result.Updated++
		}
	}

	for _, c := range local {
		if !seen[c.UUID] {
			// Каскад снимает и рёбра владения, уже обработанные на
			// серверной стороне
			if err := s.store.PurgeCar(ctx, c.UUID); err != nil {
				return fmt.Errorf("failed to purge car %q: %w", c.UUID, err)
			}
			result.Deleted++
		}
	}

	return nil
}

func (s *service) reconcileOwnership(ctx context.Context, serverRows []api.OwnershipRow, local []models.TrackedOwnership, anchor int64, result *Result) error {
	type edgeKey struct{ user, car string }

	seen := make(map[edgeKey]bool, len(serverRows))
	localByKey := make(map[edgeKey]models.TrackedOwnership, len(local))
	for _, e := range local {
		localByKey[edgeKey{e.Username, e.CarID}] = e
	}

	for _, row := range serverRows {
		key := edgeKey{row.User, row.CarID}
		seen[key] = true
		o := fromOwnershipRow(row)

		existing, ok := localByKey[key]
		switch {
		case !ok:
			if err := s.store.SaveServerOwnership(ctx, o, anchor, false); err != nil {
				return fmt.Errorf("failed to insert ownership %s/%s: %w", row.User, row.CarID, err)
			}
			result.Inserted++
		case existing.Active:
			// У ребра нет полезной нагрузки: совпадение ключа и
			// активность означают идентичность
			if err := s.store.ConfirmOwnership(ctx, row.User, row.CarID); err != nil {
				return fmt.Errorf("failed to confirm ownership %s/%s: %w", row.User, row.CarID, err)
			}
			result.Confirmed++
		default:
			if err := s.store.SaveServerOwnership(ctx, o, anchor, true); err != nil {
				return fmt.Errorf("failed to update ownership %s/%s: %w", row.User, row.CarID, err)
			}
			result.Updated++
		}
	}

	for _, e := range local {
		if !seen[edgeKey{e.Username, e.CarID}] {
			if err := s.store.PurgeOwnership(ctx, e.Username, e.CarID); err != nil {
				return fmt.Errorf("failed to purge ownership %s/%s: %w", e.Username, e.CarID, err)
			}
			result.Deleted++
		}
	}

	return nil
}

// recordConflicts пишет конфликты, о которых сообщил сервер, в
// conflict-таблицы. Неизвестный вид — предупреждение в лог, не ошибка.
func (s *service) recordConflicts(ctx context.Context, conflicts []api.ConflictRow) error {
	for _, c := range conflicts {
		var err error
		switch c.Kind {
		case "Users":
			err = s.store.RecordUserConflict(ctx, c.Key)
		case "Cars":
			err = s.store.RecordCarConflict(ctx, c.Key)
		case "UserOwnCar":
			err = s.store.RecordOwnershipConflict(ctx, c.User, c.Car)
		default:
			s.logger.Warn("Unknown conflict kind from server", "kind", c.Kind, "key", c.Key)
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to record conflict %s/%s: %w", c.Kind, c.Key, err)
		}
	}
	return nil
}
