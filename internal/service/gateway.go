package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/smdv/password-vault/internal/logger"
	"github.com/smdv/password-vault/internal/session"
	"github.com/smdv/password-vault/internal/store"
	"github.com/smdv/password-vault/models"
)

// accessGateway is the concrete implementation of [Gateway].
//
// It owns no persistent state: it reads the session store on every call,
// delegates to the repositories with the active id as the scoping owner,
// and publishes a change event after each successful mutation. Because the
// owner id always comes from the session, cross-tenant access is impossible
// by construction.
type accessGateway struct {
	principals store.PrincipalRepository
	vault      store.VaultRepository
	session    *session.Store

	// persister mirrors the session id to durable storage for the host UI.
	// Optional; nil disables persistence. Persistence failures are logged
	// and swallowed: they must never fail a login.
	persister session.Persister

	notifier *notifier
	logger   *logger.Logger
}

// NewGateway wires the gateway onto its collaborators. persister may be nil.
func NewGateway(repos *store.Repositories, sessions *session.Store, persister session.Persister, logger *logger.Logger) Gateway {
	logger.Debug().Msg("creating access gateway")
	return &accessGateway{
		principals: repos.Principals,
		vault:      repos.Vault,
		session:    sessions,
		persister:  persister,
		notifier:   newNotifier(),
		logger:     logger,
	}
}

// Login implements [Gateway]. Any authentication failure, unknown email or
// wrong password alike, collapses into [ErrAuthenticationFailed].
func (g *accessGateway) Login(ctx context.Context, email, password string) (int64, error) {
	log := logger.FromContext(ctx)

	userID, err := g.principals.Authenticate(ctx, email, password)
	if err != nil {
		if errors.Is(err, store.ErrInvalidCredentials) {
			return 0, ErrAuthenticationFailed
		}
		log.Err(err).Str("func", "*accessGateway.Login").Msg("authentication query failed")
		return 0, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	g.session.SetActive(userID)
	g.persistSession(userID)

	log.Info().Int64("user_id", userID).Msg("session activated")
	return userID, nil
}

// Logout implements [Gateway].
func (g *accessGateway) Logout() {
	g.session.Clear()
	if g.persister != nil {
		if err := g.persister.Clear(); err != nil {
			g.logger.Err(err).Str("func", "*accessGateway.Logout").Msg("failed to clear persisted session")
		}
	}
}

// Register implements [Gateway].
func (g *accessGateway) Register(ctx context.Context, email, password string) (int64, error) {
	log := logger.FromContext(ctx)

	userID, err := g.principals.Register(ctx, email, password)
	if err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			return 0, ErrDuplicateEmail
		}
		log.Err(err).Str("func", "*accessGateway.Register").Msg("registration failed")
		return 0, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	log.Info().Int64("user_id", userID).Msg("principal registered")
	return userID, nil
}

// RestoreSession implements [Gateway].
func (g *accessGateway) RestoreSession(userID int64) {
	if userID <= 0 {
		return
	}
	g.session.SetActive(userID)
}

// ListRecords implements [Gateway].
func (g *accessGateway) ListRecords(ctx context.Context) ([]models.VaultRecord, error) {
	ownerID, err := g.activeID()
	if err != nil {
		return nil, err
	}

	records, err := g.vault.List(ctx, ownerID)
	if err != nil {
		return nil, g.mapVaultErr(ctx, err)
	}
	return records, nil
}

// GetRecord implements [Gateway].
func (g *accessGateway) GetRecord(ctx context.Context, recordID int64) (models.VaultRecord, error) {
	ownerID, err := g.activeID()
	if err != nil {
		return models.VaultRecord{}, err
	}

	record, err := g.vault.Get(ctx, recordID, ownerID)
	if err != nil {
		return models.VaultRecord{}, g.mapVaultErr(ctx, err)
	}
	return record, nil
}

// AddRecord implements [Gateway].
func (g *accessGateway) AddRecord(ctx context.Context, name, secret string) (int64, error) {
	ownerID, err := g.activeID()
	if err != nil {
		return 0, err
	}

	recordID, err := g.vault.Insert(ctx, ownerID, name, secret)
	if err != nil {
		return 0, g.mapVaultErr(ctx, err)
	}

	g.notifier.Publish(models.ChangeEvent{Op: models.OpInsert, RecordID: recordID})
	return recordID, nil
}

// UpdateRecord implements [Gateway].
func (g *accessGateway) UpdateRecord(ctx context.Context, recordID int64, name, secret string) (bool, error) {
	ownerID, err := g.activeID()
	if err != nil {
		return false, err
	}

	affected, err := g.vault.Update(ctx, recordID, ownerID, name, secret)
	if err != nil {
		return false, g.mapVaultErr(ctx, err)
	}
	if affected == 0 {
		return false, nil
	}

	g.notifier.Publish(models.ChangeEvent{Op: models.OpUpdate, RecordID: recordID})
	return true, nil
}

// DeleteRecord implements [Gateway].
func (g *accessGateway) DeleteRecord(ctx context.Context, recordID int64) (bool, error) {
	ownerID, err := g.activeID()
	if err != nil {
		return false, err
	}

	affected, err := g.vault.Delete(ctx, recordID, ownerID)
	if err != nil {
		return false, g.mapVaultErr(ctx, err)
	}
	if affected == 0 {
		return false, nil
	}

	g.notifier.Publish(models.ChangeEvent{Op: models.OpDelete, RecordID: recordID})
	return true, nil
}

// Query implements [Gateway]. The address discriminates once, here, instead
// of string parsing scattered through callers.
func (g *accessGateway) Query(ctx context.Context, addr models.Address) ([]models.VaultRecord, error) {
	switch addr.Kind {
	case models.AddressCollection:
		return g.ListRecords(ctx)
	case models.AddressRecord:
		record, err := g.GetRecord(ctx, addr.RecordID)
		if err != nil {
			return nil, err
		}
		return []models.VaultRecord{record}, nil
	default:
		return nil, fmt.Errorf("%w: unknown address kind %d", models.ErrInvalidAddress, addr.Kind)
	}
}

// Subscribe implements [Gateway].
func (g *accessGateway) Subscribe() (<-chan models.ChangeEvent, func()) {
	return g.notifier.Subscribe()
}

// activeID reads the session; an absent session refuses the operation
// before any repository access.
func (g *accessGateway) activeID() (int64, error) {
	id, ok := g.session.Active()
	if !ok {
		return 0, ErrUnauthenticated
	}
	return id, nil
}

// persistSession mirrors the active id to the durable collaborator.
func (g *accessGateway) persistSession(userID int64) {
	if g.persister == nil {
		return
	}
	if err := g.persister.Save(userID); err != nil {
		g.logger.Err(err).Str("func", "*accessGateway.persistSession").Msg("failed to persist session")
	}
}

// mapVaultErr translates store sentinels into the gateway taxonomy.
func (g *accessGateway) mapVaultErr(ctx context.Context, err error) error {
	log := logger.FromContext(ctx)

	switch {
	case errors.Is(err, store.ErrRecordNotFound):
		return ErrRecordNotFound
	case errors.Is(err, store.ErrUnreadableSecret):
		log.Err(err).Msg("crypto failure surfaced to caller")
		return fmt.Errorf("%w: %w", ErrCrypto, err)
	default:
		log.Err(err).Msg("storage failure surfaced to caller")
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
}
