package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/smdv/password-vault/internal/crypto"
	"github.com/smdv/password-vault/internal/logger"
	"github.com/smdv/password-vault/models"
)

// vaultRepository is the SQL-backed implementation of [VaultRepository].
//
// Tenant isolation lives here: every query and statement carries the
// owner_id in its WHERE clause, so a foreign record id simply matches zero
// rows. There is no code path that reads or writes a record without an
// owner filter.
type vaultRepository struct {
	db     *DB
	cipher crypto.SecretCipher
	logger *logger.Logger
}

// NewVaultRepository constructs a [VaultRepository] backed by the provided
// database connection, secret cipher and logger.
func NewVaultRepository(db *DB, cipher crypto.SecretCipher, logger *logger.Logger) VaultRepository {
	logger.Debug().Msg("creating vault repository")
	return &vaultRepository{
		db:     db,
		cipher: cipher,
		logger: logger,
	}
}

// List returns all records of ownerID ordered by name case-insensitively,
// with record_id as the tiebreaker for a stable order. Secrets stay
// encrypted; listings never need them.
func (r *vaultRepository) List(ctx context.Context, ownerID int64) ([]models.VaultRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Select(colRecordID, colOwnerID, colName, colSecretCipher, colCreatedAt, colUpdatedAt).
		From(tableVaultRecords).
		Where(sq.Eq{colOwnerID: ownerID}).
		OrderBy("lower(" + colName + ")").
		OrderBy(colRecordID).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.List").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.List").Int64("owner_id", ownerID).Msg("error querying vault records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.VaultRecord, 0)
	for rows.Next() {
		var record models.VaultRecord
		if err = rows.Scan(
			&record.RecordID,
			&record.OwnerID,
			&record.Name,
			&record.SecretCipherText,
			&record.CreatedAt,
			&record.UpdatedAt,
		); err != nil {
			log.Err(err).Str("func", "*vaultRepository.List").Msg("error scanning vault record row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*vaultRepository.List").Msg("error iterating vault record rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

// Get returns a single owned record with its secret decrypted.
//
// A record that does not exist and a record owned by someone else produce
// the same [ErrRecordNotFound]: the WHERE clause matches neither.
func (r *vaultRepository) Get(ctx context.Context, recordID, ownerID int64) (models.VaultRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Select(colRecordID, colOwnerID, colName, colSecretCipher, colCreatedAt, colUpdatedAt).
		From(tableVaultRecords).
		Where(sq.Eq{colRecordID: recordID, colOwnerID: ownerID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.Get").Msg("error building query")
		return models.VaultRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var record models.VaultRecord
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&record.RecordID,
		&record.OwnerID,
		&record.Name,
		&record.SecretCipherText,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.VaultRecord{}, ErrRecordNotFound
	case err != nil:
		log.Err(err).Str("func", "*vaultRepository.Get").Int64("record_id", recordID).Msg("error querying vault record")
		return models.VaultRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	secret, err := r.cipher.Decrypt(record.SecretCipherText)
	if err != nil {
		// the ciphertext itself never goes to the log
		log.Err(err).Str("func", "*vaultRepository.Get").Int64("record_id", recordID).Msg("stored secret failed to decrypt")
		return models.VaultRecord{}, fmt.Errorf("%w: %w", ErrUnreadableSecret, err)
	}
	record.Secret = secret

	return record, nil
}

// Insert encrypts rawSecret and stores a new record owned by ownerID.
func (r *vaultRepository) Insert(ctx context.Context, ownerID int64, name, rawSecret string) (int64, error) {
	log := logger.FromContext(ctx)

	cipherText, err := r.cipher.Encrypt(rawSecret)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.Insert").Msg("error encrypting secret")
		return 0, fmt.Errorf("encrypt secret: %w", err)
	}

	qb := r.db.Builder().
		Insert(tableVaultRecords).
		Columns(colOwnerID, colName, colSecretCipher).
		Values(ownerID, name, string(cipherText))

	id, err := r.db.InsertWithID(ctx, qb, colRecordID)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.Insert").Int64("owner_id", ownerID).Msg("error inserting vault record")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return id, nil
}

// Update rewrites name and secret of an owned record. The affected row
// count is 0 when recordID does not exist or belongs to another principal.
func (r *vaultRepository) Update(ctx context.Context, recordID, ownerID int64, name, rawSecret string) (int64, error) {
	log := logger.FromContext(ctx)

	cipherText, err := r.cipher.Encrypt(rawSecret)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.Update").Msg("error encrypting secret")
		return 0, fmt.Errorf("encrypt secret: %w", err)
	}

	query, args, err := r.db.Builder().
		Update(tableVaultRecords).
		Set(colName, name).
		Set(colSecretCipher, string(cipherText)).
		Set(colUpdatedAt, sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{colRecordID: recordID, colOwnerID: ownerID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.Update").Msg("error building query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.Update").Int64("record_id", recordID).Msg("error updating vault record")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.Update").Msg("error reading affected rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}

// Delete removes an owned record. The affected row count is 0 when recordID
// does not exist or belongs to another principal.
func (r *vaultRepository) Delete(ctx context.Context, recordID, ownerID int64) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Delete(tableVaultRecords).
		Where(sq.Eq{colRecordID: recordID, colOwnerID: ownerID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.Delete").Msg("error building query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.Delete").Int64("record_id", recordID).Msg("error deleting vault record")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.Delete").Msg("error reading affected rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}
