package firestore

import (
	"context"
	"log/slog"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"simsure/config"
	"simsure/internal/domain/entity"
	"simsure/internal/domain/repository"
)

type accountRepository struct {
	client     *firestore.Client
	collection string
	logger     *slog.Logger
}

// NewAccountRepository creates a Firestore-backed account repository.
func NewAccountRepository(client *firestore.Client, cfg *config.Config, logger *slog.Logger) repository.AccountRepository {
	collection := defaultAccountCollection
	if cfg.Firebase != nil && cfg.Firebase.AccountCollection != "" {
		collection = cfg.Firebase.AccountCollection
	}

	return &accountRepository{
		client:     client,
		collection: collection,
		logger:     logger,
	}
}

func (repo *accountRepository) doc(id uuid.UUID) *firestore.DocumentRef {
	return repo.client.Collection(repo.collection).Doc(id.String())
}

// FindByID retrieves a single account document.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	snapshot, err := repo.doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "get account document")
	}

	return decodeAccount(snapshot)
}

// FindByEmail retrieves the account document holding the given email.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	iter := repo.client.Collection(repo.collection).
		Where("email", "==", email).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	snapshot, err := iter.Next()
	if err != nil {
		if errors.Is(err, iterator.Done) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "query account by email")
	}

	return decodeAccount(snapshot)
}

// Create persists a new account document. Fails when the document exists.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	if _, err := repo.doc(account.ID).Create(ctx, account); err != nil {
		return errors.Wrap(err, "create account document")
	}

	return nil
}

// Update replaces the account document inside a transaction, guarded by the
// stored version. The write succeeds only when the stored version still
// matches account.Version; the stored version is then incremented and the
// in-memory account advanced to match.
func (repo *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	ref := repo.doc(account.ID)
	baseVersion := account.Version

	err := repo.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snapshot, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return repository.ErrAccountNotFound
			}

			return errors.Wrap(err, "read account for update")
		}

		stored, err := snapshot.DataAt("version")
		if err != nil {
			return errors.Wrap(err, "read account version")
		}
		storedVersion, ok := stored.(int64)
		if !ok || storedVersion != baseVersion {
			return repository.ErrVersionConflict
		}

		account.Version = baseVersion + 1

		return tx.Set(ref, account)
	})
	if err != nil {
		// Roll the in-memory version back so a retry starts from the
		// version the caller actually read.
		account.Version = baseVersion

		if errors.Is(err, repository.ErrVersionConflict) || errors.Is(err, repository.ErrAccountNotFound) {
			return err
		}

		return errors.Wrap(err, "update account document")
	}

	return nil
}

// Watch streams account snapshots until ctx is done. Consumers get the most
// recent state of the document; intermediate writes may be skipped.
func (repo *accountRepository) Watch(ctx context.Context, id uuid.UUID) (<-chan *entity.Account, error) {
	if _, err := repo.FindByID(ctx, id); err != nil {
		return nil, err
	}

	updates := make(chan *entity.Account)
	snapshots := repo.doc(id).Snapshots(ctx)

	go func() {
		defer close(updates)
		defer snapshots.Stop()

		for {
			snapshot, err := snapshots.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					repo.logger.Warn("Account snapshot stream ended",
						slog.String("accountID", id.String()),
						slog.Any("error", err),
					)
				}

				return
			}
			if !snapshot.Exists() {
				return
			}

			account, err := decodeAccount(snapshot)
			if err != nil {
				repo.logger.Warn("Failed to decode account snapshot",
					slog.String("accountID", id.String()),
					slog.Any("error", err),
				)

				continue
			}

			select {
			case updates <- account:
			case <-ctx.Done():
				return
			}
		}
	}()

	return updates, nil
}

func decodeAccount(snapshot *firestore.DocumentSnapshot) (*entity.Account, error) {
	var account entity.Account
	if err := snapshot.DataTo(&account); err != nil {
		return nil, errors.Wrap(err, "decode account document")
	}

	return &account, nil
}
