package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ListContacts returns the contacts of an identity, favorites first.
func (service *Service) ListContacts(ctx context.Context, ownerID IdentityID) ([]Contact, error) {
	if _, err := service.store.GetIdentity(ctx, ownerID); err != nil {
		return nil, err
	}
	return service.store.ListContacts(ctx, ownerID)
}

// AddContact saves the identity holding gamertag as a contact of ownerID.
// Adding an existing contact only updates its favorite flag and snapshot.
func (service *Service) AddContact(ctx context.Context, ownerID IdentityID, gamertag Gamertag, isFavorite bool) (Contact, error) {
	var (
		contact   Contact
		contactID IdentityID
	)
	operationError := func() error {
		if _, err := service.store.GetIdentity(ctx, ownerID); err != nil {
			return err
		}
		target, err := service.store.FindActiveIdentityByGamertag(ctx, gamertag)
		if err != nil {
			if errors.Is(err, ErrUnknownGamertag) {
				return fmt.Errorf("%w: %s", ErrUnknownGamertag, gamertag.String())
			}
			return err
		}
		contactID = target.ID
		if target.ID == ownerID {
			return ErrSelfTransferNotAllowed
		}
		entry := contactOf(ownerID, target, service.now())
		entry.IsFavorite = isFavorite
		contact, err = service.store.UpsertContact(ctx, entry, true)
		return err
	}()
	service.logOperation(ctx, OperationLog{
		Operation:      operationContactAdd,
		ActorID:        ownerID,
		CounterpartyID: contactID,
		Error:          operationError,
	})
	return contact, operationError
}

// RebuildContacts reconstructs the contact cache of ownerID from its
// transaction history. Favorite flags of existing contacts are preserved and
// counterparties that are no longer active are skipped.
func (service *Service) RebuildContacts(ctx context.Context, ownerID IdentityID) ([]Contact, error) {
	var contacts []Contact
	operationError := func() error {
		if _, err := service.store.GetIdentity(ctx, ownerID); err != nil {
			return err
		}
		transactions, err := service.store.ListTransactions(ctx, ownerID, HistoryCursor{}, rebuildScanLimit)
		if err != nil {
			return err
		}
		seen := make(map[IdentityID]struct{})
		now := service.now()
		return service.store.WithTx(ctx, func(ctx context.Context, transactionStore Store) error {
			for _, transaction := range transactions {
				counterpartyID := transaction.Counterparty(ownerID)
				if _, ok := seen[counterpartyID]; ok {
					continue
				}
				seen[counterpartyID] = struct{}{}
				counterparty, err := transactionStore.GetIdentity(ctx, counterpartyID)
				if errors.Is(err, ErrUnknownIdentity) {
					continue
				}
				if err != nil {
					return err
				}
				if !counterparty.Active {
					continue
				}
				if _, err := transactionStore.UpsertContact(ctx, contactOf(ownerID, counterparty, now), false); err != nil {
					return err
				}
			}
			listed, err := transactionStore.ListContacts(ctx, ownerID)
			if err != nil {
				return err
			}
			contacts = listed
			return nil
		})
	}()
	service.logOperation(ctx, OperationLog{
		Operation: operationContactRebuild,
		ActorID:   ownerID,
		Error:     operationError,
	})
	return contacts, operationError
}

func contactOf(ownerID IdentityID, contact Identity, now time.Time) Contact {
	return Contact{
		OwnerID:            ownerID,
		ContactID:          contact.ID,
		ContactGamertag:    contact.Gamertag.String(),
		ContactDisplayName: contact.DisplayName,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}
