package ledger

import (
	"context"
	"errors"
	"fmt"
)

// Registration carries the caller-supplied profile of a new identity.
type Registration struct {
	UserID      UserID
	Gamertag    Gamertag
	DisplayName string
	AvatarURL   string
}

// Resolve finds the active identity holding the gamertag, case-insensitively.
func (service *Service) Resolve(ctx context.Context, gamertag Gamertag) (Identity, error) {
	return service.store.FindActiveIdentityByGamertag(ctx, gamertag)
}

// Identity returns an identity by id, active or not.
func (service *Service) Identity(ctx context.Context, identityID IdentityID) (Identity, error) {
	return service.store.GetIdentity(ctx, identityID)
}

// LookupByUserID returns the identity owned by an authentication subject.
func (service *Service) LookupByUserID(ctx context.Context, userID UserID) (Identity, error) {
	return service.store.FindIdentityByUserID(ctx, userID)
}

// Register creates an identity. It does not open an account; see Enroll.
func (service *Service) Register(ctx context.Context, registration Registration) (Identity, error) {
	identity, operationError := service.register(ctx, registration, false)
	service.logOperation(ctx, OperationLog{
		Operation: operationRegister,
		ActorID:   identity.ID,
		Error:     operationError,
	})
	return identity, operationError
}

// Enroll registers an identity and opens its zero-balance account atomically.
func (service *Service) Enroll(ctx context.Context, registration Registration) (Identity, error) {
	identity, operationError := service.register(ctx, registration, true)
	service.logOperation(ctx, OperationLog{
		Operation: operationRegister,
		ActorID:   identity.ID,
		Error:     operationError,
	})
	if operationError == nil {
		service.logOperation(ctx, OperationLog{Operation: operationOpenAccount, ActorID: identity.ID})
	}
	return identity, operationError
}

func (service *Service) register(ctx context.Context, registration Registration, openAccount bool) (Identity, error) {
	if registration.UserID.value == "" {
		return Identity{}, fmt.Errorf("%w: empty value", ErrInvalidUserID)
	}
	if registration.Gamertag.value == "" {
		return Identity{}, fmt.Errorf("%w: empty value", ErrInvalidGamertag)
	}
	displayName, err := normalizeDisplayName(registration.DisplayName, registration.Gamertag)
	if err != nil {
		return Identity{}, err
	}
	identityID, err := service.newIdentityID()
	if err != nil {
		return Identity{}, err
	}

	unlock, err := service.locker.Lock(ctx, gamertagLockKey(registration.Gamertag))
	if err != nil {
		return Identity{}, err
	}
	defer unlock()

	now := service.now()
	identity := Identity{
		ID:          identityID,
		UserID:      registration.UserID,
		Gamertag:    registration.Gamertag,
		DisplayName: displayName,
		AvatarURL:   registration.AvatarURL,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err = service.store.WithTx(ctx, func(ctx context.Context, transactionStore Store) error {
		if err := ensureGamertagAvailable(ctx, transactionStore, registration.Gamertag, IdentityID{}); err != nil {
			return err
		}
		existing, err := transactionStore.FindIdentityByUserID(ctx, registration.UserID)
		if err == nil && existing.Active {
			return ErrIdentityExists
		}
		if err != nil && !errors.Is(err, ErrUnknownIdentity) {
			return err
		}
		if err := transactionStore.CreateIdentity(ctx, identity); err != nil {
			return err
		}
		if !openAccount {
			return nil
		}
		return transactionStore.CreateAccount(ctx, Account{IdentityID: identity.ID, UpdatedAt: now})
	})
	if err != nil {
		return Identity{}, err
	}
	return identity, nil
}

// Rename moves an identity to a new gamertag under the same uniqueness rule as Register.
func (service *Service) Rename(ctx context.Context, identityID IdentityID, gamertag Gamertag) (Identity, error) {
	var renamed Identity
	operationError := func() error {
		if gamertag.value == "" {
			return fmt.Errorf("%w: empty value", ErrInvalidGamertag)
		}
		unlock, err := service.locker.Lock(ctx, gamertagLockKey(gamertag))
		if err != nil {
			return err
		}
		defer unlock()
		return service.store.WithTx(ctx, func(ctx context.Context, transactionStore Store) error {
			identity, err := transactionStore.GetIdentity(ctx, identityID)
			if err != nil {
				return err
			}
			if !identity.Active {
				return ErrIdentityInactive
			}
			if err := ensureGamertagAvailable(ctx, transactionStore, gamertag, identityID); err != nil {
				return err
			}
			identity.Gamertag = gamertag
			identity.UpdatedAt = service.now()
			if err := transactionStore.UpdateIdentity(ctx, identity); err != nil {
				return err
			}
			renamed = identity
			return nil
		})
	}()
	service.logOperation(ctx, OperationLog{
		Operation: operationRename,
		ActorID:   identityID,
		Error:     operationError,
	})
	return renamed, operationError
}

// Deactivate soft-deletes an identity. Pending requests where it is the
// requester or the target are declined in the same transaction.
func (service *Service) Deactivate(ctx context.Context, identityID IdentityID) error {
	operationError := service.store.WithTx(ctx, func(ctx context.Context, transactionStore Store) error {
		identity, err := transactionStore.GetIdentity(ctx, identityID)
		if err != nil {
			return err
		}
		if !identity.Active {
			return nil
		}
		now := service.now()
		identity.Active = false
		identity.UpdatedAt = now
		if err := transactionStore.UpdateIdentity(ctx, identity); err != nil {
			return err
		}
		pending, err := transactionStore.ListPendingRequestsInvolving(ctx, identityID)
		if err != nil {
			return err
		}
		for _, request := range pending {
			err := transactionStore.ResolveRequest(ctx, request.ID, RequestStatusDeclined, nil, now)
			if err != nil && !errors.Is(err, ErrRequestNotPending) {
				return err
			}
		}
		return nil
	})
	service.logOperation(ctx, OperationLog{
		Operation: operationDeactivate,
		ActorID:   identityID,
		Error:     operationError,
	})
	return operationError
}

func ensureGamertagAvailable(ctx context.Context, store Store, gamertag Gamertag, owner IdentityID) error {
	holder, err := store.FindActiveIdentityByGamertag(ctx, gamertag)
	if errors.Is(err, ErrUnknownGamertag) {
		return nil
	}
	if err != nil {
		return err
	}
	if holder.ID == owner {
		return nil
	}
	return ErrDuplicateHandle
}

func (service *Service) resolveRecipient(ctx context.Context, gamertag Gamertag) (Identity, error) {
	if gamertag.value == "" {
		return Identity{}, ErrRecipientNotFound
	}
	recipient, err := service.store.FindActiveIdentityByGamertag(ctx, gamertag)
	if errors.Is(err, ErrUnknownGamertag) {
		return Identity{}, fmt.Errorf("%w: %s", ErrRecipientNotFound, gamertag.String())
	}
	if err != nil {
		return Identity{}, err
	}
	return recipient, nil
}
