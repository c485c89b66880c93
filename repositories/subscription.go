package repositories

import (
	"encoding/json"
	goerrors "errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"inbox-lab/domain/event"
	"inbox-lab/errors"
)

// SubscriptionRepository keeps webhook subscriptions in BadgerDB under
// sub:{org_id}:{name} keys, one record per subscription.
type SubscriptionRepository struct {
	db *badger.DB
}

func NewSubscriptionRepository(db *badger.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (s *SubscriptionRepository) Save(sub event.Subscription) error {
	if sub.RetryPolicy == (event.RetryPolicy{}) {
		sub.RetryPolicy = event.DefaultRetryPolicy
	}
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now().UTC()
	}
	record, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(subscriptionKey(sub.OrganizationID, sub.Name)), record)
	})
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}
	return nil
}

func (s *SubscriptionRepository) Get(organizationID, name string) (event.Subscription, error) {
	var sub event.Subscription
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(subscriptionKey(organizationID, name)))
		if err != nil {
			return err
		}
		return decodeItem(item, &sub)
	})
	if goerrors.Is(err, badger.ErrKeyNotFound) {
		return event.Subscription{}, fmt.Errorf("%w: %s/%s", errors.ErrSubscriptionNotFound, organizationID, name)
	}
	if err != nil {
		return event.Subscription{}, fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}
	return sub, nil
}

func (s *SubscriptionRepository) Delete(organizationID, name string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(subscriptionKey(organizationID, name)))
	})
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}
	return nil
}

func (s *SubscriptionRepository) ListByOrganization(organizationID string) ([]event.Subscription, error) {
	var subs []event.Subscription
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(fmt.Sprintf("sub:%s:", organizationID))
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var sub event.Subscription
			if err := decodeItem(it.Item(), &sub); err != nil {
				return err
			}
			subs = append(subs, sub)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}
	return subs, nil
}

func subscriptionKey(organizationID, name string) string {
	return fmt.Sprintf("sub:%s:%s", organizationID, name)
}
