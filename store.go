package daybook

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/etnz/daybook/date"
)

// Session carries the optional authenticated identity for one run.
//
// The zero value is an anonymous session: the store then persists to the
// local key-value blob instead of the remote document collection.
type Session struct {
	UserID string
}

// Authenticated reports whether the session carries an identity.
func (s Session) Authenticated() bool { return s.UserID != "" }

// KeyValue is the synchronous local key-value store contract. The store
// serializes the full transaction list as one blob under a fixed key.
type KeyValue interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// blobKey is the fixed key the whole ledger is stored under locally.
const blobKey = "transactions"

// Store owns the in-memory ledger for one session and keeps it synchronized
// with exactly one backing persistence mechanism, chosen once at
// construction: the remote document store when the session is authenticated,
// the local key-value blob otherwise.
//
// Every remote-touching mutation follows the same optimistic protocol: apply
// locally, attempt the remote call, undo via the captured pre-image on
// failure. Local-only mode never needs rollback because the local write is
// synchronous. No mutation retries automatically; each failure is reported
// once and the caller decides.
//
// A Store is confined to a single goroutine. Two in-flight mutations against
// the same record are not serialized: the backing store's last-write-wins
// policy decides.
type Store struct {
	session   Session
	remote    DocumentStore
	local     KeyValue
	useRemote bool

	ledger *Ledger

	// OnChange, when set, is invoked after every change to the in-memory
	// ledger (including rollbacks). It is the single re-render notification
	// point for a presentation layer.
	OnChange func()
}

// NewStore creates a store for one session. remote may be nil (no remote
// backend configured); local must not be.
func NewStore(session Session, remote DocumentStore, local KeyValue) *Store {
	return &Store{
		session:   session,
		remote:    remote,
		local:     local,
		useRemote: session.Authenticated() && remote != nil,
		ledger:    NewLedger(),
	}
}

// Ledger exposes the live in-memory ledger for reading and derivation.
// Callers must not retain the slices it hands out across mutations.
func (s *Store) Ledger() *Ledger { return s.ledger }

func (s *Store) notify() {
	if s.OnChange != nil {
		s.OnChange()
	}
}

// Load fetches the full transaction set from the active backing store and
// replaces the in-memory list, normalizing every record.
//
// A remote fetch failure is not an error: it degrades to the local blob, so
// the user sees stale local data rather than an empty ledger.
func (s *Store) Load(ctx context.Context) {
	var txs []Transaction
	if s.useRemote {
		recs, err := s.remote.FetchAll(ctx, s.session.UserID)
		if err == nil {
			txs = make([]Transaction, 0, len(recs))
			for _, rec := range recs {
				id, _ := rec["id"].(string)
				txs = append(txs, decodeRecord(id, rec))
			}
		} else {
			log.Printf("remote fetch failed, falling back to local data: %v", err)
			txs = s.loadLocal()
		}
	} else {
		txs = s.loadLocal()
	}

	ref := date.Today()
	for i := range txs {
		txs[i] = txs[i].Normalize(ref)
	}
	s.ledger.Replace(txs)
	s.notify()
}

func (s *Store) loadLocal() []Transaction {
	blob, ok, err := s.local.Get(blobKey)
	if err != nil {
		log.Printf("local read failed, starting empty: %v", err)
		return nil
	}
	if !ok {
		return nil
	}
	txs, err := unmarshalBlob(blob)
	if err != nil {
		log.Printf("local blob is malformed, starting empty: %v", err)
		return nil
	}
	return txs
}

// persistLocal writes the whole ledger back as the local blob.
func (s *Store) persistLocal() error {
	blob, err := marshalBlob(s.ledger)
	if err != nil {
		return err
	}
	if err := s.local.Set(blobKey, blob); err != nil {
		return fmt.Errorf("cannot persist ledger locally: %w", err)
	}
	return nil
}

// commit finishes a mutation that has already been applied optimistically to
// the in-memory ledger. In local mode it persists synchronously. In remote
// mode it attempts the remote call and, on failure, undoes the local change
// via the captured pre-image and reports a SyncError once.
//
// Every mutating operation goes through here; there is no per-operation
// rollback logic.
func (s *Store) commit(ctx context.Context, op string, remote func(context.Context) error, undo func()) error {
	if !s.useRemote {
		if err := s.persistLocal(); err != nil {
			return err
		}
		s.notify()
		return nil
	}
	if err := remote(ctx); err != nil {
		undo()
		s.notify()
		return syncErr(op, err)
	}
	s.notify()
	return nil
}

// Input is a user submission for a new ledger entry. Amount is the raw input
// string, evaluated as a restricted arithmetic expression.
type Input struct {
	Title    string
	Amount   string
	Type     Type
	Category string
	Notes    string
	Day      date.Date // zero means the current day
}

// Create validates the input and appends a new entry.
//
// The entry is applied optimistically under a placeholder identifier; the
// durable identifier comes from the remote store on success, or is assigned
// synchronously in local mode. On remote failure the optimistic entry is
// removed and a SyncError returned.
func (s *Store) Create(ctx context.Context, in Input) (Transaction, error) {
	amount, err := EvalAmount(in.Amount)
	if err != nil {
		return Transaction{}, err
	}
	day := in.Day
	if day.IsZero() {
		day = date.Today()
	}
	tx := Transaction{
		ID:       newPendingID(),
		Title:    strings.TrimSpace(in.Title),
		Amount:   amount,
		Type:     in.Type,
		Category: in.Category,
		Notes:    in.Notes,
		At:       now().UnixMilli(),
		Day:      day,
	}
	tx = tx.Normalize(day)
	if err := tx.Validate(); err != nil {
		return Transaction{}, err
	}

	pending := tx.ID
	s.ledger.Append(tx)

	if !s.useRemote {
		// Assign the final local identifier synchronously.
		tx.ID = newID()
		s.ledger.set(pending, tx)
	}

	err = s.commit(ctx, "create",
		func(ctx context.Context) error {
			id, err := s.remote.Insert(ctx, s.session.UserID, tx.record())
			if err != nil {
				return err
			}
			// Replace the placeholder with the durable identifier, in place.
			tx.ID = id
			s.ledger.set(pending, tx)
			return nil
		},
		func() { s.ledger.remove(pending) },
	)
	if err != nil {
		return Transaction{}, err
	}
	return tx, nil
}

// Update applies a partial update to an existing entry. It reports
// ErrNotFound for an unknown identifier and a ValidationError when the patch
// would leave the entry invalid, in both cases without touching any state.
// On remote failure the entry reverts to its pre-patch value.
func (s *Store) Update(ctx context.Context, id string, p Patch) (Transaction, error) {
	old, ok := s.ledger.Get(id)
	if !ok {
		return Transaction{}, fmt.Errorf("cannot update %q: %w", id, ErrNotFound)
	}
	updated := p.apply(old)
	if err := updated.Validate(); err != nil {
		return Transaction{}, err
	}

	s.ledger.set(id, updated)

	err := s.commit(ctx, "update",
		func(ctx context.Context) error {
			return s.remote.UpdateFields(ctx, s.session.UserID, id, p.fields())
		},
		func() { s.ledger.set(id, old) },
	)
	if err != nil {
		return Transaction{}, err
	}
	return updated, nil
}

// Remove deletes an entry. It reports ErrNotFound for an unknown identifier
// without side effects. On remote failure the full pre-removal list is
// restored.
func (s *Store) Remove(ctx context.Context, id string) error {
	if _, ok := s.ledger.Get(id); !ok {
		return fmt.Errorf("cannot remove %q: %w", id, ErrNotFound)
	}
	before := s.ledger.snapshot()
	s.ledger.remove(id)

	return s.commit(ctx, "remove",
		func(ctx context.Context) error {
			return s.remote.DeleteOne(ctx, s.session.UserID, id)
		},
		func() { s.ledger.Replace(before) },
	)
}

// ClearDay removes every entry recorded on the given day, as a single
// logical batch. Against the remote store the batch is atomic: on failure
// nothing is considered removed and the in-memory list is restored, so the
// remote store and the ledger never diverge.
func (s *Store) ClearDay(ctx context.Context, day date.Date) error {
	var ids []string
	for _, tx := range s.ledger.Transactions(OnDay(day)) {
		ids = append(ids, tx.ID)
	}
	if len(ids) == 0 {
		return nil
	}
	before := s.ledger.snapshot()
	for _, id := range ids {
		s.ledger.remove(id)
	}

	return s.commit(ctx, "clear-day",
		func(ctx context.Context) error {
			return s.remote.BatchDelete(ctx, s.session.UserID, ids)
		},
		func() { s.ledger.Replace(before) },
	)
}

// Flush persists the ledger a last time at session end. In remote mode every
// mutation has already been confirmed, so this is a no-op.
func (s *Store) Flush() error {
	if s.useRemote {
		return nil
	}
	return s.persistLocal()
}
