package daybook

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/PaesslerAG/jsonpath"
)

// RestStore is a DocumentStore client for a hosted JSON document service.
//
// The service exposes one collection per user:
//
//	GET    {base}/users/{uid}/transactions              list documents
//	POST   {base}/users/{uid}/transactions              insert, returns the new id
//	PATCH  {base}/users/{uid}/transactions/{id}         partial update
//	DELETE {base}/users/{uid}/transactions/{id}         delete one
//	POST   {base}/users/{uid}/transactions:batchDelete  atomic batch delete
//
// The batch endpoint is all-or-nothing on the server side, which is what lets
// ClearDay stay consistent without guessing after a partial failure.
type RestStore struct {
	base   string
	client *http.Client
	header http.Header
}

// NewRestStore creates a client for the document service at base
// (e.g. "https://ledger.example.com/v1"). header may carry credentials, or
// be nil.
func NewRestStore(base string, header http.Header) *RestStore {
	return &RestStore{base: base, client: newHTTPClient(), header: header}
}

func (r *RestStore) collection(userID string) string {
	return fmt.Sprintf("%s/users/%s/transactions", r.base, url.PathEscape(userID))
}

func (r *RestStore) document(userID, id string) string {
	return r.collection(userID) + "/" + url.PathEscape(id)
}

// FetchAll lists every document of the user's collection.
func (r *RestStore) FetchAll(ctx context.Context, userID string) ([]Record, error) {
	var jobj any
	if err := jdo(ctx, r.client, http.MethodGet, r.collection(userID), r.header, nil, &jobj); err != nil {
		return nil, err
	}
	jval, err := jsonpath.Get("$.documents", jobj)
	if err != nil {
		return nil, fmt.Errorf("unexpected document list response: %w", err)
	}
	jlist, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("unexpected document list response: %T is not a list", jval)
	}
	recs := make([]Record, 0, len(jlist))
	for _, item := range jlist {
		jmap, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("unexpected document in list: %T is not an object", item)
		}
		recs = append(recs, Record(jmap))
	}
	return recs, nil
}

// Insert adds a document and returns its durable identifier.
func (r *RestStore) Insert(ctx context.Context, userID string, rec Record) (string, error) {
	var jobj any
	if err := jdo(ctx, r.client, http.MethodPost, r.collection(userID), r.header, rec, &jobj); err != nil {
		return "", err
	}
	jval, err := jsonpath.Get("$.id", jobj)
	if err != nil {
		return "", fmt.Errorf("insert response has no id: %w", err)
	}
	// because jsonpath is never clear about wheter it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	id, ok := jval.(string)
	if !ok || id == "" {
		return "", fmt.Errorf("insert response id is not a string: %v", jval)
	}
	return id, nil
}

// UpdateFields applies a partial update to one document.
func (r *RestStore) UpdateFields(ctx context.Context, userID, id string, fields map[string]any) error {
	return jdo(ctx, r.client, http.MethodPatch, r.document(userID, id), r.header, fields, nil)
}

// DeleteOne deletes one document.
func (r *RestStore) DeleteOne(ctx context.Context, userID, id string) error {
	return jdo(ctx, r.client, http.MethodDelete, r.document(userID, id), r.header, nil, nil)
}

// BatchDelete deletes the listed documents atomically.
func (r *RestStore) BatchDelete(ctx context.Context, userID string, ids []string) error {
	body := map[string]any{"ids": ids}
	return jdo(ctx, r.client, http.MethodPost, r.collection(userID)+":batchDelete", r.header, body, nil)
}

var _ DocumentStore = (*RestStore)(nil)
