package seq

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/dc-tec/seq-operator/internal/constants"
)

// Every entity collection follows the same shape: GET/POST on the collection,
// GET/PUT/DELETE on collection/{id}, and GET collection/template for a new document
// with server defaults.

func listEntities[T any](ctx context.Context, c *Client, collection string, query url.Values) ([]T, error) {
	path := collection
	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	var out []T
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func getEntity[T any](ctx context.Context, c *Client, collection, id string) (*T, error) {
	if id == "" {
		return nil, fmt.Errorf("id is required")
	}
	var out T
	if err := c.getJSON(ctx, collection+"/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func templateEntity[T any](ctx context.Context, c *Client, collection string) (*T, error) {
	var out T
	if err := c.getJSON(ctx, collection+"/template", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func createEntity[T any](ctx context.Context, c *Client, collection string, in *T) (*T, error) {
	var out T
	if err := c.sendJSON(ctx, http.MethodPost, collection, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func updateEntity[T any](ctx context.Context, c *Client, collection, id string, in *T) error {
	if id == "" {
		return fmt.Errorf("id is required")
	}
	return c.sendJSON(ctx, http.MethodPut, collection+"/"+url.PathEscape(id), in, nil)
}

func deleteEntity(ctx context.Context, c *Client, collection, id string) error {
	if id == "" {
		return fmt.Errorf("id is required")
	}
	return c.sendJSON(ctx, http.MethodDelete, collection+"/"+url.PathEscape(id), nil, nil)
}

func ownerQuery(ownerID string) url.Values {
	q := url.Values{}
	if ownerID != "" {
		q.Set("ownerId", ownerID)
	} else {
		q.Set("shared", "true")
	}
	return q
}

// ListAPIKeys lists the keys of ownerID, or shared keys when ownerID is empty.
func (c *Client) ListAPIKeys(ctx context.Context, ownerID string) ([]APIKey, error) {
	return listEntities[APIKey](ctx, c, constants.APIPathAPIKeys, ownerQuery(ownerID))
}

func (c *Client) GetAPIKey(ctx context.Context, id string) (*APIKey, error) {
	return getEntity[APIKey](ctx, c, constants.APIPathAPIKeys, id)
}

func (c *Client) APIKeyTemplate(ctx context.Context) (*APIKey, error) {
	return templateEntity[APIKey](ctx, c, constants.APIPathAPIKeys)
}

// CreateAPIKey creates a key. The returned document carries the token, which the
// server never discloses again.
func (c *Client) CreateAPIKey(ctx context.Context, key *APIKey) (*APIKey, error) {
	return createEntity(ctx, c, constants.APIPathAPIKeys, key)
}

func (c *Client) UpdateAPIKey(ctx context.Context, key *APIKey) error {
	return updateEntity(ctx, c, constants.APIPathAPIKeys, key.ID, key)
}

func (c *Client) DeleteAPIKey(ctx context.Context, id string) error {
	return deleteEntity(ctx, c, constants.APIPathAPIKeys, id)
}

// ListAlerts lists the alerts of ownerID, or shared alerts when ownerID is empty.
func (c *Client) ListAlerts(ctx context.Context, ownerID string) ([]Alert, error) {
	return listEntities[Alert](ctx, c, constants.APIPathAlerts, ownerQuery(ownerID))
}

func (c *Client) GetAlert(ctx context.Context, id string) (*Alert, error) {
	return getEntity[Alert](ctx, c, constants.APIPathAlerts, id)
}

func (c *Client) AlertTemplate(ctx context.Context) (*Alert, error) {
	return templateEntity[Alert](ctx, c, constants.APIPathAlerts)
}

func (c *Client) CreateAlert(ctx context.Context, alert *Alert) (*Alert, error) {
	return createEntity(ctx, c, constants.APIPathAlerts, alert)
}

func (c *Client) UpdateAlert(ctx context.Context, alert *Alert) error {
	return updateEntity(ctx, c, constants.APIPathAlerts, alert.ID, alert)
}

func (c *Client) DeleteAlert(ctx context.Context, id string) error {
	return deleteEntity(ctx, c, constants.APIPathAlerts, id)
}

// ListSignals lists the signals of ownerID, or shared signals when ownerID is empty.
func (c *Client) ListSignals(ctx context.Context, ownerID string) ([]Signal, error) {
	return listEntities[Signal](ctx, c, constants.APIPathSignals, ownerQuery(ownerID))
}

func (c *Client) GetSignal(ctx context.Context, id string) (*Signal, error) {
	return getEntity[Signal](ctx, c, constants.APIPathSignals, id)
}

func (c *Client) SignalTemplate(ctx context.Context) (*Signal, error) {
	return templateEntity[Signal](ctx, c, constants.APIPathSignals)
}

func (c *Client) CreateSignal(ctx context.Context, signal *Signal) (*Signal, error) {
	return createEntity(ctx, c, constants.APIPathSignals, signal)
}

func (c *Client) UpdateSignal(ctx context.Context, signal *Signal) error {
	return updateEntity(ctx, c, constants.APIPathSignals, signal.ID, signal)
}

func (c *Client) DeleteSignal(ctx context.Context, id string) error {
	return deleteEntity(ctx, c, constants.APIPathSignals, id)
}

// ListRetentionPolicies lists all retention policies.
func (c *Client) ListRetentionPolicies(ctx context.Context) ([]RetentionPolicy, error) {
	return listEntities[RetentionPolicy](ctx, c, constants.APIPathRetentionPolicies, nil)
}

func (c *Client) GetRetentionPolicy(ctx context.Context, id string) (*RetentionPolicy, error) {
	return getEntity[RetentionPolicy](ctx, c, constants.APIPathRetentionPolicies, id)
}

func (c *Client) CreateRetentionPolicy(ctx context.Context, policy *RetentionPolicy) (*RetentionPolicy, error) {
	return createEntity(ctx, c, constants.APIPathRetentionPolicies, policy)
}

func (c *Client) UpdateRetentionPolicy(ctx context.Context, policy *RetentionPolicy) error {
	return updateEntity(ctx, c, constants.APIPathRetentionPolicies, policy.ID, policy)
}

func (c *Client) DeleteRetentionPolicy(ctx context.Context, id string) error {
	return deleteEntity(ctx, c, constants.APIPathRetentionPolicies, id)
}
