// Copyright The AtlanticWave-SDX contributors.
// SPDX-License-Identifier: MIT

package sdx

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/atlanticwave-sdx/sdxlib-go/internal/domain/model"
	"github.com/atlanticwave-sdx/sdxlib-go/internal/domain/port"
	"github.com/atlanticwave-sdx/sdxlib-go/pkg/constants"
	"github.com/atlanticwave-sdx/sdxlib-go/pkg/errors"
	"github.com/atlanticwave-sdx/sdxlib-go/pkg/httpclient"
)

// Client translates L2VPN lifecycle operations into REST calls against the
// SDX controller, attaching the bearer credential on every request. It
// implements port.Provisioner and port.TopologySource.
type Client struct {
	config     Config
	creds      port.CredentialSource
	httpClient *httpclient.Client

	session *model.Session
}

// NewClient creates a new SDX controller client
func NewClient(config Config, creds port.CredentialSource) *Client {
	httpConfig := httpclient.Config{
		Timeout:      config.Timeout,
		MaxRetries:   config.MaxRetries,
		RetryDelay:   config.RetryDelay,
		RetryBackoff: true,
		UserAgent:    "sdxlib-go/" + config.Version,
	}

	return &Client{
		config:     config,
		creds:      creds,
		httpClient: httpclient.NewClient(httpConfig),
	}
}

// CreateL2VPN submits a creation request and returns the server-assigned
// service id. Input is assumed to be validated by the service layer; any
// rejection here came from the controller.
func (c *Client) CreateL2VPN(ctx context.Context, req model.CreateRequest) (string, error) {
	payload := createPayload{
		Name:          req.Name,
		Endpoints:     req.Endpoints,
		Description:   req.Description,
		Notifications: req.Notifications,
		Scheduling:    req.Scheduling,
		QoSMetrics:    req.QoSMetrics,
	}
	if c.session != nil {
		payload.Ownership = c.session.Ownership
	}

	var created createResponse
	if err := c.makeRequest(ctx, http.MethodPost, c.l2vpnURL(), payload, &created); err != nil {
		return "", err
	}

	for _, warning := range created.Warnings {
		slog.WarnContext(ctx, "controller accepted L2VPN with warning",
			"service_id", created.ServiceID,
			"warning", warning,
		)
	}

	return created.ServiceID, nil
}

// GetL2VPN returns one service by id, or NotFound when the controller does
// not know the id.
func (c *Client) GetL2VPN(ctx context.Context, serviceID string) (*model.L2VPN, error) {
	var body json.RawMessage
	if err := c.makeRequest(ctx, http.MethodGet, c.l2vpnURL(serviceID), nil, &body); err != nil {
		return nil, err
	}
	return decodeL2VPNDocument(body, serviceID)
}

// ListL2VPNs returns all services owned by the caller's credential, keyed
// by service id.
func (c *Client) ListL2VPNs(ctx context.Context, archived bool) (map[string]model.L2VPN, error) {
	url := c.l2vpnURL()
	if archived {
		url = c.l2vpnURL("archived")
	}

	services := map[string]model.L2VPN{}
	if err := c.makeRequest(ctx, http.MethodGet, url, nil, &services); err != nil {
		return nil, err
	}

	for id, svc := range services {
		if svc.ServiceID == "" {
			svc.ServiceID = id
			services[id] = svc
		}
	}
	return services, nil
}

// UpdateL2VPN patches the mutable attributes of a service.
func (c *Client) UpdateL2VPN(ctx context.Context, serviceID string, req model.UpdateRequest) error {
	payload := updatePayload{
		ServiceID:   serviceID,
		Name:        req.Name,
		Description: req.Description,
		State:       req.State,
	}
	return c.makeRequest(ctx, http.MethodPatch, c.l2vpnURL(serviceID), payload, nil)
}

// DeleteL2VPN removes a service by id. Deleting an id the controller does
// not know is reported as NotFound so callers can tell "nothing to delete"
// from "deleted".
func (c *Client) DeleteL2VPN(ctx context.Context, serviceID string) error {
	return c.makeRequest(ctx, http.MethodDelete, c.l2vpnURL(serviceID), nil, nil)
}

// GetTopology fetches the controller's network view.
func (c *Client) GetTopology(ctx context.Context) (*model.Topology, error) {
	var topology model.Topology
	if err := c.makeRequest(ctx, http.MethodGet, c.topologyURL(), nil, &topology); err != nil {
		return nil, err
	}
	return &topology, nil
}

// Login establishes a controller-side user session from the credential's
// claims and remembers it for subsequent create calls.
func (c *Client) Login(ctx context.Context) (*model.Session, error) {
	ownership, err := c.creds.Ownership()
	if err != nil {
		return nil, err
	}

	claims := c.creds.Claims()
	payload := loginPayload{
		Source:    c.config.Source,
		Ownership: ownership,
		Email:     claims.Email,
		EPPN:      claims.EPPN,
		FirstName: claims.GivenName,
		LastName:  claims.FamilyName,
		Role:      "researcher",
	}

	var session model.Session
	if err := c.makeRequest(ctx, http.MethodPost, c.loginURL(), payload, &session); err != nil {
		return nil, err
	}
	if session.Ownership == "" {
		session.Ownership = ownership
	}
	session.Source = c.config.Source

	c.session = &session
	slog.DebugContext(ctx, "established controller session",
		"user_id", session.UserID,
		"ownership", session.Ownership,
	)
	return &session, nil
}

// IsReady checks that the controller answers on its topology endpoint.
func (c *Client) IsReady(ctx context.Context) error {
	var topology model.Topology
	if err := c.makeRequest(ctx, http.MethodGet, c.topologyURL(), nil, &topology); err != nil {
		return errors.NewUnexpected("SDX controller is not reachable", err)
	}
	return nil
}

// makeRequest performs one controller call and translates the outcome into
// a domain result or error.
func (c *Client) makeRequest(ctx context.Context, method, url string, payload, out any) error {
	headers := map[string]string{
		constants.AuthorizationHeader: fmt.Sprintf("Bearer %s", c.creds.Bearer()),
	}

	resp, err := c.httpClient.RequestJSON(ctx, method, url, payload, headers)
	if err != nil {
		return translateError(err)
	}

	if out != nil && len(resp.Body) > 0 {
		if err := json.Unmarshal(resp.Body, out); err != nil {
			return errors.NewUnexpected("failed to decode controller response", err)
		}
	}
	return nil
}

// translateError maps transport outcomes onto the error taxonomy. Server
// rejections keep their status and message; nothing is swallowed.
func translateError(err error) error {
	httpErr, ok := err.(*httpclient.StatusError)
	if !ok {
		return errors.NewUnexpected("request failed", err)
	}

	if httpErr.StatusCode == http.StatusNotFound {
		return errors.NewNotFound("service id is unknown to the controller")
	}

	message, ok := statusMessages[httpErr.StatusCode]
	if !ok {
		message = "unexpected controller error"
	}

	details := strings.TrimSpace(string(httpErr.Body))
	var body errorResponse
	if jsonErr := json.Unmarshal(httpErr.Body, &body); jsonErr == nil && body.Error != "" {
		details = body.Error
	}

	if details != "" {
		return errors.NewService(httpErr.StatusCode, message, fmt.Errorf("%s", details))
	}
	return errors.NewService(httpErr.StatusCode, message)
}

// decodeL2VPNDocument accepts both response shapes the controller emits for
// a single service: a bare document, or a one-entry map keyed by the id. A
// bare document never unmarshals as the keyed form because its string-valued
// fields reject the map's struct values.
func decodeL2VPNDocument(body json.RawMessage, serviceID string) (*model.L2VPN, error) {
	var keyed map[string]model.L2VPN
	if err := json.Unmarshal(body, &keyed); err == nil {
		svc, ok := keyed[serviceID]
		if !ok {
			return nil, errors.NewUnexpected(fmt.Sprintf("controller response does not contain service %s", serviceID))
		}
		if svc.ServiceID == "" {
			svc.ServiceID = serviceID
		}
		return &svc, nil
	}

	var svc model.L2VPN
	if err := json.Unmarshal(body, &svc); err != nil {
		return nil, errors.NewUnexpected("failed to decode L2VPN document", err)
	}
	if svc.ServiceID == "" {
		svc.ServiceID = serviceID
	}
	return &svc, nil
}

func (c *Client) l2vpnURL(parts ...string) string {
	segments := append([]string{"l2vpn", c.config.Version}, parts...)
	return c.config.BaseURL + "/" + strings.Join(segments, "/")
}

func (c *Client) topologyURL() string {
	return fmt.Sprintf("%s/topology/%s", c.config.BaseURL, c.config.Version)
}

// loginURL is the session endpoint at the controller root, one path level
// above the environment-specific base URL.
func (c *Client) loginURL() string {
	parsed, err := url.Parse(c.config.BaseURL)
	if err != nil || parsed.Path == "" {
		return c.config.BaseURL + "/login/"
	}
	parsed.Path = path.Dir(parsed.Path)
	return strings.TrimRight(parsed.String(), "/") + "/login/"
}
