package cmblife_service

import (
	"context"
	"crypto/rsa"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"

	"cmblife-sdk/domain/constants"
	entities "cmblife-sdk/domain/entities/cmblife"
	"cmblife-sdk/errors"
	"cmblife-sdk/utils/crypt"
	"cmblife-sdk/utils/helpers"

	"github.com/spf13/cast"
	"go.uber.org/zap"
)

// Config is the construction-time merchant configuration. Key material is
// read once and held for the process lifetime; it is never reloaded.
type Config struct {
	MerchantID     string
	AppID          string
	PrivateKeyPath string
	PublicKeyPath  string

	// Inline PEM material takes precedence over the path fields.
	PrivateKeyPEM []byte
	PublicKeyPEM  []byte

	// ClientType is "app" or "h5". Default "h5".
	ClientType string

	// Host defaults to open.cmbchina.com; a scheme may be included.
	Host string

	// HTTPClient overrides the transport client. The SDK enforces no
	// timeout of its own; set one here or cancel via context.
	HTTPClient *http.Client
}

// Client is the facade over the open platform. Immutable configuration,
// stateless per-call methods; concurrent use needs no locking.
type Client struct {
	merchantID string
	appID      string
	clientType string
	baseURL    string
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	httpClient *http.Client
	Logger     *zap.Logger
}

func NewClient(cfg Config, logger *zap.Logger) (*Client, error) {
	if cfg.MerchantID == "" {
		return nil, errors.ErrMissingMerchantID
	}
	if cfg.AppID == "" {
		return nil, errors.ErrMissingAppID
	}

	privatePEM := cfg.PrivateKeyPEM
	if privatePEM == nil {
		if cfg.PrivateKeyPath == "" {
			return nil, errors.ErrMissingPrivateKey
		}
		data, err := ioutil.ReadFile(cfg.PrivateKeyPath)
		if err != nil {
			return nil, &errors.ConfigError{Reason: "read private key", Err: err}
		}
		privatePEM = data
	}
	privateKey, err := crypt.ParsePrivateKeyPEM(privatePEM)
	if err != nil {
		return nil, &errors.ConfigError{Reason: "parse private key", Err: err}
	}

	var publicKey *rsa.PublicKey
	publicPEM := cfg.PublicKeyPEM
	if publicPEM == nil && cfg.PublicKeyPath != "" {
		data, err := ioutil.ReadFile(cfg.PublicKeyPath)
		if err != nil {
			return nil, &errors.ConfigError{Reason: "read public key", Err: err}
		}
		publicPEM = data
	}
	if publicPEM != nil {
		publicKey, err = crypt.ParsePublicKeyPEM(publicPEM)
		if err != nil {
			return nil, &errors.ConfigError{Reason: "parse public key", Err: err}
		}
	}

	clientType := cfg.ClientType
	if clientType == "" {
		clientType = constants.DefaultClientType
	}

	host := cfg.Host
	if host == "" {
		host = constants.DefaultHost
	}
	if !strings.Contains(host, "://") {
		host = "https://" + host
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = new(http.Client)
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		merchantID: cfg.MerchantID,
		appID:      cfg.AppID,
		clientType: clientType,
		baseURL:    strings.TrimRight(host, "/"),
		privateKey: privateKey,
		publicKey:  publicKey,
		httpClient: httpClient,
		Logger:     logger,
	}, nil
}

// ApprovalLink builds the signed cmblife:// authorization deep link. No
// network call is made; the companion app consumes the URL directly.
func (c *Client) ApprovalLink(state, callback string) (string, error) {
	req := entities.ApprovalRequest{
		ClientType: c.clientType,
		State:      state,
		Callback:   callback,
	}

	fields := c.commonFields(req.Fields())
	if err := c.SignLife(constants.OpApproval, fields); err != nil {
		return "", err
	}

	return renderDeepLink(constants.OpApproval, fields), nil
}

// ApprovalLinkEncoded percent-encodes field values before signing, the way
// the first generation of the gateway verified approval links.
//
// Deprecated: the supported scheme signs raw values and encodes only the
// emitted URL. Use ApprovalLink unless the remote verifier is on the legacy
// contract; the two forms are not byte-compatible.
func (c *Client) ApprovalLinkEncoded(state, callback string) (string, error) {
	req := entities.ApprovalRequest{
		ClientType: c.clientType,
		State:      state,
		Callback:   callback,
	}

	fields := c.commonFields(req.Fields())
	if err := injectDefaults(fields); err != nil {
		return "", err
	}
	for k, v := range fields {
		fields[k] = url.QueryEscape(cast.ToString(v))
	}
	if err := c.SignLife(constants.OpApproval, fields); err != nil {
		return "", err
	}

	// Values were encoded before signing, so only the signature itself
	// still needs escaping.
	keys := helpers.Ksort(fields)
	pairs := make([]string, 0, len(keys)+1)
	for _, k := range keys {
		pairs = append(pairs, k+"="+cast.ToString(fields[k]))
	}
	pairs = append(pairs, constants.FieldSign+"="+url.QueryEscape(cast.ToString(fields[constants.FieldSign])))

	return constants.LifeScheme + constants.OpApproval + "?" + strings.Join(pairs, "&"), nil
}

// AccessToken exchanges an authorization code for an access token.
func (c *Client) AccessToken(ctx context.Context, code string) (response entities.TokenResponse, err error) {
	fields := c.commonFields(entities.AccessTokenRequest{Code: code}.Fields())
	if err = c.SignJSON(constants.OpAccessToken, fields); err != nil {
		return response, err
	}

	raw, err := c.httpRequest(ctx, constants.OpAccessToken, fields)
	if err != nil {
		return response, err
	}

	return entities.TokenResponse{Response: raw}, nil
}

// IncreaseTreasure credits treasure to the user identified by openID.
func (c *Client) IncreaseTreasure(ctx context.Context, openID string, amount int64) (response entities.TreasureResponse, err error) {
	req := entities.IncreaseTreasureRequest{
		OpenID: openID,
		Amount: cast.ToString(amount),
	}

	fields := c.commonFields(req.Fields())
	if err = c.SignJSON(constants.OpIncreaseTreasure, fields); err != nil {
		return response, err
	}

	raw, err := c.httpRequest(ctx, constants.OpIncreaseTreasure, fields)
	if err != nil {
		return response, err
	}

	return entities.TreasureResponse{Response: raw}, nil
}

// QueryIncreaseTreasure looks up the state of an earlier credit by its
// reference token.
func (c *Client) QueryIncreaseTreasure(ctx context.Context, openID, refToken string) (response entities.TreasureResponse, err error) {
	req := entities.QueryTreasureRequest{
		OpenID:   openID,
		RefToken: refToken,
	}

	fields := c.commonFields(req.Fields())
	if err = c.SignJSON(constants.OpQueryIncreaseTreasure, fields); err != nil {
		return response, err
	}

	raw, err := c.httpRequest(ctx, constants.OpQueryIncreaseTreasure, fields)
	if err != nil {
		return response, err
	}

	return entities.TreasureResponse{Response: raw}, nil
}

// VerifyResponse checks the sign field of a gateway envelope against the
// configured public key. Missing public key or missing sign is false, not
// an error; verification is optional and fails closed.
func (c *Client) VerifyResponse(response entities.Response) bool {
	if c.publicKey == nil {
		return false
	}
	sign := response.Sign()
	if sign == "" {
		return false
	}

	// The canonicalizer skips the sign field, so the envelope verifies
	// over everything else the server sent, with no prefix.
	return crypt.VerifySHA256RSA(helpers.CanonicalString(response), sign, c.publicKey)
}

func (c *Client) commonFields(fields map[string]interface{}) map[string]interface{} {
	fields[constants.FieldMerchantID] = c.merchantID
	fields[constants.FieldAppID] = c.appID
	return fields
}

func renderDeepLink(op string, fields map[string]interface{}) string {
	keys := helpers.Ksort(fields)
	pairs := make([]string, 0, len(keys)+1)
	for _, k := range keys {
		pairs = append(pairs, k+"="+url.QueryEscape(cast.ToString(fields[k])))
	}
	// sign always trails the sorted pairs
	pairs = append(pairs, constants.FieldSign+"="+url.QueryEscape(cast.ToString(fields[constants.FieldSign])))

	return constants.LifeScheme + op + "?" + strings.Join(pairs, "&")
}
