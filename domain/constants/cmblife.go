package constants

// Operation names on the open platform. Deep-link operations are addressed
// through the cmblife:// scheme, JSON operations through the gateway path.
const (
	OpApproval              = "approval"
	OpAccessToken           = "accessToken"
	OpIncreaseTreasure      = "increaseTreasure"
	OpQueryIncreaseTreasure = "queryIncreaseTreasure"
)

const (
	// DefaultHost is the production gateway of the open platform.
	DefaultHost = "open.cmbchina.com"

	// GatewayPathFormat is the per-operation POST path.
	GatewayPathFormat = "/AccessGateway/transIn/%s.json"

	// LifeScheme prefixes every deep-link operation.
	LifeScheme = "cmblife://"
)

const (
	ClientTypeApp = "app"
	ClientTypeH5  = "h5"

	DefaultClientType = ClientTypeH5

	GrantTypeAuthorizationCode = "authorization_code"
	ResponseTypeCode           = "code"
	ScopeAuthBase              = "auth_base"
)

const (
	// DateLayout renders the signable timestamp, local time.
	DateLayout = "20060102150405"

	// DefaultNonceLength is the hex character count of the random field.
	DefaultNonceLength = 16
)

// RespCode is the platform response code carried in respCode.
type RespCode string

const (
	RespCodeSuccess RespCode = "1000"
)

func (code RespCode) IsSuccess() bool {
	return code == RespCodeSuccess
}

// Signable field names shared by every operation.
const (
	FieldMerchantID   = "mid"
	FieldAppID        = "aid"
	FieldClientType   = "clientType"
	FieldDate         = "date"
	FieldRandom       = "random"
	FieldSign         = "sign"
	FieldState        = "state"
	FieldCallback     = "callback"
	FieldResponseType = "responseType"
	FieldScope        = "scope"
	FieldGrantType    = "grantType"
	FieldCode         = "code"
	FieldOpenID       = "openId"
	FieldAmount       = "amount"
	FieldRefToken     = "refToken"
)
