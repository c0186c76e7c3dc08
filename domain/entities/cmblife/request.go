package entities

import (
	"cmblife-sdk/domain/constants"
)

// Request records carry the operation-specific arguments. Fields() emits the
// signable map; the client injects mid/aid/date/random before signing.

type ApprovalRequest struct {
	ClientType string
	State      string
	Callback   string
}

func (r ApprovalRequest) Fields() map[string]interface{} {
	return map[string]interface{}{
		constants.FieldClientType:   r.ClientType,
		constants.FieldResponseType: constants.ResponseTypeCode,
		constants.FieldScope:        constants.ScopeAuthBase,
		constants.FieldState:        r.State,
		constants.FieldCallback:     r.Callback,
	}
}

type AccessTokenRequest struct {
	Code string
}

func (r AccessTokenRequest) Fields() map[string]interface{} {
	return map[string]interface{}{
		constants.FieldGrantType: constants.GrantTypeAuthorizationCode,
		constants.FieldCode:      r.Code,
	}
}

type IncreaseTreasureRequest struct {
	OpenID string
	Amount string
}

func (r IncreaseTreasureRequest) Fields() map[string]interface{} {
	return map[string]interface{}{
		constants.FieldOpenID: r.OpenID,
		constants.FieldAmount: r.Amount,
	}
}

type QueryTreasureRequest struct {
	OpenID   string
	RefToken string
}

func (r QueryTreasureRequest) Fields() map[string]interface{} {
	return map[string]interface{}{
		constants.FieldOpenID:   r.OpenID,
		constants.FieldRefToken: r.RefToken,
	}
}
