package entities

import (
	"cmblife-sdk/domain/constants"

	"github.com/spf13/cast"
)

// Response is the raw JSON envelope returned by the gateway. It stays a map
// so signature verification can recompute the canonical string over every
// field the server actually sent.
type Response map[string]interface{}

func (r Response) RespCode() constants.RespCode {
	return constants.RespCode(cast.ToString(r["respCode"]))
}

func (r Response) RespMsg() string {
	return cast.ToString(r["respMsg"])
}

func (r Response) Date() string {
	return cast.ToString(r["date"])
}

func (r Response) Sign() string {
	return cast.ToString(r["sign"])
}

// TokenResponse wraps the accessToken operation envelope.
type TokenResponse struct {
	Response
}

func (r TokenResponse) AccessToken() string {
	return cast.ToString(r.Response["accessToken"])
}

func (r TokenResponse) OpenID() string {
	return cast.ToString(r.Response["openId"])
}

func (r TokenResponse) ExpiresIn() int64 {
	return cast.ToInt64(r.Response["expiresIn"])
}

// TreasureResponse wraps the increaseTreasure and queryIncreaseTreasure
// envelopes.
type TreasureResponse struct {
	Response
}

func (r TreasureResponse) RefToken() string {
	return cast.ToString(r.Response["refToken"])
}

func (r TreasureResponse) OpenID() string {
	return cast.ToString(r.Response["openId"])
}

func (r TreasureResponse) Amount() string {
	return cast.ToString(r.Response["amount"])
}
