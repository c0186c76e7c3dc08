package entities

import (
	"encoding/json"
	"testing"
)

func Test_Response_Accessors(t *testing.T) {
	// decoded the way the transport decodes it, so numbers are float64
	var r Response
	if err := json.Unmarshal([]byte(`{
		"respCode": "1000",
		"respMsg": "ok",
		"date": "20210101000000",
		"sign": "c2ln",
		"accessToken": "tok",
		"openId": "u1",
		"expiresIn": 7776000
	}`), &r); err != nil {
		t.Fatal(err)
	}

	if !r.RespCode().IsSuccess() {
		t.Error("RespCode().IsSuccess() = false for 1000")
	}
	if r.RespMsg() != "ok" {
		t.Errorf("RespMsg() = %v", r.RespMsg())
	}
	if r.Sign() != "c2ln" {
		t.Errorf("Sign() = %v", r.Sign())
	}

	token := TokenResponse{Response: r}
	if token.AccessToken() != "tok" || token.OpenID() != "u1" {
		t.Errorf("token accessors = %v %v", token.AccessToken(), token.OpenID())
	}
	if token.ExpiresIn() != 7776000 {
		t.Errorf("ExpiresIn() = %v", token.ExpiresIn())
	}
}

func Test_Response_FailureCode(t *testing.T) {
	r := Response{"respCode": "4004", "respMsg": "invalid sign"}
	if r.RespCode().IsSuccess() {
		t.Error("RespCode().IsSuccess() = true for 4004")
	}
}

func Test_Request_Fields(t *testing.T) {
	fields := ApprovalRequest{ClientType: "h5", State: "s1", Callback: "http://cb"}.Fields()
	if fields["state"] != "s1" || fields["callback"] != "http://cb" {
		t.Errorf("ApprovalRequest.Fields() = %v", fields)
	}
	if fields["responseType"] != "code" || fields["scope"] != "auth_base" {
		t.Errorf("ApprovalRequest.Fields() fixed fields = %v", fields)
	}

	fields = AccessTokenRequest{Code: "c1"}.Fields()
	if fields["grantType"] != "authorization_code" || fields["code"] != "c1" {
		t.Errorf("AccessTokenRequest.Fields() = %v", fields)
	}
}
