package cmblife_service

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"

	"cmblife-sdk/domain/constants"
	entities "cmblife-sdk/domain/entities/cmblife"
	"cmblife-sdk/errors"

	"github.com/spf13/cast"
	"go.uber.org/zap/zapcore"
)

// httpRequest POSTs the signed fields as a url-encoded form and parses the
// JSON envelope. One request, no retries; deadlines come from the caller's
// context or an injected http.Client.
func (c *Client) httpRequest(ctx context.Context, op string, fields map[string]interface{}) (response entities.Response, err error) {
	uri := c.baseURL + fmt.Sprintf(constants.GatewayPathFormat, op)

	form := url.Values{}
	for k, v := range fields {
		form.Set(k, cast.ToString(v))
	}
	body := form.Encode()

	c.Logger.With(zapcore.Field{
		Key:    "uri",
		Type:   zapcore.StringType,
		String: uri,
	}).With(zapcore.Field{
		Key:    "request",
		Type:   zapcore.StringType,
		String: body,
	}).Info("cmblife_request")

	req, err := http.NewRequestWithContext(ctx, "POST", uri, strings.NewReader(body))
	if err != nil {
		return nil, &errors.NetworkError{Err: err}
	}
	req.Header.Add("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &errors.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// body intentionally unread
		return nil, &errors.HttpError{StatusCode: resp.StatusCode}
	}

	responseByte, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, &errors.NetworkError{Err: err}
	}

	c.Logger.With(zapcore.Field{
		Key:    "uri",
		Type:   zapcore.StringType,
		String: uri,
	}).With(zapcore.Field{
		Key:    "response",
		Type:   zapcore.StringType,
		String: string(responseByte),
	}).Info("cmblife_response")

	if err = json.Unmarshal(responseByte, &response); err != nil {
		return nil, &errors.ProtocolError{Err: err}
	}

	return response, nil
}
