package cmblife_service

import (
	"time"

	"cmblife-sdk/domain/constants"
	"cmblife-sdk/errors"
	"cmblife-sdk/utils/crypt"
	"cmblife-sdk/utils/helpers"
)

// SignJSON signs fields for a gateway POST operation ("<op>.json" prefix).
// Pre-set date or random fields are kept; a custom nonce length can be
// chosen by filling random with helpers.NonceHex before signing.
func (c *Client) SignJSON(op string, fields map[string]interface{}) error {
	return c.signPayload(op+".json", fields)
}

// SignLife signs fields for a deep-link operation ("cmblife://<op>" prefix).
func (c *Client) SignLife(op string, fields map[string]interface{}) error {
	return c.signPayload(constants.LifeScheme+op, fields)
}

// signPayload injects the date and random defaults, signs the canonical
// string prefixed with "<prefix>?" and attaches the signature under sign.
// The map is mutated in place; callers build a fresh one per request.
func (c *Client) signPayload(prefix string, fields map[string]interface{}) error {
	if err := injectDefaults(fields); err != nil {
		return err
	}

	sign, err := crypt.SignSHA256RSA(prefix+"?"+helpers.CanonicalString(fields), c.privateKey)
	if err != nil {
		return &errors.CryptoError{Op: "sign", Err: err}
	}
	fields[constants.FieldSign] = sign

	return nil
}

func injectDefaults(fields map[string]interface{}) error {
	if _, ok := fields[constants.FieldDate]; !ok {
		fields[constants.FieldDate] = helpers.SignDate(time.Now())
	}
	if _, ok := fields[constants.FieldRandom]; !ok {
		nonce, err := helpers.NonceHex(constants.DefaultNonceLength)
		if err != nil {
			return &errors.CryptoError{Op: "nonce", Err: err}
		}
		fields[constants.FieldRandom] = nonce
	}
	return nil
}
