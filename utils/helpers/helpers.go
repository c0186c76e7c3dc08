package helpers

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"time"

	"cmblife-sdk/domain/constants"

	"github.com/jakehl/goid"
	"github.com/spf13/cast"
)

// Ksort returns the field keys in ascending byte order, skipping the sign
// field itself.
func Ksort(c map[string]interface{}) []string {
	var keys []string
	for s := range c {
		if s != constants.FieldSign {
			keys = append(keys, s)
		}
	}
	sort.Strings(keys)

	return keys
}

// CanonicalString renders the fields as key=value joined by &, keys sorted
// ascending, values coerced to their string form. No escaping: this is the
// exact byte sequence that gets signed or verified.
func CanonicalString(c map[string]interface{}) string {
	keys := Ksort(c)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+cast.ToString(c[k]))
	}

	return strings.Join(pairs, "&")
}

// NonceHex returns exactly length lowercase hex characters from secure
// random bytes. Odd lengths consume the same bytes as the next even length
// and truncate.
func NonceHex(length int) (string, error) {
	if length <= 0 {
		length = constants.DefaultNonceLength
	}

	buf := make([]byte, (length+1)/2)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	return hex.EncodeToString(buf)[:length], nil
}

// SignDate formats t the way the gateway expects the date field.
func SignDate(t time.Time) string {
	return t.Format(constants.DateLayout)
}

func GetUUId() string {
	v4UUID := goid.NewV4UUID()
	return fmt.Sprint(v4UUID.String())
}
