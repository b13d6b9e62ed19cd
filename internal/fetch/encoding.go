package fetch

import (
	"fmt"

	"golang.org/x/net/html/charset"
)

// decode converts a response body from the given charset label to utf-8.
// An empty or utf-8 label returns the body as is.
func decode(body []byte, label string) (string, error) {
	if label == "" || label == "utf-8" || label == "utf8" {
		return string(body), nil
	}
	enc, _ := charset.Lookup(label)
	if enc == nil {
		return "", fmt.Errorf("unknown charset %q", label)
	}
	decoded, err := enc.NewDecoder().Bytes(body)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", label, err)
	}
	return string(decoded), nil
}
