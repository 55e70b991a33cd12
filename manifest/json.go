package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-json"

	eb "github.com/timoconnellaus/eb"
)

// DuplicateJSONKeyError reports a key repeated within one JSON object.
// Pointer locates the object holding the key.
type DuplicateJSONKeyError struct {
	Key     string
	Pointer string
}

func (e *DuplicateJSONKeyError) Error() string {
	return fmt.Sprintf("duplicate JSON key %q in %s", e.Key, e.Pointer)
}

// checkJSONDuplicateKeys streams the document token by token. Decoding into
// structs would keep the last value without notice.
func checkJSONDuplicateKeys(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	err := walkJSON(dec, eb.Root())
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func walkJSON(dec *json.Decoder, at eb.PathRef) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	d, ok := tok.(json.Delim)
	if !ok {
		return nil
	}
	switch d {
	case '{':
		seen := map[string]bool{}
		for dec.More() {
			kt, err := dec.Token()
			if err != nil {
				return err
			}
			k, _ := kt.(string)
			if seen[k] {
				return &DuplicateJSONKeyError{Key: k, Pointer: at.Pointer()}
			}
			seen[k] = true
			if err := walkJSON(dec, at.Field(k)); err != nil {
				return err
			}
		}
	case '[':
		for i := 0; dec.More(); i++ {
			if err := walkJSON(dec, at.Index(i)); err != nil {
				return err
			}
		}
	}
	_, err = dec.Token()
	return err
}
