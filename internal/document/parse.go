package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/k0ns0l/configdrift/internal/errors"
)

// Parse decodes a single JSON document into a Value. Object key order is
// preserved, duplicate object keys are rejected, and trailing content after
// the top-level value is an error.
func Parse(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := parseValue(dec)
	if err != nil {
		return Value{}, err
	}

	if _, err := dec.Token(); err != io.EOF {
		return Value{}, fmt.Errorf("unexpected content after top-level JSON value")
	}

	return v, nil
}

// Load reads path fully into memory and parses it as a JSON document
func Load(path string) (Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Value{}, errors.ErrFileNotFound.WithContext("path", path)
		}
		return Value{}, errors.WrapError(err, errors.ErrorTypeInput, "FILE_UNREADABLE",
			fmt.Sprintf("failed to read %s", path)).
			WithGuidance("Check file permissions and that the path points to a regular file")
	}

	v, err := Parse(data)
	if err != nil {
		return Value{}, errors.WrapError(err, errors.ErrorTypeInput, "JSON_INVALID",
			fmt.Sprintf("invalid JSON in %s", path)).
			WithGuidance("Validate the file with a JSON linter before comparing")
	}

	return v, nil
}

func parseValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}
	return parseToken(dec, tok)
}

func parseToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case json.Number:
		return Number(t), nil
	case string:
		return String(t), nil
	case json.Delim:
		switch t {
		case '{':
			return parseObject(dec)
		case '[':
			return parseArray(dec)
		}
	}
	return Value{}, fmt.Errorf("unexpected JSON token %v", tok)
}

func parseObject(dec *json.Decoder) (Value, error) {
	var members []Member
	seen := make(map[string]struct{})

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return Value{}, fmt.Errorf("object key is not a string: %v", keyTok)
		}
		if _, dup := seen[key]; dup {
			return Value{}, fmt.Errorf("duplicate object key %q", key)
		}
		seen[key] = struct{}{}

		val, err := parseValue(dec)
		if err != nil {
			return Value{}, err
		}
		members = append(members, Member{Key: key, Value: val})
	}

	// Consume the closing '}'
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}

	return Object(members...), nil
}

func parseArray(dec *json.Decoder) (Value, error) {
	var items []Value

	for dec.More() {
		item, err := parseValue(dec)
		if err != nil {
			return Value{}, err
		}
		items = append(items, item)
	}

	// Consume the closing ']'
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}

	return Array(items...), nil
}
