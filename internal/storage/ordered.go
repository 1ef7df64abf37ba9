package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// The historical files are JSON objects whose key order is the store's
// insertion order. encoding/json loses that order through maps, so object
// encoding and decoding go through these two helpers instead.

func marshalOrderedObject(keys []string, value func(key string) (interface{}, error)) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString("\n  ")
		kb, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteString(": ")

		v, err := value(key)
		if err != nil {
			return nil, err
		}
		vb, err := json.MarshalIndent(v, "  ", "  ")
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	if len(keys) > 0 {
		buf.WriteByte('\n')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func decodeOrderedObject(data []byte, visit func(key string, raw json.RawMessage) error) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", keyTok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		if err := visit(key, raw); err != nil {
			return err
		}
	}
	_, err = dec.Token()
	return err
}
