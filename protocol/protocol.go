// Package protocol implements the server's line protocol: every
// server to client message is a minimal JSON object with exactly one
// key, terminated by a newline. Client to server payloads are never
// JSON; they are raw chunks read elsewhere.
package protocol

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// Kind is the single key carried by one wire line.
type Kind string

const (
	Message Kind = "message"
	Input   Kind = "input"
	Error   Kind = "error"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Encode renders one wire line, newline included.
func Encode(kind Kind, text string) ([]byte, error) {
	body, err := json.Marshal(map[string]string{string(kind): text})
	if err != nil {
		return nil, err
	}
	return append(body, '\n'), nil
}

// Decode parses one wire line back into its kind and text. Objects
// with more or fewer than one key are rejected.
func Decode(line []byte) (Kind, string, error) {
	payload := map[string]string{}
	if err := json.Unmarshal(line, &payload); err != nil {
		return "", "", err
	}
	if len(payload) != 1 {
		return "", "", fmt.Errorf("protocol: one key per line, got %d", len(payload))
	}
	for k, v := range payload {
		return Kind(k), v, nil
	}
	panic("unreachable")
}
