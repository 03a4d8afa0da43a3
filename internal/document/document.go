// Package document reads and writes the JSON documents handled by the merger.
package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"configMerger/internal/model"
)

// ErrParse matches every ParseError via errors.Is.
var ErrParse = errors.New("parse document")

// ParseError reports JSON text that could not be decoded into a document object.
// Offset is the byte offset where decoding stopped, when known.
type ParseError struct {
	Document string
	Offset   int64
	Err      error
}

func (e *ParseError) Error() string {
	if e.Offset > 0 {
		return fmt.Sprintf("parse %s at offset %d: %v", e.Document, e.Offset, e.Err)
	}
	return fmt.Sprintf("parse %s: %v", e.Document, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// Decode parses data as a single JSON object. Numbers keep their textual form.
func Decode(name string, data []byte) (map[string]interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc map[string]interface{}
	if err := dec.Decode(&doc); err != nil {
		return nil, newParseError(name, dec, err)
	}
	if doc == nil {
		return nil, &ParseError{Document: name, Err: errors.New("document is not a JSON object")}
	}

	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			err = errors.New("unexpected data after document")
		}
		return nil, newParseError(name, dec, err)
	}

	return doc, nil
}

// DecodeTokenList parses a token_list.json document.
func DecodeTokenList(data []byte) (model.TokenList, error) {
	doc, err := Decode("token list", data)
	if err != nil {
		return nil, err
	}
	return model.TokenList(doc), nil
}

// DecodeRewardsList parses a rewards_config.json document.
func DecodeRewardsList(data []byte) (model.RewardsList, error) {
	doc, err := Decode("rewards list", data)
	if err != nil {
		return nil, err
	}
	return model.RewardsList(doc), nil
}

// Encode renders v as JSON indented by two spaces, without a trailing newline.
// HTML characters are left unescaped.
func Encode(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func newParseError(name string, dec *json.Decoder, err error) *ParseError {
	offset := dec.InputOffset()
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr):
		offset = syntaxErr.Offset
	case errors.As(err, &typeErr):
		offset = typeErr.Offset
	case errors.Is(err, io.EOF):
		err = io.ErrUnexpectedEOF
	}
	if offset == 0 {
		offset = dec.InputOffset()
	}
	return &ParseError{Document: name, Offset: offset, Err: err}
}
