package core

import (
	"encoding/hex"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is the content-derived identifier for stored strings.
// It is the lowercase hex encoding of a BLAKE2b-256 digest of the raw value,
// so identical values always carry identical IDs.
type ID string

// IDFromContent derives the ID for a raw string value.
func IDFromContent(value string) ID {
	h, _ := blake2b.New(32, nil) // 32 bytes = 256 bits
	h.Write([]byte(value))
	return ID(hex.EncodeToString(h.Sum(nil)))
}

// Properties is the immutable set of measurements derived from a stored
// string. Field names are part of the wire contract and must be preserved
// verbatim when serialized.
type Properties struct {
	Length             int            `json:"length"`
	IsPalindrome       bool           `json:"is_palindrome"`
	UniqueCharacters   int            `json:"unique_characters"`
	WordCount          int            `json:"word_count"`
	ContentHash        ID             `json:"content_hash"`
	CharacterFrequency map[string]int `json:"character_frequency"`
}

// StringRecord is a stored string together with its derived properties.
// Records are immutable once inserted and are only ever removed whole.
type StringRecord struct {
	Id         ID         `json:"id"`
	Value      string     `json:"value"`
	Properties Properties `json:"properties"`
	CreatedAt  time.Time  `json:"created_at"`

	// Seq is the insertion sequence number assigned by the store. It orders
	// List results and is never exposed on the wire.
	Seq uint64 `json:"-"`
}

// NewStringRecord validates and analyzes a raw value and assembles an
// unsaved record. The store assigns CreatedAt and Seq at insertion time.
func NewStringRecord(value string) (*StringRecord, error) {
	if err := ValidateValue(value); err != nil {
		return nil, err
	}
	properties := Analyze(value)
	return &StringRecord{
		Id:         properties.ContentHash,
		Value:      value,
		Properties: properties,
	}, nil
}
