package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidAddress is returned by ParseAddress when a path matches neither
// of the two supported patterns.
var ErrInvalidAddress = errors.New("invalid vault address")

// AddressKind discriminates the two logical address patterns the gateway
// resolves: the whole collection, or a single record.
type AddressKind int

const (
	// AddressCollection addresses all records owned by the active session.
	AddressCollection AddressKind = iota

	// AddressRecord addresses a single record by id.
	AddressRecord
)

// Address is the resolved form of a logical record address. It is produced
// once at the gateway boundary instead of re-parsing path strings in every
// caller.
type Address struct {
	Kind     AddressKind
	RecordID int64
}

// CollectionAddress returns the address of the whole vault collection.
func CollectionAddress() Address {
	return Address{Kind: AddressCollection}
}

// RecordAddress returns the address of the single record with the given id.
func RecordAddress(recordID int64) Address {
	return Address{Kind: AddressRecord, RecordID: recordID}
}

// ParseAddress resolves a path of the shape "vault_records" or
// "vault_records/{id}" into an Address. Only those two patterns match;
// anything else yields ErrInvalidAddress.
func ParseAddress(path string) (Address, error) {
	trimmed := strings.Trim(path, "/")
	table := VaultRecord{}.TableName()

	switch {
	case trimmed == table:
		return CollectionAddress(), nil
	case strings.HasPrefix(trimmed, table+"/"):
		rawID := strings.TrimPrefix(trimmed, table+"/")
		id, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil || id <= 0 {
			return Address{}, fmt.Errorf("%w: bad record id %q", ErrInvalidAddress, rawID)
		}
		return RecordAddress(id), nil
	default:
		return Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, path)
	}
}
