package storedb

import "errors"

var (
	ErrStoreNotFound      = errors.New("store not found")
	ErrStoreAlreadyExists = errors.New("store already exists")
	ErrOwnerNotFound      = errors.New("store owner not found")
)
