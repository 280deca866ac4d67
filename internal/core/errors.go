package core

import "errors"

var (
	ErrTransientFetch    error = errors.New("fetching from node failed")
	ErrStoreQuery        error = errors.New("store query failed")
	ErrOracleCall        error = errors.New("price oracle call failed")
	ErrConversion        error = errors.New("value conversion failed")
	ErrBlockNotFound     error = errors.New("block not found")
	ErrIngestionRunning  error = errors.New("an ingestion run is already in progress")
	ErrIncorrectPassword error = errors.New("incorrect password")
	ErrUserNotFound      error = errors.New("user not found")
	ErrUnauthorized      error = errors.New("unauthorized")
)
