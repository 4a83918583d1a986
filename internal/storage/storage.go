// Package storage provides the key/value persistence layer backing the
// session stores. It mirrors the browser client's localStorage contract:
// whole JSON documents under fixed string keys, no versioning.
package storage

import "errors"

// ErrNotFound is returned by Get when no value exists under the key.
var ErrNotFound = errors.New("storage: key not found")

type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}
