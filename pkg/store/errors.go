package store

import "github.com/shuldan/ioc/pkg/errors"

var newStoreCode = errors.WithPrefix("STORE")

var (
	ErrNotConnected  = newStoreCode().New("store is not connected")
	ErrConnectFailed = newStoreCode().New("failed to connect to {{.driver}} store")
	ErrPingFailed    = newStoreCode().New("failed to ping {{.driver}} store")
)
