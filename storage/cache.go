// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/thortx/digest"
	"github.com/bitmark-inc/thortx/transaction"
)

const (
	defaultExpiration = 10 * time.Minute
	cleanupInterval   = 20 * time.Minute
)

// decoded transactions by id
type txCache struct {
	cache *cache.Cache
}

func newCache() *txCache {
	return &txCache{
		cache: cache.New(defaultExpiration, cleanupInterval),
	}
}

func (c *txCache) Get(id digest.Bytes32) (*transaction.Transaction, bool) {
	obj, found := c.cache.Get(id.String())
	if !found {
		return nil, false
	}
	return obj.(*transaction.Transaction), true
}

func (c *txCache) Set(id digest.Bytes32, tx *transaction.Transaction) {
	c.cache.Set(id.String(), tx, cache.DefaultExpiration)
}

func (c *txCache) Delete(id digest.Bytes32) {
	c.cache.Delete(id.String())
}

func (c *txCache) Clear() {
	c.cache.Flush()
}
