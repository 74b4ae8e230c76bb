// cache.go

/**
 * Copyright 2025 (C) Naren Yellavula - All Rights Reserved
 *
 * This source code is protected under international copyright law.  All rights
 * reserved and protected by the copyright holders.
 * This file is confidential and only available to authorized individuals with the
 * permission of the copyright holders.  If you encounter this file and do not have
 * permission, please contact the copyright holders and delete this file.
 */

package main

import (
	"github.com/patrickmn/go-cache"
)

// Quotes never expire and no janitor goroutine is started; the board
// removes entries itself when a symbol is delisted.
const (
	quoteExpiration = cache.NoExpiration
	quoteCleanup    = 0
)

// NewQuoteIndex creates the symbol -> latest quote index of a StockBoard
func NewQuoteIndex() *cache.Cache {
	return cache.New(quoteExpiration, quoteCleanup)
}

func CacheQuote(c *cache.Cache, quote StockPrice) {
	// Set overwrites the previous quote for the symbol
	c.Set(quote.Symbol, quote, quoteExpiration)
}

func GetQuote(c *cache.Cache, symbol string) (StockPrice, bool) {
	val, ok := c.Get(symbol)
	if !ok {
		return StockPrice{}, false
	}
	return val.(StockPrice), true
}

func DropQuote(c *cache.Cache, symbol string) {
	c.Delete(symbol)
}
