// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"cmp"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cybrota/avlindex/avl"
	"github.com/patrickmn/go-cache"
)

type StockPrice struct {
	Symbol string
	Price  float64
}

// compareStocks orders by price; equal prices fall back to the symbol so
// two listings at the same price are both kept.
func compareStocks(a, b StockPrice) int {
	if c := cmp.Compare(a.Price, b.Price); c != 0 {
		return c
	}
	return strings.Compare(a.Symbol, b.Symbol)
}

// StockBoard keeps the latest quote of every symbol sorted by price.
type StockBoard struct {
	prices *avl.OrderedTree[StockPrice]
	quotes *cache.Cache
}

func NewStockBoard() *StockBoard {
	return &StockBoard{
		prices: avl.NewOrderedFunc(compareStocks),
		quotes: NewQuoteIndex(),
	}
}

// Add lists a new symbol. It returns false if the symbol is already listed.
func (sb *StockBoard) Add(symbol string, price float64) bool {
	if _, ok := GetQuote(sb.quotes, symbol); ok {
		return false
	}
	quote := StockPrice{Symbol: symbol, Price: price}
	sb.prices.Insert(quote)
	CacheQuote(sb.quotes, quote)
	return true
}

// Update moves a listed symbol to its new price.
func (sb *StockBoard) Update(symbol string, price float64) bool {
	old, ok := GetQuote(sb.quotes, symbol)
	if !ok {
		return false
	}
	sb.prices.Remove(old)
	quote := StockPrice{Symbol: symbol, Price: price}
	sb.prices.Insert(quote)
	CacheQuote(sb.quotes, quote)
	return true
}

// Remove delists a symbol.
func (sb *StockBoard) Remove(symbol string) bool {
	old, ok := GetQuote(sb.quotes, symbol)
	if !ok {
		return false
	}
	DropQuote(sb.quotes, symbol)
	return sb.prices.Remove(old)
}

func (sb *StockBoard) Quote(symbol string) (StockPrice, bool) {
	return GetQuote(sb.quotes, symbol)
}

func (sb *StockBoard) Cheapest() (StockPrice, error) {
	quote, err := sb.prices.Min()
	if err != nil {
		return StockPrice{}, fmt.Errorf("no stocks listed: %w", err)
	}
	return quote, nil
}

func (sb *StockBoard) Priciest() (StockPrice, error) {
	quote, err := sb.prices.Max()
	if err != nil {
		return StockPrice{}, fmt.Errorf("no stocks listed: %w", err)
	}
	return quote, nil
}

func (sb *StockBoard) Len() int {
	return sb.prices.Len()
}

// Render prints the board from the lowest to the highest price.
func (sb *StockBoard) Render(w io.Writer) {
	title := lipgloss.NewStyle().Bold(true).Foreground(GetColorScheme().Primary)

	fmt.Fprintf(w, "\n%s\n", title.Render("Current Stock Prices:"))
	fmt.Fprintln(w, "--------------------")
	sb.prices.InOrder(func(stock StockPrice) {
		fmt.Fprintf(w, "%-10s$ %.2f\n", stock.Symbol, stock.Price)
	})
}

var sampleStocks = []StockPrice{
	{"AAPL", 150.50},
	{"GOGL", 2800.75},
	{"MSFT", 290.25},
	{"AMZN", 3300.00},
	{"TSLA", 750.80},
}
