// Package simnet defines the boundary with the ledger-simulation engine:
// transaction value objects, the engine interface, and a Chain wrapper
// that tracks block height across calls. An in-memory engine backs the
// test harness; a real simnet implementation satisfies the same interface.
package simnet

import (
	"github.com/pkg/errors"

	"github.com/stacksforge/clarion/clarity"
)

// Receipt is one per-transaction result inside a mined block. Result is
// an opaque notation string; Events is the ordered event log the
// transaction produced.
type Receipt struct {
	TxID   string
	Result clarity.Value
	Events clarity.EventLog
}

// Block is the outcome of mining one block.
type Block struct {
	Height   uint64
	Receipts []Receipt
}

// ReadOnlyResult is the outcome of a read-only contract call. Read-only
// calls never mine and never emit events that persist, but the engine
// still reports any it observed.
type ReadOnlyResult struct {
	Result clarity.Value
	Events clarity.EventLog
}

// AssetsMaps maps asset identifier to principal to balance. The native
// token appears under the "STX" key.
type AssetsMaps map[string]map[string]uint64

// Engine is the ledger-simulation engine. Implementations must be
// deterministic: mining N blocks advances the height by exactly N, and
// receipts preserve transaction order.
type Engine interface {
	MineBlock(txs []Tx) (Block, error)
	MineEmptyBlocks(count uint64) (uint64, error)
	CallReadOnlyFn(contract, method string, args []string, sender string) (ReadOnlyResult, error)
	GetAssetsMaps() (AssetsMaps, error)
}

// Chain wraps an Engine and tracks the tip height observed so far.
type Chain struct {
	engine Engine
	height uint64
}

// NewChain wraps an engine. Height starts at zero until the first mine.
func NewChain(engine Engine) *Chain {
	return &Chain{engine: engine}
}

// BlockHeight returns the last height returned by the engine.
func (c *Chain) BlockHeight() uint64 {
	return c.height
}

// MineBlock submits the transaction set as one block and returns the
// per-transaction receipts in submission order.
func (c *Chain) MineBlock(txs ...Tx) (Block, error) {
	block, err := c.engine.MineBlock(txs)
	if err != nil {
		return Block{}, errors.Wrap(err, "mine block")
	}
	c.height = block.Height
	return block, nil
}

// MineEmptyBlocks advances the chain by count empty blocks and returns
// the new height.
func (c *Chain) MineEmptyBlocks(count uint64) (uint64, error) {
	height, err := c.engine.MineEmptyBlocks(count)
	if err != nil {
		return 0, errors.Wrap(err, "mine empty blocks")
	}
	c.height = height
	return height, nil
}

// CallReadOnlyFn invokes a read-only contract function without mining.
func (c *Chain) CallReadOnlyFn(contract, method string, args []string, sender string) (ReadOnlyResult, error) {
	res, err := c.engine.CallReadOnlyFn(contract, method, args, sender)
	if err != nil {
		return ReadOnlyResult{}, errors.Wrapf(err, "call read-only %s.%s", contract, method)
	}
	return res, nil
}

// GetAssetsMaps fetches the engine's structured balance view.
func (c *Chain) GetAssetsMaps() (AssetsMaps, error) {
	maps, err := c.engine.GetAssetsMaps()
	if err != nil {
		return nil, errors.Wrap(err, "get assets maps")
	}
	return maps, nil
}
