package simnet

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/stacksforge/clarion/clarity"
)

// Transaction error codes surfaced in (err uN) results.
const (
	errCodeInsufficientFunds = 1
	errCodeAlreadyRegistered = 100
	errCodeNotRegistered     = 101
)

// MemEngine is a deterministic in-memory engine. It supports native token
// transfers and hosts deployed contracts with registration semantics: a
// set-membership map keyed by caller principal, with register, unregister
// and is-member operations. It exists so the harness and the codec can be
// exercised end to end without a real simnet.
type MemEngine struct {
	height     uint64
	balances   map[string]uint64
	contracts  map[string]string          // name -> code
	membership map[string]map[string]bool // contract -> principal -> member
}

// NewMemEngine initializes an engine from session settings: accounts are
// funded and initial contracts deployed before the first block.
func NewMemEngine(settings SessionSettings) *MemEngine {
	e := &MemEngine{
		balances:   make(map[string]uint64),
		contracts:  make(map[string]string),
		membership: make(map[string]map[string]bool),
	}
	for _, a := range settings.Accounts {
		e.balances[a.Address] = a.Balance
	}
	for _, c := range settings.Contracts {
		e.contracts[c.Name] = c.Code
		e.membership[c.Name] = make(map[string]bool)
	}
	return e
}

// MineBlock applies the transaction set in order and returns one receipt
// per transaction. The height advances by exactly one.
func (e *MemEngine) MineBlock(txs []Tx) (Block, error) {
	receipts := make([]Receipt, 0, len(txs))
	for _, tx := range txs {
		r, err := e.apply(tx)
		if err != nil {
			return Block{}, err
		}
		receipts = append(receipts, r)
	}
	e.height++
	return Block{Height: e.height, Receipts: receipts}, nil
}

// MineEmptyBlocks advances the height by count and returns the new tip.
func (e *MemEngine) MineEmptyBlocks(count uint64) (uint64, error) {
	e.height += count
	return e.height, nil
}

// CallReadOnlyFn evaluates a read-only function without mining.
func (e *MemEngine) CallReadOnlyFn(contract, method string, args []string, sender string) (ReadOnlyResult, error) {
	if _, ok := e.contracts[contract]; !ok {
		return ReadOnlyResult{}, errors.Errorf("unknown contract %q", contract)
	}
	switch method {
	case "is-member":
		principal := sender
		if len(args) > 0 {
			principal = strings.TrimPrefix(args[0], "'")
		}
		member := e.membership[contract][principal]
		return ReadOnlyResult{Result: clarity.Value(clarity.Ok(clarity.Bool(member)))}, nil
	default:
		return ReadOnlyResult{}, errors.Errorf("unknown read-only function %q on %q", method, contract)
	}
}

// GetAssetsMaps returns the native balances under the STX key.
func (e *MemEngine) GetAssetsMaps() (AssetsMaps, error) {
	stx := make(map[string]uint64, len(e.balances))
	for addr, bal := range e.balances {
		stx[addr] = bal
	}
	return AssetsMaps{"STX": stx}, nil
}

func (e *MemEngine) apply(tx Tx) (Receipt, error) {
	switch tx.Kind {
	case TxTransferSTX:
		return e.applyTransfer(tx), nil
	case TxContractCall:
		return e.applyContractCall(tx)
	case TxDeployContract:
		return e.applyDeploy(tx)
	default:
		return Receipt{}, errors.Errorf("unknown transaction kind %d", tx.Kind)
	}
}

func (e *MemEngine) applyTransfer(tx Tx) Receipt {
	if e.balances[tx.Sender] < tx.Amount {
		return e.receipt(clarity.Err(clarity.Uint(errCodeInsufficientFunds)), nil)
	}
	e.balances[tx.Sender] -= tx.Amount
	e.balances[tx.Recipient] += tx.Amount

	events := clarity.EventLog{{
		Type: clarity.EventSTXTransfer,
		STXTransfer: &clarity.STXTransferEvent{
			Amount:    clarity.Value(strconv.FormatUint(tx.Amount, 10)),
			Sender:    clarity.Value(clarity.Principal(tx.Sender)),
			Recipient: clarity.Value(clarity.Principal(tx.Recipient)),
		},
	}}
	return e.receipt(clarity.Ok(clarity.Bool(true)), events)
}

func (e *MemEngine) applyContractCall(tx Tx) (Receipt, error) {
	if _, ok := e.contracts[tx.Contract]; !ok {
		return Receipt{}, errors.Errorf("unknown contract %q", tx.Contract)
	}
	members := e.membership[tx.Contract]

	switch tx.Method {
	case "register":
		if members[tx.Sender] {
			return e.receipt(clarity.Err(clarity.Uint(errCodeAlreadyRegistered)), nil), nil
		}
		members[tx.Sender] = true
		return e.receipt(clarity.Ok(clarity.Bool(true)), nil), nil

	case "unregister":
		if !members[tx.Sender] {
			return e.receipt(clarity.Err(clarity.Uint(errCodeNotRegistered)), nil), nil
		}
		delete(members, tx.Sender)
		return e.receipt(clarity.Ok(clarity.Bool(true)), nil), nil

	case "is-member":
		principal := tx.Sender
		if len(tx.Args) > 0 {
			principal = strings.TrimPrefix(tx.Args[0], "'")
		}
		return e.receipt(clarity.Ok(clarity.Bool(members[principal])), nil), nil

	default:
		return Receipt{}, errors.Errorf("unknown function %q on %q", tx.Method, tx.Contract)
	}
}

func (e *MemEngine) applyDeploy(tx Tx) (Receipt, error) {
	if _, ok := e.contracts[tx.Name]; ok {
		return Receipt{}, errors.Errorf("contract %q already deployed", tx.Name)
	}
	e.contracts[tx.Name] = tx.Code
	e.membership[tx.Name] = make(map[string]bool)
	return e.receipt(clarity.Ok(clarity.Bool(true)), nil), nil
}

func (e *MemEngine) receipt(result string, events clarity.EventLog) Receipt {
	return Receipt{
		TxID:   uuid.New().String(),
		Result: clarity.Value(result),
		Events: events,
	}
}
