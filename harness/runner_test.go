package harness

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stacksforge/clarion/internal/logger"
	"github.com/stacksforge/clarion/simnet"
)

const (
	wallet1 = "ST1PQHQKV0RJXZFY1DGX8MNSNYVE3VGZJSRTPGZGM"
	wallet2 = "ST1SJ3DTE5DN7X54YDH5D64R3BCB6A2AG2ZQ8YPD5"
)

func testSettings() simnet.SessionSettings {
	return simnet.SessionSettings{
		Accounts: []simnet.Account{
			{Name: "wallet_1", Address: wallet1, Balance: 1000},
			{Name: "wallet_2", Address: wallet2, Balance: 1000},
		},
		Contracts: []simnet.InitialContract{
			{Name: "registry", Code: "(define-map members principal bool)"},
		},
	}
}

func quietRunner(t *testing.T, settings simnet.SessionSettings) *Runner {
	t.Helper()
	var buf bytes.Buffer
	return NewRunner(settings, WithLogger(logger.NewWithOptions(logger.Options{Writer: &buf})))
}

func TestRunner_PassingAndFailingCases(t *testing.T) {
	r := quietRunner(t, testSettings())

	require.NoError(t, r.Register("transfer succeeds", func(chain *simnet.Chain, accounts map[string]simnet.Account) error {
		block, err := chain.MineBlock(simnet.TransferSTX(100, accounts["wallet_2"].Address, accounts["wallet_1"].Address))
		if err != nil {
			return err
		}
		_, err = block.Receipts[0].Result.ExpectOk()
		return err
	}))
	require.NoError(t, r.Register("always fails", func(chain *simnet.Chain, accounts map[string]simnet.Account) error {
		return errors.New("boom")
	}))

	results := r.Run()
	require.Len(t, results, 2)
	assert.Equal(t, "transfer succeeds", results[0].Name)
	assert.NoError(t, results[0].Err)
	assert.EqualError(t, results[1].Err, "boom")
	assert.True(t, Failed(results))
}

func TestRunner_EachCaseGetsFreshChain(t *testing.T) {
	r := quietRunner(t, testSettings())

	register := func(chain *simnet.Chain, accounts map[string]simnet.Account) error {
		block, err := chain.MineBlock(simnet.ContractCall("registry", "register", nil, accounts["wallet_1"].Address))
		if err != nil {
			return err
		}
		// Would fail with (err u100) if state leaked between cases.
		_, err = block.Receipts[0].Result.ExpectOk()
		return err
	}

	require.NoError(t, r.Register("first registration", register))
	require.NoError(t, r.Register("second registration", register))

	results := r.Run()
	require.Len(t, results, 2)
	assert.NoError(t, results[0].Err)
	assert.NoError(t, results[1].Err)
	assert.False(t, Failed(results))
}

func TestRunner_RegisterValidation(t *testing.T) {
	r := quietRunner(t, testSettings())

	require.Error(t, r.Register("", nil))
	require.NoError(t, r.Register("once", func(*simnet.Chain, map[string]simnet.Account) error { return nil }))
	err := r.Register("once", func(*simnet.Chain, map[string]simnet.Account) error { return nil })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestRunner_CustomEngineFactory(t *testing.T) {
	var built int
	factory := func(s simnet.SessionSettings) simnet.Engine {
		built++
		return simnet.NewMemEngine(s)
	}

	var buf bytes.Buffer
	r := NewRunner(testSettings(),
		WithEngineFactory(factory),
		WithLogger(logger.NewWithOptions(logger.Options{Writer: &buf})),
	)

	noop := func(*simnet.Chain, map[string]simnet.Account) error { return nil }
	require.NoError(t, r.Register("a", noop))
	require.NoError(t, r.Register("b", noop))

	r.Run()
	assert.Equal(t, 2, built)
}
