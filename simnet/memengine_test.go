package simnet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stacksforge/clarion/clarity"
)

const (
	wallet1 = "ST1PQHQKV0RJXZFY1DGX8MNSNYVE3VGZJSRTPGZGM"
	wallet2 = "ST1SJ3DTE5DN7X54YDH5D64R3BCB6A2AG2ZQ8YPD5"
)

func testSettings() SessionSettings {
	return SessionSettings{
		Accounts: []Account{
			{Name: "wallet_1", Address: wallet1, Balance: 1000},
			{Name: "wallet_2", Address: wallet2, Balance: 500},
		},
		Contracts: []InitialContract{
			{Name: "registry", Code: "(define-map members principal bool)", Deployer: wallet1},
		},
	}
}

func TestMemEngine_TransferSTX(t *testing.T) {
	chain := NewChain(NewMemEngine(testSettings()))

	block, err := chain.MineBlock(TransferSTX(100, wallet2, wallet1))
	require.NoError(t, err)
	require.Len(t, block.Receipts, 1)
	assert.Equal(t, uint64(1), block.Height)
	assert.Equal(t, uint64(1), chain.BlockHeight())

	receipt := block.Receipts[0]
	assert.NotEmpty(t, receipt.TxID)

	inner, err := receipt.Result.ExpectOk()
	require.NoError(t, err)
	require.NoError(t, inner.ExpectBool(true))

	fields, err := receipt.Events.ExpectSTXTransferEvent(100, wallet1, wallet2)
	require.NoError(t, err)
	assert.Equal(t, clarity.TransferFields{Amount: 100, Sender: wallet1, Recipient: wallet2}, fields)
}

func TestMemEngine_TransferSTX_InsufficientFunds(t *testing.T) {
	chain := NewChain(NewMemEngine(testSettings()))

	block, err := chain.MineBlock(TransferSTX(9999, wallet2, wallet1))
	require.NoError(t, err)

	inner, err := block.Receipts[0].Result.ExpectErr()
	require.NoError(t, err)
	_, err = inner.ExpectUint(1)
	require.NoError(t, err)

	// No funds moved and no event emitted.
	assert.Empty(t, block.Receipts[0].Events)
	maps, err := chain.GetAssetsMaps()
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), maps["STX"][wallet1])
}

func TestMemEngine_ReceiptsPreserveTxOrder(t *testing.T) {
	chain := NewChain(NewMemEngine(testSettings()))

	block, err := chain.MineBlock(
		TransferSTX(10, wallet2, wallet1),
		TransferSTX(20, wallet1, wallet2),
	)
	require.NoError(t, err)
	require.Len(t, block.Receipts, 2)

	_, err = block.Receipts[0].Events.ExpectSTXTransferEvent(10, wallet1, wallet2)
	require.NoError(t, err)
	_, err = block.Receipts[1].Events.ExpectSTXTransferEvent(20, wallet2, wallet1)
	require.NoError(t, err)
}

func TestMemEngine_MineEmptyBlocks(t *testing.T) {
	chain := NewChain(NewMemEngine(testSettings()))

	height, err := chain.MineEmptyBlocks(5)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), height)

	block, err := chain.MineBlock()
	require.NoError(t, err)
	assert.Equal(t, uint64(6), block.Height)
}

func TestMemEngine_RegistryLifecycle(t *testing.T) {
	chain := NewChain(NewMemEngine(testSettings()))

	block, err := chain.MineBlock(
		ContractCall("registry", "register", nil, wallet1),
	)
	require.NoError(t, err)
	inner, err := block.Receipts[0].Result.ExpectOk()
	require.NoError(t, err)
	require.NoError(t, inner.ExpectBool(true))

	// Double registration fails with the already-registered code.
	block, err = chain.MineBlock(ContractCall("registry", "register", nil, wallet1))
	require.NoError(t, err)
	inner, err = block.Receipts[0].Result.ExpectErr()
	require.NoError(t, err)
	_, err = inner.ExpectUint(100)
	require.NoError(t, err)

	// Membership is visible read-only, keyed by the queried principal.
	res, err := chain.CallReadOnlyFn("registry", "is-member", []string{clarity.Principal(wallet1)}, wallet2)
	require.NoError(t, err)
	inner, err = res.Result.ExpectOk()
	require.NoError(t, err)
	require.NoError(t, inner.ExpectBool(true))

	res, err = chain.CallReadOnlyFn("registry", "is-member", []string{clarity.Principal(wallet2)}, wallet2)
	require.NoError(t, err)
	inner, err = res.Result.ExpectOk()
	require.NoError(t, err)
	require.NoError(t, inner.ExpectBool(false))

	// Unregister, then the not-registered code on a second attempt.
	block, err = chain.MineBlock(ContractCall("registry", "unregister", nil, wallet1))
	require.NoError(t, err)
	_, err = block.Receipts[0].Result.ExpectOk()
	require.NoError(t, err)

	block, err = chain.MineBlock(ContractCall("registry", "unregister", nil, wallet1))
	require.NoError(t, err)
	inner, err = block.Receipts[0].Result.ExpectErr()
	require.NoError(t, err)
	_, err = inner.ExpectUint(101)
	require.NoError(t, err)
}

func TestMemEngine_DeployContract(t *testing.T) {
	chain := NewChain(NewMemEngine(testSettings()))

	block, err := chain.MineBlock(DeployContract("roster", "(define-map members principal bool)", wallet1))
	require.NoError(t, err)
	_, err = block.Receipts[0].Result.ExpectOk()
	require.NoError(t, err)

	// The fresh contract starts with an empty membership map.
	res, err := chain.CallReadOnlyFn("roster", "is-member", []string{clarity.Principal(wallet1)}, wallet1)
	require.NoError(t, err)
	inner, err := res.Result.ExpectOk()
	require.NoError(t, err)
	require.NoError(t, inner.ExpectBool(false))

	_, err = chain.MineBlock(DeployContract("roster", "", wallet1))
	require.Error(t, err)
}

func TestMemEngine_UnknownContract(t *testing.T) {
	chain := NewChain(NewMemEngine(testSettings()))

	_, err := chain.MineBlock(ContractCall("nope", "register", nil, wallet1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown contract")

	_, err = chain.CallReadOnlyFn("nope", "is-member", nil, wallet1)
	require.Error(t, err)
}

func TestSessionSettings_AccountsByName(t *testing.T) {
	accounts := testSettings().AccountsByName()
	require.Len(t, accounts, 2)
	assert.Equal(t, wallet1, accounts["wallet_1"].Address)
	assert.Equal(t, uint64(500), accounts["wallet_2"].Balance)
}
