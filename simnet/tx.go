package simnet

// TxKind discriminates the transaction payload.
type TxKind uint8

const (
	TxTransferSTX TxKind = iota
	TxContractCall
	TxDeployContract
)

func (k TxKind) String() string {
	switch k {
	case TxTransferSTX:
		return "transfer-stx"
	case TxContractCall:
		return "contract-call"
	case TxDeployContract:
		return "deploy-contract"
	default:
		return "unknown"
	}
}

// Tx is a transaction to include in a mined block. Only the fields for
// its kind are populated; the constructors below are the supported ways
// to build one.
type Tx struct {
	Kind   TxKind
	Sender string

	// TxTransferSTX
	Amount    uint64
	Recipient string

	// TxContractCall
	Contract string
	Method   string
	Args     []string // already-encoded notation fragments

	// TxDeployContract
	Name string
	Code string
}

// TransferSTX builds a native token transfer.
func TransferSTX(amount uint64, recipient, sender string) Tx {
	return Tx{
		Kind:      TxTransferSTX,
		Amount:    amount,
		Recipient: recipient,
		Sender:    sender,
	}
}

// ContractCall builds a public contract function call. Args are notation
// fragments produced by the clarity encoders.
func ContractCall(contract, method string, args []string, sender string) Tx {
	return Tx{
		Kind:     TxContractCall,
		Contract: contract,
		Method:   method,
		Args:     args,
		Sender:   sender,
	}
}

// DeployContract builds a contract deployment.
func DeployContract(name, code, sender string) Tx {
	return Tx{
		Kind:   TxDeployContract,
		Name:   name,
		Code:   code,
		Sender: sender,
	}
}
