package clarity

import (
	"strconv"
	"strings"
)

// EventType tags an engine event record.
type EventType string

const (
	EventSTXTransfer EventType = "stx_transfer_event"
	EventFTTransfer  EventType = "ft_transfer_event"
	EventFTMint      EventType = "ft_mint_event"
	EventFTBurn      EventType = "ft_burn_event"
)

// Event is one entry of an engine-returned, ordered event log. The kind
// determines which field group is populated; the matcher only reads it.
type Event struct {
	Type EventType

	STXTransfer *STXTransferEvent
	FTTransfer  *FTTransferEvent
	FTMint      *FTMintEvent
	FTBurn      *FTBurnEvent
}

// STXTransferEvent carries the raw, still-encoded fields of a native
// token transfer.
type STXTransferEvent struct {
	Amount    Value
	Sender    Value
	Recipient Value
}

// FTTransferEvent carries a fungible token transfer. AssetID is the full
// asset identifier (contract id dot asset name).
type FTTransferEvent struct {
	Amount    Value
	Sender    Value
	Recipient Value
	AssetID   string
}

// FTMintEvent carries a fungible token mint.
type FTMintEvent struct {
	Amount    Value
	Recipient Value
	AssetID   string
}

// FTBurnEvent carries a fungible token burn.
type FTBurnEvent struct {
	Amount  Value
	Sender  Value
	AssetID string
}

// EventLog is the ordered event collection returned by the engine for one
// mined block. Record order defines scan order.
type EventLog []Event

// TransferFields are the decoded fields of a matched transfer event.
type TransferFields struct {
	Amount    int64
	Sender    string
	Recipient string
}

// MintFields are the decoded fields of a matched mint event.
type MintFields struct {
	Amount    int64
	Recipient string
}

// BurnFields are the decoded fields of a matched burn event.
type BurnFields struct {
	Amount int64
	Sender string
}

// ExpectSTXTransferEvent scans the log in order for the first native
// transfer of the given amount between the given principals. Later
// also-matching records are ignored; first match wins.
func (l EventLog) ExpectSTXTransferEvent(amount int64, sender, recipient string) (TransferFields, error) {
	for _, ev := range l {
		f, err := tryMatchSTXTransfer(ev, amount, sender, recipient)
		if err != nil {
			continue
		}
		return f, nil
	}
	return TransferFields{}, &NotFoundError{
		Kind: string(EventSTXTransfer),
		Criteria: map[string]string{
			"amount":    strconv.FormatInt(amount, 10),
			"sender":    sender,
			"recipient": recipient,
		},
	}
}

// ExpectFungibleTokenTransferEvent scans for the first fungible token
// transfer matching amount, principals, and an asset identifier suffix.
func (l EventLog) ExpectFungibleTokenTransferEvent(amount int64, sender, recipient, assetID string) (TransferFields, error) {
	for _, ev := range l {
		f, err := tryMatchFTTransfer(ev, amount, sender, recipient, assetID)
		if err != nil {
			continue
		}
		return f, nil
	}
	return TransferFields{}, &NotFoundError{
		Kind: string(EventFTTransfer),
		Criteria: map[string]string{
			"amount":    strconv.FormatInt(amount, 10),
			"sender":    sender,
			"recipient": recipient,
			"asset":     assetID,
		},
	}
}

// ExpectFungibleTokenMintEvent scans for the first fungible token mint
// matching amount, recipient, and an asset identifier suffix.
func (l EventLog) ExpectFungibleTokenMintEvent(amount int64, recipient, assetID string) (MintFields, error) {
	for _, ev := range l {
		f, err := tryMatchFTMint(ev, amount, recipient, assetID)
		if err != nil {
			continue
		}
		return f, nil
	}
	return MintFields{}, &NotFoundError{
		Kind: string(EventFTMint),
		Criteria: map[string]string{
			"amount":    strconv.FormatInt(amount, 10),
			"recipient": recipient,
			"asset":     assetID,
		},
	}
}

// ExpectFungibleTokenBurnEvent scans for the first fungible token burn
// matching amount, sender, and an asset identifier suffix.
func (l EventLog) ExpectFungibleTokenBurnEvent(amount int64, sender, assetID string) (BurnFields, error) {
	for _, ev := range l {
		f, err := tryMatchFTBurn(ev, amount, sender, assetID)
		if err != nil {
			continue
		}
		return f, nil
	}
	return BurnFields{}, &NotFoundError{
		Kind: string(EventFTBurn),
		Criteria: map[string]string{
			"amount": strconv.FormatInt(amount, 10),
			"sender": sender,
			"asset":  assetID,
		},
	}
}

// Per-record match attempts. A failed check moves the scan to the next
// record, so these surface errors to the loop but never to the caller.

func tryMatchSTXTransfer(ev Event, amount int64, sender, recipient string) (TransferFields, error) {
	t := ev.STXTransfer
	if t == nil {
		return TransferFields{}, &MismatchError{Expected: string(EventSTXTransfer), Actual: string(ev.Type)}
	}
	if _, err := t.Amount.ExpectInt(amount); err != nil {
		return TransferFields{}, err
	}
	if err := t.Sender.ExpectPrincipal(sender); err != nil {
		return TransferFields{}, err
	}
	if err := t.Recipient.ExpectPrincipal(recipient); err != nil {
		return TransferFields{}, err
	}
	return TransferFields{Amount: amount, Sender: sender, Recipient: recipient}, nil
}

func tryMatchFTTransfer(ev Event, amount int64, sender, recipient, assetID string) (TransferFields, error) {
	t := ev.FTTransfer
	if t == nil {
		return TransferFields{}, &MismatchError{Expected: string(EventFTTransfer), Actual: string(ev.Type)}
	}
	if !strings.HasSuffix(t.AssetID, assetID) {
		return TransferFields{}, &MismatchError{Expected: assetID, Actual: t.AssetID}
	}
	if _, err := t.Amount.ExpectInt(amount); err != nil {
		return TransferFields{}, err
	}
	if err := t.Sender.ExpectPrincipal(sender); err != nil {
		return TransferFields{}, err
	}
	if err := t.Recipient.ExpectPrincipal(recipient); err != nil {
		return TransferFields{}, err
	}
	return TransferFields{Amount: amount, Sender: sender, Recipient: recipient}, nil
}

func tryMatchFTMint(ev Event, amount int64, recipient, assetID string) (MintFields, error) {
	t := ev.FTMint
	if t == nil {
		return MintFields{}, &MismatchError{Expected: string(EventFTMint), Actual: string(ev.Type)}
	}
	if !strings.HasSuffix(t.AssetID, assetID) {
		return MintFields{}, &MismatchError{Expected: assetID, Actual: t.AssetID}
	}
	if _, err := t.Amount.ExpectInt(amount); err != nil {
		return MintFields{}, err
	}
	if err := t.Recipient.ExpectPrincipal(recipient); err != nil {
		return MintFields{}, err
	}
	return MintFields{Amount: amount, Recipient: recipient}, nil
}

func tryMatchFTBurn(ev Event, amount int64, sender, assetID string) (BurnFields, error) {
	t := ev.FTBurn
	if t == nil {
		return BurnFields{}, &MismatchError{Expected: string(EventFTBurn), Actual: string(ev.Type)}
	}
	if !strings.HasSuffix(t.AssetID, assetID) {
		return BurnFields{}, &MismatchError{Expected: assetID, Actual: t.AssetID}
	}
	if _, err := t.Amount.ExpectInt(amount); err != nil {
		return BurnFields{}, err
	}
	if err := t.Sender.ExpectPrincipal(sender); err != nil {
		return BurnFields{}, err
	}
	return BurnFields{Amount: amount, Sender: sender}, nil
}
