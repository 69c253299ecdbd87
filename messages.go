package main

import (
	"math/big"

	"nft-receipt-tui/mint"
	"nft-receipt-tui/receipts"
	"nft-receipt-tui/session"
	"nft-receipt-tui/toast"
)

// -------------------- TEA MESSAGES --------------------
// Messages from async work carry the generation of the model that started
// it; after a reload, results of the previous generation are dropped.

// clipboardCopiedMsg indicates clipboard copy completed
type clipboardCopiedMsg struct{ what string }

// clearClipboardMsg clears the copy feedback
type clearClipboardMsg struct{}

// logInitMsg signals that log viewport should be initialized
type logInitMsg struct{}

// toastTickMsg drives notice expiry
type toastTickMsg struct{}

// noticesMsg carries notices produced by a session operation
type noticesMsg struct {
	gen     int
	notices []toast.Notice
	// refresh asks for a balance reload afterwards
	refresh bool
}

// balanceMsg contains the native balance of the connected account
type balanceMsg struct {
	gen int
	wei *big.Int
	err error
}

// mintSentMsg is the result of submitting a real mint
type mintSentMsg struct {
	gen      int
	contract mint.Contract
	pending  mint.Pending
	err      error
}

// mintDoneMsg is a finished mint, real or demo
type mintDoneMsg struct {
	gen    int
	demo   bool
	result mint.Result
	err    error
}

// lookupDoneMsg is the result of a token id lookup
type lookupDoneMsg struct {
	gen    int
	record *receipts.Record
	err    error
}

// walletEventMsg is an accounts or chain notification from the wallet
type walletEventMsg struct {
	gen int
	ev  session.Event
}

// recordMsg is a receipt broadcast by the minter
type recordMsg struct {
	gen    int
	record receipts.Record
}
