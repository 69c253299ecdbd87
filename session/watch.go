package session

import (
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

// EventKind tells which wallet notification an Event carries
type EventKind int

const (
	AccountsChanged EventKind = iota
	ChainChanged
)

// Event is a wallet notification
type Event struct {
	Kind     EventKind
	Accounts []common.Address
	ChainID  string
}

// Watch subscribes to the wallet's notifications. The returned function
// releases the subscriptions and closes the channel.
func (m *Manager) Watch() (<-chan Event, func()) {
	out := make(chan Event, 8)
	if m.provider == nil {
		close(out)
		return out, func() {}
	}

	accounts := make(chan []common.Address, 8)
	chains := make(chan string, 8)
	accSub := m.provider.SubscribeAccountsChanged(accounts)
	chainSub := m.provider.SubscribeChainChanged(chains)
	quit := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		defer close(out)
		defer accSub.Unsubscribe()
		defer chainSub.Unsubscribe()
		for {
			var ev Event
			select {
			case a := <-accounts:
				ev = Event{Kind: AccountsChanged, Accounts: a}
			case id := <-chains:
				ev = Event{Kind: ChainChanged, ChainID: id}
			case <-accSub.Err():
				return
			case <-chainSub.Err():
				return
			case <-quit:
				return
			}
			select {
			case out <- ev:
			case <-quit:
				return
			}
		}
	}()

	var once sync.Once
	stop := func() {
		once.Do(func() {
			close(quit)
			<-done
		})
	}
	return out, stop
}
