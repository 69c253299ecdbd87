package receipts

import "github.com/ethereum/go-ethereum/event"

// Feed announces newly minted receipts to views on the same page
type Feed struct {
	feed event.Feed
}

// Publish delivers r to every subscriber and returns how many received it
func (f *Feed) Publish(r Record) int {
	return f.feed.Send(r)
}

// Subscribe registers ch for new receipts
func (f *Feed) Subscribe(ch chan<- Record) event.Subscription {
	return f.feed.Subscribe(ch)
}
