package ledger

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Subscribe returns a channel that receives a new aggregate snapshot
// after every successful mutation, rate update and simulation change.
//
// The channel holds the latest snapshot only: a subscriber that does
// not keep up misses intermediate states, never the final one.
// Subscribers must call the returned cancel function when done.
func (e *Engine) Subscribe() (<-chan Summary, func()) {
	ch := make(chan Summary, 1)

	e.subMu.Lock()
	id := e.nextSubID
	e.nextSubID++
	e.subscribers[id] = ch
	e.subMu.Unlock()

	cancel := func() {
		e.subMu.Lock()
		delete(e.subscribers, id)
		e.subMu.Unlock()
	}

	return ch, cancel
}

// publish recomputes the aggregate snapshot and fans it out to all
// subscribers. Sends never block a mutation: a full subscriber channel
// is drained first so that the latest snapshot wins.
func (e *Engine) publish() {
	summary, err := e.Summarize(context.Background())
	if err != nil {
		log.Warn().Err(err).Msg("aggregate snapshot could not be computed")
		return
	}

	e.subMu.Lock()
	defer e.subMu.Unlock()

	for _, ch := range e.subscribers {
		select {
		case ch <- summary:
		default:
			select {
			case <-ch:
			default:
			}

			select {
			case ch <- summary:
			default:
			}
		}
	}
}
