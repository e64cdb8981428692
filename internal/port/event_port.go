package port

import (
	"github.com/nikolayk812/commerce-core/internal/domain"
)

// EventSink receives cart mutation events. Publish is fire-and-forget: the
// core never inspects a result and must not block on slow subscribers.
type EventSink interface {
	Publish(event domain.Event)
}
