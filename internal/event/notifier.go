package event

import (
	"vocably.app/internal/constants"
	"vocably.app/internal/domain"
)

// CountsNotifier adapts the bus to the domain.Notifier interface: the
// participant counter calls it synchronously, the bus enqueues
// asynchronously, so a slow or failing fan-out can never fail the
// caller's request.
type CountsNotifier struct {
	bus *Bus
}

func NewCountsNotifier(bus *Bus) *CountsNotifier {
	return &CountsNotifier{bus: bus}
}

func (n *CountsNotifier) BroadcastCounts(rooms map[string]int) {
	n.bus.Publish(Event{
		Type:   constants.EventParticipantsUpdated,
		Source: "rooms",
		Data:   rooms,
	})
}

var _ domain.Notifier = (*CountsNotifier)(nil)
