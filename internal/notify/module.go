package notify

import "go.uber.org/fx"

// Module provides the stream hub and the fan-out over all registered sinks.
// Other packages add sinks to the "notifiers" group.
var Module = fx.Provide(
	NewHub,
	fx.Annotate(func(h *Hub) Sink { return h }, fx.ResultTags(`group:"notifiers"`)),
	newFanout,
)

type fanoutParams struct {
	fx.In

	Sinks []Sink `group:"notifiers"`
}

func newFanout(p fanoutParams) *Fanout {
	return NewFanout(p.Sinks...)
}
