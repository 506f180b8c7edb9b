package session

import "go.uber.org/fx"

// Module provides the process-wide session store.
var Module = fx.Provide(NewStore)
