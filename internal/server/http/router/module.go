package router

import "go.uber.org/fx"

// Module provides the dashboard API engine.
var Module = fx.Provide(Setup)
