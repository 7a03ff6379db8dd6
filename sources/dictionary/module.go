package dictionary

import "go.uber.org/fx"

var Module = fx.Module("dictionary",
	fx.Provide(
		NewDictionary,
	),
)
