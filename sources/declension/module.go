package declension

import "go.uber.org/fx"

var Module = fx.Module("declension",
	fx.Provide(
		NewDeclensioner,
	),
)
