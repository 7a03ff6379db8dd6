package features

import (
	"context"

	"go.uber.org/fx"
)

var Module = fx.Module("features",
	fx.Provide(
		NewFeatureConfig,
		NewFeatureManager,
	),
	fx.Invoke(func(lc fx.Lifecycle, fm *FeatureManager) {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return fm.Close()
			},
		})
	}),
)
