package ingestorimpl

import (
	"github.com/orgball2608/insta-feed-ingestor/internal/ingestor"
	"go.uber.org/fx"
)

var Module = fx.Module("ingestor",
	fx.Provide(
		fx.Annotate(
			New,
			fx.As(new(ingestor.Client)),
		),
	),
)
