package scrapecreators

import (
	"github.com/orgball2608/insta-feed-ingestor/internal/instagram"
	"go.uber.org/fx"
)

var Module = fx.Module("scrapecreators",
	fx.Provide(
		fx.Annotate(
			New,
			fx.As(new(instagram.Client)),
		),
	),
)
