package fx

import (
	"github.com/orgball2608/insta-feed-ingestor/internal/repositories"
	"github.com/orgball2608/insta-feed-ingestor/internal/repositories/ledger"
	"github.com/orgball2608/insta-feed-ingestor/internal/repositories/post"
	"github.com/orgball2608/insta-feed-ingestor/internal/repositories/profile"
	"go.uber.org/fx"
)

var Module = fx.Options(
	profile.Module,
	post.Module,
	ledger.Module,
	fx.Provide(
		fx.Annotate(
			repositories.NewPgxTransactor,
			fx.As(new(repositories.Transactor)),
		),
	),
)
