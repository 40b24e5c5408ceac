package ledger

import "go.uber.org/fx"

var Module = fx.Module("ledger_repository",
	fx.Provide(fx.Annotate(NewPgx, fx.As(new(Repository)))),
)
