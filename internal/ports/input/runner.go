package input

import (
	"context"

	"i18nextract/internal/application"
)

// RunnerUseCase drives one full extract-and-merge run.
type RunnerUseCase interface {
	Run(ctx context.Context) (*application.RunResult, error)
}
