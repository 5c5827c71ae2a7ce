package commands

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
	tagging "github.com/aws/aws-sdk-go-v2/service/resourcegroupstaggingapi"
	stevedore "github.com/stevedore-deploy/stevedore"
	"github.com/stevedore-deploy/stevedore/awsiface"
	"github.com/stevedore-deploy/stevedore/env"
	"github.com/stevedore-deploy/stevedore/logger"
	"github.com/stevedore-deploy/stevedore/types"
)

// DefaultProvider builds a Stevedore against the real AWS clients.
func DefaultProvider(ctx context.Context, envars *env.Envars) (types.Stevedore, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(envars.Region),
	}
	if envars.Profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(envars.Profile))
	}
	conf := awsiface.MustLoadConfig(ctx, opts...)
	return stevedore.NewStevedore(&types.Deps{
		Env:     envars,
		Ecs:     ecs.NewFromConfig(conf),
		Tags:    tagging.NewFromConfig(conf),
		Events:  eventbridge.NewFromConfig(conf),
		Printer: logger.NewPrinter(os.Stdout, os.Stderr),
	}), nil
}
