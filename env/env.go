package env

import (
	"time"

	"golang.org/x/xerrors"
)

// Envars carries the process configuration shared by all commands.
// Values are bound from CLI flags with STEVEDORE_* environment variable
// fallbacks.
type Envars struct {
	_       struct{} `type:"struct"`
	CI      bool     `json:"ci" type:"bool"`
	Region  string   `json:"region" type:"string"`
	Profile string   `json:"profile" type:"string"`
	Cluster string   `json:"cluster" type:"string" required:"true"`
	Service string   `json:"service" type:"string"`
	// DeployWaitSec bounds the post-deploy poll loop; zero means the
	// default.
	DeployWaitSec int
	// PollIntervalSec is the pause between deployment state checks.
	PollIntervalSec int
	NoColor         bool
}

// required
const RegionKey = "STEVEDORE_REGION"
const ClusterKey = "STEVEDORE_CLUSTER"

// optional
const ServiceKey = "STEVEDORE_SERVICE"
const ProfileKey = "STEVEDORE_PROFILE"
const DeployWaitKey = "STEVEDORE_DEPLOY_TIMEOUT"
const PollIntervalKey = "STEVEDORE_POLL_INTERVAL"

const defaultDeployWait = 5 * time.Minute
const defaultPollInterval = 2 * time.Second

func EnsureEnvars(dest *Envars) error {
	if dest.Region == "" {
		return xerrors.Errorf("--region [%s] is required", RegionKey)
	}
	if dest.Cluster == "" {
		return xerrors.Errorf("--cluster [%s] is required", ClusterKey)
	}
	return nil
}

func MergeEnvars(dest *Envars, src *Envars) {
	if src.Region != "" {
		dest.Region = src.Region
	}
	if src.Profile != "" {
		dest.Profile = src.Profile
	}
	if src.Cluster != "" {
		dest.Cluster = src.Cluster
	}
	if src.Service != "" {
		dest.Service = src.Service
	}
	if src.DeployWaitSec > 0 {
		dest.DeployWaitSec = src.DeployWaitSec
	}
	if src.PollIntervalSec > 0 {
		dest.PollIntervalSec = src.PollIntervalSec
	}
}

func (e *Envars) DeployWait() time.Duration {
	if e.DeployWaitSec > 0 {
		return time.Duration(e.DeployWaitSec) * time.Second
	}
	return defaultDeployWait
}

func (e *Envars) PollInterval() time.Duration {
	if e.PollIntervalSec > 0 {
		return time.Duration(e.PollIntervalSec) * time.Second
	}
	return defaultPollInterval
}
