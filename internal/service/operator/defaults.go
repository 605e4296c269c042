package operator

import "time"

const (
	defaultPollInterval = 5 * time.Second
	idleSleepDuration   = 30 * time.Second

	defaultProposalWindow = 8
	defaultWorkerCount    = 4

	defaultCancelBatchSize = 64
)
