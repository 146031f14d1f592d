package bpml

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/banzg00/bpml/pkg/bpml/model"
	"github.com/banzg00/bpml/pkg/storage"
)

// ModelDeployment is a parsed and validated model document.
type ModelDeployment struct {
	Key      int64
	Model    model.Model
	Checksum string
	Resource string
}

// LoadFromFile parses a model document produced by the parser front end,
// validates it and records the run in the configured store. A document whose
// checksum already passed validation in the store is not validated again.
// The returned deployment is nil when validation failed; the validation
// error is returned verbatim.
func (engine *Engine) LoadFromFile(ctx context.Context, filename string) (*ModelDeployment, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to load from file: %w", err)
	}
	return engine.load(ctx, data, filename)
}

// LoadFromBytes parses a model document from a byte slice, validates it and
// records the run in the configured store.
func (engine *Engine) LoadFromBytes(ctx context.Context, data []byte) (*ModelDeployment, error) {
	return engine.load(ctx, data, "")
}

func (engine *Engine) load(ctx context.Context, data []byte, resourceName string) (*ModelDeployment, error) {
	md5sum := md5.Sum(data)
	checksum := hex.EncodeToString(md5sum[:])

	var m model.Model
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal model document: %w", err)
	}

	deployment := ModelDeployment{
		Key:      engine.generateKey(),
		Model:    m,
		Checksum: checksum,
		Resource: resourceName,
	}

	// an unchanged document that already passed keeps its key and is not
	// validated or recorded again
	if engine.persistence != nil {
		prior, found, err := engine.persistence.FindLatestRunByChecksum(ctx, checksum)
		if err != nil {
			engine.logger.Warn("failed to look up prior validation run", "checksum", checksum, "error", err)
		} else if found && prior.Outcome == storage.RunOutcomePassed {
			engine.logger.Debug("document already validated, reusing prior run",
				"project", m.ProjectInfo.Name, "checksum", checksum, "run", prior.ID)
			deployment.Key = prior.Key
			return &deployment, nil
		}
	}

	started := time.Now()
	validationErr := engine.Validate(ctx, &m)
	engine.recordRun(ctx, &deployment, started, validationErr)

	if validationErr != nil {
		engine.logger.Error("model validation failed",
			"project", m.ProjectInfo.Name, "resource", resourceName, "error", validationErr)
		return nil, validationErr
	}
	engine.logger.Debug("model validated",
		"project", m.ProjectInfo.Name, "resource", resourceName, "checksum", checksum)
	return &deployment, nil
}

func (engine *Engine) recordRun(ctx context.Context, deployment *ModelDeployment, started time.Time, validationErr error) {
	if engine.persistence == nil {
		return
	}
	run := storage.ValidationRun{
		ID:          uuid.NewString(),
		Key:         deployment.Key,
		ProjectName: deployment.Model.ProjectInfo.Name,
		Resource:    deployment.Resource,
		Checksum:    deployment.Checksum,
		Outcome:     storage.RunOutcomePassed,
		StartedAt:   started,
		DurationMS:  time.Since(started).Milliseconds(),
	}
	if validationErr != nil {
		run.Outcome = storage.RunOutcomeFailed
		run.Error = validationErr.Error()
		run.ErrorKind = ErrorKind(validationErr)
	}
	if err := engine.persistence.SaveValidationRun(ctx, run); err != nil {
		engine.logger.Warn("failed to record validation run", "error", err)
	}
}
