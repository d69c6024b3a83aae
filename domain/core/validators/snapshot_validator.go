package validators

import (
	"fmt"

	"modeler-backend/domain/config"
	"modeler-backend/domain/core/entities"
	"modeler-backend/domain/core/valueobjects"
)

// IssueCode classifies a snapshot diagnostic
type IssueCode string

const (
	IssueDuplicateID   IssueCode = "duplicate_id"
	IssueUnknownLayer  IssueCode = "unknown_layer"
	IssueMissingParent IssueCode = "missing_parent"
	IssueCyclicLineage IssueCode = "cyclic_lineage"
	IssueSnapshotSize  IssueCode = "snapshot_too_large"
	IssueFamilyDepth   IssueCode = "family_too_deep"
)

// Issue is one data-quality finding about a model snapshot
type Issue struct {
	Code    IssueCode
	ModelID valueobjects.ModelID
	Message string
}

// SnapshotValidator inspects a flat model snapshot for data-quality
// problems. Findings are diagnostics for the host UI, never errors:
// the resolution algorithms defend against all of them at runtime.
type SnapshotValidator struct {
	cfg *config.DomainConfig
}

// NewSnapshotValidator creates a validator with the given limits
func NewSnapshotValidator(cfg *config.DomainConfig) *SnapshotValidator {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	return &SnapshotValidator{cfg: cfg}
}

// Validate reports every issue found in the snapshot. Returns nothing
// when diagnostics are disabled in the configuration.
func (v *SnapshotValidator) Validate(models []*entities.Model) []Issue {
	issues := []Issue{}
	if !v.cfg.EnableSnapshotDiagnostics {
		return issues
	}

	if len(models) > v.cfg.MaxModelsPerSnapshot {
		issues = append(issues, Issue{
			Code:    IssueSnapshotSize,
			Message: fmt.Sprintf("snapshot holds %d models, limit is %d", len(models), v.cfg.MaxModelsPerSnapshot),
		})
	}

	seen := make(map[valueobjects.ModelID]bool, len(models))
	byID := make(map[valueobjects.ModelID]*entities.Model, len(models))

	for _, model := range models {
		if model == nil {
			continue
		}
		// Duplicates are tolerated by default (last occurrence wins in
		// the index); strict hosts opt in to the diagnostic
		if seen[model.ID()] && !v.cfg.AllowDuplicateModelIDs {
			issues = append(issues, Issue{
				Code:    IssueDuplicateID,
				ModelID: model.ID(),
				Message: fmt.Sprintf("model id %s appears more than once", model.ID()),
			})
		}
		seen[model.ID()] = true
		byID[model.ID()] = model

		if !model.Layer().IsValid() {
			issues = append(issues, Issue{
				Code:    IssueUnknownLayer,
				ModelID: model.ID(),
				Message: fmt.Sprintf("model %s has unknown layer %q", model.ID(), model.Layer()),
			})
		}
	}

	for _, model := range models {
		if model == nil || !model.HasParent() {
			continue
		}
		if _, ok := byID[model.ParentID()]; !ok && !v.cfg.AllowOrphanParents {
			issues = append(issues, Issue{
				Code:    IssueMissingParent,
				ModelID: model.ID(),
				Message: fmt.Sprintf("model %s references missing parent %s", model.ID(), model.ParentID()),
			})
		}
		cyclic, depth := v.walkLineage(model, byID)
		if cyclic {
			issues = append(issues, Issue{
				Code:    IssueCyclicLineage,
				ModelID: model.ID(),
				Message: fmt.Sprintf("model %s sits on a cyclic parent chain", model.ID()),
			})
		}
		if depth > v.cfg.MaxFamilyDepth {
			issues = append(issues, Issue{
				Code:    IssueFamilyDepth,
				ModelID: model.ID(),
				Message: fmt.Sprintf("model %s has a lineage %d levels deep, limit is %d", model.ID(), depth, v.cfg.MaxFamilyDepth),
			})
		}
	}

	return issues
}

// walkLineage walks the parent chain with a visited set and reports
// whether the walk revisits a model, plus the chain length reached
// (the model itself included)
func (v *SnapshotValidator) walkLineage(model *entities.Model, byID map[valueobjects.ModelID]*entities.Model) (bool, int) {
	visited := make(map[valueobjects.ModelID]bool)
	current := model
	depth := 0

	for current != nil {
		if visited[current.ID()] {
			return true, depth
		}
		visited[current.ID()] = true
		depth++
		if !current.HasParent() {
			return false, depth
		}
		current = byID[current.ParentID()]
	}

	return false, depth
}
