package orchestrator

import (
	"context"
	"errors"

	"github.com/goliatone/go-certgen/pkg/derive"
	"github.com/goliatone/go-certgen/pkg/document"
	"github.com/goliatone/go-certgen/pkg/packager"
	"github.com/goliatone/go-certgen/pkg/record"
	"github.com/goliatone/go-certgen/pkg/report"
)

type pipeline struct {
	resolver *record.Resolver
	deriver  *derive.Deriver
	template *document.Template
	packager *packager.Packager
	emit     func(report.Event)
}

// process runs one entity to completion. A non-nil Skip means no artifact
// was written.
func (p *pipeline) process(ctx context.Context, key string) (packager.Artifact, *report.Skip) {
	res := p.resolver.Resolve(key)
	for _, a := range res.Assignments {
		p.emit(report.Event{
			Severity: report.SeverityInfo,
			Kind:     report.KindFieldResolved,
			Key:      key,
			Field:    string(a.Field),
			Value:    a.Value,
			Origin:   a.Origin,
		})
	}
	if !res.Complete() {
		fields := make([]string, len(res.Missing))
		for i, name := range res.Missing {
			fields[i] = string(name)
			p.emit(report.Event{
				Severity: report.SeverityError,
				Kind:     report.KindFieldMissing,
				Key:      key,
				Field:    string(name),
				Reason:   "required field missing",
			})
		}
		return packager.Artifact{}, &report.Skip{Key: key, Kind: report.KindFieldMissing, Fields: fields, Reason: res.Err().Error()}
	}

	derived, err := p.deriver.Derive(res.Record)
	if err != nil {
		var rejected *derive.RejectedError
		if errors.As(err, &rejected) {
			p.emit(report.Event{
				Severity: report.SeverityError,
				Kind:     report.KindInvalidCode,
				Key:      key,
				Field:    string(rejected.Field),
				Value:    rejected.Value,
				Reason:   string(rejected.Reason),
			})
			return packager.Artifact{}, &report.Skip{
				Key:    key,
				Kind:   report.KindInvalidCode,
				Fields: []string{string(rejected.Field)},
				Value:  rejected.Value,
				Reason: string(rejected.Reason),
			}
		}
		return p.failed(key, err)
	}

	content, err := p.template.Instantiate(derived)
	if err != nil {
		var violation *document.ContractViolationError
		if errors.As(err, &violation) {
			fields := make([]string, len(violation.Fields))
			for i, name := range violation.Fields {
				fields[i] = string(name)
			}
			p.emit(report.Event{
				Severity: report.SeverityError,
				Kind:     report.KindContractViolation,
				Key:      key,
				Reason:   err.Error(),
			})
			return packager.Artifact{}, &report.Skip{Key: key, Kind: report.KindContractViolation, Fields: fields, Reason: err.Error()}
		}
		return p.failed(key, err)
	}

	artifact, err := p.packager.Package(ctx, derived, content)
	if err != nil {
		return p.failed(key, err)
	}
	p.emit(report.Event{
		Severity: report.SeverityInfo,
		Kind:     report.KindArtifactWritten,
		Key:      key,
		Value:    artifact.Name,
		Origin:   artifact.Location,
	})
	return artifact, nil
}

func (p *pipeline) failed(key string, err error) (packager.Artifact, *report.Skip) {
	p.emit(report.Event{
		Severity: report.SeverityError,
		Kind:     report.KindArtifactFailed,
		Key:      key,
		Reason:   err.Error(),
	})
	return packager.Artifact{}, &report.Skip{Key: key, Kind: report.KindArtifactFailed, Reason: err.Error()}
}
