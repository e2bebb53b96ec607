package ports

import "github.com/aalvaropc/serieslab/internal/domain"

// ArtifactStore persists report artifacts for reproducibility.
type ArtifactStore interface {
	SaveReport(report domain.ReportArtifact) (id string, err error)
	// ListReports can be added later (MVP: optional).
}
