package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"arqzoy-backend/internal/access"
	"arqzoy-backend/internal/models"
)

const tok = "abcdefghijklmnopqrstuvwxyz"

func TestOperatorMayDoAnything(t *testing.T) {
	op := access.Operator()
	kinds := []access.Kind{
		access.KindClient,
		access.KindProject,
		access.KindFile,
		access.KindPortfolioDesign,
		access.KindPersonalProfile,
	}
	ops := []access.Operation{access.OpRead, access.OpWrite, access.OpDownload}

	for _, kind := range kinds {
		for _, operation := range ops {
			rec := access.Record{Kind: kind}
			assert.Equal(t, access.Allow, access.Decide(op, rec, operation),
				"operator kind=%d op=%d", kind, operation)
		}
	}
}

func TestWritesDeniedForEveryoneElse(t *testing.T) {
	actors := []access.Actor{access.Anonymous(), access.TokenHolder(tok)}
	kinds := []access.Kind{
		access.KindClient,
		access.KindProject,
		access.KindFile,
		access.KindPortfolioDesign,
		access.KindPersonalProfile,
	}

	for _, actor := range actors {
		for _, kind := range kinds {
			// Even a matching token never grants a write.
			rec := access.Record{Kind: kind, Token: tok, Public: true}
			assert.Equal(t, access.Deny, access.Decide(actor, rec, access.OpWrite),
				"actor=%v kind=%d", actor, kind)
		}
	}
}

func TestClientRecordsNeverReadableDirectly(t *testing.T) {
	rec := access.Record{Kind: access.KindClient}
	assert.Equal(t, access.Deny, access.Decide(access.Anonymous(), rec, access.OpRead))
	assert.Equal(t, access.Deny, access.Decide(access.TokenHolder(tok), rec, access.OpRead))
}

func TestProjectVisibility(t *testing.T) {
	public := access.Record{Kind: access.KindProject, Token: tok, Public: true}
	hidden := access.Record{Kind: access.KindProject, Token: tok, Public: false}

	// Anonymous sees only the public subset of visible projects.
	assert.Equal(t, access.AllowPublicSubset, access.Decide(access.Anonymous(), public, access.OpRead))
	assert.Equal(t, access.Deny, access.Decide(access.Anonymous(), hidden, access.OpRead))

	// A matching token grants the full read, visible or not.
	assert.Equal(t, access.Allow, access.Decide(access.TokenHolder(tok), public, access.OpRead))
	assert.Equal(t, access.Allow, access.Decide(access.TokenHolder(tok), hidden, access.OpRead))

	// A non-matching token falls back to the anonymous view.
	other := access.TokenHolder("zzzzzzzzzzzzzzzzzzzzzzzzzz")
	assert.Equal(t, access.AllowPublicSubset, access.Decide(other, public, access.OpRead))
	assert.Equal(t, access.Deny, access.Decide(other, hidden, access.OpRead))
}

func TestEmptyTokenNeverMatches(t *testing.T) {
	// A record with no token must not match a holder presenting "".
	rec := access.Record{Kind: access.KindProject, Token: "", Public: false}
	assert.Equal(t, access.Deny, access.Decide(access.TokenHolder(""), rec, access.OpRead))
}

func TestFileReadRequiresTokenMatch(t *testing.T) {
	rec := access.Record{
		Kind:          access.KindFile,
		Token:         tok,
		ProjectStatus: models.ProjectStatusInProgress,
		FileCategory:  models.FileCategoryPhoto,
	}

	assert.Equal(t, access.Allow, access.Decide(access.TokenHolder(tok), rec, access.OpRead))
	assert.Equal(t, access.Deny, access.Decide(access.Anonymous(), rec, access.OpRead))
	assert.Equal(t, access.Deny, access.Decide(access.TokenHolder("wrong"), rec, access.OpRead))
}

func TestDownloadGatingByCategoryAndStatus(t *testing.T) {
	holder := access.TokenHolder(tok)

	cases := []struct {
		name     string
		category string
		status   string
		want     access.Decision
	}{
		{"photo downloadable while in progress", models.FileCategoryPhoto, models.ProjectStatusInProgress, access.Allow},
		{"video downloadable while in progress", models.FileCategoryVideo, models.ProjectStatusInProgress, access.Allow},
		{"plan locked while in progress", models.FileCategoryPlan2D, models.ProjectStatusInProgress, access.Deny},
		{"plan locked under review", models.FileCategoryPlan2D, models.ProjectStatusReview, access.Deny},
		{"plan locked while paused", models.FileCategoryPlan2D, models.ProjectStatusPaused, access.Deny},
		{"plan unlocked once complete", models.FileCategoryPlan2D, models.ProjectStatusComplete, access.Allow},
		{"document locked while in progress", models.FileCategoryDocument, models.ProjectStatusInProgress, access.Deny},
		{"document unlocked once complete", models.FileCategoryDocument, models.ProjectStatusComplete, access.Allow},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := access.Record{
				Kind:          access.KindFile,
				Token:         tok,
				ProjectStatus: tc.status,
				FileCategory:  tc.category,
			}
			assert.Equal(t, tc.want, access.Decide(holder, rec, access.OpDownload))
		})
	}
}

func TestDesignVisibility(t *testing.T) {
	public := access.Record{Kind: access.KindPortfolioDesign, Public: true}
	hidden := access.Record{Kind: access.KindPortfolioDesign, Public: false}

	assert.Equal(t, access.Allow, access.Decide(access.Anonymous(), public, access.OpRead))
	assert.Equal(t, access.Deny, access.Decide(access.Anonymous(), hidden, access.OpRead))
}

func TestProfileReadableByAnyone(t *testing.T) {
	rec := access.Record{Kind: access.KindPersonalProfile}
	assert.Equal(t, access.Allow, access.Decide(access.Anonymous(), rec, access.OpRead))
	assert.Equal(t, access.Allow, access.Decide(access.TokenHolder(tok), rec, access.OpRead))
	assert.Equal(t, access.Deny, access.Decide(access.Anonymous(), rec, access.OpWrite))
}
