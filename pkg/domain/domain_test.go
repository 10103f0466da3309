package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"pcbinspect/pkg/domain"
)

func TestVerdictFor(t *testing.T) {
	tests := []struct {
		accuracy float64
		want     domain.Verdict
	}{
		{accuracy: 0, want: domain.VerdictFail},
		{accuracy: 50, want: domain.VerdictFail},
		{accuracy: 50.01, want: domain.VerdictPass},
		{accuracy: 100, want: domain.VerdictPass},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, domain.VerdictFor(tt.accuracy), "accuracy %v", tt.accuracy)
	}

	require.Equal(t, domain.VerdictPass, domain.PCBSummary{SumAccuracy: 75}.Verdict())
}

func TestGrade(t *testing.T) {
	require.Equal(t, "The PCB picture does not match or is incorrect.", domain.Grade(80))
	require.Equal(t, "The PCB picture has many errors.", domain.Grade(80.5))
	require.Equal(t, "The PCB picture has many errors.", domain.Grade(97))
	require.Equal(t, "The PCB picture has some errors.", domain.Grade(99))
}

func TestUpload(t *testing.T) {
	tests := []struct {
		name        string
		upload      domain.Upload
		contentType string
		valid       bool
	}{
		{name: "jpeg", upload: domain.Upload{Name: "board.JPG", Data: []byte{1}}, contentType: "image/jpeg", valid: true},
		{name: "png", upload: domain.Upload{Name: "board.png", Data: []byte{1}}, contentType: "image/png", valid: true},
		{name: "empty payload", upload: domain.Upload{Name: "board.jpeg"}, contentType: "image/jpeg"},
		{name: "unsupported", upload: domain.Upload{Name: "board.gif", Data: []byte{1}}},
		{name: "no extension", upload: domain.Upload{Name: "board", Data: []byte{1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.contentType, tt.upload.ContentType())
			require.Equal(t, tt.valid, tt.upload.Valid())
		})
	}
}

func TestStreamKind_Valid(t *testing.T) {
	require.True(t, domain.StreamDetection.Valid())
	require.True(t, domain.StreamFactory.Valid())
	require.False(t, domain.StreamKind("camera").Valid())
}

func TestAnalysis_Status(t *testing.T) {
	require.Equal(t, "PCB detected!", (&domain.Analysis{Detected: true}).Status())
	require.Equal(t, "No PCB detected", (&domain.Analysis{}).Status())
}

func TestIDs_String(t *testing.T) {
	require.Equal(t, "42", domain.PCBID(42).String())
	require.Equal(t, "7", domain.ResultID(7).String())

	id := uuid.New()
	require.Equal(t, id.String(), domain.OperatorID(id).String())
}

func TestStages_Order(t *testing.T) {
	require.Equal(t, []domain.Stage{
		domain.StageTemplate, domain.StageDefective, domain.StageAligned,
		domain.StageDiff, domain.StageCleaned, domain.StageResult,
	}, domain.Stages())
}
