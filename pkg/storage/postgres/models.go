package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"pcbinspect/pkg/domain"
)

type PgPCB struct {
	ID          int64           `db:"id"`
	SumAccuracy float64         `db:"sum_accuracy"`
	ResultIDs   json.RawMessage `db:"result_ids"`

	OriginalFilename sql.NullString `db:"original_filename"`
	OriginalImage    []byte         `db:"original_image"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgPCB) ToDomain() (*domain.PCBSummary, error) {
	var ids []domain.ResultID
	if len(p.ResultIDs) > 0 {
		if err := json.Unmarshal(p.ResultIDs, &ids); err != nil {
			return nil, fmt.Errorf("could not unmarshal result ids: %w", err)
		}
	}
	if ids == nil {
		ids = []domain.ResultID{}
	}

	out := &domain.PCBSummary{
		ID:          domain.PCBID(p.ID),
		SumAccuracy: p.SumAccuracy,
		ResultIDs:   ids,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt.Time,
		DeletedAt:   p.DeletedAt.Time,
	}
	if p.OriginalImage != nil {
		out.Original = &domain.StoredImage{
			Filename: p.OriginalFilename.String,
			Data:     p.OriginalImage,
		}
	}

	return out, nil
}

func (p *PgPCB) FromDomain(pcb domain.PCBSummary) error {
	ids := pcb.ResultIDs
	if ids == nil {
		ids = []domain.ResultID{}
	}
	b, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("could not marshal result ids: %w", err)
	}

	*p = PgPCB{
		ID:          int64(pcb.ID),
		SumAccuracy: pcb.SumAccuracy,
		ResultIDs:   b,
	}
	if pcb.Original != nil {
		p.OriginalFilename = sql.NullString{String: pcb.Original.Filename, Valid: pcb.Original.Filename != ""}
		p.OriginalImage = pcb.Original.Data
	}

	return nil
}

// pgImage is the JSON shape of one stage image in results.images.
type pgImage struct {
	ID         int64     `json:"id,omitempty"`
	Filename   string    `json:"filename,omitempty"`
	UploadedAt time.Time `json:"uploadedAt"`
	Data       []byte    `json:"data"`
}

type PgResult struct {
	ID          int64           `db:"id"`
	PCBID       int64           `db:"pcb_id"`
	Accuracy    float64         `db:"accuracy"`
	Description string          `db:"description"`
	Images      json.RawMessage `db:"images"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgResult) ToDomain() (*domain.InspectionResult, error) {
	images := domain.ResultImages{}
	if len(p.Images) > 0 {
		var raw map[domain.Stage]pgImage
		if err := json.Unmarshal(p.Images, &raw); err != nil {
			return nil, fmt.Errorf("could not unmarshal result images: %w", err)
		}
		for stage, img := range raw {
			images[stage] = domain.StoredImage{
				ID:         img.ID,
				Filename:   img.Filename,
				UploadedAt: img.UploadedAt,
				Data:       img.Data,
			}
		}
	}

	return &domain.InspectionResult{
		ID:          domain.ResultID(p.ID),
		PCBID:       domain.PCBID(p.PCBID),
		Accuracy:    p.Accuracy,
		Description: p.Description,
		Images:      images,
		CreatedAt:   p.CreatedAt,
		DeletedAt:   p.DeletedAt.Time,
	}, nil
}

func (p *PgResult) FromDomain(r domain.InspectionResult) error {
	raw := make(map[domain.Stage]pgImage, len(r.Images))
	for stage, img := range r.Images {
		raw[stage] = pgImage{
			ID:         img.ID,
			Filename:   img.Filename,
			UploadedAt: img.UploadedAt,
			Data:       img.Data,
		}
	}
	b, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("could not marshal result images: %w", err)
	}

	*p = PgResult{
		ID:          int64(r.ID),
		PCBID:       int64(r.PCBID),
		Accuracy:    r.Accuracy,
		Description: r.Description,
		Images:      b,
	}

	return nil
}

func pgPCBsToDomain(rows []PgPCB) ([]domain.PCBSummary, error) {
	out := make([]domain.PCBSummary, 0, len(rows))
	for _, row := range rows {
		d, err := row.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}

func domainResultsToPg(results []domain.InspectionResult) ([]PgResult, error) {
	out := make([]PgResult, len(results))
	for i := range out {
		if err := out[i].FromDomain(results[i]); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func pgResultsToDomain(rows []PgResult) ([]domain.InspectionResult, error) {
	out := make([]domain.InspectionResult, 0, len(rows))
	for _, row := range rows {
		d, err := row.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}
