package httpbackend

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
	"time"

	"pcbinspect/pkg/domain"
	"pcbinspect/pkg/serrors"
)

// Wire shapes of the backend's JSON responses.

type prepareResponse struct {
	Detected bool              `json:"detected"`
	Message  string            `json:"message"`
	Accuracy *float64          `json:"accuracy"`
	Result   string            `json:"result"`
	Images   map[string]string `json:"images"`
}

type detectResponse struct {
	Detected     bool   `json:"detected"`
	DisplayImage string `json:"display_image"`
	PCBImage     string `json:"pcb_image"`
	Error        string `json:"error"`
}

type createPCBResponse struct {
	Status string `json:"status"`
	Result struct {
		PCBID int64 `json:"pcb_id"`
	} `json:"result"`
}

type imageJSON struct {
	ImageID    int64  `json:"image_id"`
	Filename   string `json:"filename"`
	UploadedAt string `json:"uploaded_at"`
	ImageData  string `json:"image_data"`
}

type resultResponse struct {
	ResultList struct {
		ResultsID   int64                `json:"results_id"`
		PCBResultID int64                `json:"pcb_result_id"`
		Accuracy    float64              `json:"accuracy"`
		Description string               `json:"description"`
		ImageList   map[string]imageJSON `json:"imageList"`
	} `json:"result_List"`
}

type summaryJSON struct {
	PCBID       int64   `json:"pcb_id"`
	SumAccuracy float64 `json:"sum_accuracy"`
	ResultIDs   []int64 `json:"result_ids"`
	Filename    string  `json:"filename"`
	ImageData   string  `json:"image_data"`
}

type allResultsResponse struct {
	Results []summaryJSON `json:"results"`
}

// errorResponse covers the error bodies the backend produces: framework
// errors under "detail" (a string or a validation list) and handler errors
// under "message"/"error".
type errorResponse struct {
	Detail  json.RawMessage `json:"detail"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

// uploadedAtLayouts are the timestamp formats seen in image records.
var uploadedAtLayouts = []string{ //nolint: gochecknoglobals
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05.999999",
}

func parseUploadedAt(s string) time.Time {
	for _, layout := range uploadedAtLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}

	return time.Time{}
}

// decodeImage decodes a base64 image, accepting an optional data URL prefix.
// An empty input yields nil.
func decodeImage(s string) ([]byte, error) {
	if s == "" {
		return nil, nil
	}
	if i := strings.Index(s, ";base64,"); i >= 0 && strings.HasPrefix(s, "data:") {
		s = s[i+len(";base64,"):]
	}

	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("could not decode image: %w", err)
	}

	return b, nil
}

func (j imageJSON) stored() (domain.StoredImage, error) {
	data, err := decodeImage(j.ImageData)
	if err != nil {
		return domain.StoredImage{}, err
	}

	return domain.StoredImage{
		ID:         j.ImageID,
		Filename:   j.Filename,
		UploadedAt: parseUploadedAt(j.UploadedAt),
		Data:       data,
	}, nil
}

func (s summaryJSON) summary() (domain.PCBSummary, error) {
	out := domain.PCBSummary{
		ID:          domain.PCBID(s.PCBID),
		SumAccuracy: s.SumAccuracy,
		ResultIDs:   make([]domain.ResultID, 0, len(s.ResultIDs)),
	}
	for _, id := range s.ResultIDs {
		out.ResultIDs = append(out.ResultIDs, domain.ResultID(id))
	}
	if s.ImageData != "" {
		data, err := decodeImage(s.ImageData)
		if err != nil {
			return domain.PCBSummary{}, fmt.Errorf("pcb %d: %w", s.PCBID, err)
		}
		out.Original = &domain.StoredImage{Filename: s.Filename, Data: data}
	}

	return out, nil
}

// errorDetail extracts a human readable message from an error body.
func errorDetail(b []byte) string {
	var er errorResponse
	if err := json.Unmarshal(b, &er); err == nil {
		var detail string
		switch {
		case len(er.Detail) > 0 && json.Unmarshal(er.Detail, &detail) == nil && detail != "":
			return detail
		case len(er.Detail) > 0 && string(er.Detail) != "null":
			return string(er.Detail)
		case er.Message != "":
			return er.Message
		case er.Error != "":
			return er.Error
		}
	}

	return strings.TrimSpace(string(b))
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"") //nolint: gochecknoglobals

// multipartBody encodes uploads as repeated file parts named field.
func multipartBody(field string, uploads ...domain.Upload) (io.Reader, string, error) {
	for _, u := range uploads {
		if !u.Valid() {
			return nil, "", serrors.With(serrors.ErrBadRequest,
				"invalid file %q: only JPG, JPEG and PNG images are allowed", u.Name)
		}
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, u := range uploads {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name="%s"; filename="%s"`, quoteEscaper.Replace(field), quoteEscaper.Replace(u.Name)))
		h.Set("Content-Type", u.ContentType())

		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", fmt.Errorf("could not create form part: %w", err)
		}
		if _, err := part.Write(u.Data); err != nil {
			return nil, "", fmt.Errorf("could not write form part: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("could not close form: %w", err)
	}

	return &buf, w.FormDataContentType(), nil
}
