package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/heartmarshall/petmemorial-backend/internal/domain"
	"github.com/heartmarshall/petmemorial-backend/internal/service/pet"
	"github.com/heartmarshall/petmemorial-backend/internal/validation"
)

type petService interface {
	Create(ctx context.Context, input pet.CreateInput) (*domain.Pet, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Pet, error)
	Update(ctx context.Context, input pet.UpdateInput) (*domain.Pet, error)
	List(ctx context.Context, input pet.ListInput) (*pet.ListResult, error)
	AddPhoto(ctx context.Context, input pet.AddPhotoInput) (*domain.PetPhoto, error)
	ListPhotos(ctx context.Context, petID uuid.UUID) ([]domain.PetPhoto, error)
}

// PetHandler serves memorial and photo endpoints.
type PetHandler struct {
	svc petService
	log *slog.Logger
}

// NewPetHandler creates a PetHandler.
func NewPetHandler(svc petService, logger *slog.Logger) *PetHandler {
	return &PetHandler{svc: svc, log: logger.With("handler", "pet")}
}

type createPetRequest struct {
	Name        string   `json:"name"        validate:"required,max=100"`
	Species     string   `json:"species"     validate:"required,max=50"`
	Epitaph     *string  `json:"epitaph"     validate:"omitempty,max=500"`
	BornOn      *string  `json:"bornOn"      validate:"omitempty,datetime=2006-01-02"`
	DiedOn      *string  `json:"diedOn"      validate:"omitempty,datetime=2006-01-02"`
	Latitude    *float64 `json:"lat"         validate:"omitempty,gte=-90,lte=90"`
	Longitude   *float64 `json:"lng"         validate:"omitempty,gte=-180,lte=180"`
	Environment string   `json:"environment" validate:"omitempty,oneof=MEADOW GARDEN HOUSE BEACH"`
}

type updatePetRequest struct {
	Name        *string  `json:"name"        validate:"omitempty,min=1,max=100"`
	Species     *string  `json:"species"     validate:"omitempty,min=1,max=50"`
	Epitaph     *string  `json:"epitaph"     validate:"omitempty,max=500"`
	Latitude    *float64 `json:"lat"         validate:"omitempty,gte=-90,lte=90"`
	Longitude   *float64 `json:"lng"         validate:"omitempty,gte=-180,lte=180"`
	Environment *string  `json:"environment" validate:"omitempty,oneof=MEADOW GARDEN HOUSE BEACH"`
}

type addPhotoRequest struct {
	URL     string  `json:"url"     validate:"required,http_url,max=2048"`
	Caption *string `json:"caption" validate:"omitempty,max=300"`
}

type petListResponse struct {
	Items []petResponse `json:"items"`
	Total int           `json:"total"`
}

// Create handles POST /pets.
func (h *PetHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPetRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	bornOn, diedOn, err := parseLifeDates(req.BornOn, req.DiedOn)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	created, err := h.svc.Create(r.Context(), pet.CreateInput{
		Name:        req.Name,
		Species:     req.Species,
		Epitaph:     req.Epitaph,
		BornOn:      bornOn,
		DiedOn:      diedOn,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Environment: domain.Environment(req.Environment),
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toPetResponse(*created))
}

// Get handles GET /pets/{petId}.
func (h *PetHandler) Get(w http.ResponseWriter, r *http.Request) {
	petID, err := pathUUID(r, "petId", domain.ErrPetNotFound)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	p, err := h.svc.Get(r.Context(), petID)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPetResponse(*p))
}

// Update handles PATCH /pets/{petId}.
func (h *PetHandler) Update(w http.ResponseWriter, r *http.Request) {
	petID, err := pathUUID(r, "petId", domain.ErrPetNotFound)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	var req updatePetRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	input := pet.UpdateInput{
		PetID:     petID,
		Name:      req.Name,
		Species:   req.Species,
		Epitaph:   req.Epitaph,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}
	if req.Environment != nil {
		env := domain.Environment(*req.Environment)
		input.Environment = &env
	}

	updated, err := h.svc.Update(r.Context(), input)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPetResponse(*updated))
}

// List handles GET /pets?ownerId=&minLat=&maxLat=&minLng=&maxLng=&limit=&offset=.
// The bounding box applies only when all four corners are given.
func (h *PetHandler) List(w http.ResponseWriter, r *http.Request) {
	input, err := listInputFromQuery(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	result, err := h.svc.List(r.Context(), input)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, petListResponse{
		Items: mapSlice(result.Pets, toPetResponse),
		Total: result.Total,
	})
}

// AddPhoto handles POST /pets/{petId}/photos.
func (h *PetHandler) AddPhoto(w http.ResponseWriter, r *http.Request) {
	petID, err := pathUUID(r, "petId", domain.ErrPetNotFound)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	var req addPhotoRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	photo, err := h.svc.AddPhoto(r.Context(), pet.AddPhotoInput{
		PetID:   petID,
		URL:     req.URL,
		Caption: req.Caption,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toPhotoResponse(*photo))
}

// ListPhotos handles GET /pets/{petId}/photos.
func (h *PetHandler) ListPhotos(w http.ResponseWriter, r *http.Request) {
	petID, err := pathUUID(r, "petId", domain.ErrPetNotFound)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	photos, err := h.svc.ListPhotos(r.Context(), petID)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, mapSlice(photos, toPhotoResponse))
}

func parseLifeDates(born, died *string) (*time.Time, *time.Time, error) {
	var fields []domain.FieldError

	bornOn, err := parseDate(born)
	if err != nil {
		fields = append(fields, domain.FieldError{Field: "bornOn", Message: "must match format 2006-01-02"})
	}
	diedOn, err := parseDate(died)
	if err != nil {
		fields = append(fields, domain.FieldError{Field: "diedOn", Message: "must match format 2006-01-02"})
	}

	if err := validation.Merge(nil, fields...); err != nil {
		return nil, nil, err
	}
	return bornOn, diedOn, nil
}

func listInputFromQuery(r *http.Request) (pet.ListInput, error) {
	var (
		input  pet.ListInput
		fields []domain.FieldError
	)

	if owner := r.URL.Query().Get("ownerId"); owner != "" {
		input.OwnerID = &owner
	}

	var fe *domain.FieldError
	if input.Limit, fe = queryInt(r, "limit"); fe != nil {
		fields = append(fields, *fe)
	}
	if input.Offset, fe = queryInt(r, "offset"); fe != nil {
		fields = append(fields, *fe)
	}

	corners := make([]*float64, 0, 4)
	for _, name := range []string{"minLat", "maxLat", "minLng", "maxLng"} {
		v, fe := queryFloat(r, name)
		if fe != nil {
			fields = append(fields, *fe)
		}
		corners = append(corners, v)
	}

	switch lo.CountBy(corners, func(c *float64) bool { return c != nil }) {
	case 0:
	case len(corners):
		input.Bounds = &domain.BoundingBox{
			MinLat: *corners[0],
			MaxLat: *corners[1],
			MinLng: *corners[2],
			MaxLng: *corners[3],
		}
	default:
		if len(fields) == 0 {
			fields = append(fields, domain.FieldError{Field: "bounds", Message: "minLat, maxLat, minLng and maxLng must be given together"})
		}
	}

	if err := validation.Merge(nil, fields...); err != nil {
		return pet.ListInput{}, err
	}
	return input, nil
}
