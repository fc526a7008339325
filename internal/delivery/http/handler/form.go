package handler

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strconv"

	"pet-census-api/internal/delivery/dto"
	"pet-census-api/internal/infrastructure/storage"
)

const maxUploadSize = 10 << 20 // 10 MiB

var errBadRequestBody = errors.New("invalid request body")

// isMultipart reports whether the request carries form-data (used by clients
// that attach a photo). JSON bodies are handled by the caller directly.
func isMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "multipart/form-data"
}

// photoFromForm extracts the optional "photo" file from an already-parsed
// multipart form. A missing file yields a nil upload.
func photoFromForm(r *http.Request) (*storage.Upload, error) {
	file, header, err := r.FormFile("photo")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	return &storage.Upload{Filename: header.Filename, Content: file}, nil
}

// decodeCreatePetRequest reads a pet payload from JSON or multipart form.
func decodeCreatePetRequest(r *http.Request) (*dto.CreatePetRequest, *storage.Upload, error) {
	if !isMultipart(r) {
		var req dto.CreatePetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, nil, errBadRequestBody
		}
		return &req, nil, nil
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return nil, nil, errBadRequestBody
	}

	req := &dto.CreatePetRequest{
		Name:            r.FormValue("name"),
		Species:         r.FormValue("species"),
		Breed:           r.FormValue("breed"),
		Size:            r.FormValue("size"),
		FoodType:        r.FormValue("food_type"),
		LastVaccination: r.FormValue("last_vaccination"),
		Location:        r.FormValue("location"),
	}

	if v := r.FormValue("age"); v != "" {
		age, err := strconv.Atoi(v)
		if err != nil {
			return nil, nil, errBadRequestBody
		}
		req.Age = &age
	}
	if v := r.FormValue("vaccinated"); v != "" {
		vaccinated, err := strconv.ParseBool(v)
		if err != nil {
			return nil, nil, errBadRequestBody
		}
		req.Vaccinated = &vaccinated
	}
	if v := r.FormValue("owner_id"); v != "" {
		ownerID, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, nil, errBadRequestBody
		}
		req.OwnerID = uint(ownerID)
	}

	photo, err := photoFromForm(r)
	if err != nil {
		return nil, nil, errBadRequestBody
	}

	return req, photo, nil
}

// decodeUpdatePetRequest reads an update payload from JSON or multipart form.
func decodeUpdatePetRequest(r *http.Request) (*dto.UpdatePetRequest, *storage.Upload, error) {
	if !isMultipart(r) {
		var req dto.UpdatePetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, nil, errBadRequestBody
		}
		return &req, nil, nil
	}

	created, photo, err := decodeCreatePetRequest(r)
	if err != nil {
		return nil, nil, err
	}

	req := &dto.UpdatePetRequest{
		Name:            created.Name,
		Species:         created.Species,
		Breed:           created.Breed,
		Size:            created.Size,
		Age:             created.Age,
		Vaccinated:      created.Vaccinated,
		FoodType:        created.FoodType,
		LastVaccination: created.LastVaccination,
		Location:        created.Location,
	}
	return req, photo, nil
}

// decodeUpdateProfileRequest reads a profile payload from JSON or multipart
// form.
func decodeUpdateProfileRequest(r *http.Request) (*dto.UpdateProfileRequest, *storage.Upload, error) {
	if !isMultipart(r) {
		var req dto.UpdateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, nil, errBadRequestBody
		}
		return &req, nil, nil
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return nil, nil, errBadRequestBody
	}

	req := &dto.UpdateProfileRequest{
		Name:     r.FormValue("name"),
		Email:    r.FormValue("email"),
		Address:  r.FormValue("address"),
		Phone:    r.FormValue("phone"),
		Location: r.FormValue("location"),
	}

	photo, err := photoFromForm(r)
	if err != nil {
		return nil, nil, errBadRequestBody
	}

	return req, photo, nil
}
