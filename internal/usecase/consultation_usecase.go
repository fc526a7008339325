package usecase

import (
	"context"
	"errors"
	"time"

	"pet-census-api/internal/converter"
	"pet-census-api/internal/delivery/dto"
	"pet-census-api/internal/domain/entity"
	"pet-census-api/internal/domain/policy"
	"pet-census-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrConsultationNotFound  = errors.New("consultation not found")
	ErrVeterinarianNotFound  = errors.New("veterinarian not found")
	ErrNotAVeterinarian      = errors.New("selected user is not a veterinarian")
	ErrInvalidScheduledAt    = errors.New("invalid scheduled_at, use RFC 3339 or YYYY-MM-DDTHH:MM")
	ErrInvalidStatusValue    = errors.New("status must be CONFIRMED or CANCELLED")
	ErrInvalidTransition     = errors.New("status transition not allowed")
	ErrCannotScheduleForeign = errors.New("cannot schedule for a pet you do not own")
)

// Accepted scheduled_at layouts, tried in order.
var scheduledAtLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
}

type ConsultationUsecase interface {
	CreateConsultation(ctx context.Context, req *dto.CreateConsultationRequest) (*dto.ConsultationResponse, error)
	GetConsultation(ctx context.Context, consultationID uint) (*dto.ConsultationResponse, error)
	ListConsultations(ctx context.Context) (*dto.ConsultationListResponse, error)
	UpdateStatus(ctx context.Context, consultationID uint, req *dto.UpdateConsultationStatusRequest) (*dto.ConsultationResponse, error)
}

type consultationUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	ownerRepo        repository.OwnerRepository
	petRepo          repository.PetRepository
	consultationRepo repository.ConsultationRepository
}

func NewConsultationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	ownerRepo repository.OwnerRepository,
	petRepo repository.PetRepository,
	consultationRepo repository.ConsultationRepository,
) ConsultationUsecase {
	return &consultationUsecase{
		db:               db,
		log:              log,
		ownerRepo:        ownerRepo,
		petRepo:          petRepo,
		consultationRepo: consultationRepo,
	}
}

// CreateConsultation schedules a consultation in PENDING state.
//
// client_id is denormalized from the pet's owner, not the actor: a superadmin
// scheduling on behalf of a client records the pet owner as client. No
// overlap checking is performed; double-booking the same veterinarian or pet
// is accepted behavior pending a product decision.
func (u *consultationUsecase) CreateConsultation(ctx context.Context, req *dto.CreateConsultationRequest) (*dto.ConsultationResponse, error) {
	actorID, role, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	db := u.db.WithContext(ctx)

	pet, err := u.petRepo.FindByID(db, req.PetID)
	if err != nil {
		u.log.Warnf("Failed to find pet %d: %+v", req.PetID, err)
		return nil, err
	}
	if pet == nil {
		return nil, ErrPetNotFound
	}

	if !policy.CanCreateConsultation(role, actorID, pet) {
		if role == entity.RoleClient {
			return nil, ErrCannotScheduleForeign
		}
		return nil, ErrForbidden
	}

	vet, err := u.ownerRepo.FindByID(db, req.VeterinarianID)
	if err != nil {
		u.log.Warnf("Failed to find veterinarian %d: %+v", req.VeterinarianID, err)
		return nil, err
	}
	if vet == nil {
		return nil, ErrVeterinarianNotFound
	}
	if vet.Role != entity.RoleVeterinarian {
		return nil, ErrNotAVeterinarian
	}

	scheduledAt, err := parseScheduledAt(req.ScheduledAt)
	if err != nil {
		return nil, ErrInvalidScheduledAt
	}

	consultation := &entity.MedicalConsultation{
		PetID:          pet.ID,
		ClientID:       pet.OwnerID,
		VeterinarianID: vet.ID,
		ScheduledAt:    scheduledAt,
		Status:         entity.ConsultationStatusPending,
		Notes:          req.Notes,
	}

	if err := u.consultationRepo.Create(db, consultation); err != nil {
		u.log.Warnf("Failed to create consultation: %+v", err)
		return nil, err
	}

	full, err := u.consultationRepo.FindByID(db, consultation.ID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload consultation %d: %+v", consultation.ID, err)
		return converter.ConsultationToResponse(consultation), nil
	}

	u.log.Infof("Consultation created: id=%d, pet=%d, veterinarian=%d", consultation.ID, pet.ID, vet.ID)
	return converter.ConsultationToResponse(full), nil
}

func (u *consultationUsecase) GetConsultation(ctx context.Context, consultationID uint) (*dto.ConsultationResponse, error) {
	actorID, role, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	consultation, err := u.consultationRepo.FindByID(u.db.WithContext(ctx), consultationID)
	if err != nil {
		u.log.Warnf("Failed to find consultation %d: %+v", consultationID, err)
		return nil, err
	}
	if consultation == nil {
		return nil, ErrConsultationNotFound
	}

	if !policy.CanViewConsultation(role, actorID, consultation) {
		return nil, ErrForbidden
	}

	return converter.ConsultationToResponse(consultation), nil
}

// ListConsultations returns consultations scoped by role, most recently
// scheduled first.
func (u *consultationUsecase) ListConsultations(ctx context.Context) (*dto.ConsultationListResponse, error) {
	actorID, role, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if !policy.CanListConsultations(role) {
		return nil, ErrForbidden
	}

	db := u.db.WithContext(ctx)

	var consultations []entity.MedicalConsultation
	switch role {
	case entity.RoleClient:
		consultations, err = u.consultationRepo.FindByClientID(db, actorID)
	case entity.RoleVeterinarian:
		consultations, err = u.consultationRepo.FindByVeterinarianID(db, actorID)
	case entity.RoleSuperadmin:
		consultations, err = u.consultationRepo.FindAll(db)
	}
	if err != nil {
		u.log.Warnf("Failed to list consultations for %d (%s): %+v", actorID, role, err)
		return nil, err
	}

	return &dto.ConsultationListResponse{
		Consultations: converter.ConsultationsToResponses(consultations),
		Total:         len(consultations),
	}, nil
}

// UpdateStatus transitions a consultation. Only the assigned veterinarian or
// a superadmin may transition, and the state diagram is enforced strictly:
// re-entering PENDING is impossible and CANCELLED is terminal.
func (u *consultationUsecase) UpdateStatus(ctx context.Context, consultationID uint, req *dto.UpdateConsultationStatusRequest) (*dto.ConsultationResponse, error) {
	actorID, role, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	newStatus := entity.ConsultationStatus(req.Status)
	if newStatus != entity.ConsultationStatusConfirmed && newStatus != entity.ConsultationStatusCancelled {
		return nil, ErrInvalidStatusValue
	}

	db := u.db.WithContext(ctx)

	consultation, err := u.consultationRepo.FindByID(db, consultationID)
	if err != nil {
		u.log.Warnf("Failed to find consultation %d: %+v", consultationID, err)
		return nil, err
	}
	if consultation == nil {
		return nil, ErrConsultationNotFound
	}

	if !policy.CanUpdateConsultationStatus(role, actorID, consultation) {
		return nil, ErrForbidden
	}

	if !consultation.CanTransitionTo(newStatus) {
		return nil, ErrInvalidTransition
	}

	if err := u.consultationRepo.UpdateStatus(db, consultationID, newStatus); err != nil {
		u.log.Warnf("Failed to update consultation %d status: %+v", consultationID, err)
		return nil, err
	}

	consultation.Status = newStatus
	u.log.Infof("Consultation %d transitioned to %s", consultationID, newStatus)
	return converter.ConsultationToResponse(consultation), nil
}

func parseScheduledAt(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range scheduledAtLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return parsed, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
