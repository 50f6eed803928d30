package patient

import (
	"context"
	stderrors "errors"
	"strconv"
	"strings"
	"time"

	"github.com/muhammadheryan/patient-registry/cmd/config"
	"github.com/muhammadheryan/patient-registry/constant"
	"github.com/muhammadheryan/patient-registry/model"
	patientrepo "github.com/muhammadheryan/patient-registry/repository/patient"
	redisrepo "github.com/muhammadheryan/patient-registry/repository/redis"
	"github.com/muhammadheryan/patient-registry/thirdparty/rabbitmq"
	utilsContext "github.com/muhammadheryan/patient-registry/utils/context"
	"github.com/muhammadheryan/patient-registry/utils/errors"
	"github.com/muhammadheryan/patient-registry/utils/logger"
	"github.com/muhammadheryan/patient-registry/utils/validation"
	validatorx "github.com/muhammadheryan/patient-registry/utils/validator"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type PatientApp interface {
	ListPatients(ctx context.Context, filter *model.PatientFilter) ([]model.PatientEntity, error)
	GetPatient(ctx context.Context, id string) (*model.PatientEntity, error)
	CreatePatient(ctx context.Context, req *model.CreatePatientRequest) (int64, error)
	UpdatePatient(ctx context.Context, id string, req *model.UpdatePatientRequest) (int64, error)
	DeletePatient(ctx context.Context, id string) (int64, error)
}

type patientAppImpl struct {
	config      *config.Config
	patientRepo patientrepo.PatientRepository
	redisRepo   redisrepo.Repository
	publisher   rabbitmq.EventPublisher
}

// NewPatientApp wires the patient use cases. publisher may be nil.
func NewPatientApp(config *config.Config, patientRepo patientrepo.PatientRepository, redisRepo redisrepo.Repository, publisher rabbitmq.EventPublisher) PatientApp {
	return &patientAppImpl{
		config:      config,
		patientRepo: patientRepo,
		redisRepo:   redisRepo,
		publisher:   publisher,
	}
}

func (s *patientAppImpl) ListPatients(ctx context.Context, filter *model.PatientFilter) ([]model.PatientEntity, error) {
	items, err := s.patientRepo.List(ctx, filter)
	if err != nil {
		logger.Ctx(ctx).Error("[ListPatients] err patientRepo.List", zap.String("error", err.Error()))
		return nil, storeError(err)
	}
	return items, nil
}

func (s *patientAppImpl) GetPatient(ctx context.Context, id string) (*model.PatientEntity, error) {
	patientID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	patient, err := s.patientRepo.Get(ctx, patientID)
	if err != nil {
		logger.Ctx(ctx).Error("[GetPatient] err patientRepo.Get", zap.Int64("id", patientID), zap.String("error", err.Error()))
		return nil, storeError(err)
	}
	if patient == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return patient, nil
}

func (s *patientAppImpl) CreatePatient(ctx context.Context, req *model.CreatePatientRequest) (int64, error) {
	if err := validatorx.ValidateStruct(req); err != nil {
		logger.Ctx(ctx).Info("[CreatePatient] missing fields", zap.Strings("fields", validatorx.MissingFields(err)))
		return 0, errors.SetCustomError(constant.ErrMissingField)
	}

	if err := validation.Validate(validation.Fields{
		FullName:        req.FullName,
		Position:        req.Position,
		Email:           req.Email,
		Phone:           req.Phone,
		Country:         req.Country,
		City:            req.City,
		Gender:          req.Gender,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		SetPassword:     true,
	}); err != nil {
		return 0, errors.SetCustomErrorMessage(constant.ErrValidation, err.Error())
	}

	email := strings.TrimSpace(req.Email)

	// narrow the window between the count check and the insert
	reserved, err := s.redisRepo.ReserveEmail(ctx, email, s.config.Redis.EmailLockTTL)
	if err != nil {
		logger.Ctx(ctx).Warn("[CreatePatient] err redisRepo.ReserveEmail", zap.String("error", err.Error()))
	} else if !reserved {
		return 0, errors.SetCustomError(constant.ErrDuplicateEmail)
	} else {
		defer func() {
			if err := s.redisRepo.ReleaseEmail(context.WithoutCancel(ctx), email); err != nil {
				logger.Ctx(ctx).Warn("[CreatePatient] err redisRepo.ReleaseEmail", zap.String("error", err.Error()))
			}
		}()
	}

	count, err := s.patientRepo.CountByEmail(ctx, email)
	if err != nil {
		logger.Ctx(ctx).Error("[CreatePatient] err patientRepo.CountByEmail", zap.String("error", err.Error()))
		return 0, storeError(err)
	}
	if count > 0 {
		return 0, errors.SetCustomError(constant.ErrDuplicateEmail)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Ctx(ctx).Error("[CreatePatient] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}

	entity := newEntity(req.FullName, req.Position, email, req.Phone, req.Country, req.City, req.Gender)
	entity.PasswordHash = string(hashedPassword)

	affected, err := s.patientRepo.Create(ctx, entity)
	if err != nil {
		if stderrors.Is(err, patientrepo.ErrDuplicateEmail) {
			return 0, errors.SetCustomError(constant.ErrDuplicateEmail)
		}
		logger.Ctx(ctx).Error("[CreatePatient] err patientRepo.Create", zap.String("error", err.Error()))
		return 0, storeError(err)
	}

	s.publish(ctx, constant.EventPatientCreated, entity.ID)

	return affected, nil
}

func (s *patientAppImpl) UpdatePatient(ctx context.Context, id string, req *model.UpdatePatientRequest) (int64, error) {
	patientID, err := parseID(id)
	if err != nil {
		return 0, err
	}

	if err := validatorx.ValidateStruct(req); err != nil {
		logger.Ctx(ctx).Info("[UpdatePatient] missing fields", zap.Strings("fields", validatorx.MissingFields(err)))
		return 0, errors.SetCustomError(constant.ErrMissingField)
	}

	setPassword := req.Password != ""
	if err := validation.Validate(validation.Fields{
		FullName:        req.FullName,
		Position:        req.Position,
		Email:           req.Email,
		Phone:           req.Phone,
		Country:         req.Country,
		City:            req.City,
		Gender:          req.Gender,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		SetPassword:     setPassword,
	}); err != nil {
		return 0, errors.SetCustomErrorMessage(constant.ErrValidation, err.Error())
	}

	entity := newEntity(req.FullName, req.Position, strings.TrimSpace(req.Email), req.Phone, req.Country, req.City, req.Gender)
	if setPassword {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Ctx(ctx).Error("[UpdatePatient] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
			return 0, errors.SetCustomError(constant.ErrInternal)
		}
		entity.PasswordHash = string(hashedPassword)
	}

	affected, err := s.patientRepo.Update(ctx, patientID, entity)
	if err != nil {
		if stderrors.Is(err, patientrepo.ErrDuplicateEmail) {
			return 0, errors.SetCustomError(constant.ErrDuplicateEmail)
		}
		logger.Ctx(ctx).Error("[UpdatePatient] err patientRepo.Update", zap.Int64("id", patientID), zap.String("error", err.Error()))
		return 0, storeError(err)
	}

	if affected > 0 {
		s.publish(ctx, constant.EventPatientUpdated, patientID)
	}

	return affected, nil
}

func (s *patientAppImpl) DeletePatient(ctx context.Context, id string) (int64, error) {
	patientID, err := parseID(id)
	if err != nil {
		return 0, err
	}

	affected, err := s.patientRepo.Delete(ctx, patientID)
	if err != nil {
		logger.Ctx(ctx).Error("[DeletePatient] err patientRepo.Delete", zap.Int64("id", patientID), zap.String("error", err.Error()))
		return 0, storeError(err)
	}

	if affected > 0 {
		s.publish(ctx, constant.EventPatientDeleted, patientID)
	}

	return affected, nil
}

// publish is best effort; a failed notification never fails the write.
func (s *patientAppImpl) publish(ctx context.Context, event string, patientID int64) {
	if s.publisher == nil {
		return
	}

	requestID, _ := utilsContext.GetRequestID(ctx)
	msg := rabbitmq.PatientEventMessage{
		Event:      event,
		PatientID:  patientID,
		RequestID:  requestID,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.PublishPatientEvent(ctx, msg); err != nil {
		logger.Ctx(ctx).Error("[publish] err PublishPatientEvent", zap.String("event", event), zap.String("error", err.Error()))
	}
}

func parseID(id string) (int64, error) {
	patientID, err := strconv.ParseInt(strings.TrimSpace(id), 10, 64)
	if err != nil {
		return 0, errors.SetCustomError(constant.ErrInvalidID)
	}
	return patientID, nil
}

func storeError(err error) error {
	if stderrors.Is(err, patientrepo.ErrStoreUnavailable) {
		return errors.SetCustomError(constant.ErrStoreUnavailable)
	}
	return errors.SetCustomError(constant.ErrInternal)
}

// newEntity builds the stored form of an already validated record.
func newEntity(fullName, position, email, phone, country, city, gender string) *model.PatientEntity {
	normalizedPhone, _ := validation.NormalizePhone(phone)
	return &model.PatientEntity{
		FullName: strings.TrimSpace(fullName),
		Position: constant.Position(position),
		Email:    email,
		Phone:    normalizedPhone,
		Country:  strings.TrimSpace(country),
		City:     strings.TrimSpace(city),
		Gender:   constant.Gender(gender),
	}
}
