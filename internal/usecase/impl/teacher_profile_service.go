package impl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/fx"

	deliverycontext "tuition/internal/delivery/context"
	"tuition/internal/domain/entity"
	domainerrors "tuition/internal/domain/errors"
	"tuition/internal/domain/repository"
	"tuition/internal/domain/service"
	"tuition/internal/errors"
	"tuition/internal/usecase"
)

// teacherProfileService implements the TeacherProfileUsecase interface.
type teacherProfileService struct {
	txManager repository.TransactionManager
	configs   usecase.ConfigUsecase
	qrCodes   service.QRCodeService
	events    eventEmitter
	logger    *slog.Logger
}

// TeacherProfileServiceParams holds dependencies for TeacherProfileService, injected by Fx.
type TeacherProfileServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Configs   usecase.ConfigUsecase
	QRCodes   service.QRCodeService
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewTeacherProfileService is the constructor for teacherProfileService.
func NewTeacherProfileService(params TeacherProfileServiceParams) usecase.TeacherProfileUsecase {
	return &teacherProfileService{
		txManager: params.TxManager,
		configs:   params.Configs,
		qrCodes:   params.QRCodes,
		events:    newEventEmitter(params.Publisher, params.Logger),
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *teacherProfileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *teacherProfileService) emit(ctx context.Context, eventType entity.EventType, teacherUserID uuid.UUID, payload map[string]any) {
	event := srv.events.newEvent(ctx, eventType, "", targetTeacher, teacherUserID.String())
	event.TeacherUserID = &teacherUserID
	event.Payload = payload
	srv.events.emit(ctx, event)
}

// CreateProfile creates the teacher's profile from the legacy fields. New
// profiles start pending when the config requires approval.
func (srv *teacherProfileService) CreateProfile(ctx context.Context, userID uuid.UUID, input *usecase.CreateTeacherProfileInput) (*entity.TeacherProfile, error) {
	srv.log(ctx).Info("Creating teacher profile", slog.String("userID", userID.String()))

	cfg, err := srv.configs.GetConfig(ctx, "")
	if err != nil {
		return nil, err
	}

	status := entity.ApprovalApproved
	if cfg.Settings.RequireApproval {
		status = entity.ApprovalPending
	}

	profile := &entity.TeacherProfile{
		UserID:          userID,
		DisplayName:     strings.TrimSpace(input.DisplayName),
		Headline:        input.Headline,
		Bio:             input.Bio,
		Qualifications:  input.Qualifications,
		ExperienceYears: input.ExperienceYears,
		HourlyRate:      input.HourlyRate,
		Subjects:        input.Subjects,
		EducationLevels: input.EducationLevels,
		Phone:           input.Phone,
		City:            input.City,
		District:        input.District,
		Status:          status,
		ProfileLayout:   []entity.LayoutEntry{},
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.UserRepo().FindByID(ctx, userID)
		if err != nil {
			return err
		}
		if user.Role != entity.RoleTeacher {
			return domainerrors.ErrForbidden.WithDetails("only teacher accounts can create a teacher profile")
		}

		return repoFactory.TeacherProfileRepo().Create(ctx, profile)
	})
	if err != nil {
		return nil, translateError(err, "failed to create teacher profile")
	}

	srv.emit(ctx, entity.EventTeacherCreated, userID, map[string]any{"status": string(status)})

	return profile, nil
}

// GetProfile returns the teacher's profile.
func (srv *teacherProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.TeacherProfile, error) {
	var profile *entity.TeacherProfile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		profile, err = repoFactory.TeacherProfileRepo().FindByUserID(ctx, userID)

		return err
	})
	if err != nil {
		return nil, translateError(err, "failed to get teacher profile")
	}

	return profile, nil
}

// ListProfiles returns one page of teacher profiles for admin review.
func (srv *teacherProfileService) ListProfiles(ctx context.Context, query entity.ListQuery) (*entity.Page[*entity.TeacherProfile], error) {
	query.Normalize()
	if query.Status != "" && !entity.ApprovalStatus(query.Status).IsValid() {
		return nil, domainerrors.ErrInvalidEnum.WithDetails("status must be one of pending, approved, rejected")
	}

	var (
		profiles []*entity.TeacherProfile
		total    int64
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		profiles, total, err = repoFactory.TeacherProfileRepo().List(ctx, query)

		return err
	})
	if err != nil {
		return nil, translateError(err, "failed to list teacher profiles")
	}

	page := entity.NewPage(profiles, query, total)

	return &page, nil
}

// ApproveProfile marks the teacher approved.
func (srv *teacherProfileService) ApproveProfile(ctx context.Context, adminID, userID uuid.UUID) (*entity.TeacherProfile, error) {
	profile, err := srv.review(ctx, userID, func(profile *entity.TeacherProfile) {
		profile.Approve()
	})
	if err != nil {
		return nil, translateError(err, "failed to approve teacher profile")
	}

	srv.log(ctx).Info("Teacher profile approved",
		slog.String("adminID", adminID.String()),
		slog.String("userID", userID.String()),
	)
	srv.emit(ctx, entity.EventTeacherApproved, userID, nil)

	return profile, nil
}

// RejectProfile marks the teacher rejected with the reason shown to them.
func (srv *teacherProfileService) RejectProfile(ctx context.Context, adminID, userID uuid.UUID, reason string) (*entity.TeacherProfile, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("a rejection reason is required")
	}

	profile, err := srv.review(ctx, userID, func(profile *entity.TeacherProfile) {
		profile.Reject(reason)
	})
	if err != nil {
		return nil, translateError(err, "failed to reject teacher profile")
	}

	srv.log(ctx).Info("Teacher profile rejected",
		slog.String("adminID", adminID.String()),
		slog.String("userID", userID.String()),
	)
	srv.emit(ctx, entity.EventTeacherRejected, userID, map[string]any{"reason": reason})

	return profile, nil
}

func (srv *teacherProfileService) review(ctx context.Context, userID uuid.UUID, decide func(profile *entity.TeacherProfile)) (*entity.TeacherProfile, error) {
	var profile *entity.TeacherProfile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.TeacherProfileRepo()

		var err error
		profile, err = profileRepo.FindByUserID(ctx, userID)
		if err != nil {
			return err
		}

		version := profile.Version
		decide(profile)

		return profileRepo.Update(ctx, profile, version)
	})

	return profile, err
}

// GetShareQRCode renders the share QR code of an existing teacher.
func (srv *teacherProfileService) GetShareQRCode(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	if _, err := srv.GetProfile(ctx, userID); err != nil {
		return nil, err
	}

	png, err := srv.qrCodes.GenerateTeacherQR(userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate share QR code")
	}

	return png, nil
}

// ResolveShareQRCode maps scanned QR content back to an approved teacher profile.
func (srv *teacherProfileService) ResolveShareQRCode(ctx context.Context, qrData string) (*entity.TeacherProfile, error) {
	userID, err := srv.qrCodes.ParseTeacherQR(qrData)
	if err != nil {
		srv.log(ctx).Debug("Unrecognised QR content", slog.Any("error", err))

		return nil, domainerrors.ErrValidationFailed.WithDetails("QR code is not a teacher profile link")
	}

	profile, err := srv.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	// Pending and rejected profiles are not public.
	if profile.Status != entity.ApprovalApproved {
		return nil, domainerrors.ErrTeacherProfileNotFound
	}

	return profile, nil
}
