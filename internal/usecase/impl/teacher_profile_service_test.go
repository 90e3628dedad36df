package impl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tuition/internal/domain/entity"
	domainerrors "tuition/internal/domain/errors"
	"tuition/internal/domain/repository"
	"tuition/internal/errors"
	mockSvc "tuition/internal/mocks/service"
	mockUsecase "tuition/internal/mocks/usecase"
	"tuition/internal/usecase"
)

type teacherProfileFixtures struct {
	service usecase.TeacherProfileUsecase
	repos   *repoMocks
	configs *mockUsecase.MockConfigUsecase
	qrCodes *mockSvc.MockQRCodeService
	events  *eventRecorder
}

func createTestTeacherProfileService(t *testing.T) teacherProfileFixtures {
	repos := newRepoMocks(t)
	configs := mockUsecase.NewMockConfigUsecase(t)
	qrCodes := mockSvc.NewMockQRCodeService(t)
	publisher, events := newEventRecorder(t)

	service := NewTeacherProfileService(TeacherProfileServiceParams{
		TxManager: newTxManager(t, repos),
		Configs:   configs,
		QRCodes:   qrCodes,
		Publisher: publisher,
		Logger:    newTestLogger(),
	})

	return teacherProfileFixtures{
		service: service,
		repos:   repos,
		configs: configs,
		qrCodes: qrCodes,
		events:  events,
	}
}

func TestTeacherProfileService_CreateProfile_ApprovalFollowsSettings(t *testing.T) {
	tests := []struct {
		name            string
		requireApproval bool
		want            entity.ApprovalStatus
	}{
		{name: "approval required", requireApproval: true, want: entity.ApprovalPending},
		{name: "auto approve", requireApproval: false, want: entity.ApprovalApproved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestTeacherProfileService(t)
			ctx := context.Background()
			userID := uuid.New()

			cfg := testConfig()
			cfg.Settings.RequireApproval = tt.requireApproval

			fx.configs.EXPECT().GetConfig(ctx, "").Return(cfg, nil).Once()
			fx.repos.user.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Role: entity.RoleTeacher}, nil).Once()
			fx.repos.teacherProfile.EXPECT().
				Create(ctx, mock.MatchedBy(func(p *entity.TeacherProfile) bool {
					return p.UserID == userID && p.Status == tt.want && p.DisplayName == "Kamal Silva"
				})).
				Return(nil).
				Once()

			profile, err := fx.service.CreateProfile(ctx, userID, &usecase.CreateTeacherProfileInput{
				DisplayName: "  Kamal Silva ",
				Subjects:    []string{"MATHS"},
			})

			require.NoError(t, err)
			assert.Equal(t, tt.want, profile.Status)
			assert.NotNil(t, profile.ProfileLayout)
			assert.Equal(t, []entity.EventType{entity.EventTeacherCreated}, fx.events.types())
		})
	}
}

func TestTeacherProfileService_CreateProfile_RejectsNonTeacher(t *testing.T) {
	fx := createTestTeacherProfileService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.configs.EXPECT().GetConfig(ctx, "").Return(testConfig(), nil).Once()
	fx.repos.user.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Role: entity.RoleStudent}, nil).Once()

	_, err := fx.service.CreateProfile(ctx, userID, &usecase.CreateTeacherProfileInput{DisplayName: "Student"})

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	assert.Empty(t, fx.events.types())
}

func TestTeacherProfileService_CreateProfile_AlreadyExists(t *testing.T) {
	fx := createTestTeacherProfileService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.configs.EXPECT().GetConfig(ctx, "").Return(testConfig(), nil).Once()
	fx.repos.user.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Role: entity.RoleTeacher}, nil).Once()
	fx.repos.teacherProfile.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateTeacherProfile).Once()

	_, err := fx.service.CreateProfile(ctx, userID, &usecase.CreateTeacherProfileInput{DisplayName: "Kamal"})

	assert.ErrorIs(t, err, domainerrors.ErrTeacherProfileExists)
}

func TestTeacherProfileService_ApproveProfile(t *testing.T) {
	fx := createTestTeacherProfileService(t)
	ctx := context.Background()
	userID := uuid.New()
	teacher := legacyTeacher(userID)
	teacher.Status = entity.ApprovalRejected
	teacher.RejectionReason = "missing qualifications"

	fx.repos.teacherProfile.EXPECT().FindByUserID(ctx, userID).Return(teacher, nil).Once()
	fx.repos.teacherProfile.EXPECT().Update(ctx, teacher, int64(2)).Return(nil).Once()

	profile, err := fx.service.ApproveProfile(ctx, uuid.New(), userID)

	require.NoError(t, err)
	assert.Equal(t, entity.ApprovalApproved, profile.Status)
	assert.Empty(t, profile.RejectionReason)

	event := fx.events.last()
	require.NotNil(t, event)
	assert.Equal(t, entity.EventTeacherApproved, event.Type)
	assert.Equal(t, userID, *event.TeacherUserID)
}

func TestTeacherProfileService_RejectProfile(t *testing.T) {
	fx := createTestTeacherProfileService(t)
	ctx := context.Background()
	userID := uuid.New()
	teacher := legacyTeacher(userID)

	fx.repos.teacherProfile.EXPECT().FindByUserID(ctx, userID).Return(teacher, nil).Once()
	fx.repos.teacherProfile.EXPECT().Update(ctx, teacher, int64(2)).Return(nil).Once()

	profile, err := fx.service.RejectProfile(ctx, uuid.New(), userID, " incomplete bio ")

	require.NoError(t, err)
	assert.Equal(t, entity.ApprovalRejected, profile.Status)
	assert.Equal(t, "incomplete bio", profile.RejectionReason)

	event := fx.events.last()
	require.NotNil(t, event)
	assert.Equal(t, entity.EventTeacherRejected, event.Type)
	assert.Equal(t, "incomplete bio", event.Payload["reason"])
}

func TestTeacherProfileService_RejectProfile_RequiresReason(t *testing.T) {
	fx := createTestTeacherProfileService(t)

	_, err := fx.service.RejectProfile(context.Background(), uuid.New(), uuid.New(), "   ")

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestTeacherProfileService_ApproveProfile_NotFound(t *testing.T) {
	fx := createTestTeacherProfileService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.repos.teacherProfile.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrTeacherProfileNotFound).Once()

	_, err := fx.service.ApproveProfile(ctx, uuid.New(), userID)

	assert.ErrorIs(t, err, domainerrors.ErrTeacherProfileNotFound)
	assert.Empty(t, fx.events.types())
}

func TestTeacherProfileService_ListProfiles(t *testing.T) {
	t.Run("pages results", func(t *testing.T) {
		fx := createTestTeacherProfileService(t)
		ctx := context.Background()
		teachers := []*entity.TeacherProfile{legacyTeacher(uuid.New()), legacyTeacher(uuid.New())}

		fx.repos.teacherProfile.EXPECT().
			List(ctx, mock.MatchedBy(func(q entity.ListQuery) bool {
				return q.Page == 2 && q.Limit == 2 && q.Status == "pending"
			})).
			Return(teachers, int64(5), nil).
			Once()

		page, err := fx.service.ListProfiles(ctx, entity.ListQuery{Page: 2, Limit: 2, Status: "pending"})

		require.NoError(t, err)
		assert.Len(t, page.Items, 2)
		assert.Equal(t, int64(5), page.Total)
		assert.Equal(t, 3, page.TotalPages)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		fx := createTestTeacherProfileService(t)

		_, err := fx.service.ListProfiles(context.Background(), entity.ListQuery{Status: "archived"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidEnum)
	})
}

func TestTeacherProfileService_GetShareQRCode(t *testing.T) {
	t.Run("renders for existing teacher", func(t *testing.T) {
		fx := createTestTeacherProfileService(t)
		ctx := context.Background()
		userID := uuid.New()
		png := []byte{0x89, 'P', 'N', 'G'}

		fx.repos.teacherProfile.EXPECT().FindByUserID(ctx, userID).Return(legacyTeacher(userID), nil).Once()
		fx.qrCodes.EXPECT().GenerateTeacherQR(userID).Return(png, nil).Once()

		got, err := fx.service.GetShareQRCode(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, png, got)
	})

	t.Run("unknown teacher", func(t *testing.T) {
		fx := createTestTeacherProfileService(t)
		ctx := context.Background()
		userID := uuid.New()

		fx.repos.teacherProfile.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrTeacherProfileNotFound).Once()

		_, err := fx.service.GetShareQRCode(ctx, userID)

		assert.ErrorIs(t, err, domainerrors.ErrTeacherProfileNotFound)
	})

	t.Run("encoder failure", func(t *testing.T) {
		fx := createTestTeacherProfileService(t)
		ctx := context.Background()
		userID := uuid.New()

		fx.repos.teacherProfile.EXPECT().FindByUserID(ctx, userID).Return(legacyTeacher(userID), nil).Once()
		fx.qrCodes.EXPECT().GenerateTeacherQR(userID).Return(nil, errors.New("encode failed")).Once()

		_, err := fx.service.GetShareQRCode(ctx, userID)

		assert.ErrorContains(t, err, "failed to generate share QR code")
	})
}

func TestTeacherProfileService_ResolveShareQRCode(t *testing.T) {
	const link = "https://tuition.local/teachers/abc"

	t.Run("approved teacher", func(t *testing.T) {
		fx := createTestTeacherProfileService(t)
		ctx := context.Background()
		userID := uuid.New()
		teacher := legacyTeacher(userID)
		teacher.Status = entity.ApprovalApproved

		fx.qrCodes.EXPECT().ParseTeacherQR(link).Return(userID, nil).Once()
		fx.repos.teacherProfile.EXPECT().FindByUserID(ctx, userID).Return(teacher, nil).Once()

		got, err := fx.service.ResolveShareQRCode(ctx, link)

		require.NoError(t, err)
		assert.Equal(t, userID, got.UserID)
	})

	t.Run("pending teacher is hidden", func(t *testing.T) {
		fx := createTestTeacherProfileService(t)
		ctx := context.Background()
		userID := uuid.New()
		teacher := legacyTeacher(userID)
		teacher.Status = entity.ApprovalPending

		fx.qrCodes.EXPECT().ParseTeacherQR(link).Return(userID, nil).Once()
		fx.repos.teacherProfile.EXPECT().FindByUserID(ctx, userID).Return(teacher, nil).Once()

		_, err := fx.service.ResolveShareQRCode(ctx, link)

		assert.ErrorIs(t, err, domainerrors.ErrTeacherProfileNotFound)
	})

	t.Run("foreign link", func(t *testing.T) {
		fx := createTestTeacherProfileService(t)

		fx.qrCodes.EXPECT().ParseTeacherQR("https://evil.example/x").Return(uuid.Nil, errors.New("unknown host")).Once()

		_, err := fx.service.ResolveShareQRCode(context.Background(), "https://evil.example/x")

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}
