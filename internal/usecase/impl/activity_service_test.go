package impl

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tuition/internal/domain/entity"
	domainerrors "tuition/internal/domain/errors"
	"tuition/internal/domain/repository"
	"tuition/internal/errors"
)

func createTestActivityService(t *testing.T) (*activityService, *repoMocks, time.Time) {
	repos := newRepoMocks(t)
	now := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)

	service := newActivityService(ActivityServiceParams{
		TxManager: newTxManager(t, repos),
		Logger:    newTestLogger(),
	})
	service.now = func() time.Time { return now }

	return service, repos, now
}

func TestActivityService_RecordEvent(t *testing.T) {
	teacherID := uuid.New()

	t.Run("config event is logged without notification", func(t *testing.T) {
		service, repos, _ := createTestActivityService(t)
		ctx := context.Background()
		event := &entity.ProfileEvent{ID: uuid.New(), Type: entity.EventSectionAdded, ConfigKey: "default", TargetType: "section", TargetID: "pricing"}

		repos.activity.EXPECT().
			Create(ctx, mock.MatchedBy(func(l *entity.ActivityLog) bool {
				return l.EventID == event.ID && l.TargetID == "pricing"
			})).
			Return(nil).
			Once()

		require.NoError(t, service.RecordEvent(ctx, event))
	})

	t.Run("rejection notifies teacher with reason", func(t *testing.T) {
		service, repos, _ := createTestActivityService(t)
		ctx := context.Background()
		event := &entity.ProfileEvent{
			ID:            uuid.New(),
			Type:          entity.EventTeacherRejected,
			TeacherUserID: &teacherID,
			Payload:       map[string]any{"reason": "incomplete bio"},
		}

		repos.activity.EXPECT().Create(ctx, mock.Anything).Return(nil).Once()
		repos.notification.EXPECT().
			Create(ctx, mock.MatchedBy(func(n *entity.Notification) bool {
				return n.UserID == teacherID &&
					n.EventID == event.ID &&
					n.Kind == entity.EventTeacherRejected &&
					n.Body == "Your teacher profile was not approved: incomplete bio"
			})).
			Return(nil).
			Once()

		require.NoError(t, service.RecordEvent(ctx, event))
	})

	t.Run("template applied names the template", func(t *testing.T) {
		service, repos, _ := createTestActivityService(t)
		ctx := context.Background()
		event := &entity.ProfileEvent{
			ID:            uuid.New(),
			Type:          entity.EventTemplateApplied,
			TeacherUserID: &teacherID,
			Payload:       map[string]any{"templateId": "modern", "templateName": "Modern"},
		}

		repos.activity.EXPECT().Create(ctx, mock.Anything).Return(nil).Once()
		repos.notification.EXPECT().
			Create(ctx, mock.MatchedBy(func(n *entity.Notification) bool {
				return n.Title == "Template applied" && n.Body == `The "Modern" template was applied to your layout.`
			})).
			Return(nil).
			Once()

		require.NoError(t, service.RecordEvent(ctx, event))
	})

	t.Run("missing id is rejected", func(t *testing.T) {
		service, _, _ := createTestActivityService(t)

		err := service.RecordEvent(context.Background(), &entity.ProfileEvent{Type: entity.EventTeacherApproved})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("storage failure surfaces", func(t *testing.T) {
		service, repos, _ := createTestActivityService(t)
		ctx := context.Background()

		repos.activity.EXPECT().Create(ctx, mock.Anything).Return(domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "insert failed")).Once()

		err := service.RecordEvent(ctx, &entity.ProfileEvent{ID: uuid.New(), Type: entity.EventConfigUpdated})

		assert.Error(t, err)
	})
}

func TestNotificationFor(t *testing.T) {
	teacherID := uuid.New()

	assert.Nil(t, notificationFor(&entity.ProfileEvent{ID: uuid.New(), Type: entity.EventProfileUpdated, TeacherUserID: &teacherID}))
	assert.Nil(t, notificationFor(&entity.ProfileEvent{ID: uuid.New(), Type: entity.EventTeacherApproved}))

	approved := notificationFor(&entity.ProfileEvent{ID: uuid.New(), Type: entity.EventTeacherApproved, TeacherUserID: &teacherID})
	require.NotNil(t, approved)
	assert.Equal(t, "Profile approved", approved.Title)

	rejected := notificationFor(&entity.ProfileEvent{ID: uuid.New(), Type: entity.EventTeacherRejected, TeacherUserID: &teacherID})
	require.NotNil(t, rejected)
	assert.Equal(t, "Your teacher profile was not approved.", rejected.Body)
}

func TestActivityService_ListNotifications(t *testing.T) {
	userID := uuid.New()

	t.Run("filters unread", func(t *testing.T) {
		service, repos, _ := createTestActivityService(t)
		ctx := context.Background()
		items := []*entity.Notification{{ID: uuid.New(), UserID: userID}}

		repos.notification.EXPECT().
			ListByUser(ctx, userID, mock.MatchedBy(func(q entity.ListQuery) bool {
				return q.Status == "unread" && q.Page == entity.DefaultPage
			})).
			Return(items, int64(1), nil).
			Once()

		page, err := service.ListNotifications(ctx, userID, entity.ListQuery{Status: "unread"})

		require.NoError(t, err)
		assert.Equal(t, items, page.Items)
		assert.Equal(t, 1, page.TotalPages)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		service, _, _ := createTestActivityService(t)

		_, err := service.ListNotifications(context.Background(), userID, entity.ListQuery{Status: "archived"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidEnum)
	})
}

func TestActivityService_ListActivity(t *testing.T) {
	service, repos, _ := createTestActivityService(t)
	ctx := context.Background()

	repos.activity.EXPECT().List(ctx, mock.Anything).Return(nil, int64(0), nil).Once()

	page, err := service.ListActivity(ctx, entity.ListQuery{})

	require.NoError(t, err)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.TotalPages)
}

func TestActivityService_MarkRead(t *testing.T) {
	userID := uuid.New()
	notificationID := uuid.New()

	t.Run("stamps current time", func(t *testing.T) {
		service, repos, now := createTestActivityService(t)
		ctx := context.Background()

		repos.notification.EXPECT().MarkRead(ctx, userID, notificationID, now).Return(nil).Once()

		assert.NoError(t, service.MarkRead(ctx, userID, notificationID))
	})

	t.Run("unknown notification", func(t *testing.T) {
		service, repos, _ := createTestActivityService(t)
		ctx := context.Background()

		repos.notification.EXPECT().MarkRead(ctx, userID, notificationID, mock.Anything).Return(repository.ErrNotificationNotFound).Once()

		err := service.MarkRead(ctx, userID, notificationID)

		assert.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)
	})
}
