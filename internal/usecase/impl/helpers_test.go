package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"

	"tuition/internal/domain/entity"
	"tuition/internal/domain/repository"
	mockRepo "tuition/internal/mocks/repository"
	mockSvc "tuition/internal/mocks/service"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// repoMocks bundles one mock per repository behind a single factory.
type repoMocks struct {
	factory        *mockRepo.MockRepositoryFactory
	config         *mockRepo.MockConfigRepository
	taxonomy       *mockRepo.MockTaxonomyRepository
	section        *mockRepo.MockSectionRepository
	template       *mockRepo.MockTemplateRepository
	teacherProfile *mockRepo.MockTeacherProfileRepository
	user           *mockRepo.MockUserRepository
	activity       *mockRepo.MockActivityRepository
	notification   *mockRepo.MockNotificationRepository
}

func newRepoMocks(t *testing.T) *repoMocks {
	m := &repoMocks{
		factory:        mockRepo.NewMockRepositoryFactory(t),
		config:         mockRepo.NewMockConfigRepository(t),
		taxonomy:       mockRepo.NewMockTaxonomyRepository(t),
		section:        mockRepo.NewMockSectionRepository(t),
		template:       mockRepo.NewMockTemplateRepository(t),
		teacherProfile: mockRepo.NewMockTeacherProfileRepository(t),
		user:           mockRepo.NewMockUserRepository(t),
		activity:       mockRepo.NewMockActivityRepository(t),
		notification:   mockRepo.NewMockNotificationRepository(t),
	}

	m.factory.EXPECT().ConfigRepo().Return(m.config).Maybe()
	m.factory.EXPECT().TaxonomyRepo().Return(m.taxonomy).Maybe()
	m.factory.EXPECT().SectionRepo().Return(m.section).Maybe()
	m.factory.EXPECT().TemplateRepo().Return(m.template).Maybe()
	m.factory.EXPECT().TeacherProfileRepo().Return(m.teacherProfile).Maybe()
	m.factory.EXPECT().UserRepo().Return(m.user).Maybe()
	m.factory.EXPECT().ActivityRepo().Return(m.activity).Maybe()
	m.factory.EXPECT().NotificationRepo().Return(m.notification).Maybe()

	return m
}

// newTxManager runs every transaction callback against the mocked repositories.
func newTxManager(t *testing.T, repos *repoMocks) *mockRepo.MockTransactionManager {
	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(repos.factory)
		}).
		Maybe()

	return txManager
}

// eventRecorder captures every event handed to the publisher mock.
type eventRecorder struct {
	mu     sync.Mutex
	events []*entity.ProfileEvent
}

func newEventRecorder(t *testing.T) (*mockSvc.MockEventPublisher, *eventRecorder) {
	recorder := &eventRecorder{}
	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().
		PublishProfileEvent(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, event *entity.ProfileEvent) error {
			recorder.mu.Lock()
			defer recorder.mu.Unlock()
			recorder.events = append(recorder.events, event)

			return nil
		}).
		Maybe()

	return publisher, recorder
}

func (r *eventRecorder) types() []entity.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()

	types := make([]entity.EventType, 0, len(r.events))
	for _, e := range r.events {
		types = append(types, e.Type)
	}

	return types
}

func (r *eventRecorder) last() *entity.ProfileEvent {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.events) == 0 {
		return nil
	}

	return r.events[len(r.events)-1]
}

func testConfig() *entity.DynamicConfig {
	cfg := entity.DefaultConfig("default")
	cfg.Version = 1

	return cfg
}

func intPtr(v int) *int { return &v }

func int64Ptr(v int64) *int64 { return &v }

func strPtr(v string) *string { return &v }

func boolPtr(v bool) *bool { return &v }
