package billing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/cashgps/backend/internal/application/adapter"
	"github.com/cashgps/backend/internal/domain/entity"
	domainerror "github.com/cashgps/backend/internal/domain/error"
)

type memSubscriptionRepo struct {
	records map[string]*entity.Subscription
}

func newMemSubscriptionRepo() *memSubscriptionRepo {
	return &memSubscriptionRepo{records: map[string]*entity.Subscription{}}
}

func (m *memSubscriptionRepo) Create(ctx context.Context, s *entity.Subscription) error {
	m.records[s.ProviderSubscription] = s
	return nil
}

func (m *memSubscriptionRepo) FindByProviderSubscription(ctx context.Context, id string) (*entity.Subscription, error) {
	s, ok := m.records[id]
	if !ok {
		return nil, domainerror.ErrSubscriptionNotFound
	}
	return s, nil
}

func (m *memSubscriptionRepo) FindProviderSubscriptionByCustomer(ctx context.Context, customerID string) (string, error) {
	for id, s := range m.records {
		if s.CustomerID == customerID {
			return id, nil
		}
	}
	return "", domainerror.ErrSubscriptionNotFound
}

func (m *memSubscriptionRepo) UpdateStatus(ctx context.Context, id string, status entity.SubscriptionStatus) error {
	s, ok := m.records[id]
	if !ok {
		return domainerror.ErrSubscriptionNotFound
	}
	s.Status = status
	return nil
}

type tierRecordingUserRepo struct {
	tier      string
	expiresAt time.Time
}

func (t *tierRecordingUserRepo) Create(ctx context.Context, u *entity.User) error { return nil }

func (t *tierRecordingUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return nil, domainerror.ErrUserNotFound
}

func (t *tierRecordingUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return nil, domainerror.ErrUserNotFound
}

func (t *tierRecordingUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}

func (t *tierRecordingUserRepo) Update(ctx context.Context, u *entity.User) error { return nil }

func (t *tierRecordingUserRepo) UpdateSubscriptionByCustomer(ctx context.Context, customerID, tier string, expiresAt time.Time) error {
	t.tier = tier
	t.expiresAt = expiresAt
	return nil
}

func (t *tierRecordingUserRepo) SetPasswordResetToken(ctx context.Context, id uuid.UUID, token *string, expiresAt *time.Time) error {
	return nil
}

func (t *tierRecordingUserRepo) FindByResetToken(ctx context.Context, token string) (*entity.User, error) {
	return nil, domainerror.ErrResetTokenInvalid
}

func (t *tierRecordingUserRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

type staticGateway struct {
	subscription adapter.ProviderSubscription
}

func (g staticGateway) CreateCustomer(ctx context.Context, email, name string) (string, error) {
	return "cus_test", nil
}

func (g staticGateway) GetSubscription(ctx context.Context, id string) (*adapter.ProviderSubscription, error) {
	s := g.subscription
	s.ID = id
	return &s, nil
}

func (g staticGateway) CancelSubscription(ctx context.Context, id string) error { return nil }

func TestExtensionFor(t *testing.T) {
	if got := ExtensionFor(IntervalMonth); got != 30*24*time.Hour {
		t.Errorf("monthly extension = %s, want 720h", got)
	}
	if got := ExtensionFor(IntervalYear); got != 365*24*time.Hour {
		t.Errorf("yearly extension = %s, want 8760h", got)
	}
}

func TestHandleWebhook(t *testing.T) {
	t.Run("checkout completion records a pending subscription", func(t *testing.T) {
		repo := newMemSubscriptionRepo()
		uc := NewHandleWebhookUseCase(repo, &tierRecordingUserRepo{}, staticGateway{})

		_, err := uc.Execute(context.Background(), HandleWebhookInput{Event: WebhookEvent{
			Type:              EventCheckoutCompleted,
			CustomerID:        "cus_1",
			SubscriptionID:    "sub_1",
			CheckoutSessionID: "cs_1",
			Description:       "MEDIUM monthly",
		}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		record, err := repo.FindByProviderSubscription(context.Background(), "sub_1")
		if err != nil {
			t.Fatal(err)
		}
		if record.Status != entity.SubscriptionStatusPending {
			t.Errorf("expected pending status, got %s", record.Status)
		}
	})

	t.Run("paid invoice activates the tier and extends the expiry", func(t *testing.T) {
		repo := newMemSubscriptionRepo()
		users := &tierRecordingUserRepo{}
		gateway := staticGateway{subscription: adapter.ProviderSubscription{PlanNickname: "MEDIUM", Interval: IntervalMonth}}
		uc := NewHandleWebhookUseCase(repo, users, gateway)

		if _, err := uc.Execute(context.Background(), HandleWebhookInput{Event: WebhookEvent{
			Type: EventCheckoutCompleted, CustomerID: "cus_1", SubscriptionID: "sub_1",
		}}); err != nil {
			t.Fatal(err)
		}

		if _, err := uc.Execute(context.Background(), HandleWebhookInput{Event: WebhookEvent{
			Type: EventInvoicePaid, CustomerID: "cus_1", SubscriptionID: "sub_1",
		}}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if users.tier != "MEDIUM" {
			t.Errorf("expected tier MEDIUM, got %q", users.tier)
		}
		remaining := time.Until(users.expiresAt)
		if remaining < 29*24*time.Hour || remaining > 30*24*time.Hour {
			t.Errorf("monthly expiry should be 30 days out, got %s", remaining)
		}

		record, _ := repo.FindByProviderSubscription(context.Background(), "sub_1")
		if record.Status != entity.SubscriptionStatusComplete {
			t.Errorf("expected complete status, got %s", record.Status)
		}
	})

	t.Run("recurring invoice without subscription reference resolves via customer", func(t *testing.T) {
		repo := newMemSubscriptionRepo()
		users := &tierRecordingUserRepo{}
		gateway := staticGateway{subscription: adapter.ProviderSubscription{PlanNickname: "PREMIUM", Interval: IntervalYear}}
		uc := NewHandleWebhookUseCase(repo, users, gateway)

		if _, err := uc.Execute(context.Background(), HandleWebhookInput{Event: WebhookEvent{
			Type: EventCheckoutCompleted, CustomerID: "cus_2", SubscriptionID: "sub_2",
		}}); err != nil {
			t.Fatal(err)
		}

		if _, err := uc.Execute(context.Background(), HandleWebhookInput{Event: WebhookEvent{
			Type: EventInvoicePaid, CustomerID: "cus_2",
		}}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		remaining := time.Until(users.expiresAt)
		if remaining < 364*24*time.Hour || remaining > 365*24*time.Hour {
			t.Errorf("yearly expiry should be 365 days out, got %s", remaining)
		}
	})

	t.Run("payment failure and deletion update the record status", func(t *testing.T) {
		repo := newMemSubscriptionRepo()
		uc := NewHandleWebhookUseCase(repo, &tierRecordingUserRepo{}, staticGateway{})

		if _, err := uc.Execute(context.Background(), HandleWebhookInput{Event: WebhookEvent{
			Type: EventCheckoutCompleted, CustomerID: "cus_3", SubscriptionID: "sub_3",
		}}); err != nil {
			t.Fatal(err)
		}

		if _, err := uc.Execute(context.Background(), HandleWebhookInput{Event: WebhookEvent{
			Type: EventPaymentFailed, SubscriptionID: "sub_3",
		}}); err != nil {
			t.Fatal(err)
		}
		record, _ := repo.FindByProviderSubscription(context.Background(), "sub_3")
		if record.Status != entity.SubscriptionStatusIncomplete {
			t.Errorf("expected incomplete status, got %s", record.Status)
		}

		if _, err := uc.Execute(context.Background(), HandleWebhookInput{Event: WebhookEvent{
			Type: EventSubscriptionDeleted, SubscriptionID: "sub_3",
		}}); err != nil {
			t.Fatal(err)
		}
		if record.Status != entity.SubscriptionStatusCanceled {
			t.Errorf("expected canceled status, got %s", record.Status)
		}
	})

	t.Run("unknown event type is rejected", func(t *testing.T) {
		uc := NewHandleWebhookUseCase(newMemSubscriptionRepo(), &tierRecordingUserRepo{}, staticGateway{})

		_, err := uc.Execute(context.Background(), HandleWebhookInput{Event: WebhookEvent{Type: "charge.refunded"}})
		if !errors.Is(err, domainerror.ErrUnknownWebhookEvent) {
			t.Errorf("expected unknown event error, got %v", err)
		}
	})
}
