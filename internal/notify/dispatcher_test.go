package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sam23121/car-detailing/internal/model"
)

type fakeBookingSource struct {
	booking *model.BookingWithDetails
	err     error
}

func (f *fakeBookingSource) GetWithDetails(ctx context.Context, id int64) (*model.BookingWithDetails, error) {
	return f.booking, f.err
}

type sentEmail struct {
	to      string
	subject string
	body    string
}

type fakeEmailSender struct {
	sent []sentEmail
	err  error
}

func (f *fakeEmailSender) Send(ctx context.Context, to, subject, body string) error {
	f.sent = append(f.sent, sentEmail{to: to, subject: subject, body: body})
	return f.err
}

type fakeSMSSender struct {
	to   []string
	body []string
	err  error
}

func (f *fakeSMSSender) Send(ctx context.Context, to, body string) error {
	f.to = append(f.to, to)
	f.body = append(f.body, body)
	return f.err
}

func strptr(s string) *string { return &s }

func detailedBooking() *model.BookingWithDetails {
	return &model.BookingWithDetails{
		Booking: model.Booking{
			ID:            42,
			ScheduledDate: time.Date(2026, time.March, 7, 14, 30, 0, 0, time.UTC),
			Location:      strptr("123 Main St"),
			Notes:         strptr("gate code 4471"),
		},
		Customer: &model.BookingCustomerInfo{
			ID:    7,
			Name:  "Alice",
			Email: "alice@example.com",
			Phone: strptr("702-470-7392"),
		},
		Items: []model.BookingItemDetail{
			{PackageID: 3, Quantity: 1, Package: &model.BookingPackageInfo{ID: 3, Name: "Full Ceramic"}},
			{PackageID: 5, Quantity: 1, Package: &model.BookingPackageInfo{ID: 5, Name: "Interior Detail"}},
		},
	}
}

func TestDispatchSendsAllChannels(t *testing.T) {
	email := &fakeEmailSender{}
	sms := &fakeSMSSender{}
	d := NewDispatcher(&fakeBookingSource{booking: detailedBooking()}, email, sms,
		"owner@example.com", "7024707392", zap.NewNop())

	d.Dispatch(context.Background(), 42)

	require.Len(t, email.sent, 2)
	assert.Equal(t, "alice@example.com", email.sent[0].to)
	assert.Contains(t, email.sent[0].body, "March 07, 2026 at 02:30 PM")
	assert.Contains(t, email.sent[0].body, "Hi Alice")

	assert.Equal(t, "owner@example.com", email.sent[1].to)
	assert.Contains(t, email.sent[1].body, "Alice (alice@example.com)")
	assert.Contains(t, email.sent[1].body, "Packages: Full Ceramic, Interior Detail")
	assert.Contains(t, email.sent[1].body, "Location: 123 Main St")
	assert.Contains(t, email.sent[1].body, "Notes: gate code 4471")

	require.Len(t, sms.to, 1)
	assert.Equal(t, "+17024707392", sms.to[0])
	assert.Contains(t, sms.body[0], "New booking: Alice")
}

func TestDispatchSurvivesChannelFailures(t *testing.T) {
	email := &fakeEmailSender{err: errors.New("provider down")}
	sms := &fakeSMSSender{}
	d := NewDispatcher(&fakeBookingSource{booking: detailedBooking()}, email, sms,
		"owner@example.com", "7024707392", zap.NewNop())

	// Must not panic or abort: the owner SMS still goes out even though both
	// emails fail.
	d.Dispatch(context.Background(), 42)

	assert.Len(t, email.sent, 2)
	assert.Len(t, sms.to, 1)
}

func TestDispatchWithNoProvidersConfigured(t *testing.T) {
	d := NewDispatcher(&fakeBookingSource{booking: detailedBooking()}, nil, nil,
		"owner@example.com", "7024707392", zap.NewNop())

	// Nil senders mean unconfigured channels; dispatch is a logged no-op.
	d.Dispatch(context.Background(), 42)
}

func TestDispatchSkipsWhenNoCustomer(t *testing.T) {
	b := detailedBooking()
	b.Customer = nil
	email := &fakeEmailSender{}
	sms := &fakeSMSSender{}
	d := NewDispatcher(&fakeBookingSource{booking: b}, email, sms,
		"owner@example.com", "7024707392", zap.NewNop())

	d.Dispatch(context.Background(), 42)

	assert.Empty(t, email.sent)
	assert.Empty(t, sms.to)
}

func TestDispatchSkipsSMSForInvalidOwnerPhone(t *testing.T) {
	email := &fakeEmailSender{}
	sms := &fakeSMSSender{}
	d := NewDispatcher(&fakeBookingSource{booking: detailedBooking()}, email, sms,
		"owner@example.com", "", zap.NewNop())

	d.Dispatch(context.Background(), 42)

	assert.Len(t, email.sent, 2)
	assert.Empty(t, sms.to)
}

func TestDispatchHandlesLoadFailure(t *testing.T) {
	email := &fakeEmailSender{}
	d := NewDispatcher(&fakeBookingSource{err: errors.New("db gone")}, email, nil,
		"owner@example.com", "7024707392", zap.NewNop())

	d.Dispatch(context.Background(), 42)

	assert.Empty(t, email.sent)
}

func TestSummaryFallsBackToLegacyPackage(t *testing.T) {
	b := detailedBooking()
	b.Items = nil
	b.Package = &model.BookingPackageInfo{ID: 3, Name: "Full Ceramic"}

	summary := buildSummary(b, "March 07, 2026 at 02:30 PM")

	assert.Contains(t, summary, "Package: Full Ceramic")
	assert.NotContains(t, summary, "Packages:")
}

func TestSummaryNamesUnresolvedItemPackages(t *testing.T) {
	b := detailedBooking()
	b.Items = []model.BookingItemDetail{{PackageID: 9, Quantity: 1}}

	summary := buildSummary(b, "March 07, 2026 at 02:30 PM")

	assert.Contains(t, summary, "Packages: Package #9")
}
