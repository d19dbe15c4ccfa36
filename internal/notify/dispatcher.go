// Package notify sends booking confirmation email and SMS through Resend and
// Twilio. Every channel is best-effort: failures are logged and absorbed, and
// never reach the booking flow.
package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sam23121/car-detailing/internal/model"
)

// callTimeout bounds each provider call so a stuck provider cannot delay the
// booking response indefinitely.
const callTimeout = 10 * time.Second

// dateLayout renders "September 01, 2026 at 02:30 PM".
const dateLayout = "January 02, 2006 at 03:04 PM"

// BookingSource loads a booking with customer/package/item detail.
// *repository.BookingRepository satisfies it.
type BookingSource interface {
	GetWithDetails(ctx context.Context, id int64) (*model.BookingWithDetails, error)
}

// Dispatcher fans a freshly created booking out to the notification channels:
// confirmation email to the customer, summary email to the owner, short SMS
// to the owner.
type Dispatcher struct {
	bookings   BookingSource
	email      EmailSender
	sms        SMSSender
	ownerEmail string
	ownerPhone string
	log        *zap.Logger
}

// NewDispatcher constructs a Dispatcher. email and sms may be nil interfaces
// to disable the corresponding channel.
func NewDispatcher(bookings BookingSource, email EmailSender, sms SMSSender, ownerEmail, ownerPhone string, log *zap.Logger) *Dispatcher {
	return &Dispatcher{
		bookings:   bookings,
		email:      email,
		sms:        sms,
		ownerEmail: ownerEmail,
		ownerPhone: ownerPhone,
		log:        log,
	}
}

// Dispatch sends all notifications for a booking. It never returns an error:
// the booking has already committed, and notification failures must not
// surface to the client. The booking is re-fetched with full detail rather
// than reusing in-memory state so relationship data is always populated.
func (d *Dispatcher) Dispatch(ctx context.Context, bookingID int64) {
	log := d.log.With(
		zap.Int64("booking_id", bookingID),
		zap.String("dispatch_id", uuid.NewString()),
	)

	booking, err := d.bookings.GetWithDetails(ctx, bookingID)
	if err != nil {
		log.Error("load booking for notification", zap.Error(err))
		return
	}
	if booking.Customer == nil {
		// Nothing to notify.
		return
	}

	dateStr := booking.ScheduledDate.Format(dateLayout)
	summary := buildSummary(booking, dateStr)

	customerBody := fmt.Sprintf(
		"Hi %s,\n\n"+
			"We received your booking request for %s.\n\n"+
			"We'll confirm shortly. If you have questions, reply to this email or give us a call.\n\n"+
			"— Quality Mobile Detailing",
		booking.Customer.Name, dateStr,
	)
	d.sendEmail(ctx, log, booking.Customer.Email,
		"Booking request received – Quality Mobile Detailing", customerBody)

	d.sendEmail(ctx, log, d.ownerEmail,
		"New booking request – Quality Mobile Detailing",
		"New booking request:\n\n"+summary)

	smsBody := fmt.Sprintf("New booking: %s – %s. Check admin.", booking.Customer.Name, dateStr)
	d.sendSMS(ctx, log, d.ownerPhone, smsBody)
}

func (d *Dispatcher) sendEmail(ctx context.Context, log *zap.Logger, to, subject, body string) {
	if d.email == nil {
		log.Warn("email provider not configured, skipping email", zap.String("to", to))
		return
	}
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()
	if err := d.email.Send(ctx, to, subject, body); err != nil {
		log.Error("send email", zap.String("to", to), zap.Error(err))
		return
	}
	log.Info("email sent", zap.String("to", to))
}

func (d *Dispatcher) sendSMS(ctx context.Context, log *zap.Logger, to, body string) {
	if d.sms == nil {
		log.Warn("sms provider not configured, skipping sms", zap.String("to", to))
		return
	}
	normalized, err := NormalizePhone(to)
	if err != nil {
		log.Warn("invalid destination phone, skipping sms", zap.String("to", to), zap.Error(err))
		return
	}
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()
	if err := d.sms.Send(ctx, normalized, body); err != nil {
		log.Error("send sms", zap.String("to", normalized), zap.Error(err))
		return
	}
	log.Info("sms sent", zap.String("to", normalized))
}

// buildSummary renders the human-readable booking summary used in the owner
// email: customer, date, phone, packages, location, and notes when present.
func buildSummary(b *model.BookingWithDetails, dateStr string) string {
	c := b.Customer
	parts := []string{
		fmt.Sprintf("%s (%s)", c.Name, c.Email),
		"Date: " + dateStr,
	}
	if c.Phone != nil && *c.Phone != "" {
		parts = append(parts, "Phone: "+*c.Phone)
	}
	if len(b.Items) > 0 {
		names := make([]string, 0, len(b.Items))
		for _, item := range b.Items {
			if item.Package != nil {
				names = append(names, item.Package.Name)
			} else {
				names = append(names, fmt.Sprintf("Package #%d", item.PackageID))
			}
		}
		parts = append(parts, "Packages: "+strings.Join(names, ", "))
	} else if b.Package != nil {
		parts = append(parts, "Package: "+b.Package.Name)
	}
	if b.Location != nil && *b.Location != "" {
		parts = append(parts, "Location: "+*b.Location)
	}
	if b.Notes != nil && *b.Notes != "" {
		parts = append(parts, "Notes: "+*b.Notes)
	}
	return strings.Join(parts, "\n")
}
