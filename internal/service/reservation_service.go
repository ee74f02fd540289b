package service

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	sestypes "github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"go.uber.org/zap"

	"github.com/samaladyasa/spice-and-soul-backend/internal/config"
	"github.com/samaladyasa/spice-and-soul-backend/internal/domain"
)

// SESClient is the slice of the SES API the reservation flow needs.
type SESClient interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// ReservationService notifies the restaurant about reservation requests.
// Reservations are not persisted; the restaurant confirms by phone.
type ReservationService struct {
	ses    SESClient
	cfg    config.EmailConfig
	logger *zap.Logger
}

// NewReservationService builds the service.
func NewReservationService(ses SESClient, cfg config.EmailConfig, logger *zap.Logger) *ReservationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReservationService{ses: ses, cfg: cfg, logger: logger}
}

// Notify emails the reservation details to the restaurant inbox. The email
// is best-effort: a delivery failure is logged, the details land in the log
// for manual follow-up, and the reservation still succeeds. The returned
// bool reports whether the email went out.
func (s *ReservationService) Notify(ctx context.Context, res domain.Reservation) bool {
	formattedDate := formatReservationDate(res.Date)
	subject := fmt.Sprintf("New Reservation - %s for %s", res.Name, formattedDate)

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(s.cfg.FromAddress),
		Destination: &sestypes.Destination{
			ToAddresses: []string{s.cfg.RestaurantInbox},
		},
		Content: &sestypes.EmailContent{
			Simple: &sestypes.Message{
				Subject: &sestypes.Content{Data: aws.String(subject)},
				Body: &sestypes.Body{
					Html: &sestypes.Content{Data: aws.String(reservationTemplate(res, formattedDate))},
				},
			},
		},
	}

	if s.ses == nil {
		s.logReservationFallback(res, formattedDate)
		return false
	}
	if _, err := s.ses.SendEmail(ctx, input); err != nil {
		s.logger.Warn("reservation email failed", zap.Error(err))
		s.logReservationFallback(res, formattedDate)
		return false
	}
	return true
}

// logReservationFallback records the details so staff can follow up when
// the notification email never arrived.
func (s *ReservationService) logReservationFallback(res domain.Reservation, formattedDate string) {
	s.logger.Info("reservation requires manual follow-up",
		zap.String("customer", res.Name),
		zap.String("phone", res.Phone),
		zap.String("date", formattedDate),
		zap.String("time", res.Time),
		zap.String("guests", res.Guests),
		zap.String("requests", res.Requests))
}

// formatReservationDate renders an ISO date like "Monday, January 2, 2006".
// An unparseable input is passed through untouched.
func formatReservationDate(date string) string {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return parsed.Format("Monday, January 2, 2006")
}

func reservationTemplate(res domain.Reservation, formattedDate string) string {
	guestsLabel := "people"
	if res.Guests == "1" {
		guestsLabel = "person"
	}
	requestsRow := ""
	if res.Requests != "" {
		requestsRow = fmt.Sprintf(`<tr><td style="padding: 12px 0; font-weight: bold; color: #666;">Special Requests:</td><td style="padding: 12px 0; color: #333;">%s</td></tr>`, res.Requests)
	}

	return fmt.Sprintf(`
      <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
        <h1 style="color: #333;">New Table Reservation</h1>
        <table style="width: 100%%; border-collapse: collapse;">
          <tr style="border-bottom: 1px solid #eee;"><td style="padding: 12px 0; font-weight: bold; color: #666;">Name:</td><td style="padding: 12px 0; color: #333;">%s</td></tr>
          <tr style="border-bottom: 1px solid #eee;"><td style="padding: 12px 0; font-weight: bold; color: #666;">Phone:</td><td style="padding: 12px 0; color: #333;">%s</td></tr>
          <tr style="border-bottom: 1px solid #eee;"><td style="padding: 12px 0; font-weight: bold; color: #666;">Date:</td><td style="padding: 12px 0; color: #333;">%s</td></tr>
          <tr style="border-bottom: 1px solid #eee;"><td style="padding: 12px 0; font-weight: bold; color: #666;">Time:</td><td style="padding: 12px 0; color: #333;">%s</td></tr>
          <tr style="border-bottom: 1px solid #eee;"><td style="padding: 12px 0; font-weight: bold; color: #666;">Guests:</td><td style="padding: 12px 0; color: #333;">%s %s</td></tr>
          %s
        </table>
        <p style="margin-top: 25px; color: #155724;"><strong>ACTION REQUIRED:</strong> please call %s to confirm this reservation.</p>
      </div>`, res.Name, res.Phone, formattedDate, res.Time, res.Guests, guestsLabel, requestsRow, res.Phone)
}
