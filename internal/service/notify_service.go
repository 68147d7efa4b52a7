package service

import (
	"fmt"
	"log"

	"rentacar/internal/config"
	"rentacar/internal/db"
	"rentacar/internal/entities"
)

// NotifyService sends fire-and-forget ops notifications when a booking is
// created. Channels with missing configuration are skipped.
type NotifyService struct {
	cfg config.Config
}

func NewNotifyService(cfg config.Config) *NotifyService {
	return &NotifyService{cfg: cfg}
}

func (n *NotifyService) NotifyBookingCreated(booking db.Booking, carName string) {
	data := entities.BookingEmailData{
		BookingID:    booking.ID,
		CarName:      carName,
		StartDate:    booking.StartDate.Format("2006-01-02"),
		EndDate:      booking.EndDate.Format("2006-01-02"),
		PickupTime:   booking.PickupTime,
		DropoffTime:  booking.DropoffTime,
		CreatedAtUTC: booking.CreatedAt.Format("02 Jan 2006 15:04 MST"),
	}

	subject := fmt.Sprintf("New booking #%d: %s", data.BookingID, data.CarName)
	body := fmt.Sprintf(
		"A new booking was created.\n\n"+
			"Booking ID: %d\n"+
			"Car: %s\n"+
			"From: %s (pickup %s)\n"+
			"To: %s (dropoff %s)\n"+
			"Created at: %s\n",
		data.BookingID, data.CarName,
		data.StartDate, data.PickupTime,
		data.EndDate, data.DropoffTime,
		data.CreatedAtUTC,
	)

	if n.cfg.OpsNotifyEmail != "" {
		go func() {
			if err := SendEmailWithSendGrid(n.cfg, n.cfg.OpsNotifyEmail, "Operations", subject, body); err != nil {
				log.Printf("Booking %d was created, but the ops email failed: %v", data.BookingID, err)
			}
		}()
	}

	if n.cfg.OpsNotifyPhone != "" {
		sms := fmt.Sprintf("Rentacar: booking #%d for %s, %s to %s.",
			data.BookingID, data.CarName, data.StartDate, data.EndDate)
		go func() {
			if err := SendSMS(n.cfg, n.cfg.OpsNotifyPhone, sms); err != nil {
				log.Printf("Booking %d was created, but the ops SMS failed: %v", data.BookingID, err)
			}
		}()
	}
}

// SendDailyReport emails the utilization summary produced by the cron job.
func (n *NotifyService) SendDailyReport(subject, body string) {
	if n.cfg.OpsNotifyEmail == "" {
		return
	}
	if err := SendEmailWithSendGrid(n.cfg, n.cfg.OpsNotifyEmail, "Operations", subject, body); err != nil {
		log.Printf("Failed to send daily report email: %v", err)
	}
}
