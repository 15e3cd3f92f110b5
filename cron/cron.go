package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/kunalsaini/home-service-app/db"
	"github.com/kunalsaini/home-service-app/models"
	"github.com/kunalsaini/home-service-app/utils"
)

// StartCronJobs initializes and starts the cron scheduler for service reminders
func StartCronJobs() {
	fmt.Println("Starting cron job scheduler...")
	c := cron.New()
	// Run every morning at 8:00 to remind customers of next-day services
	_, err := c.AddFunc("0 8 * * *", sendServiceReminders)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for service reminders")
}

// sendServiceReminders checks for upcoming bookings and sends reminders
func sendServiceReminders() {
	now := time.Now()
	startWindow := now.AddDate(0, 0, 1).Truncate(24 * time.Hour)
	endWindow := startWindow.AddDate(0, 0, 1)

	var bookings []models.Booking
	err := db.DB.
		Where("is_past = ? AND service_date >= ? AND service_date < ?", false, startWindow, endWindow).
		Find(&bookings).Error
	if err != nil {
		log.Printf("Error fetching bookings for reminders: %v", err)
		return
	}

	fmt.Printf("Found %d bookings for reminders\n", len(bookings))

	for _, booking := range bookings {
		if err := sendReminderEmail(&booking); err != nil {
			log.Printf("Failed to send reminder for booking %s: %v", booking.BookingRef, err)
			continue
		}
		log.Printf("Sent reminder for booking %s", booking.BookingRef)
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(booking *models.Booking) error {
	var user models.User
	if err := db.DB.First(&user, booking.UserID).Error; err != nil {
		return err
	}

	subject := fmt.Sprintf("Reminder: Upcoming Service - %s", booking.ServiceType)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your service scheduled tomorrow.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Booking ID:</strong> %s</li>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Professional:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Arrival Time:</strong> %s</li>
		</ul>
		<p>If you need to reschedule or cancel, contact us as soon as possible.</p>
		<p>Best regards,</p>
		<p>Your Home Services Team</p>
	`, user.Name, booking.BookingRef, booking.ServiceType, booking.ProviderName,
		booking.ServiceDate.Format("2006-01-02"), booking.TimeSlotText)

	return utils.SendEmail(user.Email, subject, body)
}
