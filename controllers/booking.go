package controllers

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/kunalsaini/home-service-app/db"
	"github.com/kunalsaini/home-service-app/models"
	"github.com/kunalsaini/home-service-app/payments"
	"github.com/kunalsaini/home-service-app/redis"
	"github.com/kunalsaini/home-service-app/utils"
)

// PaymentGateway is the charge port used by MakePayment. main wires the
// configured implementation; tests inject an immediate one.
var PaymentGateway payments.Gateway

const draftTTL = 24 * time.Hour

func draftKey(id string) string {
	return "booking_draft:" + id
}

// loadDraft fetches a draft and checks it belongs to the caller
func loadDraft(c *fiber.Ctx) (*models.BookingDraft, error) {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return nil, fmt.Errorf("invalid user ID")
	}

	var draft models.BookingDraft
	if err := redis.GetJSON(draftKey(c.Params("id")), &draft); err != nil {
		return nil, fmt.Errorf("draft not found or expired")
	}

	if draft.UserID != userID {
		return nil, fmt.Errorf("draft not found or expired")
	}

	return &draft, nil
}

func saveDraft(draft *models.BookingDraft) error {
	return redis.SetJSON(draftKey(draft.ID), draft, draftTTL)
}

// appliedCoupon resolves the draft's coupon code, if any, against the table.
// A coupon that expired after being applied no longer discounts.
func appliedCoupon(draft *models.BookingDraft) *models.Coupon {
	if draft.CouponCode == "" {
		return nil
	}
	coupon, err := models.FindCoupon(db.DB, draft.CouponCode)
	if err != nil || coupon.Expired() {
		return nil
	}
	return coupon
}

// CreateBookingDraft starts the multi-step booking flow for a provider
func CreateBookingDraft(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	type DraftInput struct {
		ProviderID uint `json:"provider_id"`
	}

	input := new(DraftInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	// The draft must point at a real provider
	var provider models.Provider
	if err := db.DB.First(&provider, input.ProviderID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Provider not found",
		})
	}

	draft := models.BookingDraft{
		ID:         utils.GenerateDraftID(),
		UserID:     userID,
		ProviderID: provider.ID,
		CreatedAt:  time.Now(),
	}

	if err := saveDraft(&draft); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create booking draft",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(draft)
}

// UpdateCustomization records the household attributes for the draft
func UpdateCustomization(c *fiber.Ctx) error {
	draft, err := loadDraft(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	customization := new(models.ServiceCustomization)
	if err := c.BodyParser(customization); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if err := customization.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	draft.Customization = customization
	if err := saveDraft(draft); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save booking draft",
		})
	}

	return c.JSON(draft)
}

// UpdateSchedule records frequency and time-slot choices and responds with
// the estimated price derived from them
func UpdateSchedule(c *fiber.Ctx) error {
	draft, err := loadDraft(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	schedule := new(models.ScheduleDetails)
	if err := c.BodyParser(schedule); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if err := schedule.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	schedule.EstimatedPrice = utils.EstimatePrice(schedule.ServiceFrequency, schedule.TimeSlot)

	draft.Schedule = schedule
	if err := saveDraft(draft); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save booking draft",
		})
	}

	return c.JSON(fiber.Map{
		"draft":           draft,
		"estimated_price": schedule.EstimatedPrice,
	})
}

// GetCheckoutSummary derives the full booking summary from the draft:
// provider details, the service-type label, the schedule, and the price
// breakdown. Every number is recomputed here from the current selections.
func GetCheckoutSummary(c *fiber.Ctx) error {
	draft, err := loadDraft(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if draft.Customization == nil || draft.Schedule == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Complete the customization and schedule steps first",
		})
	}

	var provider models.Provider
	if err := db.DB.First(&provider, draft.ProviderID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Provider not found",
		})
	}

	subtotal := utils.EstimatePrice(draft.Schedule.ServiceFrequency, draft.Schedule.TimeSlot)
	breakdown := utils.ComputeBreakdown(subtotal, appliedCoupon(draft))

	return c.JSON(fiber.Map{
		"provider":       provider,
		"service_type":   draft.Customization.ServiceTypes(),
		"frequency":      draft.Schedule.ServiceFrequency,
		"arrival_time":   draft.Schedule.TimeSlotText(),
		"start_date":     draft.Schedule.StartDate,
		"end_date":       draft.Schedule.EndDate,
		"coupon_applied": draft.CouponCode,
		"price":          breakdown,
	})
}

// ApplyCoupon matches the entered code and attaches it to the draft.
// Applying a coupon replaces any previously applied one.
func ApplyCoupon(c *fiber.Ctx) error {
	draft, err := loadDraft(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if draft.Schedule == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Complete the schedule step first",
		})
	}

	type CouponInput struct {
		Code string `json:"code"`
	}

	input := new(CouponInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if input.Code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Please enter a coupon code",
		})
	}

	coupon, err := models.FindCoupon(db.DB, input.Code)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Invalid coupon code",
		})
	}
	if coupon.Expired() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Coupon has expired",
		})
	}

	draft.CouponCode = coupon.Code
	if err := saveDraft(draft); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save booking draft",
		})
	}

	subtotal := utils.EstimatePrice(draft.Schedule.ServiceFrequency, draft.Schedule.TimeSlot)

	return c.JSON(fiber.Map{
		"coupon": coupon,
		"price":  utils.ComputeBreakdown(subtotal, coupon),
	})
}

// RemoveCoupon clears the applied coupon from the draft
func RemoveCoupon(c *fiber.Ctx) error {
	draft, err := loadDraft(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	draft.CouponCode = ""
	if err := saveDraft(draft); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save booking draft",
		})
	}

	var price *utils.PriceBreakdown
	if draft.Schedule != nil {
		subtotal := utils.EstimatePrice(draft.Schedule.ServiceFrequency, draft.Schedule.TimeSlot)
		breakdown := utils.ComputeBreakdown(subtotal, nil)
		price = &breakdown
	}

	return c.JSON(fiber.Map{
		"message": "Coupon removed",
		"price":   price,
	})
}

// MakePayment recomputes the totals, charges through the payment gateway and
// persists the confirmed booking
func MakePayment(c *fiber.Ctx) error {
	draft, err := loadDraft(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if draft.Customization == nil || draft.Schedule == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Complete the customization and schedule steps first",
		})
	}

	type PaymentInput struct {
		Method  models.PaymentMethod `json:"method"`
		Address string               `json:"address"`
	}

	input := new(PaymentInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if input.Method == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Please select a payment method",
		})
	}
	if !models.ValidPaymentMethod(input.Method) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Unsupported payment method %q", input.Method),
		})
	}

	var provider models.Provider
	if err := db.DB.First(&provider, draft.ProviderID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Provider not found",
		})
	}

	subtotal := utils.EstimatePrice(draft.Schedule.ServiceFrequency, draft.Schedule.TimeSlot)
	breakdown := utils.ComputeBreakdown(subtotal, appliedCoupon(draft))

	ref := utils.GenerateBookingRef()
	result, err := PaymentGateway.Charge(c.Context(), breakdown.Total, input.Method, ref)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Payment failed: " + err.Error(),
		})
	}

	paymentStatus := models.PaymentStatusPaid
	if result.Status == "pending" {
		paymentStatus = models.PaymentStatusPending
	}

	booking := models.Booking{
		BookingRef:    ref,
		UserID:        draft.UserID,
		ProviderID:    provider.ID,
		ProviderName:  provider.Name,
		ServiceType:   draft.Customization.ServiceTypes(),
		Amount:        breakdown.Subtotal,
		PlatformFee:   breakdown.PlatformFee,
		Discount:      breakdown.Discount,
		Total:         breakdown.Total,
		CouponCode:    draft.CouponCode,
		PaymentMethod: input.Method,
		PaymentStatus: paymentStatus,
		BookingDate:   time.Now(),
		ServiceDate:   draft.Schedule.StartDate,
		TimeSlotText:  draft.Schedule.TimeSlotText(),
		Address:       input.Address,
		Duration:      string(draft.Schedule.ServiceFrequency),
	}

	if err := db.DB.Create(&booking).Error; err != nil {
		log.Printf("Error creating booking %s: %v", ref, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create booking",
		})
	}

	// The draft is spent; drop it so the flow can't double-book
	if err := redis.Client.Del(redis.Ctx, draftKey(draft.ID)).Err(); err != nil {
		log.Printf("Failed to delete draft %s: %v", draft.ID, err)
	}

	go sendBookingConfirmation(&booking)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"booking":        booking,
		"transaction_id": result.TransactionID,
	})
}

// sendBookingConfirmation mails the booking receipt to the customer
func sendBookingConfirmation(booking *models.Booking) {
	var user models.User
	if err := db.DB.First(&user, booking.UserID).Error; err != nil {
		log.Printf("Failed to load user for booking %s: %v", booking.BookingRef, err)
		return
	}

	subject := fmt.Sprintf("Booking Confirmed - %s", booking.BookingRef)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your booking is confirmed.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Booking ID:</strong> %s</li>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Professional:</strong> %s</li>
			<li><strong>Service Date:</strong> %s</li>
			<li><strong>Arrival Time:</strong> %s</li>
			<li><strong>Total Paid:</strong> ₹%d</li>
		</ul>
		<p>Best regards,</p>
		<p>Your Home Services Team</p>
	`, user.Name, booking.BookingRef, booking.ServiceType, booking.ProviderName,
		booking.ServiceDate.Format("2006-01-02"), booking.TimeSlotText, booking.Total)

	if err := utils.SendEmail(user.Email, subject, body); err != nil {
		log.Printf("Failed to send confirmation for booking %s: %v", booking.BookingRef, err)
	}
}
