package db

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/kunalsaini/home-service-app/models"
)

// Seed creates the default roles, the coupon table, the provider catalogue
// and the demo booking history if they don't exist yet.
func Seed() {
	seedRoles()
	seedCoupons()
	seedProviders()
	seedDemoBookings()
}

func seedRoles() {
	roles := []models.Role{
		{Name: "admin", Description: "Administrator with full access"},
		{Name: "provider", Description: "Service professional listed in the catalogue"},
		{Name: "client", Description: "Customer who can book services"},
	}

	for _, role := range roles {
		var existingRole models.Role
		if DB.Where("name = ?", role.Name).First(&existingRole).RowsAffected == 0 {
			DB.Create(&role)
		}
	}
}

func seedCoupons() {
	coupons := []models.Coupon{
		{
			Code:            "NEW50",
			Description:     "50% off on your first booking",
			DiscountPercent: 50,
			MaxDiscount:     200,
			ValidUntil:      time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			Code:            "FLASH25",
			Description:     "25% off flash sale",
			DiscountPercent: 25,
			MaxDiscount:     300,
			ValidUntil:      time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			Code:            "WEEKEND20",
			Description:     "20% off for weekend bookings",
			DiscountPercent: 20,
			MaxDiscount:     250,
			ValidUntil:      time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, coupon := range coupons {
		var existing models.Coupon
		if DB.Where("code = ?", coupon.Code).First(&existing).RowsAffected == 0 {
			DB.Create(&coupon)
		}
	}
}

func seedProviders() {
	var count int64
	DB.Model(&models.Provider{}).Count(&count)
	if count > 0 {
		return
	}

	providers := []models.Provider{
		{
			Name:            "Priya Sharma",
			JobRoles:        models.StringList{"Cook", "Cleaner"},
			ExperienceYears: 3,
			Rating:          4.5,
			ReviewCount:     42,
			Languages:       models.StringList{"English", "Hindi", "Tamil"},
			Verified:        true,
			Gender:          "Female",
			Age:             28,
			Religion:        "Hindu",
			MaritalStatus:   "Married",
			PetFriendly:     true,
			Availability:    models.AvailabilityLongTerm,
			Location:        "Mira Road, Thane",
		},
		{
			Name:            "Lakshmi Nair",
			JobRoles:        models.StringList{"Cleaner", "Baby Sitter"},
			ExperienceYears: 6,
			Rating:          4.8,
			ReviewCount:     65,
			Languages:       models.StringList{"Malayalam", "Hindi", "English"},
			Verified:        true,
			Gender:          "Female",
			Age:             34,
			Religion:        "Hindu",
			MaritalStatus:   "Married",
			PetFriendly:     false,
			Availability:    models.AvailabilityLongTerm,
			Location:        "Bhayander West",
		},
		{
			Name:            "Fatima Sheikh",
			JobRoles:        models.StringList{"Cook", "Kitchen Helper"},
			ExperienceYears: 8,
			Rating:          4.2,
			ReviewCount:     38,
			Languages:       models.StringList{"Hindi", "Urdu"},
			Verified:        true,
			Gender:          "Female",
			Age:             41,
			Religion:        "Muslim",
			MaritalStatus:   "Married",
			PetFriendly:     false,
			Availability:    models.AvailabilityShortTerm,
			Location:        "Mira Bhayander Road",
		},
		{
			Name:            "Rekha Patil",
			JobRoles:        models.StringList{"Cleaner", "Top Work"},
			ExperienceYears: 2,
			Rating:          3.9,
			ReviewCount:     12,
			Languages:       models.StringList{"Marathi", "Hindi"},
			Verified:        false,
			Gender:          "Female",
			Age:             23,
			Religion:        "Hindu",
			MaritalStatus:   "Single",
			PetFriendly:     true,
			Availability:    models.AvailabilityShortTerm,
			Location:        "Kashimira",
		},
		{
			Name:            "Mary D'Souza",
			JobRoles:        models.StringList{"Baby Sitter", "Cook"},
			ExperienceYears: 12,
			Rating:          4.9,
			ReviewCount:     88,
			Languages:       models.StringList{"English", "Konkani", "Hindi"},
			Verified:        true,
			Gender:          "Female",
			Age:             48,
			Religion:        "Christian",
			MaritalStatus:   "Widowed",
			PetFriendly:     true,
			Availability:    models.AvailabilityLongTerm,
			Location:        "Mira Road East",
		},
		{
			Name:            "Sunita Devi",
			JobRoles:        models.StringList{"Cleaner", "Kitchen Helper"},
			ExperienceYears: 5,
			Rating:          4.0,
			ReviewCount:     27,
			Languages:       models.StringList{"Hindi", "Bhojpuri"},
			Verified:        false,
			Gender:          "Female",
			Age:             37,
			Religion:        "Hindu",
			MaritalStatus:   "Divorced",
			PetFriendly:     false,
			Availability:    models.AvailabilityLongTerm,
			Location:        "Dahisar",
		},
	}

	if err := DB.Create(&providers).Error; err != nil {
		log.Printf("Error seeding providers: %v", err)
		return
	}
	log.Printf("Seeded %d providers", len(providers))
}

// seedDemoUser creates the account that owns the demo booking history.
func seedDemoUser() (*models.User, error) {
	var user models.User
	if DB.Where("email = ?", "demo@example.com").First(&user).RowsAffected > 0 {
		return &user, nil
	}

	var clientRole models.Role
	if err := DB.Where("name = ?", "client").First(&clientRole).Error; err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user = models.User{
		Name:     "Demo User",
		Email:    "demo@example.com",
		Password: string(hash),
		RoleID:   clientRole.ID,
	}
	if err := DB.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func seedDemoBookings() {
	var count int64
	DB.Model(&models.Booking{}).Count(&count)
	if count > 0 {
		return
	}

	user, err := seedDemoUser()
	if err != nil {
		log.Printf("Error seeding demo user: %v", err)
		return
	}

	bookings := demoBookings(user.ID)
	if err := DB.Create(&bookings).Error; err != nil {
		log.Printf("Error seeding demo bookings: %v", err)
		return
	}
	log.Printf("Seeded %d demo bookings", len(bookings))
}

// demoBookings builds the sample history attached to the given user.
func demoBookings(userID uint) []models.Booking {
	date := func(day int) time.Time {
		return time.Date(2025, time.April, day, 0, 0, 0, 0, time.UTC)
	}

	bookings := []models.Booking{
		{
			BookingRef:    "BD-12345",
			ServiceType:   "Deep Cleaning",
			ProviderName:  "Sarah Johnson",
			Amount:        2500,
			PaymentStatus: models.PaymentStatusPaid,
			PaymentMethod: models.MethodCard,
			BookingDate:   date(10),
			ServiceDate:   date(12),
			TimeSlotText:  "09:00 AM - 12:00 PM",
			Address:       "42, Sunshine Apartments, Sector 18",
			Duration:      "3 hours",
			IsPast:        true,
		},
		{
			BookingRef:    "BD-12346",
			ServiceType:   "Regular Cleaning",
			ProviderName:  "Rebecca Williams",
			Amount:        1800,
			PaymentStatus: models.PaymentStatusPending,
			PaymentMethod: models.MethodCOD,
			BookingDate:   date(13),
			ServiceDate:   date(15),
			TimeSlotText:  "02:00 PM - 04:00 PM",
			Address:       "103, Green Valley, Whitefield",
			Duration:      "2 hours",
			IsPast:        true,
		},
		{
			BookingRef:    "BD-12347",
			ServiceType:   "Laundry Service",
			ProviderName:  "Michael Brown",
			Amount:        1200,
			PaymentStatus: models.PaymentStatusPaid,
			PaymentMethod: models.MethodWallet,
			BookingDate:   date(19),
			ServiceDate:   date(22),
			TimeSlotText:  "10:00 AM - 11:30 AM",
			Address:       "78, Silver Oak Residency, HSR Layout",
			Duration:      "1.5 hours",
			IsPast:        false,
		},
		{
			BookingRef:    "BD-12348",
			ServiceType:   "Kitchen Cleaning",
			ProviderName:  "Emily Davis",
			Amount:        2200,
			PaymentStatus: models.PaymentStatusPending,
			PaymentMethod: models.MethodCard,
			BookingDate:   date(22),
			ServiceDate:   date(25),
			TimeSlotText:  "01:00 PM - 03:00 PM",
			Address:       "56, Palm Meadows, Koramangala",
			Duration:      "2 hours",
			IsPast:        false,
		},
		{
			BookingRef:    "BD-12349",
			ServiceType:   "Window Cleaning",
			ProviderName:  "James Wilson",
			Amount:        1500,
			PaymentStatus: models.PaymentStatusPaid,
			PaymentMethod: models.MethodWallet,
			BookingDate:   date(25),
			ServiceDate:   date(28),
			TimeSlotText:  "11:00 AM - 01:00 PM",
			Address:       "23, Golden Heights, Indiranagar",
			Duration:      "2 hours",
			IsPast:        false,
		},
	}

	for i := range bookings {
		bookings[i].UserID = userID
	}
	return bookings
}
