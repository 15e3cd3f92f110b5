package utils

import (
	"crypto/rand"
	"fmt"
)

func GenerateDraftID() string {
	// Generate a UUID for a booking draft
	b := make([]byte, 16)
	rand.Read(b)
	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:])
}

// GenerateBookingRef produces a short "BD-" reference for confirmed bookings
func GenerateBookingRef() string {
	var number [3]byte
	rand.Read(number[:])
	n := int(number[0])<<16 | int(number[1])<<8 | int(number[2])
	return fmt.Sprintf("BD-%05d", n%100000)
}
