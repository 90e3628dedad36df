package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for teacher share QR codes
type QRCodeService interface {
	// GenerateTeacherQR renders a PNG QR code linking to the teacher's public profile
	GenerateTeacherQR(teacherUserID uuid.UUID) ([]byte, error)

	// ParseTeacherQR extracts the teacher user ID from scanned QR code content
	ParseTeacherQR(qrData string) (uuid.UUID, error)
}
