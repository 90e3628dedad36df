package qrcode

import (
	"net/url"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
	"go.uber.org/fx"

	"tuition/config"
	"tuition/internal/domain/service"
)

const (
	defaultSize    = 256
	defaultBaseURL = "https://tuition.local/teachers"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              *url.URL
}

// NewQRCodeService creates a QR code service that encodes links of the form
// <baseURL>/<teacherUserID>.
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) (service.QRCodeService, error) {
	if size <= 0 {
		size = defaultSize
	}
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultBaseURL
	}

	parsed, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, errors.Wrap(err, "invalid qrcode base url")
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, errors.Errorf("qrcode base url %q must be absolute", baseURL)
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(errorCorrectionLevel),
		baseURL:              parsed,
	}, nil
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// ProfileURL returns the public profile link encoded in the QR code.
func (s *qrcodeService) ProfileURL(teacherUserID uuid.UUID) string {
	u := *s.baseURL
	u.Path = path.Join(u.Path, teacherUserID.String())

	return u.String()
}

// GenerateTeacherQR renders the teacher's public profile link as a PNG.
func (s *qrcodeService) GenerateTeacherQR(teacherUserID uuid.UUID) ([]byte, error) {
	qrCode, err := qrcode.New(s.ProfileURL(teacherUserID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseTeacherQR extracts the teacher user ID from a scanned profile link.
// Links pointing outside the configured base URL are rejected.
func (s *qrcodeService) ParseTeacherQR(qrData string) (uuid.UUID, error) {
	scanned, err := url.Parse(strings.TrimSpace(qrData))
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse QR code content")
	}
	if scanned.Host != s.baseURL.Host {
		return uuid.Nil, errors.Errorf("QR code points to unknown host %q", scanned.Host)
	}

	dir, last := path.Split(strings.TrimRight(scanned.Path, "/"))
	if strings.TrimRight(dir, "/") != strings.TrimRight(s.baseURL.Path, "/") {
		return uuid.Nil, errors.Errorf("QR code path %q is not a teacher profile link", scanned.Path)
	}

	teacherUserID, err := uuid.Parse(last)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse teacher ID")
	}

	return teacherUserID, nil
}

// Params holds dependencies for the QR code service, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
}

// New builds the QR code service from configuration.
func New(params Params) (service.QRCodeService, error) {
	cfg := params.Config.QRCode
	if cfg == nil {
		cfg = &config.QRCodeConfig{}
	}

	return NewQRCodeService(cfg.Size, cfg.ErrorCorrectionLevel, cfg.BaseURL)
}

// Module provides the QR code service.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
