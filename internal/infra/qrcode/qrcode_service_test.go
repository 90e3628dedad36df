package qrcode

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBaseURL = "https://tutors.example.lk/teachers"

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
		baseURL              string
		wantErr              bool
	}{
		{"Low error correction", 256, "L", testBaseURL, false},
		{"Medium error correction", 256, "M", testBaseURL, false},
		{"High error correction", 256, "Q", testBaseURL, false},
		{"Highest error correction", 256, "H", testBaseURL, false},
		{"Default error correction", 256, "invalid", testBaseURL, false},
		{"Default base url", 0, "M", "", false},
		{"Relative base url", 256, "M", "/teachers", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, err := NewQRCodeService(tt.size, tt.errorCorrectionLevel, tt.baseURL)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateTeacherQR(t *testing.T) {
	sizes := []int{128, 256, 512}

	for _, size := range sizes {
		service, err := NewQRCodeService(size, "M", testBaseURL)
		require.NoError(t, err)

		qrBytes, err := service.GenerateTeacherQR(uuid.New())
		require.NoError(t, err)
		require.Greater(t, len(qrBytes), 4)

		// PNG magic number
		assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
	}
}

func TestQRCodeService_ProfileURL(t *testing.T) {
	service, err := NewQRCodeService(256, "M", testBaseURL+"/")
	require.NoError(t, err)
	teacherID := uuid.New()

	got := service.(*qrcodeService).ProfileURL(teacherID)

	assert.Equal(t, testBaseURL+"/"+teacherID.String(), got)
}

func TestQRCodeService_ParseTeacherQR(t *testing.T) {
	service, err := NewQRCodeService(256, "M", testBaseURL)
	require.NoError(t, err)
	teacherID := uuid.New()

	t.Run("round trip", func(t *testing.T) {
		parsed, err := service.ParseTeacherQR(service.(*qrcodeService).ProfileURL(teacherID))

		require.NoError(t, err)
		assert.Equal(t, teacherID, parsed)
	})

	t.Run("trailing slash", func(t *testing.T) {
		parsed, err := service.ParseTeacherQR(testBaseURL + "/" + teacherID.String() + "/")

		require.NoError(t, err)
		assert.Equal(t, teacherID, parsed)
	})

	invalid := []struct {
		name string
		data string
	}{
		{"other host", "https://evil.example.com/teachers/" + teacherID.String()},
		{"other path", "https://tutors.example.lk/students/" + teacherID.String()},
		{"not a uuid", testBaseURL + "/not-a-uuid"},
		{"garbage", "::::"},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ParseTeacherQR(tt.data)

			assert.Error(t, err)
		})
	}
}
