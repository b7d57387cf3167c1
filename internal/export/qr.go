package export

import (
	"errors"
	"fmt"
	"os"

	"github.com/yeqown/go-qrcode/v2"
	"github.com/yeqown/go-qrcode/writer/standard"

	"ygodeck/internal/deck"
	"ygodeck/internal/diag"
)

// ErrQRTooLarge is returned when the text export does not fit in a QR code
var ErrQRTooLarge = errors.New("deck does not fit in a QR code")

// QR encodes the text export of entries as a PNG QR code
func QR(entries []deck.Entry) ([]byte, error) {
	text, err := Text(entries)
	if err != nil {
		return nil, err
	}

	qrc, err := qrcode.NewWith(string(text),
		qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionMedium),
		qrcode.WithEncodingMode(qrcode.EncModeByte),
	)
	if err != nil {
		return nil, diag.New(fmt.Errorf("%w: %v", ErrQRTooLarge, err), diag.MsgQRTooLarge)
	}

	// the standard writer only targets files
	tmp, err := os.CreateTemp("", "ygodeck_qr_*.png")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	w, err := standard.New(tmpPath,
		standard.WithBuiltinImageEncoder(standard.PNG_FORMAT),
		standard.WithQRWidth(8),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create writer: %w", err)
	}
	if err := qrc.Save(w); err != nil {
		return nil, fmt.Errorf("failed to save QR code: %w", err)
	}

	data, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read QR code file: %w", err)
	}
	return data, nil
}
