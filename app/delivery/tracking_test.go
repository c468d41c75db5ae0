package delivery_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/oussama2210/intimate-essentials-shop/app/delivery"
)

var trackingPattern = regexp.MustCompile(`^SY\d{11}$`)

func TestGenerateTrackingNumberFormat(t *testing.T) {
	for i := 0; i < 1000; i++ {
		tn := delivery.GenerateTrackingNumber()
		if !trackingPattern.MatchString(tn) {
			t.Fatalf("tracking number %q does not match SY + 11 digits", tn)
		}
		if !strings.HasPrefix(tn, delivery.TrackingPrefix) {
			t.Fatalf("tracking number %q missing prefix %q", tn, delivery.TrackingPrefix)
		}
		if len(tn) != 13 {
			t.Fatalf("tracking number %q has length %d, want 13", tn, len(tn))
		}
	}
}
